package document

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/smartsyakila/backend/core/journal"
	"github.com/smartsyakila/backend/storage/blob"
)

type journalRepository struct {
	store blob.Store
}

var _ journal.Repository = (*journalRepository)(nil)

func NewJournalRepository(store blob.Store) journal.Repository {
	return &journalRepository{store: store}
}

func (repo *journalRepository) loadAcademic(ctx context.Context) ([]journal.AcademicEntry, error) {
	raw, err := repo.store.Get(ctx, blob.KeyAcademicJournal)
	if err == blob.ErrAbsent {
		return []journal.AcademicEntry{}, nil
	}
	if err != nil {
		return nil, err
	}
	var entries []journal.AcademicEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Wrap(err, "decoding academic journal document")
	}
	return entries, nil
}

func (repo *journalRepository) saveAcademic(ctx context.Context, entries []journal.AcademicEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, "encoding academic journal document")
	}
	return repo.store.Put(ctx, blob.KeyAcademicJournal, raw)
}

func (repo *journalRepository) QueryAllAcademicEntries(ctx context.Context) ([]journal.AcademicEntry, error) {
	return repo.loadAcademic(ctx)
}

func (repo *journalRepository) GetAcademicEntryByID(ctx context.Context, id string) (journal.AcademicEntry, error) {
	entries, err := repo.loadAcademic(ctx)
	if err != nil {
		return journal.AcademicEntry{}, err
	}
	for _, entry := range entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return journal.AcademicEntry{}, journal.ErrNotFound
}

func (repo *journalRepository) CreateAcademicEntry(ctx context.Context, entry journal.AcademicEntry) (journal.AcademicEntry, error) {
	entries, err := repo.loadAcademic(ctx)
	if err != nil {
		return journal.AcademicEntry{}, err
	}
	entry.ID = uuid.New().String()
	entries = append(entries, entry)
	if err := repo.saveAcademic(ctx, entries); err != nil {
		return journal.AcademicEntry{}, err
	}
	return entry, nil
}

func (repo *journalRepository) UpdateAcademicEntry(ctx context.Context, entry journal.AcademicEntry) (journal.AcademicEntry, error) {
	entries, err := repo.loadAcademic(ctx)
	if err != nil {
		return journal.AcademicEntry{}, err
	}
	for i := range entries {
		if entries[i].ID != entry.ID {
			continue
		}
		// personal notes get their id here, on first persist
		for j := range entry.PersonalNotes {
			if entry.PersonalNotes[j].ID == "" {
				entry.PersonalNotes[j].ID = uuid.New().String()
			}
		}
		entries[i] = entry
		if err := repo.saveAcademic(ctx, entries); err != nil {
			return journal.AcademicEntry{}, err
		}
		return entries[i], nil
	}
	return journal.AcademicEntry{}, journal.ErrNotFound
}

func (repo *journalRepository) DeleteAcademicEntry(ctx context.Context, id string) error {
	entries, err := repo.loadAcademic(ctx)
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].ID == id {
			entries = append(entries[:i], entries[i+1:]...)
			return repo.saveAcademic(ctx, entries)
		}
	}
	return journal.ErrNotFound
}

func (repo *journalRepository) loadStimulation(ctx context.Context) ([]journal.StimulationEntry, error) {
	raw, err := repo.store.Get(ctx, blob.KeyStimulationJournal)
	if err == blob.ErrAbsent {
		return []journal.StimulationEntry{}, nil
	}
	if err != nil {
		return nil, err
	}
	var entries []journal.StimulationEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Wrap(err, "decoding stimulation journal document")
	}
	return entries, nil
}

func (repo *journalRepository) saveStimulation(ctx context.Context, entries []journal.StimulationEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, "encoding stimulation journal document")
	}
	return repo.store.Put(ctx, blob.KeyStimulationJournal, raw)
}

func (repo *journalRepository) QueryAllStimulationEntries(ctx context.Context) ([]journal.StimulationEntry, error) {
	return repo.loadStimulation(ctx)
}

func (repo *journalRepository) GetStimulationEntryByID(ctx context.Context, id string) (journal.StimulationEntry, error) {
	entries, err := repo.loadStimulation(ctx)
	if err != nil {
		return journal.StimulationEntry{}, err
	}
	for _, entry := range entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return journal.StimulationEntry{}, journal.ErrNotFound
}

func (repo *journalRepository) CreateStimulationEntry(ctx context.Context, entry journal.StimulationEntry) (journal.StimulationEntry, error) {
	entries, err := repo.loadStimulation(ctx)
	if err != nil {
		return journal.StimulationEntry{}, err
	}
	entry.ID = uuid.New().String()
	entries = append(entries, entry)
	if err := repo.saveStimulation(ctx, entries); err != nil {
		return journal.StimulationEntry{}, err
	}
	return entry, nil
}

func (repo *journalRepository) UpdateStimulationEntry(ctx context.Context, entry journal.StimulationEntry) (journal.StimulationEntry, error) {
	entries, err := repo.loadStimulation(ctx)
	if err != nil {
		return journal.StimulationEntry{}, err
	}
	for i := range entries {
		if entries[i].ID != entry.ID {
			continue
		}
		for j := range entry.PersonalNotes {
			if entry.PersonalNotes[j].ID == "" {
				entry.PersonalNotes[j].ID = uuid.New().String()
			}
		}
		entries[i] = entry
		if err := repo.saveStimulation(ctx, entries); err != nil {
			return journal.StimulationEntry{}, err
		}
		return entries[i], nil
	}
	return journal.StimulationEntry{}, journal.ErrNotFound
}

func (repo *journalRepository) DeleteStimulationEntry(ctx context.Context, id string) error {
	entries, err := repo.loadStimulation(ctx)
	if err != nil {
		return err
	}
	for i := range entries {
		if entries[i].ID == id {
			entries = append(entries[:i], entries[i+1:]...)
			return repo.saveStimulation(ctx, entries)
		}
	}
	return journal.ErrNotFound
}
