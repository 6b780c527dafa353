package journal

import (
	"context"
	"errors"
	"time"

	"github.com/smartsyakila/backend/core"
)

var (
	// errors
	ErrNotFound  = errors.New("journal entry not found")
	ErrNotAuthor = errors.New("only the author may delete a journal entry")
)

type (
	Repository interface {
		QueryAllAcademicEntries(ctx context.Context) ([]AcademicEntry, error)
		GetAcademicEntryByID(ctx context.Context, id string) (AcademicEntry, error)
		CreateAcademicEntry(ctx context.Context, entry AcademicEntry) (AcademicEntry, error)
		// UpdateAcademicEntry replaces the stored entry; used to append personal notes.
		UpdateAcademicEntry(ctx context.Context, entry AcademicEntry) (AcademicEntry, error)
		DeleteAcademicEntry(ctx context.Context, id string) error

		QueryAllStimulationEntries(ctx context.Context) ([]StimulationEntry, error)
		GetStimulationEntryByID(ctx context.Context, id string) (StimulationEntry, error)
		CreateStimulationEntry(ctx context.Context, entry StimulationEntry) (StimulationEntry, error)
		UpdateStimulationEntry(ctx context.Context, entry StimulationEntry) (StimulationEntry, error)
		DeleteStimulationEntry(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) CreateAcademic(ctx context.Context, ne NewAcademicEntry) (AcademicEntry, error) {
	entry := AcademicEntry{
		CreatedAt:      time.Now().UTC(),
		FacilitatorID:  ne.FacilitatorID,
		ClassID:        ne.ClassID,
		SubjectID:      ne.SubjectID,
		Topic:          ne.Topic,
		ImportantNotes: ne.ImportantNotes,
		Activeness:     ne.Activeness,
		HomeworkScores: ne.HomeworkScores,
	}
	return svc.repo.CreateAcademicEntry(ctx, entry)
}

func (svc *Service) QueryAllAcademic(ctx context.Context) ([]AcademicEntry, error) {
	return svc.repo.QueryAllAcademicEntries(ctx)
}

func (svc *Service) GetAcademic(ctx context.Context, id string) (AcademicEntry, error) {
	return svc.repo.GetAcademicEntryByID(ctx, id)
}

// DeleteAcademic removes an entry on behalf of actingFacilitatorID.
// Only the entry's author may delete it; admins get no override.
func (svc *Service) DeleteAcademic(ctx context.Context, id, actingFacilitatorID string) error {
	entry, err := svc.repo.GetAcademicEntryByID(ctx, id)
	if err != nil {
		return err
	}
	if entry.FacilitatorID != actingFacilitatorID {
		return ErrNotAuthor
	}
	return svc.repo.DeleteAcademicEntry(ctx, id)
}

// AddAcademicNote appends a personal note to an existing entry. The
// noted student must have been a participant of the session.
func (svc *Service) AddAcademicNote(ctx context.Context, nn NewPersonalNote) (AcademicEntry, error) {
	entry, err := svc.repo.GetAcademicEntryByID(ctx, nn.EntryID)
	if err != nil {
		return AcademicEntry{}, err
	}
	if !entry.HasParticipant(nn.StudentID) {
		return AcademicEntry{}, core.NewValidationError(
			errors.New("student is not a participant of this entry"),
			core.FieldError{Field: "studentId", Error: "student is not a participant of this entry"},
		)
	}
	entry.PersonalNotes = append(entry.PersonalNotes, PersonalNote{
		StudentID:     nn.StudentID,
		Note:          nn.Note,
		FacilitatorID: nn.FacilitatorID,
	})
	return svc.repo.UpdateAcademicEntry(ctx, entry)
}

func (svc *Service) CreateStimulation(ctx context.Context, ne NewStimulationEntry) (StimulationEntry, error) {
	entry := StimulationEntry{
		CreatedAt:       time.Now().UTC(),
		FacilitatorName: ne.FacilitatorName,
		Mode:            ne.Mode,
		Class:           ne.Class,
		Students:        ne.Students,
		Kegiatan:        ne.Kegiatan,
		NamaPemateri:    ne.NamaPemateri,
		JenisStimulasi:  ne.JenisStimulasi,
		Lokasi:          ne.Lokasi,
		CatatanPenting:  ne.CatatanPenting,
	}
	return svc.repo.CreateStimulationEntry(ctx, entry)
}

func (svc *Service) QueryAllStimulation(ctx context.Context) ([]StimulationEntry, error) {
	return svc.repo.QueryAllStimulationEntries(ctx)
}

func (svc *Service) GetStimulation(ctx context.Context, id string) (StimulationEntry, error) {
	return svc.repo.GetStimulationEntryByID(ctx, id)
}

func (svc *Service) DeleteStimulation(ctx context.Context, id, actingFacilitatorName string) error {
	entry, err := svc.repo.GetStimulationEntryByID(ctx, id)
	if err != nil {
		return err
	}
	if entry.FacilitatorName != actingFacilitatorName {
		return ErrNotAuthor
	}
	return svc.repo.DeleteStimulationEntry(ctx, id)
}

// AddStimulationNote appends a personal note to an existing stimulation
// entry. The noted student must appear in the entry's student list.
func (svc *Service) AddStimulationNote(ctx context.Context, nn NewStimulationNote) (StimulationEntry, error) {
	entry, err := svc.repo.GetStimulationEntryByID(ctx, nn.EntryID)
	if err != nil {
		return StimulationEntry{}, err
	}
	var participant bool
	for _, name := range entry.Students {
		if name == nn.StudentName {
			participant = true
			break
		}
	}
	if !participant {
		return StimulationEntry{}, core.NewValidationError(
			errors.New("student is not a participant of this entry"),
			core.FieldError{Field: "studentName", Error: "student is not a participant of this entry"},
		)
	}
	entry.PersonalNotes = append(entry.PersonalNotes, StimulationNote{
		StudentName:     nn.StudentName,
		Note:            nn.Note,
		FacilitatorName: nn.FacilitatorName,
		CreatedAt:       time.Now().UTC(),
	})
	return svc.repo.UpdateStimulationEntry(ctx, entry)
}
