// Package document implements the core repositories over the blob
// gateway: every operation fetches the collection's whole document,
// works on it in memory, and puts the whole document back.
package document

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/smartsyakila/backend/core/staff"
	"github.com/smartsyakila/backend/storage/blob"
)

type facilitatorRepository struct {
	store blob.Store
}

var _ staff.Repository = (*facilitatorRepository)(nil)

func NewFacilitatorRepository(store blob.Store) staff.Repository {
	return &facilitatorRepository{store: store}
}

func (repo *facilitatorRepository) load(ctx context.Context) ([]staff.Facilitator, error) {
	raw, err := repo.store.Get(ctx, blob.KeyFacilitators)
	if err == blob.ErrAbsent {
		return []staff.Facilitator{}, nil
	}
	if err != nil {
		return nil, err
	}
	var facs []staff.Facilitator
	if err := json.Unmarshal(raw, &facs); err != nil {
		return nil, errors.Wrap(err, "decoding facilitators document")
	}
	return facs, nil
}

func (repo *facilitatorRepository) save(ctx context.Context, facs []staff.Facilitator) error {
	raw, err := json.Marshal(facs)
	if err != nil {
		return errors.Wrap(err, "encoding facilitators document")
	}
	return repo.store.Put(ctx, blob.KeyFacilitators, raw)
}

func (repo *facilitatorRepository) CheckEmailUniqueness(ctx context.Context, email string, excluded ...staff.Facilitator) error {
	facs, err := repo.load(ctx)
	if err != nil {
		return err
	}
	for _, fac := range facs {
		if fac.Email != email {
			continue
		}
		if !isExcluded(fac.ID, excluded) {
			return staff.ErrEmailExists
		}
	}
	return nil
}

func isExcluded(id string, excluded []staff.Facilitator) bool {
	for _, excl := range excluded {
		if excl.ID == id {
			return true
		}
	}
	return false
}

func (repo *facilitatorRepository) CreateFacilitator(ctx context.Context, fac staff.Facilitator) (staff.Facilitator, error) {
	facs, err := repo.load(ctx)
	if err != nil {
		return staff.Facilitator{}, err
	}
	fac.ID = uuid.New().String()
	facs = append(facs, fac)
	if err := repo.save(ctx, facs); err != nil {
		return staff.Facilitator{}, err
	}
	return fac, nil
}

func (repo *facilitatorRepository) QueryAllFacilitators(ctx context.Context) ([]staff.Facilitator, error) {
	return repo.load(ctx)
}

func (repo *facilitatorRepository) GetFacilitatorByID(ctx context.Context, id string) (staff.Facilitator, error) {
	facs, err := repo.load(ctx)
	if err != nil {
		return staff.Facilitator{}, err
	}
	for _, fac := range facs {
		if fac.ID == id {
			return fac, nil
		}
	}
	return staff.Facilitator{}, staff.ErrNotFound
}

func (repo *facilitatorRepository) GetFacilitatorByEmail(ctx context.Context, email string) (staff.Facilitator, error) {
	facs, err := repo.load(ctx)
	if err != nil {
		return staff.Facilitator{}, err
	}
	for _, fac := range facs {
		if fac.Email == email {
			return fac, nil
		}
	}
	return staff.Facilitator{}, staff.ErrNotFound
}

func (repo *facilitatorRepository) UpdateFacilitator(ctx context.Context, fac staff.Facilitator) (staff.Facilitator, error) {
	facs, err := repo.load(ctx)
	if err != nil {
		return staff.Facilitator{}, err
	}
	for i := range facs {
		if facs[i].ID != fac.ID {
			continue
		}
		// only save set fields
		if fac.FullName != "" {
			facs[i].FullName = fac.FullName
		}
		if fac.Nickname != "" {
			facs[i].Nickname = fac.Nickname
		}
		if fac.Email != "" {
			facs[i].Email = fac.Email
		}
		if fac.Gender != "" {
			facs[i].Gender = fac.Gender
		}
		facs[i].UpdatedAt = fac.UpdatedAt
		if err := repo.save(ctx, facs); err != nil {
			return staff.Facilitator{}, err
		}
		return facs[i], nil
	}
	return staff.Facilitator{}, staff.ErrNotFound
}

func (repo *facilitatorRepository) GetAssignments(ctx context.Context) (staff.Assignments, error) {
	raw, err := repo.store.Get(ctx, blob.KeyAssignments)
	if err == blob.ErrAbsent {
		return staff.Assignments{}, nil
	}
	if err != nil {
		return nil, err
	}
	var asg staff.Assignments
	if err := json.Unmarshal(raw, &asg); err != nil {
		return nil, errors.Wrap(err, "decoding assignments document")
	}
	return asg, nil
}

func (repo *facilitatorRepository) SaveAssignments(ctx context.Context, asg staff.Assignments) error {
	raw, err := json.Marshal(asg)
	if err != nil {
		return errors.Wrap(err, "encoding assignments document")
	}
	return repo.store.Put(ctx, blob.KeyAssignments, raw)
}
