package staff

import (
	"context"
	"errors"
	"time"

	"github.com/smartsyakila/backend/core"
)

var (
	// errors
	ErrNotFound    = errors.New("facilitator not found")
	ErrEmailExists = errors.New("a facilitator with this email already exists")
	// Facilitator deletion would orphan assignments and journal
	// authorship references and is deliberately not supported.
	ErrDeleteUnsupported = errors.New("facilitator deletion is not supported")
)

type (
	Repository interface {
		CheckEmailUniqueness(ctx context.Context, email string, excluded ...Facilitator) error
		CreateFacilitator(ctx context.Context, fac Facilitator) (Facilitator, error)
		QueryAllFacilitators(ctx context.Context) ([]Facilitator, error)
		GetFacilitatorByID(ctx context.Context, id string) (Facilitator, error)
		GetFacilitatorByEmail(ctx context.Context, email string) (Facilitator, error)
		// UpdateFacilitator merges set fields into the stored record.
		UpdateFacilitator(ctx context.Context, fac Facilitator) (Facilitator, error)
		GetAssignments(ctx context.Context) (Assignments, error)
		SaveAssignments(ctx context.Context, asg Assignments) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) checkUniqueness(email string, exclFacs ...Facilitator) error {
	return svc.repo.CheckEmailUniqueness(context.Background(), email, exclFacs...)
}

func (svc *Service) Create(ctx context.Context, nf NewFacilitator) (Facilitator, error) {
	now := time.Now().UTC()
	fac := Facilitator{
		FullName:  nf.FullName,
		Nickname:  nf.Nickname,
		Email:     nf.Email,
		Gender:    nf.Gender,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return svc.repo.CreateFacilitator(ctx, fac)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Facilitator, error) {
	return svc.repo.QueryAllFacilitators(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Facilitator, error) {
	return svc.repo.GetFacilitatorByID(ctx, id)
}

func (svc *Service) GetByEmail(ctx context.Context, email string) (Facilitator, error) {
	return svc.repo.GetFacilitatorByEmail(ctx, core.CleanString(email, true /* lower */))
}

func (svc *Service) Update(ctx context.Context, uf UpdateFacilitator) (Facilitator, error) {
	fac := Facilitator{
		ID:        uf.ID,
		FullName:  uf.FullName,
		Nickname:  uf.Nickname,
		Email:     uf.Email,
		Gender:    uf.Gender,
		UpdatedAt: time.Now().UTC(),
	}
	return svc.repo.UpdateFacilitator(ctx, fac)
}

// Delete always fails; see ErrDeleteUnsupported.
func (svc *Service) Delete(ctx context.Context, id string) error {
	return ErrDeleteUnsupported
}

func (svc *Service) Assignments(ctx context.Context) (Assignments, error) {
	return svc.repo.GetAssignments(ctx)
}

// AssignedSubjects returns the subject IDs a facilitator teaches in the given class.
func (svc *Service) AssignedSubjects(ctx context.Context, facilitatorID, classID string) ([]string, error) {
	asg, err := svc.repo.GetAssignments(ctx)
	if err != nil {
		return nil, err
	}
	return asg.SubjectsFor(facilitatorID, classID), nil
}

// SaveAssignments replaces the whole assignment mapping after checking
// that every facilitator key resolves to an existing record.
func (svc *Service) SaveAssignments(ctx context.Context, asg Assignments) error {
	for facID := range asg {
		if _, err := svc.repo.GetFacilitatorByID(ctx, facID); err != nil {
			if err == ErrNotFound {
				return core.NewValidationError(err, core.FieldError{Field: facID, Error: err.Error()})
			}
			return err
		}
	}
	return svc.repo.SaveAssignments(ctx, asg)
}
