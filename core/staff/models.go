package staff

import (
	"time"

	"github.com/smartsyakila/backend/core"
)

// Gender values, as stored and displayed.
const (
	GenderMale   = "Laki-laki"
	GenderFemale = "Perempuan"
)

type Facilitator struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Nickname  string    `json:"nickname"`
	Email     string    `json:"email"`
	Gender    string    `json:"gender"`
	CreatedAt time.Time `json:"createdAt"` // UTC
	UpdatedAt time.Time `json:"updatedAt"` // UTC
}

// NewFacilitator contains information needed to register a new Facilitator.
type NewFacilitator struct {
	FullName string `json:"fullName" validate:"required"`
	Nickname string `json:"nickname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Gender   string `json:"gender" validate:"required,oneof=Laki-laki Perempuan"`
}

func (nf *NewFacilitator) Validate(svc *Service) error {
	nf.FullName = core.CleanString(nf.FullName)
	nf.Nickname = core.CleanString(nf.Nickname)
	nf.Email = core.CleanString(nf.Email, true /* lower */)

	if err := core.Validate.Struct(nf); err != nil {
		return err
	}
	return svc.checkUniqueness(nf.Email)
}

// UpdateFacilitator defines what information may be provided to modify an existing Facilitator.
// Zero-valued fields are left untouched.
type UpdateFacilitator struct {
	ID       string `json:"id" validate:"required"`
	FullName string `json:"fullName"`
	Nickname string `json:"nickname"`
	Email    string `json:"email" validate:"omitempty,email"`
	Gender   string `json:"gender" validate:"omitempty,oneof=Laki-laki Perempuan"`
}

func (uf *UpdateFacilitator) Validate(orig Facilitator, svc *Service) error {
	uf.FullName = core.CleanString(uf.FullName)
	uf.Nickname = core.CleanString(uf.Nickname)
	uf.Email = core.CleanString(uf.Email, true /* lower */)

	if err := core.Validate.Struct(uf); err != nil {
		return err
	}
	if uf.Email != "" && uf.Email != orig.Email {
		return svc.checkUniqueness(uf.Email, orig)
	}
	return nil
}

// Assignments maps facilitatorID -> classID -> IDs of the subjects taught.
type Assignments map[string]map[string][]string

// SubjectsFor returns the subjects a facilitator teaches in a class.
// An empty set is returned when nothing is recorded.
func (a Assignments) SubjectsFor(facilitatorID, classID string) []string {
	if classes, ok := a[facilitatorID]; ok {
		if subjects, ok := classes[classID]; ok && subjects != nil {
			return subjects
		}
	}
	return []string{}
}
