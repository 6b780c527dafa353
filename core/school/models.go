package school

import (
	"github.com/smartsyakila/backend/core"
)

type Class struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Ordering int    `json:"ordering"`
}

type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Student struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Nickname string `json:"nickname"`
	NISN     string `json:"nisn"`
	ClassID  string `json:"classId"`
	Gender   string `json:"gender"`
}

type NewClass struct {
	Name     string `json:"name" validate:"required"`
	Ordering int    `json:"ordering"`
}

func (nc *NewClass) Validate() error {
	nc.Name = core.CleanString(nc.Name)
	return core.Validate.Struct(nc)
}

// UpdateClass defines what information may be provided to modify an
// existing Class. Zero-valued fields are left untouched; Ordering is a
// pointer so position 0 stays distinguishable from unset.
type UpdateClass struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name"`
	Ordering *int   `json:"ordering"`
}

func (uc *UpdateClass) Validate() error {
	uc.Name = core.CleanString(uc.Name)
	return core.Validate.Struct(uc)
}

type NewSubject struct {
	Name string `json:"name" validate:"required"`
}

func (ns *NewSubject) Validate() error {
	ns.Name = core.CleanString(ns.Name)
	return core.Validate.Struct(ns)
}

type NewStudent struct {
	FullName string `json:"fullName" validate:"required"`
	Nickname string `json:"nickname" validate:"required"`
	NISN     string `json:"nisn" validate:"required,numeric"`
	ClassID  string `json:"classId" validate:"required"`
	Gender   string `json:"gender" validate:"required,oneof=Laki-laki Perempuan"`
}

func (ns *NewStudent) Validate() error {
	ns.FullName = core.CleanString(ns.FullName)
	ns.Nickname = core.CleanString(ns.Nickname)
	ns.NISN = core.CleanString(ns.NISN)
	return core.Validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an
// existing Student. Zero-valued fields are left untouched.
type UpdateStudent struct {
	ID       string `json:"id" validate:"required"`
	FullName string `json:"fullName"`
	Nickname string `json:"nickname"`
	NISN     string `json:"nisn" validate:"omitempty,numeric"`
	ClassID  string `json:"classId"`
	Gender   string `json:"gender" validate:"omitempty,oneof=Laki-laki Perempuan"`
}

func (us *UpdateStudent) Validate() error {
	us.FullName = core.CleanString(us.FullName)
	us.Nickname = core.CleanString(us.Nickname)
	us.NISN = core.CleanString(us.NISN)
	return core.Validate.Struct(us)
}
