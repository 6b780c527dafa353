package attendance

import (
	"time"

	"github.com/smartsyakila/backend/core"
)

// Attendance statuses.
const (
	StatusHadir     = "hadir"
	StatusTerlambat = "terlambat"
	StatusSakit     = "sakit"
	StatusIzin      = "izin"
)

// Record is one dated attendance mark for a student.
type Record struct {
	ID        string    `json:"id"`
	StudentID string    `json:"studentId"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
}

// NewRecord contains information needed to record attendance.
type NewRecord struct {
	StudentID string    `json:"studentId" validate:"required"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status" validate:"required,oneof=hadir terlambat sakit izin"`
	Note      string    `json:"note"`
}

func (nr *NewRecord) Validate() error {
	nr.Note = core.CleanString(nr.Note)
	return core.Validate.Struct(nr)
}

// Summary counts one student's attendance records by status.
type Summary struct {
	StudentID string `json:"studentId"`
	Hadir     int    `json:"hadir"`
	Terlambat int    `json:"terlambat"`
	Sakit     int    `json:"sakit"`
	Izin      int    `json:"izin"`
}
