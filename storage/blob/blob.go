// Package blob is the persistence gateway: named JSON documents fetched
// and replaced whole. One document holds one entity collection. There
// is no concurrency token; writers racing on the same key overwrite
// each other and the last write wins.
package blob

import (
	"context"
	"errors"
)

// Collection keys, fixed per entity type.
const (
	KeyFacilitators       = "facilitators"
	KeyAssignments        = "facilitator_assignments"
	KeyClasses            = "classes"
	KeySubjects           = "subjects"
	KeyStudents           = "students"
	KeyAcademicJournal    = "journal_academic"
	KeyStimulationJournal = "journal_stimulation"
	KeyAttendance         = "attendance"
	KeySavings            = "savings"
)

// ErrAbsent is returned by Get for a key that has never been written.
var ErrAbsent = errors.New("document absent")

// Store is a named JSON document store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, doc []byte) error
}
