package journal

import (
	"time"

	"github.com/smartsyakila/backend/core"
)

// Session modes.
const (
	ModeKlasikal = "klasikal" // whole school
	ModePerkelas = "perkelas" // one class
	ModeKelompok = "kelompok" // ad hoc student group
)

// GroupClassLabel is displayed in place of a class name for group-mode
// entries, which carry no class reference.
const GroupClassLabel = "Kelompok"

// PersonalNote is an individual observation about one participant of an
// academic entry. Notes are append-only once the entry exists.
type PersonalNote struct {
	ID            string `json:"id"`
	StudentID     string `json:"studentId"`
	Note          string `json:"note"`
	FacilitatorID string `json:"facilitatorId"`
}

// AcademicEntry is a per-session record of subject-matter teaching
// activity with per-student ratings.
type AcademicEntry struct {
	ID             string         `json:"id"`
	CreatedAt      time.Time      `json:"createdAt"` // UTC
	FacilitatorID  string         `json:"facilitatorId"`
	ClassID        string         `json:"classId,omitempty"` // empty in group mode
	SubjectID      string         `json:"subjectId"`
	Topic          string         `json:"topic"`
	ImportantNotes string         `json:"importantNotes,omitempty"`
	Activeness     map[string]int `json:"studentActiveness"`               // studentID -> 1..5
	HomeworkScores map[string]int `json:"studentHomeworkScores,omitempty"` // studentID -> 1..5
	PersonalNotes  []PersonalNote `json:"personalNotes,omitempty"`
}

// IsGroupMode reports whether the entry is scoped to an ad hoc student
// group instead of a whole class.
func (e AcademicEntry) IsGroupMode() bool {
	return e.ClassID == ""
}

// ClassLabel is what the recap shows for the entry's class.
func (e AcademicEntry) ClassLabel() string {
	if e.IsGroupMode() {
		return GroupClassLabel
	}
	return e.ClassID
}

// HasParticipant reports whether a student took part in the session:
// either they were rated, or a personal note was written about them.
func (e AcademicEntry) HasParticipant(studentID string) bool {
	if _, ok := e.Activeness[studentID]; ok {
		return true
	}
	for _, note := range e.PersonalNotes {
		if note.StudentID == studentID {
			return true
		}
	}
	return false
}

// NewAcademicEntry contains information needed to record an academic session.
type NewAcademicEntry struct {
	FacilitatorID  string         `json:"facilitatorId" validate:"required"`
	ClassID        string         `json:"classId"` // empty = group mode
	SubjectID      string         `json:"subjectId" validate:"required"`
	Topic          string         `json:"topic" validate:"required"`
	ImportantNotes string         `json:"importantNotes"`
	Activeness     map[string]int `json:"studentActiveness" validate:"required,min=1,dive,min=1,max=5"`
	HomeworkScores map[string]int `json:"studentHomeworkScores" validate:"omitempty,dive,min=1,max=5"`
}

func (ne *NewAcademicEntry) Validate() error {
	ne.Topic = core.CleanString(ne.Topic)
	ne.ImportantNotes = core.CleanString(ne.ImportantNotes)
	return core.Validate.Struct(ne)
}

// NewPersonalNote contains information needed to append a note to an
// existing academic entry.
type NewPersonalNote struct {
	EntryID       string `json:"entryId" validate:"required"`
	StudentID     string `json:"studentId" validate:"required"`
	Note          string `json:"note" validate:"required"`
	FacilitatorID string `json:"facilitatorId" validate:"required"`
}

func (nn *NewPersonalNote) Validate() error {
	nn.Note = core.CleanString(nn.Note)
	return core.Validate.Struct(nn)
}

// StimulationNote is an individual observation attached to a
// stimulation entry. Students are denormalized by name here, matching
// the stimulation journal itself.
type StimulationNote struct {
	ID              string    `json:"id"`
	StudentName     string    `json:"studentName"`
	Note            string    `json:"note"`
	FacilitatorName string    `json:"facilitatorName"`
	CreatedAt       time.Time `json:"createdAt"` // UTC
}

// StimulationEntry is a per-session record of non-academic enrichment
// activity.
type StimulationEntry struct {
	ID              string            `json:"id"`
	CreatedAt       time.Time         `json:"createdAt"` // UTC
	FacilitatorName string            `json:"facilitatorName"`
	Mode            string            `json:"mode"`
	Class           string            `json:"class,omitempty"`
	Students        []string          `json:"students"`
	Kegiatan        string            `json:"kegiatan"`
	NamaPemateri    string            `json:"namaPemateri,omitempty"`
	JenisStimulasi  string            `json:"jenisStimulasi,omitempty"`
	Lokasi          string            `json:"lokasi"`
	CatatanPenting  string            `json:"catatanPenting,omitempty"`
	PersonalNotes   []StimulationNote `json:"personalNotes,omitempty"`
}

// NewStimulationEntry contains information needed to record a stimulation session.
type NewStimulationEntry struct {
	FacilitatorName string   `json:"facilitatorName" validate:"required"`
	Mode            string   `json:"mode" validate:"required,oneof=klasikal perkelas kelompok"`
	Class           string   `json:"class" validate:"required_if=Mode perkelas"`
	Students        []string `json:"students" validate:"required,min=1,dive,required"`
	Kegiatan        string   `json:"kegiatan" validate:"required"`
	NamaPemateri    string   `json:"namaPemateri"`
	JenisStimulasi  string   `json:"jenisStimulasi"`
	Lokasi          string   `json:"lokasi" validate:"required"`
	CatatanPenting  string   `json:"catatanPenting"`
}

func (ne *NewStimulationEntry) Validate() error {
	ne.Kegiatan = core.CleanString(ne.Kegiatan)
	ne.Lokasi = core.CleanString(ne.Lokasi)
	ne.CatatanPenting = core.CleanString(ne.CatatanPenting)
	return core.Validate.Struct(ne)
}

// NewStimulationNote contains information needed to append a note to an
// existing stimulation entry.
type NewStimulationNote struct {
	EntryID         string `json:"entryId" validate:"required"`
	StudentName     string `json:"studentName" validate:"required"`
	Note            string `json:"note" validate:"required"`
	FacilitatorName string `json:"facilitatorName" validate:"required"`
}

func (nn *NewStimulationNote) Validate() error {
	nn.Note = core.CleanString(nn.Note)
	return core.Validate.Struct(nn)
}
