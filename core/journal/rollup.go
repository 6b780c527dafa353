package journal

import (
	"context"
	"sort"
	"time"
)

type (
	// Meeting is one session of a subject as seen from a student's recap.
	// ClassLabel is the entry's class, or the neutral group label for
	// group-mode sessions.
	Meeting struct {
		Date       time.Time `json:"date"`
		Topic      string    `json:"topic"`
		ClassLabel string    `json:"classLabel"`
	}

	// SubjectRollup aggregates one student's academic journal activity
	// for a single subject.
	SubjectRollup struct {
		SubjectID     string         `json:"subjectId"`
		Meetings      []Meeting      `json:"meetings"`
		PersonalNotes []PersonalNote `json:"personalNotes"`
		// AverageActiveness is the mean of the student's activeness
		// ratings over the meetings where they were rated. Meetings
		// without a rating for the student count toward neither the
		// numerator nor the denominator. 0 when never rated.
		AverageActiveness float64 `json:"averageActiveness"`
	}
)

// AcademicRollup scans the whole academic journal and groups by subject
// the entries the given student participated in (rated, or noted about).
// Meetings are ordered chronologically; rollups are ordered by subject.
func (svc *Service) AcademicRollup(ctx context.Context, studentID string) ([]SubjectRollup, error) {
	entries, err := svc.repo.QueryAllAcademicEntries(ctx)
	if err != nil {
		return nil, err
	}

	type acc struct {
		meetings    []Meeting
		notes       []PersonalNote
		ratingSum   int
		ratingCount int
	}
	bySubject := make(map[string]*acc)

	for _, entry := range entries {
		if !entry.HasParticipant(studentID) {
			continue
		}
		a, ok := bySubject[entry.SubjectID]
		if !ok {
			a = &acc{}
			bySubject[entry.SubjectID] = a
		}
		a.meetings = append(a.meetings, Meeting{Date: entry.CreatedAt, Topic: entry.Topic, ClassLabel: entry.ClassLabel()})
		for _, note := range entry.PersonalNotes {
			if note.StudentID == studentID {
				a.notes = append(a.notes, note)
			}
		}
		if rating, ok := entry.Activeness[studentID]; ok {
			a.ratingSum += rating
			a.ratingCount++
		}
	}

	rollups := make([]SubjectRollup, 0, len(bySubject))
	for subjectID, a := range bySubject {
		sort.SliceStable(a.meetings, func(i, j int) bool { return a.meetings[i].Date.Before(a.meetings[j].Date) })
		var avg float64
		if a.ratingCount > 0 {
			avg = float64(a.ratingSum) / float64(a.ratingCount)
		}
		rollups = append(rollups, SubjectRollup{
			SubjectID:         subjectID,
			Meetings:          a.meetings,
			PersonalNotes:     a.notes,
			AverageActiveness: avg,
		})
	}
	sort.Slice(rollups, func(i, j int) bool { return rollups[i].SubjectID < rollups[j].SubjectID })
	return rollups, nil
}
