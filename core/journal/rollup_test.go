package journal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsyakila/backend/core/journal"
	"github.com/smartsyakila/backend/storage/blob"
	"github.com/smartsyakila/backend/storage/document"
)

func setup(t *testing.T) *journal.Service {
	t.Helper()
	return journal.NewService(document.NewJournalRepository(blob.NewMemStore()))
}

func createEntry(t *testing.T, svc *journal.Service, facID, subjectID string, activeness map[string]int) journal.AcademicEntry {
	t.Helper()
	entry, err := svc.CreateAcademic(context.Background(), journal.NewAcademicEntry{
		FacilitatorID: facID,
		SubjectID:     subjectID,
		Topic:         "Topik",
		Activeness:    activeness,
	})
	require.NoError(t, err)
	return entry
}

func TestService_AcademicRollup_average(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	createEntry(t, svc, "fac1", "subj1", map[string]int{"s1": 4, "s2": 5})
	createEntry(t, svc, "fac1", "subj1", map[string]int{"s1": 2})

	rollups, err := svc.AcademicRollup(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, rollups, 1)
	assert.Equal(t, "subj1", rollups[0].SubjectID)
	assert.Len(t, rollups[0].Meetings, 2)
	assert.Equal(t, 3.0, rollups[0].AverageActiveness) // (4+2)/2

	rollups, err = svc.AcademicRollup(ctx, "s2")
	require.NoError(t, err)
	require.Len(t, rollups, 1)
	assert.Len(t, rollups[0].Meetings, 1)
	assert.Equal(t, 5.0, rollups[0].AverageActiveness)
}

func TestService_AcademicRollup_groupsBySubject(t *testing.T) {
	svc := setup(t)

	createEntry(t, svc, "fac1", "subjB", map[string]int{"s1": 3})
	createEntry(t, svc, "fac1", "subjA", map[string]int{"s1": 5})
	createEntry(t, svc, "fac2", "subjA", map[string]int{"s2": 1}) // s1 absent

	rollups, err := svc.AcademicRollup(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, rollups, 2)
	assert.Equal(t, "subjA", rollups[0].SubjectID)
	assert.Equal(t, "subjB", rollups[1].SubjectID)
	assert.Equal(t, 5.0, rollups[0].AverageActiveness)
	assert.Equal(t, 3.0, rollups[1].AverageActiveness)
}

// A student who only appears through a personal note participates in
// the meeting but contributes no rating: the meeting must show up while
// the average stays untouched by it.
func TestService_AcademicRollup_noteOnlyParticipant(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	entry := createEntry(t, svc, "fac1", "subj1", map[string]int{"s1": 4})
	_, err := svc.AddAcademicNote(ctx, journal.NewPersonalNote{
		EntryID:       entry.ID,
		StudentID:     "s1",
		Note:          "perlu pendampingan",
		FacilitatorID: "fac1",
	})
	require.NoError(t, err)

	rollups, err := svc.AcademicRollup(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, rollups, 1)
	require.Len(t, rollups[0].PersonalNotes, 1)
	assert.Equal(t, "perlu pendampingan", rollups[0].PersonalNotes[0].Note)
	assert.Equal(t, 4.0, rollups[0].AverageActiveness)
}

// Group-mode sessions carry no class reference; their recap meetings
// show the neutral group label instead.
func TestService_AcademicRollup_classLabel(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	createEntry(t, svc, "fac1", "subjA", map[string]int{"s1": 4}) // no class = group mode
	_, err := svc.CreateAcademic(ctx, journal.NewAcademicEntry{
		FacilitatorID: "fac1",
		ClassID:       "class1",
		SubjectID:     "subjB",
		Topic:         "Topik",
		Activeness:    map[string]int{"s1": 3},
	})
	require.NoError(t, err)

	rollups, err := svc.AcademicRollup(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, rollups, 2)
	require.Len(t, rollups[0].Meetings, 1)
	assert.Equal(t, journal.GroupClassLabel, rollups[0].Meetings[0].ClassLabel)
	require.Len(t, rollups[1].Meetings, 1)
	assert.Equal(t, "class1", rollups[1].Meetings[0].ClassLabel)
}

// A student rated in no entry at all has an average of exactly 0, not NaN.
func TestService_AcademicRollup_zeroRatingsIsZero(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	entry := createEntry(t, svc, "fac1", "subj1", map[string]int{"s1": 4, "s2": 3})
	_, err := svc.AddAcademicNote(ctx, journal.NewPersonalNote{
		EntryID:       entry.ID,
		StudentID:     "s2",
		Note:          "catatan",
		FacilitatorID: "fac1",
	})
	require.NoError(t, err)

	// s3 was never a participant anywhere
	rollups, err := svc.AcademicRollup(ctx, "s3")
	require.NoError(t, err)
	assert.Empty(t, rollups)

	// a second entry where s2 is noted about but not rated
	second := createEntry(t, svc, "fac1", "subj2", map[string]int{"s1": 2})
	_, err = svc.AddAcademicNote(ctx, journal.NewPersonalNote{
		EntryID:       second.ID,
		StudentID:     "s1",
		Note:          "aktif sekali",
		FacilitatorID: "fac1",
	})
	require.NoError(t, err)

	rollups, err = svc.AcademicRollup(ctx, "s2")
	require.NoError(t, err)
	require.Len(t, rollups, 1)
	assert.Equal(t, 3.0, rollups[0].AverageActiveness)
}
