package attendance_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsyakila/backend/core/attendance"
	"github.com/smartsyakila/backend/storage/blob"
	"github.com/smartsyakila/backend/storage/document"
)

func setup(t *testing.T) *attendance.Service {
	t.Helper()
	return attendance.NewService(document.NewAttendanceRepository(blob.NewMemStore()))
}

func mark(t *testing.T, svc *attendance.Service, studentID, status string) {
	t.Helper()
	_, err := svc.Create(context.Background(), attendance.NewRecord{
		StudentID: studentID,
		Date:      time.Date(2021, 8, 1, 0, 0, 0, 0, time.UTC),
		Status:    status,
	})
	require.NoError(t, err)
}

func TestService_Summarize(t *testing.T) {
	svc := setup(t)

	mark(t, svc, "s1", attendance.StatusHadir)
	mark(t, svc, "s1", attendance.StatusHadir)
	mark(t, svc, "s1", attendance.StatusTerlambat)
	mark(t, svc, "s1", attendance.StatusSakit)
	mark(t, svc, "s1", attendance.StatusIzin)
	mark(t, svc, "s2", attendance.StatusHadir) // other student

	sum, err := svc.Summarize(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", sum.StudentID)
	assert.Equal(t, 2, sum.Hadir)
	assert.Equal(t, 1, sum.Terlambat)
	assert.Equal(t, 1, sum.Sakit)
	assert.Equal(t, 1, sum.Izin)
}

func TestService_Summarize_noRecords(t *testing.T) {
	svc := setup(t)

	sum, err := svc.Summarize(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, attendance.Summary{StudentID: "s1"}, sum)
}

func TestNewRecord_Validate_status(t *testing.T) {
	nr := attendance.NewRecord{StudentID: "s1", Status: "bolos"}
	require.Error(t, nr.Validate())

	nr.Status = attendance.StatusHadir
	require.NoError(t, nr.Validate())
}
