package attendance

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("attendance record not found")

type (
	Repository interface {
		QueryAllRecords(ctx context.Context) ([]Record, error)
		QueryRecordsByStudent(ctx context.Context, studentID string) ([]Record, error)
		CreateRecord(ctx context.Context, rec Record) (Record, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nr NewRecord) (Record, error) {
	date := nr.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	rec := Record{
		StudentID: nr.StudentID,
		Date:      date,
		Status:    nr.Status,
		Note:      nr.Note,
	}
	return svc.repo.CreateRecord(ctx, rec)
}

func (svc *Service) ByStudent(ctx context.Context, studentID string) ([]Record, error) {
	return svc.repo.QueryRecordsByStudent(ctx, studentID)
}

// Summarize counts a student's attendance records by status.
func (svc *Service) Summarize(ctx context.Context, studentID string) (Summary, error) {
	recs, err := svc.repo.QueryRecordsByStudent(ctx, studentID)
	if err != nil {
		return Summary{}, err
	}
	sum := Summary{StudentID: studentID}
	for _, rec := range recs {
		switch rec.Status {
		case StatusHadir:
			sum.Hadir++
		case StatusTerlambat:
			sum.Terlambat++
		case StatusSakit:
			sum.Sakit++
		case StatusIzin:
			sum.Izin++
		}
	}
	return sum, nil
}
