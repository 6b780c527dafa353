package document

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/smartsyakila/backend/core/attendance"
	"github.com/smartsyakila/backend/storage/blob"
)

type attendanceRepository struct {
	store blob.Store
}

var _ attendance.Repository = (*attendanceRepository)(nil)

func NewAttendanceRepository(store blob.Store) attendance.Repository {
	return &attendanceRepository{store: store}
}

func (repo *attendanceRepository) load(ctx context.Context) ([]attendance.Record, error) {
	raw, err := repo.store.Get(ctx, blob.KeyAttendance)
	if err == blob.ErrAbsent {
		return []attendance.Record{}, nil
	}
	if err != nil {
		return nil, err
	}
	var recs []attendance.Record
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, errors.Wrap(err, "decoding attendance document")
	}
	return recs, nil
}

func (repo *attendanceRepository) QueryAllRecords(ctx context.Context) ([]attendance.Record, error) {
	return repo.load(ctx)
}

func (repo *attendanceRepository) QueryRecordsByStudent(ctx context.Context, studentID string) ([]attendance.Record, error) {
	recs, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}
	forStudent := make([]attendance.Record, 0, len(recs))
	for _, rec := range recs {
		if rec.StudentID == studentID {
			forStudent = append(forStudent, rec)
		}
	}
	return forStudent, nil
}

func (repo *attendanceRepository) CreateRecord(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	recs, err := repo.load(ctx)
	if err != nil {
		return attendance.Record{}, err
	}
	rec.ID = uuid.New().String()
	recs = append(recs, rec)
	raw, err := json.Marshal(recs)
	if err != nil {
		return attendance.Record{}, errors.Wrap(err, "encoding attendance document")
	}
	if err := repo.store.Put(ctx, blob.KeyAttendance, raw); err != nil {
		return attendance.Record{}, err
	}
	return rec, nil
}
