package document

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/smartsyakila/backend/core/savings"
	"github.com/smartsyakila/backend/storage/blob"
)

type savingsRepository struct {
	store blob.Store
}

var _ savings.Repository = (*savingsRepository)(nil)

func NewSavingsRepository(store blob.Store) savings.Repository {
	return &savingsRepository{store: store}
}

func (repo *savingsRepository) load(ctx context.Context) ([]savings.Transaction, error) {
	raw, err := repo.store.Get(ctx, blob.KeySavings)
	if err == blob.ErrAbsent {
		return []savings.Transaction{}, nil
	}
	if err != nil {
		return nil, err
	}
	var trxs []savings.Transaction
	if err := json.Unmarshal(raw, &trxs); err != nil {
		return nil, errors.Wrap(err, "decoding savings document")
	}
	return trxs, nil
}

func (repo *savingsRepository) QueryAllTransactions(ctx context.Context) ([]savings.Transaction, error) {
	return repo.load(ctx)
}

func (repo *savingsRepository) QueryTransactionsByStudent(ctx context.Context, studentID string) ([]savings.Transaction, error) {
	trxs, err := repo.load(ctx)
	if err != nil {
		return nil, err
	}
	forStudent := make([]savings.Transaction, 0, len(trxs))
	for _, trx := range trxs {
		if trx.StudentID == studentID {
			forStudent = append(forStudent, trx)
		}
	}
	return forStudent, nil
}

func (repo *savingsRepository) CreateTransaction(ctx context.Context, trx savings.Transaction) (savings.Transaction, error) {
	trxs, err := repo.load(ctx)
	if err != nil {
		return savings.Transaction{}, err
	}
	trx.ID = uuid.New().String()
	trxs = append(trxs, trx)
	raw, err := json.Marshal(trxs)
	if err != nil {
		return savings.Transaction{}, errors.Wrap(err, "encoding savings document")
	}
	if err := repo.store.Put(ctx, blob.KeySavings, raw); err != nil {
		return savings.Transaction{}, err
	}
	return trx, nil
}
