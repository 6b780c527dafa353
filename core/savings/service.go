package savings

import (
	"context"
	"errors"
	"sort"
	"time"
)

var ErrNotFound = errors.New("transaction not found")

type (
	Repository interface {
		QueryAllTransactions(ctx context.Context) ([]Transaction, error)
		QueryTransactionsByStudent(ctx context.Context, studentID string) ([]Transaction, error)
		CreateTransaction(ctx context.Context, trx Transaction) (Transaction, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nt NewTransaction) (Transaction, error) {
	date := nt.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	trx := Transaction{
		StudentID:   nt.StudentID,
		Date:        date,
		Type:        nt.Type,
		Amount:      nt.Amount,
		Description: nt.Description,
	}
	return svc.repo.CreateTransaction(ctx, trx)
}

func (svc *Service) ByStudent(ctx context.Context, studentID string) ([]Transaction, error) {
	return svc.repo.QueryTransactionsByStudent(ctx, studentID)
}

// Summarize derives a student's balance and transaction history.
// Balance is the sum of deposits minus the sum of withdrawals; both
// lists come back ordered by date, newest first.
func (svc *Service) Summarize(ctx context.Context, studentID string) (Summary, error) {
	trxs, err := svc.repo.QueryTransactionsByStudent(ctx, studentID)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		StudentID:   studentID,
		Deposits:    []Transaction{},
		Withdrawals: []Transaction{},
	}
	for _, trx := range trxs {
		switch trx.Type {
		case TypeDeposit:
			sum.Balance += trx.Amount
			sum.Deposits = append(sum.Deposits, trx)
		case TypeWithdrawal:
			sum.Balance -= trx.Amount
			sum.Withdrawals = append(sum.Withdrawals, trx)
		}
	}
	byDateDesc := func(trxs []Transaction) func(i, j int) bool {
		return func(i, j int) bool { return trxs[i].Date.After(trxs[j].Date) }
	}
	sort.SliceStable(sum.Deposits, byDateDesc(sum.Deposits))
	sort.SliceStable(sum.Withdrawals, byDateDesc(sum.Withdrawals))
	return sum, nil
}
