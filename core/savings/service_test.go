package savings_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsyakila/backend/core/savings"
	"github.com/smartsyakila/backend/storage/blob"
	"github.com/smartsyakila/backend/storage/document"
)

func setup(t *testing.T) *savings.Service {
	t.Helper()
	return savings.NewService(document.NewSavingsRepository(blob.NewMemStore()))
}

func record(t *testing.T, svc *savings.Service, studentID, typ string, amount int64, date time.Time) savings.Transaction {
	t.Helper()
	trx, err := svc.Create(context.Background(), savings.NewTransaction{
		StudentID: studentID,
		Date:      date,
		Type:      typ,
		Amount:    amount,
	})
	require.NoError(t, err)
	return trx
}

func TestService_Summarize_balance(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()
	day := time.Date(2021, 8, 1, 0, 0, 0, 0, time.UTC)

	record(t, svc, "s1", savings.TypeDeposit, 50000, day)
	record(t, svc, "s1", savings.TypeDeposit, 25000, day.AddDate(0, 0, 1))
	record(t, svc, "s1", savings.TypeWithdrawal, 30000, day.AddDate(0, 0, 2))
	record(t, svc, "s2", savings.TypeDeposit, 10000, day) // other student

	sum, err := svc.Summarize(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(45000), sum.Balance)
	assert.Len(t, sum.Deposits, 2)
	assert.Len(t, sum.Withdrawals, 1)
}

func TestService_Summarize_newestFirst(t *testing.T) {
	svc := setup(t)
	day := time.Date(2021, 8, 1, 0, 0, 0, 0, time.UTC)

	record(t, svc, "s1", savings.TypeDeposit, 1000, day)
	record(t, svc, "s1", savings.TypeDeposit, 3000, day.AddDate(0, 0, 2))
	record(t, svc, "s1", savings.TypeDeposit, 2000, day.AddDate(0, 0, 1))

	sum, err := svc.Summarize(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, sum.Deposits, 3)
	assert.Equal(t, int64(3000), sum.Deposits[0].Amount)
	assert.Equal(t, int64(2000), sum.Deposits[1].Amount)
	assert.Equal(t, int64(1000), sum.Deposits[2].Amount)
}

func TestService_Summarize_noTransactions(t *testing.T) {
	svc := setup(t)

	sum, err := svc.Summarize(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), sum.Balance)
	assert.Empty(t, sum.Deposits)
	assert.Empty(t, sum.Withdrawals)
	assert.NotNil(t, sum.Deposits)
	assert.NotNil(t, sum.Withdrawals)
}

func TestService_Create_defaultsDate(t *testing.T) {
	svc := setup(t)

	trx, err := svc.Create(context.Background(), savings.NewTransaction{
		StudentID: "s1",
		Type:      savings.TypeDeposit,
		Amount:    5000,
	})
	require.NoError(t, err)
	assert.False(t, trx.Date.IsZero())
	assert.NotEmpty(t, trx.ID)
}

func TestNewTransaction_Validate(t *testing.T) {
	nt := savings.NewTransaction{StudentID: "s1", Type: "transfer", Amount: -5}
	err := nt.Validate()
	require.Error(t, err)
}
