package savings

import (
	"time"

	"github.com/smartsyakila/backend/core"
)

// Transaction types.
const (
	TypeDeposit    = "deposit"
	TypeWithdrawal = "withdrawal"
)

// Transaction is one dated savings movement for a student.
// Amounts are whole rupiah.
type Transaction struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"studentId"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description,omitempty"`
}

// NewTransaction contains information needed to record a savings movement.
type NewTransaction struct {
	StudentID   string    `json:"studentId" validate:"required"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type" validate:"required,oneof=deposit withdrawal"`
	Amount      int64     `json:"amount" validate:"required,gt=0"`
	Description string    `json:"description"`
}

func (nt *NewTransaction) Validate() error {
	nt.Description = core.CleanString(nt.Description)
	return core.Validate.Struct(nt)
}

// Summary is the derived savings view for one student.
type Summary struct {
	StudentID   string        `json:"studentId"`
	Balance     int64         `json:"balance"`
	Deposits    []Transaction `json:"deposits"`
	Withdrawals []Transaction `json:"withdrawals"`
}
