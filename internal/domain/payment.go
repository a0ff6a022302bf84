package domain

import "errors"

var (
	// ErrInvalidAmount indicates invalid amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates non-positive amount.
	ErrNegativeAmount = errors.New("non-positive amount")
	// ErrInsufficientFunds indicates that the client balance does not cover the job price.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrDepositCapExceeded indicates that the deposit exceeds the allowed share of unpaid debt.
	ErrDepositCapExceeded = errors.New("deposit exceeds the allowed share of unpaid jobs total")
	// ErrTxConflict indicates that the transaction could not commit due to a
	// concurrent conflict and the whole operation should be re-run.
	ErrTxConflict = errors.New("transaction conflict")
)

// PayJobParams is the input data for the job payment transaction.
type PayJobParams struct {
	JobID        int64  `json:"job_id"`
	ClientID     int64  `json:"client_id"`
	ContractorID int64  `json:"contractor_id"`
	Price        string `json:"price"`
}

// PayJobTxResult is the result of the job payment transaction.
type PayJobTxResult struct {
	Job         Job     `json:"job"`
	Client      Profile `json:"client"`
	Contractor  Profile `json:"contractor"`
	ClientEntry Entry   `json:"clientEntry"`
	PayeeEntry  Entry   `json:"payeeEntry"`
}

// DepositTxResult is the result of the balance deposit transaction.
type DepositTxResult struct {
	Client Profile `json:"client"`
	Entry  Entry   `json:"entry"`
}
