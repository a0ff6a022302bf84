package domain

import (
	"errors"
	"time"
)

var (
	// ErrJobNotFound indicates that the job is not found.
	ErrJobNotFound = errors.New("job not found")
	// ErrJobAlreadyPaid indicates that the job has already been paid for.
	ErrJobAlreadyPaid = errors.New("job is already paid")
	// ErrInvalidPrice indicates an invalid job price.
	ErrInvalidPrice = errors.New("invalid price")
)

// Job holds a billable unit of work under a contract.
// PaymentDate is set exactly once, when Paid flips to true.
type Job struct {
	ID          int64      `json:"id"`
	ContractID  int64      `json:"contract_id"`
	Description string     `json:"description"`
	Price       string     `json:"price"` // must be positive
	Paid        bool       `json:"paid"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
