package domain

import "errors"

var (
	// ErrNoPaidJobs indicates that no paid jobs fall into the requested period.
	ErrNoPaidJobs = errors.New("no paid jobs in the period")
	// ErrInvalidPeriod indicates that the period start is not before its end.
	ErrInvalidPeriod = errors.New("period start must be before its end")
)

// ProfessionEarnings holds the total earned by contractors of one profession.
type ProfessionEarnings struct {
	Profession string `json:"profession"`
	Earned     string `json:"earned"`
}

// ClientSpend holds the total a client paid for jobs.
type ClientSpend struct {
	ClientID int64  `json:"id"`
	FullName string `json:"full_name"`
	Paid     string `json:"paid"`
}
