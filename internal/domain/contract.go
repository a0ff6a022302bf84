package domain

import (
	"errors"
	"time"
)

// Contract statuses. The lifecycle is new -> in_progress -> terminated;
// terminated is terminal.
const (
	ContractStatusNew        = "new"
	ContractStatusInProgress = "in_progress"
	ContractStatusTerminated = "terminated"
)

var (
	// ErrContractNotFound indicates that the contract is not found.
	ErrContractNotFound = errors.New("contract not found")
	// ErrNotContractParty indicates that the profile is neither the client nor the contractor of the contract.
	ErrNotContractParty = errors.New("profile does not belong to the contract")
	// ErrNotContractClient indicates that the profile is not the paying client of the contract.
	ErrNotContractClient = errors.New("profile is not the client of the contract")
	// ErrContractNotActive indicates that the contract has been terminated.
	ErrContractNotActive = errors.New("contract is terminated")
)

// Contract holds an agreement between a client and a contractor.
type Contract struct {
	ID           int64     `json:"id"`
	ClientID     int64     `json:"client_id"`
	ContractorID int64     `json:"contractor_id"`
	Terms        string    `json:"terms"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Active reports whether the contract has not been terminated.
func (c Contract) Active() bool {
	return c.Status != ContractStatusTerminated
}
