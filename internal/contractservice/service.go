// Package contractservice manages business logic layer of contracts.
package contractservice

import (
	"context"

	"github.com/go-petr/gig-ledger/internal/domain"
)

// Repo provides data access layer interface needed by contract service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package contractservice
type Repo interface {
	Get(ctx context.Context, id int64) (domain.Contract, error)
	ListActiveForProfile(ctx context.Context, profileID int64) ([]domain.Contract, error)
}

// Service facilitates contract service layer logic.
type Service struct {
	repo Repo
}

// New returns contract service struct to manage contract business logic.
func New(cr Repo) *Service {
	return &Service{
		repo: cr,
	}
}

// Get returns the contract with the given id without any visibility check.
func (s *Service) Get(ctx context.Context, id int64) (domain.Contract, error) {
	return s.repo.Get(ctx, id)
}

// GetForProfile returns the contract with the given id if the profile is a
// party of it, ErrNotContractParty otherwise.
func (s *Service) GetForProfile(ctx context.Context, profileID, id int64) (domain.Contract, error) {
	contract, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Contract{}, err
	}

	if contract.ClientID != profileID && contract.ContractorID != profileID {
		return domain.Contract{}, domain.ErrNotContractParty
	}

	return contract, nil
}

// ListActiveForProfile returns the non-terminated contracts the profile is a party of.
func (s *Service) ListActiveForProfile(ctx context.Context, profileID int64) ([]domain.Contract, error) {
	return s.repo.ListActiveForProfile(ctx, profileID)
}
