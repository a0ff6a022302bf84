// Package jobservice manages business logic layer of jobs.
package jobservice

import (
	"context"

	"github.com/go-petr/gig-ledger/internal/domain"
)

// Repo provides data access layer interface needed by job service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package jobservice
type Repo interface {
	Get(ctx context.Context, id int64) (domain.Job, error)
	ListUnpaidForProfile(ctx context.Context, profileID int64) ([]domain.Job, error)
	UnpaidTotalForClient(ctx context.Context, clientID int64) (string, error)
}

// Service facilitates job service layer logic.
type Service struct {
	repo Repo
}

// New returns job service struct to manage job business logic.
func New(jr Repo) *Service {
	return &Service{
		repo: jr,
	}
}

// Get returns the job with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Job, error) {
	return s.repo.Get(ctx, id)
}

// ListUnpaidForProfile returns the unpaid jobs under active contracts the
// profile is a party of.
func (s *Service) ListUnpaidForProfile(ctx context.Context, profileID int64) ([]domain.Job, error) {
	return s.repo.ListUnpaidForProfile(ctx, profileID)
}

// UnpaidTotalForClient returns the client's debt: the sum of prices of their
// unpaid jobs under non-terminated contracts.
func (s *Service) UnpaidTotalForClient(ctx context.Context, clientID int64) (string, error) {
	return s.repo.UnpaidTotalForClient(ctx, clientID)
}
