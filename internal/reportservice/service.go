// Package reportservice manages business logic layer of payment reports.
package reportservice

import (
	"context"
	"time"

	"github.com/go-petr/gig-ledger/internal/domain"
)

// DefaultBestClientsLimit caps the best clients ranking when no limit is given.
const DefaultBestClientsLimit = 2

// Repo provides data access layer interface needed by report service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package reportservice
type Repo interface {
	BestProfession(ctx context.Context, start, end time.Time) (domain.ProfessionEarnings, error)
	BestClients(ctx context.Context, start, end time.Time, limit int32) ([]domain.ClientSpend, error)
}

// Service facilitates report service layer logic.
type Service struct {
	repo Repo
}

// New returns report service struct to manage report business logic.
func New(rr Repo) *Service {
	return &Service{
		repo: rr,
	}
}

// BestProfession returns the profession that earned the most over jobs paid
// within [start, end).
func (s *Service) BestProfession(ctx context.Context, start, end time.Time) (domain.ProfessionEarnings, error) {
	if !start.Before(end) {
		return domain.ProfessionEarnings{}, domain.ErrInvalidPeriod
	}

	return s.repo.BestProfession(ctx, start, end)
}

// BestClients returns up to limit clients that paid the most for jobs within
// [start, end). Non-positive limit falls back to DefaultBestClientsLimit.
func (s *Service) BestClients(ctx context.Context, start, end time.Time, limit int32) ([]domain.ClientSpend, error) {
	if !start.Before(end) {
		return nil, domain.ErrInvalidPeriod
	}

	if limit <= 0 {
		limit = DefaultBestClientsLimit
	}

	return s.repo.BestClients(ctx, start, end, limit)
}
