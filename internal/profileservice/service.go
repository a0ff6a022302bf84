// Package profileservice manages business logic layer of profiles.
package profileservice

import (
	"context"

	"github.com/go-petr/gig-ledger/internal/domain"
	"github.com/go-petr/gig-ledger/pkg/errorspkg"
	"github.com/go-petr/gig-ledger/pkg/passpkg"
	"github.com/rs/zerolog"
)

// Repo provides data access layer interface needed by profile service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package profileservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateProfileParams) (domain.Profile, error)
	Get(ctx context.Context, id int64) (domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (domain.Profile, error)
}

// Service facilitates profile service layer logic.
type Service struct {
	repo Repo
}

// New returns profile service struct to manage profile business logic.
func New(pr Repo) *Service {
	return &Service{
		repo: pr,
	}
}

// NewProfileWithoutPassword returns profile with removed sensitive data.
func NewProfileWithoutPassword(p domain.Profile) domain.ProfileWithoutPassword {
	return domain.ProfileWithoutPassword{
		ID:         p.ID,
		Email:      p.Email,
		FullName:   p.FullName,
		Profession: p.Profession,
		Role:       p.Role,
		Balance:    p.Balance,
		CreatedAt:  p.CreatedAt,
	}
}

// Create creates and returns a profile.
func (s *Service) Create(ctx context.Context, email, password, fullName, profession, role string) (domain.ProfileWithoutPassword, error) {
	l := zerolog.Ctx(ctx)

	var result domain.ProfileWithoutPassword

	hashedPassword, err := passpkg.Hash(password)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	arg := domain.CreateProfileParams{
		Email:          email,
		HashedPassword: hashedPassword,
		FullName:       fullName,
		Profession:     profession,
		Role:           role,
	}

	gotProfile, err := s.repo.Create(ctx, arg)
	if err != nil {
		return result, err
	}

	result = NewProfileWithoutPassword(gotProfile)

	return result, nil
}

// Get returns the profile with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Profile, error) {
	return s.repo.Get(ctx, id)
}

// CheckPassword checks if the password is valid for the given email.
func (s *Service) CheckPassword(ctx context.Context, email, pass string) (domain.ProfileWithoutPassword, error) {
	l := zerolog.Ctx(ctx)

	var response domain.ProfileWithoutPassword

	gotProfile, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return response, err
	}

	err = passpkg.Check(pass, gotProfile.HashedPassword)
	if err != nil {
		l.Warn().Err(err).Send()
		return response, domain.ErrWrongPassword
	}

	response = NewProfileWithoutPassword(gotProfile)

	return response, nil
}
