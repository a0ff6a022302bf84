// Package paymentservice manages business logic layer of payments and deposits.
package paymentservice

import (
	"context"

	"github.com/go-petr/gig-ledger/internal/domain"
	"github.com/go-petr/gig-ledger/pkg/errorspkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by payment service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package paymentservice
type Repo interface {
	PayTx(ctx context.Context, arg domain.PayJobParams) (domain.PayJobTxResult, error)
	DepositTx(ctx context.Context, clientID int64, amount string) (domain.DepositTxResult, error)
}

// JobService provides job lookups needed by payment service layer.
type JobService interface {
	Get(ctx context.Context, id int64) (domain.Job, error)
	UnpaidTotalForClient(ctx context.Context, clientID int64) (string, error)
}

// ContractService provides contract lookups needed by payment service layer.
type ContractService interface {
	Get(ctx context.Context, id int64) (domain.Contract, error)
}

// ProfileService provides profile lookups needed by payment service layer.
type ProfileService interface {
	Get(ctx context.Context, id int64) (domain.Profile, error)
}

// Service facilitates payment service layer logic.
type Service struct {
	repo            Repo
	jobService      JobService
	contractService ContractService
	profileService  ProfileService
}

// New returns payment service struct to manage payment business logic.
func New(r Repo, js JobService, cs ContractService, ps ProfileService) *Service {
	return &Service{
		repo:            r,
		jobService:      js,
		contractService: cs,
		profileService:  ps,
	}
}

// A transaction that lost a concurrent conflict is re-run from scratch.
const txAttempts = 3

var depositCap = decimal.RequireFromString("1.25")

// PayJob moves the job price from the client balance to the contractor balance
// and marks the job paid, exactly once per job.
//
// The caller must be the client of the job's non-terminated contract. Paying an
// already paid job returns ErrJobAlreadyPaid without any mutation.
func (s *Service) PayJob(ctx context.Context, callerProfileID, jobID int64) (domain.PayJobTxResult, error) {
	var (
		result domain.PayJobTxResult
		err    error
	)

	for attempt := 0; attempt < txAttempts; attempt++ {
		result, err = s.payJob(ctx, callerProfileID, jobID)
		if err != domain.ErrTxConflict {
			return result, err
		}
	}

	return result, err
}

func (s *Service) payJob(ctx context.Context, callerProfileID, jobID int64) (domain.PayJobTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.PayJobTxResult

	job, err := s.jobService.Get(ctx, jobID)
	if err != nil {
		l.Info().Err(err).Send()
		return result, err
	}

	contract, err := s.contractService.Get(ctx, job.ContractID)
	if err != nil {
		l.Error().Err(err).Send()
		return result, err
	}

	if contract.ClientID != callerProfileID {
		return result, domain.ErrNotContractClient
	}

	if !contract.Active() {
		return result, domain.ErrContractNotActive
	}

	if job.Paid {
		return result, domain.ErrJobAlreadyPaid
	}

	client, err := s.profileService.Get(ctx, contract.ClientID)
	if err != nil {
		l.Error().Err(err).Send()
		return result, err
	}

	price, err := decimal.NewFromString(job.Price)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	balance, err := decimal.NewFromString(client.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	// Price equal to balance is allowed: the balance may land at exactly 0.
	if price.GreaterThan(balance) {
		return result, domain.ErrInsufficientFunds
	}

	arg := domain.PayJobParams{
		JobID:        job.ID,
		ClientID:     contract.ClientID,
		ContractorID: contract.ContractorID,
		Price:        job.Price,
	}

	return s.repo.PayTx(ctx, arg)
}

// Deposit tops up the client balance by amount, bounded by 125% of the
// client's unpaid jobs total. With no unpaid jobs the cap is 0 and every
// positive deposit is rejected.
func (s *Service) Deposit(ctx context.Context, clientProfileID int64, amount string) (domain.DepositTxResult, error) {
	var (
		result domain.DepositTxResult
		err    error
	)

	for attempt := 0; attempt < txAttempts; attempt++ {
		result, err = s.deposit(ctx, clientProfileID, amount)
		if err != domain.ErrTxConflict {
			return result, err
		}
	}

	return result, err
}

func (s *Service) deposit(ctx context.Context, clientProfileID int64, amount string) (domain.DepositTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.DepositTxResult

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return result, domain.ErrInvalidAmount
	}

	if amountDecimal.LessThanOrEqual(decimal.Zero) {
		return result, domain.ErrNegativeAmount
	}

	client, err := s.profileService.Get(ctx, clientProfileID)
	if err != nil {
		l.Info().Err(err).Send()
		return result, err
	}

	if client.Role != domain.RoleClient {
		return result, domain.ErrNotClient
	}

	debt, err := s.jobService.UnpaidTotalForClient(ctx, clientProfileID)
	if err != nil {
		l.Error().Err(err).Send()
		return result, err
	}

	debtDecimal, err := decimal.NewFromString(debt)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	if amountDecimal.GreaterThan(debtDecimal.Mul(depositCap)) {
		return result, domain.ErrDepositCapExceeded
	}

	return s.repo.DepositTx(ctx, clientProfileID, amount)
}
