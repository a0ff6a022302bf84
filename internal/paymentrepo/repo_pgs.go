// Package paymentrepo manages repository layer of balance-moving transactions.
package paymentrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-petr/gig-ledger/internal/domain"
	"github.com/go-petr/gig-ledger/internal/entryrepo"
	"github.com/go-petr/gig-ledger/internal/jobrepo"
	"github.com/go-petr/gig-ledger/internal/profilerepo"
	"github.com/go-petr/gig-ledger/pkg/dbpkg"
	"github.com/go-petr/gig-ledger/pkg/errorspkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RepoPGS facilitates payment repository layer logic. It owns the connection
// so that every operation runs in its own transaction.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns payment RepoPGS.
func NewRepoPGS(conn *sql.DB) *RepoPGS {
	return &RepoPGS{
		conn: conn,
	}
}

// knownTxError passes through errors the service layer reacts to and collapses
// everything else to ErrInternal.
func knownTxError(err error) error {
	switch err {
	case domain.ErrJobNotFound,
		domain.ErrJobAlreadyPaid,
		domain.ErrProfileNotFound,
		domain.ErrInsufficientFunds,
		domain.ErrDepositCapExceeded,
		domain.ErrTxConflict:
		return err
	}

	if dbpkg.IsRetryable(err) {
		return domain.ErrTxConflict
	}

	return errorspkg.ErrInternal
}

// PayTx debits the client, credits the contractor and marks the job paid
// within a single database transaction.
//
// The job row is locked first so that concurrent payments of the same job
// serialize: the loser re-reads paid = true and gets ErrJobAlreadyPaid.
func (r *RepoPGS) PayTx(ctx context.Context, arg domain.PayJobParams) (domain.PayJobTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.PayJobTxResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	jobRepo := jobrepo.NewRepoPGS(tx)
	profileRepo := profilerepo.NewRepoPGS(tx)
	entryRepo := entryrepo.NewRepoPGS(tx)

	job, err := jobRepo.GetForUpdate(ctx, arg.JobID)
	if err != nil {
		l.Error().Err(err).Send()
		return result, knownTxError(err)
	}

	if job.Paid {
		return result, domain.ErrJobAlreadyPaid
	}

	result.Job, err = jobRepo.MarkPaid(ctx, arg.JobID, time.Now().UTC())
	if err != nil {
		l.Error().Err(err).Send()
		return result, knownTxError(err)
	}

	var client, contractor domain.Profile
	// To avoid deadlocks execute statements in consistent id order
	if arg.ClientID < arg.ContractorID {
		argAddBalance := addBalanceParams{
			profile1ID: arg.ClientID,
			amount1:    "-" + arg.Price,
			profile2ID: arg.ContractorID,
			amount2:    arg.Price,
		}

		client, contractor, err = addBalances(ctx, profileRepo, argAddBalance)
	} else {
		argAddBalance := addBalanceParams{
			profile1ID: arg.ContractorID,
			amount1:    arg.Price,
			profile2ID: arg.ClientID,
			amount2:    "-" + arg.Price,
		}

		contractor, client, err = addBalances(ctx, profileRepo, argAddBalance)
	}

	if err != nil {
		l.Error().Err(err).Send()
		return result, knownTxError(err)
	}

	result.Client, result.Contractor = client, contractor

	result.ClientEntry, err = entryRepo.Create(ctx, "-"+arg.Price, arg.ClientID, &arg.JobID)
	if err != nil {
		l.Error().Err(err).Send()
		return result, knownTxError(err)
	}

	result.PayeeEntry, err = entryRepo.Create(ctx, arg.Price, arg.ContractorID, &arg.JobID)
	if err != nil {
		l.Error().Err(err).Send()
		return result, knownTxError(err)
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, knownTxError(err)
	}

	return result, nil
}

type addBalanceParams struct {
	profile1ID int64
	amount1    string
	profile2ID int64
	amount2    string
}

func addBalances(ctx context.Context, r *profilerepo.RepoPGS, arg addBalanceParams) (domain.Profile, domain.Profile, error) {
	profile1, err := r.AddBalance(ctx, arg.amount1, arg.profile1ID)
	if err != nil {
		return domain.Profile{}, domain.Profile{}, err
	}

	profile2, err := r.AddBalance(ctx, arg.amount2, arg.profile2ID)
	if err != nil {
		return domain.Profile{}, domain.Profile{}, err
	}

	return profile1, profile2, nil
}

var depositCap = decimal.RequireFromString("1.25")

// DepositTx tops up the client balance within a single database transaction.
//
// The profile row is locked so that the debt-based cap cannot be raced by a
// concurrent deposit; the cap is re-checked under the lock against the unpaid
// jobs total of the client's non-terminated contracts.
func (r *RepoPGS) DepositTx(ctx context.Context, clientID int64, amount string) (domain.DepositTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.DepositTxResult

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		return result, domain.ErrInvalidAmount
	}

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	jobRepo := jobrepo.NewRepoPGS(tx)
	profileRepo := profilerepo.NewRepoPGS(tx)
	entryRepo := entryrepo.NewRepoPGS(tx)

	if _, err := profileRepo.GetForUpdate(ctx, clientID); err != nil {
		l.Error().Err(err).Send()
		return result, knownTxError(err)
	}

	debt, err := jobRepo.UnpaidTotalForClient(ctx, clientID)
	if err != nil {
		l.Error().Err(err).Send()
		return result, knownTxError(err)
	}

	debtDecimal, err := decimal.NewFromString(debt)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	if amountDecimal.GreaterThan(debtDecimal.Mul(depositCap)) {
		return result, domain.ErrDepositCapExceeded
	}

	result.Client, err = profileRepo.AddBalance(ctx, amount, clientID)
	if err != nil {
		l.Error().Err(err).Send()
		return result, knownTxError(err)
	}

	result.Entry, err = entryRepo.Create(ctx, amount, clientID, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, knownTxError(err)
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, knownTxError(err)
	}

	return result, nil
}
