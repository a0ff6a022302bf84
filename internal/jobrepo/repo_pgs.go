// Package jobrepo manages repository layer of jobs.
package jobrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-petr/gig-ledger/internal/domain"
	"github.com/go-petr/gig-ledger/pkg/dbpkg"
	"github.com/go-petr/gig-ledger/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates job repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns job RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

func scanJob(row *sql.Row, j *domain.Job) error {
	var paymentDate sql.NullTime

	err := row.Scan(
		&j.ID,
		&j.ContractID,
		&j.Description,
		&j.Price,
		&j.Paid,
		&paymentDate,
		&j.CreatedAt,
	)

	if paymentDate.Valid {
		j.PaymentDate = &paymentDate.Time
	}

	return err
}

const createQuery = `
INSERT INTO
    jobs (contract_id, description, price)
VALUES
    ($1, $2, $3)
RETURNING id, contract_id, description, price, paid, payment_date, created_at
`

// Create creates the job and then returns it.
func (r *RepoPGS) Create(ctx context.Context, contractID int64, description, price string) (domain.Job, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, contractID, description, price)

	var j domain.Job

	if err := scanJob(row, &j); err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "jobs_contract_id_fkey":
				return j, domain.ErrContractNotFound
			case "jobs_price_check":
				return j, domain.ErrInvalidPrice
			}
		}

		return j, errorspkg.ErrInternal
	}

	return j, nil
}

const getQuery = `
SELECT
	id, contract_id, description, price, paid, payment_date, created_at
FROM jobs
WHERE id = $1
`

// Get returns the job with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Job, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var j domain.Job

	if err := scanJob(row, &j); err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return j, domain.ErrJobNotFound
		}

		return j, errorspkg.ErrInternal
	}

	return j, nil
}

const getForUpdateQuery = `
SELECT
	id, contract_id, description, price, paid, payment_date, created_at
FROM jobs
WHERE id = $1
FOR UPDATE
`

// GetForUpdate returns the job with the given id locking its row until the
// surrounding transaction finishes. Concurrent payments of the same job
// serialize on this lock.
func (r *RepoPGS) GetForUpdate(ctx context.Context, id int64) (domain.Job, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getForUpdateQuery, id)

	var j domain.Job

	if err := scanJob(row, &j); err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return j, domain.ErrJobNotFound
		}

		if dbpkg.IsRetryable(err) {
			return j, domain.ErrTxConflict
		}

		return j, errorspkg.ErrInternal
	}

	return j, nil
}

const markPaidQuery = `
UPDATE jobs
SET paid = true, payment_date = $2
WHERE id = $1
RETURNING id, contract_id, description, price, paid, payment_date, created_at
`

// MarkPaid flips the job's paid flag and sets the payment date.
func (r *RepoPGS) MarkPaid(ctx context.Context, id int64, paymentDate time.Time) (domain.Job, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, markPaidQuery, id, paymentDate)

	var j domain.Job

	if err := scanJob(row, &j); err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return j, domain.ErrJobNotFound
		}

		if dbpkg.IsRetryable(err) {
			return j, domain.ErrTxConflict
		}

		return j, errorspkg.ErrInternal
	}

	return j, nil
}

const listUnpaidForProfileQuery = `
SELECT
	j.id, j.contract_id, j.description, j.price, j.paid, j.payment_date, j.created_at
FROM jobs AS j
JOIN contracts AS c ON c.id = j.contract_id
WHERE
    NOT j.paid
    AND c.status <> 'terminated'
    AND (c.client_id = $1 OR c.contractor_id = $1)
ORDER BY j.id
`

// ListUnpaidForProfile returns the unpaid jobs under active contracts the
// profile is a party of.
func (r *RepoPGS) ListUnpaidForProfile(ctx context.Context, profileID int64) ([]domain.Job, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listUnpaidForProfileQuery, profileID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Job{}

	for rows.Next() {
		var (
			j           domain.Job
			paymentDate sql.NullTime
		)

		if err := rows.Scan(
			&j.ID,
			&j.ContractID,
			&j.Description,
			&j.Price,
			&j.Paid,
			&paymentDate,
			&j.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		if paymentDate.Valid {
			j.PaymentDate = &paymentDate.Time
		}

		items = append(items, j)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const unpaidTotalForClientQuery = `
SELECT
	COALESCE(SUM(j.price), 0)
FROM jobs AS j
JOIN contracts AS c ON c.id = j.contract_id
WHERE
    NOT j.paid
    AND c.status <> 'terminated'
    AND c.client_id = $1
`

// UnpaidTotalForClient returns the sum of prices of the client's unpaid jobs
// under non-terminated contracts. Returns "0" when there are none.
func (r *RepoPGS) UnpaidTotalForClient(ctx context.Context, clientID int64) (string, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, unpaidTotalForClientQuery, clientID)

	var total string

	if err := row.Scan(&total); err != nil {
		l.Error().Err(err).Send()
		return "", errorspkg.ErrInternal
	}

	return total, nil
}
