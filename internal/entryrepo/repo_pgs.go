// Package entryrepo manages repository layer of balance entries.
package entryrepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/gig-ledger/internal/domain"
	"github.com/go-petr/gig-ledger/pkg/dbpkg"
	"github.com/go-petr/gig-ledger/pkg/errorspkg"

	"github.com/rs/zerolog"
)

// RepoPGS facilitates entry repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns entry RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    entries (profile_id, job_id, amount)
VALUES
    ($1, $2, $3)
RETURNING id, profile_id, job_id, amount, created_at
`

// Create records a balance change for the profile. jobID is nil for deposits.
func (r *RepoPGS) Create(ctx context.Context, amount string, profileID int64, jobID *int64) (domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, profileID, jobID, amount)

	var (
		e     domain.Entry
		jobFK sql.NullInt64
	)

	err := row.Scan(
		&e.ID,
		&e.ProfileID,
		&jobFK,
		&e.Amount,
		&e.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if dbpkg.IsRetryable(err) {
			return e, domain.ErrTxConflict
		}

		return e, errorspkg.ErrInternal
	}

	if jobFK.Valid {
		e.JobID = &jobFK.Int64
	}

	return e, nil
}

const listQuery = `
SELECT
	id, profile_id, job_id, amount, created_at
FROM entries
WHERE profile_id = $1
ORDER BY id
LIMIT $2 OFFSET $3
`

// List returns the profile's balance entries.
func (r *RepoPGS) List(ctx context.Context, profileID int64, limit, offset int32) ([]domain.Entry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, profileID, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Entry{}

	for rows.Next() {
		var (
			e     domain.Entry
			jobFK sql.NullInt64
		)

		if err := rows.Scan(&e.ID, &e.ProfileID, &jobFK, &e.Amount, &e.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		if jobFK.Valid {
			e.JobID = &jobFK.Int64
		}

		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
