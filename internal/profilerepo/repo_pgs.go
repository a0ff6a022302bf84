// Package profilerepo manages repository layer of profiles.
package profilerepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/gig-ledger/internal/domain"
	"github.com/go-petr/gig-ledger/pkg/dbpkg"
	"github.com/go-petr/gig-ledger/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates profile repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns profile RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

func scanProfile(row *sql.Row, p *domain.Profile) error {
	return row.Scan(
		&p.ID,
		&p.Email,
		&p.HashedPassword,
		&p.FullName,
		&p.Profession,
		&p.Role,
		&p.Balance,
		&p.CreatedAt,
	)
}

const createQuery = `
INSERT INTO
    profiles (email, hashed_password, full_name, profession, role)
VALUES
    ($1, $2, $3, $4, $5)
RETURNING id, email, hashed_password, full_name, profession, role, balance, created_at
`

// Create creates the profile and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateProfileParams) (domain.Profile, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Email,
		arg.HashedPassword,
		arg.FullName,
		arg.Profession,
		arg.Role,
	)

	var p domain.Profile

	if err := scanProfile(row, &p); err != nil {
		l.Error().Err(err).Msgf("Create(ctx context.Context, %+v)", arg)

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "profiles_email_key" {
				return p, domain.ErrEmailAlreadyExists
			}
		}

		return p, errorspkg.ErrInternal
	}

	return p, nil
}

const getQuery = `
SELECT
	id, email, hashed_password, full_name, profession, role, balance, created_at
FROM profiles
WHERE id = $1
`

// Get returns the profile with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Profile, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var p domain.Profile

	if err := scanProfile(row, &p); err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return p, domain.ErrProfileNotFound
		}

		return p, errorspkg.ErrInternal
	}

	return p, nil
}

const getForUpdateQuery = `
SELECT
	id, email, hashed_password, full_name, profession, role, balance, created_at
FROM profiles
WHERE id = $1
FOR UPDATE
`

// GetForUpdate returns the profile with the given id locking its row until the
// surrounding transaction finishes.
func (r *RepoPGS) GetForUpdate(ctx context.Context, id int64) (domain.Profile, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getForUpdateQuery, id)

	var p domain.Profile

	if err := scanProfile(row, &p); err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return p, domain.ErrProfileNotFound
		}

		if dbpkg.IsRetryable(err) {
			return p, domain.ErrTxConflict
		}

		return p, errorspkg.ErrInternal
	}

	return p, nil
}

const getByEmailQuery = `
SELECT
	id, email, hashed_password, full_name, profession, role, balance, created_at
FROM profiles
WHERE email = $1
`

// GetByEmail returns the profile with the given email.
func (r *RepoPGS) GetByEmail(ctx context.Context, email string) (domain.Profile, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getByEmailQuery, email)

	var p domain.Profile

	if err := scanProfile(row, &p); err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return p, domain.ErrProfileNotFound
		}

		return p, errorspkg.ErrInternal
	}

	return p, nil
}

const addBalanceQuery = `
UPDATE profiles
SET balance = balance + $1
WHERE id = $2
RETURNING id, email, hashed_password, full_name, profession, role, balance, created_at
`

// AddBalance changes the profile's balance by the given relative amount and
// returns the changed profile.
func (r *RepoPGS) AddBalance(ctx context.Context, amount string, id int64) (domain.Profile, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, addBalanceQuery, amount, id)

	var p domain.Profile

	if err := scanProfile(row, &p); err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return p, domain.ErrProfileNotFound
		}

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "profiles_balance_check" {
				return p, domain.ErrInsufficientFunds
			}
		}

		if dbpkg.IsRetryable(err) {
			return p, domain.ErrTxConflict
		}

		return p, errorspkg.ErrInternal
	}

	return p, nil
}
