// Package contractrepo manages repository layer of contracts.
package contractrepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/gig-ledger/internal/domain"
	"github.com/go-petr/gig-ledger/pkg/dbpkg"
	"github.com/go-petr/gig-ledger/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates contract repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns contract RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO
    contracts (client_id, contractor_id, terms, status)
VALUES
    ($1, $2, $3, $4)
RETURNING id, client_id, contractor_id, terms, status, created_at
`

// Create creates the contract and then returns it.
func (r *RepoPGS) Create(ctx context.Context, clientID, contractorID int64, terms, status string) (domain.Contract, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, clientID, contractorID, terms, status)

	var c domain.Contract

	err := row.Scan(
		&c.ID,
		&c.ClientID,
		&c.ContractorID,
		&c.Terms,
		&c.Status,
		&c.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "contracts_client_id_fkey", "contracts_contractor_id_fkey":
				return c, domain.ErrProfileNotFound
			}
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const getQuery = `
SELECT
	id, client_id, contractor_id, terms, status, created_at
FROM contracts
WHERE id = $1
`

// Get returns the contract with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Contract, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var c domain.Contract

	err := row.Scan(
		&c.ID,
		&c.ClientID,
		&c.ContractorID,
		&c.Terms,
		&c.Status,
		&c.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return c, domain.ErrContractNotFound
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const listActiveForProfileQuery = `
SELECT
	id, client_id, contractor_id, terms, status, created_at
FROM contracts
WHERE
    (client_id = $1 OR contractor_id = $1) AND status <> 'terminated'
ORDER BY id
`

// ListActiveForProfile returns the non-terminated contracts the profile is a party of.
func (r *RepoPGS) ListActiveForProfile(ctx context.Context, profileID int64) ([]domain.Contract, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listActiveForProfileQuery, profileID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Contract{}

	for rows.Next() {
		var c domain.Contract
		if err := rows.Scan(
			&c.ID,
			&c.ClientID,
			&c.ContractorID,
			&c.Terms,
			&c.Status,
			&c.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, c)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const setStatusQuery = `
UPDATE contracts
SET status = $1
WHERE id = $2
RETURNING id, client_id, contractor_id, terms, status, created_at
`

// SetStatus moves the contract to the given lifecycle status.
func (r *RepoPGS) SetStatus(ctx context.Context, id int64, status string) (domain.Contract, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, setStatusQuery, status, id)

	var c domain.Contract

	err := row.Scan(
		&c.ID,
		&c.ClientID,
		&c.ContractorID,
		&c.Terms,
		&c.Status,
		&c.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return c, domain.ErrContractNotFound
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}
