// Package reportrepo manages repository layer of payment reports.
package reportrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-petr/gig-ledger/internal/domain"
	"github.com/go-petr/gig-ledger/pkg/dbpkg"
	"github.com/go-petr/gig-ledger/pkg/errorspkg"

	"github.com/rs/zerolog"
)

// RepoPGS facilitates report repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns report RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// The payment window is half-open: payment_date >= start AND payment_date < end.

const bestProfessionQuery = `
SELECT
	p.profession, SUM(j.price) AS earned
FROM jobs AS j
JOIN contracts AS c ON c.id = j.contract_id
JOIN profiles AS p ON p.id = c.contractor_id
WHERE
    j.paid
    AND j.payment_date >= $1
    AND j.payment_date < $2
GROUP BY p.profession
ORDER BY earned DESC, p.profession ASC
LIMIT 1
`

// BestProfession returns the profession that earned the most over paid jobs in
// the window. Equal sums are broken by ascending profession name.
func (r *RepoPGS) BestProfession(ctx context.Context, start, end time.Time) (domain.ProfessionEarnings, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, bestProfessionQuery, start, end)

	var pe domain.ProfessionEarnings

	err := row.Scan(&pe.Profession, &pe.Earned)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return pe, domain.ErrNoPaidJobs
		}

		return pe, errorspkg.ErrInternal
	}

	return pe, nil
}

const bestClientsQuery = `
SELECT
	c.client_id, p.full_name, SUM(j.price) AS paid
FROM jobs AS j
JOIN contracts AS c ON c.id = j.contract_id
JOIN profiles AS p ON p.id = c.client_id
WHERE
    j.paid
    AND j.payment_date >= $1
    AND j.payment_date < $2
GROUP BY c.client_id, p.full_name
ORDER BY paid DESC, c.client_id ASC
LIMIT $3
`

// BestClients returns the clients that paid the most for jobs in the window,
// biggest spender first. Equal sums are broken by ascending client id.
func (r *RepoPGS) BestClients(ctx context.Context, start, end time.Time, limit int32) ([]domain.ClientSpend, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, bestClientsQuery, start, end, limit)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.ClientSpend{}

	for rows.Next() {
		var cs domain.ClientSpend
		if err := rows.Scan(&cs.ClientID, &cs.FullName, &cs.Paid); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, cs)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
