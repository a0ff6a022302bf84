// Package test provides shared test helpers.
package test

import (
	"context"
	"testing"
	"time"

	"github.com/go-petr/gig-ledger/internal/contractrepo"
	"github.com/go-petr/gig-ledger/internal/domain"
	"github.com/go-petr/gig-ledger/internal/entryrepo"
	"github.com/go-petr/gig-ledger/internal/jobrepo"
	"github.com/go-petr/gig-ledger/internal/profilerepo"
	"github.com/go-petr/gig-ledger/pkg/dbpkg"
	"github.com/go-petr/gig-ledger/pkg/passpkg"
	"github.com/go-petr/gig-ledger/pkg/randompkg"
)

// SeedProfile creates a random profile with the given role inside a test transaction.
func SeedProfile(t *testing.T, tx dbpkg.SQLInterface, role string) domain.Profile {
	t.Helper()

	hashedPassword, err := passpkg.Hash(randompkg.String(32))
	if err != nil {
		t.Fatalf("passpkg.Hash(randompkg.String(32)) returned error: %v", err)
	}

	arg := domain.CreateProfileParams{
		Email:          randompkg.Email(),
		HashedPassword: hashedPassword,
		FullName:       randompkg.FullName(),
		Profession:     randompkg.Profession(),
		Role:           role,
	}

	profileRepo := profilerepo.NewRepoPGS(tx)
	profile, err := profileRepo.Create(context.Background(), arg)

	if err != nil {
		t.Fatalf("profileRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return profile
}

// SeedClientWithBalance creates a client profile and credits its balance
// inside a test transaction.
func SeedClientWithBalance(t *testing.T, tx dbpkg.SQLInterface, balance string) domain.Profile {
	t.Helper()

	client := SeedProfile(t, tx, domain.RoleClient)

	profileRepo := profilerepo.NewRepoPGS(tx)

	client, err := profileRepo.AddBalance(context.Background(), balance, client.ID)
	if err != nil {
		t.Fatalf("profileRepo.AddBalance(context.Background(), %v, %v) returned error: %v",
			balance, client.ID, err)
	}

	return client
}

// SeedContract creates a contract between the given parties inside a test transaction.
func SeedContract(t *testing.T, tx dbpkg.SQLInterface, clientID, contractorID int64, status string) domain.Contract {
	t.Helper()

	contractRepo := contractrepo.NewRepoPGS(tx)

	contract, err := contractRepo.Create(context.Background(), clientID, contractorID, randompkg.String(20), status)
	if err != nil {
		t.Fatalf("contractRepo.Create(context.Background(), %v, %v) returned error: %v",
			clientID, contractorID, err)
	}

	return contract
}

// SeedJob creates an unpaid job under the given contract inside a test transaction.
func SeedJob(t *testing.T, tx dbpkg.SQLInterface, contractID int64, price string) domain.Job {
	t.Helper()

	jobRepo := jobrepo.NewRepoPGS(tx)

	job, err := jobRepo.Create(context.Background(), contractID, randompkg.String(15), price)
	if err != nil {
		t.Fatalf("jobRepo.Create(context.Background(), %v, %v) returned error: %v",
			contractID, price, err)
	}

	return job
}

// SeedPaidJob creates a job already paid at the given time inside a test transaction.
func SeedPaidJob(t *testing.T, tx dbpkg.SQLInterface, contractID int64, price string, paymentDate time.Time) domain.Job {
	t.Helper()

	job := SeedJob(t, tx, contractID, price)

	jobRepo := jobrepo.NewRepoPGS(tx)

	job, err := jobRepo.MarkPaid(context.Background(), job.ID, paymentDate)
	if err != nil {
		t.Fatalf("jobRepo.MarkPaid(context.Background(), %v, %v) returned error: %v",
			job.ID, paymentDate, err)
	}

	return job
}

// SeedEntry creates a balance journal entry inside a test transaction.
func SeedEntry(t *testing.T, tx dbpkg.SQLInterface, amount string, profileID int64, jobID *int64) domain.Entry {
	t.Helper()

	entryRepo := entryrepo.NewRepoPGS(tx)

	entry, err := entryRepo.Create(context.Background(), amount, profileID, jobID)
	if err != nil {
		t.Fatalf("entryRepo.Create(context.Background(), %v, %v) returned error: %v",
			amount, profileID, err)
	}

	return entry
}
