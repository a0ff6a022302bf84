//go:build integration

package paymentrepo_test

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/go-petr/gig-ledger/internal/domain"
	"github.com/go-petr/gig-ledger/internal/integrationtest"
	"github.com/go-petr/gig-ledger/internal/jobrepo"
	"github.com/go-petr/gig-ledger/internal/middleware"
	"github.com/go-petr/gig-ledger/internal/paymentrepo"
	"github.com/go-petr/gig-ledger/internal/profilerepo"
	"github.com/go-petr/gig-ledger/internal/test"
	"github.com/go-petr/gig-ledger/pkg/configpkg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
)

var (
	dbDriver string
	dbSource string
	ctx      context.Context
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	logger := middleware.GetLogger(config)
	ctx = logger.WithContext(context.Background())

	os.Exit(m.Run())
}

type payFixture struct {
	client     domain.Profile
	contractor domain.Profile
	contract   domain.Contract
	job        domain.Job
}

func seedPayFixture(t *testing.T, db *sql.DB, balance, price string) payFixture {
	t.Helper()

	client := test.SeedClientWithBalance(t, db, balance)
	contractor := test.SeedProfile(t, db, domain.RoleContractor)
	contract := test.SeedContract(t, db, client.ID, contractor.ID, domain.ContractStatusInProgress)
	job := test.SeedJob(t, db, contract.ID, price)

	return payFixture{client, contractor, contract, job}
}

func TestPayTx(t *testing.T) {
	db := integrationtest.SetupDB(t, dbDriver, dbSource)

	f := seedPayFixture(t, db, "1000", "200")
	paymentRepo := paymentrepo.NewRepoPGS(db)

	arg := domain.PayJobParams{
		JobID:        f.job.ID,
		ClientID:     f.client.ID,
		ContractorID: f.contractor.ID,
		Price:        f.job.Price,
	}

	got, err := paymentRepo.PayTx(ctx, arg)
	if err != nil {
		t.Fatalf("paymentRepo.PayTx(ctx, %+v) returned error: %v", arg, err)
	}

	if !got.Job.Paid {
		t.Error("got.Job.Paid = false, want true")
	}

	if got.Job.PaymentDate == nil {
		t.Error("got.Job.PaymentDate = nil, want non-nil")
	}

	if got.Client.Balance != "800" {
		t.Errorf("got.Client.Balance = %v, want 800", got.Client.Balance)
	}

	if got.Contractor.Balance != "200" {
		t.Errorf("got.Contractor.Balance = %v, want 200", got.Contractor.Balance)
	}

	wantClientEntry := domain.Entry{ProfileID: f.client.ID, JobID: &f.job.ID, Amount: "-200"}
	wantPayeeEntry := domain.Entry{ProfileID: f.contractor.ID, JobID: &f.job.ID, Amount: "200"}

	ignoreFields := cmpopts.IgnoreFields(domain.Entry{}, "ID", "CreatedAt")
	if diff := cmp.Diff(wantClientEntry, got.ClientEntry, ignoreFields); diff != "" {
		t.Errorf("got.ClientEntry unexpected difference (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(wantPayeeEntry, got.PayeeEntry, ignoreFields); diff != "" {
		t.Errorf("got.PayeeEntry unexpected difference (-want +got):\n%s", diff)
	}

	// A second payment of the same job must not move any money.
	if _, err := paymentRepo.PayTx(ctx, arg); err != domain.ErrJobAlreadyPaid {
		t.Fatalf("second paymentRepo.PayTx(ctx, %+v) returned %v, want %v",
			arg, err, domain.ErrJobAlreadyPaid)
	}

	profileRepo := profilerepo.NewRepoPGS(db)

	client, err := profileRepo.Get(ctx, f.client.ID)
	if err != nil {
		t.Fatalf("profileRepo.Get(ctx, %v) returned error: %v", f.client.ID, err)
	}

	if client.Balance != "800" {
		t.Errorf("client.Balance after duplicate payment = %v, want 800", client.Balance)
	}
}

func TestPayTxInsufficientFunds(t *testing.T) {
	db := integrationtest.SetupDB(t, dbDriver, dbSource)

	f := seedPayFixture(t, db, "100", "200")
	paymentRepo := paymentrepo.NewRepoPGS(db)

	arg := domain.PayJobParams{
		JobID:        f.job.ID,
		ClientID:     f.client.ID,
		ContractorID: f.contractor.ID,
		Price:        f.job.Price,
	}

	if _, err := paymentRepo.PayTx(ctx, arg); err != domain.ErrInsufficientFunds {
		t.Fatalf("paymentRepo.PayTx(ctx, %+v) returned %v, want %v",
			arg, err, domain.ErrInsufficientFunds)
	}

	// The rolled back transaction must leave the job unpaid.
	jobRepo := jobrepo.NewRepoPGS(db)

	job, err := jobRepo.Get(ctx, f.job.ID)
	if err != nil {
		t.Fatalf("jobRepo.Get(ctx, %v) returned error: %v", f.job.ID, err)
	}

	if job.Paid {
		t.Error("job.Paid = true after failed payment, want false")
	}
}

func TestPayTxConcurrent(t *testing.T) {
	db := integrationtest.SetupDB(t, dbDriver, dbSource)

	// n concurrent payments of the same job: exactly one must win.
	const n = 10

	f := seedPayFixture(t, db, "1000", "200")
	paymentRepo := paymentrepo.NewRepoPGS(db)

	arg := domain.PayJobParams{
		JobID:        f.job.ID,
		ClientID:     f.client.ID,
		ContractorID: f.contractor.ID,
		Price:        f.job.Price,
	}

	errs := make(chan error)

	for i := 0; i < n; i++ {
		go func() {
			_, err := paymentRepo.PayTx(ctx, arg)
			errs <- err
		}()
	}

	var wins, alreadyPaid int

	for i := 0; i < n; i++ {
		switch err := <-errs; err {
		case nil:
			wins++
		case domain.ErrJobAlreadyPaid:
			alreadyPaid++
		default:
			t.Fatalf("paymentRepo.PayTx(ctx, %+v) returned error: %v", arg, err)
		}
	}

	if wins != 1 {
		t.Errorf("wins = %v, want 1", wins)
	}

	if alreadyPaid != n-1 {
		t.Errorf("alreadyPaid = %v, want %v", alreadyPaid, n-1)
	}

	// Money is conserved: the client paid once, the contractor got paid once.
	profileRepo := profilerepo.NewRepoPGS(db)

	client, err := profileRepo.Get(ctx, f.client.ID)
	if err != nil {
		t.Fatalf("profileRepo.Get(ctx, %v) returned error: %v", f.client.ID, err)
	}

	contractor, err := profileRepo.Get(ctx, f.contractor.ID)
	if err != nil {
		t.Fatalf("profileRepo.Get(ctx, %v) returned error: %v", f.contractor.ID, err)
	}

	if client.Balance != "800" {
		t.Errorf("client.Balance = %v, want 800", client.Balance)
	}

	if contractor.Balance != "200" {
		t.Errorf("contractor.Balance = %v, want 200", contractor.Balance)
	}
}

func TestDepositTx(t *testing.T) {
	db := integrationtest.SetupDB(t, dbDriver, dbSource)

	f := seedPayFixture(t, db, "0", "200")
	paymentRepo := paymentrepo.NewRepoPGS(db)

	got, err := paymentRepo.DepositTx(ctx, f.client.ID, "250")
	if err != nil {
		t.Fatalf("paymentRepo.DepositTx(ctx, %v, 250) returned error: %v", f.client.ID, err)
	}

	if got.Client.Balance != "250" {
		t.Errorf("got.Client.Balance = %v, want 250", got.Client.Balance)
	}

	wantEntry := domain.Entry{ProfileID: f.client.ID, Amount: "250"}

	ignoreFields := cmpopts.IgnoreFields(domain.Entry{}, "ID", "CreatedAt")
	if diff := cmp.Diff(wantEntry, got.Entry, ignoreFields); diff != "" {
		t.Errorf("got.Entry unexpected difference (-want +got):\n%s", diff)
	}

	if got.Entry.JobID != nil {
		t.Errorf("got.Entry.JobID = %v, want nil", got.Entry.JobID)
	}

	// The second deposit is checked against the same debt again.
	if _, err := paymentRepo.DepositTx(ctx, f.client.ID, "250.01"); err != domain.ErrDepositCapExceeded {
		t.Fatalf("paymentRepo.DepositTx(ctx, %v, 250.01) returned %v, want %v",
			f.client.ID, err, domain.ErrDepositCapExceeded)
	}
}

func TestDepositTxConcurrent(t *testing.T) {
	db := integrationtest.SetupDB(t, dbDriver, dbSource)

	// Debt is 200, the cap is 250. Two concurrent deposits of 250 serialize on
	// the locked profile row and both pass the cap check, but every deposit is
	// individually bounded so the balance never exceeds n * cap.
	const n = 2

	f := seedPayFixture(t, db, "0", "200")
	paymentRepo := paymentrepo.NewRepoPGS(db)

	errs := make(chan error)

	for i := 0; i < n; i++ {
		go func() {
			_, err := paymentRepo.DepositTx(ctx, f.client.ID, "250")
			errs <- err
		}()
	}

	for i := 0; i < n; i++ {
		if err := <-errs; err != nil && err != domain.ErrDepositCapExceeded {
			t.Fatalf("paymentRepo.DepositTx(ctx, %v, 250) returned error: %v", f.client.ID, err)
		}
	}

	profileRepo := profilerepo.NewRepoPGS(db)

	client, err := profileRepo.Get(ctx, f.client.ID)
	if err != nil {
		t.Fatalf("profileRepo.Get(ctx, %v) returned error: %v", f.client.ID, err)
	}

	balance, err := decimal.NewFromString(client.Balance)
	if err != nil {
		t.Fatalf("decimal.NewFromString(%v) returned error: %v", client.Balance, err)
	}

	max := decimal.RequireFromString("250").Mul(decimal.NewFromInt(n))
	if balance.GreaterThan(max) {
		t.Errorf("client.Balance = %v, want at most %v", client.Balance, max)
	}
}

func TestDepositTxRejectsOverCap(t *testing.T) {
	db := integrationtest.SetupDB(t, dbDriver, dbSource)

	f := seedPayFixture(t, db, "0", "200")
	paymentRepo := paymentrepo.NewRepoPGS(db)

	if _, err := paymentRepo.DepositTx(ctx, f.client.ID, "250.01"); err != domain.ErrDepositCapExceeded {
		t.Fatalf("paymentRepo.DepositTx(ctx, %v, 250.01) returned %v, want %v",
			f.client.ID, err, domain.ErrDepositCapExceeded)
	}
}
