//go:build integration

package jobrepo_test

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/go-petr/gig-ledger/internal/domain"
	"github.com/go-petr/gig-ledger/internal/jobrepo"
	"github.com/go-petr/gig-ledger/internal/test"
	"github.com/go-petr/gig-ledger/pkg/configpkg"
	"github.com/go-petr/gig-ledger/pkg/dbpkg"
	"github.com/go-petr/gig-ledger/pkg/randompkg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	dbDriver string
	dbSource string
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	os.Exit(m.Run())
}

func seedContract(t *testing.T, tx *sql.Tx, status string) domain.Contract {
	t.Helper()

	client := test.SeedProfile(t, tx, domain.RoleClient)
	contractor := test.SeedProfile(t, tx, domain.RoleContractor)

	return test.SeedContract(t, tx, client.ID, contractor.ID, status)
}

func TestCreate(t *testing.T) {
	type input struct {
		contractID int64
		price      string
	}

	testCases := []struct {
		name      string
		wantInput func(tx *sql.Tx) input
		wantErr   error
	}{
		{
			name: "OK",
			wantInput: func(tx *sql.Tx) input {
				contract := seedContract(t, tx, domain.ContractStatusInProgress)

				return input{contract.ID, "200.50"}
			},
		},
		{
			name: "ConstraintViolation:jobs_contract_id_fkey",
			wantInput: func(tx *sql.Tx) input {
				return input{0, "200"}
			},
			wantErr: domain.ErrContractNotFound,
		},
		{
			name: "ConstraintViolation:jobs_price_check",
			wantInput: func(tx *sql.Tx) input {
				contract := seedContract(t, tx, domain.ContractStatusInProgress)

				return input{contract.ID, "-200"}
			},
			wantErr: domain.ErrInvalidPrice,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := dbpkg.SetupTX(t, dbDriver, dbSource)
			in := tc.wantInput(tx)
			jobRepo := jobrepo.NewRepoPGS(tx)

			description := randompkg.String(15)

			got, err := jobRepo.Create(context.Background(), in.contractID, description, in.price)
			if err != nil {
				if err == tc.wantErr {
					return
				}

				t.Fatalf("jobRepo.Create(context.Background(), %v, %v) returned error: %v",
					in.contractID, in.price, err)
			}

			want := domain.Job{
				ContractID:  in.contractID,
				Description: description,
				Price:       in.price,
				Paid:        false,
			}

			ignoreFields := cmpopts.IgnoreFields(domain.Job{}, "ID", "CreatedAt")
			if diff := cmp.Diff(want, got, ignoreFields); diff != "" {
				t.Errorf("jobRepo.Create returned unexpected difference (-want +got):\n%s", diff)
			}

			if got.PaymentDate != nil {
				t.Errorf("got.PaymentDate = %v, want nil", got.PaymentDate)
			}
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	contract := seedContract(t, tx, domain.ContractStatusInProgress)
	want := test.SeedJob(t, tx, contract.ID, "200")
	jobRepo := jobrepo.NewRepoPGS(tx)

	got, err := jobRepo.Get(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("jobRepo.Get(context.Background(), %v) returned error: %v", want.ID, err)
	}

	compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
	if diff := cmp.Diff(want, got, compareCreatedAt); diff != "" {
		t.Errorf("jobRepo.Get(context.Background(), %v) returned unexpected difference (-want +got):\n%s",
			want.ID, diff)
	}

	if _, err := jobRepo.Get(context.Background(), 0); err != domain.ErrJobNotFound {
		t.Errorf("jobRepo.Get with unknown id returned %v, want %v", err, domain.ErrJobNotFound)
	}
}

func TestMarkPaid(t *testing.T) {
	t.Parallel()

	tx := dbpkg.SetupTX(t, dbDriver, dbSource)
	contract := seedContract(t, tx, domain.ContractStatusInProgress)
	job := test.SeedJob(t, tx, contract.ID, "200")
	jobRepo := jobrepo.NewRepoPGS(tx)

	paymentDate := time.Now().UTC().Truncate(time.Second)

	got, err := jobRepo.MarkPaid(context.Background(), job.ID, paymentDate)
	if err != nil {
		t.Fatalf("jobRepo.MarkPaid(context.Background(), %v, %v) returned error: %v",
			job.ID, paymentDate, err)
	}

	if !got.Paid {
		t.Error("got.Paid = false, want true")
	}

	if got.PaymentDate == nil {
		t.Fatal("got.PaymentDate = nil, want non-nil")
	}

	if !got.PaymentDate.Equal(paymentDate) {
		t.Errorf("got.PaymentDate = %v, want %v", got.PaymentDate, paymentDate)
	}

	if _, err := jobRepo.MarkPaid(context.Background(), 0, paymentDate); err != domain.ErrJobNotFound {
		t.Errorf("jobRepo.MarkPaid with unknown id returned %v, want %v", err, domain.ErrJobNotFound)
	}
}

func TestListUnpaidForProfile(t *testing.T) {
	t.Parallel()

	tx := dbpkg.SetupTX(t, dbDriver, dbSource)

	client := test.SeedProfile(t, tx, domain.RoleClient)
	contractor := test.SeedProfile(t, tx, domain.RoleContractor)
	other := test.SeedProfile(t, tx, domain.RoleContractor)

	active := test.SeedContract(t, tx, client.ID, contractor.ID, domain.ContractStatusInProgress)
	terminated := test.SeedContract(t, tx, client.ID, contractor.ID, domain.ContractStatusTerminated)
	unrelated := test.SeedContract(t, tx, other.ID, contractor.ID, domain.ContractStatusInProgress)

	wantJob := test.SeedJob(t, tx, active.ID, "200")

	// Excluded rows: paid job, job under terminated contract, job of another client.
	test.SeedPaidJob(t, tx, active.ID, "300", time.Now().UTC())
	test.SeedJob(t, tx, terminated.ID, "400")
	test.SeedJob(t, tx, unrelated.ID, "500")

	jobRepo := jobrepo.NewRepoPGS(tx)

	got, err := jobRepo.ListUnpaidForProfile(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("jobRepo.ListUnpaidForProfile(context.Background(), %v) returned error: %v",
			client.ID, err)
	}

	want := []domain.Job{wantJob}

	compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
	if diff := cmp.Diff(want, got, compareCreatedAt); diff != "" {
		t.Errorf("jobRepo.ListUnpaidForProfile(context.Background(), %v) returned unexpected difference (-want +got):\n%s",
			client.ID, diff)
	}

	// The contractor side of the active contract sees the same unpaid job.
	got, err = jobRepo.ListUnpaidForProfile(context.Background(), contractor.ID)
	if err != nil {
		t.Fatalf("jobRepo.ListUnpaidForProfile(context.Background(), %v) returned error: %v",
			contractor.ID, err)
	}

	if len(got) != 2 {
		t.Errorf("len(got) = %v, want 2", len(got))
	}
}

func TestUnpaidTotalForClient(t *testing.T) {
	t.Parallel()

	tx := dbpkg.SetupTX(t, dbDriver, dbSource)

	client := test.SeedProfile(t, tx, domain.RoleClient)
	contractor := test.SeedProfile(t, tx, domain.RoleContractor)
	contract := test.SeedContract(t, tx, client.ID, contractor.ID, domain.ContractStatusInProgress)

	test.SeedJob(t, tx, contract.ID, "200.25")
	test.SeedJob(t, tx, contract.ID, "300")
	test.SeedPaidJob(t, tx, contract.ID, "1000", time.Now().UTC())

	jobRepo := jobrepo.NewRepoPGS(tx)

	got, err := jobRepo.UnpaidTotalForClient(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("jobRepo.UnpaidTotalForClient(context.Background(), %v) returned error: %v",
			client.ID, err)
	}

	if got != "500.25" {
		t.Errorf("got = %v, want 500.25", got)
	}

	// A client with no jobs owes nothing.
	emptyClient := test.SeedProfile(t, tx, domain.RoleClient)

	got, err = jobRepo.UnpaidTotalForClient(context.Background(), emptyClient.ID)
	if err != nil {
		t.Fatalf("jobRepo.UnpaidTotalForClient(context.Background(), %v) returned error: %v",
			emptyClient.ID, err)
	}

	if got != "0" {
		t.Errorf("got = %v, want 0", got)
	}
}
