package contractservice

import (
	"context"
	"testing"
	"time"

	"github.com/go-petr/gig-ledger/internal/domain"
	"github.com/go-petr/gig-ledger/pkg/errorspkg"
	"github.com/go-petr/gig-ledger/pkg/randompkg"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func testContract(id, clientID, contractorID int64, status string) domain.Contract {
	return domain.Contract{
		ID:           id,
		ClientID:     clientID,
		ContractorID: contractorID,
		Terms:        randompkg.String(20),
		Status:       status,
		CreatedAt:    time.Now().Truncate(time.Second).UTC(),
	}
}

func TestGetForProfile(t *testing.T) {
	contract := testContract(1, 10, 20, domain.ContractStatusInProgress)
	strangerID := int64(30)

	testCases := []struct {
		name          string
		profileID     int64
		contractID    int64
		buildStubs    func(repo *MockRepo)
		checkResponse func(res domain.Contract, err error)
	}{
		{
			name:       "Not found",
			profileID:  contract.ClientID,
			contractID: contract.ID,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(contract.ID)).
					Times(1).
					Return(domain.Contract{}, domain.ErrContractNotFound)
			},
			checkResponse: func(res domain.Contract, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrContractNotFound.Error())
			},
		},
		{
			name:       "Internal error",
			profileID:  contract.ClientID,
			contractID: contract.ID,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(contract.ID)).
					Times(1).
					Return(domain.Contract{}, errorspkg.ErrInternal)
			},
			checkResponse: func(res domain.Contract, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, errorspkg.ErrInternal.Error())
			},
		},
		{
			name:       "Stranger denied",
			profileID:  strangerID,
			contractID: contract.ID,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(contract.ID)).
					Times(1).
					Return(contract, nil)
			},
			checkResponse: func(res domain.Contract, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, domain.ErrNotContractParty.Error())
			},
		},
		{
			name:       "Client allowed",
			profileID:  contract.ClientID,
			contractID: contract.ID,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(contract.ID)).
					Times(1).
					Return(contract, nil)
			},
			checkResponse: func(res domain.Contract, err error) {
				require.NoError(t, err)
				require.Equal(t, contract, res)
			},
		},
		{
			name:       "Contractor allowed",
			profileID:  contract.ContractorID,
			contractID: contract.ID,
			buildStubs: func(repo *MockRepo) {
				repo.EXPECT().Get(gomock.Any(), gomock.Eq(contract.ID)).
					Times(1).
					Return(contract, nil)
			},
			checkResponse: func(res domain.Contract, err error) {
				require.NoError(t, err)
				require.Equal(t, contract, res)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			contractService := New(repo)

			tc.buildStubs(repo)

			res, err := contractService.GetForProfile(context.Background(), tc.profileID, tc.contractID)

			tc.checkResponse(res, err)
		})
	}
}

func TestListActiveForProfile(t *testing.T) {
	profileID := int64(10)
	contracts := []domain.Contract{
		testContract(1, profileID, 20, domain.ContractStatusNew),
		testContract(2, profileID, 21, domain.ContractStatusInProgress),
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	contractService := New(repo)

	repo.EXPECT().ListActiveForProfile(gomock.Any(), gomock.Eq(profileID)).
		Times(1).
		Return(contracts, nil)

	res, err := contractService.ListActiveForProfile(context.Background(), profileID)

	require.NoError(t, err)
	require.Equal(t, contracts, res)
}
