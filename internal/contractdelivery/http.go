// Package contractdelivery manages delivery layer of contracts.
package contractdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/gig-ledger/internal/domain"
	"github.com/go-petr/gig-ledger/internal/middleware"
	"github.com/go-petr/gig-ledger/pkg/errorspkg"
	"github.com/go-petr/gig-ledger/pkg/jsonresponse"
	"github.com/go-petr/gig-ledger/pkg/tokenpkg"
)

// Service provides service layer interface needed by contract delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package contractdelivery
type Service interface {
	GetForProfile(ctx context.Context, profileID, id int64) (domain.Contract, error)
	ListActiveForProfile(ctx context.Context, profileID int64) ([]domain.Contract, error)
}

// Handler facilitates contract delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns contract handler.
func NewHandler(cs Service) *Handler {
	return &Handler{
		service: cs,
	}
}

type data struct {
	Contract domain.Contract `json:"contract"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

type getRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get a contract visible to the caller.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	contract, err := h.service.GetForProfile(ctx, authPayload.ProfileID, req.ID)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrContractNotFound:
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
			return
		case domain.ErrNotContractParty:
			gctx.JSON(http.StatusForbidden, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	res := response{
		Data: data{contract},
	}

	gctx.JSON(http.StatusOK, res)
}

type dataContracts struct {
	Contracts []domain.Contract `json:"contracts"`
}

type responseContracts struct {
	Data dataContracts `json:"data,omitempty"`
}

// List handles http request to list the caller's active contracts.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	contracts, err := h.service.ListActiveForProfile(ctx, authPayload.ProfileID)
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	res := responseContracts{
		Data: dataContracts{contracts},
	}

	gctx.JSON(http.StatusOK, res)
}
