// Package paymentdelivery manages delivery layer of payments and deposits.
package paymentdelivery

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

// Service provides service layer interface needed by payment delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package paymentdelivery
type Service interface {
	PayJob(ctx context.Context, callerProfileID, jobID int64) (domain.PayJobTxResult, error)
	Deposit(ctx context.Context, clientProfileID int64, amount string) (domain.DepositTxResult, error)
}

// Handler facilitates payment delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns payment handler.
func NewHandler(ps Service) *Handler {
	return &Handler{
		service: ps,
	}
}

type payRequest struct {
	JobID int64 `uri:"id" binding:"required,min=1"`
}

type payData struct {
	Payment domain.PayJobTxResult `json:"payment"`
}

type payResponse struct {
	Data payData `json:"data,omitempty"`
}

// Pay handles http request to pay for a job.
func (h *Handler) Pay(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req payRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	result, err := h.service.PayJob(ctx, authPayload.ProfileID, req.JobID)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrJobNotFound:
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
			return
		case domain.ErrNotContractClient,
			domain.ErrContractNotActive:
			gctx.JSON(http.StatusForbidden, jsonresponse.Error(err))
			return
		case domain.ErrJobAlreadyPaid,
			domain.ErrTxConflict:
			gctx.JSON(http.StatusConflict, jsonresponse.Error(err))
			return
		case domain.ErrInsufficientFunds:
			gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	res := payResponse{
		Data: payData{result},
	}

	gctx.JSON(http.StatusOK, res)
}

type depositRequest struct {
	Amount string `json:"amount" binding:"required"`
}

type depositData struct {
	Deposit domain.DepositTxResult `json:"deposit"`
}

type depositResponse struct {
	Data depositData `json:"data,omitempty"`
}

// Deposit handles http request to top up the caller's balance.
func (h *Handler) Deposit(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req depositRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	result, err := h.service.Deposit(ctx, authPayload.ProfileID, req.Amount)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrProfileNotFound:
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
			return
		case domain.ErrNotClient:
			gctx.JSON(http.StatusForbidden, jsonresponse.Error(err))
			return
		case domain.ErrInvalidAmount,
			domain.ErrNegativeAmount,
			domain.ErrDepositCapExceeded:
			gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))
			return
		case domain.ErrTxConflict:
			gctx.JSON(http.StatusConflict, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	res := depositResponse{
		Data: depositData{result},
	}

	gctx.JSON(http.StatusOK, res)
}
