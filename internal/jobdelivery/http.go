// Package jobdelivery manages delivery layer of jobs.
package jobdelivery

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

// Service provides service layer interface needed by job delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package jobdelivery
type Service interface {
	ListUnpaidForProfile(ctx context.Context, profileID int64) ([]domain.Job, error)
}

// Handler facilitates job delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns job handler.
func NewHandler(js Service) *Handler {
	return &Handler{
		service: js,
	}
}

type dataJobs struct {
	Jobs []domain.Job `json:"jobs"`
}

type responseJobs struct {
	Data dataJobs `json:"data,omitempty"`
}

// ListUnpaid handles http request to list the caller's unpaid jobs under
// active contracts.
func (h *Handler) ListUnpaid(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	jobs, err := h.service.ListUnpaidForProfile(ctx, authPayload.ProfileID)
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	res := responseJobs{
		Data: dataJobs{jobs},
	}

	gctx.JSON(http.StatusOK, res)
}
