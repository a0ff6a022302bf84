// Package reportdelivery manages delivery layer of payment reports.
package reportdelivery

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/gig-ledger/internal/domain"
	"github.com/go-petr/gig-ledger/pkg/errorspkg"
	"github.com/go-petr/gig-ledger/pkg/jsonresponse"
)

// Service provides service layer interface needed by report delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package reportdelivery
type Service interface {
	BestProfession(ctx context.Context, start, end time.Time) (domain.ProfessionEarnings, error)
	BestClients(ctx context.Context, start, end time.Time, limit int32) ([]domain.ClientSpend, error)
}

// Handler facilitates report delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns report handler.
func NewHandler(rs Service) *Handler {
	return &Handler{
		service: rs,
	}
}

type periodRequest struct {
	Start time.Time `form:"start" binding:"required" time_format:"2006-01-02" time_utc:"1"`
	End   time.Time `form:"end" binding:"required" time_format:"2006-01-02" time_utc:"1"`
}

type professionData struct {
	BestProfession domain.ProfessionEarnings `json:"best_profession"`
}

type professionResponse struct {
	Data professionData `json:"data,omitempty"`
}

// BestProfession handles http request to get the top earning profession over
// jobs paid within [start, end).
func (h *Handler) BestProfession(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req periodRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	best, err := h.service.BestProfession(ctx, req.Start, req.End)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrInvalidPeriod:
			gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))
			return
		case domain.ErrNoPaidJobs:
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	res := professionResponse{
		Data: professionData{best},
	}

	gctx.JSON(http.StatusOK, res)
}

type bestClientsRequest struct {
	periodRequest
	Limit int32 `form:"limit" binding:"omitempty,min=1,max=100"`
}

type clientsData struct {
	BestClients []domain.ClientSpend `json:"best_clients"`
}

type clientsResponse struct {
	Data clientsData `json:"data,omitempty"`
}

// BestClients handles http request to get the top paying clients over jobs
// paid within [start, end).
func (h *Handler) BestClients(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req bestClientsRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	clients, err := h.service.BestClients(ctx, req.Start, req.End, req.Limit)
	if err != nil {
		l.Info().Err(err).Send()

		if err == domain.ErrInvalidPeriod {
			gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	res := clientsResponse{
		Data: clientsData{clients},
	}

	gctx.JSON(http.StatusOK, res)
}
