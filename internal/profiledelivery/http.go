// Package profiledelivery manages delivery layer of profiles.
package profiledelivery

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/gig-ledger/internal/domain"
	"github.com/go-petr/gig-ledger/pkg/errorspkg"
	"github.com/go-petr/gig-ledger/pkg/jsonresponse"
	"github.com/go-petr/gig-ledger/pkg/tokenpkg"
)

// Service provides service layer interface needed by profile delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package profiledelivery
type Service interface {
	Create(ctx context.Context, email, password, fullName, profession, role string) (domain.ProfileWithoutPassword, error)
	CheckPassword(ctx context.Context, email, pass string) (domain.ProfileWithoutPassword, error)
}

// Handler facilitates profile delivery layer logic.
type Handler struct {
	service             Service
	tokenMaker          tokenpkg.Maker
	accessTokenDuration time.Duration
}

// NewHandler returns profile handler.
func NewHandler(ps Service, tm tokenpkg.Maker, accessTokenDuration time.Duration) *Handler {
	return &Handler{
		service:             ps,
		tokenMaker:          tm,
		accessTokenDuration: accessTokenDuration,
	}
}

type data struct {
	Profile     domain.ProfileWithoutPassword `json:"profile"`
	AccessToken string                        `json:"access_token"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

type createRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	FullName   string `json:"full_name" binding:"required"`
	Profession string `json:"profession" binding:"required"`
	Role       string `json:"role" binding:"required,oneof=client contractor"`
}

// Create handles http request to register a profile.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	profile, err := h.service.Create(ctx, req.Email, req.Password, req.FullName, req.Profession, req.Role)
	if err != nil {
		l.Info().Err(err).Send()

		if err == domain.ErrEmailAlreadyExists {
			gctx.JSON(http.StatusConflict, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	accessToken, _, err := h.tokenMaker.CreateToken(profile.ID, h.accessTokenDuration)
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	res := response{
		Data: data{Profile: profile, AccessToken: accessToken},
	}

	gctx.JSON(http.StatusOK, res)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles http request to exchange credentials for an access token.
func (h *Handler) Login(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req loginRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, jsonresponse.Error(err))

		return
	}

	profile, err := h.service.CheckPassword(ctx, req.Email, req.Password)
	if err != nil {
		l.Info().Err(err).Send()

		switch err {
		case domain.ErrProfileNotFound:
			gctx.JSON(http.StatusNotFound, jsonresponse.Error(err))
			return
		case domain.ErrWrongPassword:
			gctx.JSON(http.StatusUnauthorized, jsonresponse.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	accessToken, _, err := h.tokenMaker.CreateToken(profile.ID, h.accessTokenDuration)
	if err != nil {
		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, jsonresponse.Error(errorspkg.ErrInternal))

		return
	}

	res := response{
		Data: data{Profile: profile, AccessToken: accessToken},
	}

	gctx.JSON(http.StatusOK, res)
}
