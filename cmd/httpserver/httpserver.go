// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/gig-ledger/internal/contractdelivery"
	"github.com/go-petr/gig-ledger/internal/contractrepo"
	"github.com/go-petr/gig-ledger/internal/contractservice"
	"github.com/go-petr/gig-ledger/internal/jobdelivery"
	"github.com/go-petr/gig-ledger/internal/jobrepo"
	"github.com/go-petr/gig-ledger/internal/jobservice"
	"github.com/go-petr/gig-ledger/internal/middleware"
	"github.com/go-petr/gig-ledger/internal/paymentdelivery"
	"github.com/go-petr/gig-ledger/internal/paymentrepo"
	"github.com/go-petr/gig-ledger/internal/paymentservice"
	"github.com/go-petr/gig-ledger/internal/profiledelivery"
	"github.com/go-petr/gig-ledger/internal/profilerepo"
	"github.com/go-petr/gig-ledger/internal/profileservice"
	"github.com/go-petr/gig-ledger/internal/reportdelivery"
	"github.com/go-petr/gig-ledger/internal/reportrepo"
	"github.com/go-petr/gig-ledger/internal/reportservice"
	"github.com/go-petr/gig-ledger/pkg/configpkg"
	"github.com/go-petr/gig-ledger/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	profileRepo := profilerepo.NewRepoPGS(conn)
	contractRepo := contractrepo.NewRepoPGS(conn)
	jobRepo := jobrepo.NewRepoPGS(conn)
	paymentRepo := paymentrepo.NewRepoPGS(conn)
	reportRepo := reportrepo.NewRepoPGS(conn)

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	profileService := profileservice.New(profileRepo)
	contractService := contractservice.New(contractRepo)
	jobService := jobservice.New(jobRepo)
	paymentService := paymentservice.New(paymentRepo, jobService, contractService, profileService)
	reportService := reportservice.New(reportRepo)

	profileHandler := profiledelivery.NewHandler(profileService, tokenMaker, config.AccessTokenDuration)
	contractHandler := contractdelivery.NewHandler(contractService)
	jobHandler := jobdelivery.NewHandler(jobService)
	paymentHandler := paymentdelivery.NewHandler(paymentService)
	reportHandler := reportdelivery.NewHandler(reportService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/profiles", profileHandler.Create)
	engine.POST("/profiles/login", profileHandler.Login)

	// Reporting endpoints are administrative and unauthenticated.
	engine.GET("/admin/best-profession", reportHandler.BestProfession)
	engine.GET("/admin/best-clients", reportHandler.BestClients)

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(tokenMaker))

	authRoutes.GET("/contracts/:id", contractHandler.Get)
	authRoutes.GET("/contracts", contractHandler.List)
	authRoutes.GET("/jobs/unpaid", jobHandler.ListUnpaid)
	authRoutes.POST("/jobs/:id/pay", paymentHandler.Pay)
	authRoutes.POST("/balances/deposit", paymentHandler.Deposit)

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
