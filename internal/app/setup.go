// Package app contains the application setup for the store service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/abgdnv/storehub/internal/config"
	"github.com/abgdnv/storehub/internal/service"
	"github.com/abgdnv/storehub/internal/store"
	"github.com/abgdnv/storehub/internal/transport/rest"
	"github.com/abgdnv/storehub/pkg/server"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Dependencies holds the wired collaborators. Every component receives its
// dependencies explicitly at construction; there is no runtime lookup.
type Dependencies struct {
	StoreService service.StoreService
	APIToken     string
	Logger       *slog.Logger
}

func SetupDependencies(dbPool *pgxpool.Pool, apiToken string, logger *slog.Logger) *Dependencies {
	sService := service.NewService(store.NewPgStore(dbPool), service.NewStoreValidator())

	return &Dependencies{
		StoreService: sService,
		APIToken:     apiToken,
		Logger:       logger,
	}
}

// SetupHttpHandler initializes the HTTP routes for the store service.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the store service.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	storeHandler := rest.NewHandler(deps.StoreService, deps.APIToken, deps.Logger)
	storeHandler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an HTTP server for the store service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
