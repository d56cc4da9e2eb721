package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/profile-maps/internal/http/health"
	"github.com/janisto/profile-maps/internal/http/v1/routes"
	"github.com/janisto/profile-maps/internal/platform/config"
	"github.com/janisto/profile-maps/internal/platform/firebase"
	applog "github.com/janisto/profile-maps/internal/platform/logging"
	appmiddleware "github.com/janisto/profile-maps/internal/platform/middleware"
	"github.com/janisto/profile-maps/internal/platform/respond"
	profilesvc "github.com/janisto/profile-maps/internal/service/profile"
	settingsvc "github.com/janisto/profile-maps/internal/service/settings"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const apiPrefix = "/v1"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogError(context.Background(), "config load failed", err)
		os.Exit(1)
	}

	ctx := context.Background()
	settingsStore, closeSettings, err := openSettingsStore(ctx, cfg)
	if err != nil {
		applog.LogError(ctx, "settings store init failed", err, zap.String("backend", cfg.SettingsBackend))
		os.Exit(1)
	}
	defer func() {
		if err := closeSettings(); err != nil {
			applog.LogError(context.Background(), "settings store close error", err)
		}
	}()

	deps, err := buildDeps(ctx, cfg, settingsStore)
	if err != nil {
		applog.LogError(ctx, "seed failed", err, zap.String("seedFile", cfg.SeedFile))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, deps),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening",
			zap.String("addr", srv.Addr),
			zap.String("settingsBackend", cfg.SettingsBackend),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}

// openSettingsStore returns the configured settings backend and a function releasing it.
func openSettingsStore(ctx context.Context, cfg *config.Config) (settingsvc.Store, func() error, error) {
	switch cfg.SettingsBackend {
	case config.BackendFirestore:
		clients, err := firebase.InitializeClients(ctx, firebase.Config{
			ProjectID:                    cfg.FirebaseProjectID,
			GoogleApplicationCredentials: cfg.CredentialsFile,
		})
		if err != nil {
			return nil, nil, err
		}
		return settingsvc.NewFirestoreStore(clients.Firestore), clients.Close, nil
	case config.BackendSQLite:
		store, err := settingsvc.NewSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		store := settingsvc.NewMemoryStore()
		return store, store.Close, nil
	}
}

// buildDeps seeds a fresh profile store and assembles the services behind the API.
func buildDeps(ctx context.Context, cfg *config.Config, settingsStore settingsvc.Store) (routes.Deps, error) {
	validator := profilesvc.NewValidator()

	var (
		seed []profilesvc.Fields
		err  error
	)
	if cfg.SeedFile != "" {
		seed, err = profilesvc.LoadSeedFile(validator, cfg.SeedFile)
	} else {
		seed, err = profilesvc.DefaultSeed(validator)
	}
	if err != nil {
		return routes.Deps{}, fmt.Errorf("load seed: %w", err)
	}

	store := profilesvc.NewMemoryStore()
	profilesvc.Seed(ctx, store, seed)

	theme, err := settingsvc.ParseTheme(cfg.DefaultTheme)
	if err != nil {
		return routes.Deps{}, err
	}

	return routes.Deps{
		Profiles:    store,
		Validator:   validator,
		Selection:   profilesvc.NewSelection(),
		SelectDelay: cfg.SelectDelay,
		Theme:       settingsvc.NewThemeService(settingsStore, theme),
	}, nil
}

// newRouter builds the middleware stack, the health check and the v1 API.
func newRouter(cfg *config.Config, deps routes.Deps) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security(apiPrefix+"/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(cfg.AllowedOrigins...),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		// Without a trusted proxy, clients can spoof their IP address.
		chimiddleware.RealIP,
		// RequestSize limits request body size to prevent memory exhaustion from large payloads.
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler(Version))

	router.Route(apiPrefix, func(r chi.Router) {
		humaCfg := huma.DefaultConfig("Profile Maps API", Version)
		humaCfg.DocsPath = "/api-docs"
		humaCfg.Servers = []*huma.Server{{URL: apiPrefix}}
		api := humachi.New(r, humaCfg)
		addCBORContentTypes(api)
		routes.Register(api, deps)
	})

	return router
}

// addCBORContentTypes advertises application/cbor next to application/json in the OpenAPI
// document.
func addCBORContentTypes(api huma.API) {
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)
}
