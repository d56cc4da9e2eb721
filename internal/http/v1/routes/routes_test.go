package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	applog "github.com/janisto/profile-maps/internal/platform/logging"
	appmiddleware "github.com/janisto/profile-maps/internal/platform/middleware"
	"github.com/janisto/profile-maps/internal/platform/respond"
	profilesvc "github.com/janisto/profile-maps/internal/service/profile"
	settingsvc "github.com/janisto/profile-maps/internal/service/settings"
)

func testDeps(t *testing.T) Deps {
	t.Helper()
	v := profilesvc.NewValidator()
	seed, err := profilesvc.DefaultSeed(v)
	if err != nil {
		t.Fatalf("default seed: %v", err)
	}
	store := profilesvc.NewMemoryStore()
	profilesvc.Seed(context.Background(), store, seed)
	return Deps{
		Profiles:  store,
		Validator: v,
		Selection: profilesvc.NewSelection(),
		Theme:     settingsvc.NewThemeService(settingsvc.NewMemoryStore(), settingsvc.ThemeLight),
	}
}

func newTestRouter(t *testing.T, cfg huma.Config) chi.Router {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		applog.RequestLogger(),
		respond.Recoverer(),
	)
	api := humachi.New(router, cfg)
	Register(api, testDeps(t))
	return router
}

func TestRegisterRoutes(t *testing.T) {
	router := newTestRouter(t, huma.DefaultConfig("RoutesTest", "test"))

	for _, path := range []string{"/profiles", "/profiles/1", "/profiles/1/draft", "/selection", "/map", "/settings/theme"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(chimiddleware.RequestIDHeader, "routes-test")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, resp.Code)
		}
	}
}

func TestAPIPrefixFromServers(t *testing.T) {
	cfg := huma.DefaultConfig("RoutesTest", "test")
	cfg.Servers = []*huma.Server{{URL: "https://maps.example.com/v1"}}
	api := humachi.New(chi.NewRouter(), cfg)

	if got := apiPrefix(api); got != "/v1" {
		t.Fatalf("expected /v1, got %q", got)
	}

	bare := humachi.New(chi.NewRouter(), huma.DefaultConfig("RoutesTest", "test"))
	if got := apiPrefix(bare); got != "" {
		t.Fatalf("expected empty prefix, got %q", got)
	}
}
