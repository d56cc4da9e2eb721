package routes

import (
	"net/url"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/profile-maps/internal/http/v1/profiles"
	"github.com/janisto/profile-maps/internal/http/v1/selection"
	"github.com/janisto/profile-maps/internal/http/v1/settings"
	profilesvc "github.com/janisto/profile-maps/internal/service/profile"
	settingsvc "github.com/janisto/profile-maps/internal/service/settings"
)

// Deps are the services behind the v1 API.
type Deps struct {
	Profiles    profilesvc.Store
	Validator   *profilesvc.Validator
	Selection   *profilesvc.Selection
	SelectDelay time.Duration
	Theme       *settingsvc.ThemeService
}

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, deps Deps) {
	prefix := apiPrefix(api)

	profiles.Register(api, deps.Profiles, deps.Validator, prefix)
	selection.Register(api, deps.Selection, deps.Profiles, deps.SelectDelay)
	settings.Register(api, deps.Theme)
}

func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return ""
}
