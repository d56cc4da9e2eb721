package settings

import (
	"github.com/janisto/profile-maps/internal/platform/timeutil"
	settingsvc "github.com/janisto/profile-maps/internal/service/settings"
)

// Theme is the UI color scheme setting.
type Theme struct {
	Theme string `json:"theme" enum:"light,dark" doc:"Color scheme" example:"dark"`
	// UpdatedAt is omitted while the configured default applies.
	UpdatedAt *timeutil.Time `json:"updatedAt,omitempty" doc:"Last change" example:"2024-01-15T10:30:00.000Z"`
}

func toHTTPTheme(s settingsvc.ThemeSetting) Theme {
	out := Theme{Theme: string(s.Theme)}
	if !s.UpdatedAt.IsZero() {
		t := timeutil.NewTime(s.UpdatedAt)
		out.UpdatedAt = &t
	}
	return out
}
