package settings

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	applog "github.com/janisto/profile-maps/internal/platform/logging"
)

// ThemeKey is the settings key holding the UI theme.
const ThemeKey = "theme"

// Theme is the UI color scheme.
type Theme string

// Supported themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ErrInvalidTheme is returned for values other than "light" and "dark".
var ErrInvalidTheme = errors.New("theme must be light or dark")

// ParseTheme accepts exactly "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
}

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ThemeSetting is the current theme and when it was last written. UpdatedAt is zero
// while the default applies.
type ThemeSetting struct {
	Theme     Theme
	UpdatedAt time.Time
}

// ThemeService reads and writes the theme flag.
type ThemeService struct {
	// mu serializes Toggle's read-modify-write within this process.
	mu       sync.Mutex
	store    Store
	fallback Theme
}

// NewThemeService uses fallback while no theme has been stored.
func NewThemeService(store Store, fallback Theme) *ThemeService {
	return &ThemeService{store: store, fallback: fallback}
}

// Theme returns the stored theme, or the fallback when unset. A stored value that is
// not a valid theme also yields the fallback.
func (s *ThemeService) Theme(ctx context.Context) (ThemeSetting, error) {
	e, err := s.store.Get(ctx, ThemeKey)
	if errors.Is(err, ErrNotFound) {
		return ThemeSetting{Theme: s.fallback}, nil
	}
	if err != nil {
		return ThemeSetting{}, err
	}
	theme, err := ParseTheme(e.Value)
	if err != nil {
		applog.LogWarn(ctx, "ignoring stored theme", zap.String("value", e.Value))
		return ThemeSetting{Theme: s.fallback}, nil
	}
	return ThemeSetting{Theme: theme, UpdatedAt: e.UpdatedAt}, nil
}

// SetTheme stores theme.
func (s *ThemeService) SetTheme(ctx context.Context, theme Theme) (ThemeSetting, error) {
	if _, err := ParseTheme(string(theme)); err != nil {
		return ThemeSetting{}, err
	}
	e, err := s.store.Set(ctx, ThemeKey, string(theme))
	if err != nil {
		applog.LogAuditEvent(ctx, "set", "setting", ThemeKey, applog.AuditFailure,
			map[string]any{"error": categorizeError(err)})
		return ThemeSetting{}, err
	}
	applog.LogAuditEvent(ctx, "set", "setting", ThemeKey, applog.AuditSuccess,
		map[string]any{"value": e.Value})
	return ThemeSetting{Theme: theme, UpdatedAt: e.UpdatedAt}, nil
}

// Toggle flips the current theme and stores the result.
func (s *ThemeService) Toggle(ctx context.Context) (ThemeSetting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Theme(ctx)
	if err != nil {
		return ThemeSetting{}, err
	}
	return s.SetTheme(ctx, current.Theme.Toggled())
}
