package settings

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	settingsvc "github.com/janisto/profile-maps/internal/service/settings"
)

// Register registers theme endpoints.
func Register(api huma.API, svc *settingsvc.ThemeService) {
	huma.Register(api, huma.Operation{
		OperationID: "get-theme",
		Method:      http.MethodGet,
		Path:        "/settings/theme",
		Summary:     "Get the UI theme",
		Description: "Returns the stored theme, or the configured default when none was stored.",
		Tags:        []string{"Settings"},
	}, func(ctx context.Context, _ *ThemeGetInput) (*ThemeOutput, error) {
		s, err := svc.Theme(ctx)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ThemeOutput{Body: toHTTPTheme(s)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "put-theme",
		Method:      http.MethodPut,
		Path:        "/settings/theme",
		Summary:     "Set the UI theme",
		Tags:        []string{"Settings"},
	}, func(ctx context.Context, input *ThemePutInput) (*ThemeOutput, error) {
		theme, err := settingsvc.ParseTheme(input.Body.Theme)
		if err != nil {
			return nil, mapServiceError(err)
		}
		s, err := svc.SetTheme(ctx, theme)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ThemeOutput{Body: toHTTPTheme(s)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "toggle-theme",
		Method:      http.MethodPost,
		Path:        "/settings/theme/toggle",
		Summary:     "Toggle the UI theme",
		Description: "Switches between light and dark and stores the result.",
		Tags:        []string{"Settings"},
	}, func(ctx context.Context, _ *ThemeToggleInput) (*ThemeOutput, error) {
		s, err := svc.Toggle(ctx)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ThemeOutput{Body: toHTTPTheme(s)}, nil
	})
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, settingsvc.ErrInvalidTheme):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
