package selection

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/profile-maps/internal/platform/logging"
	profilesvc "github.com/janisto/profile-maps/internal/service/profile"
)

// Register registers selection and map endpoints. PUT /selection defers by delay.
func Register(api huma.API, sel *profilesvc.Selection, store profilesvc.Store, delay time.Duration) {
	huma.Register(api, huma.Operation{
		OperationID: "get-selection",
		Method:      http.MethodGet,
		Path:        "/selection",
		Summary:     "Get the map selection",
		Description: "Returns the selection state and, when it still exists, the selected profile.",
		Tags:        []string{"Selection"},
	}, func(ctx context.Context, _ *SelectionGetInput) (*SelectionGetOutput, error) {
		return &SelectionGetOutput{Body: snapshot(ctx, sel, store)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "put-selection",
		Method:      http.MethodPut,
		Path:        "/selection",
		Summary:     "Select a profile for the map",
		Description: "Selects a profile. When a selection delay is configured the response is 202 " +
			"and the selection reports loading until it takes effect.",
		Tags: []string{"Selection"},
		Responses: map[string]*huma.Response{
			"202": {Description: "Selection scheduled"},
		},
	}, func(ctx context.Context, input *SelectionPutInput) (*SelectionPutOutput, error) {
		if _, err := store.Get(ctx, input.Body.ID); err != nil {
			if errors.Is(err, profilesvc.ErrNotFound) {
				return nil, huma.Error404NotFound("profile not found")
			}
			return nil, huma.Error500InternalServerError("internal error")
		}

		sel.SelectAfter(input.Body.ID, delay)
		applog.LogInfo(ctx, "profile selected",
			zap.Int("id", input.Body.ID),
			zap.Duration("delay", delay),
		)

		status := http.StatusOK
		if delay > 0 {
			status = http.StatusAccepted
		}
		return &SelectionPutOutput{Status: status, Body: snapshot(ctx, sel, store)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "clear-selection",
		Method:        http.MethodDelete,
		Path:          "/selection",
		Summary:       "Clear the map selection",
		Tags:          []string{"Selection"},
		DefaultStatus: http.StatusNoContent,
	}, func(_ context.Context, _ *SelectionClearInput) (*struct{}, error) {
		sel.Clear()
		return nil, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-map",
		Method:      http.MethodGet,
		Path:        "/map",
		Summary:     "Get the map view",
		Description: "Returns center, zoom and marker for the current selection.",
		Tags:        []string{"Selection"},
	}, func(ctx context.Context, _ *MapGetInput) (*MapGetOutput, error) {
		var view profilesvc.MapView
		if p, ok := sel.Current(ctx, store); ok {
			view = profilesvc.ViewFor(&p)
		} else {
			view = profilesvc.ViewFor(nil)
		}
		return &MapGetOutput{Body: toHTTPMapView(view)}, nil
	})
}

func snapshot(ctx context.Context, sel *profilesvc.Selection, store profilesvc.Store) Selection {
	state := sel.State()
	var current *profilesvc.Profile
	if state.Selected {
		if p, err := store.Get(ctx, state.ID); err == nil {
			current = &p
		}
	}
	return toHTTPSelection(state, current)
}
