package profiles

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/profile-maps/internal/platform/logging"
	profilesvc "github.com/janisto/profile-maps/internal/service/profile"
)

// Register registers profile endpoints.
func Register(api huma.API, store profilesvc.Store, validator *profilesvc.Validator, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "list-profiles",
		Method:      http.MethodGet,
		Path:        "/profiles",
		Summary:     "List profiles",
		Description: "Returns all profiles in insertion order, optionally filtered by a search query.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *ProfileListInput) (*ProfileListOutput, error) {
		matched := profilesvc.Filter(store.List(ctx), input.Q)
		items := make([]Profile, len(matched))
		for i, p := range matched {
			items[i] = ToHTTPProfile(p)
		}
		return &ProfileListOutput{
			Body: ListData{Items: items, Total: len(items)},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/profiles/{id}",
		Summary:     "Get a profile",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *ProfileGetInput) (*ProfileGetOutput, error) {
		p, err := store.Get(ctx, input.ID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileGetOutput{Body: ToHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-profile-draft",
		Method:      http.MethodGet,
		Path:        "/profiles/{id}/draft",
		Summary:     "Get the edit form for a profile",
		Description: "Returns the profile as raw form values, ready to be edited and sent back with PUT.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *ProfileGetInput) (*ProfileDraftOutput, error) {
		p, err := store.Get(ctx, input.ID)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileDraftOutput{Body: toProfileForm(profilesvc.DraftFrom(p))}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "create-profile",
		Method:        http.MethodPost,
		Path:          "/profiles",
		Summary:       "Create a profile",
		Description:   "Validates the form and appends a new profile with the next free id.",
		Tags:          []string{"Profiles"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, input *ProfileCreateInput) (*ProfileCreateOutput, error) {
		fields, err := validator.Validate(toRawFields(input.Body))
		if err != nil {
			return nil, mapServiceError(err)
		}
		p := store.Add(ctx, fields)
		return &ProfileCreateOutput{
			Location: prefix + "/profiles/" + strconv.Itoa(p.ID),
			Body:     ToHTTPProfile(p),
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPut,
		Path:        "/profiles/{id}",
		Summary:     "Replace a profile",
		Description: "Validates the form and replaces every field of the profile except its id.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *ProfileUpdateInput) (*ProfileUpdateOutput, error) {
		fields, err := validator.Validate(toRawFields(input.Body))
		if err != nil {
			return nil, mapServiceError(err)
		}
		p, err := store.Update(ctx, input.ID, fields)
		if err != nil {
			return nil, mapServiceError(err)
		}
		return &ProfileUpdateOutput{Body: ToHTTPProfile(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-profile",
		Method:        http.MethodDelete,
		Path:          "/profiles/{id}",
		Summary:       "Delete a profile",
		Description:   "Removes the profile. Deleting an unknown id also succeeds.",
		Tags:          []string{"Profiles"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *ProfileDeleteInput) (*struct{}, error) {
		err := store.Remove(ctx, input.ID)
		if errors.Is(err, profilesvc.ErrNotFound) {
			applog.LogWarn(ctx, "delete of unknown profile", zap.Int("id", input.ID))
			return nil, nil
		}
		if err != nil {
			return nil, mapServiceError(err)
		}
		return nil, nil
	})
}

func mapServiceError(err error) error {
	var verrs profilesvc.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return validationProblem(verrs)
	case errors.Is(err, profilesvc.ErrNotFound):
		return huma.Error404NotFound("profile not found")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}

func validationProblem(verrs profilesvc.ValidationErrors) error {
	details := make([]error, len(verrs))
	for i, ve := range verrs {
		details[i] = &huma.ErrorDetail{
			Message:  ve.Message,
			Location: "body." + ve.Field,
		}
	}
	return huma.Error422UnprocessableEntity("profile form is invalid", details...)
}
