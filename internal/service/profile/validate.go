package profile

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	validatorengine "github.com/go-playground/validator/v10"
)

// FieldCoordinates is the field reported when latitude or longitude is unusable.
const FieldCoordinates = "coordinates"

// RawFields are the profile form values as typed by an admin.
type RawFields struct {
	Name        string
	Description string
	Image       string
	Address     string
	Latitude    string
	Longitude   string
	// Interests is a comma-separated list.
	Interests string
	Email     string
	Phone     string
}

// ValidationError names the form field that was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors lists every rejected field in form order.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual errors, so errors.As finds the first *ValidationError.
func (e ValidationErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, ve := range e {
		errs[i] = ve
	}
	return errs
}

// trimmedForm is checked by the struct validator. Field order is the reporting order.
type trimmedForm struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image"       validate:"required"`
	Address     string `json:"address"     validate:"required"`
	Email       string `json:"email"       validate:"required"`
	Phone       string `json:"phone"       validate:"required"`
	Interests   string `json:"interests"   validate:"required"`
}

// Validator turns RawFields into Fields. It never touches a store.
type Validator struct {
	engine *validatorengine.Validate
}

// NewValidator builds a Validator that reports fields by their JSON names.
func NewValidator() *Validator {
	engine := validatorengine.New()
	engine.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{engine: engine}
}

// Validate trims every value, requires all text fields, parses the coordinates as finite
// numbers and splits interests on commas, dropping tokens that are blank after trimming.
// The error, if any, is a ValidationErrors.
func (v *Validator) Validate(raw RawFields) (Fields, error) {
	form := trimmedForm{
		Name:        strings.TrimSpace(raw.Name),
		Description: strings.TrimSpace(raw.Description),
		Image:       strings.TrimSpace(raw.Image),
		Address:     strings.TrimSpace(raw.Address),
		Email:       strings.TrimSpace(raw.Email),
		Phone:       strings.TrimSpace(raw.Phone),
		Interests:   strings.TrimSpace(raw.Interests),
	}

	var verrs ValidationErrors
	if err := v.engine.Struct(form); err != nil {
		var fieldErrs validatorengine.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return Fields{}, err
		}
		for _, fe := range fieldErrs {
			verrs = append(verrs, &ValidationError{Field: fe.Field(), Message: messageFor(fe)})
		}
	}

	interests := ParseInterests(form.Interests)
	if form.Interests != "" && len(interests) == 0 {
		verrs = append(verrs, &ValidationError{Field: "interests", Message: "must list at least one interest"})
	}

	coords, ok := parseCoordinates(raw.Latitude, raw.Longitude)
	if !ok {
		verrs = append(verrs, &ValidationError{
			Field:   FieldCoordinates,
			Message: "latitude and longitude must be finite numbers",
		})
	}

	if len(verrs) > 0 {
		return Fields{}, verrs
	}
	return Fields{
		Name:        form.Name,
		Description: form.Description,
		Image:       form.Image,
		Address:     form.Address,
		Coordinates: coords,
		Interests:   interests,
		Contact:     Contact{Email: form.Email, Phone: form.Phone},
	}, nil
}

func messageFor(fe validatorengine.FieldError) string {
	if fe.Tag() == "required" {
		return "is required"
	}
	return "failed " + fe.Tag() + " check"
}

// ParseInterests splits a comma-separated list, trims each token and drops empty ones.
// Order and duplicates are kept.
func ParseInterests(raw string) []string {
	var out []string
	for token := range strings.SplitSeq(raw, ",") {
		if token = strings.TrimSpace(token); token != "" {
			out = append(out, token)
		}
	}
	return out
}

func parseCoordinates(lat, lng string) (Coordinates, bool) {
	latitude, ok := parseFinite(lat)
	if !ok {
		return Coordinates{}, false
	}
	longitude, ok := parseFinite(lng)
	if !ok {
		return Coordinates{}, false
	}
	return Coordinates{Latitude: latitude, Longitude: longitude}, true
}

func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// DraftFrom fills an edit form from a stored profile. Interests are joined with ", ", so
// validating the draft reproduces the profile's fields.
func DraftFrom(p Profile) RawFields {
	return RawFields{
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		Address:     p.Address,
		Latitude:    strconv.FormatFloat(p.Coordinates.Latitude, 'f', -1, 64),
		Longitude:   strconv.FormatFloat(p.Coordinates.Longitude, 'f', -1, 64),
		Interests:   strings.Join(p.Interests, ", "),
		Email:       p.Contact.Email,
		Phone:       p.Contact.Phone,
	}
}
