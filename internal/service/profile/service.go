// Package profile holds the directory core: the profile store, search, form validation,
// map selection and seed data.
package profile

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// ErrNotFound is matched by every not-found failure of the store.
var ErrNotFound = errors.New("profile not found")

// NotFoundError reports the id that was missing.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile %d not found", e.ID)
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Contact holds the ways to reach a person. Formats are not checked.
type Contact struct {
	Email string
	Phone string
}

// Profile is a directory entry.
type Profile struct {
	ID          int
	Name        string
	Description string
	Image       string
	Address     string
	Coordinates Coordinates
	Interests   []string
	Contact     Contact
}

// Fields are the validated, replaceable parts of a Profile: everything except the id.
// Build them with Validator.Validate.
type Fields struct {
	Name        string
	Description string
	Image       string
	Address     string
	Coordinates Coordinates
	Interests   []string
	Contact     Contact
}

// clone returns a deep copy so callers never share the Interests backing array.
func (p Profile) clone() Profile {
	p.Interests = slices.Clone(p.Interests)
	return p
}

func (p *Profile) apply(f Fields) {
	p.Name = f.Name
	p.Description = f.Description
	p.Image = f.Image
	p.Address = f.Address
	p.Coordinates = f.Coordinates
	p.Interests = slices.Clone(f.Interests)
	p.Contact = f.Contact
}

// Store is the authoritative profile collection.
//
// Reads return copies; all changes go through Add, Update and Remove, and callers
// re-query List after a mutation.
type Store interface {
	List(ctx context.Context) []Profile
	Get(ctx context.Context, id int) (Profile, error)
	Add(ctx context.Context, fields Fields) Profile
	Update(ctx context.Context, id int, fields Fields) (Profile, error)
	Remove(ctx context.Context, id int) error
}
