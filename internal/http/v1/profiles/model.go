package profiles

import (
	profilesvc "github.com/janisto/profile-maps/internal/service/profile"
)

// Contact holds the ways to reach a person.
type Contact struct {
	Email string `json:"email" doc:"Email address" example:"priya.s@techcorp.in"`
	Phone string `json:"phone" doc:"Phone number"  example:"+91 98765 43210"`
}

// Profile represents a directory entry.
type Profile struct {
	ID          int        `json:"id"          doc:"Unique identifier"               example:"1"`
	Name        string     `json:"name"        doc:"Display name"                    example:"Priya Sharma"`
	Description string     `json:"description" doc:"Short biography"                 example:"Full Stack Developer at TechCorp India"`
	Image       string     `json:"image"       doc:"Avatar URL"                      example:"https://images.unsplash.com/photo-1494790108377-be9c29b29330"`
	Address     string     `json:"address"     doc:"Postal address"                  example:"Koramangala, Bangalore, Karnataka"`
	Coordinates [2]float64 `json:"coordinates" doc:"Latitude and longitude, degrees"`
	Interests   []string   `json:"interests"   doc:"Interests in entry order"`
	Contact     Contact    `json:"contact"     doc:"Contact details"`
}

// ListData is the body of a profile listing.
type ListData struct {
	Items []Profile `json:"items" doc:"Matching profiles in insertion order"`
	Total int       `json:"total" doc:"Number of matching profiles"          example:"5"`
}

// ProfileForm carries the raw admin form values, every field a string as typed.
type ProfileForm struct {
	Name        string `json:"name,omitempty"        maxLength:"200"  doc:"Display name"                     example:"Priya Sharma"`
	Description string `json:"description,omitempty" maxLength:"2000" doc:"Short biography"                  example:"Full Stack Developer at TechCorp India"`
	Image       string `json:"image,omitempty"       maxLength:"2048" doc:"Avatar URL"                       example:"https://images.unsplash.com/photo-1494790108377-be9c29b29330"`
	Address     string `json:"address,omitempty"     maxLength:"500"  doc:"Postal address"                   example:"Koramangala, Bangalore, Karnataka"`
	Latitude    string `json:"latitude,omitempty"    maxLength:"64"   doc:"Latitude in degrees"              example:"12.9716"`
	Longitude   string `json:"longitude,omitempty"   maxLength:"64"   doc:"Longitude in degrees"             example:"77.6246"`
	Interests   string `json:"interests,omitempty"   maxLength:"1000" doc:"Comma-separated interests"        example:"Web Development, AI, Yoga"`
	Email       string `json:"email,omitempty"       maxLength:"320"  doc:"Email address"                    example:"priya.s@techcorp.in"`
	Phone       string `json:"phone,omitempty"       maxLength:"64"   doc:"Phone number"                     example:"+91 98765 43210"`
}

// ToHTTPProfile converts a stored profile to its API representation.
func ToHTTPProfile(p profilesvc.Profile) Profile {
	interests := p.Interests
	if interests == nil {
		interests = []string{}
	}
	return Profile{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		Address:     p.Address,
		Coordinates: [2]float64{p.Coordinates.Latitude, p.Coordinates.Longitude},
		Interests:   interests,
		Contact:     Contact{Email: p.Contact.Email, Phone: p.Contact.Phone},
	}
}

func toRawFields(f ProfileForm) profilesvc.RawFields {
	return profilesvc.RawFields{
		Name:        f.Name,
		Description: f.Description,
		Image:       f.Image,
		Address:     f.Address,
		Latitude:    f.Latitude,
		Longitude:   f.Longitude,
		Interests:   f.Interests,
		Email:       f.Email,
		Phone:       f.Phone,
	}
}

func toProfileForm(raw profilesvc.RawFields) ProfileForm {
	return ProfileForm{
		Name:        raw.Name,
		Description: raw.Description,
		Image:       raw.Image,
		Address:     raw.Address,
		Latitude:    raw.Latitude,
		Longitude:   raw.Longitude,
		Interests:   raw.Interests,
		Email:       raw.Email,
		Phone:       raw.Phone,
	}
}
