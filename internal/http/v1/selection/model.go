package selection

import (
	"github.com/janisto/profile-maps/internal/http/v1/profiles"
	profilesvc "github.com/janisto/profile-maps/internal/service/profile"
)

// Selection is the profile currently shown on the map.
type Selection struct {
	Selected bool `json:"selected" doc:"Whether a profile is selected"`
	ID       *int `json:"id,omitempty" doc:"Selected profile id" example:"1"`
	Loading  bool `json:"loading"  doc:"A deferred selection is pending"`
	// Profile is omitted when nothing is selected or the selected id no longer exists.
	Profile *profiles.Profile `json:"profile,omitempty" doc:"Selected profile"`
}

// Marker is the pin drawn for the selected profile.
type Marker struct {
	ProfileID   int        `json:"profileId"   doc:"Profile the marker belongs to" example:"1"`
	Position    [2]float64 `json:"position"    doc:"Latitude and longitude, degrees"`
	Name        string     `json:"name"        doc:"Popup title"                  example:"Priya Sharma"`
	Description string     `json:"description" doc:"Popup text"`
	Address     string     `json:"address"     doc:"Popup address line"`
}

// MapView tells the map widget what to show.
type MapView struct {
	Center      [2]float64 `json:"center"      doc:"Latitude and longitude, degrees"`
	Zoom        int        `json:"zoom"        doc:"Zoom level"                    example:"13"`
	Marker      *Marker    `json:"marker,omitempty" doc:"Marker for the selected profile"`
	TileURL     string     `json:"tileUrl"     doc:"Tile URL template"`
	Attribution string     `json:"attribution" doc:"Tile attribution HTML"`
}

func toHTTPSelection(state profilesvc.SelectionState, current *profilesvc.Profile) Selection {
	s := Selection{Selected: state.Selected, Loading: state.Loading}
	if state.Selected {
		id := state.ID
		s.ID = &id
	}
	if current != nil {
		p := profiles.ToHTTPProfile(*current)
		s.Profile = &p
	}
	return s
}

func toHTTPMapView(v profilesvc.MapView) MapView {
	out := MapView{
		Center:      latLng(v.Center),
		Zoom:        v.Zoom,
		TileURL:     profilesvc.TileURL,
		Attribution: profilesvc.TileAttribution,
	}
	if v.Marker != nil {
		out.Marker = &Marker{
			ProfileID:   v.Marker.ProfileID,
			Position:    latLng(v.Marker.Position),
			Name:        v.Marker.Name,
			Description: v.Marker.Description,
			Address:     v.Marker.Address,
		}
	}
	return out
}

func latLng(c profilesvc.Coordinates) [2]float64 {
	return [2]float64{c.Latitude, c.Longitude}
}
