package profile

// Map defaults for the directory. With nothing selected the map shows the whole of India.
const (
	DefaultZoom  = 5
	SelectedZoom = 13

	TileURL         = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	TileAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
)

// DefaultCenter is the geographic center of India.
var DefaultCenter = Coordinates{Latitude: 20.5937, Longitude: 78.9629}

// Marker is the pin drawn for the selected profile.
type Marker struct {
	ProfileID   int
	Position    Coordinates
	Name        string
	Description string
	Address     string
}

// MapView tells the map widget what to show.
type MapView struct {
	Center Coordinates
	Zoom   int
	// Marker is nil when no profile is selected.
	Marker *Marker
}

// ViewFor centers on p at street zoom, or shows the default overview when p is nil.
func ViewFor(p *Profile) MapView {
	if p == nil {
		return MapView{Center: DefaultCenter, Zoom: DefaultZoom}
	}
	return MapView{
		Center: p.Coordinates,
		Zoom:   SelectedZoom,
		Marker: &Marker{
			ProfileID:   p.ID,
			Position:    p.Coordinates,
			Name:        p.Name,
			Description: p.Description,
			Address:     p.Address,
		},
	}
}
