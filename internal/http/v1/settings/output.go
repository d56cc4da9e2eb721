package settings

// ThemeOutput is returned by every theme endpoint.
type ThemeOutput struct {
	Body Theme
}
