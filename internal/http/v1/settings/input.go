package settings

// ThemeGetInput for GET /settings/theme (no body needed)
type ThemeGetInput struct{}

// ThemePutInput for PUT /settings/theme
type ThemePutInput struct {
	Body struct {
		Theme string `json:"theme" enum:"light,dark" required:"true" doc:"Color scheme" example:"dark"`
	}
}

// ThemeToggleInput for POST /settings/theme/toggle (no body needed)
type ThemeToggleInput struct{}
