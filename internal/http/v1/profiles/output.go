package profiles

// ProfileListOutput for GET /profiles
type ProfileListOutput struct {
	Body ListData
}

// ProfileGetOutput for GET /profiles/{id}
type ProfileGetOutput struct {
	Body Profile
}

// ProfileDraftOutput for GET /profiles/{id}/draft
type ProfileDraftOutput struct {
	Body ProfileForm
}

// ProfileCreateOutput for POST /profiles (201 Created)
type ProfileCreateOutput struct {
	Location string `header:"Location" doc:"URL of created profile"`
	Body     Profile
}

// ProfileUpdateOutput for PUT /profiles/{id}
type ProfileUpdateOutput struct {
	Body Profile
}
