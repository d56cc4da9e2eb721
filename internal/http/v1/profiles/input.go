package profiles

// ProfileListInput for GET /profiles
type ProfileListInput struct {
	Q string `query:"q" maxLength:"200" doc:"Case-insensitive filter on name, description and address" example:"bangalore"`
}

// ProfileGetInput for GET /profiles/{id} and GET /profiles/{id}/draft
type ProfileGetInput struct {
	ID int `path:"id" minimum:"1" doc:"Profile identifier" example:"1"`
}

// ProfileCreateInput for POST /profiles
type ProfileCreateInput struct {
	Body ProfileForm
}

// ProfileUpdateInput for PUT /profiles/{id}
type ProfileUpdateInput struct {
	ID   int `path:"id" minimum:"1" doc:"Profile identifier" example:"1"`
	Body ProfileForm
}

// ProfileDeleteInput for DELETE /profiles/{id}
type ProfileDeleteInput struct {
	ID int `path:"id" minimum:"1" doc:"Profile identifier" example:"1"`
}
