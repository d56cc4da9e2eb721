package selection

// SelectionGetInput for GET /selection (no body needed)
type SelectionGetInput struct{}

// SelectionPutInput for PUT /selection
type SelectionPutInput struct {
	Body struct {
		ID int `json:"id" minimum:"1" required:"true" doc:"Profile to show on the map" example:"1"`
	}
}

// SelectionClearInput for DELETE /selection (no body needed)
type SelectionClearInput struct{}

// MapGetInput for GET /map (no body needed)
type MapGetInput struct{}
