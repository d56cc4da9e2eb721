package selection

// SelectionGetOutput for GET /selection
type SelectionGetOutput struct {
	Body Selection
}

// SelectionPutOutput for PUT /selection. Status is 202 while the selection is deferred.
type SelectionPutOutput struct {
	Status int
	Body   Selection
}

// MapGetOutput for GET /map
type MapGetOutput struct {
	Body MapView
}
