package destination

import "tripvault/internal/server/destinations"

type listOutput struct {
	Body []destinations.Destination
}

type createInput struct {
	Body struct {
		ID          int64  `json:"Id,omitempty" example:"1"`
		Name        string `json:"Name,omitempty" example:"Grand Canyon"`
		Description string `json:"Description,omitempty"`
		Location    string `json:"Location,omitempty" example:"USA"`
	}
}

type createOutput struct {
	Body MessageResponse
}

type deleteInput struct {
	ID int64 `path:"id"`
}

type deleteOutput struct {
	Body MessageResponse
}

type MessageResponse struct {
	Message string `json:"message"`
}
