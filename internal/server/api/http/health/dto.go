package health

type welcomeOutput struct {
	Body WelcomeResponse
}

type WelcomeResponse struct {
	Message string `json:"message" example:"Welcome to TripVault"`
}

type healthOutput struct {
	Body HealthResponse
}

type HealthResponse struct {
	Status string `json:"status" example:"OK" doc:"Health status of the service"`
}
