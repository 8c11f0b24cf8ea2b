// Package health serves the welcome page and the liveness probe.
package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"tripvault/internal/logging"
)

type Handler struct {
	log    logging.Logger
	public huma.Middlewares
}

func NewHandler(log logging.Logger, public huma.Middlewares) *Handler {
	return &Handler{
		log:    log,
		public: public,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.welcomeOp(), h.welcome)
	huma.Register(api, h.healthOp(), h.health)
}

func (h *Handler) welcome(_ context.Context, _ *struct{}) (*welcomeOutput, error) {
	return &welcomeOutput{
		Body: WelcomeResponse{Message: "Welcome to TripVault"},
	}, nil
}

func (h *Handler) health(ctx context.Context, _ *struct{}) (*healthOutput, error) {
	h.log.Debug(ctx, "health check request received")

	return &healthOutput{
		Body: HealthResponse{Status: "OK"},
	}, nil
}
