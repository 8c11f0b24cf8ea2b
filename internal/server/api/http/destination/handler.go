// Package destination exposes the destination catalog over HTTP. Listing is
// public; create and delete require an admin bearer token.
package destination

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"tripvault/internal/common"
	"tripvault/internal/logging"
	"tripvault/internal/server/api/http/httperr"
	authmw "tripvault/internal/server/api/http/middleware/auth"
	"tripvault/internal/server/destinations"
)

type Handler struct {
	catalog *destinations.Catalog
	log     logging.Logger
	public  huma.Middlewares
	secured huma.Middlewares
}

func NewHandler(catalog *destinations.Catalog, log logging.Logger, public, secured huma.Middlewares) *Handler {
	return &Handler{
		catalog: catalog,
		log:     log,
		public:  public,
		secured: secured,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	records, err := h.catalog.List(ctx)
	if err != nil {
		h.log.Error(ctx, "destination list failed", "error", err)
		return nil, httperr.Map(err)
	}

	return &listOutput{Body: records}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	identity, ok := authmw.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized Access")
	}

	rec := destinations.Destination{
		ID:          input.Body.ID,
		Name:        input.Body.Name,
		Description: input.Body.Description,
		Location:    input.Body.Location,
	}

	if _, err := h.catalog.Create(ctx, identity, rec); err != nil {
		return nil, httperr.Map(err)
	}

	return &createOutput{
		Body: MessageResponse{Message: "Destination added successfully"},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	identity, ok := authmw.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized Access")
	}

	if err := h.catalog.Delete(ctx, identity, input.ID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, huma.Error404NotFound("Destination not found")
		}
		return nil, httperr.Map(err)
	}

	return &deleteOutput{
		Body: MessageResponse{Message: "Destination deleted successfully"},
	}, nil
}
