package destination

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "destinations-list",
		Method:      http.MethodGet,
		Path:        "/destination",
		Summary:     "List all destinations",
		Tags:        []string{"destinations"},
		Middlewares: h.public,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "destinations-create",
		Method:        http.MethodPost,
		Path:          "/destination",
		Summary:       "Add a destination (admin only)",
		Tags:          []string{"destinations"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.secured,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "destinations-delete",
		Method:      http.MethodDelete,
		Path:        "/destination/{id}",
		Summary:     "Delete a destination (admin only)",
		Tags:        []string{"destinations"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.secured,
	}
}
