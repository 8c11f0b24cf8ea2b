package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) welcomeOp() huma.Operation {
	return huma.Operation{
		OperationID: "welcome",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Welcome page",
		Tags:        []string{"welcome"},
		Middlewares: h.public,
	}
}

func (h *Handler) healthOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Liveness probe",
		Tags:        []string{"health"},
		Middlewares: h.public,
	}
}
