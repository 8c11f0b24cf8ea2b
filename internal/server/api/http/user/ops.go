package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID:   "user-register",
		Method:        http.MethodPost,
		Path:          "/register",
		Summary:       "Register a new account",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.public,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID:   "user-login",
		Method:        http.MethodPost,
		Path:          "/login",
		Summary:       "Log in and receive a bearer token",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.public,
	}
}

func (h *Handler) profileOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-profile",
		Method:      http.MethodGet,
		Path:        "/profile",
		Summary:     "Get the logged-in user's profile",
		Tags:        []string{"users"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.secured,
	}
}

func (h *Handler) updateProfileOp() huma.Operation {
	return huma.Operation{
		OperationID:   "user-profile-update",
		Method:        http.MethodPatch,
		Path:          "/profile",
		Summary:       "Update the logged-in user's profile",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.secured,
	}
}
