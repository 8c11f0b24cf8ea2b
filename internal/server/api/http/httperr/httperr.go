// Package httperr maps service errors onto HTTP status errors. It is the
// single place where the error taxonomy becomes status codes; handlers never
// pick a code themselves.
package httperr

import (
	"errors"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"tripvault/internal/common"
)

// Map translates err into the huma error carrying its fixed status code:
// validation 400, unauthorized 401, forbidden 403, not found 404, conflict
// 409, anything else 500. Storage failures deliberately surface no internal
// detail.
func Map(err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return huma.Error400BadRequest(detail(err))
	case errors.Is(err, common.ErrUnauthorized):
		return huma.Error401Unauthorized("Unauthorized Access")
	case errors.Is(err, common.ErrForbidden):
		return huma.Error403Forbidden("Forbidden Access")
	case errors.Is(err, common.ErrNotFound):
		return huma.Error404NotFound(detail(err))
	case errors.Is(err, common.ErrConflict):
		return huma.Error409Conflict(detail(err))
	default:
		return huma.Error500InternalServerError("internal error")
	}
}

// detail strips the sentinel prefix ("validation error: ...") so the client
// sees only the user-correctable part of the message.
func detail(err error) string {
	msg := err.Error()
	if _, rest, ok := strings.Cut(msg, ": "); ok {
		return rest
	}
	return msg
}
