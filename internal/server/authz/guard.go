// Package authz composes the token service and the user directory into a
// single authorization guard: is this caller identified, and do they hold
// the required role?
package authz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tripvault/internal/common"
	"tripvault/internal/logging"
	"tripvault/internal/server/auth"
	"tripvault/internal/server/users"
)

const bearerPrefix = "Bearer "

type Guard struct {
	tokens *auth.TokenService
	users  *users.Directory
	log    logging.Logger
}

func NewGuard(tokens *auth.TokenService, users *users.Directory, log logging.Logger) *Guard {
	return &Guard{
		tokens: tokens,
		users:  users,
		log:    log.With("component", "authz"),
	}
}

// Resolve turns a raw Authorization header value into an identity. A
// literal "Bearer " prefix is stripped if present; the rest is verified by
// the token service. Any failure is common.ErrUnauthorized.
func (g *Guard) Resolve(rawHeaderValue string) (string, error) {
	if rawHeaderValue == "" {
		return "", common.ErrUnauthorized
	}

	token := strings.TrimPrefix(rawHeaderValue, bearerPrefix)

	identity, err := g.tokens.Verify(token)
	if err != nil {
		return "", common.ErrUnauthorized
	}

	return identity, nil
}

// RequireRole resolves the identity to a user record and checks its role.
// It returns the record on a grant; common.ErrUnauthorized when the
// identity has no matching record (or was never resolved); and
// common.ErrForbidden when the record's role does not match. This is the
// single gate in front of every admin-only mutation.
func (g *Guard) RequireRole(ctx context.Context, identity string, role users.Role) (*users.User, error) {
	if identity == "" {
		return nil, common.ErrUnauthorized
	}

	user, err := g.users.FindByEmail(ctx, identity)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, err
	}

	if user.Role != role {
		g.log.Debug(ctx, "role check failed", "identity", identity, "have", string(user.Role), "want", string(role))
		return nil, fmt.Errorf("%w: %s role required", common.ErrForbidden, role)
	}

	return user, nil
}
