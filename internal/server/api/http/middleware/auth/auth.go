// Package auth provides the bearer-token middleware. It resolves the
// Authorization header into an identity through the authorization guard and
// stores it in the request context for the handlers behind it.
package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"tripvault/internal/logging"
	"tripvault/internal/server/authz"
)

type contextKey string

const identityKey contextKey = "identity"

type Auth struct {
	guard *authz.Guard
	log   logging.Logger
}

func New(guard *authz.Guard, log logging.Logger) *Auth {
	return &Auth{
		guard: guard,
		log:   log.With("component", "auth_middleware"),
	}
}

// Middleware rejects the request with 401 unless the Authorization header
// resolves to an identity. The identity is not checked against the user
// directory here; role and existence checks belong to the services.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		identity, err := a.guard.Resolve(ctx.Header("Authorization"))
		if err != nil {
			a.log.Debug(ctx.Context(), "bearer token rejected", "path", ctx.URL().Path)

			ctx.SetStatus(http.StatusUnauthorized)
			ctx.SetHeader("Content-Type", "application/json")
			_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
				"message": "Unauthorized Access",
			})
			return
		}

		next(huma.WithContext(ctx, WithIdentity(ctx.Context(), identity)))
	}
}

// WithIdentity returns a context carrying the resolved identity.
func WithIdentity(ctx context.Context, identity string) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity returns the identity stored by the middleware, if any.
func GetIdentity(ctx context.Context) (string, bool) {
	identity, ok := ctx.Value(identityKey).(string)
	return identity, ok
}
