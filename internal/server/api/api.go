// Package api assembles the HTTP surface: a chi mux with every operation
// registered through huma, plus the bearer-auth and request-logging
// middleware chains.
package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"tripvault/internal/logging"
	destinationAPI "tripvault/internal/server/api/http/destination"
	healthAPI "tripvault/internal/server/api/http/health"
	authmw "tripvault/internal/server/api/http/middleware/auth"
	loggermw "tripvault/internal/server/api/http/middleware/logger"
	userAPI "tripvault/internal/server/api/http/user"
	"tripvault/internal/server/auth"
	"tripvault/internal/server/authz"
	"tripvault/internal/server/destinations"
	"tripvault/internal/server/users"
)

// New builds the router. Public operations run behind the request logger
// only; secured ones additionally pass the bearer middleware, which stores
// the resolved identity in the request context.
func New(dir *users.Directory, tokens *auth.TokenService, guard *authz.Guard, catalog *destinations.Catalog, log logging.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("TripVault API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	humaAPI := humachi.New(mux, config)

	logMW := loggermw.New(log).Middleware()
	authMW := authmw.New(guard, log).Middleware()

	public := huma.Middlewares{logMW}
	secured := huma.Middlewares{authMW, logMW}

	healthAPI.NewHandler(log, public).SetupRoutes(humaAPI)
	userAPI.NewHandler(dir, tokens, log, public, secured).SetupRoutes(humaAPI)
	destinationAPI.NewHandler(catalog, log, public, secured).SetupRoutes(humaAPI)

	return mux
}
