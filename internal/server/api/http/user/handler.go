// Package user exposes registration, login and profile management over HTTP.
package user

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"tripvault/internal/common"
	"tripvault/internal/logging"
	"tripvault/internal/server/api/http/httperr"
	authmw "tripvault/internal/server/api/http/middleware/auth"
	"tripvault/internal/server/auth"
	"tripvault/internal/server/users"
)

type Handler struct {
	users   *users.Directory
	tokens  *auth.TokenService
	log     logging.Logger
	public  huma.Middlewares
	secured huma.Middlewares
}

func NewHandler(dir *users.Directory, tokens *auth.TokenService, log logging.Logger, public, secured huma.Middlewares) *Handler {
	return &Handler{
		users:   dir,
		tokens:  tokens,
		log:     log,
		public:  public,
		secured: secured,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.profileOp(), h.profile)
	huma.Register(api, h.updateProfileOp(), h.updateProfile)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	_, err := h.users.Register(ctx, input.Body.Username, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, httperr.Map(err)
	}

	return &registerOutput{
		Body: MessageResponse{Message: "User registered successfully"},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	if input.Body.Email == "" || input.Body.Password == "" {
		return nil, huma.Error400BadRequest("email and password are required")
	}

	u, err := h.users.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return nil, huma.Error401Unauthorized("Email or Password is not correct")
		}
		return nil, httperr.Map(err)
	}

	token, err := h.tokens.Issue(u.Email)
	if err != nil {
		h.log.Error(ctx, "token issue failed", "error", err)
		return nil, huma.Error500InternalServerError("internal error")
	}

	return &loginOutput{
		Body: LoginResponse{
			Message: "User logged in successfully",
			Token:   token,
		},
	}, nil
}

func (h *Handler) profile(ctx context.Context, _ *struct{}) (*profileOutput, error) {
	identity, ok := authmw.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized Access")
	}

	u, err := h.users.FindByEmail(ctx, identity)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, huma.Error404NotFound("User not found")
		}
		return nil, httperr.Map(err)
	}

	return &profileOutput{
		Body: ProfileResponse{
			Username: u.Username,
			Email:    u.Email,
			Role:     string(u.Role),
		},
	}, nil
}

func (h *Handler) updateProfile(ctx context.Context, input *updateProfileInput) (*updateProfileOutput, error) {
	identity, ok := authmw.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized Access")
	}

	if input.Body.Email == "" {
		return nil, huma.Error400BadRequest("email is required")
	}

	// An absent field means "leave unchanged"; an empty string never reaches
	// the directory as a patch value.
	var patch users.ProfilePatch
	if input.Body.Username != "" {
		patch.Username = &input.Body.Username
	}
	if input.Body.Password != "" {
		patch.Password = &input.Body.Password
	}
	if input.Body.Role != "" {
		role := users.Role(input.Body.Role)
		patch.Role = &role
	}

	if _, err := h.users.UpdateProfile(ctx, identity, input.Body.Email, patch); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, huma.Error404NotFound("User not found")
		}
		return nil, httperr.Map(err)
	}

	return &updateProfileOutput{
		Body: MessageResponse{Message: "User Information updated successfully"},
	}, nil
}
