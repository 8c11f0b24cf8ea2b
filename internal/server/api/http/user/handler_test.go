package user

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripvault/internal/logging"
	authmw "tripvault/internal/server/api/http/middleware/auth"
	"tripvault/internal/server/auth"
	"tripvault/internal/server/store"
	"tripvault/internal/server/users"
)

func newTestHandler(t *testing.T) (*Handler, *users.Directory) {
	t.Helper()

	log := logging.NewDefault("error")
	dir := users.NewDirectory(store.NewCollection[users.User](store.NewMemoryBackend(), "users"), false, log)
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)

	return NewHandler(dir, tokens, log, nil, nil), dir
}

func statusOf(t *testing.T, err error) int {
	t.Helper()

	var se huma.StatusError
	require.True(t, errors.As(err, &se), "expected a status error, got %v", err)
	return se.GetStatus()
}

func registerInputFor(username, email, password string) *registerInput {
	input := &registerInput{}
	input.Body.Username = username
	input.Body.Email = email
	input.Body.Password = password
	return input
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHandler(t)

	t.Run("success", func(t *testing.T) {
		out, err := h.register(ctx, registerInputFor("alice", "a@x.com", "p1"))
		require.NoError(t, err)
		assert.Equal(t, "User registered successfully", out.Body.Message)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := h.register(ctx, registerInputFor("alice2", "a@x.com", "p2"))
		assert.Equal(t, http.StatusConflict, statusOf(t, err))
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		_, err := h.register(ctx, registerInputFor("bob", "", "p2"))
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHandler(t)

	_, err := h.register(ctx, registerInputFor("alice", "a@x.com", "p1"))
	require.NoError(t, err)

	t.Run("success issues a verifiable token", func(t *testing.T) {
		input := &loginInput{}
		input.Body.Email = "a@x.com"
		input.Body.Password = "p1"

		out, err := h.login(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "User logged in successfully", out.Body.Message)

		identity, err := h.tokens.Verify(out.Body.Token)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", identity)
	})

	t.Run("wrong password", func(t *testing.T) {
		input := &loginInput{}
		input.Body.Email = "a@x.com"
		input.Body.Password = "nope"

		_, err := h.login(ctx, input)
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
		assert.Contains(t, err.Error(), "Email or Password is not correct")
	})

	t.Run("missing credentials", func(t *testing.T) {
		input := &loginInput{}
		input.Body.Email = "a@x.com"

		_, err := h.login(ctx, input)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})
}

func TestProfile(t *testing.T) {
	h, _ := newTestHandler(t)

	_, err := h.register(context.Background(), registerInputFor("alice", "a@x.com", "p1"))
	require.NoError(t, err)

	t.Run("returns the record without the password", func(t *testing.T) {
		ctx := authmw.WithIdentity(context.Background(), "a@x.com")

		out, err := h.profile(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, "alice", out.Body.Username)
		assert.Equal(t, "user", out.Body.Role)
	})

	t.Run("no identity in context", func(t *testing.T) {
		_, err := h.profile(context.Background(), nil)
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("identity without a record", func(t *testing.T) {
		ctx := authmw.WithIdentity(context.Background(), "ghost@x.com")

		_, err := h.profile(ctx, nil)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})
}

func TestUpdateProfile(t *testing.T) {
	h, dir := newTestHandler(t)

	_, err := h.register(context.Background(), registerInputFor("alice", "a@x.com", "p1"))
	require.NoError(t, err)
	_, err = h.register(context.Background(), registerInputFor("bob", "b@x.com", "p2"))
	require.NoError(t, err)

	ctx := authmw.WithIdentity(context.Background(), "a@x.com")

	t.Run("updates own username", func(t *testing.T) {
		input := &updateProfileInput{}
		input.Body.Email = "a@x.com"
		input.Body.Username = "alice_updated"

		out, err := h.updateProfile(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "User Information updated successfully", out.Body.Message)

		u, err := dir.FindByEmail(context.Background(), "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, "alice_updated", u.Username)
	})

	t.Run("another user's record is forbidden", func(t *testing.T) {
		input := &updateProfileInput{}
		input.Body.Email = "b@x.com"
		input.Body.Username = "hijacked"

		_, err := h.updateProfile(ctx, input)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})

	t.Run("role change is forbidden by default policy", func(t *testing.T) {
		input := &updateProfileInput{}
		input.Body.Email = "a@x.com"
		input.Body.Role = "admin"

		_, err := h.updateProfile(ctx, input)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})

	t.Run("missing email", func(t *testing.T) {
		input := &updateProfileInput{}
		input.Body.Username = "whoever"

		_, err := h.updateProfile(ctx, input)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})
}
