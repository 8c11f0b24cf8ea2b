package health

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripvault/internal/logging"
)

func TestWelcome(t *testing.T) {
	h := NewHandler(logging.NewDefault("error"), nil)

	out, err := h.welcome(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to TripVault", out.Body.Message)
}

func TestHealth(t *testing.T) {
	h := NewHandler(logging.NewDefault("error"), nil)

	out, err := h.health(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "OK", out.Body.Status)
}
