package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"tripvault/internal/common"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	s := NewTokenService([]byte("super-secret"), time.Hour)
	email := "alice@example.com"

	tok, err := s.Issue(email)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	got, err := s.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got != email {
		t.Fatalf("identity mismatch: got %q want %q", got, email)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	s := NewTokenService([]byte("secret"), -1*time.Second)

	tok, err := s.Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = s.Verify(tok)
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenService([]byte("right-secret"), time.Hour).Issue("a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenService([]byte("wrong-secret"), time.Hour).Verify(tok)
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for forged token, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	s := NewTokenService([]byte("k"), time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "a.b", strings.Repeat("x", 512)} {
		if _, err := s.Verify(tok); !errors.Is(err, common.ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized for %q, got %v", tok, err)
		}
	}
}

// Flipping any single character of a valid token must never resolve to a
// different identity. Base64url tolerates non-canonical trailing bits, so a
// mutation may still decode to the very same token; what matters is that no
// mutation ever verifies as someone else.
func TestVerify_MutatedTokenNeverForgesIdentity(t *testing.T) {
	t.Parallel()

	const email = "a@x.com"
	s := NewTokenService([]byte("secret"), time.Hour)

	tok, err := s.Issue(email)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	for i := 0; i < len(tok); i++ {
		mutated := []byte(tok)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}
		if string(mutated) == tok {
			continue
		}

		identity, err := s.Verify(string(mutated))
		if err == nil && identity != email {
			t.Fatalf("mutated token at index %d verified as %q", i, identity)
		}
	}
}
