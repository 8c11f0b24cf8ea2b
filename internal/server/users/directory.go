// Package users implements the user directory: credential storage,
// uniqueness enforcement, and role lookup on top of the record store.
package users

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"tripvault/internal/common"
	"tripvault/internal/logging"
	"tripvault/internal/server/store"
)

// Directory owns the users collection. Every mutation is a single atomic
// load-mutate-replace transition guarded by a mutex, so two concurrent
// writers cannot lose each other's update.
type Directory struct {
	mu                  sync.Mutex
	col                 *store.Collection[User]
	allowSelfRoleChange bool
	log                 logging.Logger
}

// NewDirectory constructs a Directory. allowSelfRoleChange controls whether
// UpdateProfile may change the caller's own role; it is an explicit policy
// switch, off in any sane deployment.
func NewDirectory(col *store.Collection[User], allowSelfRoleChange bool, log logging.Logger) *Directory {
	return &Directory{
		col:                 col,
		allowSelfRoleChange: allowSelfRoleChange,
		log:                 log.With("component", "users"),
	}
}

// Exists reports whether either field collides with an existing record.
func (d *Directory) Exists(ctx context.Context, username, email string) (bool, error) {
	records, err := d.col.Load(ctx)
	if err != nil {
		return false, err
	}

	for _, u := range records {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}

	return false, nil
}

// Register appends a new account with role "user". The password is stored
// as a bcrypt hash. Fails with common.ErrValidation on empty input and
// common.ErrConflict when username or email is already taken.
func (d *Directory) Register(ctx context.Context, username, email, password string) (*User, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", common.ErrValidation)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	records, err := d.col.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range records {
		if u.Username == username || u.Email == email {
			return nil, fmt.Errorf("%w: username or email already exists", common.ErrConflict)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("password hash: %w", err)
	}

	user := User{
		Username: username,
		Email:    email,
		Password: string(hash),
		Role:     RoleUser,
	}

	records = append(records, user)
	if err := d.col.Replace(ctx, records); err != nil {
		return nil, err
	}

	d.log.Info(ctx, "user registered", "username", username)
	return &user, nil
}

// Authenticate returns the record whose email and password match.
// The password comparison is a bcrypt hash check; the caller-facing
// contract (plaintext in, match out) is unchanged. Any mismatch yields
// common.ErrUnauthorized.
func (d *Directory) Authenticate(ctx context.Context, email, password string) (*User, error) {
	records, err := d.col.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range records {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
			break
		}
		return &u, nil
	}

	return nil, common.ErrUnauthorized
}

// List returns every account record in storage order.
func (d *Directory) List(ctx context.Context) ([]User, error) {
	return d.col.Load(ctx)
}

// FindByEmail returns the record for the identity, or common.ErrNotFound.
func (d *Directory) FindByEmail(ctx context.Context, email string) (*User, error) {
	records, err := d.col.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range records {
		if u.Email == email {
			return &u, nil
		}
	}

	return nil, common.ErrNotFound
}

// UpdateProfile applies patch to the record identified by targetEmail.
// A caller may only edit their own record: actingEmail != targetEmail is
// common.ErrForbidden. Role changes are governed by the directory's
// explicit policy switch. All checks run before anything is persisted;
// a rejected update leaves the collection untouched.
func (d *Directory) UpdateProfile(ctx context.Context, actingEmail, targetEmail string, patch ProfilePatch) (*User, error) {
	if actingEmail != targetEmail {
		return nil, fmt.Errorf("%w: profile belongs to another user", common.ErrForbidden)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	records, err := d.col.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, u := range records {
		if u.Email == targetEmail {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: user", common.ErrNotFound)
	}

	updated := records[idx]

	if patch.Username != nil && *patch.Username != updated.Username {
		if *patch.Username == "" {
			return nil, fmt.Errorf("%w: username must not be empty", common.ErrValidation)
		}
		for i, u := range records {
			if i != idx && u.Username == *patch.Username {
				return nil, fmt.Errorf("%w: username already exists", common.ErrConflict)
			}
		}
		updated.Username = *patch.Username
	}

	if patch.Password != nil {
		if *patch.Password == "" {
			return nil, fmt.Errorf("%w: password must not be empty", common.ErrValidation)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("password hash: %w", err)
		}
		updated.Password = string(hash)
	}

	if patch.Role != nil && *patch.Role != updated.Role {
		if !patch.Role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", common.ErrValidation, *patch.Role)
		}
		if !d.allowSelfRoleChange {
			return nil, fmt.Errorf("%w: role changes are not permitted", common.ErrForbidden)
		}
		updated.Role = *patch.Role
	}

	records[idx] = updated
	if err := d.col.Replace(ctx, records); err != nil {
		return nil, err
	}

	d.log.Info(ctx, "profile updated", "email", targetEmail)
	return &updated, nil
}
