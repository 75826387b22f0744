// ./connect21-backend/internal/handlers/handler.go
package handlers

import (
	"context"
	"time"

	admin "google.golang.org/api/admin/directory/v1"

	"connect21/backend/internal/models"
)

// Store is the path-addressed tree store the handlers read and write.
// Get returns nil (not an error) when the path does not exist.
type Store interface {
	Get(ctx context.Context, path string) (interface{}, error)
	Set(ctx context.Context, path string, value interface{}) error
	Push(ctx context.Context, path string, value interface{}) (string, error)
	CreateIfAbsent(ctx context.Context, path string, value interface{}) (bool, error)
}

// Identity is the hosted authentication provider.
type Identity interface {
	CreateUser(ctx context.Context, params models.CreateUserParams) (models.UserSummary, error)
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
}

// Directory is the hosted groups directory.
type Directory interface {
	AddGroupMember(ctx context.Context, groupEmail, userEmail string) (*admin.Member, error)
}

// Handler carries the remote clients the endpoints compose. Everything is
// injected so tests can substitute fakes; no handler touches process state.
type Handler struct {
	Store     Store
	Identity  Identity
	Directory Directory

	now func() time.Time
}

// New builds a Handler over the given clients.
func New(store Store, identity Identity, directory Directory) *Handler {
	return &Handler{
		Store:     store,
		Identity:  identity,
		Directory: directory,
		now:       time.Now,
	}
}
