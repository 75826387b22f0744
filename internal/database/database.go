package database

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
)

// Store wraps the Realtime Database client with path-addressed operations.
// Paths are slash-delimited; each operation touches exactly one subtree.
type Store struct {
	client *db.Client
}

// NewStore obtains the Realtime Database client from an initialized app.
func NewStore(ctx context.Context, app *firebase.App) (*Store, error) {
	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Database client: %w", err)
	}
	return &Store{client: client}, nil
}

// Get returns the whole subtree at path, or nil when the path does not
// exist. A nil result with a nil error is "not found", not a failure.
func (s *Store) Get(ctx context.Context, path string) (interface{}, error) {
	var value interface{}
	if err := s.client.NewRef(path).Get(ctx, &value); err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return value, nil
}

// Set overwrites the subtree at path with value.
func (s *Store) Set(ctx context.Context, path string, value interface{}) error {
	if err := s.client.NewRef(path).Set(ctx, value); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return nil
}

// Push appends value under path with a store-generated, time-ordered key
// and returns that key.
func (s *Store) Push(ctx context.Context, path string, value interface{}) (string, error) {
	ref, err := s.client.NewRef(path).Push(ctx, value)
	if err != nil {
		return "", fmt.Errorf("could not push to %q: %w", path, err)
	}
	return ref.Key, nil
}

// CreateIfAbsent writes value at path only if the node does not exist yet,
// inside a database transaction so two concurrent callers cannot both win.
// It reports whether this call performed the write.
func (s *Store) CreateIfAbsent(ctx context.Context, path string, value interface{}) (bool, error) {
	var created bool
	err := s.client.NewRef(path).Transaction(ctx, createIfAbsentFn(value, &created))
	if err != nil {
		return false, fmt.Errorf("transaction on %q failed: %w", path, err)
	}
	return created, nil
}

// createIfAbsentFn keeps an existing node as-is and writes value otherwise.
// The transaction may retry the function, so created is re-derived on every
// invocation rather than accumulated.
func createIfAbsentFn(value interface{}, created *bool) db.UpdateFn {
	return func(node db.TransactionNode) (interface{}, error) {
		var current interface{}
		if err := node.Unmarshal(&current); err != nil {
			return nil, err
		}
		if current != nil {
			*created = false
			return current, nil
		}
		*created = true
		return value, nil
	}
}
