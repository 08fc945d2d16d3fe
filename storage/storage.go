// Package storage is the durable side of the POS: a tiny key-value store
// holding whole JSON documents, one per slot. The in-memory session is
// authoritative; slots are overwritten wholesale after every mutation.
package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: key not found")

type Store interface {
	// Load returns the raw document for key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save overwrites the document for key.
	Save(ctx context.Context, key string, value []byte) error
	// Delete removes the slot. Deleting a missing slot is not an error.
	Delete(ctx context.Context, key string) error
}
