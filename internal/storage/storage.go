// Package storage defines the contract every record backend satisfies.
//
// Entity services depend on Store only, so the same business rules run
// against the in-memory store in tests and against Postgres or MySQL in
// production. Records stay loosely typed inside this package; services
// convert them to their own model structs.
package storage

//go:generate go run go.uber.org/mock/mockgen -source=./storage.go -destination=./mocks/storage_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/shared/failure"
	"strings"
)

// Store is a keyed record store for a single entity kind.
type Store interface {
	// ReadByID fails with a not found failure when no record has the id.
	ReadByID(ctx context.Context, id string) (Record, error)
	// ReadAll returns an empty slice, never an error, for an empty store.
	ReadAll(ctx context.Context) ([]Record, error)
	// Create stores a record whose id was assigned by the caller.
	// A duplicate id overwrites the existing record.
	Create(ctx context.Context, record Record) (Record, error)
	// Update merges partial into the stored record and returns the result.
	Update(ctx context.Context, id string, partial Record) (Record, error)
	Delete(ctx context.Context, id string) error
}

// Stores groups the per-kind stores a running service works with.
type Stores struct {
	Rooms     Store
	Customers Store
	Bookings  Store
}

// NotFound builds the failure every Store returns for a missing id,
// e.g. "Room not found: 42".
func NotFound(entity, id string) error {
	return failure.NotFound(fmt.Sprintf("%s not found: %s", title(entity), id))
}

func title(entity string) string {
	if entity == "" {
		return "Record"
	}

	return strings.ToUpper(entity[:1]) + entity[1:]
}
