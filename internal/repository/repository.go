package repository

import "context"

// ReadRepository is the read-only capability over a keyed entity store.
// Absence is reported as a nil result or an empty slice, never as an error;
// storage failures are absorbed by implementations.
type ReadRepository[T any, ID comparable] interface {
	// FindByID returns the entity with the given id, or nil if absent.
	FindByID(ctx context.Context, id ID) *T
	// FindAll returns all entities ordered by id ascending.
	FindAll(ctx context.Context) []T
}

// WriteRepository is the write-only capability over a keyed entity store.
type WriteRepository[T any, ID comparable] interface {
	// Create persists an entity that has no id yet and returns the stored
	// form with server-assigned fields populated, or nil on failure.
	Create(ctx context.Context, entity *T) *T
	// Update persists changes to an existing entity and returns the stored
	// form, or nil if no row matched the entity id.
	Update(ctx context.Context, entity *T) *T
	// DeleteByID removes the entity with the given id and returns the
	// number of rows affected.
	DeleteByID(ctx context.Context, id ID) int64
}

// Repository combines both capability facets. Consumers that only need one
// facet should depend on it directly.
type Repository[T any, ID comparable] interface {
	ReadRepository[T, ID]
	WriteRepository[T, ID]
}
