// Package store is the document Data Store the API persists orders in.
package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// ErrNotFound is returned when no document matches the id, including ids
// that are not valid for the backend.
var ErrNotFound = errors.New("document not found")

// Store is a minimal document store keyed by opaque string ids.
type Store interface {
	// Insert persists doc into collection and returns its generated id.
	Insert(ctx context.Context, collection string, doc any) (string, error)

	// FindOne decodes the document with the given id into out.
	FindOne(ctx context.Context, collection, id string, out any) error

	// UpdateFields sets the given top-level fields on one document.
	UpdateFields(ctx context.Context, collection, id string, fields map[string]any) error

	ListCollectionNames(ctx context.Context) ([]string, error)

	Close(ctx context.Context) error
}

// Open connects to the backend selected by the URL scheme.
func Open(ctx context.Context, rawURL, database string) (Store, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	switch u.Scheme {
	case "mongodb", "mongodb+srv":
		return OpenMongo(ctx, rawURL, database)
	case "redis", "rediss":
		return OpenRedis(ctx, rawURL)
	default:
		return nil, fmt.Errorf("unsupported database url scheme %q", u.Scheme)
	}
}
