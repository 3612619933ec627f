// Package store provides durable storage for named card templates.
//
// Two backends are provided:
//   - memory: in-process storage for development and tests
//   - mongo: MongoDB-backed storage for the server deployment
//
// Stores hold templates keyed by name. Names are validated by the caller
// (see the errors package) before they reach a backend.
package store

import (
	"context"

	"github.com/matzehuels/cardframe/pkg/template"
)

// Store is the persistence interface for named templates.
type Store interface {
	// Put saves a template under its name, replacing any existing template
	// with the same name.
	Put(ctx context.Context, t template.Template) error

	// Get retrieves a template by name. Returns an error with code
	// TEMPLATE_NOT_FOUND when no template has that name.
	Get(ctx context.Context, name string) (template.Template, error)

	// Delete removes a template by name. Returns an error with code
	// TEMPLATE_NOT_FOUND when no template has that name.
	Delete(ctx context.Context, name string) error

	// List returns the names of all stored templates in lexical order.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
