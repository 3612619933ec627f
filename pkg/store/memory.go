package store

import (
	"context"
	"sort"
	"sync"

	"github.com/matzehuels/cardframe/pkg/errors"
	"github.com/matzehuels/cardframe/pkg/template"
)

// MemoryStore is an in-process template store for development and tests.
type MemoryStore struct {
	mu        sync.RWMutex
	templates map[string]template.Template
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		templates: make(map[string]template.Template),
	}
}

// Put saves a template under its name.
func (s *MemoryStore) Put(ctx context.Context, t template.Template) error {
	if err := errors.ValidateTemplateName(t.Name); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[t.Name] = t
	return nil
}

// Get retrieves a template by name.
func (s *MemoryStore) Get(ctx context.Context, name string) (template.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.templates[name]
	if !ok {
		return template.Template{}, errors.New(errors.ErrCodeTemplateNotFound, "template %q not found", name)
	}
	return t, nil
}

// Delete removes a template by name.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.templates[name]; !ok {
		return errors.New(errors.ErrCodeTemplateNotFound, "template %q not found", name)
	}
	delete(s.templates, name)
	return nil
}

// List returns all template names in lexical order.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.templates))
	for name := range s.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
