// Package pipeline provides the compile → resolve → package flow shared by
// the CLI and the HTTP server.
//
// Resolution is deterministic, so results are cached against a content hash
// of the template plus the solver options. Centralizing that logic here
// keeps the CLI and server from duplicating cache key construction.
//
// # Usage
//
// Create a Runner and resolve a template:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Resolve(ctx, tmpl, pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Layout.Components)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cardframe/pkg/cache"
	"github.com/matzehuels/cardframe/pkg/layout"
	"github.com/matzehuels/cardframe/pkg/template"
)

// =============================================================================
// Options - Resolution Configuration
// =============================================================================

// Options configures a resolution run. The struct supports JSON
// serialization for API requests.
type Options struct {
	// MaxIterations is the solver pass budget. Zero means the engine
	// default.
	MaxIterations int `json:"max_iterations,omitempty"`

	// Refresh bypasses the cache and recomputes the result.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// TTL overrides the cache lifetime of the result. Zero means
	// [cache.TTLResolve]. Does not affect the cache key.
	TTL time.Duration `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks option values and applies defaults. The
// method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.MaxIterations < 0 {
		return fmt.Errorf("max_iterations must be positive, got %d", o.MaxIterations)
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = layout.DefaultMaxIterations
	}
	if o.TTL < 0 {
		return fmt.Errorf("ttl must be positive, got %s", o.TTL)
	}
	if o.TTL == 0 {
		o.TTL = cache.TTLResolve
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ResolveKeyOpts returns the cache key options for this run.
func (o *Options) ResolveKeyOpts() cache.ResolveKeyOpts {
	return cache.ResolveKeyOpts{
		MaxIterations: o.MaxIterations,
	}
}

// =============================================================================
// Result - Resolution Output
// =============================================================================

// Result contains the outputs of a resolution run.
type Result struct {
	// Layout is the resolved layout in serializable form.
	Layout template.Result

	// TemplateHash is the content hash of the serialized template.
	TemplateHash string

	// Strategy names the placement strategy the engine selected.
	Strategy string

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether the layout came from the cache.
	CacheHit bool
}

// Stats contains resolution statistics.
type Stats struct {
	ComponentCount  int
	ConstraintCount int
	ResolveTime     time.Duration
}
