package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cardframe/pkg/cache"
	"github.com/matzehuels/cardframe/pkg/layout"
	"github.com/matzehuels/cardframe/pkg/observability"
	"github.com/matzehuels/cardframe/pkg/template"
)

// Runner encapsulates resolution with caching. Both CLI and server use this
// to avoid duplicating cache logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely share one Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// A nil keyer falls back to the default keyer; a nil cache disables caching
// via the null backend.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Resolve compiles and resolves a template, consulting the cache first.
// The template is always compiled (and therefore validated) even on a cache
// hit, so invalid templates fail identically whether cached or not.
func (r *Runner) Resolve(ctx context.Context, tmpl template.Template, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	components, set, container, err := tmpl.Compile()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Strategy: layout.SelectStrategy(components).String(),
		Stats: Stats{
			ComponentCount:  len(components),
			ConstraintCount: set.Len(),
		},
	}

	data, err := template.Marshal(tmpl)
	if err != nil {
		return nil, fmt.Errorf("serialize template for cache key: %w", err)
	}
	result.TemplateHash = cache.Hash(data)
	cacheKey := r.Keyer.ResolveKey(result.TemplateHash, opts.ResolveKeyOpts())

	if !opts.Refresh {
		if payload, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := template.UnmarshalResult(payload); err == nil {
				observability.Cache().OnCacheHit(ctx, "resolve")
				result.Layout = cached
				result.CacheHit = true
				return result, nil
			}
			// Corrupt entry, fall through to recompute.
		}
		observability.Cache().OnCacheMiss(ctx, "resolve")
	}

	start := time.Now()
	rects, err := layout.Resolve(components, set, container,
		layout.WithMaxIterations(opts.MaxIterations),
		layout.WithLogger(opts.Logger),
	)
	if err != nil {
		return nil, err
	}
	result.Stats.ResolveTime = time.Since(start)
	result.Layout = template.NewResult(tmpl, rects)

	r.Logger.Info("resolved layout",
		"components", result.Stats.ComponentCount,
		"constraints", result.Stats.ConstraintCount,
		"strategy", result.Strategy,
		"duration", result.Stats.ResolveTime)

	if payload, err := template.MarshalResult(result.Layout); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, payload, opts.TTL)
		observability.Cache().OnCacheSet(ctx, "resolve", len(payload))
	}

	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
