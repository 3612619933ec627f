// Package pkg provides the core libraries for Cardframe layout resolution.
//
// # Overview
//
// Cardframe turns card templates into concrete layouts: components declare
// relational constraints ("my top sits below #1's bottom", "center me in
// the container") and the engine computes an integer rectangle for every
// component. The pkg directory is organized into:
//
//  1. [layout] - The resolution engine (targets, constraints, solver)
//  2. [template] - Serialization types for templates and resolved layouts
//  3. [pipeline] - Orchestration with result caching (CLI + server)
//  4. [cache], [store] - Infrastructure (resolve cache, template store)
//  5. [render] - Constraint graph and layout visualization
//
// # Architecture
//
// The typical data flow through Cardframe:
//
//	Template JSON
//	         ↓
//	    [template] package (validate + compile)
//	         ↓
//	    [layout] package (relaxation solver)
//	         ↓
//	    [template] Result (rectangles per component)
//	         ↓
//	    JSON / SVG / terminal preview
//
// # Quick Start
//
// Resolve a template file into rectangles:
//
//	import (
//	    "github.com/matzehuels/cardframe/pkg/layout"
//	    "github.com/matzehuels/cardframe/pkg/template"
//	)
//
//	tmpl, _ := template.ReadFile("card.json")
//	components, constraints, container, _ := tmpl.Compile()
//	rects, _ := layout.Resolve(components, constraints, container)
//	result := template.NewResult(tmpl, rects)
//
// Or go through the cached pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, _ := runner.Resolve(ctx, tmpl, pipeline.Options{})
//
// # Main Packages
//
// [layout] - The constraint engine. Components carry dimensions (fixed,
// percent, auto) and opt into constraint placement; constraints anchor
// component edges to the container or to sibling components. Resolution
// runs a bounded relaxation loop, so chains settle without a dependency
// graph and cycles cannot hang the solver.
//
// [template] - JSON/bson serialization of templates and resolved layouts,
// with validation and compilation into engine inputs.
//
// [pipeline] - The compile → resolve → package flow with deterministic
// result caching, shared by the CLI and the HTTP server.
//
// [cache] - Resolve-result caching with file, Redis, and null backends.
//
// [store] - Durable template storage with memory and MongoDB backends.
//
// [render] - Constraint graph visualization via Graphviz and a plain SVG
// preview of resolved layouts.
//
// [errors] - Structured error codes shared by CLI and API.
//
// [observability] - Optional instrumentation hooks for the solver, cache,
// and server.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/layout/...   # Engine only
//	go test -run Example       # Examples only
//
// [layout]: https://pkg.go.dev/github.com/matzehuels/cardframe/pkg/layout
// [template]: https://pkg.go.dev/github.com/matzehuels/cardframe/pkg/template
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/cardframe/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/cardframe/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/cardframe/pkg/store
// [render]: https://pkg.go.dev/github.com/matzehuels/cardframe/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/cardframe/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/cardframe/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/cardframe/pkg/buildinfo
package pkg
