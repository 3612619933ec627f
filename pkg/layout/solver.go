package layout

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cardframe/pkg/observability"
)

var (
	// ErrInvalidContainer is returned by [Resolve] when either container
	// dimension is zero or negative.
	ErrInvalidContainer = errors.New("container dimensions must be positive")

	// ErrUnknownSource is returned by [Resolve] when a constraint's source
	// component is not part of the input batch. Dangling *targets* are
	// tolerated; dangling sources are a caller bug.
	ErrUnknownSource = errors.New("constraint source not in component batch")
)

// DefaultMaxIterations is the default pass budget. Three passes are enough
// for the dependency chains that occur in typical card templates; the value
// is a tunable, not the result of a convergence proof.
const DefaultMaxIterations = 3

type config struct {
	maxIterations int
	logger        *log.Logger
}

// Option configures a resolution call.
type Option func(*config)

// WithMaxIterations overrides the pass budget. Values below one are ignored.
func WithMaxIterations(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.maxIterations = n
		}
	}
}

// WithLogger attaches a logger for debug-level diagnostics (skipped
// constraints, pass counts). Resolution is silent by default.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Resolve computes final rectangles for a batch of components.
//
// The returned map covers every component in the batch. Identical inputs
// always yield identical rectangles, and the call never mutates its inputs.
//
// # Algorithm
//
// Resolve seeds a working rectangle per component (origin (0,0), intrinsic
// sizes resolved against the container) and then sweeps the batch for a
// fixed number of passes. Each pass visits components in input order and
// applies their constraints in insertion order, overwriting the affected
// axis each time; when several constraints compete for the same edge, the
// last one applied wins. This is Gauss-Seidel style relaxation rather than a
// topologically sorted single pass: a constraint anchored to a component
// that appears later in the input only stabilizes once enough passes have
// propagated values forward.
//
// # Cycles and dangling references
//
// Mutually dependent constraints are not detected. They are bounded by the
// pass budget and yield whatever values settled, never an error and never an
// unbounded loop. A constraint whose target id has no working rectangle is
// skipped for the pass, so a truly dangling target leaves the affected axis
// at its seeded value.
//
// # Failure
//
// Only two conditions fail the call: a non-positive container
// ([ErrInvalidContainer]) and a constraint whose source component is missing
// from the batch ([ErrUnknownSource]). Nothing inside an individual
// constraint application can error.
func Resolve(components []Component, constraints *ConstraintSet, container Size, opts ...Option) (map[ComponentID]Rect, error) {
	if !container.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidContainer, container.Width, container.Height)
	}
	if constraints == nil {
		constraints = NewConstraintSet()
	}

	cfg := config{
		maxIterations: DefaultMaxIterations,
		logger:        log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	present := make(map[ComponentID]bool, len(components))
	for _, c := range components {
		present[c.ID] = true
	}
	for _, ct := range constraints.All() {
		if !present[ct.Source] {
			return nil, fmt.Errorf("%w: component %d", ErrUnknownSource, ct.Source)
		}
	}

	strategy := SelectStrategy(components)
	observability.Solver().OnResolveStart(len(components), constraints.Len(), strategy.String())

	var rects map[ComponentID]Rect
	if strategy == StrategyConstraint {
		rects = resolveConstraints(components, constraints, container, cfg)
	} else {
		rects = resolveFlow(components, container)
	}

	observability.Solver().OnResolveComplete(len(rects))
	return rects, nil
}

// resolveConstraints runs the fixed-pass relaxation loop. After the budget
// is exhausted the working map is returned verbatim; there is no convergence
// check.
func resolveConstraints(components []Component, constraints *ConstraintSet, container Size, cfg config) map[ComponentID]Rect {
	working := make(map[ComponentID]Rect, len(components))
	for _, c := range components {
		working[c.ID] = c.seedRect(container)
	}

	for pass := 1; pass <= cfg.maxIterations; pass++ {
		for _, c := range components {
			if !c.UseConstraints {
				continue
			}
			for _, ct := range constraints.For(c.ID) {
				target, ok := ct.Target.Resolve(working, container)
				if !ok {
					cfg.logger.Debug("constraint target unresolved, skipping",
						"pass", pass,
						"source", int(ct.Source),
						"target", int(ct.Target.Component),
						"relation", ct.Relation.String())
					observability.Solver().OnDanglingTarget(int(ct.Source), int(ct.Target.Component))
					continue
				}
				r := working[c.ID]
				applyConstraint(&r, ct.Relation, target, ct.Margin, ct.Bias)
				working[c.ID] = r
			}
		}
		observability.Solver().OnPassComplete(pass)
	}
	return working
}
