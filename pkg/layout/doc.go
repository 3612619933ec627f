// Package layout implements the anchor-constraint layout engine used to
// position card template components.
//
// Components declare relationships ("anchors") to the container or to sibling
// components instead of explicit coordinates. The engine turns those
// relationships into concrete rectangles with a fixed-pass relaxation solver:
// every pass sweeps all components in input order and applies each of their
// constraints against the current working rectangle of the constraint's
// target. Constraints whose target has no working rectangle yet are skipped
// for that pass and picked up on a later one.
//
// # Resolution model
//
// Resolution is a pure, synchronous function of its inputs:
//
//	rects, err := layout.Resolve(components, constraints, layout.Size{Width: 800, Height: 600})
//
// The engine holds no state between calls and keeps no package-level mutable
// data, so concurrent calls with disjoint inputs are safe. Sizes are resolved
// once from each component's intrinsic [Dimension] against the container;
// constraints only ever move components, they never resize them.
//
// The pass budget ([DefaultMaxIterations], tunable via [WithMaxIterations])
// bounds total work. There is no convergence check: cyclic constraint chains
// terminate after the budget with whatever values settled, and dangling
// target references are skipped every pass rather than reported as errors.
// Only a non-positive container or a constraint whose source component is
// missing from the batch fails the call.
//
// # Strategies
//
// A batch where no component opts into constraints falls back to a simple
// top-to-bottom flow that stacks components with their margins. The choice is
// batch-wide; see [SelectStrategy].
package layout
