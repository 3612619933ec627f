package layout

// Strategy selects the algorithm used to position a batch of components.
type Strategy int

const (
	// StrategyFlow stacks components top-to-bottom with their margins.
	StrategyFlow Strategy = iota
	// StrategyConstraint runs the relaxation solver over the constraint set.
	StrategyConstraint
)

// String returns a short name for logging.
func (s Strategy) String() string {
	if s == StrategyConstraint {
		return "constraint"
	}
	return "flow"
}

// SelectStrategy picks the layout algorithm for a batch. The decision is
// binary and batch-wide: if any component opts into constraints the whole
// batch goes through the constraint engine (components that did not opt in
// simply keep their seeded positions); otherwise the flow fallback runs.
// The two strategies are never mixed within one call.
func SelectStrategy(components []Component) Strategy {
	for _, c := range components {
		if c.UseConstraints {
			return StrategyConstraint
		}
	}
	return StrategyFlow
}
