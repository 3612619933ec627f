package layout

// TargetKind discriminates what a constraint measures itself against.
type TargetKind int

const (
	// TargetParent anchors against the container bounds.
	TargetParent TargetKind = iota
	// TargetComponent anchors against another component's working rectangle.
	TargetComponent
)

// Target identifies the rectangle a constraint anchors to: the container or
// a sibling component. The zero value is the parent target.
type Target struct {
	Kind      TargetKind
	Component ComponentID
}

// Parent returns a target anchored to the container bounds.
func Parent() Target {
	return Target{Kind: TargetParent}
}

// Sibling returns a target anchored to the component with the given id.
func Sibling(id ComponentID) Target {
	return Target{Kind: TargetComponent, Component: id}
}

// Constraint is a directed relation positioning Source against Target.
// Margin offsets the source in the relation's direction; Bias is only
// consulted by the centering relations.
type Constraint struct {
	Source   ComponentID
	Relation Relation
	Target   Target
	Margin   int
	Bias     float64
}

// NewConstraint builds a constraint with the default centering bias. Callers
// constructing Constraint literals directly should remember that a zero bias
// means "fully start-aligned", not "centered".
func NewConstraint(source ComponentID, rel Relation, target Target, margin int) Constraint {
	return Constraint{
		Source:   source,
		Relation: rel,
		Target:   target,
		Margin:   margin,
		Bias:     DefaultBias,
	}
}

// ConstraintSet is an append-only collection of constraints indexed by
// source component. Insertion order is preserved per source, which is what
// makes the "last applied wins" tie-break between conflicting same-edge
// constraints deterministic.
//
// The set performs no validation: duplicate and conflicting constraints are
// stored as-is. It is read-only during resolution; callers embedding it in a
// live editor are responsible for serializing mutation against resolution.
type ConstraintSet struct {
	all      []Constraint
	bySource map[ComponentID][]int
}

// NewConstraintSet creates an empty constraint set.
func NewConstraintSet() *ConstraintSet {
	return &ConstraintSet{
		bySource: make(map[ComponentID][]int),
	}
}

// Add appends a constraint to the set.
func (s *ConstraintSet) Add(c Constraint) {
	s.bySource[c.Source] = append(s.bySource[c.Source], len(s.all))
	s.all = append(s.all, c)
}

// For returns the constraints whose source is the given component, in
// insertion order. The returned slice is freshly allocated; mutating it does
// not affect the set.
func (s *ConstraintSet) For(id ComponentID) []Constraint {
	idxs := s.bySource[id]
	if len(idxs) == 0 {
		return nil
	}
	out := make([]Constraint, len(idxs))
	for i, idx := range idxs {
		out[i] = s.all[idx]
	}
	return out
}

// All returns every constraint in insertion order. The returned slice is
// freshly allocated.
func (s *ConstraintSet) All() []Constraint {
	out := make([]Constraint, len(s.all))
	copy(out, s.all)
	return out
}

// Len returns the number of constraints in the set.
func (s *ConstraintSet) Len() int {
	return len(s.all)
}
