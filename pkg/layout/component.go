package layout

import "math"

// ComponentID is an opaque handle identifying a component within one
// resolution call. Components reference each other by ID, never by pointer,
// so a missing target is just a failed lookup rather than a dangling
// reference.
type ComponentID int

// DefaultAutoSize is the edge length, in layout units, assigned to a
// dimension declared as auto. The editor replaces it once real content
// metrics are known; the engine only needs a stable placeholder.
const DefaultAutoSize = 50

// DimensionKind discriminates the sizing modes of a [Dimension].
type DimensionKind int

const (
	// DimensionFixed is an absolute size in layout units.
	DimensionFixed DimensionKind = iota
	// DimensionPercent is a fraction of the container's corresponding axis,
	// expressed as 0-100.
	DimensionPercent
	// DimensionAuto defers to DefaultAutoSize.
	DimensionAuto
)

// Dimension is a component's intrinsic size along one axis. The zero value
// is a fixed size of 0.
type Dimension struct {
	Kind  DimensionKind
	Value float64
}

// Fixed returns a dimension of px layout units.
func Fixed(px int) Dimension {
	return Dimension{Kind: DimensionFixed, Value: float64(px)}
}

// Percent returns a dimension of p percent of the container axis.
func Percent(p float64) Dimension {
	return Dimension{Kind: DimensionPercent, Value: p}
}

// Auto returns the auto sentinel dimension.
func Auto() Dimension {
	return Dimension{Kind: DimensionAuto}
}

// Resolve converts the dimension to concrete layout units against the given
// container axis length. Percentages round down and negative results clamp
// to zero.
func (d Dimension) Resolve(container int) int {
	var v int
	switch d.Kind {
	case DimensionFixed:
		v = int(d.Value)
	case DimensionPercent:
		v = int(math.Floor(float64(container) * d.Value / 100))
	case DimensionAuto:
		v = DefaultAutoSize
	}
	if v < 0 {
		return 0
	}
	return v
}

// Margins are the four outer margins of a component in layout units.
// The flow strategy consumes all four; the constraint strategy only sees
// margins through explicit constraint offsets.
type Margins struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Component is a node to be positioned. IDs must be unique within a batch
// and stable for the lifetime of one resolution call.
type Component struct {
	ID     ComponentID
	Width  Dimension
	Height Dimension
	Margin Margins

	// UseConstraints opts the component into the constraint engine. When
	// false the component keeps its seeded position even if constraints
	// name it as a source.
	UseConstraints bool
}

// seedRect builds the initial working rectangle: origin (0,0) with intrinsic
// sizes resolved against the container. Percentage sizes always resolve
// against the container, never against a constraint target.
func (c Component) seedRect(container Size) Rect {
	return Rect{
		X:      0,
		Y:      0,
		Width:  c.Width.Resolve(container.Width),
		Height: c.Height.Resolve(container.Height),
	}
}
