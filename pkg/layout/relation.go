package layout

import "fmt"

// Relation names how one edge of a source component relates to an edge of
// its target. The enum is exhaustive so that adding a relation without
// teaching the applier about it fails loudly instead of silently.
//
// Three families exist:
//
//   - Physical edge forms: the four edges in to-same-edge and
//     to-opposite-edge variants (LeftToLeft ... BottomToBottom).
//   - Writing-direction forms (StartToStart ... EndToEnd): retained from the
//     template format. The engine resolves left-to-right only, so start maps
//     to left and end maps to right.
//   - Legacy shorthand verbs (Above, Below, LeftOf, RightOf): the
//     RelativeLayout-era vocabulary still present in older saved templates.
//     They canonicalize onto the physical edge forms.
//
// CenterHorizontal and CenterVertical center the component inside the target
// on one axis, skewed by the constraint's bias.
type Relation int

const (
	// LeftToLeft aligns the source's left edge to the target's left edge.
	LeftToLeft Relation = iota
	// LeftToRight aligns the source's left edge to the target's right edge.
	LeftToRight
	// RightToLeft aligns the source's right edge to the target's left edge.
	RightToLeft
	// RightToRight aligns the source's right edge to the target's right edge.
	RightToRight
	// TopToTop aligns the source's top edge to the target's top edge.
	TopToTop
	// TopToBottom aligns the source's top edge to the target's bottom edge.
	TopToBottom
	// BottomToTop aligns the source's bottom edge to the target's top edge.
	BottomToTop
	// BottomToBottom aligns the source's bottom edge to the target's bottom edge.
	BottomToBottom

	// StartToStart is LeftToLeft under left-to-right resolution.
	StartToStart
	// StartToEnd is LeftToRight under left-to-right resolution.
	StartToEnd
	// EndToStart is RightToLeft under left-to-right resolution.
	EndToStart
	// EndToEnd is RightToRight under left-to-right resolution.
	EndToEnd

	// Above places the source's bottom edge at the target's top edge.
	Above
	// Below places the source's top edge at the target's bottom edge.
	Below
	// LeftOf places the source's right edge at the target's left edge.
	LeftOf
	// RightOf places the source's left edge at the target's right edge.
	RightOf

	// CenterHorizontal centers the source horizontally inside the target.
	CenterHorizontal
	// CenterVertical centers the source vertically inside the target.
	CenterVertical
)

// DefaultBias is the bias used by centering relations when none is given:
// dead center.
const DefaultBias = 0.5

var relationNames = map[Relation]string{
	LeftToLeft:       "left_to_left",
	LeftToRight:      "left_to_right",
	RightToLeft:      "right_to_left",
	RightToRight:     "right_to_right",
	TopToTop:         "top_to_top",
	TopToBottom:      "top_to_bottom",
	BottomToTop:      "bottom_to_top",
	BottomToBottom:   "bottom_to_bottom",
	StartToStart:     "start_to_start",
	StartToEnd:       "start_to_end",
	EndToStart:       "end_to_start",
	EndToEnd:         "end_to_end",
	Above:            "above",
	Below:            "below",
	LeftOf:           "left_of",
	RightOf:          "right_of",
	CenterHorizontal: "center_horizontal",
	CenterVertical:   "center_vertical",
}

var relationValues = func() map[string]Relation {
	m := make(map[string]Relation, len(relationNames))
	for r, name := range relationNames {
		m[name] = r
	}
	return m
}()

// String returns the serialized name of the relation (e.g. "left_to_left").
func (r Relation) String() string {
	if name, ok := relationNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Relation(%d)", int(r))
}

// ParseRelation converts a serialized relation name back to its enum value.
func ParseRelation(s string) (Relation, error) {
	if r, ok := relationValues[s]; ok {
		return r, nil
	}
	return 0, fmt.Errorf("unknown relation %q", s)
}

// Canonical maps writing-direction and legacy forms onto the physical edge
// form that carries their effect. Physical edge and centering relations map
// to themselves.
func (r Relation) Canonical() Relation {
	switch r {
	case StartToStart:
		return LeftToLeft
	case StartToEnd:
		return LeftToRight
	case EndToStart:
		return RightToLeft
	case EndToEnd:
		return RightToRight
	case Above:
		return BottomToTop
	case Below:
		return TopToBottom
	case LeftOf:
		return RightToLeft
	case RightOf:
		return LeftToRight
	default:
		return r
	}
}

// Horizontal reports whether the relation moves the component on the x axis.
func (r Relation) Horizontal() bool {
	switch r.Canonical() {
	case LeftToLeft, LeftToRight, RightToLeft, RightToRight, CenterHorizontal:
		return true
	}
	return false
}

// Vertical reports whether the relation moves the component on the y axis.
func (r Relation) Vertical() bool {
	return !r.Horizontal()
}

// Centering reports whether the relation is one of the biased centering
// forms.
func (r Relation) Centering() bool {
	return r == CenterHorizontal || r == CenterVertical
}
