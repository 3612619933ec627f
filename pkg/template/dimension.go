package template

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/cardframe/pkg/layout"
)

// Dimension kind names as stored in bson documents.
const (
	kindFixed   = "px"
	kindPercent = "percent"
	kindAuto    = "auto"
)

// Dimension is the serialized form of a component dimension. On the JSON
// wire it is one of three shapes:
//
//	120      fixed pixel size
//	"45%"    percentage of the container's corresponding dimension
//	"auto"   intrinsic sizing placeholder
//
// In bson it is stored structurally as {kind, value}.
type Dimension struct {
	Kind  string  `bson:"kind"`
	Value float64 `bson:"value,omitempty"`
}

// Px returns a fixed pixel dimension.
func Px(v float64) Dimension { return Dimension{Kind: kindFixed, Value: v} }

// Pct returns a percentage dimension. The value is the percentage itself,
// so Pct(45) means 45% of the container.
func Pct(v float64) Dimension { return Dimension{Kind: kindPercent, Value: v} }

// Auto returns an intrinsic-size dimension.
func Auto() Dimension { return Dimension{Kind: kindAuto} }

func (d Dimension) validate() error {
	switch d.Kind {
	case kindFixed, kindPercent, kindAuto:
		return nil
	default:
		return fmt.Errorf("unknown dimension kind %q", d.Kind)
	}
}

func (d Dimension) toLayout() layout.Dimension {
	switch d.Kind {
	case kindPercent:
		return layout.Percent(d.Value)
	case kindAuto:
		return layout.Auto()
	default:
		return layout.Fixed(int(d.Value))
	}
}

// MarshalJSON implements json.Marshaler.
func (d Dimension) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case kindAuto:
		return json.Marshal("auto")
	case kindPercent:
		return json.Marshal(strconv.FormatFloat(d.Value, 'f', -1, 64) + "%")
	case kindFixed:
		return json.Marshal(d.Value)
	default:
		return nil, fmt.Errorf("unknown dimension kind %q", d.Kind)
	}
}

// UnmarshalJSON implements json.Unmarshaler. It accepts a bare number
// (pixels), a percentage string like "45%", or the literal "auto".
func (d *Dimension) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*d = Px(num)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("dimension must be a number or string, got %s", data)
	}

	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "auto") {
		*d = Auto()
		return nil
	}
	if rest, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			return fmt.Errorf("invalid percentage dimension %q", s)
		}
		*d = Pct(v)
		return nil
	}
	return fmt.Errorf("invalid dimension %q (want number, \"NN%%\", or \"auto\")", s)
}

// Target is the serialized form of a constraint target. On the JSON wire
// it is the literal string "parent" or a component id number.
type Target struct {
	Parent    bool `bson:"parent,omitempty"`
	Component int  `bson:"component,omitempty"`
}

// ParentTarget returns a Target anchored to the container.
func ParentTarget() Target { return Target{Parent: true} }

// ComponentTarget returns a Target anchored to a sibling component.
func ComponentTarget(id int) Target { return Target{Component: id} }

func (t Target) toLayout() layout.Target {
	if t.Parent {
		return layout.Parent()
	}
	return layout.Sibling(layout.ComponentID(t.Component))
}

// MarshalJSON implements json.Marshaler.
func (t Target) MarshalJSON() ([]byte, error) {
	if t.Parent {
		return json.Marshal("parent")
	}
	return json.Marshal(t.Component)
}

// UnmarshalJSON implements json.Unmarshaler. It accepts the string
// "parent" or a component id number.
func (t *Target) UnmarshalJSON(data []byte) error {
	var id int
	if err := json.Unmarshal(data, &id); err == nil {
		*t = ComponentTarget(id)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("target must be \"parent\" or a component id, got %s", data)
	}
	if !strings.EqualFold(strings.TrimSpace(s), "parent") {
		return fmt.Errorf("invalid target %q (want \"parent\" or a component id)", s)
	}
	*t = ParentTarget()
	return nil
}
