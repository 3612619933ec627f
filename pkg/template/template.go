// Package template defines the serialization format for card templates and
// resolved layouts.
//
// A [Template] is what the editor and property layer produce: container
// dimensions, component records, and constraint records. It is the
// round-trip format for save/load and the payload of the HTTP API. The
// layout engine itself never sees these types: [Template.Compile] bridges
// into the engine's in-memory representation, and [NewResult] packages the
// engine's output for the renderer/canvas side.
//
// Types carry both json tags (wire and file format) and bson tags (the
// durable template store).
package template

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matzehuels/cardframe/pkg/errors"
	"github.com/matzehuels/cardframe/pkg/layout"
)

// Container holds the template's outer dimensions in layout units.
type Container struct {
	Width  int `json:"width" bson:"width"`
	Height int `json:"height" bson:"height"`
}

// Size converts to the engine's container size.
func (c Container) Size() layout.Size {
	return layout.Size{Width: c.Width, Height: c.Height}
}

// ComponentSpec is the serialized form of a positionable component.
type ComponentSpec struct {
	ID     int       `json:"id" bson:"id"`
	Width  Dimension `json:"width" bson:"width"`
	Height Dimension `json:"height" bson:"height"`

	MarginTop    int `json:"margin_top,omitempty" bson:"margin_top,omitempty"`
	MarginRight  int `json:"margin_right,omitempty" bson:"margin_right,omitempty"`
	MarginBottom int `json:"margin_bottom,omitempty" bson:"margin_bottom,omitempty"`
	MarginLeft   int `json:"margin_left,omitempty" bson:"margin_left,omitempty"`

	UseConstraints bool `json:"use_constraints,omitempty" bson:"use_constraints,omitempty"`
}

// ConstraintSpec is the serialized form of a constraint record:
// {source_component_id, relation, target, margin, bias?}.
type ConstraintSpec struct {
	Source   int     `json:"source" bson:"source"`
	Relation string  `json:"relation" bson:"relation"`
	Target   Target  `json:"target" bson:"target"`
	Margin   int     `json:"margin,omitempty" bson:"margin,omitempty"`
	Bias     *float64 `json:"bias,omitempty" bson:"bias,omitempty"`
}

// Template is the complete serialized card template.
type Template struct {
	Name        string           `json:"name,omitempty" bson:"name,omitempty"`
	Container   Container        `json:"container" bson:"container"`
	Components  []ComponentSpec  `json:"components" bson:"components"`
	Constraints []ConstraintSpec `json:"constraints,omitempty" bson:"constraints,omitempty"`
}

// Validate checks the template for structural problems: a degenerate
// container, duplicate or unknown component ids, negative margins, unknown
// relations, and out-of-range bias values. Dangling constraint *targets* are
// deliberately not an error; the engine tolerates them at resolution time.
func (t Template) Validate() error {
	if t.Container.Width <= 0 || t.Container.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidContainer,
			"container must have positive dimensions, got %dx%d", t.Container.Width, t.Container.Height)
	}

	seen := make(map[int]bool, len(t.Components))
	for _, c := range t.Components {
		if seen[c.ID] {
			return errors.New(errors.ErrCodeInvalidTemplate, "component %d declared twice", c.ID)
		}
		seen[c.ID] = true

		if err := c.Width.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDimension, err, "component %d width", c.ID)
		}
		if err := c.Height.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDimension, err, "component %d height", c.ID)
		}
		if c.MarginTop < 0 || c.MarginRight < 0 || c.MarginBottom < 0 || c.MarginLeft < 0 {
			return errors.New(errors.ErrCodeInvalidTemplate, "component %d has negative margins", c.ID)
		}
	}

	for i, cs := range t.Constraints {
		if !seen[cs.Source] {
			return errors.New(errors.ErrCodeUnknownComponent,
				"constraint %d references unknown source component %d", i, cs.Source)
		}
		if _, err := layout.ParseRelation(cs.Relation); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidRelation, err, "constraint %d", i)
		}
		if cs.Bias != nil && (*cs.Bias < 0 || *cs.Bias > 1) {
			return errors.New(errors.ErrCodeInvalidTemplate,
				"constraint %d bias %v out of range [0,1]", i, *cs.Bias)
		}
	}

	return nil
}

// Compile validates the template and converts it into engine inputs. The
// component order of the template is preserved since it is the engine's
// iteration order and therefore part of the template's semantics.
func (t Template) Compile() ([]layout.Component, *layout.ConstraintSet, layout.Size, error) {
	if err := t.Validate(); err != nil {
		return nil, nil, layout.Size{}, err
	}

	components := make([]layout.Component, len(t.Components))
	for i, c := range t.Components {
		components[i] = layout.Component{
			ID:     layout.ComponentID(c.ID),
			Width:  c.Width.toLayout(),
			Height: c.Height.toLayout(),
			Margin: layout.Margins{
				Top:    c.MarginTop,
				Right:  c.MarginRight,
				Bottom: c.MarginBottom,
				Left:   c.MarginLeft,
			},
			UseConstraints: c.UseConstraints,
		}
	}

	set := layout.NewConstraintSet()
	for _, cs := range t.Constraints {
		rel, _ := layout.ParseRelation(cs.Relation) // already validated
		bias := layout.DefaultBias
		if cs.Bias != nil {
			bias = *cs.Bias
		}
		set.Add(layout.Constraint{
			Source:   layout.ComponentID(cs.Source),
			Relation: rel,
			Target:   cs.Target.toLayout(),
			Margin:   cs.Margin,
			Bias:     bias,
		})
	}

	return components, set, t.Container.Size(), nil
}

// =============================================================================
// Template Serialization API
// =============================================================================

// Marshal serializes a Template to pretty-printed JSON bytes.
func Marshal(t Template) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// Unmarshal deserializes JSON bytes into a Template and validates it.
func Unmarshal(data []byte) (Template, error) {
	var t Template
	if err := json.Unmarshal(data, &t); err != nil {
		return Template{}, fmt.Errorf("unmarshal template: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Template{}, err
	}
	return t, nil
}

// WriteFile writes a Template to a JSON file.
func WriteFile(t Template, path string) error {
	data, err := Marshal(t)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile reads a Template from a JSON file.
func ReadFile(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}
