package template

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/cardframe/pkg/layout"
)

// Placed is one component's final rectangle in a resolved layout.
type Placed struct {
	ID     int `json:"id" bson:"id"`
	X      int `json:"x" bson:"x"`
	Y      int `json:"y" bson:"y"`
	Width  int `json:"width" bson:"width"`
	Height int `json:"height" bson:"height"`
}

// Result is a resolved layout: the container it was resolved against and one
// rectangle per component, in template component order.
type Result struct {
	Container  Container `json:"container" bson:"container"`
	Components []Placed  `json:"components" bson:"components"`
}

// NewResult packages the engine's output, preserving the template's
// component order so serialized results are deterministic.
func NewResult(t Template, rects map[layout.ComponentID]layout.Rect) Result {
	placed := make([]Placed, 0, len(t.Components))
	for _, c := range t.Components {
		r, ok := rects[layout.ComponentID(c.ID)]
		if !ok {
			continue
		}
		placed = append(placed, Placed{
			ID:     c.ID,
			X:      r.X,
			Y:      r.Y,
			Width:  r.Width,
			Height: r.Height,
		})
	}
	return Result{Container: t.Container, Components: placed}
}

// Rect returns the placed rectangle for a component id.
func (r Result) Rect(id int) (Placed, bool) {
	for _, p := range r.Components {
		if p.ID == id {
			return p, true
		}
	}
	return Placed{}, false
}

// MarshalResult serializes a Result to pretty-printed JSON bytes.
func MarshalResult(r Result) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// UnmarshalResult deserializes JSON bytes into a Result.
func UnmarshalResult(data []byte) (Result, error) {
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return Result{}, fmt.Errorf("unmarshal result: %w", err)
	}
	return r, nil
}
