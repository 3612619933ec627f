package layout

// TargetRect is the resolved rectangle a constraint measures itself against,
// with all four edges precomputed. IsParent distinguishes container bounds
// from a sibling's working rectangle.
type TargetRect struct {
	Left     int
	Top      int
	Right    int
	Bottom   int
	Width    int
	Height   int
	IsParent bool
}

// Resolve produces the target's rectangle for the current pass.
//
// A parent target always resolves to the container bounds. A component
// target resolves to that component's current working rectangle, "current"
// meaning whatever the solver has computed so far this pass, which is why
// resolution needs multiple passes to propagate positions forward. When the
// id is not present in the working map (truly dangling, or the batch simply
// does not contain it) Resolve reports a miss and the constraint is skipped
// for the pass.
func (t Target) Resolve(working map[ComponentID]Rect, container Size) (TargetRect, bool) {
	if t.Kind == TargetParent {
		return TargetRect{
			Left:     0,
			Top:      0,
			Right:    container.Width,
			Bottom:   container.Height,
			Width:    container.Width,
			Height:   container.Height,
			IsParent: true,
		}, true
	}

	r, ok := working[t.Component]
	if !ok {
		return TargetRect{}, false
	}
	return TargetRect{
		Left:   r.Left(),
		Top:    r.Top(),
		Right:  r.Right(),
		Bottom: r.Bottom(),
		Width:  r.Width,
		Height: r.Height,
	}, true
}
