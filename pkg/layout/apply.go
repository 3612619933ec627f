package layout

import "math"

// applyConstraint overwrites one axis of the working rectangle according to
// the relation. Each relation is a pure transform on x or y, never both,
// and never on width or height:
//
//	left_to_left      x = target.left + margin
//	left_to_right     x = target.right + margin
//	right_to_left     x = target.left - width - margin
//	right_to_right    x = target.right - width - margin
//	top_to_top        y = target.top + margin
//	top_to_bottom     y = target.bottom + margin
//	bottom_to_top     y = target.top - height - margin
//	bottom_to_bottom  y = target.bottom - height - margin
//	center_horizontal x = target.left + floor((target.width - width) * bias)
//	center_vertical   y = target.top + floor((target.height - height) * bias)
//
// Writing-direction and legacy relations are canonicalized first, so the
// switch below stays exhaustive over the effect-bearing forms.
func applyConstraint(r *Rect, rel Relation, t TargetRect, margin int, bias float64) {
	switch rel.Canonical() {
	case LeftToLeft:
		r.X = t.Left + margin
	case LeftToRight:
		r.X = t.Right + margin
	case RightToLeft:
		r.X = t.Left - r.Width - margin
	case RightToRight:
		r.X = t.Right - r.Width - margin
	case TopToTop:
		r.Y = t.Top + margin
	case TopToBottom:
		r.Y = t.Bottom + margin
	case BottomToTop:
		r.Y = t.Top - r.Height - margin
	case BottomToBottom:
		r.Y = t.Bottom - r.Height - margin
	case CenterHorizontal:
		r.X = t.Left + floorScale(t.Width-r.Width, bias)
	case CenterVertical:
		r.Y = t.Top + floorScale(t.Height-r.Height, bias)
	}
}

// floorScale computes floor(n * bias) as an int. Floor (not truncation) so
// that components larger than their target still land deterministically.
func floorScale(n int, bias float64) int {
	return int(math.Floor(float64(n) * bias))
}
