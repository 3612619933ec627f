package layout

// resolveFlow is the fallback for batches where nothing opts into
// constraints: components stack top-to-bottom, each indented by its left
// margin and separated by its vertical margins.
func resolveFlow(components []Component, container Size) map[ComponentID]Rect {
	out := make(map[ComponentID]Rect, len(components))

	y := 0
	for _, c := range components {
		r := c.seedRect(container)
		r.X = c.Margin.Left
		r.Y = y + c.Margin.Top
		out[c.ID] = r
		y = r.Bottom() + c.Margin.Bottom
	}
	return out
}
