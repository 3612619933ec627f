package layout

import "testing"

func TestSelectStrategy(t *testing.T) {
	flowOnly := []Component{
		{ID: 1, Width: Fixed(10), Height: Fixed(10)},
		{ID: 2, Width: Fixed(10), Height: Fixed(10)},
	}
	if got := SelectStrategy(flowOnly); got != StrategyFlow {
		t.Errorf("SelectStrategy = %v, want flow", got)
	}

	// One opted-in component flips the whole batch.
	mixed := append([]Component{}, flowOnly...)
	mixed[1].UseConstraints = true
	if got := SelectStrategy(mixed); got != StrategyConstraint {
		t.Errorf("SelectStrategy = %v, want constraint", got)
	}

	if got := SelectStrategy(nil); got != StrategyFlow {
		t.Errorf("SelectStrategy(nil) = %v, want flow", got)
	}
}

func TestFlowLayoutStacks(t *testing.T) {
	components := []Component{
		{ID: 1, Width: Fixed(100), Height: Fixed(30), Margin: Margins{Top: 5, Bottom: 5, Left: 10}},
		{ID: 2, Width: Fixed(100), Height: Fixed(40), Margin: Margins{Top: 8}},
		{ID: 3, Width: Percent(50), Height: Auto()},
	}

	rects, err := Resolve(components, nil, Size{400, 600})
	if err != nil {
		t.Fatal(err)
	}

	// 1: y = 0+5, occupies 5..35, bottom margin pushes cursor to 40.
	if rects[1].X != 10 || rects[1].Y != 5 {
		t.Errorf("first = (%d,%d), want (10,5)", rects[1].X, rects[1].Y)
	}
	// 2: y = 40+8 = 48.
	if rects[2].X != 0 || rects[2].Y != 48 {
		t.Errorf("second = (%d,%d), want (0,48)", rects[2].X, rects[2].Y)
	}
	// 3: y = 88, sizes resolved against the container.
	if rects[3].Y != 88 || rects[3].Width != 200 || rects[3].Height != DefaultAutoSize {
		t.Errorf("third = %+v", rects[3])
	}
}

func TestStrategyString(t *testing.T) {
	if StrategyFlow.String() != "flow" || StrategyConstraint.String() != "constraint" {
		t.Error("unexpected strategy names")
	}
}
