package layout

import "testing"

var allRelations = []Relation{
	LeftToLeft, LeftToRight, RightToLeft, RightToRight,
	TopToTop, TopToBottom, BottomToTop, BottomToBottom,
	StartToStart, StartToEnd, EndToStart, EndToEnd,
	Above, Below, LeftOf, RightOf,
	CenterHorizontal, CenterVertical,
}

func TestRelationStringRoundTrip(t *testing.T) {
	for _, r := range allRelations {
		name := r.String()
		parsed, err := ParseRelation(name)
		if err != nil {
			t.Errorf("ParseRelation(%q) error: %v", name, err)
			continue
		}
		if parsed != r {
			t.Errorf("ParseRelation(%q) = %v, want %v", name, parsed, r)
		}
	}
}

func TestParseRelationUnknown(t *testing.T) {
	if _, err := ParseRelation("diagonal_to_corner"); err == nil {
		t.Error("expected error for unknown relation")
	}
	if _, err := ParseRelation(""); err == nil {
		t.Error("expected error for empty relation")
	}
}

func TestRelationCanonical(t *testing.T) {
	tests := []struct {
		in   Relation
		want Relation
	}{
		{StartToStart, LeftToLeft},
		{StartToEnd, LeftToRight},
		{EndToStart, RightToLeft},
		{EndToEnd, RightToRight},
		{Above, BottomToTop},
		{Below, TopToBottom},
		{LeftOf, RightToLeft},
		{RightOf, LeftToRight},
		// Physical and centering forms are already canonical.
		{LeftToLeft, LeftToLeft},
		{BottomToBottom, BottomToBottom},
		{CenterHorizontal, CenterHorizontal},
		{CenterVertical, CenterVertical},
	}
	for _, tt := range tests {
		if got := tt.in.Canonical(); got != tt.want {
			t.Errorf("%v.Canonical() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRelationAxis(t *testing.T) {
	horizontal := []Relation{
		LeftToLeft, LeftToRight, RightToLeft, RightToRight,
		StartToStart, StartToEnd, EndToStart, EndToEnd,
		LeftOf, RightOf, CenterHorizontal,
	}
	vertical := []Relation{
		TopToTop, TopToBottom, BottomToTop, BottomToBottom,
		Above, Below, CenterVertical,
	}

	for _, r := range horizontal {
		if !r.Horizontal() || r.Vertical() {
			t.Errorf("%v should be horizontal", r)
		}
	}
	for _, r := range vertical {
		if r.Horizontal() || !r.Vertical() {
			t.Errorf("%v should be vertical", r)
		}
	}
}

func TestRelationCount(t *testing.T) {
	// The enum is part of the template wire format; the full vocabulary is
	// pinned here so a new relation forces a conscious update.
	if len(allRelations) != 18 {
		t.Fatalf("relation vocabulary has %d kinds, want 18", len(allRelations))
	}
	seen := map[string]bool{}
	for _, r := range allRelations {
		name := r.String()
		if seen[name] {
			t.Errorf("duplicate relation name %q", name)
		}
		seen[name] = true
	}
}
