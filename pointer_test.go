package affordance

import "testing"

// --- HitShape tests ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"on circumference", 75, 50, true},
		{"outside diagonal", 70, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitPolygonContains(t *testing.T) {
	square := []Vec2{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
	reversed := []Vec2{{0, 100}, {100, 100}, {100, 0}, {0, 0}}

	for _, pts := range [][]Vec2{square, reversed} {
		p := HitPolygon{Points: pts}
		if !p.Contains(50, 50) {
			t.Errorf("Contains(50, 50) = false for %v", pts)
		}
		if !p.Contains(0, 50) {
			t.Errorf("edge point should be inside for %v", pts)
		}
		if p.Contains(-1, 50) {
			t.Errorf("Contains(-1, 50) = true for %v", pts)
		}
	}

	if (HitPolygon{Points: []Vec2{{0, 0}, {1, 1}}}).Contains(0, 0) {
		t.Error("degenerate polygon should contain nothing")
	}
}

// --- PointerTracker tests ---

func TestPointerTrackerHover(t *testing.T) {
	pt := &PointerTracker{Shape: HitRect{Width: 10, Height: 10}}

	if got := ComputeState(pt.Update(PointerSample{X: 20, Y: 20})); got != StateIdle {
		t.Errorf("outside: state = %v, want idle", got)
	}
	if got := ComputeState(pt.Update(PointerSample{X: 5, Y: 5})); got != StateHovered {
		t.Errorf("inside: state = %v, want hovered", got)
	}

	pt.Priority = true
	if got := ComputeState(pt.Update(PointerSample{X: 5, Y: 5})); got != StateHoveredPriority {
		t.Errorf("priority: state = %v, want hovered_priority", got)
	}
}

func TestPointerTrackerCapture(t *testing.T) {
	pt := &PointerTracker{Shape: HitRect{Width: 10, Height: 10}}

	pt.Update(PointerSample{X: 5, Y: 5, Pressed: true})
	if got := ComputeState(pt.Flags()); got != StateSelected {
		t.Fatalf("press inside: state = %v, want selected", got)
	}

	// Dragging out keeps the capture.
	if got := ComputeState(pt.Update(PointerSample{X: 50, Y: 50, Pressed: true})); got != StateSelected {
		t.Errorf("drag out: state = %v, want selected", got)
	}

	// Activation only counts while selected.
	if got := ComputeState(pt.Update(PointerSample{X: 5, Y: 5, Pressed: true, Activate: true})); got != StateActivated {
		t.Errorf("activate: state = %v, want activated", got)
	}

	pt.Update(PointerSample{X: 5, Y: 5})
	if !pt.Clicked() {
		t.Error("release inside after capture should click")
	}
	if got := ComputeState(pt.Flags()); got != StateHovered {
		t.Errorf("after release: state = %v, want hovered", got)
	}

	pt.Update(PointerSample{X: 5, Y: 5})
	if pt.Clicked() {
		t.Error("click should last one update")
	}
}

func TestPointerTrackerPressOutsideNeverSelects(t *testing.T) {
	pt := &PointerTracker{Shape: HitRect{Width: 10, Height: 10}}

	pt.Update(PointerSample{X: 50, Y: 50, Pressed: true})
	if got := ComputeState(pt.Update(PointerSample{X: 5, Y: 5, Pressed: true})); got != StateHovered {
		t.Errorf("drag in: state = %v, want hovered", got)
	}
	pt.Update(PointerSample{X: 5, Y: 5})
	if pt.Clicked() {
		t.Error("release without capture should not click")
	}
}

func TestPointerTrackerDisabled(t *testing.T) {
	pt := &PointerTracker{Shape: HitRect{Width: 10, Height: 10}}
	pt.Update(PointerSample{X: 5, Y: 5, Pressed: true})

	pt.Disabled = true
	if got := ComputeState(pt.Update(PointerSample{X: 5, Y: 5, Pressed: true})); got != StateDisabled {
		t.Errorf("state = %v, want disabled", got)
	}

	// Re-enabling while still held does not restore the old capture.
	pt.Disabled = false
	if got := ComputeState(pt.Update(PointerSample{X: 5, Y: 5, Pressed: true})); got != StateHovered {
		t.Errorf("re-enabled: state = %v, want hovered", got)
	}
}

func TestPointerTrackerNilShape(t *testing.T) {
	pt := &PointerTracker{}
	if got := ComputeState(pt.Update(PointerSample{Pressed: true})); got != StateIdle {
		t.Errorf("state = %v, want idle", got)
	}
}
