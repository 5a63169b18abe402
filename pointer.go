package affordance

import "github.com/hajimehoshi/ebiten/v2"

// --- Hit shapes ---

// HitShape reports whether a point lies inside an interactive area.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Pointer tracking ---

// PointerSample is one frame of raw pointer input.
type PointerSample struct {
	X, Y float64
	// Pressed is the select button (left mouse, touch).
	Pressed bool
	// Activate is the secondary action held while selecting (right mouse,
	// space bar, trigger).
	Activate bool
}

// PointerTracker turns raw pointer samples over one HitShape into
// InteractionFlags. A press that starts inside the shape captures the
// pointer: the control stays selected until release even if the pointer
// drifts outside. A press that starts outside never selects.
type PointerTracker struct {
	Shape HitShape
	// Disabled forces the Disabled flag and drops any capture.
	Disabled bool
	// Priority marks this control as the preferred hover target, producing
	// HoveredPriority instead of Hovered.
	Priority bool

	down     bool
	captured bool
	clicked  bool
	flags    InteractionFlags
}

// Update consumes a sample and returns the resulting flags.
func (pt *PointerTracker) Update(s PointerSample) InteractionFlags {
	inside := pt.Shape != nil && pt.Shape.Contains(s.X, s.Y)
	pt.clicked = false

	if pt.Disabled {
		pt.down = s.Pressed
		pt.captured = false
		pt.flags = InteractionFlags{Disabled: true}
		return pt.flags
	}

	if s.Pressed && !pt.down {
		// Just pressed: capture only if the press started on the shape.
		pt.down = true
		pt.captured = inside
	} else if !s.Pressed && pt.down {
		// Just released.
		pt.clicked = pt.captured && inside
		pt.down = false
		pt.captured = false
	}

	selecting := pt.down && pt.captured
	pt.flags = InteractionFlags{
		Hovering:      inside,
		HoverPriority: inside && pt.Priority,
		Selecting:     selecting,
		Activated:     selecting && s.Activate,
	}
	return pt.flags
}

// Flags returns the flags computed by the last Update.
func (pt *PointerTracker) Flags() InteractionFlags {
	return pt.flags
}

// Clicked reports whether the last Update released a captured press over
// the shape.
func (pt *PointerTracker) Clicked() bool {
	return pt.clicked
}

// --- Ebitengine input ---

// EbitenPointer samples mouse and touch input from Ebitengine each time
// Flags is called, and implements SignalSource. The first active touch, if
// any, takes precedence over the mouse.
type EbitenPointer struct {
	PointerTracker

	// SelectButton selects (default left).
	SelectButton MouseButton
	// ActivateButton activates while selecting (default right).
	ActivateButton MouseButton
	// ActivateKey also activates while selecting.
	ActivateKey ebiten.Key

	touchIDs []ebiten.TouchID
}

// NewEbitenPointer creates a pointer source over shape using the left button
// to select and the right button or space bar to activate.
func NewEbitenPointer(shape HitShape) *EbitenPointer {
	return &EbitenPointer{
		PointerTracker: PointerTracker{Shape: shape},
		SelectButton:   MouseButtonLeft,
		ActivateButton: MouseButtonRight,
		ActivateKey:    ebiten.KeySpace,
	}
}

// Flags samples Ebitengine input and returns the updated flags.
func (p *EbitenPointer) Flags() InteractionFlags {
	return p.Update(p.sample())
}

func (p *EbitenPointer) sample() PointerSample {
	activate := ebiten.IsMouseButtonPressed(ebitenButton(p.ActivateButton)) ||
		ebiten.IsKeyPressed(p.ActivateKey)

	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(p.touchIDs[0])
		return PointerSample{
			X: float64(tx), Y: float64(ty),
			Pressed:  true,
			Activate: activate || len(p.touchIDs) > 1,
		}
	}

	mx, my := ebiten.CursorPosition()
	return PointerSample{
		X: float64(mx), Y: float64(my),
		Pressed:  ebiten.IsMouseButtonPressed(ebitenButton(p.SelectButton)),
		Activate: activate,
	}
}

func ebitenButton(b MouseButton) ebiten.MouseButton {
	switch b {
	case MouseButtonRight:
		return ebiten.MouseButtonRight
	case MouseButtonMiddle:
		return ebiten.MouseButtonMiddle
	default:
		return ebiten.MouseButtonLeft
	}
}
