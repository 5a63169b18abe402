package affordance

import (
	"math"
	"testing"
)

func TestLerpFloat(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.25, 2.5},
		{-4, 4, 0.5, 0},
	}
	for _, tt := range tests {
		if got := LerpFloat(tt.a, tt.b, tt.t); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("LerpFloat(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

func TestLerpVectorsAndColor(t *testing.T) {
	v2 := LerpVec2(Vec2{0, 0}, Vec2{2, 4}, 0.5)
	if v2 != (Vec2{1, 2}) {
		t.Errorf("LerpVec2 = %+v", v2)
	}
	v3 := LerpVec3(Vec3{0, 0, 0}, Vec3{2, 4, 6}, 0.5)
	if v3 != (Vec3{1, 2, 3}) {
		t.Errorf("LerpVec3 = %+v", v3)
	}
	c := LerpColor(Color{0, 0, 0, 0}, Color{1, 0.5, 0.25, 1}, 0.5)
	if c != (Color{0.5, 0.25, 0.125, 0.5}) {
		t.Errorf("LerpColor = %+v", c)
	}
}

func TestLerpAngleShortestPath(t *testing.T) {
	lerp := LerpAngle(0)
	a := 0.1
	b := 2*math.Pi - 0.1

	got := lerp(a, b, 0.5)
	if math.Abs(got) > 1e-9 {
		t.Errorf("midpoint = %v, want 0 (through the short side)", got)
	}
}

func TestLerpAngleSnaps(t *testing.T) {
	lerp := LerpAngle(DefaultSnapThreshold)
	if got := lerp(0, math.Pi, 0.1); got != math.Pi {
		t.Errorf("180° turn = %v, want snap to π", got)
	}
	if got := lerp(0, math.Pi/4, 0.5); math.Abs(got-math.Pi/8) > 1e-9 {
		t.Errorf("45° turn = %v, want π/8", got)
	}
}

func TestSlerpQuatEndpoints(t *testing.T) {
	slerp := SlerpQuat(DefaultSnapThreshold)
	a := QuatIdentity
	b := QuatFromAxisAngle(Vec3{Z: 1}, math.Pi/3)

	if d := a.AngleTo(slerp(a, b, 0)); d > 1e-6 {
		t.Errorf("t=0 is %v rad from a", d)
	}
	if d := b.AngleTo(slerp(a, b, 1)); d > 1e-6 {
		t.Errorf("t=1 is %v rad from b", d)
	}
	mid := slerp(a, b, 0.5)
	if d := a.AngleTo(mid); math.Abs(d-math.Pi/6) > 1e-6 {
		t.Errorf("midpoint angle = %v, want π/6", d)
	}
}

func TestSlerpQuatShortestPath(t *testing.T) {
	slerp := SlerpQuat(0)
	a := QuatIdentity
	b := QuatFromAxisAngle(Vec3{Y: 1}, math.Pi/2)
	neg := Quat{-b.X, -b.Y, -b.Z, -b.W}

	m1 := slerp(a, b, 0.5)
	m2 := slerp(a, neg, 0.5)
	if d := m1.AngleTo(m2); d > 1e-6 {
		t.Errorf("q and -q should interpolate the same rotation, differ by %v", d)
	}
}

func TestSlerpQuatStepBoundedByThreshold(t *testing.T) {
	threshold := DefaultSnapThreshold
	slerp := SlerpQuat(threshold)
	axes := []Vec3{{X: 1}, {Y: 1}, {Z: 1}, {X: 1, Y: 1}, {X: -1, Z: 2}}

	for _, axis := range axes {
		for deg := 0.0; deg <= 360; deg += 15 {
			a := QuatFromAxisAngle(axis, 0.3)
			b := QuatFromAxisAngle(axis, 0.3+deg*math.Pi/180)
			for _, tt := range []float64{0.1, 0.5, 0.9} {
				got := slerp(a, b, tt)
				full := a.AngleTo(b)
				if full > threshold+1e-6 && got != b {
					t.Errorf("axis %v %v°: %v rad turn should snap", axis, deg, full)
				}
				if step := a.AngleTo(got); step > threshold+1e-6 && got != b {
					t.Errorf("axis %v %v° t=%v: step %v exceeds threshold", axis, deg, tt, step)
				}
			}
		}
	}
}
