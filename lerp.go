package affordance

import "math"

// DefaultSnapThreshold is the angular difference, in radians, above which
// rotation lerps jump straight to the target instead of sweeping through a
// large arc.
const DefaultSnapThreshold = math.Pi / 2

// LerpFloat linearly interpolates between two float64 values.
func LerpFloat(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec2 linearly interpolates between two Vec2 values.
func LerpVec2(a, b Vec2, t float64) Vec2 {
	return Vec2{
		X: LerpFloat(a.X, b.X, t),
		Y: LerpFloat(a.Y, b.Y, t),
	}
}

// LerpVec3 linearly interpolates between two Vec3 values.
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{
		X: LerpFloat(a.X, b.X, t),
		Y: LerpFloat(a.Y, b.Y, t),
		Z: LerpFloat(a.Z, b.Z, t),
	}
}

// LerpColor interpolates each RGBA component independently.
func LerpColor(a, b Color, t float64) Color {
	return Color{
		R: LerpFloat(a.R, b.R, t),
		G: LerpFloat(a.G, b.G, t),
		B: LerpFloat(a.B, b.B, t),
		A: LerpFloat(a.A, b.A, t),
	}
}

// LerpAngle returns a lerp for 2D rotations in radians that takes the
// shortest way around the circle. When the shortest difference exceeds
// threshold the result is b. A threshold <= 0 never snaps.
func LerpAngle(threshold float64) LerpFunc[float64] {
	return func(a, b, t float64) float64 {
		diff := wrapAngle(b - a)
		if threshold > 0 && math.Abs(diff) > threshold {
			return b
		}
		return a + diff*t
	}
}

// wrapAngle maps an angle to (-π, π].
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// SlerpQuat returns a shortest-path spherical lerp for rotations. When the
// rotation between a and b exceeds threshold radians the result is b, so a
// flip across a large angle shows as a single snap rather than a visible
// sweep. A threshold <= 0 never snaps.
func SlerpQuat(threshold float64) LerpFunc[Quat] {
	return func(a, b Quat, t float64) Quat {
		target := b
		a = a.Normalize()
		b = b.Normalize()

		d := a.Dot(b)
		if d < 0 {
			b = Quat{-b.X, -b.Y, -b.Z, -b.W}
			d = -d
		}
		if d > 1 {
			d = 1
		}
		half := math.Acos(d)
		if threshold > 0 && 2*half > threshold {
			return target
		}

		if half < 1e-6 {
			return Quat{
				X: LerpFloat(a.X, b.X, t),
				Y: LerpFloat(a.Y, b.Y, t),
				Z: LerpFloat(a.Z, b.Z, t),
				W: LerpFloat(a.W, b.W, t),
			}.Normalize()
		}

		s := math.Sin(half)
		wa := math.Sin((1-t)*half) / s
		wb := math.Sin(t*half) / s
		return Quat{
			X: a.X*wa + b.X*wb,
			Y: a.Y*wa + b.Y*wb,
			Z: a.Z*wa + b.Z*wb,
			W: a.W*wa + b.W*wb,
		}
	}
}
