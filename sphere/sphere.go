// SPDX-License-Identifier: MIT

package sphere

import "math"

// Distance returns the great-circle distance on a sphere of the given radius
// between (φ1=f1, θ1=t1) and (φ2=f2, θ2=t2). Angles are in radians.
//
// Pure function: no errors, no side effects. Inputs are assumed finite.
func Distance(f1, t1, f2, t2, radius float64) float64 {
	return PointDistance(Point{Azimuth: f1, Zenith: t1}, Point{Azimuth: f2, Zenith: t2}, radius)
}

// PointDistance is Distance over Point values.
func PointDistance(a, b Point, radius float64) float64 {
	return CartesianDistance(ToCartesian(a), ToCartesian(b), radius)
}

// ToCartesian maps p to the unit vector (sinθ·cosφ, sinθ·sinφ, cosθ).
func ToCartesian(p Point) Vec3 {
	st, ct := math.Sincos(p.Zenith)
	sf, cf := math.Sincos(p.Azimuth)

	return Vec3{X: st * cf, Y: st * sf, Z: ct}
}

// CartesianDistance returns the arc length between two unit vectors on a
// sphere of the given radius.
func CartesianDistance(a, b Vec3, radius float64) float64 {
	return ChordToArc(b.Sub(a).Norm(), radius)
}

// ChordToArc converts the chord length between two unit vectors into the arc
// length on a sphere of the given radius: radius · 2 · asin(chord/2).
//
// chord/2 is clamped to [0, 1] so rounding on antipodal points cannot push
// asin outside its domain; the result never exceeds π·radius.
func ChordToArc(chord, radius float64) float64 {
	h := chord / 2
	if h > 1 {
		h = 1
	} else if h < 0 {
		h = 0
	}

	return radius * 2 * math.Asin(h)
}

// FromLatLon converts geographic latitude/longitude in degrees to a Point:
// azimuth = longitude, zenith = 90° − latitude.
func FromLatLon(latDeg, lonDeg float64) Point {
	return Point{
		Azimuth: lonDeg * degToRad,
		Zenith:  (90 - latDeg) * degToRad,
	}
}
