// SPDX-License-Identifier: MIT

package sphere

import "math"

// EarthRadiusKm is the mean Earth radius in kilometres.
const EarthRadiusKm = 6371.0

const degToRad = math.Pi / 180

// Point is a position on the sphere in spherical coordinates (radians).
type Point struct {
	Azimuth float64 // φ, from the x axis
	Zenith  float64 // θ, from the z axis
}

// Vec3 is a cartesian vector.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}
