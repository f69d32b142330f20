// Package sphere computes great-circle distances between points on a sphere
// given in spherical coordinates.
//
// Coordinates:
//
//	azimuth φ — angle from the x axis in the xy-plane (longitude-like)
//	zenith  θ — angle from the z axis (colatitude)
//	All angles are in radians.
//
// Method:
//
//	Each point is mapped to a unit vector (sinθ·cosφ, sinθ·sinφ, cosθ); the
//	straight-line chord d between the two vectors is converted to an arc with
//	radius · 2 · asin(d/2).
//
// Callers that already hold unit cartesian vectors can skip the conversion
// with CartesianDistance; geographic latitude/longitude in degrees converts
// through FromLatLon.
//
//	d := sphere.Distance(f1, t1, f2, t2, sphere.EarthRadiusKm)
package sphere
