package sphere_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cpkit/sphere"
)

// ExampleDistance measures a quarter of the unit circle: pole to equator.
func ExampleDistance() {
	d := sphere.Distance(0, 0, 0, math.Pi/2, 1)
	fmt.Printf("%.6f\n", d)
	// Output:
	// 1.570796
}

// ExamplePointDistance uses geographic coordinates in degrees.
func ExamplePointDistance() {
	london := sphere.FromLatLon(51.5074, -0.1278)
	paris := sphere.FromLatLon(48.8566, 2.3522)
	fmt.Printf("%.0f km\n", sphere.PointDistance(london, paris, sphere.EarthRadiusKm))
	// Output:
	// 344 km
}
