// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cpkit/sphere"
)

// SphereOptions holds flags for the sphere command.
type SphereOptions struct {
	*RootOptions
	Radius  float64
	Degrees bool
}

// SphereResult is the JSON payload of the sphere command.
type SphereResult struct {
	Distance float64 `json:"distance"`
	Radius   float64 `json:"radius"`
}

// NewSphereCommand creates the sphere command.
func NewSphereCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SphereOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sphere <f1> <t1> <f2> <t2>",
		Short: "Great-circle distance between two points",
		Long: `Compute the great-circle distance between two points on a sphere.

By default the arguments are azimuth/zenith pairs in radians and the radius
defaults to 1. With --degrees they are lat1 lon1 lat2 lon2 in degrees and the
radius defaults to the mean Earth radius in kilometres.

Flags go before the angles; flag parsing stops at the first angle so negative
values are read as numbers. Use -- when the first angle is negative.

Example:
  cpkit sphere --radius 2 0 0 0 1.5707963
  cpkit sphere --degrees 51.5074 -0.1278 48.8566 2.3522
  cpkit sphere --degrees -- -33.8688 151.2093 40.7128 -74.0060`,
		Args: exactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSphere(opts, args, cmd)
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().Float64VarP(&opts.Radius, "radius", "r", 1, "sphere radius")
	cmd.Flags().BoolVar(&opts.Degrees, "degrees", false, "arguments are lat1 lon1 lat2 lon2 in degrees")

	return cmd
}

func runSphere(opts *SphereOptions, args []string, cmd *cobra.Command) error {
	var v [4]float64
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("argument %d", i+1), err)
		}
		v[i] = f
	}

	radius := opts.Radius
	if opts.Degrees && !cmd.Flags().Changed("radius") {
		radius = sphere.EarthRadiusKm
	}
	if radius <= 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("radius must be > 0, got %g", radius))
	}

	var d float64
	if opts.Degrees {
		d = sphere.PointDistance(sphere.FromLatLon(v[0], v[1]), sphere.FromLatLon(v[2], v[3]), radius)
	} else {
		d = sphere.Distance(v[0], v[1], v[2], v[3], radius)
	}
	opts.Logger.Debug("sphere distance", "radius", radius, "degrees", opts.Degrees, "distance", d)

	return opts.formatter(cmd).Success(fmt.Sprintf("%.6f\n", d), SphereResult{Distance: d, Radius: radius})
}
