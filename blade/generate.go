// SPDX-License-Identifier: MIT

package blade

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/bladegen/airfoil"
	"github.com/katalvlaran/bladegen/curve"
	"github.com/katalvlaran/bladegen/interp"
	"golang.org/x/sync/errgroup"
)

// rootInset places the first station slightly inside the hub so the surfaces
// overlap the hub solid and a clean root edge can be cut downstream.
const rootInset = 0.99

// Generate is GenerateContext with a background context.
func (g *Generator) Generate(numSecs, numPts int, opts ...Option) (*Surface, error) {
	return g.GenerateContext(context.Background(), numSecs, numPts, opts...)
}

// GenerateContext produces numSecs × numPts points on each boundary.
//
// Implementation:
//   - Stage 1: validate counts; evaluate the reparametrization on
//     Linspace(0, 1, numPts) and require strictly increasing arguments.
//   - Stage 2: sequential scan over Linspace(0.99·rHub, rTip, numSecs)
//     accumulating the lean offsets (Stations).
//   - Stage 3: map stations concurrently, at most Workers at a time; every
//     worker writes only its own row.
//   - Stage 4: join; return the lowest-index station failure, or the Surface.
//
// Errors:
//   - ErrInvalidSampling, ErrNonMonotonic (before any station work).
//   - Station failures wrapped with index and radius, e.g. airfoil.ErrInvalidParams
//     or airfoil.ErrDegenerateCentroid.
//   - ctx.Err() when ctx is cancelled.
//
// No partial Surface is ever returned. The result does not depend on Workers.
//
// Complexity:
//   - Time O(numSecs·(centroid + numPts)), Space O(numSecs·numPts).
func (g *Generator) GenerateContext(ctx context.Context, numSecs, numPts int, opts ...Option) (*Surface, error) {
	o := g.opts
	for _, opt := range opts {
		opt(&o)
	}
	if numSecs < 1 || numPts < 1 {
		return nil, errors.Wrapf(ErrInvalidSampling, "%d sections × %d points", numSecs, numPts)
	}

	args := curve.Sample(o.Reparam, interp.Linspace(0, 1, numPts))
	if err := checkIncreasing(args); err != nil {
		return nil, err
	}

	start := time.Now()
	stations := g.Stations(numSecs)
	surf := &Surface{
		Upper:    make([][]Point3, numSecs),
		Lower:    make([][]Point3, numSecs),
		Stations: stations,
	}

	errs := make([]error, numSecs)
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for i := range stations {
		st := stations[i]
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			upper, lower, err := g.mapStation(st, args, o.Centroid)
			if err != nil {
				errs[st.Index] = errors.Wrapf(err, "station %d (r=%g)", st.Index, st.Radius)
				return nil
			}
			surf.Upper[st.Index], surf.Lower[st.Index] = upper, lower
			o.Logger.LogAttrs(gctx, slog.LevelDebug, "station mapped",
				slog.Int("station", st.Index),
				slog.Float64("radius", st.Radius),
				slog.Float64("twist", st.Twist),
				slog.Float64("azimuth", st.Azimuth),
				slog.Float64("axial", st.Axial),
			)

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "generate")
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	o.Logger.LogAttrs(ctx, slog.LevelInfo, "blade generated",
		slog.Int("sections", numSecs),
		slog.Int("points", numPts),
		slog.Int("workers", o.Workers),
		slog.Float64("hub_radius", g.rHub),
		slog.Float64("tip_radius", g.rTip),
		slog.Duration("elapsed", time.Since(start)),
	)

	return surf, nil
}

// checkIncreasing rejects any argument that is not strictly above its
// predecessor; NaN fails the comparison and is rejected too.
func checkIncreasing(args []float64) error {
	for j, v := range args {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrNonMonotonic, "f(t[%d]) = %g", j, v)
		}
		if j > 0 && !(v > args[j-1]) {
			return errors.Wrapf(ErrNonMonotonic, "f(t[%d]) = %g after f(t[%d]) = %g", j, v, j-1, args[j-1])
		}
	}

	return nil
}

// Stations runs the sequential spanwise scan.
//
// Radii are Linspace(0.99·rHub, rTip, numSecs) and Δr = (rTip - rHub)/numSecs.
// At each radius the lean offsets advance before the station is recorded:
//
//	turn = tan(sweep(r))·Δr
//	az0 += turn·cos(twist)/r
//	z0  += turn·sin(twist)
//
// Returns nil for numSecs < 1.
func (g *Generator) Stations(numSecs int) []Station {
	if numSecs < 1 {
		return nil
	}
	dr := (g.rTip - g.rHub) / float64(numSecs)
	out := make([]Station, numSecs)
	var az0, z0 float64
	for i, r := range interp.Linspace(rootInset*g.rHub, g.rTip, numSecs) {
		twist := g.Twist(r)
		turn := math.Tan(g.sweep.Eval(r)) * dr
		az0 += turn * math.Cos(twist) / r
		z0 += turn * math.Sin(twist)
		out[i] = Station{Index: i, Radius: r, Twist: twist, Azimuth: az0, Axial: z0}
	}

	return out
}

// mapStation builds the section at st, recentres it on its centroid and maps
// both boundaries into Cartesian space.
func (g *Generator) mapStation(st Station, args []float64, centroid []airfoil.CentroidOption) (upper, lower []Point3, err error) {
	sec, err := g.Section(st.Radius)
	if err != nil {
		return nil, nil, err
	}
	origin, err := sec.CentroidPoint(centroid...)
	if err != nil {
		return nil, nil, err
	}
	sec = sec.Recentered(origin)

	upper = make([]Point3, len(args))
	lower = make([]Point3, len(args))
	for j, t := range args {
		upper[j] = st.place(sec.Upper(t))
		lower[j] = st.place(sec.Lower(t))
	}

	return upper, lower, nil
}

// place maps a recentred section point (u, w) at this station:
//
//	az = az0 - (u·cos tw + w·sin tw)/r
//	z  = z0 - u·sin tw + w·cos tw
//	x, y = r·cos az, r·sin az
func (st Station) place(p airfoil.Point) Point3 {
	sin, cos := math.Sin(st.Twist), math.Cos(st.Twist)
	az := st.Azimuth - (p.U*cos+p.W*sin)/st.Radius

	return Point3{
		X: st.Radius * math.Cos(az),
		Y: st.Radius * math.Sin(az),
		Z: st.Axial - p.U*sin + p.W*cos,
	}
}
