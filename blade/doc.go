// Package blade sweeps a modified NACA 4-digit section from hub to tip and
// produces the upper and lower surface point grids of an axial-flow blade.
//
// A Design carries the tip diameter, hub ratio, flow coefficient and seven
// radial parameter lists (chord ratio, camber and its location, thickness and
// its location, angle of attack, sweep). NewGenerator fits each list with an
// interpolating polynomial over evenly spaced radii from hub to tip.
//
// Generate then works in two phases:
//
//  1. A sequential scan over numSecs radii starting just inside the hub
//     (0.99·rHub) computes each station's twist and advances the azimuthal
//     and axial lean offsets. Offsets are cumulative, so this phase cannot
//     be split.
//  2. Each station is then independent: its section is built, recentred on
//     its numerical centroid, and every chordwise argument is mapped onto the
//     cylinder of that radius. Stations are processed concurrently with a
//     bounded errgroup, each worker writing only its own row.
//
// Output is identical for any worker count. On failure no partial Surface is
// returned and the error names the lowest failing station.
//
//	g, err := blade.NewGenerator(design, blade.WithLogger(logger))
//	surf, err := g.Generate(11, 101, blade.WithReparam(blade.Cosine()))
package blade
