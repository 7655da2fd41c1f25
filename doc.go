// Package bladegen generates the surface geometry of axial-flow fan and
// compressor blades from a handful of radial design parameters.
//
// 🚀 What is bladegen?
//
//	A small, deterministic geometry pipeline:
//		• Linear systems: cofactor determinant, adjugate and inverse
//		• Curves: composable single-variable functions, piecewise and polynomial
//		• Interpolation: exact polynomial fits over radial stations
//		• Airfoils: modified NACA 4-digit sections with numerical centroids
//		• Blades: hub-to-tip sweep with twist and lean, built concurrently
//		• Export: CSV point clouds and section plots
//
// Packages:
//
//	matrix/  : dense matrices, Det/Adjugate/Inverse/Solve
//	curve/   : Func algebra, Polynomial, Piecewise, Trapezoid
//	interp/  : Linspace, Fit, Radial
//	airfoil/ : Params, Coefficients, Section, Centroid
//	blade/   : Design, Generator, Generate, Surface
//	config/  : YAML design files
//	export/  : WriteCSV, PlotSection
//	cmd/bladegen : command-line front end
//
// Quick start:
//
//	f, _ := config.Load("fan.yaml")
//	g, _ := blade.NewGenerator(f.Design(), f.Options()...)
//	surf, _ := g.Generate(f.Sampling.Sections, f.Sampling.Points)
//	_ = export.WriteCSV(os.Stdout, surf)
//
// or from the shell:
//
//	go install github.com/katalvlaran/bladegen/cmd/bladegen@latest
//	bladegen generate -c fan.yaml -o fan.csv
package bladegen
