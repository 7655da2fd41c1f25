// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/bladegen/blade"
	"github.com/katalvlaran/bladegen/config"
	"github.com/katalvlaran/bladegen/export"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// defaultPlotSamples is the number of chordwise samples in a section plot.
const defaultPlotSamples = 201

// globalFlags are shared by every subcommand.
type globalFlags struct {
	config  string
	verbose bool

	logger *slog.Logger // set by load
}

func (g *globalFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&g.config, "config", "c", "", "design file (YAML)")
	fs.BoolVarP(&g.verbose, "verbose", "v", false, "log per-station progress")
}

// load reads the design file and builds a generator that logs to stderr.
func (g *globalFlags) load(stderr io.Writer, opts ...blade.Option) (*config.File, *blade.Generator, error) {
	if g.config == "" {
		return nil, nil, errors.New("--config is required")
	}
	f, err := config.Load(g.config)
	if err != nil {
		return nil, nil, err
	}

	level := slog.LevelInfo
	if g.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	g.logger = logger
	logger.Debug("design loaded", "path", g.config, "angle_unit", f.AngleUnit, "reparam", f.Sampling.Reparam)

	opts = append(append(f.Options(), blade.WithLogger(logger)), opts...)
	gen, err := blade.NewGenerator(f.Design(), opts...)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "design %s", g.config)
	}

	return f, gen, nil
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var gf globalFlags
	root := &cobra.Command{
		Use:           "bladegen",
		Short:         "generate axial-flow blade geometry",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	gf.register(root.PersistentFlags())

	root.AddCommand(newGenerateCmd(&gf, stdout, stderr), newSectionCmd(&gf, stderr))

	return root
}

func newGenerateCmd(gf *globalFlags, stdout, stderr io.Writer) *cobra.Command {
	var (
		out                       string
		sections, points, workers int
	)
	cmd := &cobra.Command{
		Use:   "generate -c <design.yaml> [-o <out.csv>]",
		Short: "write the blade surface point cloud as CSV",
		Long: `
Sweep the design's airfoil section from hub to tip and write the upper and
lower surface points as CSV (surface,section,point,x,y,z). Output goes to
stdout unless -o is given. Flags override the design file's sampling block.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var extra []blade.Option
			if cmd.Flags().Changed("workers") {
				if workers < 1 {
					return errors.Newf("--workers must be at least 1, got %d", workers)
				}
				extra = append(extra, blade.WithWorkers(workers))
			}
			f, gen, err := gf.load(stderr, extra...)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("sections") {
				f.Sampling.Sections = sections
			}
			if cmd.Flags().Changed("points") {
				f.Sampling.Points = points
			}

			surf, err := gen.GenerateContext(cmd.Context(), f.Sampling.Sections, f.Sampling.Points)
			if err != nil {
				return err
			}

			return writeOutput(out, stdout, func(w io.Writer) error {
				return export.WriteCSV(w, surf)
			})
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&out, "output", "o", "", "CSV output path (default stdout)")
	fs.IntVar(&sections, "sections", blade.DefaultSections, "number of spanwise sections")
	fs.IntVar(&points, "points", blade.DefaultPoints, "number of chordwise points per section")
	fs.IntVar(&workers, "workers", 0, "concurrent stations (default GOMAXPROCS)")

	return cmd
}

func newSectionCmd(gf *globalFlags, stderr io.Writer) *cobra.Command {
	var (
		out     string
		radius  float64
		samples int
	)
	cmd := &cobra.Command{
		Use:   "section -c <design.yaml> --radius <r> [-o <section.png>]",
		Short: "plot the airfoil section at one radius",
		Long: `
Build the section at the given radius from the design's radial profiles and
save a plot of its upper and lower boundaries. The image format follows the
output extension. The chord and the section area are logged.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("radius") {
				return errors.New("--radius is required")
			}
			_, gen, err := gf.load(stderr)
			if err != nil {
				return err
			}
			if radius < gen.HubRadius() || radius > gen.TipRadius() {
				return errors.Newf("radius %g outside hub %g .. tip %g", radius, gen.HubRadius(), gen.TipRadius())
			}
			s, err := gen.Section(radius)
			if err != nil {
				return err
			}
			if out == "" {
				out = fmt.Sprintf("section-r%g.png", radius)
			}
			if err = os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return errors.Wrap(err, "creating output directory")
			}
			title := fmt.Sprintf("%s r=%g", strings.TrimSuffix(filepath.Base(gf.config), filepath.Ext(gf.config)), radius)

			if err = export.PlotSection(s, samples, out, title); err != nil {
				return err
			}
			area, err := s.Area(samples)
			if err != nil {
				return errors.Wrap(err, "section area")
			}
			gf.logger.Info("section plotted", "path", out, "radius", radius, "chord", s.Chord(), "area", area)

			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&out, "output", "o", "", "image path (default section-r<radius>.png)")
	fs.Float64Var(&radius, "radius", 0, "section radius, hub ≤ r ≤ tip")
	fs.IntVar(&samples, "samples", defaultPlotSamples, "chordwise samples per boundary")

	return cmd
}

// writeOutput runs write against path, or stdout when path is empty.
func writeOutput(path string, stdout io.Writer, write func(io.Writer) error) (err error) {
	if path == "" {
		bw := bufio.NewWriter(stdout)
		if err = write(bw); err != nil {
			return err
		}

		return errors.Wrap(bw.Flush(), "writing stdout")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = errors.Wrapf(cerr, "closing %s", path)
		}
	}()
	bw := bufio.NewWriter(f)
	if err = write(bw); err != nil {
		return err
	}

	return errors.Wrapf(bw.Flush(), "writing %s", path)
}
