package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/bladegen/airfoil"
	"github.com/katalvlaran/bladegen/export"
	"github.com/stretchr/testify/require"
)

func mustSection(t *testing.T) *airfoil.Section {
	t.Helper()
	s, err := airfoil.New(airfoil.Params{Chord: 1, Camber: 0.02, CamberLoc: 0.4, Thickness: 0.12, ThicknessLoc: 0.3})
	require.NoError(t, err)

	return s
}

// TestSectionPlotAxes checks the title and that the axes cover the chord
// at equal scale.
func TestSectionPlotAxes(t *testing.T) {
	s := mustSection(t)
	p, err := export.SectionPlot(s, 51, "NACA 2412-ish")
	require.NoError(t, err)
	require.Equal(t, "NACA 2412-ish", p.Title.Text)

	// t = 0.3 is a sample, so both boundary points there lie inside the axes.
	require.GreaterOrEqual(t, p.Y.Max, s.Upper(0.3).W)
	require.LessOrEqual(t, p.Y.Min, s.Lower(0.3).W)

	require.LessOrEqual(t, p.X.Min, 0.0)
	require.GreaterOrEqual(t, p.X.Max, 1.0)
	aspect := float64(export.PlotWidth / export.PlotHeight)
	require.InDelta(t, aspect, (p.X.Max-p.X.Min)/(p.Y.Max-p.Y.Min), 1e-9)
}

// TestPlotSectionPNG writes a PNG and checks its signature.
func TestPlotSectionPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "section.png")
	require.NoError(t, export.PlotSection(mustSection(t), 101, path, "section"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")))
}

// TestPlotSectionErrors covers the sample guard and a bad target path.
func TestPlotSectionErrors(t *testing.T) {
	_, err := export.SectionPlot(mustSection(t), 1, "")
	require.ErrorIs(t, err, export.ErrTooFewSamples)

	err = export.PlotSection(mustSection(t), 11, filepath.Join(t.TempDir(), "missing", "s.png"), "")
	require.Error(t, err)

	err = export.PlotSection(mustSection(t), 11, filepath.Join(t.TempDir(), "s.unknown"), "")
	require.Error(t, err)
}
