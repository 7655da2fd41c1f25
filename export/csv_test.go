package export_test

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/bladegen/blade"
	"github.com/katalvlaran/bladegen/export"
	"github.com/stretchr/testify/require"
)

func tinySurface() *blade.Surface {
	return &blade.Surface{
		Upper: [][]blade.Point3{
			{{X: 1, Y: 0, Z: 0.5}, {X: 0.25, Y: -1, Z: 0}},
			{{X: 2, Y: 0, Z: 0}, {X: 1e-9, Y: 3, Z: -0.1}},
		},
		Lower: [][]blade.Point3{
			{{X: 1, Y: 0, Z: -0.5}, {X: 0.25, Y: 1, Z: 0}},
			{{X: 2, Y: 0.5, Z: 0}, {X: 0, Y: 3, Z: 0.1}},
		},
	}
}

// TestWriteCSVLayout checks header, ordering and float formatting.
func TestWriteCSVLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, tinySurface()))

	want := strings.Join([]string{
		"surface,section,point,x,y,z",
		"upper,0,0,1,0,0.5",
		"upper,0,1,0.25,-1,0",
		"upper,1,0,2,0,0",
		"upper,1,1,1e-09,3,-0.1",
		"lower,0,0,1,0,-0.5",
		"lower,0,1,0.25,1,0",
		"lower,1,0,2,0.5,0",
		"lower,1,1,0,3,0.1",
	}, "\n") + "\n"
	require.Equal(t, want, buf.String())
}

// TestWriteCSVGenerated exports a full blade and reads it back.
func TestWriteCSVGenerated(t *testing.T) {
	g, err := blade.NewGenerator(blade.Design{
		Diameter:        0.381,
		HubRatio:        0.387,
		FlowCoefficient: 0.2,
		ChordRatio:      []float64{0.33, 0.13, 0.12},
		Camber:          []float64{0, 0.056, 0.059},
		CamberLoc:       []float64{0.7, 0.2, 0.56},
		Thickness:       []float64{0.12, 0.05, 0.051},
		ThicknessLoc:    []float64{0.13, 0.1, 0.33},
		AngleOfAttack:   []float64{0, 0.0855, 0.0681, 0.0297, 0},
		Sweep:           []float64{0.209, -0.279, 0.768},
	})
	require.NoError(t, err)
	surf, err := g.Generate(5, 21)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, surf))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 1+2*5*21)
	require.Equal(t, export.Header, recs[0])
	require.Equal(t, "upper", recs[1][0])
	require.Equal(t, []string{"lower", "4", "20"}, recs[len(recs)-1][:3])
}

// TestWriteCSVRejects covers the empty and ragged grid checks.
func TestWriteCSVRejects(t *testing.T) {
	var buf bytes.Buffer

	require.ErrorIs(t, export.WriteCSV(&buf, nil), export.ErrEmptySurface)
	require.ErrorIs(t, export.WriteCSV(&buf, &blade.Surface{}), export.ErrEmptySurface)
	require.ErrorIs(t, export.WriteCSV(&buf, &blade.Surface{
		Upper: [][]blade.Point3{{}},
		Lower: [][]blade.Point3{{}},
	}), export.ErrEmptySurface)

	s := tinySurface()
	s.Lower = s.Lower[:1]
	require.ErrorIs(t, export.WriteCSV(&buf, s), export.ErrRaggedGrid)

	s = tinySurface()
	s.Upper[1] = s.Upper[1][:1]
	require.ErrorIs(t, export.WriteCSV(&buf, s), export.ErrRaggedGrid)

	s = tinySurface()
	s.Lower[0] = append(s.Lower[0], blade.Point3{})
	require.ErrorIs(t, export.WriteCSV(&buf, s), export.ErrRaggedGrid)

	require.Zero(t, buf.Len(), "nothing written for a rejected grid")
}

type failWriter struct{}

var errSink = errors.New("sink closed")

func (failWriter) Write([]byte) (int, error) { return 0, errSink }

// TestWriteCSVWriterError checks that a failing writer surfaces.
func TestWriteCSVWriterError(t *testing.T) {
	require.ErrorIs(t, export.WriteCSV(failWriter{}, tinySurface()), errSink)
}
