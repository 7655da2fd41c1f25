// SPDX-License-Identifier: MIT

package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/bladegen/blade"
)

// Surface labels used in the first CSV column.
const (
	LabelUpper = "upper"
	LabelLower = "lower"
)

// Header is the first CSV record written by WriteCSV.
var Header = []string{"surface", "section", "point", "x", "y", "z"}

// WriteCSV writes the surface as a point cloud with the columns of Header.
// All upper rows come first, then all lower rows; within each, sections run
// root to tip and points run along the chordwise argument. Coordinates use
// the shortest representation that round-trips.
//
// Errors:
//   - ErrEmptySurface if s is nil or has no sections.
//   - ErrRaggedGrid if any row length differs from the first upper row, or
//     the lower grid has a different number of sections.
//   - Any error from w.
func WriteCSV(w io.Writer, s *blade.Surface) error {
	if err := checkGrid(s); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return errors.Wrap(err, "writing csv header")
	}

	rec := make([]string, len(Header))
	for _, part := range []struct {
		label string
		grid  [][]blade.Point3
	}{
		{LabelUpper, s.Upper},
		{LabelLower, s.Lower},
	} {
		rec[0] = part.label
		for i, row := range part.grid {
			rec[1] = strconv.Itoa(i)
			for j, p := range row {
				rec[2] = strconv.Itoa(j)
				rec[3] = formatFloat(p.X)
				rec[4] = formatFloat(p.Y)
				rec[5] = formatFloat(p.Z)
				if err := cw.Write(rec); err != nil {
					return errors.Wrapf(err, "writing %s[%d][%d]", part.label, i, j)
				}
			}
		}
	}

	cw.Flush()

	return errors.Wrap(cw.Error(), "flushing csv")
}

// checkGrid verifies that Upper and Lower are non-empty rectangles of the
// same shape.
func checkGrid(s *blade.Surface) error {
	if s == nil || len(s.Upper) == 0 {
		return ErrEmptySurface
	}
	if len(s.Lower) != len(s.Upper) {
		return errors.Wrapf(ErrRaggedGrid, "upper has %d sections, lower has %d", len(s.Upper), len(s.Lower))
	}
	n := len(s.Upper[0])
	if n == 0 {
		return ErrEmptySurface
	}
	for i := range s.Upper {
		if len(s.Upper[i]) != n {
			return errors.Wrapf(ErrRaggedGrid, "upper section %d has %d points, want %d", i, len(s.Upper[i]), n)
		}
		if len(s.Lower[i]) != n {
			return errors.Wrapf(ErrRaggedGrid, "lower section %d has %d points, want %d", i, len(s.Lower[i]), n)
		}
	}

	return nil
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
