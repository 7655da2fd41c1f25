// Package export writes generated geometry in the formats downstream tools
// consume.
//
// WriteCSV emits a blade.Surface as a flat point cloud, one row per point,
// which is the hand-off to the surface-fitting step. PlotSection renders a
// single airfoil section to an image for visual inspection; the file format
// follows the extension of the target path (png, svg, pdf, ...).
package export
