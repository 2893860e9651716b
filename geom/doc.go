// Package geom provides minimal 2D vector arithmetic and the single piece
// of computational geometry the topology pipeline needs: distance from a
// point to a line segment.
//
// Everything here is a straight port of the operators topograph actually
// calls; it is not a general-purpose linear-algebra package.
package geom
