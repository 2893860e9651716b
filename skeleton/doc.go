// Package skeleton implements Zhang-Suen morphological thinning, reducing
// the Vacant (free-space) region of a grid.Grid to a one-pixel-wide
// skeleton that preserves its connectivity.
package skeleton
