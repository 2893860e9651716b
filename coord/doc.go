// Package coord converts a topology graph's node and edge positions
// between image (pixel, top-left origin, Y grows downward) and planar
// (bottom-left origin, Y grows upward, physical units) coordinate
// systems.
package coord
