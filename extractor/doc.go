// Package extractor turns a thinned skeleton into a topology graph via
// feature-pixel seeding followed by a dual-origin breadth-first trace that
// merges colliding frontiers into edges.
package extractor
