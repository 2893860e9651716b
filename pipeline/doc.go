// Package pipeline composes grid, skeleton, extractor, vectorize, coord
// and render into a single end-to-end call: image in, topology graph (and
// optionally a rendered PNG) out.
package pipeline
