// Package render rasterizes a topology graph to a PNG image: green pixels
// at node positions, white pixels tracing edges, either as straight
// endpoint-to-endpoint segments or as every retained waypoint.
package render
