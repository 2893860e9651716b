// Package simplify implements Ramer-Douglas-Peucker polyline
// simplification: given a tolerance, reduce a dense polyline to the
// subsequence of points needed to approximate it within that tolerance.
package simplify
