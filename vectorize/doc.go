// Package vectorize turns a raw, pixel-dense topology graph into a final
// graph whose edges carry only the waypoints RDP simplification judged
// necessary, with interior simplified points promoted to their own
// Waypoint nodes.
package vectorize
