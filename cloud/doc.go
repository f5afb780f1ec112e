// Package cloud implements the adaptive-banding cloud-search engine: a
// bidirectional antidiagonal sweep from a seed anchor that discovers the
// set of DP cells worth computing, pruning each antidiagonal against a
// running score maximum.
//
// The sweep itself generalises a rolling-row technique (two narrow
// buffers rotated each step instead of a full matrix) from a single
// forward row sweep to a bidirectional antidiagonal sweep with a 3-layer
// ring buffer and a Sakoe-Chiba-like band that is *adaptive* (driven by
// score pruning) rather than fixed-width.
package cloud
