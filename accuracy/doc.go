// Package accuracy computes the optimal-accuracy alignment within a
// domain envelope: a max-plus recurrence over a posterior matrix that
// maximises the sum of M/I posterior probabilities along a path from the
// envelope's first query row to its last, followed by a greedy traceback
// that breaks ties in the order M > I > D > B > N > J > C > E.
//
// The row-by-row max-plus sweep with recorded back-pointers is grounded
// on the same rolling-row DP shape as package fwdback and, for the
// traceback itself, on a greedy predecessor-tag walk with a fixed
// tie-break order (this package does the same over eight tags).
package accuracy
