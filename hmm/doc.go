// Package hmm defines the profile hidden Markov model consumed by cloud
// search and the bounded Forward/Backward recurrence.
//
// A Profile holds, for every position t in [0, T]: a match-emission
// distribution (t >= 1 only) and an insert-emission distribution over the 24-symbol
// alphabet (package seq), and the eight core transitions
// {MM, MI, MD, IM, II, DM, DD, BM}. Profile-wide state covers the five
// special-state transition pairs {N, J, C, E, B} x {LOOP, MOVE}, a
// background distribution, the configured search mode, and the
// pre-fitted MSV/Viterbi/Forward score distribution parameters used by
// the score package to convert a bit score to an E-value. All numbers
// are stored in natural-log space.
//
// A Profile is a single mutable-until-frozen value type with sentinel
// errors and a small validation pass, but carries no concurrency
// primitives of its own: once built it is read-only and safe to share
// across concurrent searches without synchronisation.
package hmm
