// Package logspace provides the numeric kernel shared by every dynamic
// programming stage: a table-driven log-sum-exp and a small Semiring
// capability bundling {sum, prod, zero, one} for log-space or
// normal-space values. The bounded Forward/Backward recurrence in package
// fwdback does not take a Semiring: it runs in log space only, calling
// LogSum directly.
//
// The table-driven logsum precomputes once and reuses the result across a
// tight inner loop rather than calling math.Log/math.Exp per cell, which
// would dominate runtime in a cloud-search sweep processing millions of
// cells.
package logspace
