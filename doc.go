// Package cloudhmm implements adaptive-banding profile-HMM homology
// search: given a target profile and a query sequence plus a seed
// anchor, it discovers the band of the alignment DP matrix worth
// computing, runs bounded Forward/Backward and posterior decoding over
// it, and reports each domain hit with its optimal-accuracy alignment
// and E-value.
//
// The pipeline is organised the way the library it grew out of
// organises a graph algorithms suite: small, independently testable
// packages under the module root, composed by the top-level orchestrator
// in package pipeline.
//
//	logspace/   — numeric kernel: table-driven log-sum-exp, semirings
//	seq/        — digitised query sequences over the amino-acid alphabet
//	hmm/        — the Plan-7 profile: emissions, transitions, special states
//	edgebound/  — sparse banding geometry: row/antidiagonal column intervals
//	sparsemx/   — the sparse 3-state DP matrix addressed through edgebound
//	cloud/      — the adaptive-banding antidiagonal cloud-search sweep
//	fwdback/    — bounded Forward and Backward over a sparse matrix
//	posterior/  — per-cell posterior decoding from a Forward/Backward pair
//	domaindef/  — scanning posteriors for domain envelopes
//	accuracy/   — optimal-accuracy alignment and traceback within a domain
//	score/      — nat-score to bit-score, P-value and E-value conversion
//	pipeline/   — the end-to-end orchestrator tying the above together
package cloudhmm
