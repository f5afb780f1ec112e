// Package pipeline wires the cloud-search engine, bounded Forward and
// Backward, posterior decoding, domain definition, optimal-accuracy
// alignment and final scoring into the single end-to-end search the rest
// of the packages otherwise only expose as components.
//
// Configuration follows a functional-options convention: a DefaultConfig()
// plus a variadic list of Option values, with an optional hook invoked once
// per discovered domain and an optional *log.Logger for progress messages,
// in the style of plain-stdlib structured-enough logging.
package pipeline
