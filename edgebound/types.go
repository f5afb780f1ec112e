package edgebound

import "errors"

// Sentinel errors for edgebound construction and queries.
var (
	// ErrBadBound indicates a Bound with Lb > Rb was pushed.
	ErrBadBound = errors.New("edgebound: lb must be <= rb")

	// ErrRowOutOfRange indicates a row id outside [0, Q+1] (or [0, Q+T+1]
	// for antidiagonal-indexed sets) was requested; see Index.
	ErrRowOutOfRange = errors.New("edgebound: row id out of range")

	// ErrNotIndexed indicates FindRowRange was called before Index.
	ErrNotIndexed = errors.New("edgebound: index not built; call Index first")
)

// Orientation tags whether a Bound's RowID is a sequence row (row-indexed)
// or an antidiagonal index (antidiagonal-indexed).
type Orientation int

const (
	RowIndexed Orientation = iota
	AntiDiagIndexed
)

// Bound is a single closed-open column interval on one row (or
// antidiagonal): columns [Lb, Rb), always Lb <= Rb.
type Bound struct {
	RowID int
	Lb    int
	Rb    int
}

// Width returns Rb - Lb, the number of live columns in the bound.
func (b Bound) Width() int { return b.Rb - b.Lb }

// Empty reports whether the bound covers zero columns.
func (b Bound) Empty() bool { return b.Lb >= b.Rb }

// Edgebounds is an ordered set of Bound together with the embedding
// dimensions (Q, T) and an orientation tag.
type Edgebounds struct {
	Q, T    int
	Orient  Orientation
	bounds  []Bound
	idsIdx  []int // idsIdx[row] = first position of row in bounds, or -1
	sorted  bool
	indexed bool
}

// New allocates an Edgebounds for a (Q, T) embedding with the given
// orientation and a starting capacity hint.
func New(q, t int, orient Orientation, capHint int) *Edgebounds {
	return &Edgebounds{
		Q:      q,
		T:      t,
		Orient: orient,
		bounds: make([]Bound, 0, capHint),
	}
}

// Reuse resets the logical size of e to zero while retaining the
// underlying slice capacity, so repeated cloud searches against the same
// profile can reuse one allocation instead of allocating a fresh
// Edgebounds per call.
func (e *Edgebounds) Reuse() {
	e.bounds = e.bounds[:0]
	e.idsIdx = nil
	e.sorted = false
	e.indexed = false
}

// Len returns the number of bounds currently stored.
func (e *Edgebounds) Len() int { return len(e.bounds) }

// At returns the i'th bound in insertion (or, after Sort, row) order.
func (e *Edgebounds) At(i int) Bound { return e.bounds[i] }

// All returns the underlying bound slice. Callers must not retain it
// across a subsequent Reuse/Push: Reuse truncates it in place and Push
// may reallocate it on growth.
func (e *Edgebounds) All() []Bound { return e.bounds }

// Push appends a bound, invalidating any prior Sort/Index state.
// Returns ErrBadBound if b.Lb > b.Rb.
func (e *Edgebounds) Push(b Bound) error {
	if b.Lb > b.Rb {
		return ErrBadBound
	}
	e.bounds = append(e.bounds, b)
	e.sorted = false
	e.indexed = false
	return nil
}
