package edgebound_test

import (
	"testing"

	"github.com/halvardsen/cloudhmm/edgebound"
	"github.com/stretchr/testify/assert"
)

func TestPush_RejectsBadBound(t *testing.T) {
	e := edgebound.New(5, 5, edgebound.RowIndexed, 0)
	err := e.Push(edgebound.Bound{RowID: 1, Lb: 3, Rb: 1})
	assert.ErrorIs(t, err, edgebound.ErrBadBound)
}

func TestMerge_CoalescesOverlapping(t *testing.T) {
	e := edgebound.New(5, 5, edgebound.RowIndexed, 0)
	_ = e.Push(edgebound.Bound{RowID: 1, Lb: 0, Rb: 3})
	_ = e.Push(edgebound.Bound{RowID: 1, Lb: 2, Rb: 5})
	_ = e.Push(edgebound.Bound{RowID: 1, Lb: 5, Rb: 7}) // abuts
	_ = e.Push(edgebound.Bound{RowID: 2, Lb: 0, Rb: 1})
	e.Sort()
	e.Merge()
	assert.Equal(t, 2, e.Len())
	assert.Equal(t, edgebound.Bound{RowID: 1, Lb: 0, Rb: 7}, e.At(0))
}

// TestIdempotence is Property 7: sort-merge applied twice equals once.
func TestIdempotence(t *testing.T) {
	e := edgebound.New(5, 5, edgebound.RowIndexed, 0)
	_ = e.Push(edgebound.Bound{RowID: 1, Lb: 0, Rb: 3})
	_ = e.Push(edgebound.Bound{RowID: 1, Lb: 2, Rb: 5})
	_ = e.Push(edgebound.Bound{RowID: 0, Lb: 0, Rb: 2})
	e.Sort()
	e.Merge()
	first := append([]edgebound.Bound{}, e.All()...)

	e.Sort()
	e.Merge()
	assert.Equal(t, first, e.All())
}

func TestIndexAndFindRowRange(t *testing.T) {
	e := edgebound.New(5, 5, edgebound.RowIndexed, 0)
	_ = e.Push(edgebound.Bound{RowID: 0, Lb: 0, Rb: 2})
	_ = e.Push(edgebound.Bound{RowID: 2, Lb: 1, Rb: 4})
	e.Sort()
	e.Merge()
	e.Index()

	b, end, err := e.FindRowRange(2)
	assert.NoError(t, err)
	assert.Equal(t, 1, b)
	assert.Equal(t, 2, end)

	_, _, err = e.FindRowRange(1)
	assert.NoError(t, err) // row with no bounds: empty range, not an error

	_, _, err = e.FindRowRange(99)
	assert.ErrorIs(t, err, edgebound.ErrRowOutOfRange)
}

func TestCountCells(t *testing.T) {
	e := edgebound.New(5, 5, edgebound.RowIndexed, 0)
	_ = e.Push(edgebound.Bound{RowID: 0, Lb: 0, Rb: 3})
	_ = e.Push(edgebound.Bound{RowID: 1, Lb: 1, Rb: 2})
	assert.Equal(t, 4, e.CountCells())
}

func TestUnion(t *testing.T) {
	a := edgebound.New(5, 5, edgebound.RowIndexed, 0)
	_ = a.Push(edgebound.Bound{RowID: 0, Lb: 0, Rb: 2})
	b := edgebound.New(5, 5, edgebound.RowIndexed, 0)
	_ = b.Push(edgebound.Bound{RowID: 0, Lb: 1, Rb: 4})

	u := edgebound.Union(a, b)
	assert.Equal(t, 1, u.Len())
	assert.Equal(t, edgebound.Bound{RowID: 0, Lb: 0, Rb: 4}, u.At(0))
}

// TestReorient checks the antidiagonal-to-row mapping (q=k, t=d-k).
func TestReorient(t *testing.T) {
	e := edgebound.New(5, 5, edgebound.AntiDiagIndexed, 0)
	// antidiagonal d=4: k in [1,4) -> (q,t) = (1,3),(2,2),(3,1)
	_ = e.Push(edgebound.Bound{RowID: 4, Lb: 1, Rb: 4})
	e.Sort()
	e.Merge()

	row := e.Reorient()
	assert.Equal(t, edgebound.RowIndexed, row.Orient)
	begin, end, err := row.FindRowRange(2)
	assert.NoError(t, err)
	assert.Equal(t, 1, end-begin)
	assert.Equal(t, edgebound.Bound{RowID: 2, Lb: 2, Rb: 3}, row.At(begin))
}

func TestReuse_RetainsCapacityResetsLen(t *testing.T) {
	e := edgebound.New(5, 5, edgebound.RowIndexed, 4)
	_ = e.Push(edgebound.Bound{RowID: 0, Lb: 0, Rb: 1})
	_ = e.Push(edgebound.Bound{RowID: 1, Lb: 0, Rb: 1})
	e.Reuse()
	assert.Equal(t, 0, e.Len())
}
