package accuracy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyDomain indicates Compute was asked to decode a domain whose
// [Start, End] span contains no live cells in the posterior matrix.
var ErrEmptyDomain = errors.New("accuracy: domain span has no live cells")

// State enumerates the eight Plan-7 states in tie-break precedence
// order: M > I > D > B > N > J > C > E. A lower State value always
// wins a tie in the max-plus traceback.
type State int

const (
	StateM State = iota
	StateI
	StateD
	StateB
	StateN
	StateJ
	StateC
	StateE
)

func (s State) String() string {
	switch s {
	case StateM:
		return "M"
	case StateI:
		return "I"
	case StateD:
		return "D"
	case StateB:
		return "B"
	case StateN:
		return "N"
	case StateJ:
		return "J"
	case StateC:
		return "C"
	case StateE:
		return "E"
	default:
		return "?"
	}
}

// Step is one cell of a reconstructed alignment trace, in walk order
// (start of the domain first, after traceback reversal).
type Step struct {
	State State
	Q, T  int // query position and profile position; 0 for states with no such axis

	// ProfileResidue and QueryResidue carry the rendered alignment
	// column: the profile's consensus residue at T (set for StateM and
	// StateD) and the query's own residue at Q (set for StateM and
	// StateI). Zero where the state has no such residue.
	ProfileResidue byte
	QueryResidue   byte
}

// Alignment is the optimal-accuracy trace through one domain envelope,
// plus the summary statistics a results report names.
type Alignment struct {
	DomainStart, DomainEnd int // query span, 1-based inclusive
	Trace                  []Step
	ExpectedAccuracy       float64

	MatchCount   int
	InsertCount  int
	DeleteCount  int
	IdentityFrac float64 // identical M-state columns divided by total trace length (M+I+D steps)
}

// Compact renders the trace as a run-length state string, e.g. "3M1I2M".
func (a *Alignment) Compact() string {
	var sb strings.Builder
	i := 0
	for i < len(a.Trace) {
		s := a.Trace[i].State
		if s != StateM && s != StateI && s != StateD {
			i++
			continue
		}
		n := 0
		for i < len(a.Trace) && a.Trace[i].State == s {
			n++
			i++
		}
		fmt.Fprintf(&sb, "%d%s", n, s)
	}
	return sb.String()
}

// Pretty renders a three-line target/centre/query block: the profile's
// consensus residue on top, a centre line marking identity ('|'),
// mismatch ('+') or gap (' '), and the query residue on the bottom.
// Insert and delete columns show a gap on whichever side has nothing to
// align against.
func (a *Alignment) Pretty() string {
	var top, mid, bot strings.Builder
	for _, st := range a.Trace {
		switch st.State {
		case StateM:
			top.WriteByte(st.ProfileResidue)
			bot.WriteByte(st.QueryResidue)
			if st.ProfileResidue == st.QueryResidue {
				mid.WriteByte('|')
			} else {
				mid.WriteByte('+')
			}
		case StateI:
			top.WriteByte('-')
			mid.WriteByte(' ')
			bot.WriteByte(st.QueryResidue)
		case StateD:
			top.WriteByte(st.ProfileResidue)
			mid.WriteByte(' ')
			bot.WriteByte('-')
		}
	}
	return top.String() + "\n" + mid.String() + "\n" + bot.String()
}
