package paging

import "sort"

// Verdict is a gate's answer about a candidate page
type Verdict int

const (
	// VerdictUndecided is what a gate with no opinion returns. It allows.
	VerdictUndecided Verdict = iota
	VerdictAllow
	VerdictVeto
)

// Allows reports whether the transition may go ahead. Only an explicit
// veto blocks.
func (v Verdict) Allows() bool {
	return v != VerdictVeto
}

func (v Verdict) String() string {
	switch v {
	case VerdictAllow:
		return "allow"
	case VerdictVeto:
		return "veto"
	default:
		return "undecided"
	}
}

// Gate is consulted before a swipe commits a move to another page.
// It is never asked about snap-backs or programmatic index changes.
type Gate interface {
	ShouldContinue(candidate int) Verdict
}

type allowAll struct{}

func (allowAll) ShouldContinue(int) Verdict { return VerdictAllow }

// AllowAll is the gate used when none is configured
var AllowAll Gate = allowAll{}

// GateFunc adapts a predicate to a Gate. A nil func has no opinion.
type GateFunc func(candidate int) bool

// ShouldContinue implements Gate
func (f GateFunc) ShouldContinue(candidate int) Verdict {
	if f == nil {
		return VerdictUndecided
	}
	if f(candidate) {
		return VerdictAllow
	}
	return VerdictVeto
}

// LockedPages vetoes swipes into any of its pages
type LockedPages map[int]bool

// NewLockedPages builds a gate from a list of page indices
func NewLockedPages(indices []int) LockedPages {
	l := make(LockedPages, len(indices))
	for _, i := range indices {
		l[i] = true
	}
	return l
}

// ShouldContinue implements Gate
func (l LockedPages) ShouldContinue(candidate int) Verdict {
	if l[candidate] {
		return VerdictVeto
	}
	return VerdictUndecided
}

// Indices returns the locked pages in ascending order
func (l LockedPages) Indices() []int {
	out := make([]int, 0, len(l))
	for i, locked := range l {
		if locked {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}
