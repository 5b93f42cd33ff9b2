package ganji

// CycleLength is the period of the combined stem-branch cycle.
const CycleLength = 60

// Pair is one stem-branch combination. The 60 pairs whose stem and branch
// share polarity form the sexagenary cycle.
type Pair struct {
	Stem   Stem
	Branch Branch
}

// PairAt returns the pair at position n of the sexagenary cycle. Negative n
// counts backward from 甲子.
func PairAt(n int) Pair {
	return Pair{Stem: Stem(mod(n, StemCount)), Branch: Branch(mod(n, BranchCount))}
}

// Valid reports whether the pair occurs in the sexagenary cycle. Stem and
// branch indices must agree modulo 2; combinations like 甲丑 never occur.
func (p Pair) Valid() bool {
	return p.Stem.Valid() && p.Branch.Valid() && int(p.Stem)%2 == int(p.Branch)%2
}

// Index returns the pair's position in the sexagenary cycle (0-59). The
// mapping follows from the Chinese Remainder Theorem on the 10- and
// 12-cycles and is unique for valid pairs.
func (p Pair) Index() int {
	if !p.Valid() {
		panic("ganji: pair not in the sexagenary cycle")
	}
	return mod(6*int(p.Stem)-5*int(p.Branch), CycleLength)
}

// Next advances stem and branch one step each. The cycles run independently
// and re-synchronize every 60 steps.
func (p Pair) Next() Pair {
	return Pair{Stem: p.Stem.Next(), Branch: p.Branch.Next()}
}

// Prev steps stem and branch back by one each.
func (p Pair) Prev() Pair {
	return Pair{Stem: p.Stem.Prev(), Branch: p.Branch.Prev()}
}

// String returns the hanja reading, e.g. "甲子".
func (p Pair) String() string {
	return p.Stem.String() + p.Branch.String()
}

// Hangul returns the Korean reading, e.g. "갑자".
func (p Pair) Hangul() string {
	return p.Stem.Hangul() + p.Branch.Hangul()
}

// mod is the floored modulo: the result always lies in [0, m).
func mod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}
