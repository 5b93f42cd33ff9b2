// Package stars evaluates the named special-star rules against one chart
// slot. The rules form a fixed, ordered registry; evaluating a slot means
// running every rule and collecting the names of those that apply. The
// reported order is the registry's declared order and is part of the
// contract.
package stars

import "saju/internal/ganji"

// Position designates one of the four pillars.
type Position int

const (
	Hour Position = iota
	Day
	Month
	Year
)

// Part designates the stem or branch half of a pillar.
type Part int

const (
	PartStem Part = iota
	PartBranch
)

// Slot is one of the eight symbol positions of a chart.
type Slot struct {
	Position Position
	Part     Part
}

// Pillars carries the four stem-branch pairs a rule may consult.
type Pillars struct {
	Hour  ganji.Pair
	Day   ganji.Pair
	Month ganji.Pair
	Year  ganji.Pair
}

func (p Pillars) pair(pos Position) ganji.Pair {
	switch pos {
	case Hour:
		return p.Hour
	case Day:
		return p.Day
	case Month:
		return p.Month
	default:
		return p.Year
	}
}

// targetStem returns the stem under test; only meaningful for stem slots.
func (p Pillars) targetStem(s Slot) ganji.Stem { return p.pair(s.Position).Stem }

// targetBranch returns the branch under test; only meaningful for branch slots.
func (p Pillars) targetBranch(s Slot) ganji.Branch { return p.pair(s.Position).Branch }

// otherBranches returns the chart's branches excluding the given position.
func (p Pillars) otherBranches(pos Position) [3]ganji.Branch {
	var out [3]ganji.Branch
	i := 0
	for _, cand := range [4]Position{Year, Month, Day, Hour} {
		if cand == pos {
			continue
		}
		out[i] = p.pair(cand).Branch
		i++
	}
	return out
}

// Rule is one named star predicate.
type Rule struct {
	Name    string
	Applies func(p Pillars, s Slot) bool
}

// Registry is the full ordered rule set. Rules are grouped by family:
// day-stem and month-branch lookups, triad-membership stars, paired-branch
// stars, whole-pillar sets, and the hanging needle.
var Registry = []Rule{
	{"천을귀인", heavenlyNoble},
	{"천덕귀인", heavenlyVirtue},
	{"월덕귀인", monthlyVirtue},
	{"월공귀인", monthlyKong},
	{"문창귀인", scholarStar},
	{"학당귀인", academicHall},
	{"암록귀인", hiddenFortune},
	{"천의귀인", heavenlyDoctor},
	{"천의성", heavenlyFortress},
	{"역마살", postHorse},
	{"도화살", peachBlossom},
	{"화개살", fireCanopy},
	{"원진살", hostileOpposition},
	{"귀문관살", ghostGate},
	{"천라지망살", heavenNetEarthSnare},
	{"양인살", yangBlade},
	{"괴강살", strangeStrong},
	{"백호대살", whiteTigerGreat},
	{"공망살", emptyVoid},
	{"현침살", hangingNeedle},
}

// Evaluate returns the names of every registered star that applies to the
// slot, in registry order. The result is empty, never nil-ambiguous, when no
// star applies.
func Evaluate(p Pillars, s Slot) []string {
	names := []string{}
	for _, r := range Registry {
		if r.Applies(p, s) {
			names = append(names, r.Name)
		}
	}
	return names
}

// --- noble and virtue stars (single-target lookups) ---

var heavenlyNobleBranches = map[ganji.Stem][2]ganji.Branch{
	ganji.StemGap:    {ganji.BranchChuk, ganji.BranchMi},
	ganji.StemEul:    {ganji.BranchJa, ganji.BranchSin},
	ganji.StemByeong: {ganji.BranchHae, ganji.BranchYu},
	ganji.StemJeong:  {ganji.BranchHae, ganji.BranchYu},
	ganji.StemMu:     {ganji.BranchChuk, ganji.BranchMi},
	ganji.StemGi:     {ganji.BranchJa, ganji.BranchSin},
	ganji.StemGyeong: {ganji.BranchChuk, ganji.BranchMi},
	ganji.StemSin:    {ganji.BranchIn, ganji.BranchO},
	ganji.StemIm:     {ganji.BranchMyo, ganji.BranchSa},
	ganji.StemGye:    {ganji.BranchIn, ganji.BranchO},
}

func heavenlyNoble(p Pillars, s Slot) bool {
	if s.Part != PartBranch {
		return false
	}
	pair := heavenlyNobleBranches[p.Day.Stem]
	target := p.targetBranch(s)
	return target == pair[0] || target == pair[1]
}

// 천덕귀인 points at a stem for some months and a branch for others, so the
// table splits by target kind.
var heavenlyVirtueStems = map[ganji.Branch]ganji.Stem{
	ganji.BranchChuk: ganji.StemGyeong,
	ganji.BranchIn:   ganji.StemJeong,
	ganji.BranchJin:  ganji.StemIm,
	ganji.BranchSa:   ganji.StemSin,
	ganji.BranchMi:   ganji.StemGap,
	ganji.BranchSin:  ganji.StemGye,
	ganji.BranchSul:  ganji.StemByeong,
	ganji.BranchHae:  ganji.StemEul,
}

var heavenlyVirtueBranches = map[ganji.Branch]ganji.Branch{
	ganji.BranchJa:  ganji.BranchSa,
	ganji.BranchMyo: ganji.BranchSin,
	ganji.BranchO:   ganji.BranchHae,
	ganji.BranchYu:  ganji.BranchIn,
}

func heavenlyVirtue(p Pillars, s Slot) bool {
	if s.Position == Month && s.Part == PartBranch {
		return false
	}
	month := p.Month.Branch
	if s.Part == PartStem {
		want, ok := heavenlyVirtueStems[month]
		return ok && p.targetStem(s) == want
	}
	want, ok := heavenlyVirtueBranches[month]
	return ok && p.targetBranch(s) == want
}

var monthlyVirtueStems = map[ganji.Branch]ganji.Stem{
	ganji.BranchJa:   ganji.StemIm,
	ganji.BranchChuk: ganji.StemGyeong,
	ganji.BranchIn:   ganji.StemByeong,
	ganji.BranchMyo:  ganji.StemGap,
	ganji.BranchJin:  ganji.StemIm,
	ganji.BranchSa:   ganji.StemGyeong,
	ganji.BranchO:    ganji.StemByeong,
	ganji.BranchMi:   ganji.StemGap,
	ganji.BranchSin:  ganji.StemIm,
	ganji.BranchYu:   ganji.StemGyeong,
	ganji.BranchSul:  ganji.StemByeong,
	ganji.BranchHae:  ganji.StemGap,
}

func monthlyVirtue(p Pillars, s Slot) bool {
	if s.Part != PartStem {
		return false
	}
	return p.targetStem(s) == monthlyVirtueStems[p.Month.Branch]
}

var monthlyKongStems = map[ganji.Branch]ganji.Stem{
	ganji.BranchJa:   ganji.StemByeong,
	ganji.BranchChuk: ganji.StemGap,
	ganji.BranchIn:   ganji.StemIm,
	ganji.BranchMyo:  ganji.StemGyeong,
	ganji.BranchJin:  ganji.StemByeong,
	ganji.BranchSa:   ganji.StemGap,
	ganji.BranchO:    ganji.StemIm,
	ganji.BranchMi:   ganji.StemGyeong,
	ganji.BranchSin:  ganji.StemByeong,
	ganji.BranchYu:   ganji.StemGap,
	ganji.BranchSul:  ganji.StemIm,
	ganji.BranchHae:  ganji.StemGyeong,
}

func monthlyKong(p Pillars, s Slot) bool {
	if s.Part != PartStem {
		return false
	}
	return p.targetStem(s) == monthlyKongStems[p.Month.Branch]
}

var scholarStarBranches = map[ganji.Stem]ganji.Branch{
	ganji.StemGap:    ganji.BranchSa,
	ganji.StemEul:    ganji.BranchO,
	ganji.StemByeong: ganji.BranchSin,
	ganji.StemJeong:  ganji.BranchYu,
	ganji.StemMu:     ganji.BranchSin,
	ganji.StemGi:     ganji.BranchYu,
	ganji.StemGyeong: ganji.BranchHae,
	ganji.StemSin:    ganji.BranchJa,
	ganji.StemIm:     ganji.BranchIn,
	ganji.StemGye:    ganji.BranchMyo,
}

func scholarStar(p Pillars, s Slot) bool {
	if s.Part != PartBranch {
		return false
	}
	return p.targetBranch(s) == scholarStarBranches[p.Day.Stem]
}

var academicHallBranches = map[ganji.Stem]ganji.Branch{
	ganji.StemGap:    ganji.BranchSa,
	ganji.StemEul:    ganji.BranchO,
	ganji.StemByeong: ganji.BranchIn,
	ganji.StemJeong:  ganji.BranchYu,
	ganji.StemMu:     ganji.BranchIn,
	ganji.StemGi:     ganji.BranchYu,
	ganji.StemGyeong: ganji.BranchSa,
	ganji.StemSin:    ganji.BranchJa,
	ganji.StemIm:     ganji.BranchSin,
	ganji.StemGye:    ganji.BranchMyo,
}

func academicHall(p Pillars, s Slot) bool {
	if s.Part != PartBranch {
		return false
	}
	return p.targetBranch(s) == academicHallBranches[p.Day.Stem]
}

var hiddenFortuneBranches = map[ganji.Stem]ganji.Branch{
	ganji.StemGap:    ganji.BranchHae,
	ganji.StemEul:    ganji.BranchSul,
	ganji.StemByeong: ganji.BranchSin,
	ganji.StemJeong:  ganji.BranchMi,
	ganji.StemMu:     ganji.BranchSin,
	ganji.StemGi:     ganji.BranchMi,
	ganji.StemGyeong: ganji.BranchSa,
	ganji.StemSin:    ganji.BranchJin,
	ganji.StemIm:     ganji.BranchIn,
	ganji.StemGye:    ganji.BranchChuk,
}

func hiddenFortune(p Pillars, s Slot) bool {
	if s.Part != PartBranch {
		return false
	}
	return p.targetBranch(s) == hiddenFortuneBranches[p.Day.Stem]
}

// 천의귀인: the branch preceding the month branch.
func heavenlyDoctor(p Pillars, s Slot) bool {
	if s.Part != PartBranch {
		return false
	}
	return p.targetBranch(s) == p.Month.Branch.Prev()
}

// 천의성 shares the doctor's table but never applies to the month branch
// itself.
func heavenlyFortress(p Pillars, s Slot) bool {
	if s.Part != PartBranch || s.Position == Month {
		return false
	}
	return p.targetBranch(s) == p.Month.Branch.Prev()
}

// --- triad-membership stars ---

// Each star can only land on four specific branches; it fires when one of
// the chart's other branches belongs to the triggering triad.
var postHorseTriads = map[ganji.Branch][3]ganji.Branch{
	ganji.BranchSa:  {ganji.BranchHae, ganji.BranchMyo, ganji.BranchMi},
	ganji.BranchSin: {ganji.BranchIn, ganji.BranchO, ganji.BranchSul},
	ganji.BranchHae: {ganji.BranchSa, ganji.BranchYu, ganji.BranchChuk},
	ganji.BranchIn:  {ganji.BranchSin, ganji.BranchJa, ganji.BranchJin},
}

var peachBlossomTriads = map[ganji.Branch][3]ganji.Branch{
	ganji.BranchJa:  {ganji.BranchHae, ganji.BranchMyo, ganji.BranchMi},
	ganji.BranchMyo: {ganji.BranchIn, ganji.BranchO, ganji.BranchSul},
	ganji.BranchO:   {ganji.BranchSa, ganji.BranchYu, ganji.BranchChuk},
	ganji.BranchYu:  {ganji.BranchSin, ganji.BranchJa, ganji.BranchJin},
}

var fireCanopyTriads = map[ganji.Branch][3]ganji.Branch{
	ganji.BranchMi:   {ganji.BranchHae, ganji.BranchMyo, ganji.BranchMi},
	ganji.BranchSul:  {ganji.BranchIn, ganji.BranchO, ganji.BranchSul},
	ganji.BranchChuk: {ganji.BranchSa, ganji.BranchYu, ganji.BranchChuk},
	ganji.BranchJin:  {ganji.BranchSin, ganji.BranchJa, ganji.BranchJin},
}

func triadStarApplies(triads map[ganji.Branch][3]ganji.Branch, p Pillars, s Slot) bool {
	if s.Part != PartBranch {
		return false
	}
	triad, ok := triads[p.targetBranch(s)]
	if !ok {
		return false
	}
	for _, other := range p.otherBranches(s.Position) {
		if other == triad[0] || other == triad[1] || other == triad[2] {
			return true
		}
	}
	return false
}

func postHorse(p Pillars, s Slot) bool    { return triadStarApplies(postHorseTriads, p, s) }
func peachBlossom(p Pillars, s Slot) bool { return triadStarApplies(peachBlossomTriads, p, s) }
func fireCanopy(p Pillars, s Slot) bool   { return triadStarApplies(fireCanopyTriads, p, s) }

// --- paired-branch stars ---

var hostileOppositionPartner = map[ganji.Branch]ganji.Branch{
	ganji.BranchJin:  ganji.BranchHae,
	ganji.BranchHae:  ganji.BranchJin,
	ganji.BranchO:    ganji.BranchChuk,
	ganji.BranchChuk: ganji.BranchO,
	ganji.BranchSa:   ganji.BranchSul,
	ganji.BranchSul:  ganji.BranchSa,
	ganji.BranchMyo:  ganji.BranchSin,
	ganji.BranchSin:  ganji.BranchMyo,
	ganji.BranchIn:   ganji.BranchYu,
	ganji.BranchYu:   ganji.BranchIn,
	ganji.BranchJa:   ganji.BranchMi,
	ganji.BranchMi:   ganji.BranchJa,
}

func hostileOpposition(p Pillars, s Slot) bool {
	if s.Part != PartBranch {
		return false
	}
	partner := hostileOppositionPartner[p.targetBranch(s)]
	for _, other := range p.otherBranches(s.Position) {
		if other == partner {
			return true
		}
	}
	return false
}

var ghostGatePartner = map[ganji.Branch]ganji.Branch{
	ganji.BranchJin:  ganji.BranchHae,
	ganji.BranchHae:  ganji.BranchJin,
	ganji.BranchO:    ganji.BranchChuk,
	ganji.BranchChuk: ganji.BranchO,
	ganji.BranchSa:   ganji.BranchSul,
	ganji.BranchSul:  ganji.BranchSa,
	ganji.BranchMyo:  ganji.BranchSin,
	ganji.BranchSin:  ganji.BranchMyo,
	ganji.BranchIn:   ganji.BranchMi,
	ganji.BranchMi:   ganji.BranchIn,
	ganji.BranchJa:   ganji.BranchYu,
	ganji.BranchYu:   ganji.BranchJa,
}

// 귀문관살 is checked only on the hour and month branches, against the day
// branch.
func ghostGate(p Pillars, s Slot) bool {
	if s.Part != PartBranch || (s.Position != Hour && s.Position != Month) {
		return false
	}
	return ghostGatePartner[p.targetBranch(s)] == p.Day.Branch
}

var heavenNetEarthSnarePartner = map[ganji.Branch]ganji.Branch{
	ganji.BranchSul: ganji.BranchHae,
	ganji.BranchHae: ganji.BranchSul,
	ganji.BranchJin: ganji.BranchSa,
	ganji.BranchSa:  ganji.BranchJin,
}

func heavenNetEarthSnare(p Pillars, s Slot) bool {
	if s.Part != PartBranch {
		return false
	}
	partner, ok := heavenNetEarthSnarePartner[p.targetBranch(s)]
	if !ok {
		return false
	}
	for _, other := range p.otherBranches(s.Position) {
		if other == partner {
			return true
		}
	}
	return false
}

// --- day-stem blade ---

// 양인살 exists for yang day stems only; yin stems never match.
var yangBladeBranches = map[ganji.Stem]ganji.Branch{
	ganji.StemGap:    ganji.BranchMyo,
	ganji.StemByeong: ganji.BranchO,
	ganji.StemMu:     ganji.BranchO,
	ganji.StemGyeong: ganji.BranchYu,
	ganji.StemIm:     ganji.BranchJa,
}

func yangBlade(p Pillars, s Slot) bool {
	if s.Part != PartBranch {
		return false
	}
	want, ok := yangBladeBranches[p.Day.Stem]
	return ok && p.targetBranch(s) == want
}

// --- whole-pillar sets ---

// Day-master strength stars: the rule is armed only when the day pillar is
// in the fixed set; it then marks every pillar whose own pair is also in the
// set (the day pillar always marks itself).
var strangeStrongPairs = pairSet(
	ganji.Pair{Stem: ganji.StemIm, Branch: ganji.BranchJin},
	ganji.Pair{Stem: ganji.StemGyeong, Branch: ganji.BranchJin},
	ganji.Pair{Stem: ganji.StemGyeong, Branch: ganji.BranchSul},
	ganji.Pair{Stem: ganji.StemMu, Branch: ganji.BranchSul},
)

var whiteTigerGreatPairs = pairSet(
	ganji.Pair{Stem: ganji.StemGap, Branch: ganji.BranchJin},
	ganji.Pair{Stem: ganji.StemEul, Branch: ganji.BranchMi},
	ganji.Pair{Stem: ganji.StemByeong, Branch: ganji.BranchSul},
	ganji.Pair{Stem: ganji.StemJeong, Branch: ganji.BranchChuk},
	ganji.Pair{Stem: ganji.StemMu, Branch: ganji.BranchJin},
	ganji.Pair{Stem: ganji.StemIm, Branch: ganji.BranchSul},
	ganji.Pair{Stem: ganji.StemGye, Branch: ganji.BranchChuk},
)

func pairSet(pairs ...ganji.Pair) map[ganji.Pair]struct{} {
	set := make(map[ganji.Pair]struct{}, len(pairs))
	for _, p := range pairs {
		set[p] = struct{}{}
	}
	return set
}

func pillarSetApplies(set map[ganji.Pair]struct{}, p Pillars, s Slot) bool {
	if _, ok := set[p.Day]; !ok {
		return false
	}
	_, ok := set[p.pair(s.Position)]
	return ok
}

func strangeStrong(p Pillars, s Slot) bool {
	return pillarSetApplies(strangeStrongPairs, p, s)
}

func whiteTigerGreat(p Pillars, s Slot) bool {
	return pillarSetApplies(whiteTigerGreatPairs, p, s)
}

// 공망살: the sexagenary cycle splits into six decades; each decade leaves
// two branches unoccupied, and those are void for any day pillar in the
// decade.
func emptyVoid(p Pillars, s Slot) bool {
	if s.Part != PartBranch {
		return false
	}
	decade := p.Day.Index() / ganji.StemCount
	first := ganji.Branch(10 - 2*decade)
	target := p.targetBranch(s)
	return target == first || target == first+1
}

// --- hanging needle ---

// 현침살 marks the needle-shaped symbols; it is the one rule that applies to
// stems and branches alike.
func hangingNeedle(p Pillars, s Slot) bool {
	if s.Part == PartStem {
		t := p.targetStem(s)
		return t == ganji.StemGap || t == ganji.StemSin
	}
	t := p.targetBranch(s)
	return t == ganji.BranchMyo || t == ganji.BranchO || t == ganji.BranchMi || t == ganji.BranchSin
}
