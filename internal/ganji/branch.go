package ganji

// Branch is one of the twelve terrestrial branches, ordered from 子 (index 0).
type Branch int

const (
	BranchJa Branch = iota // 子
	BranchChuk             // 丑
	BranchIn               // 寅
	BranchMyo              // 卯
	BranchJin              // 辰
	BranchSa               // 巳
	BranchO                // 午
	BranchMi               // 未
	BranchSin              // 申
	BranchYu               // 酉
	BranchSul              // 戌
	BranchHae              // 亥
)

// BranchCount is the length of the branch cycle.
const BranchCount = 12

var branchHanja = [BranchCount]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}
var branchHangul = [BranchCount]string{"자", "축", "인", "묘", "진", "사", "오", "미", "신", "유", "술", "해"}

var branchElements = [BranchCount]Element{
	Water, Earth, Wood, Wood, Earth, Fire, Fire, Earth, Metal, Metal, Earth, Water,
}

// mainStems holds the dominant hidden stem of each branch.
var mainStems = [BranchCount]Stem{
	StemGye,    // 자
	StemGi,     // 축
	StemGap,    // 인
	StemEul,    // 묘
	StemMu,     // 진
	StemByeong, // 사
	StemJeong,  // 오
	StemGi,     // 미
	StemGyeong, // 신
	StemSin,    // 유
	StemMu,     // 술
	StemIm,     // 해
}

// HiddenStem is one component of a branch's hidden-stem composition, with
// its traditional day-count weight.
type HiddenStem struct {
	Stem   Stem
	Weight int
}

// HiddenStems is the residual/middle/primary breakdown of one branch. Middle
// is nil for the four single-element branches.
type HiddenStems struct {
	Residual HiddenStem
	Middle   *HiddenStem
	Primary  HiddenStem
}

func mid(s Stem, w int) *HiddenStem { return &HiddenStem{Stem: s, Weight: w} }

var hiddenStems = [BranchCount]HiddenStems{
	BranchJa:   {Residual: HiddenStem{StemIm, 10}, Primary: HiddenStem{StemGye, 20}},
	BranchChuk: {Residual: HiddenStem{StemGye, 9}, Middle: mid(StemSin, 3), Primary: HiddenStem{StemGi, 18}},
	BranchIn:   {Residual: HiddenStem{StemMu, 7}, Middle: mid(StemByeong, 7), Primary: HiddenStem{StemGap, 16}},
	BranchMyo:  {Residual: HiddenStem{StemGap, 10}, Primary: HiddenStem{StemEul, 20}},
	BranchJin:  {Residual: HiddenStem{StemEul, 9}, Middle: mid(StemGye, 3), Primary: HiddenStem{StemMu, 18}},
	BranchSa:   {Residual: HiddenStem{StemMu, 7}, Middle: mid(StemGyeong, 7), Primary: HiddenStem{StemByeong, 16}},
	BranchO:    {Residual: HiddenStem{StemByeong, 10}, Middle: mid(StemGi, 9), Primary: HiddenStem{StemJeong, 11}},
	BranchMi:   {Residual: HiddenStem{StemJeong, 9}, Middle: mid(StemEul, 3), Primary: HiddenStem{StemGi, 18}},
	BranchSin:  {Residual: HiddenStem{StemMu, 7}, Middle: mid(StemIm, 7), Primary: HiddenStem{StemGyeong, 16}},
	BranchYu:   {Residual: HiddenStem{StemGyeong, 10}, Primary: HiddenStem{StemSin, 20}},
	BranchSul:  {Residual: HiddenStem{StemSin, 9}, Middle: mid(StemJeong, 3), Primary: HiddenStem{StemMu, 18}},
	BranchHae:  {Residual: HiddenStem{StemMu, 7}, Middle: mid(StemGap, 7), Primary: HiddenStem{StemIm, 16}},
}

// Valid reports whether b is one of the twelve canonical branches.
func (b Branch) Valid() bool { return b >= 0 && b < BranchCount }

func (b Branch) check() {
	if !b.Valid() {
		panic("ganji: branch out of range")
	}
}

// String returns the hanja symbol, e.g. "子".
func (b Branch) String() string {
	b.check()
	return branchHanja[b]
}

// Hangul returns the Korean reading, e.g. "자".
func (b Branch) Hangul() string {
	b.check()
	return branchHangul[b]
}

// Element returns the branch's five-element class.
func (b Branch) Element() Element {
	b.check()
	return branchElements[b]
}

// Polarity alternates through the cycle: even branches are yang, odd yin.
func (b Branch) Polarity() Polarity {
	b.check()
	if b%2 == 0 {
		return Yang
	}
	return Yin
}

// MainStem returns the branch's dominant hidden stem, used as the comparison
// target for branch ten-god lookups.
func (b Branch) MainStem() Stem {
	b.check()
	return mainStems[b]
}

// HiddenStems returns the branch's hidden-stem composition.
func (b Branch) HiddenStems() HiddenStems {
	b.check()
	return hiddenStems[b]
}

// Next returns the following branch, wrapping after 亥.
func (b Branch) Next() Branch {
	b.check()
	return (b + 1) % BranchCount
}

// Prev returns the preceding branch, wrapping before 子.
func (b Branch) Prev() Branch {
	b.check()
	return (b + BranchCount - 1) % BranchCount
}

// MarshalText renders the branch as its hanja symbol.
func (b Branch) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}
