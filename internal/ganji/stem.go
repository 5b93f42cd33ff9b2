// Package ganji holds the static sexagenary reference data: the ten
// celestial stems, the twelve terrestrial branches, and the derived
// classifications (five elements, polarity, ten gods, hidden stems, life
// stages, triad stars). Everything here is an immutable process-wide table;
// all lookups are pure.
//
// Lookups with symbols outside the canonical sets are programming errors and
// panic rather than returning an error.
package ganji

// Stem is one of the ten celestial stems, ordered from 甲 (index 0).
type Stem int

const (
	StemGap Stem = iota // 甲
	StemEul             // 乙
	StemByeong          // 丙
	StemJeong           // 丁
	StemMu              // 戊
	StemGi              // 己
	StemGyeong          // 庚
	StemSin             // 辛
	StemIm              // 壬
	StemGye             // 癸
)

// StemCount is the length of the stem cycle.
const StemCount = 10

var stemHanja = [StemCount]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
var stemHangul = [StemCount]string{"갑", "을", "병", "정", "무", "기", "경", "신", "임", "계"}

var stemElements = [StemCount]Element{
	Wood, Wood, Fire, Fire, Earth, Earth, Metal, Metal, Water, Water,
}

// Valid reports whether s is one of the ten canonical stems.
func (s Stem) Valid() bool { return s >= 0 && s < StemCount }

func (s Stem) check() {
	if !s.Valid() {
		panic("ganji: stem out of range")
	}
}

// String returns the hanja symbol, e.g. "甲".
func (s Stem) String() string {
	s.check()
	return stemHanja[s]
}

// Hangul returns the Korean reading, e.g. "갑".
func (s Stem) Hangul() string {
	s.check()
	return stemHangul[s]
}

// Element returns the stem's five-element class.
func (s Stem) Element() Element {
	s.check()
	return stemElements[s]
}

// Polarity alternates through the cycle: even stems are yang, odd yin.
func (s Stem) Polarity() Polarity {
	s.check()
	if s%2 == 0 {
		return Yang
	}
	return Yin
}

// Next returns the following stem, wrapping after 癸.
func (s Stem) Next() Stem {
	s.check()
	return (s + 1) % StemCount
}

// Prev returns the preceding stem, wrapping before 甲.
func (s Stem) Prev() Stem {
	s.check()
	return (s + StemCount - 1) % StemCount
}

// MarshalText renders the stem as its hanja symbol.
func (s Stem) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Element is one of the five elements.
type Element int

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

var elementNames = [...]string{"목", "화", "토", "금", "수"}

func (e Element) String() string { return elementNames[e] }

// Generates returns the element e produces in the generation cycle.
func (e Element) Generates() Element { return (e + 1) % 5 }

// Overcomes returns the element e controls in the overcoming cycle.
func (e Element) Overcomes() Element { return (e + 2) % 5 }

// MarshalText renders the element by its Korean label.
func (e Element) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Polarity is the yin-yang classification.
type Polarity int

const (
	Yang Polarity = iota
	Yin
)

func (p Polarity) String() string {
	if p == Yang {
		return "양"
	}
	return "음"
}

// MarshalText renders the polarity by its Korean label.
func (p Polarity) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
