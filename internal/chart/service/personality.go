package service

import (
	"fmt"

	"saju/internal/ganji"
	"saju/internal/ganji/stars"
)

// The four personality axes are looked up by day stem and month branch. Each
// table row is a twelve-character string indexed by branch, 자 through 해.
var (
	// D: direct, R: relational.
	directRelational = map[ganji.Stem]string{
		ganji.StemGap:    "RDDDDDDDDDDR",
		ganji.StemEul:    "RRDDRRRRRRRR",
		ganji.StemByeong: "RDDDDDDDRRDR",
		ganji.StemJeong:  "RRRRRDDDRRRR",
		ganji.StemMu:     "RDRRDDDDDDDR",
		ganji.StemGi:     "RDRRDDDDRRDR",
		ganji.StemGyeong: "DDDDDDDRDDDD",
		ganji.StemSin:    "DDDDRRRRDDDD",
		ganji.StemIm:     "DDDDDDDDDRDD",
		ganji.StemGye:    "DRRRRRRRRRRD",
	}

	// F: feeling, T: thinking.
	feelingThinking = map[ganji.Stem]string{
		ganji.StemGap:    "TFFFFFFFTTFT",
		ganji.StemEul:    "TTFFFFFFTTFT",
		ganji.StemByeong: "TTFFFFFFTTFT",
		ganji.StemJeong:  "TTFFFFFFTTFT",
		ganji.StemMu:     "TTFFFFFFTTFT",
		ganji.StemGi:     "TTFFFFFFTTFT",
		ganji.StemGyeong: "TTTTTTTTTTTT",
		ganji.StemSin:    "TTTTTTTTTTTT",
		ganji.StemIm:     "TTFFTFFTTTTT",
		ganji.StemGye:    "TTFFTFFFTTTT",
	}

	// P: planned, O: open.
	plannedOpen = map[ganji.Stem]string{
		ganji.StemGap:    "POOOOPPOOOOP",
		ganji.StemEul:    "POOOOPPOOOOP",
		ganji.StemByeong: "OPPPPOOPOOPO",
		ganji.StemJeong:  "OPPPPOOPOOPO",
		ganji.StemMu:     "OOOOOPPOPPOO",
		ganji.StemGi:     "OOOOOPPOPPOO",
		ganji.StemGyeong: "PPOOPOOPOOPP",
		ganji.StemSin:    "PPOOPOOPOOPP",
		ganji.StemIm:     "OOPPOOOOPPOO",
		ganji.StemGye:    "OOPPOOOOPPOO",
	}

	// W: warm, H: hard.
	warmHard = map[ganji.Stem]string{
		ganji.StemGap:    "HWWWWWWWHHWH",
		ganji.StemEul:    "HWWWWWWWHHWH",
		ganji.StemByeong: "HWHHWWWWWWWH",
		ganji.StemJeong:  "HWHHWWWWWWWH",
		ganji.StemMu:     "WWHHWWWWWWWW",
		ganji.StemGi:     "WWHHWHHWWWWW",
		ganji.StemGyeong: "WHWWHHHHWWHW",
		ganji.StemSin:    "WHWWHHHHWWHW",
		ganji.StemIm:     "WHWWHWWHWWHW",
		ganji.StemGye:    "WHWWHWWHWWHW",
	}
)

// personalityCode composes the five-axis code, e.g. "MDTO-W". The leading
// axis is sun/moon from the day stem's polarity; 정사 is the one day pillar
// that reads sun despite its yin stem.
func personalityCode(p stars.Pillars) string {
	day := p.Day.Stem
	mb := int(p.Month.Branch)

	sunMoon := byte('S')
	if day.Polarity() == ganji.Yin {
		sunMoon = 'M'
	}
	if p.Day == (ganji.Pair{Stem: ganji.StemJeong, Branch: ganji.BranchSa}) {
		sunMoon = 'S'
	}

	return fmt.Sprintf("%c%c%c%c-%c",
		sunMoon,
		directRelational[day][mb],
		feelingThinking[day][mb],
		plannedOpen[day][mb],
		warmHard[day][mb],
	)
}
