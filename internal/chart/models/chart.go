package models

import "time"

// HiddenStemEntry is one hidden stem inside a branch, with its weight out
// of the branch total of 30.
type HiddenStemEntry struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// HiddenStems lists a branch's hidden stems. Middle is absent for branches
// that carry only two.
type HiddenStems struct {
	Residual HiddenStemEntry  `json:"residual"`
	Middle   *HiddenStemEntry `json:"middle"`
	Primary  HiddenStemEntry  `json:"primary"`
}

// StemAttributes describes one pillar's stem.
type StemAttributes struct {
	Name         string   `json:"name"`
	FiveElements string   `json:"five_elements"`
	YinYang      string   `json:"yin_yang"`
	TenGod       string   `json:"ten_god"`
	SinSal       []string `json:"sin_sal"`
}

// BranchAttributes describes one pillar's branch. TenGod is derived from
// the branch's primary hidden stem.
type BranchAttributes struct {
	Name         string      `json:"name"`
	FiveElements string      `json:"five_elements"`
	YinYang      string      `json:"yin_yang"`
	TenGod       string      `json:"ten_god"`
	HiddenStem   HiddenStems `json:"hidden_stem"`
	TwelveStage  string      `json:"twelve_stage"`
	TwelveSinSal string      `json:"twelve_sin_sal"`
	SinSal       []string    `json:"sin_sal"`
}

// Pillar pairs a stem and branch with their derived attributes.
type Pillar struct {
	Stem   StemAttributes   `json:"stem"`
	Branch BranchAttributes `json:"branch"`
}

// PillarSet holds the four pillars of a chart.
type PillarSet struct {
	Hour  Pillar `json:"hour"`
	Day   Pillar `json:"day"`
	Month Pillar `json:"month"`
	Year  Pillar `json:"year"`
}

// LuckStem describes the stem of a luck-cycle entry.
type LuckStem struct {
	Name         string `json:"name"`
	FiveElements string `json:"five_elements"`
	YinYang      string `json:"yin_yang"`
	TenGod       string `json:"ten_god"`
}

// LuckBranch describes the branch of a luck-cycle entry.
type LuckBranch struct {
	Name         string `json:"name"`
	FiveElements string `json:"five_elements"`
	YinYang      string `json:"yin_yang"`
	TenGod       string `json:"ten_god"`
	TwelveStage  string `json:"twelve_stage"`
	TwelveSinSal string `json:"twelve_sin_sal"`
}

// MajorLuck is one ten-year luck entry.
type MajorLuck struct {
	Age    int        `json:"age"`
	Stem   LuckStem   `json:"stem"`
	Branch LuckBranch `json:"branch"`
}

// AnnualLuck is the luck entry for one calendar year.
type AnnualLuck struct {
	Year   int        `json:"year"`
	Stem   LuckStem   `json:"stem"`
	Branch LuckBranch `json:"branch"`
}

// MonthlyLuck is the luck entry for one solar month. StartAt is the instant
// of the term that opens the month.
type MonthlyLuck struct {
	Month   int        `json:"month"`
	Jeolgi  string     `json:"jeolgi"`
	StartAt time.Time  `json:"start_at"`
	Stem    LuckStem   `json:"stem"`
	Branch  LuckBranch `json:"branch"`
}

// DailyPillar is the day pillar for one civil date.
type DailyPillar struct {
	Date   string     `json:"date"`
	Stem   LuckStem   `json:"stem"`
	Branch LuckBranch `json:"branch"`
}

// Chart is the full derived chart.
type Chart struct {
	SPTI              string         `json:"spti"`
	StemBranch        PillarSet      `json:"stem_branch"`
	FiveElements      map[string]int `json:"five_elements"`
	YinYang           map[string]int `json:"yin_yang"`
	MajorLuckStartAge int            `json:"major_luck_start_age"`
	IsForward         bool           `json:"is_forward"`
	MajorLuckSet      []MajorLuck    `json:"major_luck_set"`
}
