package ganji

// TriadStar is one of the twelve positional stars. The twelve branches are
// partitioned into four three-harmony triads; each triad shares one 12-star
// cycle anchored at a fixed branch.
type TriadStar int

const (
	Geopsal     TriadStar = iota // 겁살
	Jaesal                       // 재살
	Cheonsal                     // 천살
	Jisal                        // 지살
	Yeonsal                      // 연살
	Wolsal                       // 월살
	Mangsinsal                   // 망신살
	Jangseongsal                 // 장성살
	Banansal                     // 반안살
	Yeokmasal                    // 역마살
	Yukhaesal                    // 육해살
	Hwagaesal                    // 화개살
)

var triadStarNames = [...]string{
	"겁살", "재살", "천살", "지살", "연살", "월살",
	"망신살", "장성살", "반안살", "역마살", "육해살", "화개살",
}

func (t TriadStar) String() string { return triadStarNames[t] }

// MarshalText renders the star by its Korean label.
func (t TriadStar) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// triadAnchor maps every branch to the branch where its triad's 겁살 cycle
// starts: 인오술 → 해, 신자진 → 사, 사유축 → 인, 해묘미 → 신.
var triadAnchor = [BranchCount]Branch{
	BranchJa:   BranchSa,
	BranchChuk: BranchIn,
	BranchIn:   BranchHae,
	BranchMyo:  BranchSin,
	BranchJin:  BranchSa,
	BranchSa:   BranchIn,
	BranchO:    BranchHae,
	BranchMi:   BranchSin,
	BranchSin:  BranchSa,
	BranchYu:   BranchIn,
	BranchSul:  BranchHae,
	BranchHae:  BranchSin,
}

// TriadStarOf returns target's star in the cycle of the triad containing the
// reference branch (commonly the year or day branch).
func TriadStarOf(reference, target Branch) TriadStar {
	reference.check()
	target.check()
	anchor := triadAnchor[reference]
	return TriadStar(mod(int(target)-int(anchor), BranchCount))
}
