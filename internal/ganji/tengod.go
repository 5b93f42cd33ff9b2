package ganji

// TenGod is the relationship label between the day stem and another stem.
// Five element relations, each split in two by polarity match, give the ten
// labels.
type TenGod int

const (
	Bigyeon   TenGod = iota // 비견: same element, same polarity
	Geopjae                 // 겁재: same element, opposing polarity
	Siksin                  // 식신: element the day stem generates, same polarity
	Sanggwan                // 상관: element the day stem generates, opposing polarity
	Pyeonjae                // 편재: element the day stem overcomes, same polarity
	Jeongjae                // 정재: element the day stem overcomes, opposing polarity
	Pyeongwan               // 편관: element overcoming the day stem, same polarity
	Jeonggwan               // 정관: element overcoming the day stem, opposing polarity
	Pyeonin                 // 편인: element generating the day stem, same polarity
	Jeongin                 // 정인: element generating the day stem, opposing polarity
)

var tenGodNames = [...]string{
	"비견", "겁재", "식신", "상관", "편재", "정재", "편관", "정관", "편인", "정인",
}

func (g TenGod) String() string { return tenGodNames[g] }

// MarshalText renders the ten-god by its Korean label.
func (g TenGod) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// TenGodOf classifies target relative to the day stem. The relation is not
// symmetric: the day stem is always the point of reference.
func TenGodOf(day, target Stem) TenGod {
	dayElem, targetElem := day.Element(), target.Element()
	samePolarity := day.Polarity() == target.Polarity()

	var base TenGod
	switch {
	case targetElem == dayElem:
		base = Bigyeon
	case targetElem == dayElem.Generates():
		base = Siksin
	case targetElem == dayElem.Overcomes():
		base = Pyeonjae
	case dayElem == targetElem.Overcomes():
		base = Pyeongwan
	default: // targetElem generates dayElem
		base = Pyeonin
	}

	if samePolarity {
		return base
	}
	return base + 1
}
