package ganji

// LifeStage is one of the twelve stages a day stem passes through across the
// branches (장생 → 양).
type LifeStage int

const (
	Jangsaeng LifeStage = iota // 장생
	Mokyok                     // 목욕
	Gwandae                    // 관대
	Geonrok                    // 건록
	Jewang                     // 제왕
	Soe                        // 쇠
	Byeongseo                  // 병
	Samang                     // 사
	Myoji                      // 묘
	Jeol                       // 절
	Tae                        // 태
	Yangyuk                    // 양
)

var lifeStageNames = [...]string{
	"장생", "목욕", "관대", "건록", "제왕", "쇠", "병", "사", "묘", "절", "태", "양",
}

func (l LifeStage) String() string { return lifeStageNames[l] }

// MarshalText renders the life stage by its Korean label.
func (l LifeStage) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// lifeStages holds one precomputed 12-entry progression per stem, indexed by
// branch. The progressions run forward for yang stems and reversed for yin
// stems; they are stored fully expanded rather than derived at runtime.
var lifeStages = [StemCount][BranchCount]LifeStage{
	StemGap: {
		BranchJa: Mokyok, BranchChuk: Gwandae, BranchIn: Geonrok, BranchMyo: Jewang,
		BranchJin: Soe, BranchSa: Byeongseo, BranchO: Samang, BranchMi: Myoji,
		BranchSin: Jeol, BranchYu: Tae, BranchSul: Yangyuk, BranchHae: Jangsaeng,
	},
	StemEul: {
		BranchJa: Byeongseo, BranchChuk: Soe, BranchIn: Jewang, BranchMyo: Geonrok,
		BranchJin: Gwandae, BranchSa: Mokyok, BranchO: Jangsaeng, BranchMi: Yangyuk,
		BranchSin: Tae, BranchYu: Jeol, BranchSul: Myoji, BranchHae: Samang,
	},
	StemByeong: {
		BranchJa: Tae, BranchChuk: Yangyuk, BranchIn: Jangsaeng, BranchMyo: Mokyok,
		BranchJin: Gwandae, BranchSa: Geonrok, BranchO: Jewang, BranchMi: Soe,
		BranchSin: Byeongseo, BranchYu: Samang, BranchSul: Myoji, BranchHae: Jeol,
	},
	StemJeong: {
		BranchJa: Jeol, BranchChuk: Myoji, BranchIn: Samang, BranchMyo: Byeongseo,
		BranchJin: Soe, BranchSa: Jewang, BranchO: Geonrok, BranchMi: Gwandae,
		BranchSin: Mokyok, BranchYu: Jangsaeng, BranchSul: Yangyuk, BranchHae: Tae,
	},
	// 화토동법: 무 follows 병, 기 follows 정.
	StemMu: {
		BranchJa: Tae, BranchChuk: Yangyuk, BranchIn: Jangsaeng, BranchMyo: Mokyok,
		BranchJin: Gwandae, BranchSa: Geonrok, BranchO: Jewang, BranchMi: Soe,
		BranchSin: Byeongseo, BranchYu: Samang, BranchSul: Myoji, BranchHae: Jeol,
	},
	StemGi: {
		BranchJa: Jeol, BranchChuk: Myoji, BranchIn: Samang, BranchMyo: Byeongseo,
		BranchJin: Soe, BranchSa: Jewang, BranchO: Geonrok, BranchMi: Gwandae,
		BranchSin: Mokyok, BranchYu: Jangsaeng, BranchSul: Yangyuk, BranchHae: Tae,
	},
	StemGyeong: {
		BranchJa: Samang, BranchChuk: Myoji, BranchIn: Jeol, BranchMyo: Tae,
		BranchJin: Yangyuk, BranchSa: Jangsaeng, BranchO: Mokyok, BranchMi: Gwandae,
		BranchSin: Geonrok, BranchYu: Jewang, BranchSul: Soe, BranchHae: Byeongseo,
	},
	StemSin: {
		BranchJa: Jangsaeng, BranchChuk: Yangyuk, BranchIn: Tae, BranchMyo: Jeol,
		BranchJin: Myoji, BranchSa: Samang, BranchO: Byeongseo, BranchMi: Soe,
		BranchSin: Jewang, BranchYu: Geonrok, BranchSul: Gwandae, BranchHae: Mokyok,
	},
	StemIm: {
		BranchJa: Jewang, BranchChuk: Soe, BranchIn: Byeongseo, BranchMyo: Samang,
		BranchJin: Myoji, BranchSa: Jeol, BranchO: Tae, BranchMi: Yangyuk,
		BranchSin: Jangsaeng, BranchYu: Mokyok, BranchSul: Gwandae, BranchHae: Geonrok,
	},
	StemGye: {
		BranchJa: Geonrok, BranchChuk: Gwandae, BranchIn: Mokyok, BranchMyo: Jangsaeng,
		BranchJin: Yangyuk, BranchSa: Tae, BranchO: Jeol, BranchMi: Myoji,
		BranchSin: Samang, BranchYu: Byeongseo, BranchSul: Soe, BranchHae: Jewang,
	},
}

// LifeStageOf returns the life stage of branch for the given day stem.
func LifeStageOf(dayStem Stem, branch Branch) LifeStage {
	dayStem.check()
	branch.check()
	return lifeStages[dayStem][branch]
}
