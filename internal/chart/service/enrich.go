package service

import (
	"context"
	"time"

	"saju/internal/chart/models"
	"saju/internal/ganji"
	"saju/internal/ganji/stars"
)

// Compute derives the full chart for one birth.
func (s *Service) Compute(ctx context.Context, birth models.BirthRecord) (models.Chart, error) {
	start := time.Now()

	c := s.newCalculation(birth)
	p, err := c.pillars(ctx)
	if err != nil {
		return models.Chart{}, err
	}

	startAge, forward, luckSet, err := c.majorLuck(ctx)
	if err != nil {
		return models.Chart{}, err
	}

	five, yinYang := tallies(p)
	chart := models.Chart{
		SPTI:              personalityCode(p),
		StemBranch:        buildPillarSet(p),
		FiveElements:      five,
		YinYang:           yinYang,
		MajorLuckStartAge: startAge,
		IsForward:         forward,
		MajorLuckSet:      luckSet,
	}

	s.metrics.IncrementChartsComputed()
	s.metrics.ObserveComputeDuration(time.Since(start))
	s.logger.DebugContext(ctx, "chart computed",
		"day_pillar", p.Day.String(),
		"spti", chart.SPTI,
		"duration", time.Since(start),
	)
	return chart, nil
}

var positions = [4]stars.Position{stars.Hour, stars.Day, stars.Month, stars.Year}

func pairAt(p stars.Pillars, pos stars.Position) ganji.Pair {
	switch pos {
	case stars.Hour:
		return p.Hour
	case stars.Day:
		return p.Day
	case stars.Month:
		return p.Month
	default:
		return p.Year
	}
}

func buildPillarSet(p stars.Pillars) models.PillarSet {
	return models.PillarSet{
		Hour:  buildPillar(p, stars.Hour),
		Day:   buildPillar(p, stars.Day),
		Month: buildPillar(p, stars.Month),
		Year:  buildPillar(p, stars.Year),
	}
}

func buildPillar(p stars.Pillars, pos stars.Position) models.Pillar {
	pair := pairAt(p, pos)
	day := p.Day.Stem

	stem := models.StemAttributes{
		Name:         pair.Stem.String(),
		FiveElements: pair.Stem.Element().String(),
		YinYang:      pair.Stem.Polarity().String(),
		TenGod:       ganji.TenGodOf(day, pair.Stem).String(),
		SinSal:       stars.Evaluate(p, stars.Slot{Position: pos, Part: stars.PartStem}),
	}

	hs := pair.Branch.HiddenStems()
	hidden := models.HiddenStems{
		Residual: models.HiddenStemEntry{Name: hs.Residual.Stem.Hangul(), Value: hs.Residual.Weight},
		Primary:  models.HiddenStemEntry{Name: hs.Primary.Stem.Hangul(), Value: hs.Primary.Weight},
	}
	if hs.Middle != nil {
		hidden.Middle = &models.HiddenStemEntry{Name: hs.Middle.Stem.Hangul(), Value: hs.Middle.Weight}
	}

	branch := models.BranchAttributes{
		Name:         pair.Branch.String(),
		FiveElements: pair.Branch.Element().String(),
		YinYang:      pair.Branch.Polarity().String(),
		TenGod:       ganji.TenGodOf(day, pair.Branch.MainStem()).String(),
		HiddenStem:   hidden,
		TwelveStage:  ganji.LifeStageOf(day, pair.Branch).String(),
		TwelveSinSal: ganji.TriadStarOf(triadReference(p, pos), pair.Branch).String(),
		SinSal:       stars.Evaluate(p, stars.Slot{Position: pos, Part: stars.PartBranch}),
	}

	return models.Pillar{Stem: stem, Branch: branch}
}

// triadReference picks the branch the twelve-star lookup is judged from: the
// year branch for the hour, day, and month pillars, and the day branch for
// the year pillar itself.
func triadReference(p stars.Pillars, pos stars.Position) ganji.Branch {
	if pos == stars.Year {
		return p.Day.Branch
	}
	return p.Year.Branch
}

// tallies counts five elements and polarities over all eight symbols. Every
// key is present even at zero.
func tallies(p stars.Pillars) (map[string]int, map[string]int) {
	five := make(map[string]int, 5)
	for e := ganji.Wood; e <= ganji.Water; e++ {
		five[e.String()] = 0
	}
	yinYang := map[string]int{
		ganji.Yang.String(): 0,
		ganji.Yin.String():  0,
	}
	for _, pos := range positions {
		pair := pairAt(p, pos)
		five[pair.Stem.Element().String()]++
		five[pair.Branch.Element().String()]++
		yinYang[pair.Stem.Polarity().String()]++
		yinYang[pair.Branch.Polarity().String()]++
	}
	return five, yinYang
}
