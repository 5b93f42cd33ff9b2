package service

import (
	"context"
	"fmt"
	"time"

	"saju/internal/chart/models"
	"saju/internal/ganji"
	"saju/internal/solarterm"
	dErrors "saju/pkg/domain-errors"
)

const majorLuckEntries = 10

// majorLuck derives the start age, walk direction, and the ten-entry decade
// cycle. Yang year stem with a male subject (or yin with female) walks the
// cycle forward; otherwise backward.
func (c *calculation) majorLuck(ctx context.Context) (int, bool, []models.MajorLuck, error) {
	yp, err := c.yearPillar(ctx)
	if err != nil {
		return 0, false, nil, err
	}
	mp, err := c.monthPillar(ctx)
	if err != nil {
		return 0, false, nil, err
	}

	forward := (yp.Stem.Polarity() == ganji.Yang) == (c.birth.Gender() == models.GenderMale)

	// Distance to the nearest month boundary in the walk direction, counted
	// in calendar dates rather than elapsed hours; three days count as one
	// year, each leftover day as four months, and six or more months round
	// up.
	var days int
	if forward {
		next, err := c.svc.terms.EarliestAfter(ctx, solarterm.KindJeolgi, c.normalized)
		if err != nil {
			return 0, false, nil, c.svc.termLookupErr(err, "no solar term follows the birth instant")
		}
		days = dateDiffDays(c.normalized, next.At.In(c.normalized.Location()))
	} else {
		prev, err := c.svc.terms.LatestBefore(ctx, solarterm.KindJeolgi, c.normalized)
		if err != nil {
			return 0, false, nil, c.svc.termLookupErr(err, "no solar term precedes the birth instant")
		}
		days = dateDiffDays(prev.At.In(c.normalized.Location()), c.normalized)
	}
	startAge := days / 3
	if (days%3)*4 >= 6 {
		startAge++
	}

	day := c.dayPillar()
	entries := make([]models.MajorLuck, 0, majorLuckEntries)
	pair := mp
	for i := 0; i < majorLuckEntries; i++ {
		if forward {
			pair = pair.Next()
		} else {
			pair = pair.Prev()
		}
		entries = append(entries, models.MajorLuck{
			Age:    startAge + i*10,
			Stem:   luckStem(day.Stem, pair.Stem),
			Branch: luckBranch(day, pair.Branch),
		})
	}
	return startAge, forward, entries, nil
}

// AnnualLuck derives the luck entries for count calendar years starting at
// fromYear, judged against the birth's day pillar.
func (s *Service) AnnualLuck(ctx context.Context, birth models.BirthRecord, fromYear, count int) ([]models.AnnualLuck, error) {
	if count < 1 || count > 120 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "count must be between 1 and 120")
	}
	s.metrics.IncrementLuckQueries("annual")

	day := s.newCalculation(birth).dayPillar()
	out := make([]models.AnnualLuck, 0, count)
	for year := fromYear; year < fromYear+count; year++ {
		pair := ganji.PairAt(year - epochYear)
		out = append(out, models.AnnualLuck{
			Year:   year,
			Stem:   luckStem(day.Stem, pair.Stem),
			Branch: luckBranch(day, pair.Branch),
		})
	}
	return out, nil
}

// MonthlyLuck derives the twelve solar-month entries of one calendar year,
// each anchored at the instant of the term that opens it.
func (s *Service) MonthlyLuck(ctx context.Context, birth models.BirthRecord, year int) ([]models.MonthlyLuck, error) {
	s.metrics.IncrementLuckQueries("monthly")

	events, err := s.terms.AllOfKindInYear(ctx, solarterm.KindJeolgi, year)
	if err != nil {
		return nil, s.termLookupErr(err, fmt.Sprintf("solar terms for year %d unavailable", year))
	}
	if len(events) == 0 {
		return nil, s.termLookupErr(solarterm.ErrNotFound, fmt.Sprintf("solar terms for year %d unavailable", year))
	}

	monthOf := make(map[string]int, len(solarterm.JeolgiOrder))
	for i, name := range solarterm.JeolgiOrder {
		monthOf[name] = i + 1
	}

	yearStem := ganji.Stem(floorMod(year-epochYear, ganji.StemCount))
	first := firstMonthStem[yearStem]
	day := s.newCalculation(birth).dayPillar()

	out := make([]models.MonthlyLuck, 0, len(events))
	for _, ev := range events {
		branch, ok := solarterm.JeolgiBranch[ev.Name]
		if !ok {
			continue
		}
		order := floorMod(int(branch)-int(ganji.BranchIn), ganji.BranchCount)
		stem := ganji.Stem(floorMod(int(first)+order, ganji.StemCount))
		out = append(out, models.MonthlyLuck{
			Month:   monthOf[ev.Name],
			Jeolgi:  ev.Name,
			StartAt: ev.At,
			Stem:    luckStem(day.Stem, stem),
			Branch:  luckBranch(day, branch),
		})
	}
	return out, nil
}

// DailyPillars derives the day pillar for count civil dates starting at
// from, judged against the birth's day pillar.
func (s *Service) DailyPillars(ctx context.Context, birth models.BirthRecord, from time.Time, count int) ([]models.DailyPillar, error) {
	if count < 1 || count > 366 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "count must be between 1 and 366")
	}
	s.metrics.IncrementLuckQueries("daily")

	day := s.newCalculation(birth).dayPillar()
	y, m, d := from.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	out := make([]models.DailyPillar, 0, count)
	for i := 0; i < count; i++ {
		days := int(date.Sub(epochDay).Hours() / 24)
		pair := ganji.PairAt(days)
		out = append(out, models.DailyPillar{
			Date:   date.Format("2006-01-02"),
			Stem:   luckStem(day.Stem, pair.Stem),
			Branch: luckBranch(day, pair.Branch),
		})
		date = date.AddDate(0, 0, 1)
	}
	return out, nil
}

// dateDiffDays counts the calendar dates between from and to, ignoring the
// time of day on both ends.
func dateDiffDays(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func luckStem(dayStem, stem ganji.Stem) models.LuckStem {
	return models.LuckStem{
		Name:         stem.Hangul(),
		FiveElements: stem.Element().String(),
		YinYang:      stem.Polarity().String(),
		TenGod:       ganji.TenGodOf(dayStem, stem).String(),
	}
}

// luckBranch judges a luck branch against the birth day pillar: ten god from
// the branch's main stem, life stage from the day stem, and the twelve-star
// lookup from the day branch.
func luckBranch(day ganji.Pair, branch ganji.Branch) models.LuckBranch {
	return models.LuckBranch{
		Name:         branch.Hangul(),
		FiveElements: branch.Element().String(),
		YinYang:      branch.Polarity().String(),
		TenGod:       ganji.TenGodOf(day.Stem, branch.MainStem()).String(),
		TwelveStage:  ganji.LifeStageOf(day.Stem, branch).String(),
		TwelveSinSal: ganji.TriadStarOf(day.Branch, branch).String(),
	}
}
