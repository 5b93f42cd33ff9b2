package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"saju/internal/chart/models"
	"saju/internal/ganji"
	"saju/internal/ganji/stars"
	"saju/internal/solarterm"
	dErrors "saju/pkg/domain-errors"
)

// Sexagenary epochs: 1924 opened a stem-branch cycle for years, and
// 1924-02-15 did for days.
const epochYear = 1924

var epochDay = time.Date(1924, time.February, 15, 0, 0, 0, 0, time.UTC)

// firstMonthStem gives the stem of the 인 month for each year stem.
var firstMonthStem = map[ganji.Stem]ganji.Stem{
	ganji.StemGap:    ganji.StemByeong,
	ganji.StemGi:     ganji.StemByeong,
	ganji.StemEul:    ganji.StemMu,
	ganji.StemGyeong: ganji.StemMu,
	ganji.StemByeong: ganji.StemGyeong,
	ganji.StemSin:    ganji.StemGyeong,
	ganji.StemJeong:  ganji.StemIm,
	ganji.StemIm:     ganji.StemIm,
	ganji.StemMu:     ganji.StemGap,
	ganji.StemGye:    ganji.StemGap,
}

// zeroHourStem gives the stem of the 자 hour for each day stem.
var zeroHourStem = map[ganji.Stem]ganji.Stem{
	ganji.StemGap:    ganji.StemGap,
	ganji.StemGi:     ganji.StemGap,
	ganji.StemEul:    ganji.StemByeong,
	ganji.StemGyeong: ganji.StemByeong,
	ganji.StemByeong: ganji.StemMu,
	ganji.StemSin:    ganji.StemMu,
	ganji.StemJeong:  ganji.StemGyeong,
	ganji.StemIm:     ganji.StemGyeong,
	ganji.StemMu:     ganji.StemIm,
	ganji.StemGye:    ganji.StemIm,
}

// calculation memoizes the four pillars of one birth so the derivations
// that follow (attributes, luck cycles, personality code) never recompute
// them. A calculation is single-use and not safe for concurrent use.
type calculation struct {
	svc        *Service
	birth      models.BirthRecord
	normalized time.Time

	year  *ganji.Pair
	month *ganji.Pair
	day   *ganji.Pair
	hour  *ganji.Pair
}

func (s *Service) newCalculation(birth models.BirthRecord) *calculation {
	return &calculation{
		svc:        s,
		birth:      birth,
		normalized: normalizedInstant(birth.At(), birth.Longitude()),
	}
}

// termLookupErr classifies a solar-term provider failure. A miss means the
// dataset does not cover the queried range.
func (s *Service) termLookupErr(err error, msg string) error {
	if errors.Is(err, solarterm.ErrNotFound) {
		s.metrics.IncrementTermLookupFailures()
		return dErrors.Wrap(err, dErrors.CodeUnavailable, msg)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}

// yearPillar derives the year pair. The astrological year begins at 입춘 of
// the civil year; a birth at or before that instant belongs to the previous
// year. The raw civil birth time is compared here, not the normalized one.
func (c *calculation) yearPillar(ctx context.Context) (ganji.Pair, error) {
	if c.year != nil {
		return *c.year, nil
	}

	civil := c.birth.At().Year()
	events, err := c.svc.terms.AllOfKindInYear(ctx, solarterm.KindJeolgi, civil)
	if err != nil {
		return ganji.Pair{}, c.svc.termLookupErr(err, fmt.Sprintf("solar terms for year %d unavailable", civil))
	}
	var ipchun *solarterm.Event
	for i := range events {
		if events[i].Name == solarterm.Ipchun {
			ipchun = &events[i]
			break
		}
	}
	if ipchun == nil {
		return ganji.Pair{}, c.svc.termLookupErr(solarterm.ErrNotFound,
			fmt.Sprintf("입춘 missing from year %d dataset", civil))
	}

	year := civil
	if !ipchun.At.Before(c.birth.At()) {
		year--
	}
	diff := year - epochYear
	p := ganji.Pair{
		Stem:   ganji.Stem(floorMod(diff, ganji.StemCount)),
		Branch: ganji.Branch(floorMod(diff, ganji.BranchCount)),
	}
	c.year = &p
	return p, nil
}

// monthPillar derives the month pair from the latest term strictly before
// the normalized instant. The stem walks forward from the year's 인-month
// stem.
func (c *calculation) monthPillar(ctx context.Context) (ganji.Pair, error) {
	if c.month != nil {
		return *c.month, nil
	}

	yp, err := c.yearPillar(ctx)
	if err != nil {
		return ganji.Pair{}, err
	}
	ev, err := c.svc.terms.LatestBefore(ctx, solarterm.KindJeolgi, c.normalized)
	if err != nil {
		return ganji.Pair{}, c.svc.termLookupErr(err, "no solar term precedes the birth instant")
	}
	branch, ok := solarterm.JeolgiBranch[ev.Name]
	if !ok {
		return ganji.Pair{}, dErrors.New(dErrors.CodeInternal,
			fmt.Sprintf("unrecognized solar term %q", ev.Name))
	}

	order := floorMod(int(branch)-int(ganji.BranchIn), ganji.BranchCount)
	stem := ganji.Stem(floorMod(int(firstMonthStem[yp.Stem])+order, ganji.StemCount))
	p := ganji.Pair{Stem: stem, Branch: branch}
	c.month = &p
	return p, nil
}

// dayPillar derives the day pair by counting civil days of the normalized
// instant since the epoch day. The 자 hour straddles midnight: from 23:00 the
// pillar already belongs to the next day.
func (c *calculation) dayPillar() ganji.Pair {
	if c.day != nil {
		return *c.day
	}

	y, m, d := c.normalized.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if c.normalized.Hour() == 23 {
		date = date.AddDate(0, 0, 1)
	}
	days := int(date.Sub(epochDay).Hours() / 24)
	p := ganji.PairAt(days)
	c.day = &p
	return p
}

// hourPillar derives the hour pair: two-hour buckets starting at 23:00 give
// the branch, and the stem walks forward from the day's 자-hour stem.
func (c *calculation) hourPillar() ganji.Pair {
	if c.hour != nil {
		return *c.hour
	}

	day := c.dayPillar()
	branch := ganji.Branch(((c.normalized.Hour() + 1) / 2) % ganji.BranchCount)
	stem := ganji.Stem((int(zeroHourStem[day.Stem]) + int(branch)) % ganji.StemCount)
	p := ganji.Pair{Stem: stem, Branch: branch}
	c.hour = &p
	return p
}

// pillars assembles all four pairs.
func (c *calculation) pillars(ctx context.Context) (stars.Pillars, error) {
	yp, err := c.yearPillar(ctx)
	if err != nil {
		return stars.Pillars{}, err
	}
	mp, err := c.monthPillar(ctx)
	if err != nil {
		return stars.Pillars{}, err
	}
	return stars.Pillars{
		Hour:  c.hourPillar(),
		Day:   c.dayPillar(),
		Month: mp,
		Year:  yp,
	}, nil
}

// floorMod is the non-negative remainder of n modulo m.
func floorMod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}
