package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"saju/internal/chart/models"
	"saju/internal/solarterm"
	"saju/internal/solarterm/store"
	dErrors "saju/pkg/domain-errors"
)

// =============================================================================
// Chart Service Test Suite
// =============================================================================
// The engine's value is in its calendrical edge cases: the 입춘 year boundary,
// the 23:00 day roll, and the longitude correction. These are pinned here
// against a hand-verified chart.

var kst = time.FixedZone("KST", 9*3600)

func jeolgi(name string, at time.Time) solarterm.Event {
	return solarterm.Event{Name: name, Kind: solarterm.KindJeolgi, At: at}
}

// fixtureTerms covers late 1996 through 1997.
func fixtureTerms() *store.Memory {
	return store.NewMemory(
		jeolgi(solarterm.Daeseol, time.Date(1996, 12, 7, 4, 14, 0, 0, kst)),
		jeolgi(solarterm.Sohan, time.Date(1997, 1, 5, 15, 24, 0, 0, kst)),
		jeolgi(solarterm.Ipchun, time.Date(1997, 2, 4, 3, 2, 0, 0, kst)),
		jeolgi(solarterm.Gyeongchip, time.Date(1997, 3, 5, 21, 5, 0, 0, kst)),
		jeolgi(solarterm.Cheongmyeong, time.Date(1997, 4, 5, 2, 2, 0, 0, kst)),
		jeolgi(solarterm.Ipha, time.Date(1997, 5, 5, 19, 19, 0, 0, kst)),
		jeolgi(solarterm.Mangjong, time.Date(1997, 6, 5, 23, 33, 0, 0, kst)),
		jeolgi(solarterm.Soseo, time.Date(1997, 7, 7, 9, 49, 0, 0, kst)),
		jeolgi(solarterm.Ipchu, time.Date(1997, 8, 7, 19, 36, 0, 0, kst)),
		jeolgi(solarterm.Baengno, time.Date(1997, 9, 7, 22, 29, 0, 0, kst)),
		jeolgi(solarterm.Hanno, time.Date(1997, 10, 8, 14, 5, 0, 0, kst)),
		jeolgi(solarterm.Ipdong, time.Date(1997, 11, 7, 17, 15, 0, 0, kst)),
		jeolgi(solarterm.Daeseol, time.Date(1997, 12, 7, 10, 5, 0, 0, kst)),
	)
}

type ChartServiceSuite struct {
	suite.Suite
	service *Service
}

func TestChartServiceSuite(t *testing.T) {
	suite.Run(t, new(ChartServiceSuite))
}

func (s *ChartServiceSuite) SetupTest() {
	var err error
	s.service, err = New(fixtureTerms())
	s.Require().NoError(err)
}

func (s *ChartServiceSuite) birth(at time.Time, gender models.Gender, lon float64) models.BirthRecord {
	birth, err := models.NewBirthRecord(at, gender, lon)
	s.Require().NoError(err)
	return birth
}

func (s *ChartServiceSuite) TestNew() {
	s.Run("nil provider returns error", func() {
		_, err := New(nil)
		s.Error(err)
		s.Contains(err.Error(), "provider is required")
	})
}

// =============================================================================
// Reference Chart
// =============================================================================

// Male, 1997-01-01 12:30 KST at longitude 127. The normalized instant is
// 11:58 and the four pillars read 戊午 / 癸卯 / 庚子 / 丙子.
func (s *ChartServiceSuite) referenceChart() models.Chart {
	birth := s.birth(time.Date(1997, 1, 1, 12, 30, 0, 0, kst), models.GenderMale, 127)
	chart, err := s.service.Compute(context.Background(), birth)
	s.Require().NoError(err)
	return chart
}

func (s *ChartServiceSuite) TestReferencePillars() {
	chart := s.referenceChart()
	set := chart.StemBranch

	s.Equal("戊", set.Hour.Stem.Name)
	s.Equal("午", set.Hour.Branch.Name)
	s.Equal("癸", set.Day.Stem.Name)
	s.Equal("卯", set.Day.Branch.Name)
	s.Equal("庚", set.Month.Stem.Name)
	s.Equal("子", set.Month.Branch.Name)
	s.Equal("丙", set.Year.Stem.Name)
	s.Equal("子", set.Year.Branch.Name)
}

func (s *ChartServiceSuite) TestReferenceAttributes() {
	chart := s.referenceChart()
	set := chart.StemBranch

	s.Run("ten gods", func() {
		s.Equal("정관", set.Hour.Stem.TenGod)
		s.Equal("비견", set.Day.Stem.TenGod)
		s.Equal("정인", set.Month.Stem.TenGod)
		s.Equal("정재", set.Year.Stem.TenGod)
		s.Equal("편재", set.Hour.Branch.TenGod)
		s.Equal("식신", set.Day.Branch.TenGod)
		s.Equal("비견", set.Month.Branch.TenGod)
		s.Equal("비견", set.Year.Branch.TenGod)
	})

	s.Run("twelve stages", func() {
		s.Equal("절", set.Hour.Branch.TwelveStage)
		s.Equal("장생", set.Day.Branch.TwelveStage)
		s.Equal("건록", set.Month.Branch.TwelveStage)
		s.Equal("건록", set.Year.Branch.TwelveStage)
	})

	s.Run("twelve sin sal", func() {
		s.Equal("재살", set.Hour.Branch.TwelveSinSal)
		s.Equal("육해살", set.Day.Branch.TwelveSinSal)
		s.Equal("장성살", set.Month.Branch.TwelveSinSal)
		// The year branch alone is judged from the day branch.
		s.Equal("연살", set.Year.Branch.TwelveSinSal)
	})

	s.Run("special stars", func() {
		s.Equal([]string{"천을귀인", "현침살"}, set.Hour.Branch.SinSal)
		s.Equal([]string{"문창귀인", "학당귀인", "도화살", "현침살"}, set.Day.Branch.SinSal)
		s.Equal([]string{"도화살"}, set.Month.Branch.SinSal)
		s.Equal([]string{"월공귀인"}, set.Year.Stem.SinSal)
		s.Empty(set.Day.Stem.SinSal)
		s.NotNil(set.Day.Stem.SinSal)
	})

	s.Run("hidden stems", func() {
		hs := set.Day.Branch.HiddenStem
		s.Equal("갑", hs.Residual.Name)
		s.Equal(10, hs.Residual.Value)
		s.Nil(hs.Middle)
		s.Equal("을", hs.Primary.Name)
		s.Equal(20, hs.Primary.Value)
	})

	s.Run("tallies", func() {
		s.Equal(map[string]int{"목": 1, "화": 2, "토": 1, "금": 1, "수": 3}, chart.FiveElements)
		s.Equal(map[string]int{"양": 6, "음": 2}, chart.YinYang)
	})

	s.Run("personality code", func() {
		s.Equal("MDTO-W", chart.SPTI)
	})
}

func (s *ChartServiceSuite) TestReferenceMajorLuck() {
	chart := s.referenceChart()

	s.True(chart.IsForward)
	s.Equal(1, chart.MajorLuckStartAge)
	s.Require().Len(chart.MajorLuckSet, 10)

	first := chart.MajorLuckSet[0]
	s.Equal(1, first.Age)
	s.Equal("신", first.Stem.Name)
	s.Equal("금", first.Stem.FiveElements)
	s.Equal("음", first.Stem.YinYang)
	s.Equal("축", first.Branch.Name)
	s.Equal("토", first.Branch.FiveElements)
	s.Equal("음", first.Branch.YinYang)

	for i, entry := range chart.MajorLuckSet {
		s.Equal(1+10*i, entry.Age)
	}
	s.Equal("임", chart.MajorLuckSet[1].Stem.Name)
	s.Equal("인", chart.MajorLuckSet[1].Branch.Name)
}

// The start-age distance compares calendar dates, not elapsed hours. Born
// late on the 3rd, 소한 on the afternoon of the 5th: fewer than 48 hours
// elapse but the dates are two apart, and two leftover days make eight
// months, which rounds up to a full year.
func (s *ChartServiceSuite) TestLuckStartAgeCountsCalendarDates() {
	birth := s.birth(time.Date(1997, 1, 3, 23, 0, 0, 0, kst), models.GenderMale, 135)
	chart, err := s.service.Compute(context.Background(), birth)
	s.Require().NoError(err)

	s.True(chart.IsForward)
	s.Equal(1, chart.MajorLuckStartAge)
}

// A yang year stem with a female subject walks backward.
func (s *ChartServiceSuite) TestBackwardLuck() {
	birth := s.birth(time.Date(1997, 1, 1, 12, 30, 0, 0, kst), models.GenderFemale, 127)
	chart, err := s.service.Compute(context.Background(), birth)
	s.Require().NoError(err)

	s.False(chart.IsForward)
	// 25 full days back to 대설: eight years plus four months.
	s.Equal(8, chart.MajorLuckStartAge)
	first := chart.MajorLuckSet[0]
	s.Equal("기", first.Stem.Name)
	s.Equal("해", first.Branch.Name)
}

// =============================================================================
// Boundaries
// =============================================================================

func (s *ChartServiceSuite) TestYearBoundaryAtIpchun() {
	ipchun := time.Date(1997, 2, 4, 3, 2, 0, 0, kst)

	s.Run("birth exactly at 입춘 belongs to the previous year", func() {
		birth := s.birth(ipchun, models.GenderMale, 135)
		chart, err := s.service.Compute(context.Background(), birth)
		s.Require().NoError(err)
		s.Equal("丙", chart.StemBranch.Year.Stem.Name)
		s.Equal("子", chart.StemBranch.Year.Branch.Name)
	})

	s.Run("birth after 입춘 belongs to the new year", func() {
		birth := s.birth(ipchun.Add(time.Minute), models.GenderMale, 135)
		chart, err := s.service.Compute(context.Background(), birth)
		s.Require().NoError(err)
		s.Equal("丁", chart.StemBranch.Year.Stem.Name)
		s.Equal("丑", chart.StemBranch.Year.Branch.Name)
		// The month opened at 입춘 as well.
		s.Equal("寅", chart.StemBranch.Month.Branch.Name)
	})
}

func (s *ChartServiceSuite) TestLateHourRollsDay() {
	birth := s.birth(time.Date(1997, 1, 1, 23, 30, 0, 0, kst), models.GenderMale, 135)
	chart, err := s.service.Compute(context.Background(), birth)
	s.Require().NoError(err)

	s.Equal("甲", chart.StemBranch.Day.Stem.Name)
	s.Equal("辰", chart.StemBranch.Day.Branch.Name)
	s.Equal("甲", chart.StemBranch.Hour.Stem.Name)
	s.Equal("子", chart.StemBranch.Hour.Branch.Name)
}

func (s *ChartServiceSuite) TestLongitudeCorrectionShiftsHour() {
	// 13:15 civil time reads 미시, but longitude 127 sits 32 minutes behind
	// the 135° meridian and the corrected 12:43 is still 오시.
	birth := s.birth(time.Date(1997, 1, 1, 13, 15, 0, 0, kst), models.GenderMale, 127)
	chart, err := s.service.Compute(context.Background(), birth)
	s.Require().NoError(err)
	s.Equal("午", chart.StemBranch.Hour.Branch.Name)
}

func (s *ChartServiceSuite) TestMissingTermData() {
	svc, err := New(store.NewMemory())
	s.Require().NoError(err)
	birth := s.birth(time.Date(1997, 1, 1, 12, 30, 0, 0, kst), models.GenderMale, 127)
	_, err = svc.Compute(context.Background(), birth)
	s.Error(err)
	s.Equal(dErrors.CodeUnavailable, dErrors.CodeOf(err))
}

// Two computations of the same birth must serialize identically.
func (s *ChartServiceSuite) TestDeterministic() {
	a, err := json.Marshal(s.referenceChart())
	s.Require().NoError(err)
	b, err := json.Marshal(s.referenceChart())
	s.Require().NoError(err)
	s.Equal(a, b)
}

// =============================================================================
// Luck Queries
// =============================================================================

func (s *ChartServiceSuite) TestAnnualLuck() {
	birth := s.birth(time.Date(1997, 1, 1, 12, 30, 0, 0, kst), models.GenderMale, 127)

	entries, err := s.service.AnnualLuck(context.Background(), birth, 1997, 2)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)

	s.Equal(1997, entries[0].Year)
	s.Equal("정", entries[0].Stem.Name)
	s.Equal("화", entries[0].Stem.FiveElements)
	s.Equal("음", entries[0].Stem.YinYang)
	s.Equal("축", entries[0].Branch.Name)
	s.Equal("토", entries[0].Branch.FiveElements)
	s.Equal("음", entries[0].Branch.YinYang)
	s.Equal("편재", entries[0].Stem.TenGod)
	s.Equal("편관", entries[0].Branch.TenGod)
	s.Equal("관대", entries[0].Branch.TwelveStage)
	s.Equal("월살", entries[0].Branch.TwelveSinSal)

	s.Equal(1998, entries[1].Year)
	s.Equal("무", entries[1].Stem.Name)
	s.Equal("인", entries[1].Branch.Name)

	_, err = s.service.AnnualLuck(context.Background(), birth, 1997, 0)
	s.Error(err)
}

func (s *ChartServiceSuite) TestMonthlyLuck() {
	birth := s.birth(time.Date(1997, 1, 1, 12, 30, 0, 0, kst), models.GenderMale, 127)

	entries, err := s.service.MonthlyLuck(context.Background(), birth, 1997)
	s.Require().NoError(err)
	s.Require().Len(entries, 12)

	s.Equal(1, entries[0].Month)
	s.Equal(solarterm.Sohan, entries[0].Jeolgi)
	s.Equal("계", entries[0].Stem.Name)
	s.Equal("축", entries[0].Branch.Name)

	s.Equal(2, entries[1].Month)
	s.Equal(solarterm.Ipchun, entries[1].Jeolgi)
	s.Equal("임", entries[1].Stem.Name)
	s.Equal("인", entries[1].Branch.Name)

	s.Equal(12, entries[11].Month)
	s.Equal(solarterm.Daeseol, entries[11].Jeolgi)
	s.Equal("임", entries[11].Stem.Name)
	s.Equal("자", entries[11].Branch.Name)
}

func (s *ChartServiceSuite) TestMonthlyLuckMissingYear() {
	birth := s.birth(time.Date(1997, 1, 1, 12, 30, 0, 0, kst), models.GenderMale, 127)
	_, err := s.service.MonthlyLuck(context.Background(), birth, 2050)
	s.Error(err)
}

func (s *ChartServiceSuite) TestDailyPillars() {
	birth := s.birth(time.Date(1997, 1, 1, 12, 30, 0, 0, kst), models.GenderMale, 127)

	entries, err := s.service.DailyPillars(context.Background(), birth, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 2)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)

	// 2024-01-01 opens a sexagenary cycle.
	s.Equal("2024-01-01", entries[0].Date)
	s.Equal("갑", entries[0].Stem.Name)
	s.Equal("자", entries[0].Branch.Name)

	s.Equal("2024-01-02", entries[1].Date)
	s.Equal("을", entries[1].Stem.Name)
	s.Equal("축", entries[1].Branch.Name)
}
