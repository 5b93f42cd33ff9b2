// Package solarterm defines the solar-term event model and the provider
// interface the chart engine consumes. The engine never owns persistence; it
// only issues the three queries below against an injected Provider.
package solarterm

import (
	"context"
	"errors"
	"time"

	"saju/internal/ganji"
)

// Kind classifies events. Only JEOLGI (the twelve month-boundary terms) is
// consulted by the engine; mid-point terms are not stored under this kind.
type Kind string

// KindJeolgi is the month-boundary term kind.
const KindJeolgi Kind = "JEOLGI"

// Jeolgi names as stored in the dataset.
const (
	Sohan        = "소한"
	Ipchun       = "입춘"
	Gyeongchip   = "경칩"
	Cheongmyeong = "청명"
	Ipha         = "입하"
	Mangjong     = "망종"
	Soseo        = "소서"
	Ipchu        = "입추"
	Baengno      = "백로"
	Hanno        = "한로"
	Ipdong       = "입동"
	Daeseol      = "대설"
)

// JeolgiOrder lists the twelve terms in traditional month order (month 1 is
// 소한, the term opening the 축 month).
var JeolgiOrder = []string{
	Sohan, Ipchun, Gyeongchip, Cheongmyeong, Ipha, Mangjong,
	Soseo, Ipchu, Baengno, Hanno, Ipdong, Daeseol,
}

// JeolgiBranch maps each term to the month branch it opens.
var JeolgiBranch = map[string]ganji.Branch{
	Sohan:        ganji.BranchChuk,
	Ipchun:       ganji.BranchIn,
	Gyeongchip:   ganji.BranchMyo,
	Cheongmyeong: ganji.BranchJin,
	Ipha:         ganji.BranchSa,
	Mangjong:     ganji.BranchO,
	Soseo:        ganji.BranchMi,
	Ipchu:        ganji.BranchSin,
	Baengno:      ganji.BranchYu,
	Hanno:        ganji.BranchSul,
	Ipdong:       ganji.BranchHae,
	Daeseol:      ganji.BranchJa,
}

// Event is one solar-term occurrence.
type Event struct {
	Name string    `json:"name"`
	Kind Kind      `json:"kind"`
	At   time.Time `json:"at"`
}

// ErrNotFound is returned when a query matches no event. Callers treat this
// as missing reference data, never as a default.
var ErrNotFound = errors.New("solarterm: no matching event")

// Provider supplies ordered solar-term events. Years are bucketed by the
// event timestamp in UTC.
type Provider interface {
	// LatestBefore returns the latest event of kind strictly before at.
	LatestBefore(ctx context.Context, kind Kind, at time.Time) (Event, error)
	// EarliestAfter returns the earliest event of kind strictly after at.
	EarliestAfter(ctx context.Context, kind Kind, at time.Time) (Event, error)
	// AllOfKindInYear returns every event of kind in the UTC year, ordered
	// by timestamp.
	AllOfKindInYear(ctx context.Context, kind Kind, year int) ([]Event, error)
}
