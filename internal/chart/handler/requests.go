package handler

import (
	"time"

	"saju/internal/chart/models"
	dErrors "saju/pkg/domain-errors"
)

// BirthRequest is the wire form of a birth, embedded in every chart and luck
// request. birth_at must be RFC 3339 and carry the civil zone offset.
type BirthRequest struct {
	BirthAt   string  `json:"birth_at"`
	Gender    string  `json:"gender"`
	Longitude float64 `json:"longitude"`
}

// Record validates the request into a BirthRecord.
func (r BirthRequest) Record() (models.BirthRecord, error) {
	at, err := time.Parse(time.RFC3339, r.BirthAt)
	if err != nil {
		return models.BirthRecord{}, dErrors.New(dErrors.CodeBadRequest,
			"birth_at must be an RFC 3339 timestamp with zone offset")
	}
	return models.NewBirthRecord(at, models.Gender(r.Gender), r.Longitude)
}

// ChartRequest asks for a full chart.
type ChartRequest struct {
	Birth BirthRequest `json:"birth"`
}

// AnnualLuckRequest asks for yearly luck entries. Count defaults to 10.
type AnnualLuckRequest struct {
	Birth    BirthRequest `json:"birth"`
	FromYear int          `json:"from_year"`
	Count    int          `json:"count"`
}

// MonthlyLuckRequest asks for the twelve solar months of one year.
type MonthlyLuckRequest struct {
	Birth BirthRequest `json:"birth"`
	Year  int          `json:"year"`
}

// DailyPillarsRequest asks for day pillars from a civil date. Count defaults
// to 30.
type DailyPillarsRequest struct {
	Birth    BirthRequest `json:"birth"`
	FromDate string       `json:"from_date"`
	Count    int          `json:"count"`
}

func (r DailyPillarsRequest) From() (time.Time, error) {
	from, err := time.Parse("2006-01-02", r.FromDate)
	if err != nil {
		return time.Time{}, dErrors.New(dErrors.CodeBadRequest, "from_date must be formatted YYYY-MM-DD")
	}
	return from, nil
}
