// Package models defines the chart engine's request and response types.
package models

import (
	"fmt"
	"math"
	"time"

	dErrors "saju/pkg/domain-errors"
)

// Gender of the subject. Direction of the major-luck walk depends on it.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Supported birth window. The bounds are the first and last solar terms in
// the reference dataset; instants outside it cannot be normalized reliably.
var (
	BirthMin = time.Date(1900, time.January, 5, 8, 36, 0, 0, time.UTC)
	BirthMax = time.Date(2100, time.December, 21, 19, 50, 0, 0, time.UTC)
)

// BirthRecord is a validated birth input. Construct it with NewBirthRecord;
// the zero value is not usable.
type BirthRecord struct {
	at        time.Time
	gender    Gender
	longitude float64
}

// NewBirthRecord validates the raw inputs and returns an immutable record.
// The birth instant must carry its civil zone offset; longitude is in
// degrees east, rounded to the nearest degree.
func NewBirthRecord(at time.Time, gender Gender, longitude float64) (BirthRecord, error) {
	if at.IsZero() {
		return BirthRecord{}, dErrors.New(dErrors.CodeBadRequest, "birth time is required")
	}
	if at.Before(BirthMin) || at.After(BirthMax) {
		return BirthRecord{}, dErrors.New(dErrors.CodeBadRequest,
			fmt.Sprintf("birth time must be between %s and %s",
				BirthMin.Format(time.RFC3339), BirthMax.Format(time.RFC3339)))
	}
	if gender != GenderMale && gender != GenderFemale {
		return BirthRecord{}, dErrors.New(dErrors.CodeBadRequest, "gender must be male or female")
	}
	if longitude < -180 || longitude > 180 {
		return BirthRecord{}, dErrors.New(dErrors.CodeBadRequest, "longitude must be between -180 and 180")
	}
	return BirthRecord{at: at, gender: gender, longitude: math.Round(longitude)}, nil
}

// At returns the birth instant as given, zone offset included.
func (b BirthRecord) At() time.Time { return b.at }

// Gender returns the subject's gender.
func (b BirthRecord) Gender() Gender { return b.gender }

// Longitude returns the birth longitude in whole degrees east.
func (b BirthRecord) Longitude() float64 { return b.longitude }
