package service

import (
	"testing"
	"time"
)

func TestNormalizedInstantLongitude(t *testing.T) {
	zone := time.FixedZone("KST", 9*3600)
	at := time.Date(1997, 1, 1, 12, 30, 0, 0, zone)

	got := normalizedInstant(at, 127)
	want := time.Date(1997, 1, 1, 11, 58, 0, 0, zone)
	if !got.Equal(want) {
		t.Fatalf("normalized = %v, want %v", got, want)
	}

	// On the standard meridian there is nothing to correct.
	if got := normalizedInstant(at, 135); !got.Equal(at) {
		t.Fatalf("normalized on meridian = %v, want %v", got, at)
	}
}

func TestDSTOffset(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	summer := time.Date(2020, 7, 1, 12, 0, 0, 0, loc)
	if got := dstOffset(summer); got != 3600 {
		t.Fatalf("summer dst offset = %d, want 3600", got)
	}
	winter := time.Date(2020, 1, 15, 12, 0, 0, 0, loc)
	if got := dstOffset(winter); got != 0 {
		t.Fatalf("winter dst offset = %d, want 0", got)
	}
}

func TestNormalizedInstantStripsDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// Longitude -75 is the zone's standard meridian, so the only shift is
	// the summer hour itself.
	at := time.Date(2020, 7, 1, 12, 0, 0, 0, loc)
	got := normalizedInstant(at, -75)
	if diff := at.Sub(got); diff != time.Hour {
		t.Fatalf("DST birth shifted by %v, want 1h", diff)
	}
}
