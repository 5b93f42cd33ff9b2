package service

import "time"

// normalizedInstant converts the civil birth time to true local solar time:
// strip any daylight-saving shift, then correct for the distance between the
// birth longitude and the zone's standard meridian at four minutes per
// degree.
func normalizedInstant(at time.Time, longitude float64) time.Time {
	_, offset := at.Zone()
	dst := dstOffset(at)
	stdMeridian := float64(offset-dst) / 3600 * 15
	correction := time.Duration((longitude - stdMeridian) * 4 * float64(time.Minute))
	return at.Add(-time.Duration(dst) * time.Second).Add(correction)
}

// dstOffset reports the daylight-saving component of at's zone offset, in
// seconds. The standard offset is taken as the smaller of the zone's January
// and July offsets, which holds in both hemispheres.
func dstOffset(at time.Time) int {
	loc := at.Location()
	_, jan := time.Date(at.Year(), time.January, 15, 0, 0, 0, 0, loc).Zone()
	_, jul := time.Date(at.Year(), time.July, 15, 0, 0, 0, 0, loc).Zone()
	std := jan
	if jul < std {
		std = jul
	}
	_, cur := at.Zone()
	return cur - std
}
