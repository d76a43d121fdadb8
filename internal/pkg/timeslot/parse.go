package timeslot

import "time"

const (
	layoutDateTimeSeconds = "2006-01-02 15:04:05"
	layoutDateTimeMinutes = "2006-01-02 15:04"
)

// ParseNaive parses a timestamp without a timezone marker and interprets it as
// wall-clock time in loc. Accepts "YYYY-MM-DD HH:MM:SS" and "YYYY-MM-DD HH:MM".
// Wall times that fall in a DST gap resolve to the instant ParseInLocation
// normalizes them to instead of being rejected.
func ParseNaive(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(layoutDateTimeSeconds, s, loc)
	if err == nil {
		return t, nil
	}
	return time.ParseInLocation(layoutDateTimeMinutes, s, loc)
}
