package timeslot

import (
	"errors"
	"time"
)

const (
	DefaultMinDuration      = 15 * time.Minute
	DefaultMaxDuration      = 4 * time.Hour
	DefaultAdvanceLimitDays = 30
)

var (
	ErrPastStartTime       = errors.New("start time is not in the future")
	ErrNonPositiveDuration = errors.New("end time is not after start time")
	ErrTooShort            = errors.New("duration is below the minimum")
	ErrTooLong             = errors.New("duration exceeds the maximum")
	ErrTooFarInAdvance     = errors.New("start time is beyond the advance booking limit")
)

// Limits holds the booking rules a candidate interval is checked against.
type Limits struct {
	MinDuration      time.Duration
	MaxDuration      time.Duration
	AdvanceLimitDays int
}

func DefaultLimits() Limits {
	return Limits{
		MinDuration:      DefaultMinDuration,
		MaxDuration:      DefaultMaxDuration,
		AdvanceLimitDays: DefaultAdvanceLimitDays,
	}
}

// AdvanceCutoff returns the first instant that is no longer bookable. The
// cutoff is day-granular: any time on the calendar day AdvanceLimitDays from
// now's day is still allowed, so the cutoff is the midnight after it.
func (l Limits) AdvanceCutoff(now time.Time) time.Time {
	return StartOfDay(now).AddDate(0, 0, l.AdvanceLimitDays+1)
}

// Validate decides whether [start, end) may become a reservation at instant
// now. Checks run in a fixed order and stop at the first failure; callers rely
// on that order for the error they surface.
func Validate(now, start, end time.Time, limits Limits) error {
	if !start.After(now) {
		return ErrPastStartTime
	}
	if !end.After(start) {
		return ErrNonPositiveDuration
	}
	duration := end.Sub(start)
	if duration < limits.MinDuration {
		return ErrTooShort
	}
	if duration > limits.MaxDuration {
		return ErrTooLong
	}
	if !start.Before(limits.AdvanceCutoff(now)) {
		return ErrTooFarInAdvance
	}
	return nil
}
