package pricing

import (
	"errors"
	"fmt"
	"math"
	"time"
	"wbrent/shared/constant"
)

const (
	hoursPerDay    = 24
	minutesPerHour = 60
	maxWeekendDays = 3
)

var (
	ErrInvalidRange = errors.New("invalid rental period")
	ErrInvalidDays  = errors.New("rental must last at least one day")
)

// Clock is a wall-clock time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

func ParseClock(value string) (Clock, error) {
	parsed, err := time.Parse(constant.ClockFormat, value)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: time %q must be HH:MM", ErrInvalidRange, value)
	}

	return Clock{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

// Minutes returns minutes since midnight.
func (c Clock) Minutes() int {
	return c.Hour*minutesPerHour + c.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Range is a rental period: pickup date inclusive, return date exclusive.
// Dates are calendar days at UTC midnight.
type Range struct {
	Start     time.Time
	End       time.Time
	StartTime *Clock
	EndTime   *Clock
}

// ParseRange parses YYYY-MM-DD dates and optional HH:MM clock times.
func ParseRange(startDate, endDate, startTime, endTime string) (Range, error) {
	start, err := time.Parse(constant.DateOnlyFormat, startDate)
	if err != nil {
		return Range{}, fmt.Errorf("%w: startDate %q must be YYYY-MM-DD", ErrInvalidRange, startDate)
	}

	end, err := time.Parse(constant.DateOnlyFormat, endDate)
	if err != nil {
		return Range{}, fmt.Errorf("%w: endDate %q must be YYYY-MM-DD", ErrInvalidRange, endDate)
	}

	if end.Before(start) {
		return Range{}, fmt.Errorf("%w: endDate %s is before startDate %s", ErrInvalidRange, endDate, startDate)
	}

	r := Range{Start: start, End: end}

	if startTime != "" {
		clock, err := ParseClock(startTime)
		if err != nil {
			return Range{}, err
		}

		r.StartTime = &clock
	}

	if endTime != "" {
		clock, err := ParseClock(endTime)
		if err != nil {
			return Range{}, err
		}

		r.EndTime = &clock
	}

	return r, nil
}

// OccupiedEnd is the exclusive end used for overlap checks. A same-day rental
// still occupies its pickup day.
func (r Range) OccupiedEnd() time.Time {
	if r.End.After(r.Start) {
		return r.End
	}

	return r.Start.AddDate(0, 0, 1)
}

// Overlaps reports whether two half-open ranges share at least one day.
func (r Range) Overlaps(other Range) bool {
	return r.Start.Before(other.OccupiedEnd()) && other.Start.Before(r.OccupiedEnd())
}

// CountDays returns the billable number of rental days.
//
// The base count is the calendar span rounded up, at least one. When both clock
// times are known and the return clock time is later than the pickup clock time,
// one more day is billed. Only the clock times are compared, not elapsed hours.
func CountDays(r Range) (int, error) {
	if r.Start.IsZero() || r.End.IsZero() || r.End.Before(r.Start) {
		return 0, ErrInvalidRange
	}

	days := int(math.Ceil(r.End.Sub(r.Start).Hours() / hoursPerDay))
	if days < 1 {
		days = 1
	}

	if r.StartTime != nil && r.EndTime != nil && r.EndTime.Minutes() > r.StartTime.Minutes() {
		days++
	}

	return days, nil
}

// CalendarFlags derives the weekend package and weekend pickup flags from the pickup date.
// Both the quote preview and reservation creation go through here.
func CalendarFlags(start time.Time, days int) Flags {
	weekday := start.Weekday()

	return Flags{
		IsWeekend:     weekday == time.Friday && days <= maxWeekendDays,
		WeekendPickup: weekday == time.Saturday || weekday == time.Sunday,
	}
}
