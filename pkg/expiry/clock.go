package expiry

import (
	"EcoPanier/domain"
	"EcoPanier/internal/utils"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

const (
	DefaultTimezone = "Europe/Paris"
	secondsPerDay   = 24 * 60 * 60
)

// Clock answers "what day is it" for the household. All item dates are
// compared as calendar dates pinned to UTC midnight, so DST shifts in the
// household location never change a day count.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(loc *time.Location, now func() time.Time) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Clock{loc: loc, now: now}
}

// NewClockFromConfig reads TIMEZONE and falls back to Europe/Paris.
func NewClockFromConfig() *Clock {
	name := utils.GetConfig("TIMEZONE")
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warnf("unknown timezone %q, using UTC: %v", name, err)
		loc = time.UTC
	}
	return NewClock(loc, nil)
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// Today is the current calendar date in the clock's location.
func (c *Clock) Today() time.Time {
	return NormalizeDate(c.Now())
}

// DaysFromToday returns today shifted by n calendar days.
func (c *Clock) DaysFromToday(n int) time.Time {
	return c.Today().AddDate(0, 0, n)
}

// DaysUntil counts days from today to target.
func (c *Clock) DaysUntil(target time.Time) int {
	return DaysUntil(target, c.Now())
}

// ParseDateOrToday parses s and falls back to today when it is not a date.
// An item saved with a bad date therefore shows up as urgent.
func (c *Clock) ParseDateOrToday(s string) time.Time {
	d, err := ParseDate(s)
	if err != nil {
		log.Warnf("expiry date %q rejected, using today: %v", s, err)
		return c.Today()
	}
	return d
}

// NormalizeDate keeps the year, month and day of t as seen in t's own
// location and pins them to midnight UTC.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntil is the signed number of calendar days from reference to target.
// Positive means target is in the future, zero means the same day.
func DaysUntil(target, reference time.Time) int {
	diff := NormalizeDate(target).Unix() - NormalizeDate(reference).Unix()
	days := diff / secondsPerDay
	if diff%secondsPerDay > 0 {
		days++
	}
	return int(days)
}

// ParseDate accepts YYYY-MM-DD, or an RFC 3339 timestamp whose date part is kept.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(domain.DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NormalizeDate(t), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
}

func FormatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}
