package timezone

import (
	"errors"
	"time"
)

const (
	DateLayout    = "2006-01-02"
	ClockLayout   = "15:04"
	Clock12Layout = "03:04 PM"
)

var (
	ErrInvalidZone = errors.New("unrecognized IANA time zone")
	ErrInvalidTime = errors.New("unparsable date or time")
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) (*time.Location, error) {
	if tz == "" {
		return nil, ErrInvalidZone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, ErrInvalidZone
	}
	return loc, nil
}

func NowIn(tz string) (time.Time, error) {
	loc, err := Location(tz)
	if err != nil {
		return time.Time{}, err
	}
	return time.Now().In(loc), nil
}

// ToUTC combines a calendar date and a wall-clock reading under the named
// zone and returns the equivalent UTC instant.
func ToUTC(date, clock, zone string) (time.Time, error) {
	loc, err := Location(zone)
	if err != nil {
		return time.Time{}, err
	}

	local, err := time.ParseInLocation(DateLayout+" "+ClockLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, ErrInvalidTime
	}

	return local.UTC(), nil
}

// ToLocal is the display-side inverse of ToUTC.
func ToLocal(t time.Time, zone string) (date string, clock string, err error) {
	local, err := InZone(t, zone)
	if err != nil {
		return "", "", err
	}
	return local.Format(DateLayout), local.Format(ClockLayout), nil
}

func InZone(t time.Time, zone string) (time.Time, error) {
	loc, err := Location(zone)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

// WeekBounds returns the Monday and Sunday dates (midnight in the supplied
// zone) of the ISO week containing t. Sunday counts as weekday 7, never 0,
// so a Sunday "today" still belongs to the week that started the previous
// Monday.
func WeekBounds(t time.Time, zone string) (monday, sunday time.Time, err error) {
	loc, err := Location(zone)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	local := t.In(loc)

	isoWeekday := int(local.Weekday())
	if isoWeekday == 0 {
		isoWeekday = 7
	}

	monday = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, -(isoWeekday - 1))
	sunday = monday.AddDate(0, 0, 6)

	return monday, sunday, nil
}

// NextDay returns the calendar date following the given one.
func NextDay(date string) (string, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", ErrInvalidTime
	}
	return d.AddDate(0, 0, 1).Format(DateLayout), nil
}

// DayOfWeek returns the weekday label of a calendar date, for grouping
// slots in the vendor's weekly editor.
func DayOfWeek(date string) (string, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", ErrInvalidTime
	}
	return d.Weekday().String(), nil
}
