package schedule

import "time"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one instant. Touching endpoints do not
// conflict. Every overlap decision in the service goes through this
// predicate so publish-time and booking-time checks cannot drift apart.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Contains reports whether [innerStart, innerEnd) lies fully inside
// [outerStart, outerEnd).
func Contains(outerStart, outerEnd, innerStart, innerEnd time.Time) bool {
	return !innerStart.Before(outerStart) && !innerEnd.After(outerEnd)
}
