package finance

import "time"

const DateLayout = "2006-01-02"

// ParseDate accepts the wire date formats the store contains: plain
// "YYYY-MM-DD" and full RFC 3339 timestamps.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// IsWithinRange reports whether date falls inside the inclusive [from, to]
// window. An empty or unparseable bound leaves that side open; an empty or
// unparseable date is never in range. No timezone normalization is applied.
func IsWithinRange(date, from, to string) bool {
	d, ok := ParseDate(date)
	if !ok {
		return false
	}
	if f, ok := ParseDate(from); ok && d.Before(f) {
		return false
	}
	if t, ok := ParseDate(to); ok && d.After(t) {
		return false
	}
	return true
}
