package rethinkdb

// Now returns the server's current time as a TIME pseudo-type.
func Now() Term { return newTermFromArgs(termNow) }

// Time constructs a TIME value from year/month/day[, hour, minute, second],
// timezone.
func Time(args ...interface{}) Term { return newTermFromArgs(termTime, args...) }

// EpochTime builds a TIME value from a Unix timestamp in seconds.
func EpochTime(seconds interface{}) Term { return newTermFromArgs(termEpochTime, seconds) }

// ISO8601 parses an ISO 8601 timestamp string into a TIME value.
func ISO8601(s interface{}) Term { return newTermFromArgs(termIso8601, s) }

// ToEpochTime converts a TIME value to a Unix timestamp in seconds.
func (t Term) ToEpochTime() Term { return newTermFromParent(termToEpochTime, t) }

// ToISO8601 converts a TIME value to an ISO 8601 timestamp string.
func (t Term) ToISO8601() Term { return newTermFromParent(termToIso8601, t) }

// InTimezone returns the same instant in a different timezone.
func (t Term) InTimezone(tz interface{}) Term { return newTermFromParent(termInTimezone, t, tz) }

// During reports whether t falls within [start, end).
func (t Term) During(start, end interface{}) Term {
	return newTermFromParent(termDuring, t, start, end)
}
