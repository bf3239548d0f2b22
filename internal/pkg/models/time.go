package models

import "time"

// Now returns the current time in UTC.
func Now() time.Time {
	return time.Now().UTC()
}

// NowMillis returns the current time as milliseconds since epoch.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// FormatTime formats a time.Time according to RFC3339.
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseTime parses a string in RFC3339 format to time.Time.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
