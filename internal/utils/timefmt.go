package utils

import (
	"time"
)

const (
	timestampLayout       = "2006-01-02 15:04:05"
	unknownTimestampLabel = "Unknown"
)

// FormatTimestamp returns the provided time in the local time zone with second
// precision, or "Unknown" for the zero time.
func FormatTimestamp(value time.Time) string {
	if value.IsZero() {
		return unknownTimestampLabel
	}
	return value.In(time.Local).Format(timestampLayout)
}
