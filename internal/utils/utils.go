package utils

import (
	"strings"
	"time"
)

// CleanJSONOutput strips the optional ```json fence models like to wrap structured output in.
func CleanJSONOutput(llmOutput string) string {
	cleaned := strings.TrimSpace(llmOutput)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// DayStamp is the calendar day of t in t's own location, e.g. "2026-10-18".
func DayStamp(t time.Time) string {
	return t.Format("2006-01-02")
}

// Timestamp formats t as an ISO-8601 UTC string with millisecond precision.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
