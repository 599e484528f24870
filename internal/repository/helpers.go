package repository

import (
	"strings"
	"time"
)

// timeLayout is the storage format for timestamps.
const timeLayout = time.RFC3339

// maxBatchRows keeps multi-row inserts under SQLite's host parameter limit.
const maxBatchRows = 200

// parseTime parses a stored timestamp, returning the zero time on failure.
func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// placeholders returns "(?, ?), (?, ?)" style value groups for a batch insert.
func placeholders(rows, cols int) string {
	group := "(" + strings.TrimSuffix(strings.Repeat("?, ", cols), ", ") + ")"
	parts := make([]string, rows)
	for i := range parts {
		parts[i] = group
	}
	return strings.Join(parts, ", ")
}
