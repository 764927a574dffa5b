package core

import (
	"strings"
	"time"
)

// Timestamp formats t using the on-disk artefact layout. The layout is
// lexicographically sortable, so callers may sort raw filenames instead
// of parsing them back into time.Time to order backups chronologically.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp is the inverse of Timestamp.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, s)
}

// SaneName replaces path-unfriendly characters in a VM or disk label so
// it can be embedded in a filename.
func SaneName(label string) string {
	r := strings.NewReplacer(" ", "_", "/", "_")
	return r.Replace(label)
}
