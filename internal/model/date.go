package model

import "time"

// PostDate holds the display fields of a post's creation date.
type PostDate struct {
	Weekday string // Monday
	Day     string // 2
	Month   string // January
	Year    string // 2006
}

// NewPostDate derives display fields from t in t's own location.
func NewPostDate(t time.Time) PostDate {
	return PostDate{
		Weekday: t.Format("Monday"),
		Day:     t.Format("2"),
		Month:   t.Format("January"),
		Year:    t.Format("2006"),
	}
}

// dateLayouts are tried in order when parsing timestamps from content.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700", // offset without a colon; fractional seconds are accepted too
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDate parses an ISO-like timestamp. Values without a zone are read as UTC.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
