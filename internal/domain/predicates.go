package domain

import (
	"regexp"
	"strings"
	"time"
)

var (
	isoDatePattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeOfDayPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// dateTimeLayouts are tried in order by IsISODateTime.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// IsPlainObject reports whether v is a decoded JSON object.
func IsPlainObject(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

// IsISODate reports whether v is a string of the form YYYY-MM-DD.
// The calendar is not checked: "2024-02-31" passes.
func IsISODate(v any) bool {
	s, ok := v.(string)
	return ok && isoDatePattern.MatchString(s)
}

// IsISODateTime reports whether v is a string that parses as a timestamp.
func IsISODateTime(v any) bool {
	s, ok := v.(string)
	if !ok || s == "" {
		return false
	}
	for _, layout := range dateTimeLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// IsTimeOfDay reports whether v is a string of the form HH:MM. Hour and
// minute ranges are not checked.
func IsTimeOfDay(v any) bool {
	s, ok := v.(string)
	return ok && timeOfDayPattern.MatchString(s)
}

// IsURLOrEmpty reports whether v is an empty string, an http(s) URL, or a
// root- or parent-relative path.
func IsURLOrEmpty(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	if s == "" {
		return true
	}
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return true
	case strings.HasPrefix(s, "/"), strings.HasPrefix(s, "../"):
		return true
	}
	return false
}
