// Package coerce reads loosely typed legacy column values into Go values.
// NULL and unreadable values never fail, they collapse to a neutral value.
package coerce

import (
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
)

var clockLayouts = []string{
	"15:04:05.9999999",
	"15:04:05",
	"15:04",
}

// normalize unwraps driver specific representations. SQL Server returns
// DECIMAL and some CHAR columns as []byte.
func normalize(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case *string:
		if t == nil {
			return nil
		}
		return *t
	}
	return v
}

// AsString returns "" for NULL and the textual form of any other value.
func AsString(v any) string {
	v = normalize(v)
	if v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

// AsInt narrows any numeric value to int using round-half-to-even.
func AsInt(v any) int {
	v = normalize(v)
	if v == nil {
		return 0
	}

	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case int32:
		return int(n)
	case int16:
		return int(n)
	case int8:
		return int(n)
	case uint8:
		return int(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		v = strings.TrimSpace(n)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	r := math.RoundToEven(f)
	// float64(math.MaxInt) rounds up to 2^63, which int cannot hold.
	if r >= float64(math.MaxInt) || r < float64(math.MinInt) {
		return 0
	}
	return int(r)
}

// AsFloat returns 0 for NULL or unreadable values.
func AsFloat(v any) float64 {
	v = normalize(v)
	if v == nil {
		return 0
	}
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}
	return f
}

// AsTime returns the zero time when the value is NULL or cannot be parsed.
func AsTime(v any) time.Time {
	v = normalize(v)
	if v == nil {
		return time.Time{}
	}
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return time.Time{}
		}
		v = s
	}
	t, err := cast.ToTimeE(v)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AsClock reads a time-of-day as an offset from midnight. It accepts TIME
// columns (delivered as time.Time), durations and "HH:MM[:SS]" text.
func AsClock(v any) *time.Duration {
	v = normalize(v)
	if v == nil {
		return nil
	}

	switch t := v.(type) {
	case time.Duration:
		return &t
	case time.Time:
		return timeOfDay(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		for _, layout := range clockLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return timeOfDay(parsed)
			}
		}
		if parsed, err := cast.ToTimeE(s); err == nil {
			return timeOfDay(parsed)
		}
	}

	return nil
}

func timeOfDay(t time.Time) *time.Duration {
	d := time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
	return &d
}
