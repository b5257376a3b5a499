package datefmt

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"
)

// maxEpochMillis bounds accepted timestamps to 100,000,000 days either side of the epoch.
const maxEpochMillis = 8.64e15

// isoDateLayouts are date-only ISO-8601 forms. They always denote UTC midnight.
var isoDateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
}

// dateTimeLayouts are tried in order. Layouts without zone information are
// read in the formatter's location.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RubyDate,
	time.UnixDate,
	time.ANSIC,
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	"Mon Jan 02 2006",
	"January 2, 2006 15:04:05",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	"2006/01/02",
	"2006/1/2",
	"01/02/2006",
	"1/2/2006",
	"2006-1-2",
}

// Parse interprets value as a point in time.
//
// Strings are parsed as ISO-8601 or one of the recognized date layouts,
// numbers are epoch milliseconds, and time.Time values pass through.
// Values implementing driver.Valuer are unwrapped first. Anything else
// yields an error wrapping ErrInvalidDate.
func (f *Formatter) Parse(value any) (time.Time, error) {
	if value == nil {
		return time.Time{}, fmt.Errorf("%w: nil value", ErrInvalidDate)
	}

	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return time.Time{}, fmt.Errorf("%w: nil %T", ErrInvalidDate, value)
	}

	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		return *v, nil
	case json.Number:
		// string kind, numeric content.
		return parseJSONNumber(v)
	case driver.Valuer:
		dv, err := v.Value()
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
		}
		if _, nested := dv.(driver.Valuer); nested {
			return time.Time{}, fmt.Errorf("%w: %w: nested valuer %T", ErrInvalidDate, ErrUnsupportedType, dv)
		}
		return f.Parse(dv)
	case string:
		return f.parseString(v)
	case []byte:
		return f.parseString(string(v))
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromMillis(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fromMillis(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return fromMillis(rv.Float())
	}

	return time.Time{}, fmt.Errorf("%w: %w: %T", ErrInvalidDate, ErrUnsupportedType, value)
}

func (f *Formatter) parseString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidDate)
	}

	// Date.toString() appends the zone name in parentheses.
	if i := strings.LastIndex(s, " ("); i > 0 && strings.HasSuffix(s, ")") {
		s = s[:i]
	}

	for _, layout := range isoDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, f.location); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

func parseJSONNumber(n json.Number) (time.Time, error) {
	if ms, err := n.Int64(); err == nil {
		return fromMillis(float64(ms))
	}
	ms, err := n.Float64()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, n.String())
	}
	return fromMillis(ms)
}

// fromMillis converts epoch milliseconds, truncating any fraction toward zero.
func fromMillis(ms float64) (time.Time, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxEpochMillis {
		return time.Time{}, fmt.Errorf("%w: timestamp %v out of range", ErrInvalidDate, ms)
	}
	return time.UnixMilli(int64(math.Trunc(ms))).UTC(), nil
}
