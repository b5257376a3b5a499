package datefmt

import (
	"time"

	"golang.org/x/text/language"
)

// Formatter renders date-like values as long-form localized dates,
// e.g. "January 5, 2024". It is immutable after creation and safe for
// concurrent use.
type Formatter struct {
	location *time.Location
	long     longDate
}

// Option configures a Formatter during construction.
type Option func(*options)

type options struct {
	locale   language.Tag
	location *time.Location
}

// WithLocale sets the output locale. Unsupported locales fall back to English.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}

// WithLocation sets the time zone used to read zoneless input and to render
// the calendar date. A nil location is ignored.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.location = loc
		}
	}
}

// New creates a Formatter. Without options it formats in English and UTC.
func New(opts ...Option) *Formatter {
	o := &options{
		locale:   language.English,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Formatter{
		location: o.location,
		long:     matchLocale(o.locale),
	}
}

// Format parses value and renders it as a long-form date.
func (f *Formatter) Format(value any) (string, error) {
	t, err := f.Parse(value)
	if err != nil {
		return "", err
	}
	return f.FormatTime(t), nil
}

// FormatTime renders t in the formatter's location.
func (f *Formatter) FormatTime(t time.Time) string {
	return f.long.render(t.In(f.location))
}

// Locale returns the supported locale the formatter resolved to.
func (f *Formatter) Locale() language.Tag {
	return f.long.tag
}

// Location returns the formatter's time zone.
func (f *Formatter) Location() *time.Location {
	return f.location
}

var std = New()

// Default returns the English, UTC formatter used by the package-level Format.
func Default() *Formatter {
	return std
}

// Format renders value as an English long-form date in UTC:
// "2024-01-05" becomes "January 5, 2024".
// Invalid input returns an error wrapping ErrInvalidDate.
func Format(value any) (string, error) {
	return std.Format(value)
}
