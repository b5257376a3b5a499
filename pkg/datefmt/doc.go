// Package datefmt converts date-like values into long-form localized date
// strings such as "January 5, 2024".
//
// The package has no mutable state. A Formatter is configured once at
// construction time and is safe for concurrent use.
//
// # Basic Usage
//
//	s, err := datefmt.Format("2024-01-05")
//	// s == "January 5, 2024"
//
//	s, err = datefmt.Format(1704412800000) // epoch milliseconds
//	// s == "January 5, 2024"
//
// # Accepted Values
//
// Parse and Format accept:
//   - strings: ISO-8601 dates and date-times, RFC 1123/850, Unix date,
//     "January 2, 2006", "Jan 2, 2006", "2 January 2006", "2006/01/02",
//     "01/02/2006" and the Date.toString() shape used by browsers
//   - integers and floats, read as milliseconds since the Unix epoch
//   - time.Time and *time.Time
//   - driver.Valuer implementations such as sql.NullTime or pgtype.Date
//
// Values that cannot be read as a date produce an error wrapping
// ErrInvalidDate. No "Invalid Date" placeholder string is ever returned:
//
//	if _, err := datefmt.Format("not-a-date"); errors.Is(err, datefmt.ErrInvalidDate) {
//		// handle
//	}
//
// # Time Zones
//
// Date-only ISO strings ("2024-01-05") are UTC midnight. Epoch milliseconds
// are absolute instants. Strings without zone information are read in the
// formatter's location. The calendar date is always taken in the formatter's
// location, which defaults to UTC:
//
//	ny, _ := time.LoadLocation("America/New_York")
//	f := datefmt.New(datefmt.WithLocation(ny))
//	s, _ := f.Format("2024-01-05") // "January 4, 2024"
//
// # Locales
//
// English is the default. Other supported locales are matched with
// golang.org/x/text/language:
//
//	f := datefmt.New(datefmt.WithLocale(language.German))
//	s, _ := f.Format("2024-01-05") // "5. Januar 2024"
package datefmt
