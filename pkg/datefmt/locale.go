package datefmt

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// longDate holds the long-form date pattern for one locale: numeric year,
// full month name, numeric day.
type longDate struct {
	tag     language.Tag
	months  [12]string
	pattern string // {d}, {MMMM} and {y} placeholders
}

func (ld longDate) render(t time.Time) string {
	return strings.NewReplacer(
		"{d}", strconv.Itoa(t.Day()),
		"{MMMM}", ld.months[t.Month()-1],
		"{y}", strconv.Itoa(t.Year()),
	).Replace(ld.pattern)
}

// longDates lists supported locales. The first entry is the fallback.
var longDates = []longDate{
	{
		tag: language.English,
		months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		pattern: "{MMMM} {d}, {y}",
	},
	{
		tag: language.BritishEnglish,
		months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		pattern: "{d} {MMMM} {y}",
	},
	{
		tag: language.German,
		months: [12]string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		pattern: "{d}. {MMMM} {y}",
	},
	{
		tag: language.Spanish,
		months: [12]string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		pattern: "{d} de {MMMM} de {y}",
	},
	{
		tag: language.French,
		months: [12]string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		pattern: "{d} {MMMM} {y}",
	},
	{
		tag: language.Italian,
		months: [12]string{
			"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
			"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
		},
		pattern: "{d} {MMMM} {y}",
	},
	{
		tag: language.Dutch,
		months: [12]string{
			"januari", "februari", "maart", "april", "mei", "juni",
			"juli", "augustus", "september", "oktober", "november", "december",
		},
		pattern: "{d} {MMMM} {y}",
	},
	{
		// Genitive month forms.
		tag: language.Polish,
		months: [12]string{
			"stycznia", "lutego", "marca", "kwietnia", "maja", "czerwca",
			"lipca", "sierpnia", "września", "października", "listopada", "grudnia",
		},
		pattern: "{d} {MMMM} {y}",
	},
	{
		tag: language.Portuguese,
		months: [12]string{
			"janeiro", "fevereiro", "março", "abril", "maio", "junho",
			"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
		},
		pattern: "{d} de {MMMM} de {y}",
	},
}

var localeMatcher = language.NewMatcher(SupportedLocales())

// SupportedLocales returns the locales with a long-date pattern.
// English comes first and is used when nothing else matches.
func SupportedLocales() []language.Tag {
	tags := make([]language.Tag, len(longDates))
	for i, ld := range longDates {
		tags[i] = ld.tag
	}
	return tags
}

// MatchLocale returns the supported locale closest to the given preferences,
// ordered from most to least preferred. English is returned when nothing matches.
func MatchLocale(prefs ...language.Tag) language.Tag {
	return matchLocale(prefs...).tag
}

func matchLocale(prefs ...language.Tag) longDate {
	if len(prefs) == 0 {
		return longDates[0]
	}
	_, idx, _ := localeMatcher.Match(prefs...)
	if idx < 0 || idx >= len(longDates) {
		return longDates[0]
	}
	return longDates[idx]
}
