package datefmt_test

import (
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/todate/pkg/datefmt"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"iso date", "2024-01-05", "January 5, 2024"},
		{"christmas", "2024-12-25", "December 25, 2024"},
		{"epoch millis", int64(1704412800000), "January 5, 2024"},
		{"epoch millis int", 1704412800000, "January 5, 2024"},
		{"epoch millis float truncates", 1704412800000.9, "January 5, 2024"},
		{"epoch zero", 0, "January 1, 1970"},
		{"before epoch", -86400000, "December 31, 1969"},
		{"time value", time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC), "March 9, 2024"},
		{"leap day", "2024-02-29", "February 29, 2024"},
		{"year only", "2024", "January 1, 2024"},
		{"year month", "2024-07", "July 1, 2024"},
		{"surrounding spaces", "  2024-01-05  ", "January 5, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := datefmt.Format(tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_NoZeroPadding(t *testing.T) {
	t.Parallel()

	got, err := datefmt.Format("2024-01-05")
	require.NoError(t, err)
	require.Equal(t, "January 5, 2024", got)
	require.NotContains(t, got, "05")
}

func TestFormat_ISOPattern(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^(January|February|March|April|May|June|July|August|September|October|November|December) ([1-9]|[12][0-9]|3[01]), [0-9]{4}$`)

	day := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for day.Year() < 2025 {
		iso := day.Format("2006-01-02")
		got, err := datefmt.Format(iso)
		require.NoError(t, err, iso)
		require.Regexp(t, pattern, got, iso)
		require.Equal(t, day.Format("January 2, 2006"), got, iso)
		day = day.AddDate(0, 0, 1)
	}
}

func TestFormat_Deterministic(t *testing.T) {
	t.Parallel()

	for _, v := range []any{"2024-01-05", 1704412800000, "Jan 5, 2024"} {
		first, err := datefmt.Format(v)
		require.NoError(t, err)
		second, err := datefmt.Format(v)
		require.NoError(t, err)
		require.Equal(t, first, second)
	}
}

func TestFormat_InvalidDate(t *testing.T) {
	t.Parallel()

	var nilTime *time.Time

	tests := []struct {
		name  string
		value any
	}{
		{"garbage string", "not-a-date"},
		{"empty string", ""},
		{"blank string", "   "},
		{"nil", nil},
		{"nil time pointer", nilTime},
		{"bool", true},
		{"struct", struct{}{}},
		{"digit string is not a timestamp", "1704412800000"},
		{"day out of range", "2024-02-30"},
		{"month out of range", "2024-13-01"},
		{"too far in the future", 9e15},
		{"too far in the past", -9e15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := datefmt.Format(tt.value)
			require.ErrorIs(t, err, datefmt.ErrInvalidDate)
			require.Empty(t, got)
		})
	}
}

func TestFormat_InvalidDateIsStable(t *testing.T) {
	t.Parallel()

	_, first := datefmt.Format("not-a-date")
	_, second := datefmt.Format("not-a-date")
	require.ErrorIs(t, first, datefmt.ErrInvalidDate)
	require.ErrorIs(t, second, datefmt.ErrInvalidDate)
	require.Equal(t, first.Error(), second.Error())
}

func TestFormat_UnsupportedType(t *testing.T) {
	t.Parallel()

	_, err := datefmt.Format(map[string]int{"a": 1})
	require.ErrorIs(t, err, datefmt.ErrInvalidDate)
	require.ErrorIs(t, err, datefmt.ErrUnsupportedType)
}

func TestFormatter_Location(t *testing.T) {
	t.Parallel()

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	t.Run("default is UTC", func(t *testing.T) {
		t.Parallel()
		f := datefmt.New()
		require.Equal(t, time.UTC, f.Location())
		got, err := f.Format(1704412800000)
		require.NoError(t, err)
		require.Equal(t, "January 5, 2024", got)
	})

	t.Run("date-only input is UTC midnight", func(t *testing.T) {
		t.Parallel()
		f := datefmt.New(datefmt.WithLocation(ny))
		got, err := f.Format("2024-01-05")
		require.NoError(t, err)
		require.Equal(t, "January 4, 2024", got)
	})

	t.Run("epoch millis render in location", func(t *testing.T) {
		t.Parallel()
		f := datefmt.New(datefmt.WithLocation(ny))
		got, err := f.Format(1704412800000)
		require.NoError(t, err)
		require.Equal(t, "January 4, 2024", got)
	})

	t.Run("zoneless date-time is read in location", func(t *testing.T) {
		t.Parallel()
		f := datefmt.New(datefmt.WithLocation(ny))
		got, err := f.Format("2024-01-05T10:00:00")
		require.NoError(t, err)
		require.Equal(t, "January 5, 2024", got)
	})

	t.Run("explicit offset is honoured", func(t *testing.T) {
		t.Parallel()
		got, err := datefmt.Format("2024-01-05T23:30:00-05:00")
		require.NoError(t, err)
		require.Equal(t, "January 6, 2024", got)
	})

	t.Run("nil location is ignored", func(t *testing.T) {
		t.Parallel()
		f := datefmt.New(datefmt.WithLocation(nil))
		require.Equal(t, time.UTC, f.Location())
	})
}

func TestFormatter_Locale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag        language.Tag
		want       string
		wantLocale language.Tag
	}{
		{language.English, "January 5, 2024", language.English},
		{language.AmericanEnglish, "January 5, 2024", language.English},
		{language.BritishEnglish, "5 January 2024", language.BritishEnglish},
		{language.German, "5. Januar 2024", language.German},
		{language.Spanish, "5 de enero de 2024", language.Spanish},
		{language.French, "5 janvier 2024", language.French},
		{language.Italian, "5 gennaio 2024", language.Italian},
		{language.Dutch, "5 januari 2024", language.Dutch},
		{language.Polish, "5 stycznia 2024", language.Polish},
		{language.BrazilianPortuguese, "5 de janeiro de 2024", language.Portuguese},
		{language.Japanese, "January 5, 2024", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			t.Parallel()
			f := datefmt.New(datefmt.WithLocale(tt.tag))
			got, err := f.Format("2024-01-05")
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantLocale, f.Locale())
		})
	}
}

func TestSupportedLocales(t *testing.T) {
	t.Parallel()

	tags := datefmt.SupportedLocales()
	require.NotEmpty(t, tags)
	require.Equal(t, language.English, tags[0])
	require.Contains(t, tags, language.German)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	require.Same(t, datefmt.Default(), datefmt.Default())
	require.Equal(t, language.English, datefmt.Default().Locale())
}

func TestFormatter_ConcurrentUse(t *testing.T) {
	t.Parallel()

	f := datefmt.New(datefmt.WithLocale(language.German))

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := range 64 {
		wg.Add(1)
		go func(day int) {
			defer wg.Done()
			want := fmt.Sprintf("%d. März 2024", day)
			got, err := f.Format(fmt.Sprintf("2024-03-%02d", day))
			if err != nil {
				errs <- err
				return
			}
			if got != want {
				errs <- fmt.Errorf("got %q, want %q", got, want)
			}
		}(i%28 + 1)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

func TestMatchLocale(t *testing.T) {
	t.Parallel()

	require.Equal(t, language.English, datefmt.MatchLocale())
	require.Equal(t, language.German, datefmt.MatchLocale(language.MustParse("de-AT")))
	require.Equal(t, language.German, datefmt.MatchLocale(language.Japanese, language.German))
	require.Equal(t, language.English, datefmt.MatchLocale(language.Japanese))
}
