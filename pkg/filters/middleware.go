package filters

import (
	"context"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/todate/pkg/datefmt"
)

// maxAcceptLanguageLength caps the header length handed to the parser.
const maxAcceptLanguageLength = 4096

type formatterKey struct{}

// WithFormatter returns a copy of ctx carrying f.
func WithFormatter(ctx context.Context, f *datefmt.Formatter) context.Context {
	return context.WithValue(ctx, formatterKey{}, f)
}

// LookupFormatter returns the formatter stored in ctx, if any.
func LookupFormatter(ctx context.Context) (*datefmt.Formatter, bool) {
	f, ok := ctx.Value(formatterKey{}).(*datefmt.Formatter)
	return f, ok && f != nil
}

// FormatterFromContext returns the formatter stored in ctx,
// or datefmt.Default() if there is none.
func FormatterFromContext(ctx context.Context) *datefmt.Formatter {
	if f, ok := LookupFormatter(ctx); ok {
		return f
	}
	return datefmt.Default()
}

// LocaleConfig configures the Locale middleware.
type LocaleConfig struct {
	Location      *time.Location
	Param         string
	Cookie        string
	DefaultLocale language.Tag
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithLocaleParam sets the query parameter checked first. Empty disables it.
func WithLocaleParam(name string) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Param = name
	}
}

// WithLocaleCookie sets the cookie checked after the query parameter. Empty disables it.
func WithLocaleCookie(name string) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Cookie = name
	}
}

// WithDefaultLocale sets the locale used when the request expresses no preference.
func WithDefaultLocale(tag language.Tag) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.DefaultLocale = tag
	}
}

// WithLocation sets the time zone of the request formatters.
func WithLocation(loc *time.Location) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Location = loc
	}
}

// Locale returns middleware that negotiates a date locale and stores a
// matching formatter in the request context.
// Sources in order: query parameter, cookie, Accept-Language header.
func Locale(opts ...LocaleOption) func(http.Handler) http.Handler {
	cfg := &LocaleConfig{
		Param:         "lang",
		Cookie:        "lang",
		DefaultLocale: language.English,
		Location:      time.UTC,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f := datefmt.New(
				datefmt.WithLocale(datefmt.MatchLocale(requestLocales(r, cfg)...)),
				datefmt.WithLocation(cfg.Location),
			)
			next.ServeHTTP(w, r.WithContext(WithFormatter(r.Context(), f)))
		})
	}
}

// requestLocales lists the request's locale preferences, most preferred first.
func requestLocales(r *http.Request, cfg *LocaleConfig) []language.Tag {
	if cfg.Param != "" {
		if tag, err := language.Parse(strings.TrimSpace(r.URL.Query().Get(cfg.Param))); err == nil {
			return []language.Tag{tag}
		}
	}

	if cfg.Cookie != "" {
		if c, err := r.Cookie(cfg.Cookie); err == nil {
			if tag, err := language.Parse(strings.TrimSpace(c.Value)); err == nil {
				return []language.Tag{tag}
			}
		}
	}

	if header := r.Header.Get("Accept-Language"); header != "" {
		if len(header) > maxAcceptLanguageLength {
			header = header[:maxAcceptLanguageLength]
		}
		if tags, _, err := language.ParseAcceptLanguage(header); err == nil && len(tags) > 0 {
			return tags
		}
	}

	return []language.Tag{cfg.DefaultLocale}
}
