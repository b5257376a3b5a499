// Package logger builds slog loggers with context-based attribute injection.
//
// A ContextExtractor pulls one attribute out of a context on every log call,
// so request-scoped values such as request IDs or the negotiated date locale
// show up without being passed around explicitly:
//
//	localeExtractor := func(ctx context.Context) (slog.Attr, bool) {
//		f := filters.FormatterFromContext(ctx)
//		return slog.String("locale", f.Locale().String()), true
//	}
//
//	log, err := logger.New(logger.Config{Level: "debug", Format: "text"}, localeExtractor)
//
// Any slog.Handler can be decorated directly with NewLogHandlerDecorator.
// NewNope returns a logger that discards everything, for tests and defaults.
package logger
