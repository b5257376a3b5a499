// Package web serves the toDate filter over HTTP.
//
// Routes:
//
//	GET /             HTML form rendered with html/template and the toDate filter
//	GET /api/format   JSON: {"value": ..., "formatted": ..., "locale": ...}
//	GET /badge        <time> element rendered by the templ component
//
// Every route runs behind filters.Locale, so ?lang=, the lang cookie and
// Accept-Language select the output locale. Append epoch=1 to read a numeric
// value as epoch milliseconds.
package web
