// Package filters exposes the datefmt formatter to presentation templates
// under the name "toDate".
//
// The package does not register anything globally. Hosts import the
// function map or the component and wire it through their own template
// API:
//
//	tmpl := template.Must(template.New("page").
//		Funcs(filters.FuncMap(nil)).
//		Parse(`Published {{ toDate .PublishedAt }}`))
//
// The same map works for html/template, whose FuncMap is an alias of
// text/template's.
//
// With templ, render the Date component; it picks up the formatter stored
// in the request context by the Locale middleware:
//
//	r := chi.NewRouter()
//	r.Use(filters.Locale())
//
//	templ.Handler(filters.Date(post.PublishedAt))
//
// Invalid dates abort template execution with an error wrapping
// datefmt.ErrInvalidDate.
package filters
