package filters

import (
	"text/template"

	"github.com/dmitrymomot/todate/pkg/datefmt"
)

// Name is the template-facing name of the date filter.
const Name = "toDate"

// Func returns the filter function backed by f.
// A nil formatter falls back to datefmt.Default().
func Func(f *datefmt.Formatter) func(any) (string, error) {
	if f == nil {
		f = datefmt.Default()
	}
	return f.Format
}

// FuncMap returns a template function map with the date filter registered under Name.
func FuncMap(f *datefmt.Formatter) template.FuncMap {
	return template.FuncMap{
		Name: Func(f),
	}
}
