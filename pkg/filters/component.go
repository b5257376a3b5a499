package filters

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"
)

// Date renders value as a <time> element, e.g.
// <time datetime="2024-01-05">January 5, 2024</time>.
// The formatter comes from ctx; see FormatterFromContext.
func Date(value any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		f := FormatterFromContext(ctx)

		t, err := f.Parse(value)
		if err != nil {
			return err
		}

		_, err = io.WriteString(w, `<time datetime="`+
			t.In(f.Location()).Format(time.DateOnly)+`">`+
			templ.EscapeString(f.FormatTime(t))+
			`</time>`)
		return err
	})
}
