package filters_test

import (
	"context"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/todate/pkg/datefmt"
	"github.com/dmitrymomot/todate/pkg/filters"
)

func TestDate(t *testing.T) {
	t.Parallel()

	t.Run("default formatter", func(t *testing.T) {
		t.Parallel()
		var sb strings.Builder
		err := filters.Date("2024-01-05").Render(context.Background(), &sb)
		require.NoError(t, err)
		require.Equal(t, `<time datetime="2024-01-05">January 5, 2024</time>`, sb.String())
	})

	t.Run("formatter from context", func(t *testing.T) {
		t.Parallel()
		ny, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)

		ctx := filters.WithFormatter(context.Background(), datefmt.New(
			datefmt.WithLocale(language.German),
			datefmt.WithLocation(ny),
		))

		var sb strings.Builder
		err = filters.Date(int64(1704412800000)).Render(ctx, &sb)
		require.NoError(t, err)
		require.Equal(t, `<time datetime="2024-01-04">4. Januar 2024</time>`, sb.String())
	})

	t.Run("invalid date", func(t *testing.T) {
		t.Parallel()
		var sb strings.Builder
		err := filters.Date("not-a-date").Render(context.Background(), &sb)
		require.ErrorIs(t, err, datefmt.ErrInvalidDate)
		require.Empty(t, sb.String())
	})
}
