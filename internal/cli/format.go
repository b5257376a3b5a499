package cli

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/todate/pkg/datefmt"
)

// ErrFormatFailed is returned when at least one value could not be formatted.
var ErrFormatFailed = errors.New("cli: some values could not be formatted")

func newFormatCommand(a *app) *cobra.Command {
	var (
		locale   string
		timezone string
		epoch    bool
	)

	cmd := &cobra.Command{
		Use:   "format [value...]",
		Short: "Format values as long-form dates",
		Long: `Format each value as a long-form date, one per line.
Values are read from arguments, or from stdin (one per line) when no arguments are given.`,
		Example: `  todate format 2024-01-05
  todate format --locale de 2024-12-25
  todate format --epoch 1704412800000
  echo 2024-01-05 | todate format`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("locale") {
				cfg.Locale = locale
			}
			if cmd.Flags().Changed("timezone") {
				cfg.Timezone = timezone
			}

			opts, err := cfg.FormatterOptions()
			if err != nil {
				return err
			}
			f := datefmt.New(opts...)

			values := args
			if len(values) == 0 {
				values, err = readLines(cmd)
				if err != nil {
					return err
				}
			}

			var failed int
			for _, raw := range values {
				out, err := f.Format(inputValue(raw, epoch))
				if err != nil {
					failed++
					a.logger.Debug("format failed", slog.String("value", raw), slog.Any("error", err))
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", raw, err)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", ErrFormatFailed, failed, len(values))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&locale, "locale", "l", "", "Output locale, e.g. en, de, fr (default from TODATE_LOCALE)")
	cmd.Flags().StringVarP(&timezone, "timezone", "z", "", "IANA time zone, e.g. Europe/Berlin (default from TODATE_TIMEZONE)")
	cmd.Flags().BoolVar(&epoch, "epoch", false, "Read integer values as epoch milliseconds")

	return cmd
}

// readLines returns the non-blank lines of the command's input.
func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

func inputValue(raw string, epoch bool) any {
	if epoch {
		if ms, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
			return ms
		}
	}
	return raw
}
