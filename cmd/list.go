package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/etnz/optrack"
	"github.com/etnz/optrack/date"
	"github.com/etnz/optrack/renderer"
)

type listCmd struct {
	symbol     string
	underlying string
	start      string
	end        string
	width      int
	plain      bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list positions reconstructed from stored transactions" }
func (*listCmd) Usage() string {
	return `list [-s <symbol regex>] [-u <underlying>] [-start <date>] [-end <date>]

  Queries the stored option transactions, reconstructs positions and renders
  them as a report. Filters restrict by symbol (case-insensitive regular
  expression), underlying (case-insensitive exact match) and date range
  (YYYY-MM-DD, either bound may be omitted).
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Symbol filter, case-insensitive regular expression")
	f.StringVar(&c.underlying, "u", "", "Underlying filter, case-insensitive exact match")
	f.StringVar(&c.start, "start", "", "Earliest transaction date (YYYY-MM-DD)")
	f.StringVar(&c.end, "end", "", "Latest transaction date (YYYY-MM-DD)")
	f.IntVar(&c.width, "w", 0, "Maximum table width (defaults to output.max_table_width)")
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of terminal rendering")
}

// filter merges the configured filter with the command-line overrides.
func (c *listCmd) filter(cfg *optrack.Config) (optrack.Filter, error) {
	f := cfg.PositionFilter()
	if c.symbol != "" {
		f.Symbol = c.symbol
	}
	if c.underlying != "" {
		f.Underlying = c.underlying
	}
	if c.start != "" {
		d, err := date.Parse(c.start)
		if err != nil {
			return f, err
		}
		f.Range.From = d
	}
	if c.end != "" {
		d, err := date.Parse(c.end)
		if err != nil {
			return f, err
		}
		f.Range.To = d
	}
	return f, nil
}

func (c *listCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	cfg.Action = "list"

	filter, err := c.filter(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in filter: %v\n", err)
		return subcommands.ExitUsageError
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer st.Close(ctx)

	txs, err := st.Query(ctx, filter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error querying transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	log.Debug().Int("transactions", len(txs)).Msg("reconstructing positions")

	positions := optrack.Reconstruct(txs)
	md := renderer.PositionsMarkdown(positions, renderer.Options{DateFormat: cfg.Output.DateFormat})

	width := c.width
	if width == 0 {
		width = cfg.Output.MaxTableWidth
	}
	if c.plain {
		fmt.Print(md)
		return subcommands.ExitSuccess
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		fmt.Print(md) // fall back to raw markdown
		return subcommands.ExitSuccess
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return subcommands.ExitSuccess
	}
	fmt.Print(out)
	return subcommands.ExitSuccess
}
