// Package renderer turns reconstructed positions into markdown reports.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/optrack"
	"github.com/etnz/optrack/date"
)

// Options tunes the rendering of reports.
type Options struct {
	// DateFormat is the time layout used for dates in the report.
	DateFormat string
}

// PositionsMarkdown renders the ordered position list as a markdown report,
// one table of legs per position.
func PositionsMarkdown(positions []*optrack.Position, opts Options) string {
	if opts.DateFormat == "" {
		opts.DateFormat = date.USFormat
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Positions\n\n")
	if len(positions) == 0 {
		fmt.Fprintln(&b, "No position matches the filter.")
		return b.String()
	}

	for i, pos := range positions {
		fmt.Fprintf(&b, "## Position %d: %s (%s)\n\n", i+1, pos.Strategy, status(pos.IsClosed()))
		fmt.Fprintln(&b, "| Symbol | Opened | Contracts | Open Avg | Close Avg | Status |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|:---:|")
		for _, leg := range pos.Legs {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
				leg.Symbol,
				openedOn(leg, opts.DateFormat),
				leg.NetQuantity(),
				price(leg.OpenPrice()),
				price(leg.ClosePrice()),
				status(leg.IsClosed()),
			)
		}
		fmt.Fprintln(&b)
	}
	return b.String()
}

func status(closed bool) string {
	if closed {
		return "closed"
	}
	return "open"
}

func price(p optrack.Price, ok bool) string {
	if !ok {
		return "-"
	}
	return p.Dollars()
}

func openedOn(leg *optrack.Leg, layout string) string {
	if len(leg.Lines) == 0 {
		return "-"
	}
	return leg.Lines[0].Time.Format(layout)
}
