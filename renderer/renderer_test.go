package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/optrack"
	"github.com/etnz/optrack/date"
)

func line(d string, action optrack.Action, symbol, quantity, price string) *optrack.Transaction {
	return &optrack.Transaction{
		Time:     date.MustParse(d).Time(),
		Action:   action,
		Symbol:   symbol,
		Quantity: optrack.Q(quantity),
		Price:    optrack.P(price),
	}
}

func TestPositionsMarkdown_empty(t *testing.T) {
	got := PositionsMarkdown(nil, Options{})
	if !strings.Contains(got, "# Positions") {
		t.Errorf("missing report title in %q", got)
	}
	if !strings.Contains(got, "No position matches the filter.") {
		t.Errorf("missing empty-report notice in %q", got)
	}
}

func TestPositionsMarkdown(t *testing.T) {
	positions := optrack.Reconstruct([]*optrack.Transaction{
		line("2022-03-14", optrack.SellToOpen, "PRU 03/18/2022 100.00 P", "2", "1.66"),
		line("2022-03-15", optrack.SellToOpen, "PRU 03/18/2022 110.00 P", "1", "1.61"),
		line("2022-03-16", optrack.BuyToClose, "PRU 03/18/2022 100.00 P", "2", "0.77"),
	})
	got := PositionsMarkdown(positions, Options{})

	for _, want := range []string{
		"## Position 1: CUSTOM (closed)",
		"## Position 2: CUSTOM (open)",
		"| Symbol | Opened | Contracts | Open Avg | Close Avg | Status |",
		"| PRU 03/18/2022 100.00 P | 03/14/2022 | 0 | $1.66 | $0.77 | closed |",
		"| PRU 03/18/2022 110.00 P | 03/15/2022 | -1 | $1.61 | - | open |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report is missing %q:\n%s", want, got)
		}
	}
}

func TestPositionsMarkdown_dateFormat(t *testing.T) {
	positions := optrack.Reconstruct([]*optrack.Transaction{
		line("2022-03-14", optrack.SellToOpen, "PRU 03/18/2022 100.00 P", "2", "1.66"),
	})
	got := PositionsMarkdown(positions, Options{DateFormat: date.DateFormat})
	if !strings.Contains(got, "| 2022-03-14 |") {
		t.Errorf("report did not honor the date format:\n%s", got)
	}
}
