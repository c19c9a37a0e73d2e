package optrack

import (
	"testing"

	"github.com/etnz/optrack/date"
)

// line builds a transaction for aggregation tests.
func line(d string, action Action, symbol, quantity, price string) *Transaction {
	return &Transaction{
		Time:     date.MustParse(d).Time(),
		Action:   action,
		Symbol:   symbol,
		Quantity: Q(quantity),
		Price:    P(price),
	}
}

func TestLeg_OpenPrice_weighted(t *testing.T) {
	testCases := []struct {
		name  string
		lines []*Transaction
		want  string
	}{
		{
			name: "single line",
			lines: []*Transaction{
				line("2022-03-17", SellToOpen, "X", "1", "21.07"),
			},
			want: "21.07",
		},
		{
			name: "two lines weighted",
			lines: []*Transaction{
				line("2022-03-17", SellToOpen, "X", "1", "21.07"),
				line("2022-03-18", SellToOpen, "X", "4", "21.7325"),
			},
			want: "21.6", // (1*21.07 + 4*21.7325) / 5
		},
		{
			name: "uneven weights",
			lines: []*Transaction{
				line("2022-03-17", BuyToOpen, "X", "1", "21.07"),
				line("2022-03-18", BuyToOpen, "X", "4", "21.70"),
			},
			want: "21.574", // (1*21.07 + 4*21.70) / 5, exact decimal
		},
		{
			name: "close lines do not contribute",
			lines: []*Transaction{
				line("2022-03-17", SellToOpen, "X", "2", "1.66"),
				line("2022-03-18", BuyToClose, "X", "2", "0.77"),
			},
			want: "1.66",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			leg := NewLeg("X", tc.lines...)
			got, ok := leg.OpenPrice()
			if !ok {
				t.Fatal("OpenPrice() ok = false, want true")
			}
			if !got.Equal(P(tc.want)) {
				t.Errorf("OpenPrice() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestLeg_OpenPrice_empty(t *testing.T) {
	leg := NewLeg("X", line("2022-03-18", BuyToClose, "X", "2", "0.77"))
	if _, ok := leg.OpenPrice(); ok {
		t.Error("OpenPrice() ok = true for a leg without opening lines")
	}
}

func TestLeg_ClosePrice(t *testing.T) {
	leg := NewLeg("X",
		line("2022-03-17", SellToOpen, "X", "2", "1.66"),
		line("2022-03-18", BuyToClose, "X", "1", "0.77"),
		line("2022-03-18", BuyToClose, "X", "1", "0.77"),
	)
	got, ok := leg.ClosePrice()
	if !ok {
		t.Fatal("ClosePrice() ok = false, want true")
	}
	if !got.Equal(P("0.77")) {
		t.Errorf("ClosePrice() = %s, want 0.77", got)
	}

	open := NewLeg("X", line("2022-03-17", SellToOpen, "X", "1", "1.61"))
	if _, ok := open.ClosePrice(); ok {
		t.Error("ClosePrice() ok = true for a leg without closing lines")
	}
}

func TestLeg_NetQuantity(t *testing.T) {
	testCases := []struct {
		name  string
		lines []*Transaction
		want  string
	}{
		{
			name:  "short open",
			lines: []*Transaction{line("2022-03-17", SellToOpen, "X", "1", "21.07")},
			want:  "-1",
		},
		{
			name: "short open and close",
			lines: []*Transaction{
				line("2022-03-17", SellToOpen, "X", "5", "21.07"),
				line("2022-03-18", BuyToClose, "X", "5", "20.00"),
			},
			want: "0",
		},
		{
			name: "long open",
			lines: []*Transaction{
				line("2022-03-17", BuyToOpen, "X", "2", "1.00"),
				line("2022-03-18", BuyToOpen, "X", "3", "1.10"),
			},
			want: "5",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			leg := NewLeg("X", tc.lines...)
			if got := leg.NetQuantity(); !got.Equal(Q(tc.want)) {
				t.Errorf("NetQuantity() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestLeg_IsClosed(t *testing.T) {
	open := NewLeg("X",
		line("2022-03-17", SellToOpen, "X", "5", "21.07"),
	)
	if open.IsClosed() {
		t.Error("a leg with only opens reports closed")
	}
	closed := NewLeg("X",
		line("2022-03-17", SellToOpen, "X", "5", "21.07"),
		line("2022-03-18", BuyToClose, "X", "5", "20.00"),
	)
	if !closed.IsClosed() {
		t.Error("a leg with net zero quantity reports open")
	}
}
