package optrack

import (
	"testing"
)

func TestReconstruct_reopen(t *testing.T) {
	txs := []*Transaction{
		line("2022-03-17", SellToOpen, "PRU 03/18/2022 100.00 P", "1", "1.66"),
		line("2022-03-18", BuyToClose, "PRU 03/18/2022 100.00 P", "1", "0.77"),
		line("2022-03-21", SellToOpen, "PRU 03/18/2022 100.00 P", "1", "1.20"),
	}
	positions := Reconstruct(txs)
	if len(positions) != 2 {
		t.Fatalf("Reconstruct() = %d positions, want 2 (closed then reopened)", len(positions))
	}
	if !positions[0].IsClosed() {
		t.Error("first position should be closed")
	}
	if positions[1].IsClosed() {
		t.Error("reopened position should be open")
	}
}

func TestReconstruct_scenario(t *testing.T) {
	p100 := "PRU 03/18/2022 100.00 P"
	p110 := "PRU 03/18/2022 110.00 P"
	txs := []*Transaction{
		line("2022-03-14", SellToOpen, p100, "1", "1.66"),
		line("2022-03-14", SellToOpen, p100, "1", "1.66"),
		line("2022-03-15", SellToOpen, p110, "1", "1.61"),
		line("2022-03-16", BuyToClose, p100, "1", "0.77"),
		line("2022-03-16", BuyToClose, p100, "1", "0.77"),
	}
	positions := Reconstruct(txs)
	if len(positions) != 2 {
		t.Fatalf("Reconstruct() = %d positions, want 2", len(positions))
	}

	closed := positions[0]
	if !closed.IsClosed() {
		t.Error("the 100 strike position should be closed")
	}
	leg := closed.Leg(p100)
	if leg == nil {
		t.Fatalf("no leg for %s", p100)
	}
	if got, ok := leg.OpenPrice(); !ok || !got.Equal(P("1.66")) {
		t.Errorf("OpenPrice() = %s, %v, want 1.66", got, ok)
	}
	if got, ok := leg.ClosePrice(); !ok || !got.Equal(P("0.77")) {
		t.Errorf("ClosePrice() = %s, %v, want 0.77", got, ok)
	}

	open := positions[1]
	if open.IsClosed() {
		t.Error("the 110 strike position should be open")
	}
	if got := open.Leg(p110).NetQuantity(); !got.Equal(Q("-1")) {
		t.Errorf("NetQuantity() = %s, want -1", got)
	}
}

func TestReconstruct_empty(t *testing.T) {
	if got := Reconstruct(nil); len(got) != 0 {
		t.Errorf("Reconstruct(nil) = %d positions, want 0", len(got))
	}
}

func TestPosition_AddLeg(t *testing.T) {
	pos := NewPosition()
	pos.AddLeg(NewLeg("X", line("2022-03-17", SellToOpen, "X", "2", "1.66")))
	pos.AddLeg(NewLeg("X", line("2022-03-18", BuyToClose, "X", "2", "0.77")))
	pos.AddLeg(NewLeg("Y", line("2022-03-18", SellToOpen, "Y", "1", "1.61")))

	if len(pos.Legs) != 2 {
		t.Fatalf("AddLeg() merged into %d legs, want 2", len(pos.Legs))
	}
	x := pos.Leg("X")
	if len(x.Lines) != 2 {
		t.Errorf("leg X has %d lines, want 2", len(x.Lines))
	}
	if !x.IsClosed() {
		t.Error("leg X should be closed after the merge")
	}
	if pos.IsClosed() {
		t.Error("position still has the open Y leg")
	}
}

func TestStrategy_String(t *testing.T) {
	if got := Custom.String(); got != "CUSTOM" {
		t.Errorf("Custom.String() = %q, want CUSTOM", got)
	}
	if got := ShortPut.String(); got != "SHORT_PUT" {
		t.Errorf("ShortPut.String() = %q, want SHORT_PUT", got)
	}
}
