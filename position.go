package optrack

// Strategy tags a position with the option strategy it implements. No
// classification is attempted yet: reconstruction always assigns Custom, the
// other variants are declared for the day it is.
type Strategy int

const (
	Custom Strategy = iota
	ShortPut
	ShortCall
	LongPut
	LongCall
)

var strategyNames = map[Strategy]string{
	Custom:    "CUSTOM",
	ShortPut:  "SHORT_PUT",
	ShortCall: "SHORT_CALL",
	LongPut:   "LONG_PUT",
	LongCall:  "LONG_CALL",
}

func (s Strategy) String() string { return strategyNames[s] }

// Position is one or more legs considered a single trade, from the first
// opening transaction to full closure. A position exclusively owns its legs.
type Position struct {
	Strategy Strategy
	Legs     []*Leg
}

// NewPosition creates an empty, unclassified position.
func NewPosition() *Position { return &Position{Strategy: Custom} }

// IsClosed reports whether every leg of the position is closed. An empty
// position is vacuously closed.
func (p *Position) IsClosed() bool {
	for _, l := range p.Legs {
		if !l.IsClosed() {
			return false
		}
	}
	return true
}

// Leg returns the position's leg for the exact symbol, or nil.
func (p *Position) Leg(symbol string) *Leg {
	for _, l := range p.Legs {
		if l.Symbol == symbol {
			return l
		}
	}
	return nil
}

// AddLeg merges a leg into the position: lines of an existing leg with the
// same symbol are appended in order, otherwise the leg joins as a new one.
func (p *Position) AddLeg(leg *Leg) {
	found := p.Leg(leg.Symbol)
	if found == nil {
		p.Legs = append(p.Legs, leg)
		return
	}
	for _, line := range leg.Lines {
		found.append(line)
	}
}

// add routes one transaction into the leg matching its exact symbol,
// creating the leg on first sight.
func (p *Position) add(tx *Transaction) {
	leg := p.Leg(tx.Symbol)
	if leg == nil {
		leg = NewLeg(tx.Symbol)
		p.Legs = append(p.Legs, leg)
	}
	leg.append(tx)
}

// Reconstruct rebuilds positions from position-relevant transactions in a
// single forward pass. The input is expected in timestamp order (the store
// query guarantees it), so that same-symbol records group correctly.
//
// A symbol has at most one open position at a time. A record for a symbol
// with no open position starts a new one; once a position fully closes, a
// later record for the same symbol starts a fresh position (reopen). The
// returned order is the order of first creation.
func Reconstruct(txs []*Transaction) []*Position {
	open := make(map[string]*Position)
	var positions []*Position

	for _, tx := range txs {
		pos := open[tx.Symbol]
		if pos == nil {
			pos = NewPosition()
			open[tx.Symbol] = pos
			positions = append(positions, pos)
		}
		pos.add(tx)
		if pos.IsClosed() {
			delete(open, tx.Symbol)
		}
	}
	return positions
}
