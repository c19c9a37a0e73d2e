package optrack

// Leg is the aggregated transaction history for one exact tradable symbol
// within one position lifecycle. Lines are append-only and never reordered
// once merged; every derived value is recomputed from the lines on demand.
type Leg struct {
	Symbol string
	Lines  []*Transaction
}

// NewLeg creates a Leg for a symbol with its initial lines.
func NewLeg(symbol string, lines ...*Transaction) *Leg {
	return &Leg{Symbol: symbol, Lines: lines}
}

// append adds a line to the leg, preserving the order of earlier lines.
func (l *Leg) append(tx *Transaction) { l.Lines = append(l.Lines, tx) }

// NetQuantity is the signed sum of the leg's contracts: buys add, sells
// subtract, whether they open or close. A negative value means a short leg.
func (l *Leg) NetQuantity() Quantity {
	var net Quantity
	for _, tx := range l.Lines {
		switch {
		case tx.Action.IsBuy():
			net = net.Add(tx.Quantity)
		case tx.Action.IsSell():
			net = net.Sub(tx.Quantity)
		}
	}
	return net
}

// OpenPrice is the quantity-weighted average price over the leg's opening
// lines. ok is false when the leg has no opening line.
func (l *Leg) OpenPrice() (avg Price, ok bool) {
	return l.weightedAverage(Action.IsOpen)
}

// ClosePrice is the quantity-weighted average price over the leg's closing
// lines. ok is false when the leg has no closing line.
func (l *Leg) ClosePrice() (avg Price, ok bool) {
	return l.weightedAverage(Action.IsClose)
}

// weightedAverage computes sum(price*quantity)/sum(quantity) over the lines
// selected by the predicate, in exact decimal arithmetic.
func (l *Leg) weightedAverage(match func(Action) bool) (Price, bool) {
	var sum Price
	var total Quantity
	found := false
	for _, tx := range l.Lines {
		if !match(tx.Action) || !tx.Quantity.Valid() {
			continue
		}
		sum = sum.Add(tx.Price.Mul(tx.Quantity))
		total = total.Add(tx.Quantity)
		found = true
	}
	if !found || total.IsZero() {
		return Price{}, false
	}
	return sum.Div(total), true
}

// IsClosed reports whether the leg is fully closed, that is its net quantity
// is zero.
func (l *Leg) IsClosed() bool { return l.NetQuantity().IsZero() }
