package optrack

import (
	"fmt"
	"strings"
	"time"
)

// keyTimeFormat is the timestamp layout inside the natural key.
const keyTimeFormat = "2006-01-02 15:04:05"

// Transaction is one typed broker transaction row. It is immutable once
// constructed: aggregation never rewrites a record, it only derives from it.
type Transaction struct {
	// RawDate is the date text as printed by the broker (post "as of" strip).
	RawDate string

	// Time is the parsed timestamp. Broker exports are date-only; same-day
	// rows receive artificial second offsets (see sequenceSameDay) so the
	// intra-day order is strict and stable.
	Time time.Time

	// Action is the transaction kind.
	Action Action

	// Symbol is the raw symbol token. For options it is the composite
	// "UNDERLYING EXPIRATION STRIKE TYPE" string.
	Symbol string

	// Description is the broker's free-form description.
	Description string

	// Quantity is the number of shares or contracts, absent for cash events.
	Quantity Quantity

	// Price is the per-share or per-contract price.
	Price Price

	// Fees is the transaction fees and commissions.
	Fees Price

	// Amount is the total cost or proceeds.
	Amount Price
}

// Key derives the natural key of the transaction, used as the idempotency
// key in storage. Two imports of the same row always derive the same key.
func (t *Transaction) Key() string {
	return fmt.Sprintf("%s:%d_#%s_%s@%s",
		t.Time.Format(keyTimeFormat), int(t.Action), t.Quantity, t.Symbol, t.Price)
}

// IsOption reports whether the transaction trades an option contract.
func (t *Transaction) IsOption() bool { return t.Action.IsOption() }

// Equal reports whether both transactions carry the same values.
func (t *Transaction) Equal(o *Transaction) bool {
	return t.RawDate == o.RawDate &&
		t.Time.Equal(o.Time) &&
		t.Action == o.Action &&
		t.Symbol == o.Symbol &&
		t.Description == o.Description &&
		t.Quantity.Equal(o.Quantity) &&
		t.Price.Equal(o.Price) &&
		t.Fees.Equal(o.Fees) &&
		t.Amount.Equal(o.Amount)
}

// OptionType distinguishes puts from calls.
type OptionType string

const (
	Put  OptionType = "PUT"
	Call OptionType = "CALL"
)

// Option is the decomposition of a composite option symbol.
type Option struct {
	Underlying string
	Expiration string
	Strike     string
	Type       OptionType
}

// Option decomposes the symbol of an option transaction into its four
// tokens. ok is false when the symbol is not a composite option symbol.
func (t *Transaction) Option() (opt Option, ok bool) {
	tokens := strings.Split(t.Symbol, " ")
	if len(tokens) != 4 {
		return Option{}, false
	}
	typ := Call
	if tokens[3] == "P" {
		typ = Put
	}
	return Option{
		Underlying: tokens[0],
		Expiration: tokens[1],
		Strike:     tokens[2],
		Type:       typ,
	}, true
}
