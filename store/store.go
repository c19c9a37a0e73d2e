// Package store persists transactions idempotently to a document store and
// reads them back filtered and sorted for position reconstruction.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/etnz/optrack"
)

// Store is the transaction store adapter.
//
// Import upserts each position-relevant transaction under its natural key:
// a new key inserts the full document with an insertion timestamp, an
// existing key only refreshes the last-update timestamp. Importing
// overlapping batches repeatedly converges to the same stored state.
//
// Query returns the stored option open/close transactions matching the
// filter, sorted by timestamp ascending.
type Store interface {
	Import(ctx context.Context, txs []*optrack.Transaction) error
	Query(ctx context.Context, f optrack.Filter) ([]*optrack.Transaction, error)
	Close(ctx context.Context) error
}

// openCloseActions are the stored action names a position query selects.
var openCloseActions = []string{
	optrack.BuyToOpen.Name(),
	optrack.SellToOpen.Name(),
	optrack.BuyToClose.Name(),
	optrack.SellToClose.Name(),
}

// document is the persisted shape of a transaction. Price-like fields keep
// the "$"-string form so a stored document re-derives the parsed record
// byte-exactly.
type document struct {
	ID             string    `bson:"_id"`
	StrDate        string    `bson:"str_date"`
	Date           time.Time `bson:"date"`
	Action         string    `bson:"action"`
	Symbol         string    `bson:"symbol"`
	Desc           string    `bson:"desc"`
	Quantity       string    `bson:"quantity,omitempty"`
	Price          string    `bson:"price"`
	Fees           string    `bson:"fees"`
	Amount         string    `bson:"amount"`
	InsertionDate  time.Time `bson:"insertion_date"`
	LastUpdateDate time.Time `bson:"last_update_date,omitempty"`
	Underlying     string    `bson:"underlying,omitempty"`
	Expiration     string    `bson:"expiration,omitempty"`
	Strike         string    `bson:"strike,omitempty"`
	OptionType     string    `bson:"option_type,omitempty"`
}

// newDocument derives the stored document of a transaction. For options the
// symbol decomposition is stored alongside.
func newDocument(tx *optrack.Transaction, now time.Time) document {
	doc := document{
		ID:            tx.Key(),
		StrDate:       tx.RawDate,
		Date:          tx.Time.UTC(),
		Action:        tx.Action.Name(),
		Symbol:        tx.Symbol,
		Desc:          tx.Description,
		Quantity:      tx.Quantity.String(),
		Price:         tx.Price.Dollars(),
		Fees:          tx.Fees.Dollars(),
		Amount:        tx.Amount.Dollars(),
		InsertionDate: now,
	}
	if opt, ok := tx.Option(); ok {
		doc.Underlying = opt.Underlying
		doc.Expiration = opt.Expiration
		doc.Strike = opt.Strike
		doc.OptionType = string(opt.Type)
	}
	return doc
}

// transaction re-derives the parsed transaction from its stored document.
func (d document) transaction() (*optrack.Transaction, error) {
	action, err := optrack.ActionFromName(d.Action)
	if err != nil {
		return nil, fmt.Errorf("document %q: %w", d.ID, err)
	}
	quantity, err := optrack.ParseQuantity(d.Quantity)
	if err != nil {
		return nil, fmt.Errorf("document %q: invalid quantity: %w", d.ID, err)
	}
	price, err := optrack.ParseDollars(d.Price)
	if err != nil {
		return nil, fmt.Errorf("document %q: %w", d.ID, err)
	}
	fees, err := optrack.ParseDollars(d.Fees)
	if err != nil {
		return nil, fmt.Errorf("document %q: %w", d.ID, err)
	}
	amount, err := optrack.ParseDollars(d.Amount)
	if err != nil {
		return nil, fmt.Errorf("document %q: %w", d.ID, err)
	}
	return &optrack.Transaction{
		RawDate:     d.StrDate,
		Time:        d.Date.UTC(),
		Action:      action,
		Symbol:      d.Symbol,
		Description: d.Desc,
		Quantity:    quantity,
		Price:       price,
		Fees:        fees,
		Amount:      amount,
	}, nil
}
