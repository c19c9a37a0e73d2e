package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/etnz/optrack"
)

// Memory is an in-memory Store with the same observable semantics as the
// MongoDB adapter. It backs the tests and works as a scratch store for
// one-shot runs without a database.
type Memory struct {
	mu    sync.Mutex
	docs  map[string]document
	order []string // insertion order of keys
	// now stands in for the wall clock in tests.
	now func() time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string]document), now: time.Now}
}

// Close implements Store; nothing to release.
func (s *Memory) Close(context.Context) error { return nil }

// Import upserts the position-relevant transactions under their natural key.
func (s *Memory) Import(_ context.Context, txs []*optrack.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range txs {
		if !tx.Action.IsPositionRelevant() {
			continue
		}
		now := s.now().UTC()
		key := tx.Key()
		if existing, ok := s.docs[key]; ok {
			// Payload fields are immutable once inserted.
			existing.LastUpdateDate = now
			s.docs[key] = existing
			continue
		}
		doc := newDocument(tx, now)
		doc.LastUpdateDate = now
		s.docs[key] = doc
		s.order = append(s.order, key)
	}
	return nil
}

// Query returns the stored option open/close transactions matching the
// filter, sorted by date ascending (ties keep insertion order).
func (s *Memory) Query(_ context.Context, f optrack.Filter) ([]*optrack.Transaction, error) {
	symbolRe, err := f.SymbolRegexp()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	var matched []document
	for _, key := range s.order {
		doc := s.docs[key]
		if doc.Underlying == "" {
			continue
		}
		if !isOpenClose(doc.Action) {
			continue
		}
		if symbolRe != nil && !symbolRe.MatchString(doc.Symbol) {
			continue
		}
		if f.Underlying != "" && !strings.EqualFold(doc.Underlying, f.Underlying) {
			continue
		}
		if !f.Range.ContainsTime(doc.Date) {
			continue
		}
		matched = append(matched, doc)
	}
	s.mu.Unlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})

	txs := make([]*optrack.Transaction, 0, len(matched))
	for _, doc := range matched {
		tx, err := doc.transaction()
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// Document returns the stored document for a natural key, for inspection in
// tests. ok is false when the key was never inserted.
func (s *Memory) Document(key string) (doc map[string]any, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[key]
	if !ok {
		return nil, false
	}
	m := map[string]any{
		"_id":              d.ID,
		"str_date":         d.StrDate,
		"date":             d.Date,
		"action":           d.Action,
		"symbol":           d.Symbol,
		"desc":             d.Desc,
		"price":            d.Price,
		"fees":             d.Fees,
		"amount":           d.Amount,
		"insertion_date":   d.InsertionDate,
		"last_update_date": d.LastUpdateDate,
	}
	if d.Quantity != "" {
		m["quantity"] = d.Quantity
	}
	if d.Underlying != "" {
		m["underlying"] = d.Underlying
		m["expiration"] = d.Expiration
		m["strike"] = d.Strike
		m["option_type"] = d.OptionType
	}
	return m, true
}

// Len returns the number of stored documents.
func (s *Memory) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

func isOpenClose(action string) bool {
	for _, a := range openCloseActions {
		if a == action {
			return true
		}
	}
	return false
}

var _ Store = (*Memory)(nil)
