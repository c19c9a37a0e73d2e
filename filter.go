package optrack

import (
	"fmt"
	"regexp"

	"github.com/etnz/optrack/date"
)

// Filter restricts which stored transactions a position query returns. The
// zero Filter matches every option open/close transaction.
type Filter struct {
	// Symbol is a case-insensitive regular expression matched against the
	// full symbol token. Empty means no restriction.
	Symbol string

	// Underlying is a case-insensitive exact match against the option's
	// underlying. Empty means no restriction.
	Underlying string

	// Range bounds the transaction date, either side optionally open.
	Range date.Range
}

// SymbolRegexp compiles the case-insensitive symbol pattern, or returns
// (nil, nil) when no symbol restriction is set.
func (f Filter) SymbolRegexp() (*regexp.Regexp, error) {
	if f.Symbol == "" {
		return nil, nil
	}
	re, err := regexp.Compile("(?i)" + f.Symbol)
	if err != nil {
		return nil, fmt.Errorf("invalid symbol filter %q: %w", f.Symbol, err)
	}
	return re, nil
}
