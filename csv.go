package optrack

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/etnz/optrack/date"
)

// footerMarker is the first field of the export's trailing total row.
const footerMarker = "Transactions Total"

// asOfMarker prefixes dates of transactions settled on a different day.
const asOfMarker = "as of "

// LoadCSVFile reads a broker transaction export from disk.
func LoadCSVFile(filename string) ([]*Transaction, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open transactions file: %w", err)
	}
	defer f.Close()
	return LoadCSV(f, filename)
}

// LoadCSV parses a broker transaction export. Rows that fail to parse are
// logged with the file name and line number and dropped; the batch
// continues. A price field missing its "$" marker is a structural violation
// of the export format and aborts the whole load with an error wrapping
// ErrMissingDollar.
//
// The name is only used in logs and error messages.
func LoadCSV(r io.Reader, name string) ([]*Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // the export has a trailing comma, field counts vary
	reader.LazyQuotes = true

	var txs []*Transaction
	lnum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: reading CSV: %w", name, err)
		}
		lnum++

		if len(row) < 2 {
			continue // title row
		}
		if len(row) > 8 {
			row = row[:8] // trailing-comma artifact
		}
		if lnum < 3 && allNonNumeric(row) {
			continue // column header
		}
		if row[0] == footerMarker {
			continue
		}

		tx, err := ParseRow(row, lnum)
		if err != nil {
			if errors.Is(err, ErrMissingDollar) {
				return nil, fmt.Errorf("%s line %d: %w", name, lnum, err)
			}
			log.Error().Str("file", name).Int("line", lnum).Err(err).Msg("dropping row")
			continue
		}
		txs = append(txs, tx)
	}

	sequenceSameDay(txs)
	return txs, nil
}

// ParseRow turns one delimited row into a Transaction. The line number is
// only used in error messages.
func ParseRow(row []string, lnum int) (*Transaction, error) {
	if len(row) < 8 {
		return nil, fmt.Errorf("line %d: expected 8 fields, got %d", lnum, len(row))
	}

	rawDate := row[0]
	if i := strings.Index(rawDate, asOfMarker); i >= 0 {
		rawDate = rawDate[i+len(asOfMarker):]
	}
	day, err := date.ParseUS(rawDate)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", lnum, err)
	}

	action, err := ParseAction(row[1])
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", lnum, err)
	}

	quantity, err := ParseQuantity(row[4])
	if err != nil {
		return nil, fmt.Errorf("line %d: invalid quantity %q: %w", lnum, row[4], err)
	}

	price, err := ParsePrice(row[5])
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", lnum, err)
	}
	fees, err := ParsePrice(row[6])
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", lnum, err)
	}
	amount, err := ParsePrice(row[7])
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", lnum, err)
	}

	return &Transaction{
		RawDate:     rawDate,
		Time:        day.Time(),
		Action:      action,
		Symbol:      row[2],
		Description: row[3],
		Quantity:    quantity,
		Price:       price,
		Fees:        fees,
		Amount:      amount,
	}, nil
}

// allNonNumeric reports whether no field of the row is a plain number, the
// signature of a column-header row.
func allNonNumeric(row []string) bool {
	for _, field := range row {
		if isNumeric(field) {
			return false
		}
	}
	return true
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// sequenceSameDay assigns artificial intra-day second offsets to rows sharing
// one calendar date. The exporter lists same-day rows newest first, so the
// last row of a day gets offset 0 and each row above it one second more:
// sorting by time then restores the exporter's apparent chronology, and
// natural keys of same-day rows never collide.
func sequenceSameDay(txs []*Transaction) {
	byDay := make(map[time.Time][]*Transaction)
	for _, tx := range txs {
		day := tx.Time
		byDay[day] = append(byDay[day], tx)
	}
	for _, day := range byDay {
		n := len(day)
		for i, tx := range day {
			tx.Time = tx.Time.Add(time.Duration(n-1-i) * time.Second)
		}
	}
}
