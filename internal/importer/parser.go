package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	enc "github.com/MrJamesThe3rd/aqari/internal/encoding"
	"github.com/MrJamesThe3rd/aqari/internal/transaction"
)

// DefaultCategory is used when a statement has no category column.
const DefaultCategory = "مستورد"

var dateLayouts = []string{time.DateOnly, "02/01/2006", "02-01-2006", "2006/01/02"}

// Parser reads statement CSV exports and produces transaction drafts. It
// detects the encoding, the delimiter and which layout is in use by
// matching column headers against known profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]transaction.Transaction, error) {
	utf8r, charset, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	slog.Debug("statement encoding detected", "charset", charset)

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching statement format found: expected date, description and amount columns")
	}

	return parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
}

// detectDelimiter picks whichever of comma, semicolon or tab appears most in
// the first non-empty line.
func detectDelimiter(data []byte) rune {
	for line := range bytes.Lines(data) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		best, count := ',', bytes.Count(line, []byte{','})
		for _, d := range []rune{';', '\t'} {
			if n := bytes.Count(line, []byte(string(d))); n > count {
				best, count = d, n
			}
		}

		return best
	}

	return ','
}

// colIndex maps lower-cased header names to their index in the row.
type colIndex map[string]int

func (c colIndex) find(aliases []string) (int, bool) {
	for _, a := range aliases {
		if i, ok := c[strings.ToLower(a)]; ok {
			return i, true
		}
	}

	return -1, false
}

func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, aliases := range p.required() {
		if _, ok := cols.find(aliases); !ok {
			return false
		}
	}

	return true
}

// parseRows skips rows without a readable date (totals, footers) and rows
// whose amount is empty or zero.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]transaction.Transaction, error) {
	dateIdx, _ := cols.find(p.DateCol)
	descIdx, _ := cols.find(p.DescCol)
	catIdx, _ := cols.find(p.CategoryCol)
	typeIdx, _ := cols.find(p.TypeCol)

	var txs []transaction.Transaction

	for i, row := range rows {
		rowNum := headerRowNum + i + 2

		date, ok := parseDate(cellValue(row, dateIdx))
		if !ok {
			continue
		}

		desc := cellValue(row, descIdx)
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		amount, txType, ok := rowAmount(p, cols, row)
		if !ok {
			continue
		}

		if t := transaction.Type(cellValue(row, typeIdx)); t == transaction.TypeRevenue || t == transaction.TypeExpense {
			txType = t
		}

		category := cellValue(row, catIdx)
		if category == "" {
			category = DefaultCategory
		}

		txs = append(txs, transaction.Transaction{
			Type:        txType,
			Category:    category,
			Amount:      amount,
			Date:        date.Format(time.DateOnly),
			Description: desc,
			PropertyID:  transaction.DefaultPropertyID,
		})
	}

	return txs, nil
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	s = digits.Replace(s)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func rowAmount(p *Profile, cols colIndex, row []string) (decimal.Decimal, transaction.Type, bool) {
	switch p.AmountMode {
	case amountSingle:
		idx, _ := cols.find(p.AmountCol)
		return singleAmount(cellValue(row, idx))
	case amountSplit:
		debitIdx, _ := cols.find(p.DebitCol)
		creditIdx, _ := cols.find(p.CreditCol)

		return splitAmount(cellValue(row, debitIdx), cellValue(row, creditIdx))
	}

	return decimal.Zero, "", false
}

// singleAmount treats a negative value as an expense.
func singleAmount(s string) (decimal.Decimal, transaction.Type, bool) {
	if s == "" {
		return decimal.Zero, "", false
	}

	d, err := parseAmount(s)
	if err != nil || d.IsZero() {
		return decimal.Zero, "", false
	}

	if d.IsNegative() {
		return d.Neg(), transaction.TypeExpense, true
	}

	return d, transaction.TypeRevenue, true
}

func splitAmount(debit, credit string) (decimal.Decimal, transaction.Type, bool) {
	if debit != "" {
		if d, err := parseAmount(debit); err == nil && !d.IsZero() {
			return d.Abs(), transaction.TypeExpense, true
		}
	}

	if credit != "" {
		if d, err := parseAmount(credit); err == nil && !d.IsZero() {
			return d.Abs(), transaction.TypeRevenue, true
		}
	}

	return decimal.Zero, "", false
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
