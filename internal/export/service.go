// Package export writes the transaction ledger as CSV.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"

	"github.com/MrJamesThe3rd/aqari/internal/listing"
	"github.com/MrJamesThe3rd/aqari/internal/transaction"
)

type Encoding string

const (
	EncodingUTF8        Encoding = "utf-8"
	EncodingWindows1256 Encoding = "windows-1256"
)

var header = []string{"id", "date", "type", "category", "amount", "description", "propertyId", "unitId"}

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

type Lister interface {
	List(ctx context.Context) []transaction.Transaction
}

type Options struct {
	Query    string
	Sort     listing.Spec
	Encoding Encoding
}

type Service struct {
	transactions Lister
	view         listing.View[transaction.Transaction]
}

func NewService(txs Lister, tag language.Tag) *Service {
	return &Service{
		transactions: txs,
		view:         transaction.View(tag),
	}
}

// ParseEncoding accepts the supported encodings; an empty string means UTF-8.
func ParseEncoding(s string) (Encoding, error) {
	switch e := Encoding(s); e {
	case "", EncodingUTF8:
		return EncodingUTF8, nil
	case EncodingWindows1256:
		return e, nil
	default:
		return "", fmt.Errorf("unsupported encoding %q", s)
	}
}

// Export writes the filtered, sorted ledger to w and returns the number of
// rows written. UTF-8 output starts with a BOM so spreadsheets pick the
// right encoding. Characters outside Windows-1256 are replaced.
func (s *Service) Export(ctx context.Context, w io.Writer, opts Options) (int, error) {
	txs := s.view.Apply(s.transactions.List(ctx), opts.Query, opts.Sort)

	var (
		out    = w
		closer io.Closer
	)

	switch opts.Encoding {
	case EncodingWindows1256:
		tw := transform.NewWriter(w, encoding.ReplaceUnsupported(charmap.Windows1256.NewEncoder()))
		out, closer = tw, tw
	default:
		if _, err := w.Write(bomUTF8); err != nil {
			return 0, fmt.Errorf("write bom: %w", err)
		}
	}

	cw := csv.NewWriter(out)

	if err := cw.Write(header); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	for _, tx := range txs {
		if err := cw.Write(record(tx)); err != nil {
			return 0, fmt.Errorf("write transaction %d: %w", tx.ID, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flush csv: %w", err)
	}

	if closer != nil {
		if err := closer.Close(); err != nil {
			return 0, fmt.Errorf("encode: %w", err)
		}
	}

	return len(txs), nil
}

func record(tx transaction.Transaction) []string {
	return []string{
		strconv.FormatInt(tx.ID, 10),
		tx.Date,
		string(tx.Type),
		tx.Category,
		tx.Amount.String(),
		tx.Description,
		strconv.FormatInt(tx.PropertyID, 10),
		strconv.FormatInt(tx.UnitID, 10),
	}
}
