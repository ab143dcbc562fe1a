// Package importer turns statement CSV files into transactions.
package importer

import (
	"context"
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/aqari/internal/notify"
	"github.com/MrJamesThe3rd/aqari/internal/transaction"
)

const (
	msgImported = "تم استيراد %d معاملة بنجاح"
	msgEmpty    = "لم يتم العثور على معاملات في الملف"
)

type Importer interface {
	Parse(r io.Reader) ([]transaction.Transaction, error)
}

// Batch stores parsed drafts. It is satisfied by the transactions controller.
type Batch interface {
	AddAll(ctx context.Context, drafts []transaction.Transaction) ([]transaction.Transaction, error)
}

type Service struct {
	parser   Importer
	txs      Batch
	notifier notify.Notifier
}

func NewService(txs Batch, notifier notify.Notifier) *Service {
	return &Service{
		parser:   NewParser(),
		txs:      txs,
		notifier: notifier,
	}
}

// Import parses r and adds every transaction found. A file without any
// transaction rows is not an error.
func (s *Service) Import(ctx context.Context, r io.Reader) ([]transaction.Transaction, error) {
	drafts, err := s.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	if len(drafts) == 0 {
		s.notifier.Push(msgEmpty, notify.KindInfo)
		return nil, nil
	}

	added, err := s.txs.AddAll(ctx, drafts)
	if err != nil {
		return nil, fmt.Errorf("add imported transactions: %w", err)
	}

	s.notifier.Push(fmt.Sprintf(msgImported, len(added)), notify.KindSuccess)

	return added, nil
}
