package service

import (
	"bytes"
	"context"

	"github.com/carson-networks/gst-server/internal/export"
	"github.com/carson-networks/gst-server/internal/gst"
	"github.com/carson-networks/gst-server/internal/period"
	"github.com/carson-networks/gst-server/internal/storage"
)

// CSVFile is a rendered export.
type CSVFile struct {
	Filename string
	Content  []byte
}

type ExportService struct {
	transactions *TransactionService
}

func NewExportService(store *storage.Storage) *ExportService {
	return &ExportService{transactions: NewTransactionService(store, nil)}
}

func (s *ExportService) rows(ctx context.Context, r period.Range) ([]export.Row, []gst.Line, error) {
	userID, ok := currentUser(ctx)
	if !ok {
		return nil, nil, nil
	}

	transactions, err := s.transactions.listRange(ctx, userID, r, true)
	if err != nil {
		return nil, nil, err
	}

	rows := make([]export.Row, len(transactions))
	for i, t := range transactions {
		rows[i] = t.exportRow()
	}
	return rows, lines(transactions), nil
}

// GSTReturnCSV renders the GST return ledger for r.
func (s *ExportService) GSTReturnCSV(ctx context.Context, r period.Range) (*CSVFile, error) {
	rows, _, err := s.rows(ctx, r)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.WriteGSTReturn(&buf, rows); err != nil {
		return nil, err
	}
	return &CSVFile{Filename: export.GSTReturnFilename(r.Start, r.End), Content: buf.Bytes()}, nil
}

// StatementCSV renders the statement for r.
func (s *ExportService) StatementCSV(ctx context.Context, r period.Range) (*CSVFile, error) {
	rows, txLines, err := s.rows(ctx, r)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = export.WriteStatement(&buf, export.Statement{
		From:    r.Start,
		To:      r.End,
		Summary: gst.Summarize(txLines),
		Rows:    rows,
	})
	if err != nil {
		return nil, err
	}
	return &CSVFile{Filename: export.StatementFilename(r.Start, r.End), Content: buf.Bytes()}, nil
}
