package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/gst-server/internal/bankimport"
	"github.com/carson-networks/gst-server/internal/storage"
)

type ImportBankRows struct {
	UserID     uuid.UUID
	Candidates []bankimport.Candidate

	Result bankimport.Result
}

func (i *ImportBankRows) Perform(ctx context.Context, writer *storage.Writer) error {
	importer := bankimport.NewImporter(storage.NewImportStore(writer))

	result, err := importer.Import(ctx, i.UserID, i.Candidates)
	if err != nil {
		return err
	}

	i.Result = result
	return nil
}
