package codec

import (
	"context"
	"errors"
	"fmt"

	"github.com/rentfolio/rentfolio/internal/common"
	"github.com/rentfolio/rentfolio/internal/service"
)

// Importer applies external payloads to a store.
type Importer struct {
	store service.Store
}

// NewImporter creates an importer over the given store.
func NewImporter(store service.Store) *Importer {
	return &Importer{store: store}
}

// Import detects the payload format and applies it. onRow, when non-nil,
// is called once per applied record so callers can drive a progress
// indicator. Callers should check Detect(data).Destructive() and obtain
// confirmation before invoking Import on a snapshot.
func (i *Importer) Import(ctx context.Context, data []byte, onRow func()) (*ImportResult, error) {
	switch Detect(data) {
	case FormatSnapshot:
		return i.importSnapshot(ctx, data, onRow)
	case FormatTransactions:
		return i.importTransactions(ctx, data, onRow)
	case FormatAccounts:
		return i.importAccounts(ctx, data, onRow)
	case FormatProperties:
		return i.importProperties(ctx, data, onRow)
	default:
		return nil, fmt.Errorf("%w: header matches no known file shape", common.ErrUnrecognizedFormat)
	}
}

// rowError decides whether a failed add aborts the import or only skips the
// row. Storage faults abort; anything else is a bad record and is tallied.
func rowError(result *ImportResult, err error) error {
	if errors.Is(err, common.ErrStorageFault) {
		return err
	}
	result.Skipped++
	return nil
}

func notify(onRow func()) {
	if onRow != nil {
		onRow()
	}
}
