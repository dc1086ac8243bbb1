package readstore

import (
	"context"

	"hostel-booking/internal/infra"
	"hostel-booking/internal/infra/db"
)

type TaxReadStore struct {
	dbtx db.DBTX
}

func NewTaxReadStore(dbtx db.DBTX) *TaxReadStore {
	return &TaxReadStore{dbtx: dbtx}
}

const activeTaxPercentSQL = `SELECT percent FROM tax_configs WHERE active LIMIT 1`

// ActivePercent returns a NOT_FOUND repository error when no configuration
// row is active; the configured default is the caller's concern.
func (s *TaxReadStore) ActivePercent(ctx context.Context) (int64, error) {
	var percent int64
	err := s.dbtx.QueryRow(ctx, activeTaxPercentSQL).Scan(&percent)
	if err != nil {
		if infra.IsNoRows(err) {
			return 0, infra.WrapRepoErr("no active tax config", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to read active tax percent", err)
	}
	return percent, nil
}
