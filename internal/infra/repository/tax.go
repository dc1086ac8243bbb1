package repository

import (
	"context"

	"hostel-booking/internal/infra"
	"hostel-booking/internal/infra/db"
)

type TaxConfigRepository struct{}

func NewTaxConfigRepository() *TaxConfigRepository {
	return &TaxConfigRepository{}
}

// Activate must run inside a transaction so the "at most one active row"
// invariant holds for every reader.
func (r *TaxConfigRepository) Activate(ctx context.Context, dbtx db.DBTX, percent int64) error {
	if _, err := dbtx.Exec(ctx, `UPDATE tax_configs SET active = FALSE WHERE active`); err != nil {
		return infra.WrapRepoErr("failed to deactivate tax configs", err)
	}
	if _, err := dbtx.Exec(ctx,
		`INSERT INTO tax_configs (percent, active) VALUES ($1, TRUE)`, percent,
	); err != nil {
		return infra.WrapRepoErr("failed to insert active tax config", err)
	}
	return nil
}
