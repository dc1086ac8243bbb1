package commands

import (
	"context"

	"hostel-booking/internal/pkg/config"
	"hostel-booking/internal/pkg/errs"
	"hostel-booking/internal/usecase/shared"
)

type TaxCommands interface {
	ActivePercent(ctx context.Context) (int64, error)
	// Activate swaps the active tax configuration; staff or admin only.
	Activate(ctx context.Context, actor Actor, percent int64) error
}

type taxCommandsImpl struct {
	uow        shared.UnitOfWork
	defaultTax int64
}

func NewTaxCommands(uow shared.UnitOfWork, cfg config.PricingConfig) TaxCommands {
	return &taxCommandsImpl{uow: uow, defaultTax: cfg.DefaultTaxPercent}
}

func (c *taxCommandsImpl) ActivePercent(ctx context.Context) (int64, error) {
	return activeTaxPercent(ctx, c.uow.CommandReads(), c.defaultTax)
}

func (c *taxCommandsImpl) Activate(ctx context.Context, actor Actor, percent int64) error {
	if !actor.Role.Privileged() {
		return errs.ErrForbidden
	}
	if percent < 0 || percent > 100 {
		return errs.ErrDomainValidation
	}
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.TaxConfigs().Activate(ctx, tx.DB(), percent)
	})
}
