package services

import (
	"context"

	"eventmanagement/internal/domain"
)

// runInTx runs fn inside one unit-of-work transaction: begin, fn, rollback
// and re-throw on any error, commit otherwise. Every multi-step mutation
// goes through here; no operation spans two transactions.
func runInTx(ctx context.Context, uow domain.UnitOfWork, fn func(tx domain.Tx) error) error {
	tx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
