// Package ledger cuentas por cobrar de vendors generadas por las ventas a crédito.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
	"github.com/jhoicas/stonecrusher-api/internal/domain"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
)

// Auditor registra "quién hizo qué".
type Auditor interface {
	Record(ctx context.Context, userID, action, details string)
}

// UseCase listado y cobro de entradas del ledger.
type UseCase struct {
	tx    repository.TxRunner
	repo  repository.VendorLedgerRepository
	audit Auditor
	now   func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(tx repository.TxRunner, repo repository.VendorLedgerRepository, audit Auditor) *UseCase {
	return &UseCase{tx: tx, repo: repo, audit: audit, now: time.Now}
}

// List devuelve todas las entradas, más reciente primero.
func (uc *UseCase) List(ctx context.Context) ([]*entity.VendorLedger, error) {
	return uc.repo.List(ctx)
}

// Pay marca una entrada Credit como Paid junto con su venta de origen.
// Una entrada ya pagada devuelve ErrValidation y queda como estaba.
func (uc *UseCase) Pay(ctx context.Context, userID string, in dto.PayLedgerRequest) (*entity.VendorLedger, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	var paid *entity.VendorLedger
	err := uc.tx.Run(ctx, func(r repository.TxRepos) error {
		e, err := r.Ledger.GetForUpdate(ctx, in.LedgerID)
		if err != nil {
			return err
		}
		if e == nil {
			return domain.Errorf(domain.ErrNotFound, "Ledger entry not found")
		}
		if e.Status == entity.PaymentStatusPaid {
			return domain.Errorf(domain.ErrValidation, "Payment already completed")
		}
		now := uc.now()
		if err := r.Ledger.MarkPaid(ctx, e.ID, now); err != nil {
			return err
		}
		if err := r.Sales.UpdateStatus(ctx, e.SaleID, entity.PaymentStatusPaid); err != nil {
			return err
		}
		e.Status = entity.PaymentStatusPaid
		e.PaidAt = &now
		paid = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, userID, "Payment Received",
		fmt.Sprintf("₹%s from %s (sale %s)", paid.Amount, paid.Vendor, paid.SaleID))
	return paid, nil
}
