package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stonecrusher-api/internal/application/audit"
	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
	"github.com/jhoicas/stonecrusher-api/internal/application/ledger"
	"github.com/jhoicas/stonecrusher-api/internal/domain"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/infrastructure/memory"
	"github.com/jhoicas/stonecrusher-api/pkg/logger"
)

func setup(t *testing.T) (*ledger.UseCase, *memory.SaleRepo, *memory.VendorLedgerRepo, *memory.AuditLogRepo) {
	t.Helper()
	s := memory.NewStore()
	ctx := context.Background()
	sales := memory.NewSaleRepository(s)
	entries := memory.NewVendorLedgerRepository(s)
	logs := memory.NewAuditLogRepository(s)

	now := time.Now()
	require.NoError(t, sales.Create(ctx, &entity.Sale{
		ID: "sale-1", Vendor: "Acme", Material: "20mm",
		Quantity: decimal.NewFromInt(20), Rate: decimal.NewFromInt(500), Total: decimal.NewFromInt(10000),
		PaymentMethod: entity.PaymentMethodCash, Status: entity.PaymentStatusCredit, CreatedBy: "op", Date: now,
	}))
	require.NoError(t, entries.Create(ctx, &entity.VendorLedger{
		ID: "led-1", Vendor: "Acme", SaleID: "sale-1", Amount: decimal.NewFromInt(10000),
		Status: entity.PaymentStatusCredit, Date: now,
	}))

	uc := ledger.NewUseCase(memory.NewTxRunner(s), entries, audit.NewRecorder(logs, logger.Nop()))
	return uc, sales, entries, logs
}

func TestPay_MarcaLedgerYVenta(t *testing.T) {
	uc, sales, _, logs := setup(t)
	ctx := context.Background()

	paid, err := uc.Pay(ctx, "admin-1", dto.PayLedgerRequest{LedgerID: "led-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, paid.Status)
	require.NotNil(t, paid.PaidAt)

	sale, err := sales.GetByID(ctx, "sale-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, sale.Status)

	audit, err := logs.List(ctx)
	require.NoError(t, err)
	require.Len(t, audit, 1)
	assert.Equal(t, "Payment Received", audit[0].Action)
}

func TestPay_DosVeces(t *testing.T) {
	uc, _, entries, _ := setup(t)
	ctx := context.Background()

	first, err := uc.Pay(ctx, "admin-1", dto.PayLedgerRequest{LedgerID: "led-1"})
	require.NoError(t, err)

	_, err = uc.Pay(ctx, "admin-1", dto.PayLedgerRequest{LedgerID: "led-1"})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "Payment already completed", domain.Message(err))

	e, err := entries.GetForUpdate(ctx, "led-1")
	require.NoError(t, err)
	assert.True(t, first.PaidAt.Equal(*e.PaidAt), "el segundo intento no toca paidAt")
}

func TestPay_Inexistente(t *testing.T) {
	uc, _, _, _ := setup(t)
	_, err := uc.Pay(context.Background(), "admin-1", dto.PayLedgerRequest{LedgerID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Pay(context.Background(), "admin-1", dto.PayLedgerRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
