package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stonecrusher-api/internal/application/audit"
	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
	"github.com/jhoicas/stonecrusher-api/internal/application/notification"
	"github.com/jhoicas/stonecrusher-api/internal/application/usecase"
	"github.com/jhoicas/stonecrusher-api/internal/domain"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/infrastructure/memory"
	"github.com/jhoicas/stonecrusher-api/pkg/logger"
)

const adminID = "admin-1"

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// spyAuditor registra las acciones auditadas.
type spyAuditor struct {
	mu      sync.Mutex
	actions []string
}

func (a *spyAuditor) Record(_ context.Context, _, action, _ string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.actions = append(a.actions, action)
}

func newCatalog(s *memory.Store, a usecase.Auditor) *usecase.CatalogUseCase {
	return usecase.NewCatalogUseCase(
		memory.NewMaterialRepository(s), memory.NewTruckRepository(s), memory.NewVendorRepository(s), a,
	)
}

func TestCatalog_Duplicados(t *testing.T) {
	s := memory.NewStore()
	spy := &spyAuditor{}
	uc := newCatalog(s, spy)
	ctx := context.Background()

	_, err := uc.CreateMaterial(ctx, adminID, dto.CreateMaterialRequest{Name: "20mm", Rate: dec("450")})
	require.NoError(t, err)
	_, err = uc.CreateMaterial(ctx, adminID, dto.CreateMaterialRequest{Name: " 20mm ", Rate: dec("500")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.CreateTruck(ctx, adminID, dto.CreateTruckRequest{Number: "KA01AB1234"})
	require.NoError(t, err)
	_, err = uc.CreateTruck(ctx, adminID, dto.CreateTruckRequest{Number: "KA01AB1234"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.CreateVendor(ctx, adminID, dto.CreateVendorRequest{Name: "Acme"})
	require.NoError(t, err)
	_, err = uc.CreateVendor(ctx, adminID, dto.CreateVendorRequest{Name: "Acme"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	assert.Equal(t, []string{"Material Added", "Truck Added", "Vendor Added"}, spy.actions)

	materials, err := uc.ListMaterials(ctx)
	require.NoError(t, err)
	require.Len(t, materials, 1)
	assert.True(t, decimal.NewFromInt(450).Equal(materials[0].Rate))
}

func TestCatalog_TarifaNegativa(t *testing.T) {
	uc := newCatalog(memory.NewStore(), &spyAuditor{})
	_, err := uc.CreateMaterial(context.Background(), adminID, dto.CreateMaterialRequest{Name: "Dust", Rate: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateRate_HistoricoYNotificacion(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	users := memory.NewUserRepository(s)
	require.NoError(t, users.Create(ctx, &entity.User{ID: adminID, Email: "admin@example.com", Role: entity.RoleAdmin}))

	spy := &spyAuditor{}
	_, err := newCatalog(s, spy).CreateMaterial(ctx, adminID, dto.CreateMaterialRequest{Name: "20mm", Rate: dec("450")})
	require.NoError(t, err)

	notifications := notification.NewService(
		memory.NewNotificationRepository(s), memory.NewStockRepository(s), memory.NewVendorLedgerRepository(s),
		memory.NewAnalyticsRepository(s), users, nil,
		notification.Config{LowStockThreshold: decimal.NewFromInt(100), Location: time.UTC}, logger.Nop(),
	)
	rates := memory.NewRateRepository(s)
	uc := usecase.NewRateUseCase(memory.NewTxRunner(s), rates, audit.NewRecorder(memory.NewAuditLogRepository(s), logger.Nop()), notifications)

	r, err := uc.UpdateRate(ctx, adminID, dto.UpdateRateRequest{Material: "20mm", Rate: dec("500")})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(450).Equal(r.PreviousRate))
	assert.True(t, decimal.NewFromInt(500).Equal(r.Rate))

	m, err := memory.NewMaterialRepository(s).GetByName(ctx, "20mm")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(500).Equal(m.Rate))

	list, err := notifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.NotificationRateChange, list[0].Type)
	assert.Equal(t, "Rate for 20mm changed from ₹450 to ₹500", list[0].Message)

	history, err := uc.ListRates(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "admin@example.com", history[0].ChangedByEmail)
}

func TestUpdateRate_MaterialInexistente(t *testing.T) {
	s := memory.NewStore()
	uc := usecase.NewRateUseCase(memory.NewTxRunner(s), memory.NewRateRepository(s), &spyAuditor{}, nil)
	_, err := uc.UpdateRate(context.Background(), adminID, dto.UpdateRateRequest{Material: "40mm", Rate: dec("10")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	history, err := uc.ListRates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestExpenses(t *testing.T) {
	s := memory.NewStore()
	spy := &spyAuditor{}
	uc := usecase.NewExpenseUseCase(memory.NewExpenseRepository(s), memory.NewMaintenanceRepository(s), spy)
	ctx := context.Background()

	e, err := uc.CreateExpense(ctx, adminID, dto.CreateExpenseRequest{ExpenseCategory: "Diesel", Amount: dec("2500")})
	require.NoError(t, err)
	assert.Equal(t, adminID, e.CreatedBy)

	_, err = uc.CreateExpense(ctx, adminID, dto.CreateExpenseRequest{ExpenseCategory: "Diesel"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	m, err := uc.CreateMaintenance(ctx, adminID, dto.CreateMaintenanceRequest{
		Equipment: "Jaw crusher", Issue: "Bearing noise", Cost: dec("12000"), File: "/uploads/x-bill.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/x-bill.pdf", m.File)

	list, err := uc.ListMaintenance(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, []string{"Expense Added", "Maintenance Added"}, spy.actions)
}
