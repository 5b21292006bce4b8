package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
	"github.com/jhoicas/stonecrusher-api/internal/application/ports"
	"github.com/jhoicas/stonecrusher-api/internal/domain"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/infrastructure/memory"
)

var ist = time.FixedZone("IST", 5*3600+1800)

type fakeRenderer struct {
	ext    string
	report *dto.ReportDTO
	date   string
	logs   []dto.LogEntryDTO
}

func (f *fakeRenderer) ContentType() string { return "application/x-" + f.ext }
func (f *fakeRenderer) Extension() string   { return f.ext }
func (f *fakeRenderer) RenderReport(_ context.Context, r *dto.ReportDTO) ([]byte, error) {
	f.report = r
	return []byte(f.ext), nil
}
func (f *fakeRenderer) RenderLogs(_ context.Context, date string, e []dto.LogEntryDTO) ([]byte, error) {
	f.date, f.logs = date, e
	return []byte("logs"), nil
}

type seeded struct {
	store *memory.Store
	now   time.Time
}

// seed: un día con producción, despacho, venta y gasto; más una venta del día anterior.
func seed(t *testing.T) seeded {
	t.Helper()
	s := memory.NewStore()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 18, 0, 0, 0, ist)

	users := memory.NewUserRepository(s)
	require.NoError(t, users.Create(ctx, &entity.User{ID: "op", Email: "operator1@example.com", Role: entity.RoleOperator}))

	stock := memory.NewStockRepository(s)
	_, err := stock.Increment(ctx, "20mm", decimal.NewFromInt(30))
	require.NoError(t, err)

	require.NoError(t, memory.NewProductionRepository(s).Create(ctx, &entity.Production{ID: "p1", Material: "20mm", Quantity: decimal.NewFromInt(50), CreatedBy: "op", Date: now.Add(-8 * time.Hour)}))
	require.NoError(t, memory.NewDispatchRepository(s).Create(ctx, &entity.Dispatch{ID: "d1", Material: "20mm", Quantity: decimal.NewFromInt(5), Destination: "Site B", CreatedBy: "op", Date: now.Add(-6 * time.Hour)}))
	sales := memory.NewSaleRepository(s)
	require.NoError(t, sales.Create(ctx, &entity.Sale{ID: "s1", Vendor: "Acme", Material: "20mm", Quantity: decimal.NewFromInt(20), Rate: decimal.NewFromInt(500), Total: decimal.NewFromInt(10000), CreatedBy: "op", Date: now.Add(-4 * time.Hour)}))
	require.NoError(t, sales.Create(ctx, &entity.Sale{ID: "s0", Vendor: "Acme", Material: "20mm", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(500), Total: decimal.NewFromInt(500), CreatedBy: "op", Date: now.AddDate(0, 0, -1)}))
	require.NoError(t, memory.NewExpenseRepository(s).Create(ctx, &entity.Expense{ID: "e1", ExpenseCategory: "Diesel", Amount: decimal.NewFromInt(2500), CreatedBy: "op", Date: now.Add(-2 * time.Hour)}))
	require.NoError(t, memory.NewVendorLedgerRepository(s).Create(ctx, &entity.VendorLedger{ID: "l1", Vendor: "Acme", SaleID: "s1", Amount: decimal.NewFromInt(10000), Status: entity.PaymentStatusCredit, Date: now}))

	return seeded{store: s, now: now}
}

func TestDashboard_PartnerShareSoloParaSocios(t *testing.T) {
	sd := seed(t)
	uc := NewDashboardUseCase(memory.NewAnalyticsRepository(sd.store), memory.NewStockRepository(sd.store), ist)
	uc.now = func() time.Time { return sd.now }

	partner, err := uc.GetSummary(context.Background(), entity.RolePartner)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", partner.Date)
	assert.True(t, decimal.NewFromInt(50).Equal(partner.Production))
	assert.Equal(t, 1, partner.Dispatch)
	assert.True(t, decimal.NewFromInt(10000).Equal(partner.Sales), "la venta de ayer no cuenta")
	assert.True(t, decimal.NewFromInt(2500).Equal(partner.Expenses))
	assert.True(t, decimal.NewFromInt(7500).Equal(partner.Profit))
	assert.True(t, decimal.NewFromInt(1500).Equal(partner.PartnerShare))
	assert.True(t, decimal.NewFromInt(10000).Equal(partner.PendingDues))
	require.Len(t, partner.Stock, 1)

	operator, err := uc.GetSummary(context.Background(), entity.RoleOperator)
	require.NoError(t, err)
	assert.True(t, operator.PartnerShare.IsZero())
	assert.True(t, decimal.NewFromInt(7500).Equal(operator.Profit))
}

func TestGetReport_FeedMasRecientePrimero(t *testing.T) {
	sd := seed(t)
	uc := NewReportUseCase(memory.NewAnalyticsRepository(sd.store), nil, nil, ist)

	r, err := uc.GetReport(context.Background())
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10500).Equal(r.Sales))
	assert.True(t, decimal.NewFromInt(8000).Equal(r.Profit))
	assert.True(t, decimal.NewFromInt(1600).Equal(r.PartnerShare))

	require.Len(t, r.Feed, 3)
	assert.Equal(t, []string{"e1", "s1", "s0"}, []string{r.Feed[0].ID, r.Feed[1].ID, r.Feed[2].ID})
	assert.Equal(t, "Diesel: ₹2500", r.Feed[0].Details)
	assert.Equal(t, "20 tons of 20mm to Acme for ₹10000", r.Feed[1].Details)
}

func TestExportReport_Formatos(t *testing.T) {
	sd := seed(t)
	pdf := &fakeRenderer{ext: "pdf"}
	xlsx := &fakeRenderer{ext: "xlsx"}
	uc := NewReportUseCase(memory.NewAnalyticsRepository(sd.store),
		map[string]ports.ReportRenderer{"pdf": pdf, "xlsx": xlsx}, xlsx, ist)
	ctx := context.Background()

	out, err := uc.ExportReport(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", out.Filename)
	require.NotNil(t, pdf.report)

	out, err = uc.ExportReport(ctx, "XLSX")
	require.NoError(t, err)
	assert.Equal(t, "report.xlsx", out.Filename)

	_, err = uc.ExportReport(ctx, "csv")
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "format must be one of: pdf, xlsx", domain.Message(err))
}

func TestGetLogs(t *testing.T) {
	sd := seed(t)
	uc := NewReportUseCase(memory.NewAnalyticsRepository(sd.store), nil, nil, ist)

	logs, err := uc.GetLogs(context.Background(), "2026-03-01")
	require.NoError(t, err)
	require.Len(t, logs, 4)
	types := []string{logs[0].Type, logs[1].Type, logs[2].Type, logs[3].Type}
	assert.Equal(t, []string{entity.ActivityExpense, entity.ActivitySale, entity.ActivityDispatch, entity.ActivityProduction}, types)
	assert.Equal(t, "operator1@example.com", logs[0].UserEmail)
	assert.Equal(t, "5 tons of 20mm to Site B", logs[2].Details)

	empty, err := uc.GetLogs(context.Background(), "2025-01-01")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetLogs_FechaInvalida(t *testing.T) {
	uc := NewReportUseCase(memory.NewAnalyticsRepository(memory.NewStore()), nil, nil, ist)
	for _, date := range []string{"", "01-03-2026", "2026-13-01"} {
		_, err := uc.GetLogs(context.Background(), date)
		require.ErrorIs(t, err, domain.ErrValidation, date)
		assert.Equal(t, "Valid date (YYYY-MM-DD) is required", domain.Message(err))
	}
}

func TestExportLogs(t *testing.T) {
	sd := seed(t)
	xlsx := &fakeRenderer{ext: "xlsx"}
	uc := NewReportUseCase(memory.NewAnalyticsRepository(sd.store), nil, xlsx, ist)

	out, err := uc.ExportLogs(context.Background(), "2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, "logs-2026-03-01.xlsx", out.Filename)
	assert.Equal(t, "2026-03-01", xlsx.date)
	assert.Len(t, xlsx.logs, 4)
}
