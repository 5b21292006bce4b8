package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/infrastructure/memory"
	"github.com/jhoicas/stonecrusher-api/pkg/logger"
)

type mail struct {
	to      []string
	subject string
	body    string
}

type fakeMailer struct {
	sent   []mail
	failTo string
}

func (m *fakeMailer) Send(_ context.Context, to []string, subject, body string) error {
	if len(to) == 1 && to[0] == m.failTo {
		return errors.New("smtp: mailbox unavailable")
	}
	m.sent = append(m.sent, mail{to: to, subject: subject, body: body})
	return nil
}

type fixture struct {
	svc    *Service
	stock  *memory.StockRepo
	ledger *memory.VendorLedgerRepo
	users  *memory.UserRepo
	sales  *memory.SaleRepo
	exp    *memory.ExpenseRepo
	mailer *fakeMailer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s := memory.NewStore()
	f := &fixture{
		stock:  memory.NewStockRepository(s),
		ledger: memory.NewVendorLedgerRepository(s),
		users:  memory.NewUserRepository(s),
		sales:  memory.NewSaleRepository(s),
		exp:    memory.NewExpenseRepository(s),
		mailer: &fakeMailer{},
	}
	f.svc = NewService(
		memory.NewNotificationRepository(s), f.stock, f.ledger, memory.NewAnalyticsRepository(s), f.users, f.mailer,
		Config{LowStockThreshold: decimal.NewFromInt(100), Location: time.UTC},
		logger.Nop(),
	)
	return f
}

func (f *fixture) setStock(t *testing.T, material string, qty int64) {
	t.Helper()
	_, err := f.stock.Increment(context.Background(), material, decimal.NewFromInt(qty))
	require.NoError(t, err)
}

func TestCheckLowStock_Idempotente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.setStock(t, "20mm", 80)
	f.setStock(t, "Dust", 500)

	n, err := f.svc.CheckLowStock(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Mismo estado: no se repite.
	n, err = f.svc.CheckLowStock(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	list, err := f.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Low stock alert: 20mm has 80 tons", list[0].Message)

	// Una nueva existencia baja sí genera otra alerta.
	_, err = f.stock.Decrement(ctx, "20mm", decimal.NewFromInt(30))
	require.NoError(t, err)
	f.svc.StockChanged(ctx, "20mm")
	list, _ = f.svc.List(ctx)
	assert.Len(t, list, 2)
}

func TestCheckLowStock_UmbralExacto(t *testing.T) {
	f := newFixture(t)
	f.setStock(t, "20mm", 100)
	n, err := f.svc.CheckLowStock(context.Background(), "20mm")
	require.NoError(t, err)
	assert.Zero(t, n, "100 no está por debajo del umbral")
}

func TestCheckVendorDues(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, f.ledger.Create(ctx, &entity.VendorLedger{ID: "l1", Vendor: "Acme", SaleID: "s1", Amount: decimal.NewFromInt(6825), Status: entity.PaymentStatusCredit, Date: now}))
	require.NoError(t, f.ledger.Create(ctx, &entity.VendorLedger{ID: "l2", Vendor: "Beta", SaleID: "s2", Amount: decimal.NewFromInt(100), Status: entity.PaymentStatusPaid, Date: now, PaidAt: &now}))

	n, err := f.svc.CheckVendorDues(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// El evento de la misma entrada no duplica.
	f.svc.CreditOpened(ctx, &entity.VendorLedger{ID: "l1", Vendor: "Acme", Amount: decimal.NewFromInt(6825), Status: entity.PaymentStatusCredit})
	list, _ := f.svc.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "Pending payment of ₹6825 for vendor Acme", list[0].Message)
}

func TestToggle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.setStock(t, "20mm", 10)
	f.setStock(t, "Dust", 20)
	require.NoError(t, f.svc.Sweep(ctx))

	updated, err := f.svc.Toggle(ctx, false)
	require.NoError(t, err)
	assert.EqualValues(t, 2, updated)
	list, _ := f.svc.List(ctx)
	assert.Empty(t, list)

	// Deshabilitadas siguen deduplicando.
	require.NoError(t, f.svc.Sweep(ctx))
	updated, err = f.svc.Toggle(ctx, true)
	require.NoError(t, err)
	assert.EqualValues(t, 2, updated)
}

func TestRateChanged_UnaPorCambio(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	r := &entity.Rate{ID: "r1", Material: "20mm", Rate: decimal.NewFromInt(500), PreviousRate: decimal.NewFromInt(450)}
	f.svc.RateChanged(ctx, r)
	f.svc.RateChanged(ctx, r)

	list, _ := f.svc.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, entity.NotificationRateChange, list[0].Type)
}

func TestSendDailySummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	today := time.Date(2026, 3, 1, 21, 0, 0, 0, time.UTC)
	f.svc.WithClock(func() time.Time { return today })

	require.NoError(t, f.users.Create(ctx, &entity.User{ID: "p1", Email: "partner1@example.com", Role: entity.RolePartner}))
	require.NoError(t, f.users.Create(ctx, &entity.User{ID: "p2", Email: "partner2@example.com", Role: entity.RolePartner}))
	require.NoError(t, f.users.Create(ctx, &entity.User{ID: "a1", Email: "admin@example.com", Role: entity.RoleAdmin}))
	f.mailer.failTo = "partner2@example.com"

	require.NoError(t, f.sales.Create(ctx, &entity.Sale{ID: "s1", Total: decimal.NewFromInt(10000), Date: today.Add(-2 * time.Hour)}))
	require.NoError(t, f.sales.Create(ctx, &entity.Sale{ID: "s0", Total: decimal.NewFromInt(999), Date: today.AddDate(0, 0, -1)}))
	require.NoError(t, f.exp.Create(ctx, &entity.Expense{ID: "e1", Amount: decimal.NewFromInt(2500), Date: today.Add(-time.Hour)}))

	summary, err := f.svc.SendDailySummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", summary.Date)
	assert.True(t, decimal.NewFromInt(10000).Equal(summary.Sales))
	assert.True(t, decimal.NewFromInt(7500).Equal(summary.Profit))
	assert.True(t, decimal.NewFromInt(1500).Equal(summary.PartnerShare))
	assert.Equal(t, 1, summary.Recipients, "el fallo de un correo no corta el resto")
	require.NotNil(t, summary.Notification)
	assert.NotEmpty(t, summary.Notification.ID)
	assert.True(t, summary.Notification.Enabled)
	assert.Equal(t, today, summary.Notification.Date)
	assert.Equal(t, "2026-03-01", summary.Notification.DedupKey)

	require.Len(t, f.mailer.sent, 1)
	assert.Equal(t, []string{"partner1@example.com"}, f.mailer.sent[0].to)
	assert.Equal(t, "Daily Business Summary", f.mailer.sent[0].subject)
	assert.Contains(t, f.mailer.sent[0].body, "₹10,000.00")

	// Segunda ejecución del mismo día: sin notificación nueva.
	again, err := f.svc.SendDailySummary(ctx)
	require.NoError(t, err)
	assert.Nil(t, again.Notification)
	list, _ := f.svc.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, entity.NotificationDailySummary, list[0].Type)
	assert.Equal(t, summary.Notification.ID, list[0].ID)
}
