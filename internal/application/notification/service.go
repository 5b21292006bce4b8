// Package notification genera, deduplica y lista las alertas de la planta.
//
// Los detectores se disparan por eventos de las escrituras (StockChanged, CreditOpened,
// RateChanged) y por el barrido periódico del scheduler; las lecturas GET nunca escriben.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
	"github.com/jhoicas/stonecrusher-api/pkg/logger"
)

// Config parámetros de los detectores.
type Config struct {
	LowStockThreshold decimal.Decimal
	Location          *time.Location
}

// Service detectores de alertas, switch global y resumen diario.
type Service struct {
	repo      repository.NotificationRepository
	stock     repository.StockRepository
	ledger    repository.VendorLedgerRepository
	analytics repository.AnalyticsRepository
	users     repository.UserRepository
	mailer    Mailer
	cfg       Config
	log       *logger.Logger
	now       func() time.Time
}

// Mailer subconjunto de ports.Mailer que usa el resumen diario.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, body string) error
}

// NewService construye el servicio de notificaciones.
func NewService(
	repo repository.NotificationRepository,
	stock repository.StockRepository,
	ledger repository.VendorLedgerRepository,
	analytics repository.AnalyticsRepository,
	users repository.UserRepository,
	mailer Mailer,
	cfg Config,
	log *logger.Logger,
) *Service {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Service{
		repo:      repo,
		stock:     stock,
		ledger:    ledger,
		analytics: analytics,
		users:     users,
		mailer:    mailer,
		cfg:       cfg,
		log:       log.Named("notifications"),
		now:       time.Now,
	}
}

// WithClock reemplaza el reloj (tests del resumen diario).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// List devuelve las notificaciones habilitadas, más reciente primero.
func (s *Service) List(ctx context.Context) ([]*entity.Notification, error) {
	return s.repo.ListEnabled(ctx)
}

// Toggle habilita o deshabilita todas las notificaciones existentes. No borra ninguna.
func (s *Service) Toggle(ctx context.Context, enabled bool) (int64, error) {
	return s.repo.SetEnabledAll(ctx, enabled)
}

// CheckLowStock emite low_stock para cada material bajo el umbral. Sin materiales = todos.
// Es idempotente: la misma existencia baja no genera una segunda alerta.
func (s *Service) CheckLowStock(ctx context.Context, materials ...string) (int, error) {
	var rows []*entity.Stock
	if len(materials) == 0 {
		all, err := s.stock.List(ctx)
		if err != nil {
			return 0, fmt.Errorf("low stock: listar stock: %w", err)
		}
		rows = all
	} else {
		for _, m := range materials {
			st, err := s.stock.Get(ctx, m)
			if err != nil {
				return 0, fmt.Errorf("low stock: stock de %s: %w", m, err)
			}
			if st != nil {
				rows = append(rows, st)
			}
		}
	}

	created := 0
	for _, st := range rows {
		if !st.Quantity.LessThan(s.cfg.LowStockThreshold) {
			continue
		}
		qty := st.Quantity.String()
		ok, err := s.emit(ctx, entity.NotificationLowStock,
			st.Material+":"+qty,
			fmt.Sprintf("Low stock alert: %s has %s tons", st.Material, qty))
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, nil
}

// CheckVendorDues emite vendor_due por cada entrada del ledger aún en Credit (una vez por entrada).
func (s *Service) CheckVendorDues(ctx context.Context) (int, error) {
	pending, err := s.ledger.ListByStatus(ctx, entity.PaymentStatusCredit)
	if err != nil {
		return 0, fmt.Errorf("vendor due: listar ledger: %w", err)
	}
	created := 0
	for _, e := range pending {
		ok, err := s.vendorDue(ctx, e)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, nil
}

// Sweep ejecuta ambos detectores (job periódico).
func (s *Service) Sweep(ctx context.Context) error {
	low, err := s.CheckLowStock(ctx)
	if err != nil {
		return err
	}
	due, err := s.CheckVendorDues(ctx)
	if err != nil {
		return err
	}
	s.log.Debug().Int("low_stock", low).Int("vendor_due", due).Msg("barrido de alertas")
	return nil
}

// StockChanged evento tras una salida de stock. Best effort: los errores solo se registran.
func (s *Service) StockChanged(ctx context.Context, material string) {
	if _, err := s.CheckLowStock(context.WithoutCancel(ctx), material); err != nil {
		s.log.Warn().Err(err).Str("material", material).Msg("detector de stock bajo")
	}
}

// CreditOpened evento tras crear una entrada de ledger en Credit.
func (s *Service) CreditOpened(ctx context.Context, entry *entity.VendorLedger) {
	if entry == nil || entry.Status != entity.PaymentStatusCredit {
		return
	}
	if _, err := s.vendorDue(context.WithoutCancel(ctx), entry); err != nil {
		s.log.Warn().Err(err).Str("ledger_id", entry.ID).Msg("detector de cobros pendientes")
	}
}

// RateChanged emite rate_change describiendo la tarifa anterior y la nueva.
func (s *Service) RateChanged(ctx context.Context, rate *entity.Rate) {
	msg := fmt.Sprintf("Rate for %s changed from ₹%s to ₹%s", rate.Material, rate.PreviousRate.String(), rate.Rate.String())
	if _, err := s.emit(context.WithoutCancel(ctx), entity.NotificationRateChange, rate.ID, msg); err != nil {
		s.log.Warn().Err(err).Str("material", rate.Material).Msg("notificación de cambio de tarifa")
	}
}

func (s *Service) vendorDue(ctx context.Context, e *entity.VendorLedger) (bool, error) {
	msg := fmt.Sprintf("Pending payment of ₹%s for vendor %s", e.Amount.String(), e.Vendor)
	return s.emit(ctx, entity.NotificationVendorDue, e.ID, msg)
}

func (s *Service) emit(ctx context.Context, kind, key, message string) (bool, error) {
	n, err := s.create(ctx, kind, key, message)
	return n != nil, err
}

// create persiste la notificación y la devuelve; nil si ya existía una con el mismo (type, key).
func (s *Service) create(ctx context.Context, kind, key, message string) (*entity.Notification, error) {
	n := &entity.Notification{
		ID:       uuid.New().String(),
		Message:  message,
		Type:     kind,
		DedupKey: key,
		Enabled:  true,
		Date:     s.now(),
	}
	ok, err := s.repo.CreateIfAbsent(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("guardar notificación %s: %w", kind, err)
	}
	if !ok {
		return nil, nil
	}
	return n, nil
}
