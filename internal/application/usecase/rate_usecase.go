package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
	"github.com/jhoicas/stonecrusher-api/internal/domain"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
)

// RateAlerts evento de cambio de tarifa. Implementado por notification.Service.
type RateAlerts interface {
	RateChanged(ctx context.Context, rate *entity.Rate)
}

// RateUseCase cambios de tarifa con histórico.
type RateUseCase struct {
	tx     repository.TxRunner
	rates  repository.RateRepository
	audit  Auditor
	alerts RateAlerts
	now    func() time.Time
}

// NewRateUseCase construye el caso de uso.
func NewRateUseCase(tx repository.TxRunner, rates repository.RateRepository, audit Auditor, alerts RateAlerts) *RateUseCase {
	return &RateUseCase{tx: tx, rates: rates, audit: audit, alerts: alerts, now: time.Now}
}

// UpdateRate bloquea el material, guarda el histórico con la tarifa anterior y actualiza la vigente,
// todo en una transacción. Después notifica el cambio y lo audita.
func (uc *RateUseCase) UpdateRate(ctx context.Context, userID string, in dto.UpdateRateRequest) (*entity.Rate, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	rate := &entity.Rate{
		ID:        uuid.New().String(),
		Material:  in.Material,
		Rate:      *in.Rate,
		ChangedBy: userID,
		Date:      uc.now(),
	}
	err := uc.tx.Run(ctx, func(r repository.TxRepos) error {
		m, err := r.Materials.GetByNameForUpdate(ctx, in.Material)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.Errorf(domain.ErrNotFound, "Material %s not found", in.Material)
		}
		rate.PreviousRate = m.Rate
		if err := r.Materials.UpdateRate(ctx, m.Name, rate.Rate); err != nil {
			return err
		}
		return r.Rates.Create(ctx, rate)
	})
	if err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, userID, "Rate Changed",
		fmt.Sprintf("%s: ₹%s → ₹%s", rate.Material, rate.PreviousRate, rate.Rate))
	uc.alerts.RateChanged(ctx, rate)
	return rate, nil
}

// ListRates histórico de tarifas, más reciente primero, con el email de quien la cambió.
func (uc *RateUseCase) ListRates(ctx context.Context) ([]*entity.Rate, error) {
	return uc.rates.List(ctx)
}
