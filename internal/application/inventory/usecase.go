// Package inventory pipelines de escritura que mueven stock: producción, despacho y venta.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
	"github.com/jhoicas/stonecrusher-api/internal/domain"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/domain/finance"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
)

// Repos repositorios de lectura que usa el caso de uso fuera de la transacción.
type Repos struct {
	Materials  repository.MaterialRepository
	Trucks     repository.TruckRepository
	Vendors    repository.VendorRepository
	Stock      repository.StockRepository
	Production repository.ProductionRepository
	Dispatch   repository.DispatchRepository
	Sales      repository.SaleRepository
}

// UseCase registra producción, despachos y ventas de forma transaccional:
// stock, registro principal y ledger se confirman juntos o no se confirma nada.
type UseCase struct {
	tx     repository.TxRunner
	repos  Repos
	audit  Auditor
	alerts Alerts
	now    func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(tx repository.TxRunner, repos Repos, audit Auditor, alerts Alerts) *UseCase {
	return &UseCase{tx: tx, repos: repos, audit: audit, alerts: alerts, now: time.Now}
}

// RecordProduction suma la cantidad producida al stock del material (lo crea si no existía).
func (uc *UseCase) RecordProduction(ctx context.Context, userID string, in dto.CreateProductionRequest) (*entity.Production, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := uc.requireMaterial(ctx, in.Material); err != nil {
		return nil, err
	}
	p := &entity.Production{
		ID:        uuid.New().String(),
		Material:  in.Material,
		Quantity:  *in.Quantity,
		CreatedBy: userID,
		Date:      uc.now(),
	}
	err := uc.tx.Run(ctx, func(r repository.TxRepos) error {
		if _, err := r.Stock.Increment(ctx, p.Material, p.Quantity); err != nil {
			return err
		}
		return r.Production.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, userID, "Production Added", fmt.Sprintf("%s: %s tons", p.Material, p.Quantity))
	uc.alerts.StockChanged(ctx, p.Material)
	return p, nil
}

// RecordDispatch descuenta el stock y registra el despacho. Total = cantidad*tarifa + flete.
func (uc *UseCase) RecordDispatch(ctx context.Context, userID string, in dto.CreateDispatchRequest) (*entity.Dispatch, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := uc.requireMaterial(ctx, in.Material); err != nil {
		return nil, err
	}
	if err := uc.requireVendor(ctx, in.Vendor); err != nil {
		return nil, err
	}
	truck, err := uc.repos.Trucks.GetByNumber(ctx, in.Truck)
	if err != nil {
		return nil, err
	}
	if truck == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "Truck %s not found", in.Truck)
	}

	d := &entity.Dispatch{
		ID:          uuid.New().String(),
		Truck:       in.Truck,
		Vendor:      in.Vendor,
		Material:    in.Material,
		Quantity:    *in.Quantity,
		Destination: in.Destination,
		Rate:        *in.Rate,
		Freight:     *in.Freight,
		Total:       finance.DispatchTotal(*in.Quantity, *in.Rate, *in.Freight),
		CreatedBy:   userID,
		Date:        uc.now(),
	}
	err = uc.tx.Run(ctx, func(r repository.TxRepos) error {
		if _, err := r.Stock.Decrement(ctx, d.Material, d.Quantity); err != nil {
			return err
		}
		return r.Dispatch.Create(ctx, d)
	})
	if err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, userID, "Dispatch Added",
		fmt.Sprintf("%s tons of %s to %s (truck %s)", d.Quantity, d.Material, d.Destination, d.Truck))
	uc.alerts.StockChanged(ctx, d.Material)
	return d, nil
}

// RecordSale descuenta el stock, registra la venta y abre la entrada del ledger con el mismo estado.
func (uc *UseCase) RecordSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*entity.Sale, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := uc.requireMaterial(ctx, in.Material); err != nil {
		return nil, err
	}
	if err := uc.requireVendor(ctx, in.Vendor); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.PaymentStatusCredit
	}
	now := uc.now()
	s := &entity.Sale{
		ID:            uuid.New().String(),
		Vendor:        in.Vendor,
		Material:      in.Material,
		Quantity:      *in.Quantity,
		Rate:          *in.Rate,
		Total:         finance.SaleTotal(*in.Quantity, *in.Rate),
		PaymentMethod: in.PaymentMethod,
		Status:        status,
		CreatedBy:     userID,
		Date:          now,
	}
	entry := &entity.VendorLedger{
		ID:     uuid.New().String(),
		Vendor: s.Vendor,
		SaleID: s.ID,
		Amount: s.Total,
		Status: s.Status,
		Date:   now,
	}
	if status == entity.PaymentStatusPaid {
		entry.PaidAt = &now
	}
	err := uc.tx.Run(ctx, func(r repository.TxRepos) error {
		if _, err := r.Stock.Decrement(ctx, s.Material, s.Quantity); err != nil {
			return err
		}
		if err := r.Sales.Create(ctx, s); err != nil {
			return err
		}
		return r.Ledger.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, userID, "Sale Added",
		fmt.Sprintf("%s tons of %s to %s for ₹%s (%s)", s.Quantity, s.Material, s.Vendor, s.Total, s.Status))
	uc.alerts.StockChanged(ctx, s.Material)
	uc.alerts.CreditOpened(ctx, entry)
	return s, nil
}

// ListProduction lista la producción, más reciente primero.
func (uc *UseCase) ListProduction(ctx context.Context) ([]*entity.Production, error) {
	return uc.repos.Production.List(ctx)
}

// ListDispatches lista los despachos, más reciente primero.
func (uc *UseCase) ListDispatches(ctx context.Context) ([]*entity.Dispatch, error) {
	return uc.repos.Dispatch.List(ctx)
}

// ListSales lista las ventas, más reciente primero.
func (uc *UseCase) ListSales(ctx context.Context) ([]*entity.Sale, error) {
	return uc.repos.Sales.List(ctx)
}

// GetSale devuelve una venta o ErrNotFound.
func (uc *UseCase) GetSale(ctx context.Context, id string) (*entity.Sale, error) {
	s, err := uc.repos.Sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.Errorf(domain.ErrNotFound, "Sale not found")
	}
	return s, nil
}

// ListStock devuelve la existencia actual de cada material.
func (uc *UseCase) ListStock(ctx context.Context) ([]*entity.Stock, error) {
	return uc.repos.Stock.List(ctx)
}

func (uc *UseCase) requireMaterial(ctx context.Context, name string) error {
	m, err := uc.repos.Materials.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.Errorf(domain.ErrNotFound, "Material %s not found", name)
	}
	return nil
}

func (uc *UseCase) requireVendor(ctx context.Context, name string) error {
	v, err := uc.repos.Vendors.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.Errorf(domain.ErrNotFound, "Vendor %s not found", name)
	}
	return nil
}
