package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
	"github.com/jhoicas/stonecrusher-api/internal/domain"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
)

// Auditor registra "quién hizo qué". Implementado por audit.Recorder.
type Auditor interface {
	Record(ctx context.Context, userID, action, details string)
}

// CatalogUseCase altas y listados de materiales, camiones y vendors (los datos de referencia).
type CatalogUseCase struct {
	materials repository.MaterialRepository
	trucks    repository.TruckRepository
	vendors   repository.VendorRepository
	audit     Auditor
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	materials repository.MaterialRepository,
	trucks repository.TruckRepository,
	vendors repository.VendorRepository,
	audit Auditor,
) *CatalogUseCase {
	return &CatalogUseCase{materials: materials, trucks: trucks, vendors: vendors, audit: audit}
}

// CreateMaterial crea un material con su tarifa inicial. Nombre duplicado = ErrDuplicate.
func (uc *CatalogUseCase) CreateMaterial(ctx context.Context, userID string, in dto.CreateMaterialRequest) (*entity.Material, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.materials.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Errorf(domain.ErrDuplicate, "Material %s already exists", in.Name)
	}
	m := &entity.Material{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Rate:      *in.Rate,
		CreatedAt: time.Now(),
	}
	if err := uc.materials.Create(ctx, m); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, userID, "Material Added", fmt.Sprintf("%s at ₹%s/ton", m.Name, m.Rate))
	return m, nil
}

// ListMaterials lista el catálogo de materiales.
func (uc *CatalogUseCase) ListMaterials(ctx context.Context) ([]*entity.Material, error) {
	return uc.materials.List(ctx)
}

// CreateTruck registra un camión. Número duplicado = ErrDuplicate.
func (uc *CatalogUseCase) CreateTruck(ctx context.Context, userID string, in dto.CreateTruckRequest) (*entity.Truck, error) {
	in.Number = strings.TrimSpace(in.Number)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.trucks.GetByNumber(ctx, in.Number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Errorf(domain.ErrDuplicate, "Truck %s already exists", in.Number)
	}
	t := &entity.Truck{ID: uuid.New().String(), Number: in.Number, CreatedAt: time.Now()}
	if err := uc.trucks.Create(ctx, t); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, userID, "Truck Added", t.Number)
	return t, nil
}

// ListTrucks lista los camiones.
func (uc *CatalogUseCase) ListTrucks(ctx context.Context) ([]*entity.Truck, error) {
	return uc.trucks.List(ctx)
}

// CreateVendor registra un vendor. Nombre duplicado = ErrDuplicate.
func (uc *CatalogUseCase) CreateVendor(ctx context.Context, userID string, in dto.CreateVendorRequest) (*entity.Vendor, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.vendors.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Errorf(domain.ErrDuplicate, "Vendor %s already exists", in.Name)
	}
	v := &entity.Vendor{ID: uuid.New().String(), Name: in.Name, CreatedAt: time.Now()}
	if err := uc.vendors.Create(ctx, v); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, userID, "Vendor Added", v.Name)
	return v, nil
}

// ListVendors lista los vendors.
func (uc *CatalogUseCase) ListVendors(ctx context.Context) ([]*entity.Vendor, error) {
	return uc.vendors.List(ctx)
}
