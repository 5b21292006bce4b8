package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/stonecrusher-api/internal/domain"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
)

var (
	_ repository.MaterialRepository = (*MaterialRepo)(nil)
	_ repository.TruckRepository    = (*TruckRepo)(nil)
	_ repository.VendorRepository   = (*VendorRepo)(nil)
	_ repository.RateRepository     = (*RateRepo)(nil)
)

// MaterialRepo materiales sobre PostgreSQL (pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador de materiales.
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// Create inserta un material. Nombre repetido = ErrDuplicate.
func (r *MaterialRepo) Create(ctx context.Context, m *entity.Material) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO materials (id, name, rate, created_at) VALUES ($1, $2, $3, $4)`,
		m.ID, m.Name, m.Rate, m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Errorf(domain.ErrDuplicate, "Material %s already exists", m.Name)
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByName obtiene un material por nombre.
func (r *MaterialRepo) GetByName(ctx context.Context, name string) (*entity.Material, error) {
	return r.get(ctx, `SELECT id, name, rate, created_at FROM materials WHERE name = $1`, name)
}

// GetByNameForUpdate obtiene el material y bloquea la fila (SELECT FOR UPDATE).
func (r *MaterialRepo) GetByNameForUpdate(ctx context.Context, name string) (*entity.Material, error) {
	return r.get(ctx, `SELECT id, name, rate, created_at FROM materials WHERE name = $1 FOR UPDATE`, name)
}

func (r *MaterialRepo) get(ctx context.Context, query, name string) (*entity.Material, error) {
	var m entity.Material
	if err := r.q.QueryRow(ctx, query, name).Scan(&m.ID, &m.Name, &m.Rate, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// UpdateRate actualiza la tarifa vigente.
func (r *MaterialRepo) UpdateRate(ctx context.Context, name string, rate decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `UPDATE materials SET rate = $2 WHERE name = $1`, name, rate)
	if err != nil {
		return fmt.Errorf("update rate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Errorf(domain.ErrNotFound, "Material %s not found", name)
	}
	return nil
}

// List devuelve los materiales ordenados por nombre.
func (r *MaterialRepo) List(ctx context.Context) ([]*entity.Material, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, rate, created_at FROM materials ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Rate, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// TruckRepo camiones sobre PostgreSQL.
type TruckRepo struct {
	q Querier
}

// NewTruckRepository construye el adaptador de camiones.
func NewTruckRepository(q Querier) *TruckRepo {
	return &TruckRepo{q: q}
}

// Create inserta un camión. Número repetido = ErrDuplicate.
func (r *TruckRepo) Create(ctx context.Context, t *entity.Truck) error {
	_, err := r.q.Exec(ctx, `INSERT INTO trucks (id, number, created_at) VALUES ($1, $2, $3)`, t.ID, t.Number, t.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Errorf(domain.ErrDuplicate, "Truck %s already exists", t.Number)
		}
		return fmt.Errorf("insert truck: %w", err)
	}
	return nil
}

// GetByNumber obtiene un camión por número.
func (r *TruckRepo) GetByNumber(ctx context.Context, number string) (*entity.Truck, error) {
	var t entity.Truck
	err := r.q.QueryRow(ctx, `SELECT id, number, created_at FROM trucks WHERE number = $1`, number).
		Scan(&t.ID, &t.Number, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get truck: %w", err)
	}
	return &t, nil
}

// List devuelve los camiones ordenados por número.
func (r *TruckRepo) List(ctx context.Context) ([]*entity.Truck, error) {
	rows, err := r.q.Query(ctx, `SELECT id, number, created_at FROM trucks ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("list trucks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Truck
	for rows.Next() {
		var t entity.Truck
		if err := rows.Scan(&t.ID, &t.Number, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan truck: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// VendorRepo vendors sobre PostgreSQL.
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador de vendors.
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

// Create inserta un vendor. Nombre repetido = ErrDuplicate.
func (r *VendorRepo) Create(ctx context.Context, v *entity.Vendor) error {
	_, err := r.q.Exec(ctx, `INSERT INTO vendors (id, name, created_at) VALUES ($1, $2, $3)`, v.ID, v.Name, v.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Errorf(domain.ErrDuplicate, "Vendor %s already exists", v.Name)
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByName obtiene un vendor por nombre.
func (r *VendorRepo) GetByName(ctx context.Context, name string) (*entity.Vendor, error) {
	var v entity.Vendor
	err := r.q.QueryRow(ctx, `SELECT id, name, created_at FROM vendors WHERE name = $1`, name).
		Scan(&v.ID, &v.Name, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}

// List devuelve los vendors ordenados por nombre.
func (r *VendorRepo) List(ctx context.Context) ([]*entity.Vendor, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, created_at FROM vendors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// RateRepo histórico de tarifas sobre PostgreSQL.
type RateRepo struct {
	q Querier
}

// NewRateRepository construye el adaptador de tarifas.
func NewRateRepository(q Querier) *RateRepo {
	return &RateRepo{q: q}
}

// Create agrega una entrada al histórico.
func (r *RateRepo) Create(ctx context.Context, rt *entity.Rate) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO rates (id, material, rate, previous_rate, changed_by, date)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rt.ID, rt.Material, rt.Rate, rt.PreviousRate, rt.ChangedBy, rt.Date)
	if err != nil {
		return fmt.Errorf("insert rate: %w", err)
	}
	return nil
}

// List histórico más reciente primero, con el email de quien hizo el cambio.
func (r *RateRepo) List(ctx context.Context) ([]*entity.Rate, error) {
	rows, err := r.q.Query(ctx, `
		SELECT r.id, r.material, r.rate, r.previous_rate, r.changed_by, COALESCE(u.email, ''), r.date
		FROM rates r
		LEFT JOIN users u ON u.id = r.changed_by
		ORDER BY r.date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list rates: %w", err)
	}
	defer rows.Close()
	var list []*entity.Rate
	for rows.Next() {
		var rt entity.Rate
		if err := rows.Scan(&rt.ID, &rt.Material, &rt.Rate, &rt.PreviousRate, &rt.ChangedBy, &rt.ChangedByEmail, &rt.Date); err != nil {
			return nil, fmt.Errorf("scan rate: %w", err)
		}
		list = append(list, &rt)
	}
	return list, rows.Err()
}
