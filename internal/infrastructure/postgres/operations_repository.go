package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stonecrusher-api/internal/domain"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
)

var (
	_ repository.ProductionRepository   = (*ProductionRepo)(nil)
	_ repository.DispatchRepository     = (*DispatchRepo)(nil)
	_ repository.SaleRepository         = (*SaleRepo)(nil)
	_ repository.ExpenseRepository      = (*ExpenseRepo)(nil)
	_ repository.MaintenanceRepository  = (*MaintenanceRepo)(nil)
	_ repository.VendorLedgerRepository = (*VendorLedgerRepo)(nil)
)

// ProductionRepo producción sobre PostgreSQL (pool o tx).
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el adaptador.
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

// Create inserta un registro de producción.
func (r *ProductionRepo) Create(ctx context.Context, p *entity.Production) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO production (id, material, quantity, created_by, date) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Material, p.Quantity, p.CreatedBy, p.Date)
	if err != nil {
		return fmt.Errorf("insert production: %w", err)
	}
	return nil
}

// List más reciente primero.
func (r *ProductionRepo) List(ctx context.Context) ([]*entity.Production, error) {
	rows, err := r.q.Query(ctx, `SELECT id, material, quantity, created_by, date FROM production ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list production: %w", err)
	}
	defer rows.Close()
	var list []*entity.Production
	for rows.Next() {
		var p entity.Production
		if err := rows.Scan(&p.ID, &p.Material, &p.Quantity, &p.CreatedBy, &p.Date); err != nil {
			return nil, fmt.Errorf("scan production: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// DispatchRepo despachos sobre PostgreSQL.
type DispatchRepo struct {
	q Querier
}

// NewDispatchRepository construye el adaptador.
func NewDispatchRepository(q Querier) *DispatchRepo {
	return &DispatchRepo{q: q}
}

// Create inserta un despacho.
func (r *DispatchRepo) Create(ctx context.Context, d *entity.Dispatch) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO dispatches (id, truck, vendor, material, quantity, destination, rate, freight, total, created_by, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		d.ID, d.Truck, d.Vendor, d.Material, d.Quantity, d.Destination, d.Rate, d.Freight, d.Total, d.CreatedBy, d.Date)
	if err != nil {
		return fmt.Errorf("insert dispatch: %w", err)
	}
	return nil
}

// List más reciente primero.
func (r *DispatchRepo) List(ctx context.Context) ([]*entity.Dispatch, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, truck, vendor, material, quantity, destination, rate, freight, total, created_by, date
		FROM dispatches ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list dispatches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Dispatch
	for rows.Next() {
		var d entity.Dispatch
		if err := rows.Scan(&d.ID, &d.Truck, &d.Vendor, &d.Material, &d.Quantity, &d.Destination,
			&d.Rate, &d.Freight, &d.Total, &d.CreatedBy, &d.Date); err != nil {
			return nil, fmt.Errorf("scan dispatch: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// SaleRepo ventas sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, vendor, material, quantity, rate, total, payment_method, status, created_by, date`

// Create inserta una venta.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.Exec(ctx, `INSERT INTO sales (`+saleColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.Vendor, s.Material, s.Quantity, s.Rate, s.Total, s.PaymentMethod, s.Status, s.CreatedBy, s.Date)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta; (nil, nil) si no existe o el id no es un UUID.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id::text = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

// List más reciente primero.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de pago de la venta.
func (r *SaleRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.q.Exec(ctx, `UPDATE sales SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Errorf(domain.ErrNotFound, "Sale not found")
	}
	return nil
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(&s.ID, &s.Vendor, &s.Material, &s.Quantity, &s.Rate, &s.Total,
		&s.PaymentMethod, &s.Status, &s.CreatedBy, &s.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan sale: %w", err)
	}
	return &s, nil
}

// ExpenseRepo gastos sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create inserta un gasto.
func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO expenses (id, expense_category, amount, created_by, date) VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.ExpenseCategory, e.Amount, e.CreatedBy, e.Date)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// List más reciente primero.
func (r *ExpenseRepo) List(ctx context.Context) ([]*entity.Expense, error) {
	rows, err := r.q.Query(ctx, `SELECT id, expense_category, amount, created_by, date FROM expenses ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.ExpenseCategory, &e.Amount, &e.CreatedBy, &e.Date); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// MaintenanceRepo mantenimientos sobre PostgreSQL.
type MaintenanceRepo struct {
	q Querier
}

// NewMaintenanceRepository construye el adaptador.
func NewMaintenanceRepository(q Querier) *MaintenanceRepo {
	return &MaintenanceRepo{q: q}
}

// Create inserta un mantenimiento.
func (r *MaintenanceRepo) Create(ctx context.Context, m *entity.Maintenance) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO maintenance (id, equipment, issue, cost, remarks, file, created_by, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, m.Equipment, m.Issue, m.Cost, m.Remarks, m.File, m.CreatedBy, m.Date)
	if err != nil {
		return fmt.Errorf("insert maintenance: %w", err)
	}
	return nil
}

// List más reciente primero.
func (r *MaintenanceRepo) List(ctx context.Context) ([]*entity.Maintenance, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, equipment, issue, cost, remarks, file, created_by, date
		FROM maintenance ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list maintenance: %w", err)
	}
	defer rows.Close()
	var list []*entity.Maintenance
	for rows.Next() {
		var m entity.Maintenance
		if err := rows.Scan(&m.ID, &m.Equipment, &m.Issue, &m.Cost, &m.Remarks, &m.File, &m.CreatedBy, &m.Date); err != nil {
			return nil, fmt.Errorf("scan maintenance: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// VendorLedgerRepo ledger de vendors sobre PostgreSQL.
type VendorLedgerRepo struct {
	q Querier
}

// NewVendorLedgerRepository construye el adaptador.
func NewVendorLedgerRepository(q Querier) *VendorLedgerRepo {
	return &VendorLedgerRepo{q: q}
}

const ledgerColumns = `id, vendor, sale_id, amount, status, date, paid_at`

// Create inserta una entrada.
func (r *VendorLedgerRepo) Create(ctx context.Context, e *entity.VendorLedger) error {
	_, err := r.q.Exec(ctx, `INSERT INTO vendor_ledger (`+ledgerColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.Vendor, e.SaleID, e.Amount, e.Status, e.Date, e.PaidAt)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// List más reciente primero.
func (r *VendorLedgerRepo) List(ctx context.Context) ([]*entity.VendorLedger, error) {
	return r.list(ctx, `SELECT `+ledgerColumns+` FROM vendor_ledger ORDER BY date DESC`)
}

// ListByStatus entradas en el estado indicado, más antigua primero.
func (r *VendorLedgerRepo) ListByStatus(ctx context.Context, status string) ([]*entity.VendorLedger, error) {
	return r.list(ctx, `SELECT `+ledgerColumns+` FROM vendor_ledger WHERE status = $1 ORDER BY date`, status)
}

// GetForUpdate obtiene la entrada y bloquea la fila; (nil, nil) si no existe.
func (r *VendorLedgerRepo) GetForUpdate(ctx context.Context, id string) (*entity.VendorLedger, error) {
	e, err := scanLedger(r.q.QueryRow(ctx, `SELECT `+ledgerColumns+` FROM vendor_ledger WHERE id::text = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

// MarkPaid pasa la entrada a Paid.
func (r *VendorLedgerRepo) MarkPaid(ctx context.Context, id string, paidAt time.Time) error {
	tag, err := r.q.Exec(ctx, `UPDATE vendor_ledger SET status = $2, paid_at = $3 WHERE id = $1`,
		id, entity.PaymentStatusPaid, paidAt)
	if err != nil {
		return fmt.Errorf("mark ledger paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Errorf(domain.ErrNotFound, "Ledger entry not found")
	}
	return nil
}

func (r *VendorLedgerRepo) list(ctx context.Context, query string, args ...any) ([]*entity.VendorLedger, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	defer rows.Close()
	var list []*entity.VendorLedger
	for rows.Next() {
		e, err := scanLedger(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanLedger(row pgx.Row) (*entity.VendorLedger, error) {
	var e entity.VendorLedger
	if err := row.Scan(&e.ID, &e.Vendor, &e.SaleID, &e.Amount, &e.Status, &e.Date, &e.PaidAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan ledger entry: %w", err)
	}
	return &e, nil
}
