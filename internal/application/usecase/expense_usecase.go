package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stonecrusher-api/internal/application/dto"
	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
)

// ExpenseUseCase gastos operativos y mantenimientos de equipo. No tocan stock.
type ExpenseUseCase struct {
	expenses    repository.ExpenseRepository
	maintenance repository.MaintenanceRepository
	audit       Auditor
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(expenses repository.ExpenseRepository, maintenance repository.MaintenanceRepository, audit Auditor) *ExpenseUseCase {
	return &ExpenseUseCase{expenses: expenses, maintenance: maintenance, audit: audit}
}

// CreateExpense registra un gasto.
func (uc *ExpenseUseCase) CreateExpense(ctx context.Context, userID string, in dto.CreateExpenseRequest) (*entity.Expense, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	e := &entity.Expense{
		ID:              uuid.New().String(),
		ExpenseCategory: in.ExpenseCategory,
		Amount:          *in.Amount,
		CreatedBy:       userID,
		Date:            time.Now(),
	}
	if err := uc.expenses.Create(ctx, e); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, userID, "Expense Added", fmt.Sprintf("%s: ₹%s", e.ExpenseCategory, e.Amount))
	return e, nil
}

// ListExpenses lista los gastos, más reciente primero.
func (uc *ExpenseUseCase) ListExpenses(ctx context.Context) ([]*entity.Expense, error) {
	return uc.expenses.List(ctx)
}

// CreateMaintenance registra un mantenimiento. in.File ya viene con la ruta pública del adjunto, si lo hay.
func (uc *ExpenseUseCase) CreateMaintenance(ctx context.Context, userID string, in dto.CreateMaintenanceRequest) (*entity.Maintenance, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	m := &entity.Maintenance{
		ID:        uuid.New().String(),
		Equipment: in.Equipment,
		Issue:     in.Issue,
		Cost:      *in.Cost,
		Remarks:   in.Remarks,
		File:      in.File,
		CreatedBy: userID,
		Date:      time.Now(),
	}
	if err := uc.maintenance.Create(ctx, m); err != nil {
		return nil, err
	}
	uc.audit.Record(ctx, userID, "Maintenance Added", fmt.Sprintf("%s: %s (₹%s)", m.Equipment, m.Issue, m.Cost))
	return m, nil
}

// ListMaintenance lista los mantenimientos, más reciente primero.
func (uc *ExpenseUseCase) ListMaintenance(ctx context.Context) ([]*entity.Maintenance, error) {
	return uc.maintenance.List(ctx)
}
