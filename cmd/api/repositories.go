package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
	"github.com/jhoicas/stonecrusher-api/internal/infrastructure/memory"
	"github.com/jhoicas/stonecrusher-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stonecrusher-api/pkg/config"
)

// repositories adaptadores de persistencia elegidos por STORAGE_DRIVER.
type repositories struct {
	tx            repository.TxRunner
	users         repository.UserRepository
	materials     repository.MaterialRepository
	trucks        repository.TruckRepository
	vendors       repository.VendorRepository
	rates         repository.RateRepository
	stock         repository.StockRepository
	production    repository.ProductionRepository
	dispatch      repository.DispatchRepository
	sales         repository.SaleRepository
	expenses      repository.ExpenseRepository
	maintenance   repository.MaintenanceRepository
	ledger        repository.VendorLedgerRepository
	auditLogs     repository.AuditLogRepository
	notifications repository.NotificationRepository
	analytics     repository.AnalyticsRepository
	close         func()
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	switch cfg.App.StorageDriver {
	case "memory":
		return memoryRepositories(memory.NewStore()), nil
	case "postgres", "":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		return postgresRepositories(pool), nil
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER desconocido: %q", cfg.App.StorageDriver)
	}
}

func postgresRepositories(pool *pgxpool.Pool) *repositories {
	return &repositories{
		tx:            postgres.NewTxRunner(pool),
		users:         postgres.NewUserRepository(pool),
		materials:     postgres.NewMaterialRepository(pool),
		trucks:        postgres.NewTruckRepository(pool),
		vendors:       postgres.NewVendorRepository(pool),
		rates:         postgres.NewRateRepository(pool),
		stock:         postgres.NewStockRepository(pool),
		production:    postgres.NewProductionRepository(pool),
		dispatch:      postgres.NewDispatchRepository(pool),
		sales:         postgres.NewSaleRepository(pool),
		expenses:      postgres.NewExpenseRepository(pool),
		maintenance:   postgres.NewMaintenanceRepository(pool),
		ledger:        postgres.NewVendorLedgerRepository(pool),
		auditLogs:     postgres.NewAuditLogRepository(pool),
		notifications: postgres.NewNotificationRepository(pool),
		analytics:     postgres.NewAnalyticsRepository(pool),
		close:         pool.Close,
	}
}

func memoryRepositories(s *memory.Store) *repositories {
	return &repositories{
		tx:            memory.NewTxRunner(s),
		users:         memory.NewUserRepository(s),
		materials:     memory.NewMaterialRepository(s),
		trucks:        memory.NewTruckRepository(s),
		vendors:       memory.NewVendorRepository(s),
		rates:         memory.NewRateRepository(s),
		stock:         memory.NewStockRepository(s),
		production:    memory.NewProductionRepository(s),
		dispatch:      memory.NewDispatchRepository(s),
		sales:         memory.NewSaleRepository(s),
		expenses:      memory.NewExpenseRepository(s),
		maintenance:   memory.NewMaintenanceRepository(s),
		ledger:        memory.NewVendorLedgerRepository(s),
		auditLogs:     memory.NewAuditLogRepository(s),
		notifications: memory.NewNotificationRepository(s),
		analytics:     memory.NewAnalyticsRepository(s),
		close:         func() {},
	}
}
