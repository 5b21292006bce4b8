package repository

import "context"

// TxRepos repositorios atados a una misma transacción.
type TxRepos struct {
	Stock      StockRepository
	Production ProductionRepository
	Dispatch   DispatchRepository
	Sales      SaleRepository
	Ledger     VendorLedgerRepository
	Materials  MaterialRepository
	Rates      RateRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback en otro caso.
// Garantiza atomicidad de las escrituras dependientes (registro + stock + ledger).
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
