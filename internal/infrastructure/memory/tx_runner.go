package memory

import (
	"context"

	"github.com/jhoicas/stonecrusher-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// TxRunner transacciones en memoria: serializa con txMu, toma una foto de las tablas
// transaccionales y la restaura si fn devuelve error.
type TxRunner struct{ s *Store }

// NewTxRunner construye el runner.
func NewTxRunner(s *Store) *TxRunner { return &TxRunner{s: s} }

// Run ejecuta fn con repos atados a la transacción.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.TxRepos) error) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()

	r.s.mu.RLock()
	snapshot := r.s.tx.clone()
	r.s.mu.RUnlock()

	repos := repository.TxRepos{
		Stock:      &StockRepo{s: r.s, inTx: true},
		Production: &ProductionRepo{s: r.s, inTx: true},
		Dispatch:   &DispatchRepo{s: r.s, inTx: true},
		Sales:      &SaleRepo{s: r.s, inTx: true},
		Ledger:     &VendorLedgerRepo{s: r.s, inTx: true},
		Materials:  &MaterialRepo{s: r.s, inTx: true},
		Rates:      &RateRepo{s: r.s, inTx: true},
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fn(repos); err != nil {
		r.s.mu.Lock()
		r.s.tx = snapshot
		r.s.mu.Unlock()
		return err
	}
	return nil
}
