// Package memory implementa los repositorios sobre estructuras en memoria.
// Se usa con STORAGE_DRIVER=memory (desarrollo local sin base de datos) y en los tests.
// Los datos se pierden al reiniciar el proceso.
package memory

import (
	"slices"
	"sync"
	"time"

	"github.com/jhoicas/stonecrusher-api/internal/domain/entity"
)

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	mu sync.RWMutex
	// txMu serializa las transacciones; mu protege cada lectura/escritura individual.
	txMu sync.Mutex

	tx txState

	users         []*entity.User
	trucks        []*entity.Truck
	vendors       []*entity.Vendor
	expenses      []*entity.Expense
	maintenance   []*entity.Maintenance
	auditLogs     []*entity.AuditLog
	notifications []*entity.Notification
}

// txState tablas que participan en transacciones; TxRunner las restaura si fn falla.
type txState struct {
	materials  []*entity.Material
	stock      map[string]*entity.Stock
	production []*entity.Production
	dispatches []*entity.Dispatch
	sales      []*entity.Sale
	ledger     []*entity.VendorLedger
	rates      []*entity.Rate
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{tx: txState{stock: make(map[string]*entity.Stock)}}
}

func (t txState) clone() txState {
	c := txState{
		materials:  cloneAll(t.materials),
		stock:      make(map[string]*entity.Stock, len(t.stock)),
		production: cloneAll(t.production),
		dispatches: cloneAll(t.dispatches),
		sales:      cloneAll(t.sales),
		ledger:     cloneAll(t.ledger),
		rates:      cloneAll(t.rates),
	}
	for k, v := range t.stock {
		c.stock[k] = clone(v)
	}
	for i, e := range c.ledger {
		if e.PaidAt != nil {
			at := *e.PaidAt
			c.ledger[i].PaidAt = &at
		}
	}
	return c
}

func clone[T any](v *T) *T {
	c := *v
	return &c
}

func cloneAll[T any](in []*T) []*T {
	out := make([]*T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}

// newestFirst copia y ordena por fecha descendente (estable: a igual fecha, la última insertada primero).
func newestFirst[T any](in []*T, date func(*T) time.Time) []*T {
	out := cloneAll(in)
	slices.Reverse(out)
	slices.SortStableFunc(out, func(a, b *T) int {
		return date(b).Compare(date(a))
	})
	return out
}

// writeTx ejecuta fn sobre las tablas transaccionales. Fuera de una transacción toma
// también txMu para que un rollback concurrente no pise la escritura.
func (s *Store) writeTx(inTx bool, fn func() error) error {
	if !inTx {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

func (s *Store) emailOf(userID string) string {
	for _, u := range s.users {
		if u.ID == userID {
			return u.Email
		}
	}
	return ""
}
