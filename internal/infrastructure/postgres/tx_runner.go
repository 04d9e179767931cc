package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/belofte2025/belofte-sub001/internal/application/importer"
	"github.com/belofte2025/belofte-sub001/internal/application/maintenance"
	"github.com/belofte2025/belofte-sub001/internal/domain/repository"
)

// Ensure TxRunner implements importer.TxRunner and maintenance.CleanupTxRunner.
var _ importer.TxRunner = (*TxRunner)(nil)
var _ maintenance.CleanupTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Es la unidad atómica de cada llamada de importación.
func (r *TxRunner) Run(ctx context.Context, fn func(
	customers repository.CustomerRepository,
	sales repository.SaleRepository,
	payments repository.PaymentRepository,
	suppliers repository.SupplierRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	customerRepo := NewCustomerRepository(tx)
	saleRepo := NewSaleRepository(tx)
	paymentRepo := NewPaymentRepository(tx)
	supplierRepo := NewSupplierRepository(tx)

	if err := fn(customerRepo, saleRepo, paymentRepo, supplierRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCleanup inicia una transacción con el repo de borrado masivo. O todos
// los pasos de la limpieza se confirman, o ninguno.
func (r *TxRunner) RunCleanup(ctx context.Context, fn func(repo repository.CleanupRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCleanupRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
