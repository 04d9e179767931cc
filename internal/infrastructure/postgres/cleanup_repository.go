package postgres

import (
	"context"
	"fmt"

	"github.com/belofte2025/belofte-sub001/internal/domain/repository"
)

var _ repository.CleanupRepository = (*CleanupRepo)(nil)

// CleanupRepo implementación de CleanupRepository. Cada método borra una
// tabla completa o solo las filas del tenant; las tablas hijas sin
// company_id propio (sale_items, container_items, supplier_items,
// audit_logs) se acotan vía la tabla padre.
type CleanupRepo struct {
	q Querier
}

// NewCleanupRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCleanupRepository(q Querier) *CleanupRepo {
	return &CleanupRepo{q: q}
}

func (r *CleanupRepo) exec(all, scoped, companyID string) (int64, error) {
	if companyID == "" {
		res, err := r.q.Exec(context.Background(), all)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected(), nil
	}
	res, err := r.q.Exec(context.Background(), scoped, companyID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

// DeleteAuditLogs borra la bitácora; por tenant se acota vía users.
func (r *CleanupRepo) DeleteAuditLogs(companyID string) (int64, error) {
	n, err := r.exec(
		`DELETE FROM audit_logs`,
		`DELETE FROM audit_logs WHERE user_id IN (SELECT id FROM users WHERE company_id = $1)`,
		companyID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete audit logs: %w", err)
	}
	return n, nil
}

// DeleteSaleItems borra líneas de venta; por tenant se acota vía sales.
func (r *CleanupRepo) DeleteSaleItems(companyID string) (int64, error) {
	n, err := r.exec(
		`DELETE FROM sale_items`,
		`DELETE FROM sale_items WHERE sale_id IN (SELECT id FROM sales WHERE company_id = $1)`,
		companyID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete sale items: %w", err)
	}
	return n, nil
}

// DeleteSales borra ventas.
func (r *CleanupRepo) DeleteSales(companyID string) (int64, error) {
	n, err := r.exec(
		`DELETE FROM sales`,
		`DELETE FROM sales WHERE company_id = $1`,
		companyID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete sales: %w", err)
	}
	return n, nil
}

// DeletePayments borra pagos de clientes.
func (r *CleanupRepo) DeletePayments(companyID string) (int64, error) {
	n, err := r.exec(
		`DELETE FROM customer_payments`,
		`DELETE FROM customer_payments WHERE company_id = $1`,
		companyID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete payments: %w", err)
	}
	return n, nil
}

// DeleteCustomers borra clientes.
func (r *CleanupRepo) DeleteCustomers(companyID string) (int64, error) {
	n, err := r.exec(
		`DELETE FROM customers`,
		`DELETE FROM customers WHERE company_id = $1`,
		companyID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete customers: %w", err)
	}
	return n, nil
}

// DeleteContainerItems borra líneas de contenedor; por tenant vía containers.
func (r *CleanupRepo) DeleteContainerItems(companyID string) (int64, error) {
	n, err := r.exec(
		`DELETE FROM container_items`,
		`DELETE FROM container_items WHERE container_id IN (SELECT id FROM containers WHERE company_id = $1)`,
		companyID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete container items: %w", err)
	}
	return n, nil
}

// DeleteContainers borra contenedores.
func (r *CleanupRepo) DeleteContainers(companyID string) (int64, error) {
	n, err := r.exec(
		`DELETE FROM containers`,
		`DELETE FROM containers WHERE company_id = $1`,
		companyID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete containers: %w", err)
	}
	return n, nil
}

// DeleteSupplierItems borra artículos de proveedor; por tenant vía suppliers.
func (r *CleanupRepo) DeleteSupplierItems(companyID string) (int64, error) {
	n, err := r.exec(
		`DELETE FROM supplier_items`,
		`DELETE FROM supplier_items WHERE supplier_id IN (SELECT id FROM suppliers WHERE company_id = $1)`,
		companyID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete supplier items: %w", err)
	}
	return n, nil
}

// DeleteSuppliers borra proveedores.
func (r *CleanupRepo) DeleteSuppliers(companyID string) (int64, error) {
	n, err := r.exec(
		`DELETE FROM suppliers`,
		`DELETE FROM suppliers WHERE company_id = $1`,
		companyID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete suppliers: %w", err)
	}
	return n, nil
}
