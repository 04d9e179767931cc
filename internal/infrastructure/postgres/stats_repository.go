package postgres

import (
	"context"
	"fmt"

	"github.com/belofte2025/belofte-sub001/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo implementación de StatsRepository (solo lectura).
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// CountAll cuenta filas por tabla. companyID vacío cuenta todo el sistema;
// con tenant, las tablas hijas se acotan vía su padre, igual que la limpieza.
func (r *StatsRepo) CountAll(companyID string) (*repository.Counts, error) {
	counts := &repository.Counts{}
	type target struct {
		dest   *int64
		all    string
		scoped string
	}
	targets := []target{
		{&counts.Companies, `SELECT COUNT(*) FROM companies`,
			`SELECT COUNT(*) FROM companies WHERE id = $1`},
		{&counts.Users, `SELECT COUNT(*) FROM users`,
			`SELECT COUNT(*) FROM users WHERE company_id = $1`},
		{&counts.Customers, `SELECT COUNT(*) FROM customers`,
			`SELECT COUNT(*) FROM customers WHERE company_id = $1`},
		{&counts.Payments, `SELECT COUNT(*) FROM customer_payments`,
			`SELECT COUNT(*) FROM customer_payments WHERE company_id = $1`},
		{&counts.Suppliers, `SELECT COUNT(*) FROM suppliers`,
			`SELECT COUNT(*) FROM suppliers WHERE company_id = $1`},
		{&counts.SupplierItems, `SELECT COUNT(*) FROM supplier_items`,
			`SELECT COUNT(*) FROM supplier_items WHERE supplier_id IN (SELECT id FROM suppliers WHERE company_id = $1)`},
		{&counts.Containers, `SELECT COUNT(*) FROM containers`,
			`SELECT COUNT(*) FROM containers WHERE company_id = $1`},
		{&counts.ContainerItems, `SELECT COUNT(*) FROM container_items`,
			`SELECT COUNT(*) FROM container_items WHERE container_id IN (SELECT id FROM containers WHERE company_id = $1)`},
		{&counts.Sales, `SELECT COUNT(*) FROM sales`,
			`SELECT COUNT(*) FROM sales WHERE company_id = $1`},
		{&counts.SaleItems, `SELECT COUNT(*) FROM sale_items`,
			`SELECT COUNT(*) FROM sale_items WHERE sale_id IN (SELECT id FROM sales WHERE company_id = $1)`},
		{&counts.AuditLogs, `SELECT COUNT(*) FROM audit_logs`,
			`SELECT COUNT(*) FROM audit_logs WHERE user_id IN (SELECT id FROM users WHERE company_id = $1)`},
	}
	for _, t := range targets {
		var err error
		if companyID == "" {
			err = r.q.QueryRow(context.Background(), t.all).Scan(t.dest)
		} else {
			err = r.q.QueryRow(context.Background(), t.scoped, companyID).Scan(t.dest)
		}
		if err != nil {
			return nil, fmt.Errorf("count rows: %w", err)
		}
	}
	return counts, nil
}
