package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/belofte2025/belofte-sub001/internal/domain/entity"
	"github.com/belofte2025/belofte-sub001/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
// Las ventas son append-only.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta y sus líneas. La BD asigna seq (bigserial) y
// created_at; ambos quedan reflejados en la entidad.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, company_id, customer_id, sale_type, source_type, source_id, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING seq, created_at`
	err := r.q.QueryRow(context.Background(), query,
		sale.ID, sale.CompanyID, sale.CustomerID, sale.SaleType,
		sale.SourceType, sale.SourceID, sale.TotalAmount,
	).Scan(&sale.Seq, &sale.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	for i := range sale.Items {
		item := &sale.Items[i]
		item.SaleID = sale.ID
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO sale_items (id, sale_id, item_name, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.SaleID, item.ItemName, item.Quantity, item.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// ListByCustomer devuelve las ventas del cliente dentro del tenant, en orden
// de creación (seq ascendente), con sus líneas.
func (r *SaleRepo) ListByCustomer(companyID, customerID string) ([]*entity.Sale, error) {
	query := `
		SELECT id, company_id, customer_id, sale_type, source_type, source_id, total_amount, seq, created_at
		FROM sales WHERE company_id = $1 AND customer_id = $2 ORDER BY seq`
	rows, err := r.q.Query(context.Background(), query, companyID, customerID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.CustomerID, &s.SaleType, &s.SourceType,
			&s.SourceID, &s.TotalAmount, &s.Seq, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range list {
		items, err := r.listItems(s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}
	return list, nil
}

func (r *SaleRepo) listItems(saleID string) ([]entity.SaleItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, sale_id, item_name, quantity, unit_price
		FROM sale_items WHERE sale_id = $1 ORDER BY id`, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ItemName, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ExistsOpeningBalance indica si el cliente ya tiene una venta de saldo inicial.
func (r *SaleRepo) ExistsOpeningBalance(customerID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(), `
		SELECT EXISTS(SELECT 1 FROM sales WHERE customer_id = $1 AND source_type = $2)`,
		customerID, entity.SaleSourceOpeningBalance,
	).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("check opening balance sale: %w", err)
	}
	return exists, nil
}
