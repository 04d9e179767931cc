package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/belofte2025/belofte-sub001/internal/domain"
	"github.com/belofte2025/belofte-sub001/internal/domain/entity"
	"github.com/belofte2025/belofte-sub001/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste el pago. La BD asigna seq (bigserial) y created_at.
func (r *PaymentRepo) Create(payment *entity.CustomerPayment) error {
	query := `
		INSERT INTO customer_payments (id, company_id, customer_id, amount, note, payment_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING seq, created_at`
	err := r.q.QueryRow(context.Background(), query,
		payment.ID, payment.CompanyID, payment.CustomerID,
		payment.Amount, payment.Note, payment.PaymentType,
	).Scan(&payment.Seq, &payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PaymentRepo) GetByID(id string) (*entity.CustomerPayment, error) {
	query := `
		SELECT id, company_id, customer_id, amount, note, payment_type, seq, created_at
		FROM customer_payments WHERE id = $1`
	var p entity.CustomerPayment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CompanyID, &p.CustomerID, &p.Amount, &p.Note, &p.PaymentType, &p.Seq, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// ListByCustomer devuelve los pagos del cliente en orden de creación.
func (r *PaymentRepo) ListByCustomer(companyID, customerID string) ([]*entity.CustomerPayment, error) {
	return r.listByCustomer(companyID, customerID, "ASC")
}

// ListByCustomerDesc devuelve los pagos del cliente, más recientes primero.
func (r *PaymentRepo) ListByCustomerDesc(companyID, customerID string) ([]*entity.CustomerPayment, error) {
	return r.listByCustomer(companyID, customerID, "DESC")
}

func (r *PaymentRepo) listByCustomer(companyID, customerID, dir string) ([]*entity.CustomerPayment, error) {
	query := fmt.Sprintf(`
		SELECT id, company_id, customer_id, amount, note, payment_type, seq, created_at
		FROM customer_payments WHERE company_id = $1 AND customer_id = $2 ORDER BY seq %s`, dir)
	rows, err := r.q.Query(context.Background(), query, companyID, customerID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.CustomerPayment
	for rows.Next() {
		var p entity.CustomerPayment
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.CustomerID, &p.Amount, &p.Note,
			&p.PaymentType, &p.Seq, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ExistsOpeningBalance indica si el cliente ya tiene un pago de saldo inicial.
func (r *PaymentRepo) ExistsOpeningBalance(customerID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(), `
		SELECT EXISTS(SELECT 1 FROM customer_payments WHERE customer_id = $1 AND payment_type = $2)`,
		customerID, entity.PaymentTypeOpeningBalance,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check opening balance payment: %w", err)
	}
	return exists, nil
}

// Delete elimina un pago por ID.
func (r *PaymentRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM customer_payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
