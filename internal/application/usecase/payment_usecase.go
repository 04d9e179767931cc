package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/belofte2025/belofte-sub001/internal/application/dto"
	"github.com/belofte2025/belofte-sub001/internal/domain"
	"github.com/belofte2025/belofte-sub001/internal/domain/entity"
	"github.com/belofte2025/belofte-sub001/internal/domain/repository"
)

// PaymentUseCase registra, lista y elimina pagos de clientes. Un pago reduce
// lo que el cliente debe; el estado de cuenta lo refleja de inmediato.
type PaymentUseCase struct {
	payments  repository.PaymentRepository
	customers repository.CustomerRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(payments repository.PaymentRepository, customers repository.CustomerRepository) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, customers: customers}
}

// Record registra un pago contra un cliente del tenant. El monto debe ser positivo.
func (uc *PaymentUseCase) Record(companyID string, in dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customers.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	paymentType := strings.TrimSpace(in.PaymentType)
	if paymentType == "" {
		paymentType = "cash"
	}
	payment := &entity.CustomerPayment{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		CustomerID:  in.CustomerID,
		Amount:      in.Amount,
		Note:        strings.TrimSpace(in.Note),
		PaymentType: paymentType,
		CreatedAt:   time.Now(),
	}
	if err := uc.payments.Create(payment); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// ListByCustomer devuelve el historial de pagos del cliente, más recientes primero.
func (uc *PaymentUseCase) ListByCustomer(companyID, customerID string) ([]*dto.PaymentResponse, error) {
	customer, err := uc.customers.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	payments, err := uc.payments.ListByCustomerDesc(companyID, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentResponse(p))
	}
	return out, nil
}

// Delete elimina un pago del tenant (corrección de un registro erróneo).
func (uc *PaymentUseCase) Delete(companyID, id string) error {
	payment, err := uc.payments.GetByID(id)
	if err != nil {
		return err
	}
	if payment == nil {
		return domain.ErrNotFound
	}
	if payment.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.payments.Delete(id)
}

func toPaymentResponse(p *entity.CustomerPayment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:          p.ID,
		CustomerID:  p.CustomerID,
		Amount:      p.Amount,
		Note:        p.Note,
		PaymentType: p.PaymentType,
		CreatedAt:   p.CreatedAt,
	}
}
