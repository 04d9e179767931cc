package statement

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/belofte2025/belofte-sub001/internal/application/dto"
	"github.com/belofte2025/belofte-sub001/internal/domain"
	"github.com/belofte2025/belofte-sub001/internal/domain/repository"
)

// UseCase arma el estado de cuenta de un cliente: ventas y pagos fusionados
// en una sola línea de tiempo con saldo acumulado. Derivación pura, se
// recalcula en cada llamada; nada se muta.
type UseCase struct {
	customers repository.CustomerRepository
	sales     repository.SaleRepository
	payments  repository.PaymentRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(customers repository.CustomerRepository, sales repository.SaleRepository, payments repository.PaymentRepository) *UseCase {
	return &UseCase{customers: customers, sales: sales, payments: payments}
}

// entrada interna de la línea de tiempo antes de fijar el saldo.
type timelineEntry struct {
	dto.StatementEntry
	seq int64
}

// GetStatement devuelve las entradas del estado de cuenta en orden
// cronológico ascendente. Desempate explícito para fechas iguales: secuencia
// de creación (seq) y, de persistir el empate entre tablas, ventas antes que
// pagos; así la salida es reproducible byte a byte entre llamadas.
func (uc *UseCase) GetStatement(companyID, customerID string) ([]dto.StatementEntry, error) {
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

	sales, err := uc.sales.ListByCustomer(companyID, customerID)
	if err != nil {
		return nil, err
	}
	payments, err := uc.payments.ListByCustomer(companyID, customerID)
	if err != nil {
		return nil, err
	}

	timeline := make([]timelineEntry, 0, len(sales)+len(payments))
	for _, s := range sales {
		timeline = append(timeline, timelineEntry{
			StatementEntry: dto.StatementEntry{
				Kind:   dto.StatementKindSale,
				Date:   s.CreatedAt,
				Amount: s.TotalAmount,
				Detail: "Sale (" + s.SaleType + ")",
			},
			seq: s.Seq,
		})
	}
	for _, p := range payments {
		detail := "Payment"
		if p.Note != "" {
			detail += " - " + p.Note
		}
		timeline = append(timeline, timelineEntry{
			StatementEntry: dto.StatementEntry{
				Kind:   dto.StatementKindPayment,
				Date:   p.CreatedAt,
				Amount: p.Amount,
				Detail: detail,
			},
			seq: p.Seq,
		})
	}

	sort.SliceStable(timeline, func(i, j int) bool {
		a, b := timeline[i], timeline[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.seq != b.seq {
			return a.seq < b.seq
		}
		return a.Kind == dto.StatementKindSale && b.Kind == dto.StatementKindPayment
	})

	balance := decimal.Zero
	out := make([]dto.StatementEntry, 0, len(timeline))
	for _, t := range timeline {
		if t.Kind == dto.StatementKindSale {
			balance = balance.Add(t.Amount)
		} else {
			balance = balance.Sub(t.Amount)
		}
		entry := t.StatementEntry
		entry.Balance = balance
		out = append(out, entry)
	}
	return out, nil
}
