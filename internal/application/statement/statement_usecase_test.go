package statement_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/belofte2025/belofte-sub001/internal/application/dto"
	"github.com/belofte2025/belofte-sub001/internal/application/statement"
	"github.com/belofte2025/belofte-sub001/internal/domain"
	"github.com/belofte2025/belofte-sub001/internal/domain/entity"
)

const (
	companyA   = "company-a"
	companyB   = "company-b"
	customerID = "cust-1"
)

type fakeCustomerRepo struct{ customers []*entity.Customer }

func (f *fakeCustomerRepo) Create(*entity.Customer) error { return nil }
func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCustomerRepo) GetByCompanyAndName(string, string) (*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) ListByCompany(string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) Update(*entity.Customer) error { return nil }
func (f *fakeCustomerRepo) Delete(string) error           { return nil }

type fakeSaleRepo struct{ sales []*entity.Sale }

func (f *fakeSaleRepo) Create(*entity.Sale) error { return nil }
func (f *fakeSaleRepo) ListByCustomer(companyID, custID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range f.sales {
		if s.CompanyID == companyID && s.CustomerID == custID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (f *fakeSaleRepo) ExistsOpeningBalance(string) (bool, error) { return false, nil }

type fakePaymentRepo struct{ payments []*entity.CustomerPayment }

func (f *fakePaymentRepo) Create(*entity.CustomerPayment) error { return nil }
func (f *fakePaymentRepo) GetByID(string) (*entity.CustomerPayment, error) {
	return nil, nil
}
func (f *fakePaymentRepo) ListByCustomer(companyID, custID string) ([]*entity.CustomerPayment, error) {
	var out []*entity.CustomerPayment
	for _, p := range f.payments {
		if p.CompanyID == companyID && p.CustomerID == custID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakePaymentRepo) ListByCustomerDesc(companyID, custID string) ([]*entity.CustomerPayment, error) {
	return f.ListByCustomer(companyID, custID)
}
func (f *fakePaymentRepo) ExistsOpeningBalance(string) (bool, error) { return false, nil }
func (f *fakePaymentRepo) Delete(string) error                       { return nil }

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func buildUseCase(sales []*entity.Sale, payments []*entity.CustomerPayment) *statement.UseCase {
	customers := &fakeCustomerRepo{customers: []*entity.Customer{
		{ID: customerID, CompanyID: companyA, CustomerName: "Acme Trading"},
	}}
	return statement.NewUseCase(customers, &fakeSaleRepo{sales: sales}, &fakePaymentRepo{payments: payments})
}

func TestGetStatement_SaldoAcumulado(t *testing.T) {
	uc := buildUseCase(
		[]*entity.Sale{
			{ID: "s1", CompanyID: companyA, CustomerID: customerID, SaleType: "Retail", TotalAmount: dec("100"), Seq: 1, CreatedAt: day(1)},
			{ID: "s2", CompanyID: companyA, CustomerID: customerID, SaleType: "Wholesale", TotalAmount: dec("20"), Seq: 2, CreatedAt: day(10)},
		},
		[]*entity.CustomerPayment{
			{ID: "p1", CompanyID: companyA, CustomerID: customerID, Amount: dec("40"), Note: "cash", Seq: 1, CreatedAt: day(5)},
		},
	)

	entries, err := uc.GetStatement(companyA, customerID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Ventas suman, pagos restan; el saldo de cada entrada ya aplica su monto.
	assert.Equal(t, dto.StatementKindSale, entries[0].Kind)
	assert.True(t, entries[0].Balance.Equal(dec("100")))
	assert.Equal(t, "Sale (Retail)", entries[0].Detail)

	assert.Equal(t, dto.StatementKindPayment, entries[1].Kind)
	assert.True(t, entries[1].Balance.Equal(dec("60")))
	assert.Equal(t, "Payment - cash", entries[1].Detail)

	assert.Equal(t, dto.StatementKindSale, entries[2].Kind)
	assert.True(t, entries[2].Balance.Equal(dec("80")))
}

func TestGetStatement_SaldoPuedeSerNegativo(t *testing.T) {
	uc := buildUseCase(
		[]*entity.Sale{
			{ID: "s1", CompanyID: companyA, CustomerID: customerID, SaleType: "Retail", TotalAmount: dec("50"), Seq: 1, CreatedAt: day(1)},
		},
		[]*entity.CustomerPayment{
			{ID: "p1", CompanyID: companyA, CustomerID: customerID, Amount: dec("80"), Seq: 1, CreatedAt: day(2)},
		},
	)

	entries, err := uc.GetStatement(companyA, customerID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[1].Balance.Equal(dec("-30")), "el sobrepago deja saldo a favor del cliente")
}

func TestGetStatement_DesempatePorFechaIgual(t *testing.T) {
	// Mismo día: ordena por secuencia de creación; si la secuencia también
	// empata entre tablas, la venta va antes que el pago.
	uc := buildUseCase(
		[]*entity.Sale{
			{ID: "s2", CompanyID: companyA, CustomerID: customerID, SaleType: "Retail", TotalAmount: dec("20"), Seq: 5, CreatedAt: day(1)},
			{ID: "s1", CompanyID: companyA, CustomerID: customerID, SaleType: "Retail", TotalAmount: dec("10"), Seq: 2, CreatedAt: day(1)},
		},
		[]*entity.CustomerPayment{
			{ID: "p1", CompanyID: companyA, CustomerID: customerID, Amount: dec("5"), Seq: 2, CreatedAt: day(1)},
		},
	)

	entries, err := uc.GetStatement(companyA, customerID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.True(t, entries[0].Amount.Equal(dec("10")), "seq 2 (venta) primero")
	assert.Equal(t, dto.StatementKindSale, entries[0].Kind)
	assert.True(t, entries[1].Amount.Equal(dec("5")), "seq 2 (pago) después de la venta con igual seq")
	assert.Equal(t, dto.StatementKindPayment, entries[1].Kind)
	assert.True(t, entries[2].Amount.Equal(dec("20")))

	assert.True(t, entries[2].Balance.Equal(dec("25")))
}

func TestGetStatement_DeterministaEntreLlamadas(t *testing.T) {
	uc := buildUseCase(
		[]*entity.Sale{
			{ID: "s1", CompanyID: companyA, CustomerID: customerID, SaleType: "Retail", TotalAmount: dec("100"), Seq: 1, CreatedAt: day(1)},
			{ID: "s2", CompanyID: companyA, CustomerID: customerID, SaleType: "Retail", TotalAmount: dec("200"), Seq: 3, CreatedAt: day(1)},
		},
		[]*entity.CustomerPayment{
			{ID: "p1", CompanyID: companyA, CustomerID: customerID, Amount: dec("50"), Seq: 2, CreatedAt: day(1)},
		},
	)

	first, err := uc.GetStatement(companyA, customerID)
	require.NoError(t, err)
	second, err := uc.GetStatement(companyA, customerID)
	require.NoError(t, err)
	assert.Equal(t, first, second, "mismos datos, misma salida")
}

func TestGetStatement_SinTransacciones(t *testing.T) {
	uc := buildUseCase(nil, nil)
	entries, err := uc.GetStatement(companyA, customerID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetStatement_ClienteInexistente(t *testing.T) {
	uc := buildUseCase(nil, nil)
	_, err := uc.GetStatement(companyA, "no-such")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetStatement_ClienteDeOtraEmpresa(t *testing.T) {
	uc := buildUseCase(nil, nil)
	_, err := uc.GetStatement(companyB, customerID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
