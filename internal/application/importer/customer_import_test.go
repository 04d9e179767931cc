package importer_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/belofte2025/belofte-sub001/internal/application/dto"
	"github.com/belofte2025/belofte-sub001/internal/application/importer"
	"github.com/belofte2025/belofte-sub001/internal/domain"
	"github.com/belofte2025/belofte-sub001/internal/domain/entity"
)

var errInfra = errors.New("connection reset by peer")

const testCompanyID = "company-1"

func seedCustomer(repo *fakeCustomerRepo, id, name string) {
	repo.customers = append(repo.customers, &entity.Customer{
		ID: id, CompanyID: testCompanyID, CustomerName: name,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	})
}

func TestCustomerImport_CreaClientesNuevos(t *testing.T) {
	tx := newFakeTxRunner()
	parser := &fakeParser{customerWB: &importer.CustomerWorkbook{
		Customers: []importer.CustomerRow{
			{Line: 2, CustomerName: "John Doe", Phone: "111"},
			{Line: 3, CustomerName: "Jane Roe", Phone: "222"},
		},
	}}
	uc := importer.NewCustomerImportUseCase(parser, tx)

	result, err := uc.Import(context.Background(), testCompanyID, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Details[dto.CategoryCustomers].Created)
	assert.Empty(t, result.Details[dto.CategoryCustomers].Errors)
	assert.Len(t, tx.customers.customers, 2)
	assert.Equal(t, "Import completed: 2 records created", result.Message)
}

func TestCustomerImport_ExistenteSeOmiteEnSilencio(t *testing.T) {
	tx := newFakeTxRunner()
	seedCustomer(tx.customers, "c1", "John Doe")
	parser := &fakeParser{customerWB: &importer.CustomerWorkbook{
		Customers: []importer.CustomerRow{
			// El nombre coincide sin distinguir mayúsculas.
			{Line: 2, CustomerName: "JOHN DOE", Phone: "111"},
			{Line: 3, CustomerName: "Jane Roe", Phone: "222"},
		},
	}}
	uc := importer.NewCustomerImportUseCase(parser, tx)

	result, err := uc.Import(context.Background(), testCompanyID, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Details[dto.CategoryCustomers].Created, "solo el cliente nuevo cuenta como creado")
	assert.Empty(t, result.Details[dto.CategoryCustomers].Errors, "el duplicado no es error")
	assert.Len(t, tx.customers.customers, 2)
}

func TestCustomerImport_DebitGeneraVenta(t *testing.T) {
	tx := newFakeTxRunner()
	seedCustomer(tx.customers, "c1", "John Doe")
	parser := &fakeParser{customerWB: &importer.CustomerWorkbook{
		Balances: []importer.OpeningBalanceRow{
			{Line: 2, CustomerName: "John Doe", BalanceType: "debit", Amount: "1500"},
		},
	}}
	uc := importer.NewCustomerImportUseCase(parser, tx)

	result, err := uc.Import(context.Background(), testCompanyID, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Details[dto.CategoryBalances].Created)

	require.Len(t, tx.sales.sales, 1, "exactamente una transacción derivada por fila aceptada")
	assert.Empty(t, tx.payments.payments)
	sale := tx.sales.sales[0]
	assert.Equal(t, "Opening Balance", sale.SaleType)
	assert.Equal(t, entity.SaleSourceOpeningBalance, sale.SourceType)
	assert.Equal(t, "import", sale.SourceID)
	assert.True(t, sale.TotalAmount.Equal(decimal.NewFromInt(1500)))
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "Opening Balance - Customer Owes", sale.Items[0].ItemName)
	assert.Equal(t, 1, sale.Items[0].Quantity)
	assert.True(t, sale.Items[0].UnitPrice.Equal(decimal.NewFromInt(1500)))
}

func TestCustomerImport_CreditGeneraPago(t *testing.T) {
	tx := newFakeTxRunner()
	seedCustomer(tx.customers, "c1", "Acme Trading")
	parser := &fakeParser{customerWB: &importer.CustomerWorkbook{
		Balances: []importer.OpeningBalanceRow{
			{Line: 2, CustomerName: "Acme Trading", BalanceType: "credit", Amount: "750.25", Notes: "Prepaid deposit"},
		},
	}}
	uc := importer.NewCustomerImportUseCase(parser, tx)

	result, err := uc.Import(context.Background(), testCompanyID, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Details[dto.CategoryBalances].Created)

	require.Len(t, tx.payments.payments, 1)
	assert.Empty(t, tx.sales.sales)
	payment := tx.payments.payments[0]
	assert.True(t, payment.Amount.Equal(decimal.RequireFromString("750.25")))
	assert.Equal(t, "Prepaid deposit", payment.Note)
	assert.Equal(t, entity.PaymentTypeOpeningBalance, payment.PaymentType)
}

func TestCustomerImport_ClienteDesconocidoEsErrorDeFila(t *testing.T) {
	tx := newFakeTxRunner()
	seedCustomer(tx.customers, "c1", "John Doe")
	parser := &fakeParser{customerWB: &importer.CustomerWorkbook{
		Balances: []importer.OpeningBalanceRow{
			{Line: 2, CustomerName: "Ghost Corp", BalanceType: "debit", Amount: "100"},
			{Line: 3, CustomerName: "John Doe", BalanceType: "debit", Amount: "200"},
		},
	}}
	uc := importer.NewCustomerImportUseCase(parser, tx)

	result, err := uc.Import(context.Background(), testCompanyID, nil)
	require.NoError(t, err)
	// La referencia sin resolver no detiene la fila siguiente.
	assert.Equal(t, 1, result.Details[dto.CategoryBalances].Created)
	require.Len(t, result.Details[dto.CategoryBalances].Errors, 1)
	assert.Equal(t, "Customer not found: Ghost Corp", result.Details[dto.CategoryBalances].Errors[0])
	assert.Len(t, tx.sales.sales, 1, "nunca se crea el cliente implícitamente")
}

func TestCustomerImport_SaldoInicialRepetidoSeOmite(t *testing.T) {
	tx := newFakeTxRunner()
	seedCustomer(tx.customers, "c1", "John Doe")
	parser := &fakeParser{customerWB: &importer.CustomerWorkbook{
		Balances: []importer.OpeningBalanceRow{
			{Line: 2, CustomerName: "John Doe", BalanceType: "debit", Amount: "100"},
			{Line: 3, CustomerName: "John Doe", BalanceType: "debit", Amount: "999"},
		},
	}}
	uc := importer.NewCustomerImportUseCase(parser, tx)

	result, err := uc.Import(context.Background(), testCompanyID, nil)
	require.NoError(t, err)
	assert.Len(t, tx.sales.sales, 1, "solo el primer saldo inicial se materializa")
	assert.Equal(t, 1, result.Details[dto.CategoryBalances].Created)
	assert.Empty(t, result.Details[dto.CategoryBalances].Errors)
}

func TestCustomerImport_FilasInvalidasNoDetienenLasDemas(t *testing.T) {
	tx := newFakeTxRunner()
	parser := &fakeParser{customerWB: &importer.CustomerWorkbook{
		Customers: []importer.CustomerRow{
			{Line: 2, CustomerName: "", Phone: "111"},
			{Line: 3, CustomerName: "Jane Roe", Phone: "222"},
			{Line: 4, CustomerName: "Bad Row", Phone: ""},
		},
	}}
	uc := importer.NewCustomerImportUseCase(parser, tx)

	result, err := uc.Import(context.Background(), testCompanyID, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Details[dto.CategoryCustomers].Created)
	assert.Len(t, result.Details[dto.CategoryCustomers].Errors, 2)
	assert.Equal(t, "Import completed: 1 records created, 2 errors", result.Message)
}

func TestCustomerImport_SinCreadosNoEsExito(t *testing.T) {
	tx := newFakeTxRunner()
	parser := &fakeParser{customerWB: &importer.CustomerWorkbook{
		Customers: []importer.CustomerRow{{Line: 2, CustomerName: "", Phone: ""}},
	}}
	uc := importer.NewCustomerImportUseCase(parser, tx)

	result, err := uc.Import(context.Background(), testCompanyID, nil)
	require.NoError(t, err)
	assert.False(t, result.Success, "success exige al menos un registro creado")
}

func TestCustomerImport_LibroMalformadoPropagaElError(t *testing.T) {
	tx := newFakeTxRunner()
	parser := &fakeParser{err: fmt.Errorf("%w: missing sheet \"Customers\"", domain.ErrMalformedWorkbook)}
	uc := importer.NewCustomerImportUseCase(parser, tx)

	result, err := uc.Import(context.Background(), testCompanyID, nil)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedWorkbook)
	assert.Empty(t, tx.customers.customers, "nada llega a la BD con libro malformado")
}

func TestCustomerImport_ErrorDeInfraAbortaLaLlamada(t *testing.T) {
	tx := newFakeTxRunner()
	tx.customers.failOn = "Jane Roe"
	parser := &fakeParser{customerWB: &importer.CustomerWorkbook{
		Customers: []importer.CustomerRow{
			{Line: 2, CustomerName: "John Doe", Phone: "111"},
			{Line: 3, CustomerName: "Jane Roe", Phone: "222"},
		},
	}}
	uc := importer.NewCustomerImportUseCase(parser, tx)

	result, err := uc.Import(context.Background(), testCompanyID, nil)
	assert.Nil(t, result)
	require.ErrorIs(t, err, errInfra)
	assert.True(t, tx.rolledBack, "un error de infraestructura revierte la transacción completa")
}
