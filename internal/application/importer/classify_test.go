package importer_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/belofte2025/belofte-sub001/internal/application/importer"
)

func TestClassifyCustomerRow_Valida(t *testing.T) {
	intent, rowErr := importer.ClassifyCustomerRow(importer.CustomerRow{
		Line: 2, CustomerName: "John Doe", Phone: "024 000 0001",
	})
	require.Empty(t, rowErr)
	assert.Equal(t, "John Doe", intent.CustomerName)
	assert.Equal(t, "024 000 0001", intent.Phone)
}

func TestClassifyCustomerRow_CamposFaltantes(t *testing.T) {
	intent, rowErr := importer.ClassifyCustomerRow(importer.CustomerRow{Line: 3, CustomerName: "John Doe"})
	assert.Nil(t, intent)
	assert.Contains(t, rowErr, "Invalid data")
	assert.Contains(t, rowErr, "row 3", "el error debe nombrar la fila")
}

func TestClassifyBalanceRow_DebitEsVenta(t *testing.T) {
	intent, rowErr := importer.ClassifyBalanceRow(importer.OpeningBalanceRow{
		Line: 2, CustomerName: "John Doe", BalanceType: "debit", Amount: "1500",
	})
	require.Empty(t, rowErr)
	assert.Equal(t, importer.BalanceDebit, intent.Op)
	assert.True(t, intent.Amount.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, "Opening balance from import", intent.Notes, "sin nota explícita aplica la nota por defecto")
}

func TestClassifyBalanceRow_CreditEsPago(t *testing.T) {
	intent, rowErr := importer.ClassifyBalanceRow(importer.OpeningBalanceRow{
		Line: 3, CustomerName: "Acme", BalanceType: "Credit", Amount: "750.25", Notes: "Prepaid",
	})
	require.Empty(t, rowErr)
	assert.Equal(t, importer.BalanceCredit, intent.Op, "balanceType se normaliza a minúsculas")
	assert.True(t, intent.Amount.Equal(decimal.RequireFromString("750.25")))
	assert.Equal(t, "Prepaid", intent.Notes)
}

func TestClassifyBalanceRow_TipoInvalido(t *testing.T) {
	intent, rowErr := importer.ClassifyBalanceRow(importer.OpeningBalanceRow{
		Line: 4, CustomerName: "Acme", BalanceType: "owing", Amount: "100",
	})
	assert.Nil(t, intent)
	assert.Contains(t, rowErr, `Invalid balance type "owing". Must be "debit" or "credit"`)
	assert.Contains(t, rowErr, "customer Acme")
}

func TestClassifyBalanceRow_MontoNoPositivo(t *testing.T) {
	for _, amount := range []string{"0", "-5", "abc", ""} {
		intent, rowErr := importer.ClassifyBalanceRow(importer.OpeningBalanceRow{
			Line: 5, CustomerName: "Acme", BalanceType: "debit", Amount: amount,
		})
		assert.Nil(t, intent, "amount=%q debe rechazarse", amount)
		assert.Contains(t, rowErr, "Invalid data")
	}
}

func TestClassifyItemPriceRow(t *testing.T) {
	intent, rowErr := importer.ClassifyItemPriceRow(importer.ItemPriceRow{
		Line: 2, SupplierName: "Global Imports", ItemName: "Tiles", Price: "42.50",
	})
	require.Empty(t, rowErr)
	assert.True(t, intent.Price.Equal(decimal.RequireFromString("42.5")))

	intent, rowErr = importer.ClassifyItemPriceRow(importer.ItemPriceRow{
		Line: 3, SupplierName: "Global Imports", ItemName: "Tiles", Price: "-1",
	})
	assert.Nil(t, intent)
	assert.Contains(t, rowErr, "Invalid data")
}
