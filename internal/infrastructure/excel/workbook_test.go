package excel_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/belofte2025/belofte-sub001/internal/infrastructure/excel"
	"github.com/belofte2025/belofte-sub001/internal/domain"
)

// buildWorkbook arma un .xlsx en memoria: por hoja, fila de encabezado y
// filas de datos.
func buildWorkbook(t *testing.T, sheets map[string][][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName(f.GetSheetName(0), name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range rows {
			for col, v := range row {
				cell, err := excelize.CoordinatesToCellName(col+1, r+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(name, cell, v))
			}
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseCustomerWorkbook(t *testing.T) {
	data := buildWorkbook(t, map[string][][]interface{}{
		excel.SheetCustomers: {
			{"customerName", "phone"},
			{" John Doe ", "111"},
			{"Jane Roe", "222"},
		},
		excel.SheetBalances: {
			{"customerName", "balanceType", "amount", "notes"},
			{"John Doe", "debit", 1500, ""},
			{"Jane Roe", "credit", "750.25", "Prepaid"},
		},
	})

	wb, err := excel.NewParser().ParseCustomerWorkbook(data)
	require.NoError(t, err)

	require.Len(t, wb.Customers, 2)
	assert.Equal(t, "John Doe", wb.Customers[0].CustomerName, "las celdas llegan recortadas")
	assert.Equal(t, 2, wb.Customers[0].Line, "número de fila 1-based del libro")
	assert.Equal(t, 3, wb.Customers[1].Line)

	require.Len(t, wb.Balances, 2)
	assert.Equal(t, "debit", wb.Balances[0].BalanceType)
	assert.Equal(t, "1500", wb.Balances[0].Amount, "el parser entrega strings crudos, no números")
	assert.Equal(t, "Prepaid", wb.Balances[1].Notes)
}

func TestParseCustomerWorkbook_EncabezadosFlexibles(t *testing.T) {
	// Orden distinto, mayúsculas distintas, columna extra y sin notes.
	data := buildWorkbook(t, map[string][][]interface{}{
		excel.SheetCustomers: {
			{"Phone", "ignored", "CUSTOMERNAME"},
			{"111", "x", "John Doe"},
		},
		excel.SheetBalances: {
			{"Amount", "BalanceType", "customername"},
			{"100", "debit", "John Doe"},
		},
	})

	wb, err := excel.NewParser().ParseCustomerWorkbook(data)
	require.NoError(t, err)
	require.Len(t, wb.Customers, 1)
	assert.Equal(t, "John Doe", wb.Customers[0].CustomerName)
	assert.Equal(t, "111", wb.Customers[0].Phone)
	require.Len(t, wb.Balances, 1)
	assert.Empty(t, wb.Balances[0].Notes, "notes es opcional")
}

func TestParseCustomerWorkbook_FilasVaciasSeOmiten(t *testing.T) {
	data := buildWorkbook(t, map[string][][]interface{}{
		excel.SheetCustomers: {
			{"customerName", "phone"},
			{"", ""},
			{"John Doe", "111"},
		},
		excel.SheetBalances: {
			{"customerName", "balanceType", "amount"},
		},
	})

	wb, err := excel.NewParser().ParseCustomerWorkbook(data)
	require.NoError(t, err)
	require.Len(t, wb.Customers, 1)
	assert.Equal(t, 3, wb.Customers[0].Line, "la fila vacía no renumera las siguientes")
}

func TestParseCustomerWorkbook_HojaFaltante(t *testing.T) {
	data := buildWorkbook(t, map[string][][]interface{}{
		excel.SheetCustomers: {{"customerName", "phone"}},
	})

	_, err := excel.NewParser().ParseCustomerWorkbook(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedWorkbook)
	assert.Contains(t, err.Error(), excel.SheetBalances)
}

func TestParseCustomerWorkbook_ColumnaFaltante(t *testing.T) {
	data := buildWorkbook(t, map[string][][]interface{}{
		excel.SheetCustomers: {{"customerName", "phone"}},
		excel.SheetBalances:  {{"customerName", "amount"}}, // sin balanceType
	})

	_, err := excel.NewParser().ParseCustomerWorkbook(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedWorkbook)
	assert.Contains(t, err.Error(), "balancetype")
}

func TestParseCustomerWorkbook_ArchivoCorrupto(t *testing.T) {
	_, err := excel.NewParser().ParseCustomerWorkbook([]byte("this is not a workbook"))
	assert.ErrorIs(t, err, domain.ErrMalformedWorkbook)
}

func TestParseSupplierWorkbook(t *testing.T) {
	data := buildWorkbook(t, map[string][][]interface{}{
		excel.SheetSuppliers: {
			{"supplierName", "contact", "country"},
			{"Global Imports", "sales@gi.example", "China"},
		},
		excel.SheetItems: {
			{"supplierName", "itemName", "price"},
			{"Global Imports", "Tiles", 42.5},
		},
	})

	wb, err := excel.NewParser().ParseSupplierWorkbook(data)
	require.NoError(t, err)
	require.Len(t, wb.Suppliers, 1)
	assert.Equal(t, "Global Imports", wb.Suppliers[0].SupplierName)
	require.Len(t, wb.Items, 1)
	assert.Equal(t, "42.5", wb.Items[0].Price)
}

func TestTemplates_SonParseables(t *testing.T) {
	// La plantilla descargable debe pasar por el propio parser sin errores:
	// mismas hojas, mismos encabezados.
	customer, err := excel.BuildCustomerTemplate()
	require.NoError(t, err)
	assert.Contains(t, customer.FileName, "Customer_Import_Template_")
	assert.True(t, bytes.HasPrefix(customer.Data, []byte("PK")), "xlsx es un zip")

	wb, err := excel.NewParser().ParseCustomerWorkbook(customer.Data)
	require.NoError(t, err)
	assert.NotEmpty(t, wb.Customers, "la plantilla trae filas de ejemplo")
	assert.NotEmpty(t, wb.Balances)

	supplier, err := excel.BuildSupplierTemplate()
	require.NoError(t, err)
	assert.Contains(t, supplier.FileName, "Supplier_Import_Template_")

	swb, err := excel.NewParser().ParseSupplierWorkbook(supplier.Data)
	require.NoError(t, err)
	assert.NotEmpty(t, swb.Suppliers)
	assert.NotEmpty(t, swb.Items)
}
