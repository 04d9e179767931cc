package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// Template libro de plantilla listo para descargar.
type Template struct {
	FileName string
	Data     []byte
}

type templateSheet struct {
	name         string
	headers      []string
	examples     [][]interface{}
	instructions []string
}

// BuildCustomerTemplate genera la plantilla de importación de clientes:
// hojas Customers y Opening Balances con filas de ejemplo, más una hoja
// Instructions.
func BuildCustomerTemplate() (*Template, error) {
	return buildTemplate("Customer_Import_Template", []templateSheet{
		{
			name:    SheetCustomers,
			headers: []string{"customerName", "phone"},
			examples: [][]interface{}{
				{"John Doe", "+233 24 000 0001"},
				{"Acme Trading Ltd", "+233 24 000 0002"},
			},
			instructions: []string{
				"Customers: one row per customer. customerName is required and must be unique within your company.",
				"Customers that already exist (same name, any letter case) are skipped without error.",
			},
		},
		{
			name:    SheetBalances,
			headers: []string{"customerName", "balanceType", "amount", "notes"},
			examples: [][]interface{}{
				{"John Doe", "debit", 1500, "Owes from last season"},
				{"Acme Trading Ltd", "credit", 750.25, "Prepaid deposit"},
			},
			instructions: []string{
				"Opening Balances: balanceType must be \"debit\" (customer owes you) or \"credit\" (customer prepaid).",
				"amount must be a positive number. The customer must exist in the Customers sheet or already in the system.",
				"Only one opening balance per customer is recorded; repeated rows are skipped.",
			},
		},
	})
}

// BuildSupplierTemplate genera la plantilla de importación de proveedores:
// hojas Suppliers e Items & Prices con filas de ejemplo, más Instructions.
func BuildSupplierTemplate() (*Template, error) {
	return buildTemplate("Supplier_Import_Template", []templateSheet{
		{
			name:    SheetSuppliers,
			headers: []string{"supplierName", "contact", "country"},
			examples: [][]interface{}{
				{"Global Imports Co", "sales@globalimports.example", "China"},
				{"Westside Textiles", "+233 30 000 0003", "Ghana"},
			},
			instructions: []string{
				"Suppliers: one row per supplier. supplierName is required and must be unique within your company.",
				"Suppliers that already exist (same name, any letter case) are skipped without error.",
			},
		},
		{
			name:    SheetItems,
			headers: []string{"supplierName", "itemName", "price"},
			examples: [][]interface{}{
				{"Global Imports Co", "Ceramic tiles 60x60", 42.5},
				{"Westside Textiles", "Cotton fabric roll", 18},
			},
			instructions: []string{
				"Items & Prices: the supplier must exist in the Suppliers sheet or already in the system.",
				"price must be a positive number. An item already registered for the supplier is skipped.",
			},
		},
	})
}

func buildTemplate(baseName string, sheets []templateSheet) (*Template, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.name); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return nil, err
			}
		}
		for col, h := range sheet.headers {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet.name, cell, h); err != nil {
				return nil, err
			}
		}
		for r, example := range sheet.examples {
			for col, v := range example {
				cell, err := excelize.CoordinatesToCellName(col+1, r+2)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(sheet.name, cell, v); err != nil {
					return nil, err
				}
			}
		}
		if err := autoWidth(f, sheet.name, sheet.headers, sheet.examples); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet("Instructions"); err != nil {
		return nil, err
	}
	line := 1
	for _, sheet := range sheets {
		for _, text := range sheet.instructions {
			cell := fmt.Sprintf("A%d", line)
			if err := f.SetCellValue("Instructions", cell, text); err != nil {
				return nil, err
			}
			line++
		}
		line++
	}
	if err := f.SetColWidth("Instructions", "A", "A", 110); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return &Template{
		FileName: fmt.Sprintf("%s_%s.xlsx", baseName, time.Now().Format("2006-01-02")),
		Data:     buf.Bytes(),
	}, nil
}

// autoWidth ajusta cada columna al contenido más largo, con un piso legible.
func autoWidth(f *excelize.File, sheet string, headers []string, examples [][]interface{}) error {
	for col := range headers {
		width := len(headers[col])
		for _, example := range examples {
			if col < len(example) {
				if n := len(fmt.Sprint(example[col])); n > width {
					width = n
				}
			}
		}
		if width < 12 {
			width = 12
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, float64(width)+2); err != nil {
			return err
		}
	}
	return nil
}
