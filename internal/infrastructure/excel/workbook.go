package excel

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/belofte2025/belofte-sub001/internal/application/importer"
	"github.com/belofte2025/belofte-sub001/internal/domain"
)

// Nombres de hoja de los libros de importación.
const (
	SheetCustomers = "Customers"
	SheetBalances  = "Opening Balances"
	SheetSuppliers = "Suppliers"
	SheetItems     = "Items & Prices"
)

// Parser implementa importer.WorkbookParser sobre excelize. Los encabezados
// se resuelven sin distinguir mayúsculas y sin importar el orden de columnas;
// las columnas extra se ignoran.
type Parser struct{}

// NewParser construye el parser de libros.
func NewParser() *Parser {
	return &Parser{}
}

// sheetHeader mapea nombre de columna normalizado -> índice de columna.
type sheetHeader map[string]int

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// readSheet abre la hoja, valida que existan las columnas requeridas y
// devuelve el encabezado resuelto más las filas de datos (desde la fila 2).
// Hoja ausente o columna requerida faltante: domain.ErrMalformedWorkbook.
func readSheet(f *excelize.File, sheet string, required []string) (sheetHeader, [][]string, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, nil, fmt.Errorf("%w: missing sheet %q", domain.ErrMalformedWorkbook, sheet)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading sheet %q: %v", domain.ErrMalformedWorkbook, sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: sheet %q has no header row", domain.ErrMalformedWorkbook, sheet)
	}
	header := sheetHeader{}
	for col, name := range rows[0] {
		key := normalizeHeader(name)
		if key == "" {
			continue
		}
		if _, dup := header[key]; !dup {
			header[key] = col
		}
	}
	for _, col := range required {
		if _, ok := header[col]; !ok {
			return nil, nil, fmt.Errorf("%w: sheet %q lacks column %q", domain.ErrMalformedWorkbook, sheet, col)
		}
	}
	return header, rows[1:], nil
}

// cell devuelve la celda recortada de la columna nombrada, "" si no existe.
func (h sheetHeader) cell(row []string, name string) string {
	col, ok := h[name]
	if !ok || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func openWorkbook(data []byte) (*excelize.File, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedWorkbook, err)
	}
	return f, nil
}

// ParseCustomerWorkbook extrae las hojas Customers y Opening Balances.
// Una pasada, orden original preservado; las filas completamente vacías se
// omiten. La columna notes es opcional.
func (p *Parser) ParseCustomerWorkbook(data []byte) (*importer.CustomerWorkbook, error) {
	f, err := openWorkbook(data)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	custHeader, custRows, err := readSheet(f, SheetCustomers, []string{"customername", "phone"})
	if err != nil {
		return nil, err
	}
	balHeader, balRows, err := readSheet(f, SheetBalances, []string{"customername", "balancetype", "amount"})
	if err != nil {
		return nil, err
	}

	wb := &importer.CustomerWorkbook{}
	for i, row := range custRows {
		r := importer.CustomerRow{
			Line:         i + 2,
			CustomerName: custHeader.cell(row, "customername"),
			Phone:        custHeader.cell(row, "phone"),
		}
		if r.CustomerName == "" && r.Phone == "" {
			continue
		}
		wb.Customers = append(wb.Customers, r)
	}
	for i, row := range balRows {
		r := importer.OpeningBalanceRow{
			Line:         i + 2,
			CustomerName: balHeader.cell(row, "customername"),
			BalanceType:  balHeader.cell(row, "balancetype"),
			Amount:       balHeader.cell(row, "amount"),
			Notes:        balHeader.cell(row, "notes"),
		}
		if r.CustomerName == "" && r.BalanceType == "" && r.Amount == "" {
			continue
		}
		wb.Balances = append(wb.Balances, r)
	}
	return wb, nil
}

// ParseSupplierWorkbook extrae las hojas Suppliers e Items & Prices.
func (p *Parser) ParseSupplierWorkbook(data []byte) (*importer.SupplierWorkbook, error) {
	f, err := openWorkbook(data)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	supHeader, supRows, err := readSheet(f, SheetSuppliers, []string{"suppliername", "contact", "country"})
	if err != nil {
		return nil, err
	}
	itemHeader, itemRows, err := readSheet(f, SheetItems, []string{"suppliername", "itemname", "price"})
	if err != nil {
		return nil, err
	}

	wb := &importer.SupplierWorkbook{}
	for i, row := range supRows {
		r := importer.SupplierRow{
			Line:         i + 2,
			SupplierName: supHeader.cell(row, "suppliername"),
			Contact:      supHeader.cell(row, "contact"),
			Country:      supHeader.cell(row, "country"),
		}
		if r.SupplierName == "" && r.Contact == "" && r.Country == "" {
			continue
		}
		wb.Suppliers = append(wb.Suppliers, r)
	}
	for i, row := range itemRows {
		r := importer.ItemPriceRow{
			Line:         i + 2,
			SupplierName: itemHeader.cell(row, "suppliername"),
			ItemName:     itemHeader.cell(row, "itemname"),
			Price:        itemHeader.cell(row, "price"),
		}
		if r.SupplierName == "" && r.ItemName == "" && r.Price == "" {
			continue
		}
		wb.Items = append(wb.Items, r)
	}
	return wb, nil
}
