package importer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Clasificación de filas: funciones puras sobre la fila, sin efectos. Los
// mensajes de error son los que viajan en el ImportResult al cliente, por
// eso van en inglés e incluyen siempre el campo que identifica la fila.

// BalanceOp clase de transacción derivada de una fila de saldo inicial.
type BalanceOp int

const (
	// BalanceDebit el cliente nos debe: se materializa como una venta.
	BalanceDebit BalanceOp = iota
	// BalanceCredit el cliente tiene saldo a favor: se materializa como un pago.
	BalanceCredit
)

// CustomerIntent intención resuelta de una fila de cliente.
type CustomerIntent struct {
	CustomerName string
	Phone        string
}

// BalanceIntent intención resuelta de una fila de saldo inicial. Exactamente
// una transacción derivada por fila aceptada: venta o pago, nunca ambas.
type BalanceIntent struct {
	Op           BalanceOp
	CustomerName string
	Amount       decimal.Decimal
	Notes        string
}

// SupplierIntent intención resuelta de una fila de proveedor.
type SupplierIntent struct {
	SupplierName string
	Contact      string
	Country      string
}

// ItemPriceIntent intención resuelta de una fila de artículo con precio.
type ItemPriceIntent struct {
	SupplierName string
	ItemName     string
	Price        decimal.Decimal
}

// defaultOpeningBalanceNote nota aplicada cuando la fila no trae una.
const defaultOpeningBalanceNote = "Opening balance from import"

// ClassifyCustomerRow valida una fila de cliente. Devuelve la intención o un
// mensaje de error de fila ("" si la fila es válida).
func ClassifyCustomerRow(row CustomerRow) (*CustomerIntent, string) {
	if row.CustomerName == "" || row.Phone == "" {
		return nil, fmt.Sprintf("Invalid data: customerName=%q phone=%q (row %d)", row.CustomerName, row.Phone, row.Line)
	}
	return &CustomerIntent{CustomerName: row.CustomerName, Phone: row.Phone}, ""
}

// ClassifyBalanceRow valida y clasifica una fila de saldo inicial según
// balanceType: debit → venta, credit → pago, otro valor → error de fila.
func ClassifyBalanceRow(row OpeningBalanceRow) (*BalanceIntent, string) {
	balanceType := strings.ToLower(row.BalanceType)
	amount, amountErr := decimal.NewFromString(row.Amount)
	if row.CustomerName == "" || balanceType == "" || amountErr != nil || !amount.IsPositive() {
		return nil, fmt.Sprintf("Invalid data: customerName=%q balanceType=%q amount=%q (row %d)",
			row.CustomerName, row.BalanceType, row.Amount, row.Line)
	}

	var op BalanceOp
	switch balanceType {
	case "debit":
		op = BalanceDebit
	case "credit":
		op = BalanceCredit
	default:
		return nil, fmt.Sprintf("Invalid balance type %q. Must be \"debit\" or \"credit\": customer %s (row %d)",
			row.BalanceType, row.CustomerName, row.Line)
	}

	notes := row.Notes
	if notes == "" {
		notes = defaultOpeningBalanceNote
	}
	return &BalanceIntent{Op: op, CustomerName: row.CustomerName, Amount: amount, Notes: notes}, ""
}

// ClassifySupplierRow valida una fila de proveedor.
func ClassifySupplierRow(row SupplierRow) (*SupplierIntent, string) {
	if row.SupplierName == "" || row.Contact == "" || row.Country == "" {
		return nil, fmt.Sprintf("Invalid data: supplierName=%q contact=%q country=%q (row %d)",
			row.SupplierName, row.Contact, row.Country, row.Line)
	}
	return &SupplierIntent{SupplierName: row.SupplierName, Contact: row.Contact, Country: row.Country}, ""
}

// ClassifyItemPriceRow valida una fila de artículo con precio.
func ClassifyItemPriceRow(row ItemPriceRow) (*ItemPriceIntent, string) {
	price, priceErr := decimal.NewFromString(row.Price)
	if row.SupplierName == "" || row.ItemName == "" || priceErr != nil || !price.IsPositive() {
		return nil, fmt.Sprintf("Invalid data: supplierName=%q itemName=%q price=%q (row %d)",
			row.SupplierName, row.ItemName, row.Price, row.Line)
	}
	return &ItemPriceIntent{SupplierName: row.SupplierName, ItemName: row.ItemName, Price: price}, ""
}
