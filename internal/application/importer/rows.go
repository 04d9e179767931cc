package importer

// Filas tipadas producidas por el parser de libros de importación, una
// variante por hoja. Llevan los valores crudos (strings recortados) y el
// número de fila 1-based del libro; la validación y conversión numérica es
// responsabilidad del clasificador, no del parser. Efímeras: nunca se
// persisten.

// CustomerRow fila de la hoja "Customers".
type CustomerRow struct {
	Line         int
	CustomerName string
	Phone        string
}

// OpeningBalanceRow fila de la hoja "Opening Balances". BalanceType decide
// en qué clase de transacción derivada se materializa la fila.
type OpeningBalanceRow struct {
	Line         int
	CustomerName string
	BalanceType  string
	Amount       string
	Notes        string
}

// SupplierRow fila de la hoja "Suppliers".
type SupplierRow struct {
	Line         int
	SupplierName string
	Contact      string
	Country      string
}

// ItemPriceRow fila de la hoja "Items & Prices".
type ItemPriceRow struct {
	Line         int
	SupplierName string
	ItemName     string
	Price        string
}

// CustomerWorkbook hojas ya extraídas de un libro de importación de clientes.
type CustomerWorkbook struct {
	Customers []CustomerRow
	Balances  []OpeningBalanceRow
}

// SupplierWorkbook hojas ya extraídas de un libro de importación de proveedores.
type SupplierWorkbook struct {
	Suppliers []SupplierRow
	Items     []ItemPriceRow
}
