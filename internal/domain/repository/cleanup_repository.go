package repository

// CleanupRepository define el puerto de borrado masivo por tabla. Cada método
// devuelve cuántas filas eliminó. companyID vacío significa "todas las
// empresas". El orden de invocación lo impone el caso de uso; este puerto
// solo garantiza el alcance por tenant de cada paso.
type CleanupRepository interface {
	DeleteAuditLogs(companyID string) (int64, error)
	DeleteSaleItems(companyID string) (int64, error)
	DeleteSales(companyID string) (int64, error)
	DeletePayments(companyID string) (int64, error)
	DeleteCustomers(companyID string) (int64, error)
	DeleteContainerItems(companyID string) (int64, error)
	DeleteContainers(companyID string) (int64, error)
	DeleteSupplierItems(companyID string) (int64, error)
	DeleteSuppliers(companyID string) (int64, error)
}

// Counts agrupa los conteos por tabla para el reporte de estado.
// Companies y Users son datos de sistema (preservados por la limpieza).
type Counts struct {
	Companies      int64
	Users          int64
	Customers      int64
	Payments       int64
	Suppliers      int64
	SupplierItems  int64
	Containers     int64
	ContainerItems int64
	Sales          int64
	SaleItems      int64
	AuditLogs      int64
}

// BusinessTotal suma los registros de negocio (lo que la limpieza eliminaría).
func (c Counts) BusinessTotal() int64 {
	return c.Customers + c.Payments + c.Suppliers + c.SupplierItems +
		c.Containers + c.ContainerItems + c.Sales + c.SaleItems + c.AuditLogs
}

// StatsRepository define el puerto de solo lectura para el reporte de estado.
type StatsRepository interface {
	// CountAll cuenta filas por tabla; companyID vacío cuenta todas las empresas.
	CountAll(companyID string) (*Counts, error)
}
