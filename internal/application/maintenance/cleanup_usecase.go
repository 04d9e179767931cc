package maintenance

import (
	"context"
	"fmt"

	"github.com/belofte2025/belofte-sub001/internal/domain"
	"github.com/belofte2025/belofte-sub001/internal/domain/repository"
)

// CleanupTxRunner ejecuta la limpieza masiva dentro de una transacción,
// pasando el repositorio de borrado atado a esa tx. El rollback ante
// cualquier falla lo garantiza la capa de persistencia.
type CleanupTxRunner interface {
	RunCleanup(ctx context.Context, fn func(repo repository.CleanupRepository) error) error
}

// CleanupReport conteos de filas eliminadas por tabla, en el orden de borrado.
type CleanupReport struct {
	Cancelled      bool
	AuditLogs      int64
	SaleItems      int64
	Sales          int64
	Payments       int64
	Customers      int64
	ContainerItems int64
	Containers     int64
	SupplierItems  int64
	Suppliers      int64
	Total          int64
}

// CleanupUseCase elimina todos los datos de negocio de un tenant (o de
// todos) en orden estricto de dependencia referencial, dentro de una sola
// transacción. User y Company nunca se tocan.
type CleanupUseCase struct {
	txRunner  CleanupTxRunner
	companies repository.CompanyRepository
	stats     repository.StatsRepository
}

// NewCleanupUseCase construye el caso de uso.
func NewCleanupUseCase(txRunner CleanupTxRunner, companies repository.CompanyRepository, stats repository.StatsRepository) *CleanupUseCase {
	return &CleanupUseCase{txRunner: txRunner, companies: companies, stats: stats}
}

// Status devuelve los conteos por tabla, del tenant si companyID no es vacío.
func (uc *CleanupUseCase) Status(companyID string) (*repository.Counts, error) {
	return uc.stats.CountAll(companyID)
}

// Run ejecuta la limpieza. companyID vacío limpia todas las empresas. La
// compuerta se consulta antes de tocar nada: un rechazo devuelve un reporte
// con Cancelled=true y cero efectos. El orden de borrado es fijo: hijos de
// cada relación antes que el padre referenciado.
func (uc *CleanupUseCase) Run(ctx context.Context, companyID string, gate ConfirmationGate) (*CleanupReport, error) {
	scope := "ALL companies"
	if companyID != "" {
		company, err := uc.companies.GetByID(companyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, domain.ErrNotFound
		}
		scope = fmt.Sprintf("company %q (%s)", company.CompanyName, company.ID)
	}

	counts, err := uc.stats.CountAll(companyID)
	if err != nil {
		return nil, err
	}
	summary := fmt.Sprintf(
		"About to permanently delete %d business records for %s (users and companies are preserved)",
		counts.BusinessTotal(), scope,
	)
	ok, err := gate.Confirm(summary)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &CleanupReport{Cancelled: true}, nil
	}

	report := &CleanupReport{}
	err = uc.txRunner.RunCleanup(ctx, func(repo repository.CleanupRepository) error {
		steps := []struct {
			del  func(string) (int64, error)
			dest *int64
		}{
			{repo.DeleteAuditLogs, &report.AuditLogs},
			{repo.DeleteSaleItems, &report.SaleItems},
			{repo.DeleteSales, &report.Sales},
			{repo.DeletePayments, &report.Payments},
			{repo.DeleteCustomers, &report.Customers},
			{repo.DeleteContainerItems, &report.ContainerItems},
			{repo.DeleteContainers, &report.Containers},
			{repo.DeleteSupplierItems, &report.SupplierItems},
			{repo.DeleteSuppliers, &report.Suppliers},
		}
		for _, step := range steps {
			n, err := step.del(companyID)
			if err != nil {
				return err
			}
			*step.dest = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	report.Total = report.AuditLogs + report.SaleItems + report.Sales +
		report.Payments + report.Customers + report.ContainerItems +
		report.Containers + report.SupplierItems + report.Suppliers
	return report, nil
}
