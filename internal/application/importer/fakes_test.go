package importer_test

import (
	"context"
	"strings"

	"github.com/belofte2025/belofte-sub001/internal/application/importer"
	"github.com/belofte2025/belofte-sub001/internal/domain/entity"
	"github.com/belofte2025/belofte-sub001/internal/domain/repository"
)

// Dobles en memoria de los puertos de persistencia, suficientes para
// ejercitar la semántica de importación sin base de datos.

type fakeCustomerRepo struct {
	customers []*entity.Customer
	failOn    string // nombre de cliente cuyo Create simula una falla de infraestructura
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error {
	if f.failOn != "" && c.CustomerName == f.failOn {
		return errInfra
	}
	f.customers = append(f.customers, c)
	return nil
}

func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) GetByCompanyAndName(companyID, name string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.CompanyID == companyID && strings.EqualFold(c.CustomerName, name) {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error) {
	return f.customers, nil
}

func (f *fakeCustomerRepo) Update(*entity.Customer) error { return nil }
func (f *fakeCustomerRepo) Delete(string) error           { return nil }

type fakeSaleRepo struct {
	sales   []*entity.Sale
	nextSeq int64
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error {
	f.nextSeq++
	s.Seq = f.nextSeq
	f.sales = append(f.sales, s)
	return nil
}

func (f *fakeSaleRepo) ListByCustomer(companyID, customerID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range f.sales {
		if s.CompanyID == companyID && s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSaleRepo) ExistsOpeningBalance(customerID string) (bool, error) {
	for _, s := range f.sales {
		if s.CustomerID == customerID && s.SourceType == entity.SaleSourceOpeningBalance {
			return true, nil
		}
	}
	return false, nil
}

type fakePaymentRepo struct {
	payments []*entity.CustomerPayment
	nextSeq  int64
}

func (f *fakePaymentRepo) Create(p *entity.CustomerPayment) error {
	f.nextSeq++
	p.Seq = f.nextSeq
	f.payments = append(f.payments, p)
	return nil
}

func (f *fakePaymentRepo) GetByID(id string) (*entity.CustomerPayment, error) {
	for _, p := range f.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) ListByCustomer(companyID, customerID string) ([]*entity.CustomerPayment, error) {
	var out []*entity.CustomerPayment
	for _, p := range f.payments {
		if p.CompanyID == companyID && p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) ListByCustomerDesc(companyID, customerID string) ([]*entity.CustomerPayment, error) {
	asc, _ := f.ListByCustomer(companyID, customerID)
	out := make([]*entity.CustomerPayment, 0, len(asc))
	for i := len(asc) - 1; i >= 0; i-- {
		out = append(out, asc[i])
	}
	return out, nil
}

func (f *fakePaymentRepo) ExistsOpeningBalance(customerID string) (bool, error) {
	for _, p := range f.payments {
		if p.CustomerID == customerID && p.PaymentType == entity.PaymentTypeOpeningBalance {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePaymentRepo) Delete(id string) error { return nil }

type fakeSupplierRepo struct {
	suppliers []*entity.Supplier
	items     []*entity.SupplierItem
}

func (f *fakeSupplierRepo) Create(s *entity.Supplier) error {
	f.suppliers = append(f.suppliers, s)
	return nil
}

func (f *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	for _, s := range f.suppliers {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSupplierRepo) GetByCompanyAndName(companyID, name string) (*entity.Supplier, error) {
	for _, s := range f.suppliers {
		if s.CompanyID == companyID && strings.EqualFold(s.SupplierName, name) {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSupplierRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Supplier, error) {
	return f.suppliers, nil
}

func (f *fakeSupplierRepo) CreateItem(it *entity.SupplierItem) error {
	f.items = append(f.items, it)
	return nil
}

func (f *fakeSupplierRepo) GetItemByName(supplierID, itemName string) (*entity.SupplierItem, error) {
	for _, it := range f.items {
		if it.SupplierID == supplierID && it.ItemName == itemName {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeSupplierRepo) ListItems(supplierID string) ([]*entity.SupplierItem, error) {
	var out []*entity.SupplierItem
	for _, it := range f.items {
		if it.SupplierID == supplierID {
			out = append(out, it)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta fn con los repos en memoria. Registra si el callback
// devolvió error, que en producción significaría rollback de la tx.
type fakeTxRunner struct {
	customers  *fakeCustomerRepo
	sales      *fakeSaleRepo
	payments   *fakePaymentRepo
	suppliers  *fakeSupplierRepo
	rolledBack bool
}

func newFakeTxRunner() *fakeTxRunner {
	return &fakeTxRunner{
		customers: &fakeCustomerRepo{},
		sales:     &fakeSaleRepo{},
		payments:  &fakePaymentRepo{},
		suppliers: &fakeSupplierRepo{},
	}
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	customers repository.CustomerRepository,
	sales repository.SaleRepository,
	payments repository.PaymentRepository,
	suppliers repository.SupplierRepository,
) error) error {
	if err := fn(f.customers, f.sales, f.payments, f.suppliers); err != nil {
		f.rolledBack = true
		return err
	}
	return nil
}

// fakeParser devuelve libros preparados por el test, o un error fijo.
type fakeParser struct {
	customerWB *importer.CustomerWorkbook
	supplierWB *importer.SupplierWorkbook
	err        error
}

func (f *fakeParser) ParseCustomerWorkbook([]byte) (*importer.CustomerWorkbook, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.customerWB, nil
}

func (f *fakeParser) ParseSupplierWorkbook([]byte) (*importer.SupplierWorkbook, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.supplierWB, nil
}
