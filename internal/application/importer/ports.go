package importer

import (
	"context"

	"github.com/belofte2025/belofte-sub001/internal/domain/repository"
)

// WorkbookParser extrae hojas tipadas de un libro subido. Una pasada por
// llamada, orden original preservado. Hoja requerida ausente o encabezado
// incompleto produce domain.ErrMalformedWorkbook envuelto con el detalle.
type WorkbookParser interface {
	ParseCustomerWorkbook(data []byte) (*CustomerWorkbook, error)
	ParseSupplierWorkbook(data []byte) (*SupplierWorkbook, error)
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Cada llamada de importación es una unidad
// atómica: los errores de fila solo omiten filas, pero un error de
// infraestructura revierte la llamada completa.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		customers repository.CustomerRepository,
		sales repository.SaleRepository,
		payments repository.PaymentRepository,
		suppliers repository.SupplierRepository,
	) error) error
}
