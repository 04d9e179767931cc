package importer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/belofte2025/belofte-sub001/internal/application/dto"
	"github.com/belofte2025/belofte-sub001/internal/domain/entity"
	"github.com/belofte2025/belofte-sub001/internal/domain/repository"
)

// SupplierImportUseCase importa el libro de proveedores: hoja Suppliers y
// hoja Items & Prices, dentro de una sola transacción por llamada.
type SupplierImportUseCase struct {
	parser   WorkbookParser
	txRunner TxRunner
}

// NewSupplierImportUseCase construye el caso de uso.
func NewSupplierImportUseCase(parser WorkbookParser, txRunner TxRunner) *SupplierImportUseCase {
	return &SupplierImportUseCase{parser: parser, txRunner: txRunner}
}

// Import procesa el libro completo para el tenant, con la misma semántica de
// éxito parcial que la importación de clientes.
func (uc *SupplierImportUseCase) Import(ctx context.Context, companyID string, file []byte) (*dto.ImportResult, error) {
	wb, err := uc.parser.ParseSupplierWorkbook(file)
	if err != nil {
		return nil, err
	}

	result := dto.NewImportResult(dto.CategorySuppliers, dto.CategoryItems)
	err = uc.txRunner.Run(ctx, func(
		_ repository.CustomerRepository,
		_ repository.SaleRepository,
		_ repository.PaymentRepository,
		suppliers repository.SupplierRepository,
	) error {
		if err := importSupplierRows(companyID, wb.Suppliers, suppliers, result); err != nil {
			return err
		}
		return importItemRows(companyID, wb.Items, suppliers, result)
	})
	if err != nil {
		return nil, err
	}

	result.Finalize()
	return result, nil
}

func importSupplierRows(companyID string, rows []SupplierRow, suppliers repository.SupplierRepository, result *dto.ImportResult) error {
	for _, row := range rows {
		intent, rowErr := ClassifySupplierRow(row)
		if rowErr != "" {
			result.AddError(dto.CategorySuppliers, rowErr)
			continue
		}
		existing, err := suppliers.GetByCompanyAndName(companyID, intent.SupplierName)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		now := time.Now()
		if err := suppliers.Create(&entity.Supplier{
			ID:           uuid.New().String(),
			CompanyID:    companyID,
			SupplierName: intent.SupplierName,
			Contact:      intent.Contact,
			Country:      intent.Country,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return err
		}
		result.AddCreated(dto.CategorySuppliers)
	}
	return nil
}

func importItemRows(companyID string, rows []ItemPriceRow, suppliers repository.SupplierRepository, result *dto.ImportResult) error {
	for _, row := range rows {
		intent, rowErr := ClassifyItemPriceRow(row)
		if rowErr != "" {
			result.AddError(dto.CategoryItems, rowErr)
			continue
		}
		supplier, err := suppliers.GetByCompanyAndName(companyID, intent.SupplierName)
		if err != nil {
			return err
		}
		if supplier == nil {
			result.AddError(dto.CategoryItems, "Supplier not found: "+intent.SupplierName)
			continue
		}
		existing, err := suppliers.GetItemByName(supplier.ID, intent.ItemName)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := suppliers.CreateItem(&entity.SupplierItem{
			ID:         uuid.New().String(),
			SupplierID: supplier.ID,
			ItemName:   intent.ItemName,
			Price:      intent.Price,
			CreatedAt:  time.Now(),
		}); err != nil {
			return err
		}
		result.AddCreated(dto.CategoryItems)
	}
	return nil
}
