package importer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/belofte2025/belofte-sub001/internal/application/dto"
	"github.com/belofte2025/belofte-sub001/internal/domain/entity"
	"github.com/belofte2025/belofte-sub001/internal/domain/repository"
)

// CustomerImportUseCase importa el libro de clientes: hoja Customers y hoja
// Opening Balances, dentro de una sola transacción por llamada.
type CustomerImportUseCase struct {
	parser   WorkbookParser
	txRunner TxRunner
}

// NewCustomerImportUseCase construye el caso de uso.
func NewCustomerImportUseCase(parser WorkbookParser, txRunner TxRunner) *CustomerImportUseCase {
	return &CustomerImportUseCase{parser: parser, txRunner: txRunner}
}

// Import procesa el libro completo para el tenant. Los errores de fila se
// acumulan por categoría y no detienen las filas restantes; un error del
// parser o de la transacción se devuelve como error y no deja efectos.
func (uc *CustomerImportUseCase) Import(ctx context.Context, companyID string, file []byte) (*dto.ImportResult, error) {
	wb, err := uc.parser.ParseCustomerWorkbook(file)
	if err != nil {
		return nil, err
	}

	result := dto.NewImportResult(dto.CategoryCustomers, dto.CategoryBalances)
	err = uc.txRunner.Run(ctx, func(
		customers repository.CustomerRepository,
		sales repository.SaleRepository,
		payments repository.PaymentRepository,
		_ repository.SupplierRepository,
	) error {
		if err := importCustomerRows(companyID, wb.Customers, customers, result); err != nil {
			return err
		}
		return importBalanceRows(companyID, wb.Balances, customers, sales, payments, result)
	})
	if err != nil {
		return nil, err
	}

	result.Finalize()
	return result, nil
}

func importCustomerRows(companyID string, rows []CustomerRow, customers repository.CustomerRepository, result *dto.ImportResult) error {
	for _, row := range rows {
		intent, rowErr := ClassifyCustomerRow(row)
		if rowErr != "" {
			result.AddError(dto.CategoryCustomers, rowErr)
			continue
		}
		existing, err := customers.GetByCompanyAndName(companyID, intent.CustomerName)
		if err != nil {
			return err
		}
		if existing != nil {
			// Ya existe en el tenant: se omite en silencio, igual que el
			// sistema original (ni creado ni error).
			continue
		}
		now := time.Now()
		if err := customers.Create(&entity.Customer{
			ID:           uuid.New().String(),
			CompanyID:    companyID,
			CustomerName: intent.CustomerName,
			Phone:        intent.Phone,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return err
		}
		result.AddCreated(dto.CategoryCustomers)
	}
	return nil
}

func importBalanceRows(
	companyID string,
	rows []OpeningBalanceRow,
	customers repository.CustomerRepository,
	sales repository.SaleRepository,
	payments repository.PaymentRepository,
	result *dto.ImportResult,
) error {
	for _, row := range rows {
		intent, rowErr := ClassifyBalanceRow(row)
		if rowErr != "" {
			result.AddError(dto.CategoryBalances, rowErr)
			continue
		}
		customer, err := customers.GetByCompanyAndName(companyID, intent.CustomerName)
		if err != nil {
			return err
		}
		if customer == nil {
			// Referencia sin resolver: error de fila, nunca se crea el
			// cliente implícitamente.
			result.AddError(dto.CategoryBalances, "Customer not found: "+intent.CustomerName)
			continue
		}

		switch intent.Op {
		case BalanceDebit:
			exists, err := sales.ExistsOpeningBalance(customer.ID)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			saleID := uuid.New().String()
			if err := sales.Create(&entity.Sale{
				ID:          saleID,
				CompanyID:   companyID,
				CustomerID:  customer.ID,
				SaleType:    "Opening Balance",
				SourceType:  entity.SaleSourceOpeningBalance,
				SourceID:    "import",
				TotalAmount: intent.Amount,
				Items: []entity.SaleItem{{
					ID:        uuid.New().String(),
					SaleID:    saleID,
					ItemName:  "Opening Balance - Customer Owes",
					Quantity:  1,
					UnitPrice: intent.Amount,
				}},
			}); err != nil {
				return err
			}
		case BalanceCredit:
			exists, err := payments.ExistsOpeningBalance(customer.ID)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
			if err := payments.Create(&entity.CustomerPayment{
				ID:          uuid.New().String(),
				CompanyID:   companyID,
				CustomerID:  customer.ID,
				Amount:      intent.Amount,
				Note:        intent.Notes,
				PaymentType: entity.PaymentTypeOpeningBalance,
			}); err != nil {
				return err
			}
		}
		result.AddCreated(dto.CategoryBalances)
	}
	return nil
}
