package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/belofte2025/belofte-sub001/internal/application/dto"
	"github.com/belofte2025/belofte-sub001/internal/application/importer"
	"github.com/belofte2025/belofte-sub001/internal/domain"
	"github.com/belofte2025/belofte-sub001/pkg/logger"
)

// ImportHandler recibe libros de importación por multipart (protegido).
type ImportHandler struct {
	customers *importer.CustomerImportUseCase
	suppliers *importer.SupplierImportUseCase
	log       *logger.Logger
}

// NewImportHandler construye el handler.
func NewImportHandler(customers *importer.CustomerImportUseCase, suppliers *importer.SupplierImportUseCase, log *logger.Logger) *ImportHandler {
	return &ImportHandler{customers: customers, suppliers: suppliers, log: log}
}

// ImportCustomers POST /api/import/customers (multipart, campo "file")
func (h *ImportHandler) ImportCustomers(c *fiber.Ctx) error {
	return h.handle(c, "customers", func(data []byte, companyID string) (*dto.ImportResult, error) {
		return h.customers.Import(c.Context(), companyID, data)
	})
}

// ImportSuppliers POST /api/import/suppliers (multipart, campo "file")
func (h *ImportHandler) ImportSuppliers(c *fiber.Ctx) error {
	return h.handle(c, "suppliers", func(data []byte, companyID string) (*dto.ImportResult, error) {
		return h.suppliers.Import(c.Context(), companyID, data)
	})
}

func (h *ImportHandler) handle(c *fiber.Ctx, kind string, run func(data []byte, companyID string) (*dto.ImportResult, error)) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailedImportResult("No file uploaded"))
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailedImportResult("Could not read uploaded file"))
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.FailedImportResult("Could not read uploaded file"))
	}

	result, err := run(data, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedWorkbook) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.FailedImportResult("Invalid or malformed workbook"))
		}
		// La causa queda en el log, nunca en la respuesta.
		h.log.Error().Err(err).Str("kind", kind).Str("company_id", companyID).Msg("import failed")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.FailedImportResult("Import failed due to unexpected error"))
	}
	status := fiber.StatusOK
	if !result.Success {
		status = fiber.StatusMultiStatus
	}
	return c.Status(status).JSON(result)
}
