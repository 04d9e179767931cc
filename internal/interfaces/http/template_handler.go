package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/belofte2025/belofte-sub001/internal/application/dto"
	"github.com/belofte2025/belofte-sub001/internal/infrastructure/excel"
)

// TemplateHandler sirve plantillas de importación descargables.
type TemplateHandler struct{}

// NewTemplateHandler construye el handler.
func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// CustomerTemplate GET /api/import/templates/customers
func (h *TemplateHandler) CustomerTemplate(c *fiber.Ctx) error {
	return h.serve(c, excel.BuildCustomerTemplate)
}

// SupplierTemplate GET /api/import/templates/suppliers
func (h *TemplateHandler) SupplierTemplate(c *fiber.Ctx) error {
	return h.serve(c, excel.BuildSupplierTemplate)
}

func (h *TemplateHandler) serve(c *fiber.Ctx, build func() (*excel.Template, error)) error {
	tpl, err := build()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "could not build template"})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, tpl.FileName))
	return c.Send(tpl.Data)
}
