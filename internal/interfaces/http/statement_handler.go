package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/belofte2025/belofte-sub001/internal/application/dto"
	"github.com/belofte2025/belofte-sub001/internal/application/statement"
	"github.com/belofte2025/belofte-sub001/internal/domain"
)

// StatementHandler expone el estado de cuenta de un cliente (protegido).
type StatementHandler struct {
	uc *statement.UseCase
}

// NewStatementHandler construye el handler.
func NewStatementHandler(uc *statement.UseCase) *StatementHandler {
	return &StatementHandler{uc: uc}
}

// GetStatement godoc
// @Summary      Customer account statement
// @Description  Sales and payments merged into one chronological timeline with a running balance.
// @Tags         customers
// @Produce      json
// @Param        id   path      string  true  "customer ID"
// @Success      200  {array}   dto.StatementEntry
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/statement [get]
func (h *StatementHandler) GetStatement(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	entries, err := h.uc.GetStatement(companyID, c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "customer not found"})
		}
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "customer belongs to another company"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(entries)
}
