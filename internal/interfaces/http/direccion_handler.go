package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/notas-venta-api/internal/application/catalogo"
	"github.com/tu-usuario/notas-venta-api/internal/application/dto"
)

// DireccionHandler maneja las peticiones HTTP para direcciones del catálogo.
type DireccionHandler struct {
	uc *catalogo.DireccionUseCase
}

// NewDireccionHandler construye el handler.
func NewDireccionHandler(uc *catalogo.DireccionUseCase) *DireccionHandler {
	return &DireccionHandler{uc: uc}
}

// Create crea una dirección.
func (h *DireccionHandler) Create(c *fiber.Ctx) error {
	var in dto.DireccionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene una dirección por ID.
func (h *DireccionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista direcciones con paginación.
func (h *DireccionHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.Listar(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza una dirección.
func (h *DireccionHandler) Update(c *fiber.Ctx) error {
	var in dto.DireccionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una dirección.
func (h *DireccionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
