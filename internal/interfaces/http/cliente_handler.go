package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/notas-venta-api/internal/application/catalogo"
	"github.com/tu-usuario/notas-venta-api/internal/application/dto"
)

// ClienteHandler maneja las peticiones HTTP para clientes del catálogo.
type ClienteHandler struct {
	uc *catalogo.ClienteUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *catalogo.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// Create crea un cliente.
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un cliente por ID.
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista clientes con paginación.
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.Listar(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un cliente.
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un cliente.
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
