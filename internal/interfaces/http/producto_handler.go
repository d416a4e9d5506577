package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/notas-venta-api/internal/application/catalogo"
	"github.com/tu-usuario/notas-venta-api/internal/application/dto"
)

// ProductoHandler maneja las peticiones HTTP para productos del catálogo.
type ProductoHandler struct {
	uc *catalogo.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *catalogo.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Create crea un producto.
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un producto por ID.
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista productos con paginación.
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	out, err := h.uc.Listar(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un producto.
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un producto.
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
