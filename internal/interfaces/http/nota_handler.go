package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/notas-venta-api/internal/application/dto"
	"github.com/tu-usuario/notas-venta-api/internal/application/notas"
)

// NotaHandler maneja el ciclo de vida de las notas de venta: creación,
// detalle, alta de partidas y descarga del PDF.
type NotaHandler struct {
	notaUC     *notas.NotaUseCase
	agregarUC  *notas.AgregarItemsUseCase
	descargaUC *notas.DescargaUseCase
}

// NewNotaHandler construye el handler.
func NewNotaHandler(
	notaUC *notas.NotaUseCase,
	agregarUC *notas.AgregarItemsUseCase,
	descargaUC *notas.DescargaUseCase,
) *NotaHandler {
	return &NotaHandler{notaUC: notaUC, agregarUC: agregarUC, descargaUC: descargaUC}
}

// Create crea una nota nueva con total en cero.
func (h *NotaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearNotaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.notaUC.Crear(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID devuelve el detalle completo de la nota: cabecera, partidas y
// cliente.
func (h *NotaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.notaUC.Detalle(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AgregarItems agrega partidas a la nota y dispara la cadena de cumplimiento:
// recálculo del total, regeneración del PDF y aviso por el canal de
// notificaciones.
func (h *NotaHandler) AgregarItems(c *fiber.Ctx) error {
	var in dto.AgregarItemsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.agregarUC.Agregar(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DescargarPDF entrega el PDF vigente de la nota y la marca como descargada.
func (h *NotaHandler) DescargarPDF(c *fiber.Ctx) error {
	data, nombre, err := h.descargaUC.Descargar(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nombre+`"`)
	return c.Send(data)
}
