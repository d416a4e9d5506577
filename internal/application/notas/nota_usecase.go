package notas

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/notas-venta-api/internal/application/dto"
	"github.com/tu-usuario/notas-venta-api/internal/domain"
	"github.com/tu-usuario/notas-venta-api/internal/domain/entity"
	"github.com/tu-usuario/notas-venta-api/internal/domain/repository"
	"github.com/tu-usuario/notas-venta-api/pkg/folio"
)

// NotaUseCase crea notas de venta y arma su detalle completo.
type NotaUseCase struct {
	validador   *ValidadorReferencias
	notaRepo    repository.NotaVentaRepository
	itemRepo    repository.NotaVentaItemRepository
	clienteRepo repository.ClienteRepository
}

// NewNotaUseCase construye el caso de uso.
func NewNotaUseCase(
	validador *ValidadorReferencias,
	notaRepo repository.NotaVentaRepository,
	itemRepo repository.NotaVentaItemRepository,
	clienteRepo repository.ClienteRepository,
) *NotaUseCase {
	return &NotaUseCase{
		validador:   validador,
		notaRepo:    notaRepo,
		itemRepo:    itemRepo,
		clienteRepo: clienteRepo,
	}
}

// Crear valida las tres referencias y, solo si todas pasan, persiste la nota
// con Total = 0, ID nuevo y folio público de 8 caracteres. La validación es
// una compuerta atómica: ante cualquier referencia inválida no se escribe
// nada.
func (uc *NotaUseCase) Crear(ctx context.Context, in dto.CrearNotaRequest) (*dto.NotaCreadaResponse, error) {
	if in.ClienteID == "" || in.DireccionFacturacionID == "" || in.DireccionEnvioID == "" {
		return nil, fmt.Errorf("%w: cliente_id, direccion_facturacion_id y direccion_envio_id son obligatorios", domain.ErrInvalidInput)
	}

	if _, err := uc.validador.Validar(in.ClienteID, in.DireccionFacturacionID, in.DireccionEnvioID); err != nil {
		return nil, err
	}

	now := time.Now()
	nota := &entity.NotaVenta{
		ID:                     uuid.New().String(),
		Folio:                  folio.Nuevo(),
		ClienteID:              in.ClienteID,
		DireccionFacturacionID: in.DireccionFacturacionID,
		DireccionEnvioID:       in.DireccionEnvioID,
		Total:                  decimal.Zero,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := uc.notaRepo.Create(nota); err != nil {
		return nil, fmt.Errorf("crear nota: %w", err)
	}

	return &dto.NotaCreadaResponse{ID: nota.ID, Folio: nota.Folio}, nil
}

// Detalle arma la respuesta completa de una nota: cabecera, todas sus
// partidas y el cliente.
func (uc *NotaUseCase) Detalle(ctx context.Context, notaID string) (*dto.NotaDetalleResponse, error) {
	nota, err := uc.notaRepo.GetByID(notaID)
	if err != nil {
		return nil, fmt.Errorf("obtener nota: %w", err)
	}
	if nota == nil {
		return nil, fmt.Errorf("%w: nota %s no existe", domain.ErrNotFound, notaID)
	}

	items, err := uc.itemRepo.ListByNotaID(notaID)
	if err != nil {
		return nil, fmt.Errorf("obtener partidas: %w", err)
	}

	cliente, err := uc.clienteRepo.GetByID(nota.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	if cliente == nil {
		return nil, fmt.Errorf("%w: cliente %s no existe", domain.ErrNotFound, nota.ClienteID)
	}

	resp := &dto.NotaDetalleResponse{
		Nota: dto.NotaResponse{
			ID:                     nota.ID,
			Folio:                  nota.Folio,
			ClienteID:              nota.ClienteID,
			DireccionFacturacionID: nota.DireccionFacturacionID,
			DireccionEnvioID:       nota.DireccionEnvioID,
			Total:                  nota.Total,
		},
		Items: make([]dto.ItemNotaResponse, 0, len(items)),
		Cliente: dto.ClienteResponse{
			ID:                cliente.ID,
			RazonSocial:       cliente.RazonSocial,
			NombreComercial:   cliente.NombreComercial,
			RFC:               cliente.RFC,
			CorreoElectronico: cliente.CorreoElectronico,
			Telefono:          cliente.Telefono,
		},
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.ItemNotaResponse{
			ID:             it.ID,
			ProductoID:     it.ProductoID,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Importe:        it.Importe,
		})
	}
	return resp, nil
}
