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
	"github.com/tu-usuario/notas-venta-api/pkg/logger"
)

// AgregarItemsUseCase ejecuta la petición más elaborada del sistema: alta de
// partidas en el libro de la nota y, en la misma petición lógica, la
// regeneración del documento, su guardado versionado y la notificación.
//
// Los pasos posteriores a la escritura del libro NO son transaccionales con
// ella: si generar, guardar o notificar falla, las partidas y el total ya
// quedaron comprometidos y no se revierten (falla parcial visible).
type AgregarItemsUseCase struct {
	notaRepo     repository.NotaVentaRepository
	itemRepo     repository.NotaVentaItemRepository
	clienteRepo  repository.ClienteRepository
	productoRepo repository.ProductoRepository
	generador    GeneradorNotaPDF
	almacen      *AlmacenDocumentos
	notificador  Notificador
	baseURL      string
	log          *logger.Logger
}

// NewAgregarItemsUseCase construye el caso de uso.
func NewAgregarItemsUseCase(
	notaRepo repository.NotaVentaRepository,
	itemRepo repository.NotaVentaItemRepository,
	clienteRepo repository.ClienteRepository,
	productoRepo repository.ProductoRepository,
	generador GeneradorNotaPDF,
	almacen *AlmacenDocumentos,
	notificador Notificador,
	baseURL string,
	log *logger.Logger,
) *AgregarItemsUseCase {
	return &AgregarItemsUseCase{
		notaRepo:     notaRepo,
		itemRepo:     itemRepo,
		clienteRepo:  clienteRepo,
		productoRepo: productoRepo,
		generador:    generador,
		almacen:      almacen,
		notificador:  notificador,
		baseURL:      baseURL,
		log:          log,
	}
}

// Agregar suma partidas al libro de la nota y dispara la regeneración del
// documento. El libro es aditivo: llamar dos veces con partidas iguales
// agrega renglones duplicados a propósito, nunca reemplaza. El total se
// recalcula sobre TODAS las partidas de la nota, no solo el lote nuevo.
func (uc *AgregarItemsUseCase) Agregar(ctx context.Context, notaID string, in dto.AgregarItemsRequest) (*dto.ItemsAgregadosResponse, error) {
	nota, err := uc.notaRepo.GetByID(notaID)
	if err != nil {
		return nil, fmt.Errorf("obtener nota: %w", err)
	}
	if nota == nil {
		return nil, fmt.Errorf("%w: nota %s no existe", domain.ErrNotFound, notaID)
	}

	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: se requiere al menos una partida", domain.ErrInvalidInput)
	}
	for i, it := range in.Items {
		if it.ProductoID == "" {
			return nil, fmt.Errorf("%w: partida %d sin producto_id", domain.ErrInvalidInput, i)
		}
		if it.Cantidad <= 0 {
			return nil, fmt.Errorf("%w: partida %d: la cantidad debe ser un entero positivo", domain.ErrInvalidInput, i)
		}
		if it.PrecioUnitario.IsNegative() {
			return nil, fmt.Errorf("%w: partida %d: el precio unitario no puede ser negativo", domain.ErrInvalidInput, i)
		}
	}

	// Alta en el libro: un renglón nuevo por partida, jamás update.
	now := time.Now()
	for _, it := range in.Items {
		item := &entity.NotaVentaItem{
			ID:             uuid.New().String(),
			NotaVentaID:    nota.ID,
			ProductoID:     it.ProductoID,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Importe:        entity.CalcularImporte(it.Cantidad, it.PrecioUnitario),
			CreatedAt:      now,
		}
		if err := uc.itemRepo.Create(item); err != nil {
			return nil, fmt.Errorf("agregar partida: %w", err)
		}
	}

	// Recalcular el total con el libro completo y persistirlo.
	todas, err := uc.itemRepo.ListByNotaID(nota.ID)
	if err != nil {
		return nil, fmt.Errorf("leer libro de partidas: %w", err)
	}
	total := decimal.Zero
	for _, it := range todas {
		total = total.Add(it.Importe)
	}
	if err := uc.notaRepo.UpdateTotal(nota.ID, total); err != nil {
		return nil, fmt.Errorf("actualizar total: %w", err)
	}

	// De aquí en adelante el libro ya está comprometido; una falla deja la
	// nota con total nuevo y sin documento/notificación correspondiente.
	cliente, err := uc.clienteRepo.GetByID(nota.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	if cliente == nil {
		return nil, fmt.Errorf("%w: cliente %s no existe", domain.ErrNotFound, nota.ClienteID)
	}

	lineas, err := uc.enriquecerLineas(todas)
	if err != nil {
		return nil, err
	}

	pdf, err := uc.generador.GenerarNotaPDF(ctx, cliente, nota.Folio, lineas)
	if err != nil {
		return nil, fmt.Errorf("generar documento: %w", err)
	}

	veces, err := uc.almacen.Guardar(ctx, cliente.RFC, nota.Folio, pdf)
	if err != nil {
		return nil, err
	}

	enlace := fmt.Sprintf("%s/api/notas/%s/pdf", uc.baseURL, nota.ID)
	if err := uc.notificador.Publicar(ctx, AvisoNota{
		RazonSocial: cliente.RazonSocial,
		Folio:       nota.Folio,
		Enlace:      enlace,
	}); err != nil {
		return nil, fmt.Errorf("publicar notificación: %w", err)
	}

	uc.log.Info().
		Str("nota_id", nota.ID).
		Str("folio", nota.Folio).
		Str("total", total.StringFixed(2)).
		Int("veces_enviado", veces).
		Msg("partidas agregadas y documento reenviado")

	return &dto.ItemsAgregadosResponse{
		Message:      fmt.Sprintf("PDF actualizado y notificación enviada. Veces enviado: %d", veces),
		VecesEnviado: veces,
	}, nil
}

// enriquecerLineas resuelve el nombre visible de cada producto con una
// lectura por partida. Si un producto ya no existe en el catálogo se usa un
// nombre de respaldo en lugar de fallar la regeneración.
func (uc *AgregarItemsUseCase) enriquecerLineas(items []*entity.NotaVentaItem) ([]LineaNotaPDF, error) {
	lineas := make([]LineaNotaPDF, 0, len(items))
	for _, it := range items {
		nombre := "Producto " + it.ProductoID
		producto, err := uc.productoRepo.GetByID(it.ProductoID)
		if err != nil {
			return nil, fmt.Errorf("resolver producto %s: %w", it.ProductoID, err)
		}
		if producto != nil {
			nombre = producto.Nombre
		}
		lineas = append(lineas, LineaNotaPDF{
			Cantidad:       it.Cantidad,
			Producto:       nombre,
			PrecioUnitario: it.PrecioUnitario,
			Importe:        it.Importe,
		})
	}
	return lineas, nil
}
