package notas

import (
	"context"
	"errors"
	"fmt"

	"github.com/tu-usuario/notas-venta-api/internal/domain"
	"github.com/tu-usuario/notas-venta-api/internal/domain/repository"
	"github.com/tu-usuario/notas-venta-api/pkg/logger"
)

// DescargaUseCase recupera el documento almacenado de una nota y marca el
// objeto como descargado.
type DescargaUseCase struct {
	notaRepo    repository.NotaVentaRepository
	clienteRepo repository.ClienteRepository
	blob        BlobStore
	log         *logger.Logger
}

// NewDescargaUseCase construye el caso de uso.
func NewDescargaUseCase(
	notaRepo repository.NotaVentaRepository,
	clienteRepo repository.ClienteRepository,
	blob BlobStore,
	log *logger.Logger,
) *DescargaUseCase {
	return &DescargaUseCase{notaRepo: notaRepo, clienteRepo: clienteRepo, blob: blob, log: log}
}

// Descargar resuelve nota → cliente → llave, lee el objeto y reescribe sus
// metadatos con descargada = true preservando hora de envío y veces enviado
// (esta operación nunca toca el contador).
//
// Lectura y marcado son dos operaciones separadas: una caída entre ambas
// deja descargada = false a pesar de una lectura exitosa. La bandera es una
// señal de mejor esfuerzo, no un acuse de entrega.
//
// Retorna los bytes del documento y el nombre de archivo sugerido
// ("<folio>.pdf").
func (uc *DescargaUseCase) Descargar(ctx context.Context, notaID string) ([]byte, string, error) {
	nota, err := uc.notaRepo.GetByID(notaID)
	if err != nil {
		return nil, "", fmt.Errorf("obtener nota: %w", err)
	}
	if nota == nil {
		return nil, "", fmt.Errorf("%w: nota %s no existe", domain.ErrNotFound, notaID)
	}

	cliente, err := uc.clienteRepo.GetByID(nota.ClienteID)
	if err != nil {
		return nil, "", fmt.Errorf("obtener cliente: %w", err)
	}
	if cliente == nil {
		return nil, "", fmt.Errorf("%w: cliente %s no existe", domain.ErrNotFound, nota.ClienteID)
	}

	key := ClaveDocumento(cliente.RFC, nota.Folio)
	data, meta, err := uc.blob.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: no hay documento para la nota %s", domain.ErrNotFound, notaID)
		}
		return nil, "", fmt.Errorf("leer documento %s: %w", key, err)
	}

	marcado := *meta
	marcado.Descargada = true
	if err := uc.blob.ReplaceMeta(ctx, key, marcado); err != nil {
		return nil, "", fmt.Errorf("marcar documento como descargado: %w", err)
	}

	uc.log.Info().
		Str("nota_id", nota.ID).
		Str("folio", nota.Folio).
		Int("veces_enviado", meta.VecesEnviado).
		Msg("documento descargado")

	return data, nota.Folio + ".pdf", nil
}
