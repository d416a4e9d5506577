package notas

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tu-usuario/notas-venta-api/internal/domain"
	"github.com/tu-usuario/notas-venta-api/internal/domain/entity"
)

// ClaveDocumento arma la llave del PDF de una nota en el almacén de objetos:
// el RFC del cliente como namespace y el folio como nombre.
func ClaveDocumento(rfc, folio string) string {
	return rfc + "/" + folio + ".pdf"
}

// AlmacenDocumentos versiona los documentos de las notas sobre el BlobStore.
// Cada guardado sobrescribe el objeto completo y lleva la cuenta de cuántas
// veces se ha (re)enviado bajo la misma llave.
type AlmacenDocumentos struct {
	blob BlobStore
}

// NewAlmacenDocumentos construye el almacén.
func NewAlmacenDocumentos(blob BlobStore) *AlmacenDocumentos {
	return &AlmacenDocumentos{blob: blob}
}

// Guardar persiste el documento bajo "rfc/folio.pdf" y devuelve el contador
// de envíos resultante:
//
//  1. Sondea la llave. Si no hay objeto previo (condición esperada, no un
//     error) el contador arranca en 1; si existe, es el anterior + 1.
//     Cualquier otra falla del sondeo es fatal.
//  2. Escribe los bytes con metadatos nuevos: hora de envío = ahora,
//     descargada = false, veces enviado = contador.
//
// El par sondeo/escritura no es atómico: dos Guardar concurrentes sobre la
// misma llave pueden leer el mismo contador previo y subcontar. Es una
// propiedad de consistencia débil aceptada, no se corrige aquí.
func (a *AlmacenDocumentos) Guardar(ctx context.Context, rfc, folio string, data []byte) (int, error) {
	key := ClaveDocumento(rfc, folio)

	veces := 1
	previo, err := a.blob.Head(ctx, key)
	switch {
	case err == nil:
		veces = previo.VecesEnviado + 1
	case errors.Is(err, domain.ErrNotFound):
		// primer envío bajo esta llave
	default:
		return 0, fmt.Errorf("sondear documento %s: %w", key, err)
	}

	meta := entity.DocumentoMeta{
		HoraEnvio:    time.Now().UTC(),
		Descargada:   false,
		VecesEnviado: veces,
	}
	if err := a.blob.Put(ctx, key, data, meta); err != nil {
		return 0, fmt.Errorf("guardar documento %s: %w", key, err)
	}
	return veces, nil
}
