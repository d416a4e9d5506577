package notas

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/notas-venta-api/internal/domain/entity"
)

// BlobStore es el puerto de bajo nivel sobre el almacén de objetos donde
// viven los PDF de las notas. Las llaves tienen la forma "RFC/folio.pdf".
//
// Head y Get retornan domain.ErrNotFound cuando la llave no existe;
// cualquier otra falla del almacén se reporta tal cual (envuelta).
type BlobStore interface {
	// Head devuelve solo los metadatos del objeto.
	Head(ctx context.Context, key string) (*entity.DocumentoMeta, error)
	// Put escribe el objeto completo con sus metadatos, sobrescribiendo
	// cualquier versión anterior y todos sus metadatos.
	Put(ctx context.Context, key string, data []byte, meta entity.DocumentoMeta) error
	// Get devuelve los bytes del objeto junto con sus metadatos.
	Get(ctx context.Context, key string) ([]byte, *entity.DocumentoMeta, error)
	// ReplaceMeta reescribe los metadatos del objeto sin tocar su contenido.
	ReplaceMeta(ctx context.Context, key string, meta entity.DocumentoMeta) error
}

// LineaNotaPDF es una partida ya enriquecida con el nombre del producto,
// lista para renderizar. El generador no consulta repositorios.
type LineaNotaPDF struct {
	Cantidad       int64
	Producto       string
	PrecioUnitario decimal.Decimal
	Importe        decimal.Decimal
}

// GeneradorNotaPDF renderiza el documento de cobro de una nota: bloque de
// identidad del cliente y tabla de partidas. El resultado es determinista
// para entradas idénticas, salvo la marca de tiempo de generación embebida
// en los metadatos del PDF.
type GeneradorNotaPDF interface {
	GenerarNotaPDF(ctx context.Context, cliente *entity.Cliente, folio string, lineas []LineaNotaPDF) ([]byte, error)
}

// AvisoNota es el mensaje que anuncia que el documento de una nota está
// disponible para descarga.
type AvisoNota struct {
	RazonSocial string
	Folio       string
	Enlace      string
}

// Notificador publica avisos en el canal de notificaciones usando el folio
// como llave de ordenamiento: los avisos de un mismo folio se entregan en
// orden entre sí; entre folios distintos no hay garantía.
//
// La publicación es fire-and-forget: Publicar solo espera el acuse de
// recepción del canal, no la entrega al consumidor final.
type Notificador interface {
	Publicar(ctx context.Context, aviso AvisoNota) error
}
