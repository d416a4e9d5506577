package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/notas-venta-api/internal/domain/entity"
)

// NotaVentaRepository define el puerto de persistencia para la cabecera de
// notas de venta. GetByID retorna (nil, nil) cuando la nota no existe.
type NotaVentaRepository interface {
	Create(nota *entity.NotaVenta) error
	GetByID(id string) (*entity.NotaVenta, error)
	// UpdateTotal persiste el total derivado. ID y Folio nunca se modifican.
	UpdateTotal(id string, total decimal.Decimal) error
}

// NotaVentaItemRepository define el puerto del libro de partidas.
// El libro es append-only: solo Create y lectura por nota.
type NotaVentaItemRepository interface {
	Create(item *entity.NotaVentaItem) error
	// ListByNotaID devuelve todas las partidas asociadas a la nota,
	// en orden de creación.
	ListByNotaID(notaID string) ([]*entity.NotaVentaItem, error)
}
