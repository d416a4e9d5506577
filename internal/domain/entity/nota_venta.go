package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// NotaVenta es la cabecera de una nota de venta.
//
// ID y Folio son inmutables durante toda la vida de la nota. Total es un
// valor derivado: después de cada alta de partidas se recalcula como la suma
// de Importe sobre todas las partidas asociadas y se persiste.
type NotaVenta struct {
	ID                     string
	Folio                  string // identificador público corto (8 caracteres)
	ClienteID              string
	DireccionFacturacionID string
	DireccionEnvioID       string
	Total                  decimal.Decimal
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// NotaVentaItem es una partida del libro de la nota. El libro es append-only:
// una partida jamás se actualiza ni se borra una vez creada; reenvíos del
// mismo producto agregan renglones nuevos.
type NotaVentaItem struct {
	ID             string
	NotaVentaID    string
	ProductoID     string
	Cantidad       int64           // entero positivo
	PrecioUnitario decimal.Decimal // no negativo
	Importe        decimal.Decimal // Cantidad × PrecioUnitario, redondeado a 2 decimales
	CreatedAt      time.Time
}

// CalcularImporte devuelve Cantidad × PrecioUnitario redondeado a precisión
// de moneda (2 decimales). Toda la aritmética es decimal exacta.
func CalcularImporte(cantidad int64, precioUnitario decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(cantidad).Mul(precioUnitario).Round(2)
}
