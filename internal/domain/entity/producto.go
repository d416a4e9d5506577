package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto del catálogo.
type Producto struct {
	ID           string
	Nombre       string
	UnidadMedida string
	PrecioBase   decimal.Decimal // precio de lista; las notas capturan su propio precio unitario
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
