package entity

import "time"

// Tipos de dirección válidos. Una dirección es de facturación o de envío,
// nunca ambas ni otra cosa.
const (
	TipoDireccionFacturacion = "Facturacion"
	TipoDireccionEnvio       = "Envio"
)

// Direccion representa una dirección del catálogo.
type Direccion struct {
	ID            string
	Domicilio     string
	Colonia       string
	Municipio     string
	Estado        string
	TipoDireccion string // Facturacion | Envio
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TipoDireccionValido verifica que el tipo sea uno de los dos permitidos.
func TipoDireccionValido(tipo string) bool {
	return tipo == TipoDireccionFacturacion || tipo == TipoDireccionEnvio
}
