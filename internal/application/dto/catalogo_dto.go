package dto

import "github.com/shopspring/decimal"

// ── Clientes ──────────────────────────────────────────────────────────────────

// ClienteRequest body para POST/PUT de clientes. Todos los campos son
// obligatorios.
type ClienteRequest struct {
	RazonSocial       string `json:"razon_social"`
	NombreComercial   string `json:"nombre_comercial"`
	RFC               string `json:"rfc"`
	CorreoElectronico string `json:"correo_electronico"`
	Telefono          string `json:"telefono"`
}

// ClienteResponse cliente en respuestas.
type ClienteResponse struct {
	ID                string `json:"id"`
	RazonSocial       string `json:"razon_social"`
	NombreComercial   string `json:"nombre_comercial"`
	RFC               string `json:"rfc"`
	CorreoElectronico string `json:"correo_electronico"`
	Telefono          string `json:"telefono"`
}

// ── Direcciones ───────────────────────────────────────────────────────────────

// DireccionRequest body para POST/PUT de direcciones.
// TipoDireccion debe ser "Facturacion" o "Envio".
type DireccionRequest struct {
	Domicilio     string `json:"domicilio"`
	Colonia       string `json:"colonia"`
	Municipio     string `json:"municipio"`
	Estado        string `json:"estado"`
	TipoDireccion string `json:"tipo_direccion"`
}

// DireccionResponse dirección en respuestas.
type DireccionResponse struct {
	ID            string `json:"id"`
	Domicilio     string `json:"domicilio"`
	Colonia       string `json:"colonia"`
	Municipio     string `json:"municipio"`
	Estado        string `json:"estado"`
	TipoDireccion string `json:"tipo_direccion"`
}

// ── Productos ─────────────────────────────────────────────────────────────────

// ProductoRequest body para POST/PUT de productos.
type ProductoRequest struct {
	Nombre       string          `json:"nombre"`
	UnidadMedida string          `json:"unidad_medida"`
	PrecioBase   decimal.Decimal `json:"precio_base"`
}

// ProductoResponse producto en respuestas.
type ProductoResponse struct {
	ID           string          `json:"id"`
	Nombre       string          `json:"nombre"`
	UnidadMedida string          `json:"unidad_medida"`
	PrecioBase   decimal.Decimal `json:"precio_base"`
}
