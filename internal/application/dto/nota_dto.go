package dto

import "github.com/shopspring/decimal"

// CrearNotaRequest body para POST /api/notas.
type CrearNotaRequest struct {
	ClienteID              string `json:"cliente_id"`
	DireccionFacturacionID string `json:"direccion_facturacion_id"`
	DireccionEnvioID       string `json:"direccion_envio_id"`
}

// NotaCreadaResponse respuesta de creación: ID interno y folio público.
type NotaCreadaResponse struct {
	ID    string `json:"id"`
	Folio string `json:"folio"`
}

// AgregarItemsRequest body para POST /api/notas/:id/items. La llamada es
// aditiva: cada partida se agrega como renglón nuevo, nunca reemplaza.
type AgregarItemsRequest struct {
	Items []ItemNotaRequest `json:"items"`
}

// ItemNotaRequest una partida a agregar.
type ItemNotaRequest struct {
	ProductoID     string          `json:"producto_id"`
	Cantidad       int64           `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// ItemsAgregadosResponse resultado de agregar partidas: mensaje para el
// usuario y cuántas veces se ha (re)enviado el documento de esta nota.
type ItemsAgregadosResponse struct {
	Message      string `json:"message"`
	VecesEnviado int    `json:"veces_enviado"`
}

// NotaDetalleResponse respuesta completa de GET /api/notas/:id:
// cabecera, partidas y cliente ensamblados.
type NotaDetalleResponse struct {
	Nota    NotaResponse       `json:"nota"`
	Items   []ItemNotaResponse `json:"items"`
	Cliente ClienteResponse    `json:"cliente"`
}

// NotaResponse cabecera de la nota en respuestas.
type NotaResponse struct {
	ID                     string          `json:"id"`
	Folio                  string          `json:"folio"`
	ClienteID              string          `json:"cliente_id"`
	DireccionFacturacionID string          `json:"direccion_facturacion_id"`
	DireccionEnvioID       string          `json:"direccion_envio_id"`
	Total                  decimal.Decimal `json:"total"`
}

// ItemNotaResponse partida del libro en respuestas.
type ItemNotaResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id"`
	Cantidad       int64           `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Importe        decimal.Decimal `json:"importe"`
}
