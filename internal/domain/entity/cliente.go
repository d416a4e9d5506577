package entity

import "time"

// Cliente representa un cliente del catálogo comercial.
// El RFC funciona además como prefijo (namespace) de las llaves del
// almacén de documentos: los PDF de sus notas viven bajo "RFC/...".
type Cliente struct {
	ID                string
	RazonSocial       string
	NombreComercial   string
	RFC               string
	CorreoElectronico string
	Telefono          string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
