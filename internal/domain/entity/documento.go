package entity

import "time"

// DocumentoMeta son los metadatos que acompañan al PDF de una nota en el
// almacén de objetos. Se sobrescriben completos en cada regeneración.
//
// VecesEnviado arranca en 1 con el primer guardado y se incrementa en cada
// regeneración bajo la misma llave. Descargada se reinicia a false al
// regenerar y se vuelve true al descargar el documento.
type DocumentoMeta struct {
	HoraEnvio    time.Time
	Descargada   bool
	VecesEnviado int
}
