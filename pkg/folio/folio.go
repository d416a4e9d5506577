// Package folio genera los identificadores públicos cortos de las notas.
package folio

import "github.com/google/uuid"

// Largo caracteres del folio público.
const Largo = 8

// Nuevo genera un folio de 8 caracteres: el primer bloque hexadecimal de un
// UUID v4. No es secuencial; la unicidad es probabilística, suficiente para
// un identificador humano de documento.
func Nuevo() string {
	return uuid.New().String()[:Largo]
}
