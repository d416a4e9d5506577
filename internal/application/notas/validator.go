package notas

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tu-usuario/notas-venta-api/internal/domain"
	"github.com/tu-usuario/notas-venta-api/internal/domain/entity"
	"github.com/tu-usuario/notas-venta-api/internal/domain/repository"
)

// ValidadorReferencias resuelve y verifica las referencias foráneas de una
// nota (cliente y direcciones) antes de crearla. Las tres validaciones deben
// pasar; si alguna falla no se escribe ningún registro de nota.
type ValidadorReferencias struct {
	clienteRepo   repository.ClienteRepository
	direccionRepo repository.DireccionRepository
}

// NewValidadorReferencias construye el validador.
func NewValidadorReferencias(clienteRepo repository.ClienteRepository, direccionRepo repository.DireccionRepository) *ValidadorReferencias {
	return &ValidadorReferencias{clienteRepo: clienteRepo, direccionRepo: direccionRepo}
}

// ReferenciasNota son las entidades resueltas tras una validación exitosa.
type ReferenciasNota struct {
	Cliente              *entity.Cliente
	DireccionFacturacion *entity.Direccion
	DireccionEnvio       *entity.Direccion
}

// ValidarCliente resuelve el cliente por ID. Retorna domain.ErrNotFound
// (envuelto) si no existe; las fallas del almacén de registros se propagan
// tal cual.
func (v *ValidadorReferencias) ValidarCliente(id string) (*entity.Cliente, error) {
	cliente, err := v.clienteRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("resolver cliente %s: %w", id, err)
	}
	if cliente == nil {
		return nil, fmt.Errorf("%w: cliente %s no existe", domain.ErrNotFound, id)
	}
	return cliente, nil
}

// ValidarDireccionFacturacion resuelve la dirección y verifica que su tipo
// sea Facturacion.
func (v *ValidadorReferencias) ValidarDireccionFacturacion(id string) (*entity.Direccion, error) {
	return v.validarDireccion(id, entity.TipoDireccionFacturacion, "de facturación")
}

// ValidarDireccionEnvio resuelve la dirección y verifica que su tipo sea Envio.
func (v *ValidadorReferencias) ValidarDireccionEnvio(id string) (*entity.Direccion, error) {
	return v.validarDireccion(id, entity.TipoDireccionEnvio, "de envío")
}

func (v *ValidadorReferencias) validarDireccion(id, tipoEsperado, rol string) (*entity.Direccion, error) {
	direccion, err := v.direccionRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("resolver dirección %s: %w", id, err)
	}
	if direccion == nil {
		return nil, fmt.Errorf("%w: dirección %s no existe", domain.ErrNotFound, id)
	}
	if direccion.TipoDireccion != tipoEsperado {
		return nil, fmt.Errorf("%w: la dirección %s no es una dirección %s", domain.ErrInvalidInput, id, rol)
	}
	return direccion, nil
}

// Validar ejecuta las tres validaciones y acumula todas las fallas de
// referencia en un solo error de validación, para que el caller vea de una
// vez qué referencias fallaron. Una falla del almacén de registros (no de
// validación) corta y se propaga directamente.
func (v *ValidadorReferencias) Validar(clienteID, dirFacturacionID, dirEnvioID string) (*ReferenciasNota, error) {
	var fallas []string
	refs := &ReferenciasNota{}

	agregar := func(err error) error {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
			fallas = append(fallas, err.Error())
			return nil
		}
		return err
	}

	cliente, err := v.ValidarCliente(clienteID)
	if err != nil {
		if err = agregar(err); err != nil {
			return nil, err
		}
	}
	refs.Cliente = cliente

	facturacion, err := v.ValidarDireccionFacturacion(dirFacturacionID)
	if err != nil {
		if err = agregar(err); err != nil {
			return nil, err
		}
	}
	refs.DireccionFacturacion = facturacion

	envio, err := v.ValidarDireccionEnvio(dirEnvioID)
	if err != nil {
		if err = agregar(err); err != nil {
			return nil, err
		}
	}
	refs.DireccionEnvio = envio

	if len(fallas) > 0 {
		return nil, fmt.Errorf("%w: referencias inválidas: %s", domain.ErrInvalidInput, strings.Join(fallas, "; "))
	}
	return refs, nil
}
