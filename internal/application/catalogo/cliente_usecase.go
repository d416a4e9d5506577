package catalogo

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/notas-venta-api/internal/application/dto"
	"github.com/tu-usuario/notas-venta-api/internal/domain"
	"github.com/tu-usuario/notas-venta-api/internal/domain/entity"
	"github.com/tu-usuario/notas-venta-api/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes del catálogo.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

func validarCliente(in dto.ClienteRequest) error {
	var faltantes []string
	if in.RazonSocial == "" {
		faltantes = append(faltantes, "razon_social")
	}
	if in.NombreComercial == "" {
		faltantes = append(faltantes, "nombre_comercial")
	}
	if in.RFC == "" {
		faltantes = append(faltantes, "rfc")
	}
	if in.CorreoElectronico == "" {
		faltantes = append(faltantes, "correo_electronico")
	}
	if in.Telefono == "" {
		faltantes = append(faltantes, "telefono")
	}
	if len(faltantes) > 0 {
		return fmt.Errorf("%w: faltan campos obligatorios: %s", domain.ErrInvalidInput, strings.Join(faltantes, ", "))
	}
	return nil
}

// Crear crea un cliente nuevo.
func (uc *ClienteUseCase) Crear(in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if err := validarCliente(in); err != nil {
		return nil, err
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:                uuid.New().String(),
		RazonSocial:       in.RazonSocial,
		NombreComercial:   in.NombreComercial,
		RFC:               in.RFC,
		CorreoElectronico: in.CorreoElectronico,
		Telefono:          in.Telefono,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

// Obtener devuelve un cliente por ID.
func (uc *ClienteUseCase) Obtener(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, fmt.Errorf("%w: cliente %s no existe", domain.ErrNotFound, id)
	}
	return clienteToResponse(cliente), nil
}

// Listar devuelve clientes paginados.
func (uc *ClienteUseCase) Listar(limit, offset int) ([]*dto.ClienteResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, clienteToResponse(c))
	}
	return out, nil
}

// Actualizar reemplaza todos los campos del cliente. Todos son obligatorios,
// igual que en la creación.
func (uc *ClienteUseCase) Actualizar(id string, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if err := validarCliente(in); err != nil {
		return nil, err
	}
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, fmt.Errorf("%w: cliente %s no existe", domain.ErrNotFound, id)
	}
	cliente.RazonSocial = in.RazonSocial
	cliente.NombreComercial = in.NombreComercial
	cliente.RFC = in.RFC
	cliente.CorreoElectronico = in.CorreoElectronico
	cliente.Telefono = in.Telefono
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

// Eliminar borra un cliente por ID.
func (uc *ClienteUseCase) Eliminar(id string) error {
	return uc.repo.Delete(id)
}

func clienteToResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:                c.ID,
		RazonSocial:       c.RazonSocial,
		NombreComercial:   c.NombreComercial,
		RFC:               c.RFC,
		CorreoElectronico: c.CorreoElectronico,
		Telefono:          c.Telefono,
	}
}
