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

// DireccionUseCase casos de uso CRUD para direcciones del catálogo.
type DireccionUseCase struct {
	repo repository.DireccionRepository
}

// NewDireccionUseCase construye el caso de uso.
func NewDireccionUseCase(repo repository.DireccionRepository) *DireccionUseCase {
	return &DireccionUseCase{repo: repo}
}

func validarDireccion(in dto.DireccionRequest) error {
	var faltantes []string
	if in.Domicilio == "" {
		faltantes = append(faltantes, "domicilio")
	}
	if in.Colonia == "" {
		faltantes = append(faltantes, "colonia")
	}
	if in.Municipio == "" {
		faltantes = append(faltantes, "municipio")
	}
	if in.Estado == "" {
		faltantes = append(faltantes, "estado")
	}
	if in.TipoDireccion == "" {
		faltantes = append(faltantes, "tipo_direccion")
	}
	if len(faltantes) > 0 {
		return fmt.Errorf("%w: faltan campos obligatorios: %s", domain.ErrInvalidInput, strings.Join(faltantes, ", "))
	}
	if !entity.TipoDireccionValido(in.TipoDireccion) {
		return fmt.Errorf("%w: tipo_direccion debe ser %s o %s", domain.ErrInvalidInput,
			entity.TipoDireccionFacturacion, entity.TipoDireccionEnvio)
	}
	return nil
}

// Crear crea una dirección nueva.
func (uc *DireccionUseCase) Crear(in dto.DireccionRequest) (*dto.DireccionResponse, error) {
	if err := validarDireccion(in); err != nil {
		return nil, err
	}
	now := time.Now()
	direccion := &entity.Direccion{
		ID:            uuid.New().String(),
		Domicilio:     in.Domicilio,
		Colonia:       in.Colonia,
		Municipio:     in.Municipio,
		Estado:        in.Estado,
		TipoDireccion: in.TipoDireccion,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(direccion); err != nil {
		return nil, err
	}
	return direccionToResponse(direccion), nil
}

// Obtener devuelve una dirección por ID.
func (uc *DireccionUseCase) Obtener(id string) (*dto.DireccionResponse, error) {
	direccion, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if direccion == nil {
		return nil, fmt.Errorf("%w: dirección %s no existe", domain.ErrNotFound, id)
	}
	return direccionToResponse(direccion), nil
}

// Listar devuelve direcciones paginadas.
func (uc *DireccionUseCase) Listar(limit, offset int) ([]*dto.DireccionResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DireccionResponse, 0, len(list))
	for _, d := range list {
		out = append(out, direccionToResponse(d))
	}
	return out, nil
}

// Actualizar reemplaza todos los campos de la dirección.
func (uc *DireccionUseCase) Actualizar(id string, in dto.DireccionRequest) (*dto.DireccionResponse, error) {
	if err := validarDireccion(in); err != nil {
		return nil, err
	}
	direccion, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if direccion == nil {
		return nil, fmt.Errorf("%w: dirección %s no existe", domain.ErrNotFound, id)
	}
	direccion.Domicilio = in.Domicilio
	direccion.Colonia = in.Colonia
	direccion.Municipio = in.Municipio
	direccion.Estado = in.Estado
	direccion.TipoDireccion = in.TipoDireccion
	direccion.UpdatedAt = time.Now()
	if err := uc.repo.Update(direccion); err != nil {
		return nil, err
	}
	return direccionToResponse(direccion), nil
}

// Eliminar borra una dirección por ID.
func (uc *DireccionUseCase) Eliminar(id string) error {
	return uc.repo.Delete(id)
}

func direccionToResponse(d *entity.Direccion) *dto.DireccionResponse {
	return &dto.DireccionResponse{
		ID:            d.ID,
		Domicilio:     d.Domicilio,
		Colonia:       d.Colonia,
		Municipio:     d.Municipio,
		Estado:        d.Estado,
		TipoDireccion: d.TipoDireccion,
	}
}
