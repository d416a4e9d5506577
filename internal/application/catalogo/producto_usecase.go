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

// ProductoUseCase casos de uso CRUD para productos del catálogo.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

func validarProducto(in dto.ProductoRequest) error {
	var faltantes []string
	if in.Nombre == "" {
		faltantes = append(faltantes, "nombre")
	}
	if in.UnidadMedida == "" {
		faltantes = append(faltantes, "unidad_medida")
	}
	if len(faltantes) > 0 {
		return fmt.Errorf("%w: faltan campos obligatorios: %s", domain.ErrInvalidInput, strings.Join(faltantes, ", "))
	}
	if in.PrecioBase.IsNegative() {
		return fmt.Errorf("%w: precio_base no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

// Crear crea un producto nuevo.
func (uc *ProductoUseCase) Crear(in dto.ProductoRequest) (*dto.ProductoResponse, error) {
	if err := validarProducto(in); err != nil {
		return nil, err
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		UnidadMedida: in.UnidadMedida,
		PrecioBase:   in.PrecioBase,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return productoToResponse(producto), nil
}

// Obtener devuelve un producto por ID.
func (uc *ProductoUseCase) Obtener(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, fmt.Errorf("%w: producto %s no existe", domain.ErrNotFound, id)
	}
	return productoToResponse(producto), nil
}

// Listar devuelve productos paginados.
func (uc *ProductoUseCase) Listar(limit, offset int) ([]*dto.ProductoResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, productoToResponse(p))
	}
	return out, nil
}

// Actualizar reemplaza todos los campos del producto.
func (uc *ProductoUseCase) Actualizar(id string, in dto.ProductoRequest) (*dto.ProductoResponse, error) {
	if err := validarProducto(in); err != nil {
		return nil, err
	}
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, fmt.Errorf("%w: producto %s no existe", domain.ErrNotFound, id)
	}
	producto.Nombre = in.Nombre
	producto.UnidadMedida = in.UnidadMedida
	producto.PrecioBase = in.PrecioBase
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return productoToResponse(producto), nil
}

// Eliminar borra un producto por ID.
func (uc *ProductoUseCase) Eliminar(id string) error {
	return uc.repo.Delete(id)
}

func productoToResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:           p.ID,
		Nombre:       p.Nombre,
		UnidadMedida: p.UnidadMedida,
		PrecioBase:   p.PrecioBase,
	}
}
