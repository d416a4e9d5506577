package repository

import "github.com/tu-usuario/notas-venta-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto.
// GetByID retorna (nil, nil) cuando el producto no existe.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	List(limit, offset int) ([]*entity.Producto, error)
	Update(producto *entity.Producto) error
	Delete(id string) error
}
