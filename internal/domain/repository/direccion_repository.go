package repository

import "github.com/tu-usuario/notas-venta-api/internal/domain/entity"

// DireccionRepository define el puerto de persistencia para Direccion.
// GetByID retorna (nil, nil) cuando la dirección no existe.
type DireccionRepository interface {
	Create(direccion *entity.Direccion) error
	GetByID(id string) (*entity.Direccion, error)
	List(limit, offset int) ([]*entity.Direccion, error)
	Update(direccion *entity.Direccion) error
	Delete(id string) error
}
