package repository

import "github.com/tu-usuario/notas-venta-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
// GetByID retorna (nil, nil) cuando el cliente no existe.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	List(limit, offset int) ([]*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	Delete(id string) error
}
