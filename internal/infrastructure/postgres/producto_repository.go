package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/notas-venta-api/internal/domain/entity"
	"github.com/tu-usuario/notas-venta-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador.
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto. precio_base es NUMERIC; el codec de
// shopspring/decimal registrado en el pool lo mapea sin pasar por float.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (id, nombre, unidad_medida, precio_base, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.UnidadMedida, producto.PrecioBase,
		producto.CreatedAt, producto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Retorna (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `
		SELECT id, nombre, unidad_medida, precio_base, created_at, updated_at
		FROM productos WHERE id = $1`
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.UnidadMedida, &p.PrecioBase, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// List lista productos con paginación.
func (r *ProductoRepo) List(limit, offset int) ([]*entity.Producto, error) {
	query := `
		SELECT id, nombre, unidad_medida, precio_base, created_at, updated_at
		FROM productos ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.UnidadMedida, &p.PrecioBase,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto.
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, unidad_medida = $3, precio_base = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.UnidadMedida, producto.PrecioBase, producto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}
