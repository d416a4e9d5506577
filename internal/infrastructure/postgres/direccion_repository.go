package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/notas-venta-api/internal/domain/entity"
	"github.com/tu-usuario/notas-venta-api/internal/domain/repository"
)

var _ repository.DireccionRepository = (*DireccionRepo)(nil)

// DireccionRepo implementación de DireccionRepository.
type DireccionRepo struct {
	q Querier
}

// NewDireccionRepository construye el adaptador.
func NewDireccionRepository(q Querier) *DireccionRepo {
	return &DireccionRepo{q: q}
}

// Create persiste una nueva dirección.
func (r *DireccionRepo) Create(direccion *entity.Direccion) error {
	query := `
		INSERT INTO direcciones (id, domicilio, colonia, municipio, estado, tipo_direccion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		direccion.ID, direccion.Domicilio, direccion.Colonia, direccion.Municipio,
		direccion.Estado, direccion.TipoDireccion, direccion.CreatedAt, direccion.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert direccion: %w", err)
	}
	return nil
}

// GetByID obtiene una dirección por ID. Retorna (nil, nil) si no existe.
func (r *DireccionRepo) GetByID(id string) (*entity.Direccion, error) {
	query := `
		SELECT id, domicilio, colonia, municipio, estado, tipo_direccion, created_at, updated_at
		FROM direcciones WHERE id = $1`
	var d entity.Direccion
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Domicilio, &d.Colonia, &d.Municipio,
		&d.Estado, &d.TipoDireccion, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get direccion: %w", err)
	}
	return &d, nil
}

// List lista direcciones con paginación.
func (r *DireccionRepo) List(limit, offset int) ([]*entity.Direccion, error) {
	query := `
		SELECT id, domicilio, colonia, municipio, estado, tipo_direccion, created_at, updated_at
		FROM direcciones ORDER BY created_at LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list direcciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Direccion
	for rows.Next() {
		var d entity.Direccion
		if err := rows.Scan(&d.ID, &d.Domicilio, &d.Colonia, &d.Municipio,
			&d.Estado, &d.TipoDireccion, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan direccion: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza una dirección.
func (r *DireccionRepo) Update(direccion *entity.Direccion) error {
	query := `
		UPDATE direcciones SET domicilio = $2, colonia = $3, municipio = $4,
			estado = $5, tipo_direccion = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		direccion.ID, direccion.Domicilio, direccion.Colonia, direccion.Municipio,
		direccion.Estado, direccion.TipoDireccion, direccion.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update direccion: %w", err)
	}
	return nil
}

// Delete elimina una dirección por ID.
func (r *DireccionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM direcciones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete direccion: %w", err)
	}
	return nil
}
