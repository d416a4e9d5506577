package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/notas-venta-api/internal/domain"
	"github.com/tu-usuario/notas-venta-api/internal/domain/entity"
	"github.com/tu-usuario/notas-venta-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, razon_social, nombre_comercial, rfc, correo_electronico, telefono, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.RazonSocial, cliente.NombreComercial, cliente.RFC,
		cliente.CorreoElectronico, cliente.Telefono, cliente.CreatedAt, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Retorna (nil, nil) si no existe.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `
		SELECT id, razon_social, nombre_comercial, rfc, correo_electronico, telefono, created_at, updated_at
		FROM clientes WHERE id = $1`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.RazonSocial, &c.NombreComercial, &c.RFC,
		&c.CorreoElectronico, &c.Telefono, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List lista clientes con paginación.
func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	query := `
		SELECT id, razon_social, nombre_comercial, rfc, correo_electronico, telefono, created_at, updated_at
		FROM clientes ORDER BY razon_social LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.RazonSocial, &c.NombreComercial, &c.RFC,
			&c.CorreoElectronico, &c.Telefono, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE clientes SET razon_social = $2, nombre_comercial = $3, rfc = $4,
			correo_electronico = $5, telefono = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.RazonSocial, cliente.NombreComercial, cliente.RFC,
		cliente.CorreoElectronico, cliente.Telefono, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}
