package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/notas-venta-api/internal/domain/entity"
	"github.com/tu-usuario/notas-venta-api/internal/domain/repository"
)

var (
	_ repository.NotaVentaRepository     = (*NotaVentaRepo)(nil)
	_ repository.NotaVentaItemRepository = (*NotaVentaItemRepo)(nil)
)

// NotaVentaRepo implementación de NotaVentaRepository.
type NotaVentaRepo struct {
	q Querier
}

// NewNotaVentaRepository construye el adaptador.
func NewNotaVentaRepository(q Querier) *NotaVentaRepo {
	return &NotaVentaRepo{q: q}
}

// Create persiste la cabecera de una nota nueva (Total = 0).
func (r *NotaVentaRepo) Create(nota *entity.NotaVenta) error {
	query := `
		INSERT INTO notas_venta (id, folio, cliente_id, direccion_facturacion_id, direccion_envio_id, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		nota.ID, nota.Folio, nota.ClienteID, nota.DireccionFacturacionID,
		nota.DireccionEnvioID, nota.Total, nota.CreatedAt, nota.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert nota: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera por ID. Retorna (nil, nil) si no existe.
func (r *NotaVentaRepo) GetByID(id string) (*entity.NotaVenta, error) {
	query := `
		SELECT id, folio, cliente_id, direccion_facturacion_id, direccion_envio_id, total, created_at, updated_at
		FROM notas_venta WHERE id = $1`
	var n entity.NotaVenta
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.Folio, &n.ClienteID, &n.DireccionFacturacionID,
		&n.DireccionEnvioID, &n.Total, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get nota: %w", err)
	}
	return &n, nil
}

// UpdateTotal persiste el total derivado de la nota. Ningún otro campo de la
// cabecera se toca: ID y folio son inmutables.
func (r *NotaVentaRepo) UpdateTotal(id string, total decimal.Decimal) error {
	query := `UPDATE notas_venta SET total = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, total)
	if err != nil {
		return fmt.Errorf("update total: %w", err)
	}
	return nil
}

// NotaVentaItemRepo implementación de NotaVentaItemRepository. El libro es
// append-only: no hay UPDATE ni DELETE de partidas.
type NotaVentaItemRepo struct {
	q Querier
}

// NewNotaVentaItemRepository construye el adaptador.
func NewNotaVentaItemRepository(q Querier) *NotaVentaItemRepo {
	return &NotaVentaItemRepo{q: q}
}

// Create agrega una partida al libro.
func (r *NotaVentaItemRepo) Create(item *entity.NotaVentaItem) error {
	query := `
		INSERT INTO notas_venta_items (id, nota_venta_id, producto_id, cantidad, precio_unitario, importe, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.NotaVentaID, item.ProductoID, item.Cantidad,
		item.PrecioUnitario, item.Importe, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert partida: %w", err)
	}
	return nil
}

// ListByNotaID devuelve todas las partidas de la nota en orden de creación.
func (r *NotaVentaItemRepo) ListByNotaID(notaID string) ([]*entity.NotaVentaItem, error) {
	query := `
		SELECT id, nota_venta_id, producto_id, cantidad, precio_unitario, importe, created_at
		FROM notas_venta_items WHERE nota_venta_id = $1 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, notaID)
	if err != nil {
		return nil, fmt.Errorf("list partidas: %w", err)
	}
	defer rows.Close()
	var list []*entity.NotaVentaItem
	for rows.Next() {
		var it entity.NotaVentaItem
		if err := rows.Scan(&it.ID, &it.NotaVentaID, &it.ProductoID, &it.Cantidad,
			&it.PrecioUnitario, &it.Importe, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan partida: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
