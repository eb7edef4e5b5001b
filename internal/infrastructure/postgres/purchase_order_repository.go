package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"ferreteria-backend/internal/domain"
	"ferreteria-backend/internal/domain/entity"
	"ferreteria-backend/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador de persistencia para pedidos.
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste un nuevo pedido y asigna el ID generado.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO pedidos (proveedor_id, fecha_pedido, recibido)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		order.SupplierID, order.OrderedAt, order.Received,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID. Devuelve (nil, nil) si no existe.
func (r *PurchaseOrderRepo) GetByID(id int64) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(),
		`SELECT id, proveedor_id, fecha_pedido, recibido FROM pedidos WHERE id = $1`, id).
		Scan(&o.ID, &o.SupplierID, &o.OrderedAt, &o.Received)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &o, nil
}

// GetForUpdate obtiene un pedido bloqueando la fila, para marcar la recepción
// sin carreras.
func (r *PurchaseOrderRepo) GetForUpdate(id int64) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(),
		`SELECT id, proveedor_id, fecha_pedido, recibido FROM pedidos WHERE id = $1 FOR UPDATE`, id).
		Scan(&o.ID, &o.SupplierID, &o.OrderedAt, &o.Received)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido for update: %w", err)
	}
	return &o, nil
}

// List lista los pedidos, los más recientes primero.
func (r *PurchaseOrderRepo) List() ([]*entity.PurchaseOrder, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, proveedor_id, fecha_pedido, recibido FROM pedidos ORDER BY fecha_pedido DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(&o.ID, &o.SupplierID, &o.OrderedAt, &o.Received); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update actualiza un pedido existente (proveedor y marca de recibido).
func (r *PurchaseOrderRepo) Update(order *entity.PurchaseOrder) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE pedidos SET proveedor_id = $2, recibido = $3 WHERE id = $1`,
		order.ID, order.SupplierID, order.Received,
	)
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un pedido junto con sus líneas (cascada).
func (r *PurchaseOrderRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM pedidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pedido: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateLine persiste una línea de pedido y asigna el ID generado.
func (r *PurchaseOrderRepo) CreateLine(line *entity.PurchaseOrderLine) error {
	query := `
		INSERT INTO detalle_pedidos (pedido_id, producto_id, cantidad, precio_unitario)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		line.OrderID, line.ProductID, line.Quantity, line.UnitPrice,
	).Scan(&line.ID)
	if err != nil {
		return fmt.Errorf("insert detalle pedido: %w", err)
	}
	return nil
}

// ListLines lista las líneas de un pedido.
func (r *PurchaseOrderRepo) ListLines(orderID int64) ([]*entity.PurchaseOrderLine, error) {
	query := `
		SELECT id, pedido_id, producto_id, cantidad, precio_unitario
		FROM detalle_pedidos WHERE pedido_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list detalle pedido: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrderLine
	for rows.Next() {
		var l entity.PurchaseOrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan detalle pedido: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// DeleteLine elimina una línea de pedido.
func (r *PurchaseOrderRepo) DeleteLine(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM detalle_pedidos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete detalle pedido: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
