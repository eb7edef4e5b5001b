package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"ferreteria-backend/internal/domain"
	"ferreteria-backend/internal/domain/entity"
	"ferreteria-backend/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste una nueva factura y asigna el ID generado.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO facturas (fecha, cliente_id) VALUES ($1, $2) RETURNING id`,
		invoice.Date, invoice.ClientID,
	).Scan(&invoice.ID)
	if err != nil {
		return fmt.Errorf("insert factura: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID. Devuelve (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	var f entity.Invoice
	err := r.q.QueryRow(context.Background(),
		`SELECT id, fecha, cliente_id FROM facturas WHERE id = $1`, id).
		Scan(&f.ID, &f.Date, &f.ClientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura: %w", err)
	}
	return &f, nil
}

// List lista las facturas, las más recientes primero.
func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, fecha, cliente_id FROM facturas ORDER BY fecha DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var f entity.Invoice
		if err := rows.Scan(&f.ID, &f.Date, &f.ClientID); err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Update actualiza una factura existente.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE facturas SET fecha = $2, cliente_id = $3 WHERE id = $1`,
		invoice.ID, invoice.Date, invoice.ClientID,
	)
	if err != nil {
		return fmt.Errorf("update factura: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una factura junto con sus líneas (cascada).
func (r *InvoiceRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM facturas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete factura: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateLine persiste una línea de factura y asigna el ID generado.
func (r *InvoiceRepo) CreateLine(line *entity.InvoiceLine) error {
	query := `
		INSERT INTO detalle_facturas (factura_id, producto_id, cantidad, precio_unitario, medio_de_pago_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		line.InvoiceID, line.ProductID, line.Quantity, line.UnitPrice, line.PaymentMethodID,
	).Scan(&line.ID)
	if err != nil {
		return fmt.Errorf("insert detalle factura: %w", err)
	}
	return nil
}

// ListLines lista las líneas de una factura.
func (r *InvoiceRepo) ListLines(invoiceID int64) ([]*entity.InvoiceLine, error) {
	query := `
		SELECT id, factura_id, producto_id, cantidad, precio_unitario, medio_de_pago_id
		FROM detalle_facturas WHERE factura_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list detalle factura: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceLine
	for rows.Next() {
		var l entity.InvoiceLine
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.PaymentMethodID); err != nil {
			return nil, fmt.Errorf("scan detalle factura: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// DeleteLine elimina una línea de factura.
func (r *InvoiceRepo) DeleteLine(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM detalle_facturas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete detalle factura: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Total suma cantidad × precio unitario sobre las líneas de la factura.
// El total nunca se almacena: siempre se deriva de las líneas.
func (r *InvoiceRepo) Total(invoiceID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(cantidad * precio_unitario), 0) FROM detalle_facturas WHERE factura_id = $1`,
		invoiceID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total factura: %w", err)
	}
	return total, nil
}

// Totals calcula el total de todas las facturas con un único SUM agrupado.
func (r *InvoiceRepo) Totals() (map[int64]decimal.Decimal, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT factura_id, SUM(cantidad * precio_unitario) FROM detalle_facturas GROUP BY factura_id`)
	if err != nil {
		return nil, fmt.Errorf("totales facturas: %w", err)
	}
	defer rows.Close()
	totals := make(map[int64]decimal.Decimal)
	for rows.Next() {
		var id int64
		var total decimal.Decimal
		if err := rows.Scan(&id, &total); err != nil {
			return nil, fmt.Errorf("scan total factura: %w", err)
		}
		totals[id] = total
	}
	return totals, rows.Err()
}
