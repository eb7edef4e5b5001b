package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"ferreteria-backend/internal/domain"
	"ferreteria-backend/internal/domain/entity"
	"ferreteria-backend/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, fecha, numero_comprobante, cliente_id, medio_de_pago_id, importe_total, anulada`

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(&s.ID, &s.Date, &s.ReceiptNumber, &s.ClientID, &s.PaymentMethodID, &s.Total, &s.Voided)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste una nueva venta y asigna el ID generado. El número de
// comprobante es único; una colisión devuelve ErrDuplicate.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO ventas (fecha, numero_comprobante, cliente_id, medio_de_pago_id, importe_total, anulada)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		sale.Date, sale.ReceiptNumber, sale.ClientID, sale.PaymentMethodID, sale.Total, sale.Voided,
	).Scan(&sale.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID. Devuelve (nil, nil) si no existe.
func (r *SaleRepo) GetByID(id int64) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(context.Background(),
		`SELECT `+saleColumns+` FROM ventas WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return s, nil
}

// GetForUpdate obtiene una venta bloqueando la fila. Serializa anulaciones
// concurrentes de la misma venta.
func (r *SaleRepo) GetForUpdate(id int64) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(context.Background(),
		`SELECT `+saleColumns+` FROM ventas WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta for update: %w", err)
	}
	return s, nil
}

// List lista ventas, las más recientes primero. Por defecto excluye las
// anuladas.
func (r *SaleRepo) List(filter repository.SaleFilter) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM ventas WHERE 1=1`
	var args []any

	if !filter.IncludeVoided {
		query += ` AND anulada = false`
	}
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		query += ` AND cliente_id = $` + strconv.Itoa(len(args))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := strconv.Itoa(len(args))
		query += ` AND (numero_comprobante LIKE $` + n +
			` OR cliente_id IN (SELECT id FROM clientes WHERE nombre ILIKE $` + n + ` OR apellido ILIKE $` + n + `))`
	}
	query += ` ORDER BY fecha DESC, id DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Date, &s.ReceiptNumber, &s.ClientID, &s.PaymentMethodID, &s.Total, &s.Voided); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// ExistsByReceiptNumber indica si el número de comprobante ya está tomado.
func (r *SaleRepo) ExistsByReceiptNumber(number string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM ventas WHERE numero_comprobante = $1)`, number).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists comprobante: %w", err)
	}
	return exists, nil
}

// UpdateTotal persiste el importe total recalculado de la venta.
func (r *SaleRepo) UpdateTotal(id int64, total decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE ventas SET importe_total = $2 WHERE id = $1`, id, total)
	if err != nil {
		return fmt.Errorf("update total venta: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetVoided marca o desmarca la anulación de la venta.
func (r *SaleRepo) SetVoided(id int64, voided bool) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE ventas SET anulada = $2 WHERE id = $1`, id, voided)
	if err != nil {
		return fmt.Errorf("update anulada venta: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByClient cuenta las ventas no anuladas de un cliente.
func (r *SaleRepo) CountByClient(clientID int64) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM ventas WHERE cliente_id = $1 AND anulada = false`, clientID).
		Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count ventas cliente: %w", err)
	}
	return n, nil
}

// CreateLine persiste una línea de venta y asigna el ID generado.
// El precio unitario ya viene congelado por el caso de uso.
func (r *SaleRepo) CreateLine(line *entity.SaleLine) error {
	query := `
		INSERT INTO detalle_ventas (venta_id, producto_id, cantidad, precio_unitario, importe, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		line.SaleID, line.ProductID, line.Quantity, line.UnitPrice, line.Subtotal, line.CreatedAt,
	).Scan(&line.ID)
	if err != nil {
		return fmt.Errorf("insert detalle venta: %w", err)
	}
	return nil
}

// GetLineByID obtiene una línea de venta por ID. Devuelve (nil, nil) si no existe.
func (r *SaleRepo) GetLineByID(id int64) (*entity.SaleLine, error) {
	query := `
		SELECT id, venta_id, producto_id, cantidad, precio_unitario, importe, created_at
		FROM detalle_ventas WHERE id = $1`
	var l entity.SaleLine
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.SaleID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.Subtotal, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle venta: %w", err)
	}
	return &l, nil
}

// UpdateLine actualiza cantidad e importe de una línea. El precio unitario
// congelado no se toca.
func (r *SaleRepo) UpdateLine(line *entity.SaleLine) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE detalle_ventas SET cantidad = $2, importe = $3 WHERE id = $1`,
		line.ID, line.Quantity, line.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("update detalle venta: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteLine elimina una línea de venta.
func (r *SaleRepo) DeleteLine(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM detalle_ventas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete detalle venta: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListLines lista las líneas de una venta.
func (r *SaleRepo) ListLines(saleID int64) ([]*entity.SaleLine, error) {
	query := `
		SELECT id, venta_id, producto_id, cantidad, precio_unitario, importe, created_at
		FROM detalle_ventas WHERE venta_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list detalle venta: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.Subtotal, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan detalle venta: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// SumLineSubtotals agrega los importes de las líneas directamente en la base.
func (r *SaleRepo) SumLineSubtotals(saleID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(importe), 0) FROM detalle_ventas WHERE venta_id = $1`, saleID).
		Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum importes venta: %w", err)
	}
	return total, nil
}
