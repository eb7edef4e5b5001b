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

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

// PaymentMethodRepo implementación del puerto PaymentMethodRepository sobre PostgreSQL.
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository construye el adaptador de persistencia para medios de pago.
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

// Create persiste un nuevo medio de pago. El código es único.
func (r *PaymentMethodRepo) Create(method *entity.PaymentMethod) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO medios_de_pago (codigo) VALUES ($1) RETURNING id`,
		method.Code,
	).Scan(&method.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert medio de pago: %w", err)
	}
	return nil
}

// GetByID obtiene un medio de pago por ID. Devuelve (nil, nil) si no existe.
func (r *PaymentMethodRepo) GetByID(id int64) (*entity.PaymentMethod, error) {
	var m entity.PaymentMethod
	err := r.q.QueryRow(context.Background(),
		`SELECT id, codigo FROM medios_de_pago WHERE id = $1`, id).
		Scan(&m.ID, &m.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medio de pago: %w", err)
	}
	return &m, nil
}

// GetByCode obtiene un medio de pago por su código (EF, TC, TD, TR).
func (r *PaymentMethodRepo) GetByCode(code string) (*entity.PaymentMethod, error) {
	var m entity.PaymentMethod
	err := r.q.QueryRow(context.Background(),
		`SELECT id, codigo FROM medios_de_pago WHERE codigo = $1`, code).
		Scan(&m.ID, &m.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medio de pago por codigo: %w", err)
	}
	return &m, nil
}

// List lista los medios de pago ordenados por código.
func (r *PaymentMethodRepo) List() ([]*entity.PaymentMethod, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, codigo FROM medios_de_pago ORDER BY codigo`)
	if err != nil {
		return nil, fmt.Errorf("list medios de pago: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentMethod
	for rows.Next() {
		var m entity.PaymentMethod
		if err := rows.Scan(&m.ID, &m.Code); err != nil {
			return nil, fmt.Errorf("scan medio de pago: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina un medio de pago. Las ventas que lo referencian quedan con
// medio_de_pago_id en NULL.
func (r *PaymentMethodRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM medios_de_pago WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete medio de pago: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
