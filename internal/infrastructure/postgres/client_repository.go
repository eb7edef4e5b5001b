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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de persistencia para clientes.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nuevo cliente y asigna el ID generado.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clientes (nombre, apellido, documento, direccion, telefono, email)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		client.FirstName, client.LastName, client.Document,
		client.Address, client.Phone, client.Email,
	).Scan(&client.ID)
	if err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByID(id int64) (*entity.Client, error) {
	query := `
		SELECT id, nombre, apellido, documento, direccion, telefono, email
		FROM clientes WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Document, &c.Address, &c.Phone, &c.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List lista todos los clientes ordenados por apellido y nombre.
func (r *ClientRepo) List() ([]*entity.Client, error) {
	query := `
		SELECT id, nombre, apellido, documento, direccion, telefono, email
		FROM clientes ORDER BY apellido, nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Document, &c.Address, &c.Phone, &c.Email); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente existente.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clientes SET nombre = $2, apellido = $3, documento = $4, direccion = $5, telefono = $6, email = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		client.ID, client.FirstName, client.LastName, client.Document,
		client.Address, client.Phone, client.Email,
	)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID. Si tiene facturas asociadas (ON DELETE
// RESTRICT), devuelve ErrProtected; las ventas del cliente se borran en cascada.
func (r *ClientRepo) Delete(id int64) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProtected
		}
		return fmt.Errorf("delete cliente: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
