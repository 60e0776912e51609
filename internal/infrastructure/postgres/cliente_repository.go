package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/geocadastro-api/internal/domain"
	"github.com/jhoicas/geocadastro-api/internal/domain/entity"
	"github.com/jhoicas/geocadastro-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

const clienteColumns = `id, unidade, data_cadastro, codigo_cliente, latitude, longitude, created_at, updated_at`

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un nuevo registro y asigna c.ID.
func (r *ClienteRepo) Create(ctx context.Context, c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (unidade, data_cadastro, codigo_cliente, latitude, longitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		string(c.Unidade), c.DataCadastro, c.CodigoCliente, c.Latitude, c.Longitude, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// Query lista registros con filtros opcionales de unidad y rango de fechas (inclusivo).
func (r *ClienteRepo) Query(ctx context.Context, f repository.ClienteFilter) ([]*entity.Cliente, error) {
	query, args := buildClienteQuery(f)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Cliente
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID obtiene un registro por ID. Devuelve (nil, nil) si no existe.
func (r *ClienteRepo) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	row := r.q.QueryRow(ctx, "SELECT "+clienteColumns+" FROM clientes WHERE id = $1", id)
	c, err := scanCliente(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// Update actualiza todos los campos editables.
func (r *ClienteRepo) Update(ctx context.Context, c *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET unidade = $2, data_cadastro = $3, codigo_cliente = $4, latitude = $5, longitude = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, string(c.Unidade), c.DataCadastro, c.CodigoCliente, c.Latitude, c.Longitude, c.UpdatedAt,
	)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un registro por ID.
func (r *ClienteRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func buildClienteQuery(f repository.ClienteFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	if f.Unidade != "" {
		args = append(args, string(f.Unidade))
		where = append(where, fmt.Sprintf("unidade = $%d", len(args)))
	}
	if f.From != nil {
		args = append(args, *f.From)
		where = append(where, fmt.Sprintf("data_cadastro >= $%d::date", len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		where = append(where, fmt.Sprintf("data_cadastro <= $%d::date", len(args)))
	}

	var sb strings.Builder
	sb.WriteString("SELECT " + clienteColumns + " FROM clientes")
	if len(where) > 0 {
		sb.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	sb.WriteString(" ORDER BY " + orderClause(f.Order))
	return sb.String(), args
}

func orderClause(o repository.ClienteOrder) string {
	if o == repository.OrderByDataCadastroDesc {
		return "data_cadastro DESC, id DESC"
	}
	return "id DESC"
}

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var (
		c       entity.Cliente
		unidade string
	)
	if err := row.Scan(
		&c.ID, &unidade, &c.DataCadastro, &c.CodigoCliente, &c.Latitude, &c.Longitude, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	c.Unidade = entity.Unidade(unidade)
	return &c, nil
}
