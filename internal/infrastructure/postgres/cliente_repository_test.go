package postgres

import (
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/geocadastro-api/internal/domain/entity"
	"github.com/jhoicas/geocadastro-api/internal/domain/repository"
)

func TestBuildClienteQuery_SinFiltros(t *testing.T) {
	q, args := buildClienteQuery(repository.ClienteFilter{})
	assert.Equal(t, "SELECT "+clienteColumns+" FROM clientes ORDER BY id DESC", q)
	assert.Empty(t, args)
}

func TestBuildClienteQuery_TodosLosFiltros(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	q, args := buildClienteQuery(repository.ClienteFilter{
		Unidade: entity.UnidadeMaringa,
		From:    &from,
		To:      &to,
		Order:   repository.OrderByDataCadastroDesc,
	})

	assert.Contains(t, q, "WHERE unidade = $1 AND data_cadastro >= $2::date AND data_cadastro <= $3::date")
	assert.Contains(t, q, "ORDER BY data_cadastro DESC, id DESC")
	assert.Equal(t, []any{"Maringá", from, to}, args)
}

func TestBuildClienteQuery_SoloHasta(t *testing.T) {
	to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	q, args := buildClienteQuery(repository.ClienteFilter{To: &to})
	assert.Contains(t, q, "WHERE data_cadastro <= $1::date")
	assert.Len(t, args, 1)
}

func TestIsCheckViolation(t *testing.T) {
	assert.True(t, isCheckViolation(fmt.Errorf("wrap: %w", &pgconn.PgError{Code: "23514"})))
	assert.False(t, isCheckViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isCheckViolation(fmt.Errorf("otro")))
}
