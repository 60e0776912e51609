package repository

import (
	"context"
	"time"

	"github.com/jhoicas/geocadastro-api/internal/domain/entity"
)

// ClienteOrder orden de los resultados de Query.
type ClienteOrder int

const (
	// OrderByIDDesc listado interactivo: más recientes primero.
	OrderByIDDesc ClienteOrder = iota
	// OrderByDataCadastroDesc exportaciones.
	OrderByDataCadastroDesc
)

// ClienteFilter filtros de consulta. Campos vacíos/nil no filtran.
// From y To son inclusivos y se comparan contra data_cadastro (solo fecha).
type ClienteFilter struct {
	Unidade entity.Unidade
	From    *time.Time
	To      *time.Time
	Order   ClienteOrder
}

// ClienteRepository define el puerto de persistencia para registros geolocalizados.
type ClienteRepository interface {
	Create(ctx context.Context, c *entity.Cliente) error
	Query(ctx context.Context, f ClienteFilter) ([]*entity.Cliente, error)
	GetByID(ctx context.Context, id int64) (*entity.Cliente, error)
	Update(ctx context.Context, c *entity.Cliente) error
	Delete(ctx context.Context, id int64) error
}
