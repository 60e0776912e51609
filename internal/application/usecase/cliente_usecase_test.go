package usecase_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/geocadastro-api/internal/application/dto"
	"github.com/jhoicas/geocadastro-api/internal/application/usecase"
	"github.com/jhoicas/geocadastro-api/internal/domain"
	"github.com/jhoicas/geocadastro-api/internal/domain/entity"
	"github.com/jhoicas/geocadastro-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type memRepo struct {
	seq     int64
	rows    map[int64]entity.Cliente
	filters []repository.ClienteFilter
}

func newMemRepo() *memRepo { return &memRepo{rows: map[int64]entity.Cliente{}} }

func (m *memRepo) Create(_ context.Context, c *entity.Cliente) error {
	m.seq++
	c.ID = m.seq
	m.rows[c.ID] = *c
	return nil
}

func (m *memRepo) Query(_ context.Context, f repository.ClienteFilter) ([]*entity.Cliente, error) {
	m.filters = append(m.filters, f)
	var out []*entity.Cliente
	for _, c := range m.rows {
		c := c
		if f.Unidade != "" && c.Unidade != f.Unidade {
			continue
		}
		if f.From != nil && c.DataCadastro.Before(*f.From) {
			continue
		}
		if f.To != nil && c.DataCadastro.After(*f.To) {
			continue
		}
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memRepo) GetByID(_ context.Context, id int64) (*entity.Cliente, error) {
	c, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memRepo) Update(_ context.Context, c *entity.Cliente) error {
	if _, ok := m.rows[c.ID]; !ok {
		return domain.ErrNotFound
	}
	m.rows[c.ID] = *c
	return nil
}

func (m *memRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type memTx struct {
	repo *memRepo
	runs int
}

func (t *memTx) RunClientes(_ context.Context, fn func(repository.ClienteRepository) error) error {
	t.runs++
	return fn(t.repo)
}

var fixedNow = time.Date(2024, time.April, 10, 9, 0, 0, 0, time.UTC)

func newUseCase() (*usecase.ClienteUseCase, *memRepo, *memTx) {
	repo := newMemRepo()
	tx := &memTx{repo: repo}
	uc := usecase.NewClienteUseCase(repo, tx).WithClock(func() time.Time { return fixedNow })
	return uc, repo, tx
}

func validRequest() dto.ClienteRequest {
	return dto.ClienteRequest{
		Unidade:       "Guarapuava",
		DataCadastro:  "2024-04-01",
		CodigoCliente: "00321",
		Latitude:      "-25.3901",
		Longitude:     "-51.4622",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_OK(t *testing.T) {
	uc, _, _ := newUseCase()
	c, err := uc.Validate(validRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.UnidadeGuarapuava, c.Unidade)
	assert.Equal(t, "00321", c.CodigoCliente)
	assert.Equal(t, "-25.3901", c.Latitude.String())
}

func TestValidate_Errores(t *testing.T) {
	uc, _, _ := newUseCase()
	cases := []struct {
		name  string
		edit  func(*dto.ClienteRequest)
		field string
	}{
		{"código con letras", func(r *dto.ClienteRequest) { r.CodigoCliente = "12A" }, "codigo_cliente"},
		{"código vacío", func(r *dto.ClienteRequest) { r.CodigoCliente = " " }, "codigo_cliente"},
		{"latitud fuera de rango", func(r *dto.ClienteRequest) { r.Latitude = "90.0001" }, "latitude"},
		{"longitud fuera de rango", func(r *dto.ClienteRequest) { r.Longitude = "-180.5" }, "longitude"},
		{"latitud no numérica", func(r *dto.ClienteRequest) { r.Latitude = "abc" }, "latitude"},
		{"demasiados decimales", func(r *dto.ClienteRequest) { r.Longitude = "-51.1234567890123456" }, "longitude"},
		{"unidad desconocida", func(r *dto.ClienteRequest) { r.Unidade = "Curitiba" }, "unidade"},
		{"fecha inválida", func(r *dto.ClienteRequest) { r.DataCadastro = "01/04/2024" }, "data_cadastro"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.edit(&req)

			_, err := uc.Validate(req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tc.field)
			assert.Len(t, verr.Fields, 1)
		})
	}
}

func TestValidate_LimitesIncluidos(t *testing.T) {
	uc, _, _ := newUseCase()
	req := validRequest()
	req.Latitude, req.Longitude = "-90", "180"
	_, err := uc.Validate(req)
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateGetList(t *testing.T) {
	uc, repo, _ := newUseCase()
	ctx := context.Background()

	first, err := uc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "-25.390100000000000", first.Latitude)
	assert.Equal(t, "2024-04-01", first.DataCadastro)
	assert.Equal(t, fixedNow, first.CreatedAt)

	other := validRequest()
	other.Unidade, other.DataCadastro = "Maringá", "2024-04-02"
	_, err = uc.Create(ctx, other)
	require.NoError(t, err)

	got, err := uc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "00321", got.CodigoCliente)

	all, err := uc.List(ctx, dto.ClienteListQuery{})
	require.NoError(t, err)
	require.Equal(t, 2, all.Total)
	assert.Equal(t, int64(2), all.Clientes[0].ID)
	assert.Equal(t, repository.OrderByIDDesc, repo.filters[0].Order)

	byDate, err := uc.List(ctx, dto.ClienteListQuery{Data: "2024-04-02"})
	require.NoError(t, err)
	assert.Equal(t, 1, byDate.Total)

	ignored, err := uc.List(ctx, dto.ClienteListQuery{Data: "ontem"})
	require.NoError(t, err)
	assert.Equal(t, 2, ignored.Total)
}

func TestGetByID_NoExiste(t *testing.T) {
	uc, _, _ := newUseCase()
	_, err := uc.GetByID(context.Background(), 99)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUpdate_Transaccional(t *testing.T) {
	uc, _, tx := newUseCase()
	ctx := context.Background()
	created, err := uc.Create(ctx, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.CodigoCliente = "999"
	req.Latitude = "-25.5"
	updated, err := uc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 1, tx.runs)
	assert.Equal(t, "999", updated.CodigoCliente)
	assert.Equal(t, "-25.500000000000000", updated.Latitude)

	_, err = uc.Update(ctx, 404, req)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	req.Latitude = "100"
	_, err = uc.Update(ctx, created.ID, req)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, 2, tx.runs, "la validación ocurre antes de abrir la transacción")
}

func TestDelete(t *testing.T) {
	uc, _, _ := newUseCase()
	ctx := context.Background()
	created, err := uc.Create(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.True(t, errors.Is(uc.Delete(ctx, created.ID), domain.ErrNotFound))
}
