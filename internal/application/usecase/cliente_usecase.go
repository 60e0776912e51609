package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/geocadastro-api/internal/application/dto"
	"github.com/jhoicas/geocadastro-api/internal/domain"
	"github.com/jhoicas/geocadastro-api/internal/domain/entity"
	"github.com/jhoicas/geocadastro-api/internal/domain/repository"
)

const (
	dateLayout       = "2006-01-02"
	maxCodigoCliente = 50
)

var (
	digitsOnly = regexp.MustCompile(`^[0-9]+$`)

	minLatitude  = decimal.NewFromInt(-90)
	maxLatitude  = decimal.NewFromInt(90)
	minLongitude = decimal.NewFromInt(-180)
	maxLongitude = decimal.NewFromInt(180)
)

// ClienteTxRunner ejecuta fn con un repositorio atado a una transacción.
type ClienteTxRunner interface {
	RunClientes(ctx context.Context, fn func(repo repository.ClienteRepository) error) error
}

// ClienteUseCase casos de uso CRUD para registros geolocalizados.
type ClienteUseCase struct {
	repo repository.ClienteRepository
	tx   ClienteTxRunner
	now  func() time.Time
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository, tx ClienteTxRunner) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, tx: tx, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *ClienteUseCase) WithClock(now func() time.Time) *ClienteUseCase {
	uc.now = now
	return uc
}

// Validate aplica las reglas del formulario sin persistir.
// Devuelve *domain.ValidationError (errors.Is → ErrInvalidInput) con un mensaje por campo.
func (uc *ClienteUseCase) Validate(in dto.ClienteRequest) (*entity.Cliente, error) {
	var verr domain.ValidationError
	c := &entity.Cliente{}

	c.Unidade = entity.Unidade(strings.TrimSpace(in.Unidade))
	if c.Unidade == "" {
		verr.Add("unidade", "Este campo é obrigatório.")
	} else if !c.Unidade.Valid() {
		verr.Add("unidade", "Unidade inválida.")
	}

	date := strings.TrimSpace(in.DataCadastro)
	if date == "" {
		verr.Add("data_cadastro", "Este campo é obrigatório.")
	} else if d, err := time.Parse(dateLayout, date); err != nil {
		verr.Add("data_cadastro", "Informe uma data válida (AAAA-MM-DD).")
	} else {
		c.DataCadastro = d
	}

	c.CodigoCliente = strings.TrimSpace(in.CodigoCliente)
	switch {
	case c.CodigoCliente == "":
		verr.Add("codigo_cliente", "Este campo é obrigatório.")
	case !digitsOnly.MatchString(c.CodigoCliente):
		verr.Add("codigo_cliente", "O código do cliente deve conter apenas números.")
	case len(c.CodigoCliente) > maxCodigoCliente:
		verr.Add("codigo_cliente", "O código do cliente deve ter no máximo 50 dígitos.")
	}

	c.Latitude = parseCoordinate(&verr, "latitude", in.Latitude, minLatitude, maxLatitude,
		"A latitude deve estar entre -90 e 90 graus.")
	c.Longitude = parseCoordinate(&verr, "longitude", in.Longitude, minLongitude, maxLongitude,
		"A longitude deve estar entre -180 e 180 graus.")

	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return c, nil
}

func parseCoordinate(verr *domain.ValidationError, field, raw string, lo, hi decimal.Decimal, rangeMsg string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		verr.Add(field, "Este campo é obrigatório.")
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		verr.Add(field, "Informe um número.")
		return decimal.Zero
	}
	if d.LessThan(lo) || d.GreaterThan(hi) {
		verr.Add(field, rangeMsg)
		return decimal.Zero
	}
	if -d.Exponent() > entity.CoordinateScale {
		verr.Add(field, "Certifique-se de que não haja mais de 15 casas decimais.")
		return decimal.Zero
	}
	return d
}

// Create valida y persiste un nuevo registro.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	c, err := uc.Validate(in)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	c.CreatedAt, c.UpdatedAt = now, now
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// GetByID obtiene un registro; domain.ErrNotFound si no existe.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id int64) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toClienteResponse(c), nil
}

// List lista registros por unidad y fecha exacta de cadastro, más recientes primero.
// Una fecha inválida se ignora.
func (uc *ClienteUseCase) List(ctx context.Context, q dto.ClienteListQuery) (*dto.ClienteListResponse, error) {
	f := repository.ClienteFilter{
		Unidade: entity.Unidade(strings.TrimSpace(q.Unidade)),
		Order:   repository.OrderByIDDesc,
	}
	if d, err := time.Parse(dateLayout, strings.TrimSpace(q.Data)); err == nil {
		f.From, f.To = &d, &d
	}
	list, err := uc.repo.Query(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClienteResponse(c))
	}
	return &dto.ClienteListResponse{Clientes: items, Total: len(items)}, nil
}

// Update reemplaza los campos editables dentro de una transacción (lectura + escritura).
func (uc *ClienteUseCase) Update(ctx context.Context, id int64, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	valid, err := uc.Validate(in)
	if err != nil {
		return nil, err
	}

	var updated *entity.Cliente
	err = uc.tx.RunClientes(ctx, func(repo repository.ClienteRepository) error {
		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		current.Unidade = valid.Unidade
		current.DataCadastro = valid.DataCadastro
		current.CodigoCliente = valid.CodigoCliente
		current.Latitude = valid.Latitude
		current.Longitude = valid.Longitude
		current.UpdatedAt = uc.now()
		if err := repo.Update(ctx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toClienteResponse(updated), nil
}

// Delete elimina un registro; domain.ErrNotFound si no existe.
func (uc *ClienteUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:            c.ID,
		Unidade:       c.Unidade.String(),
		CodigoCliente: c.CodigoCliente,
		Latitude:      c.Latitude.StringFixed(entity.CoordinateScale),
		Longitude:     c.Longitude.StringFixed(entity.CoordinateScale),
		DataCadastro:  c.DataCadastro.Format(dateLayout),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
