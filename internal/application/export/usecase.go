// Package export serializa los registros persistidos a csv, xlsx, pdf o txt.
package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/geocadastro-api/internal/domain"
	"github.com/jhoicas/geocadastro-api/internal/domain/entity"
	"github.com/jhoicas/geocadastro-api/internal/domain/repository"
	"github.com/jhoicas/geocadastro-api/pkg/logger"
)

// filterDateLayout formato de data_inicio / data_fim.
const filterDateLayout = "2006-01-02"

// File archivo exportado listo para descargar.
type File struct {
	Name        string
	ContentType string
	Body        []byte
	Count       int
}

// Summary resumen devuelto cuando no se pide formato.
type Summary struct {
	Total    int
	Filter   repository.ClienteFilter
	Unidades []entity.Unidade
}

// ParseFilter arma el filtro de exportación. Fechas inválidas se ignoran.
func ParseFilter(unidade, dataInicio, dataFim string) repository.ClienteFilter {
	f := repository.ClienteFilter{
		Unidade: entity.Unidade(strings.TrimSpace(unidade)),
		Order:   repository.OrderByDataCadastroDesc,
	}
	if t, err := time.Parse(filterDateLayout, strings.TrimSpace(dataInicio)); err == nil {
		f.From = &t
	}
	if t, err := time.Parse(filterDateLayout, strings.TrimSpace(dataFim)); err == nil {
		f.To = &t
	}
	return f
}

// UseCase consulta el repositorio y delega en el formateador pedido.
type UseCase struct {
	repo       repository.ClienteRepository
	formatters map[string]Formatter
	metrics    Recorder
	log        *logger.Logger
	now        func() time.Time
}

// NewUseCase construye el caso de uso con los formateadores habilitados.
// Un formato conocido sin formateador registrado responde ErrMissingDependency.
func NewUseCase(repo repository.ClienteRepository, metrics Recorder, log *logger.Logger, formatters ...Formatter) *UseCase {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	if log == nil {
		log = logger.Nop()
	}
	reg := make(map[string]Formatter, len(formatters))
	for _, f := range formatters {
		reg[f.Format()] = f
	}
	return &UseCase{repo: repo, formatters: reg, metrics: metrics, log: log.Component("export"), now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Export genera el archivo en el formato indicado.
//
// Retorna:
//   - domain.ErrUnsupportedFormat  si el formato no existe (antes de consultar).
//   - domain.ErrMissingDependency  si el formato existe pero su renderizador está deshabilitado.
func (uc *UseCase) Export(ctx context.Context, filter repository.ClienteFilter, format string) (*File, error) {
	formatter, err := uc.formatter(format)
	if err != nil {
		return nil, err
	}

	filter.Order = repository.OrderByDataCadastroDesc
	records, err := uc.repo.Query(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("export: consultar registros: %w", err)
	}

	now := uc.now()
	body, err := formatter.Render(ctx, Report{Records: records, Unidade: filter.Unidade, GeneratedAt: now})
	if err != nil {
		return nil, fmt.Errorf("export: generar %s: %w", formatter.Format(), err)
	}
	uc.metrics.ExportRendered(formatter.Format())

	file := &File{
		Name:        Filename(filter.Unidade, now, formatter.Extension()),
		ContentType: formatter.ContentType(),
		Body:        body,
		Count:       len(records),
	}
	uc.log.Info().
		Str("formato", formatter.Format()).
		Str("archivo", file.Name).
		Int("registros", file.Count).
		Msg("exportación generada")
	return file, nil
}

// Summary cuenta los registros que coinciden con el filtro.
func (uc *UseCase) Summary(ctx context.Context, filter repository.ClienteFilter) (*Summary, error) {
	filter.Order = repository.OrderByDataCadastroDesc
	records, err := uc.repo.Query(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("export: consultar registros: %w", err)
	}
	return &Summary{Total: len(records), Filter: filter, Unidades: entity.Unidades()}, nil
}

func (uc *UseCase) formatter(format string) (Formatter, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if f, ok := uc.formatters[format]; ok {
		return f, nil
	}
	for _, known := range Formats() {
		if known == format {
			if format == FormatPDF {
				return nil, fmt.Errorf("%w: el renderizador PDF está deshabilitado (EXPORT_PDF_ENABLED=true para habilitarlo)", domain.ErrMissingDependency)
			}
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingDependency, format)
		}
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
}
