package export_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/geocadastro-api/internal/application/export"
	"github.com/jhoicas/geocadastro-api/internal/domain"
	"github.com/jhoicas/geocadastro-api/internal/domain/entity"
	"github.com/jhoicas/geocadastro-api/internal/domain/repository"
	"github.com/jhoicas/geocadastro-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeRepo struct {
	records []*entity.Cliente
	queries []repository.ClienteFilter
	err     error
}

func (f *fakeRepo) Create(context.Context, *entity.Cliente) error { return nil }
func (f *fakeRepo) GetByID(context.Context, int64) (*entity.Cliente, error) {
	return nil, nil
}
func (f *fakeRepo) Update(context.Context, *entity.Cliente) error { return nil }
func (f *fakeRepo) Delete(context.Context, int64) error           { return nil }

func (f *fakeRepo) Query(_ context.Context, filter repository.ClienteFilter) ([]*entity.Cliente, error) {
	f.queries = append(f.queries, filter)
	return f.records, f.err
}

type stubFormatter struct {
	format string
	last   export.Report
}

func (s *stubFormatter) Format() string      { return s.format }
func (s *stubFormatter) Extension() string   { return s.format + "x" }
func (s *stubFormatter) ContentType() string { return "application/test" }
func (s *stubFormatter) Render(_ context.Context, r export.Report) ([]byte, error) {
	s.last = r
	return []byte("ok"), nil
}

type countingRecorder map[string]int

func (c countingRecorder) ExportRendered(format string) { c[format]++ }

var fixedNow = time.Date(2024, time.August, 9, 16, 45, 0, 0, time.UTC)

func sampleRecords() []*entity.Cliente {
	return []*entity.Cliente{{
		ID: 1, Unidade: entity.UnidadeMaringa, CodigoCliente: "1",
		Latitude: decimal.RequireFromString("-23.4"), Longitude: decimal.RequireFromString("-51.9"),
		DataCadastro: fixedNow,
	}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Export
// ──────────────────────────────────────────────────────────────────────────────

func TestExport_DelegaEnFormateador(t *testing.T) {
	repo := &fakeRepo{records: sampleRecords()}
	csv := &stubFormatter{format: export.FormatCSV}
	rec := countingRecorder{}
	uc := export.NewUseCase(repo, rec, logger.Nop(), csv).WithClock(func() time.Time { return fixedNow })

	filter := export.ParseFilter("Ponta Grossa", "2024-01-01", "2024-12-31")
	file, err := uc.Export(context.Background(), filter, "CSV")
	require.NoError(t, err)

	assert.Equal(t, "geolocalizacao-ponta grossa-09-08-2024.csvx", file.Name)
	assert.Equal(t, "application/test", file.ContentType)
	assert.Equal(t, []byte("ok"), file.Body)
	assert.Equal(t, 1, file.Count)
	assert.Equal(t, 1, rec[export.FormatCSV])

	require.Len(t, repo.queries, 1)
	assert.Equal(t, repository.OrderByDataCadastroDesc, repo.queries[0].Order)
	assert.Equal(t, entity.UnidadePontaGrossa, csv.last.Unidade)
	assert.Equal(t, fixedNow, csv.last.GeneratedAt)
}

func TestExport_FormatoNoSoportadoNoConsulta(t *testing.T) {
	repo := &fakeRepo{}
	uc := export.NewUseCase(repo, nil, nil, &stubFormatter{format: export.FormatCSV})

	_, err := uc.Export(context.Background(), repository.ClienteFilter{}, "docx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedFormat))
	assert.Empty(t, repo.queries)
}

func TestExport_PDFDeshabilitado(t *testing.T) {
	repo := &fakeRepo{}
	uc := export.NewUseCase(repo, nil, nil, &stubFormatter{format: export.FormatCSV})

	_, err := uc.Export(context.Background(), repository.ClienteFilter{}, "pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingDependency))
	assert.Contains(t, err.Error(), "EXPORT_PDF_ENABLED")
	assert.Empty(t, repo.queries)
}

func TestExport_ErrorDeRepositorio(t *testing.T) {
	repo := &fakeRepo{err: errors.New("conexión cerrada")}
	uc := export.NewUseCase(repo, nil, nil, &stubFormatter{format: export.FormatTXT})

	_, err := uc.Export(context.Background(), repository.ClienteFilter{}, "txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conexión cerrada")
}

func TestSummary(t *testing.T) {
	repo := &fakeRepo{records: sampleRecords()}
	uc := export.NewUseCase(repo, nil, nil)

	s, err := uc.Summary(context.Background(), export.ParseFilter("", "", ""))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Total)
	assert.Equal(t, entity.Unidades(), s.Unidades)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros y nombres
// ──────────────────────────────────────────────────────────────────────────────

func TestParseFilter_FechasInvalidasSeIgnoran(t *testing.T) {
	f := export.ParseFilter(" Maringá ", "31/01/2024", "2024-02-30")
	assert.Equal(t, entity.UnidadeMaringa, f.Unidade)
	assert.Nil(t, f.From)
	assert.Nil(t, f.To)

	f = export.ParseFilter("", "2024-01-01", "2024-01-31")
	require.NotNil(t, f.From)
	require.NotNil(t, f.To)
	assert.Equal(t, time.January, f.From.Month())
	assert.Equal(t, 31, f.To.Day())
}

func TestFilename(t *testing.T) {
	at := time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "geolocalizacao-todas-unidades-03-02-2024.xlsx", export.Filename("", at, "xlsx"))
	assert.Equal(t, "geolocalizacao-maringá-03-02-2024.pdf", export.Filename(entity.UnidadeMaringa, at, "pdf"))
	assert.Equal(t, "geolocalizacao-norte pioneiro-03-02-2024.txt", export.Filename(entity.UnidadeNortePioneiro, at, "txt"))
}
