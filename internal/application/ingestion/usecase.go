// Package ingestion implementa el pipeline de carga: archivo delimitado del
// sistema de origen → artefacto normalizado "cliente;latitud;longitud".
package ingestion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/geocadastro-api/internal/domain"
	"github.com/jhoicas/geocadastro-api/internal/domain/geo"
	"github.com/jhoicas/geocadastro-api/internal/infrastructure/tabular"
	"github.com/jhoicas/geocadastro-api/pkg/logger"
)

// Nombres de columna del archivo de origen.
const (
	ColumnUnit        = "Filial"
	ColumnClient      = "Cliente"
	ColumnCoordinates = "Coordenadas"
)

// dateColumnHints: la columna de fecha es la primera cuyo nombre contiene alguno.
var dateColumnHints = []string{"data", "inclus"}

// Config parámetros del pipeline.
type Config struct {
	TempDir   string // "" -> os.TempDir()
	Delimiter rune   // 0 -> ';'
}

// Result resumen de un lote procesado. El artefacto vive en Dir hasta Cleanup.
type Result struct {
	Artifact
	Dir        string
	Encoding   string
	Rejected   map[geo.RejectReason]int
	ArchiveKey string
}

// Cleanup elimina el directorio del artefacto.
func (r *Result) Cleanup() error {
	if r == nil || r.Dir == "" {
		return nil
	}
	return os.RemoveAll(r.Dir)
}

// TotalRejected suma las filas descartadas.
func (r *Result) TotalRejected() int {
	n := 0
	for _, c := range r.Rejected {
		n += c
	}
	return n
}

// UseCase ejecuta el pipeline completo de ingestión.
type UseCase struct {
	cfg     Config
	archive ArtifactArchive
	metrics Recorder
	log     *logger.Logger
	now     func() time.Time
}

// NewUseCase construye el caso de uso. archive y metrics pueden ser nil.
func NewUseCase(cfg Config, archive ArtifactArchive, metrics Recorder, log *logger.Logger) *UseCase {
	if cfg.Delimiter == 0 {
		cfg.Delimiter = ';'
	}
	if metrics == nil {
		metrics = nopRecorder{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{cfg: cfg, archive: archive, metrics: metrics, log: log.Component("ingestion"), now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Process copia el contenido subido a un archivo temporal y ejecuta el pipeline.
// El temporal se elimina en todas las salidas; el artefacto queda en Result.Dir.
func (uc *UseCase) Process(ctx context.Context, src io.Reader, originalName string) (*Result, error) {
	tmp, err := os.CreateTemp(uc.cfg.TempDir, "upload-*.csv")
	if err != nil {
		return nil, fmt.Errorf("ingestion: crear temporal: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("ingestion: copiar archivo: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("ingestion: cerrar temporal: %w", err)
	}

	uc.log.Debug().Str("archivo", originalName).Str("temporal", tmp.Name()).Msg("archivo recibido")
	return uc.ProcessFile(ctx, tmp.Name())
}

// ProcessFile ejecuta el pipeline sobre un archivo local:
// codificación → lectura → filtro/decodificación → artefacto → archivo (opcional).
//
// Retorna:
//   - domain.ErrUnreadableFile  si ninguna codificación candidata sirve.
//   - domain.ErrMissingColumn   si falta Filial, Cliente o Coordenadas.
//   - domain.ErrNoValidRecords  si ninguna fila sobrevive al filtro.
func (uc *UseCase) ProcessFile(ctx context.Context, path string) (res *Result, err error) {
	defer func() { uc.metrics.IngestionBatch(batchResult(err)) }()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ingestion: leer archivo: %w", err)
	}

	candidates := tabular.Candidates(data)
	table, err := tabular.Read(data, uc.cfg.Delimiter, candidates)
	if err != nil {
		uc.log.Warn().Strs("candidatas", candidates).Err(err).Msg("archivo ilegible")
		return nil, err
	}
	uc.log.Info().Str("encoding", table.Encoding).Int("filas", len(table.Rows)).Msg("archivo leído")

	rows, rejected, err := uc.evaluate(table)
	if err != nil {
		return nil, err
	}
	uc.metrics.IngestionRows(OutcomeAccepted, len(rows))
	for reason, n := range rejected {
		uc.metrics.IngestionRows(string(reason), n)
	}
	if len(rows) == 0 {
		uc.log.Warn().Int("rechazadas", len(table.Rows)).Msg("ningún registro válido")
		return nil, domain.ErrNoValidRecords
	}

	dir, err := os.MkdirTemp(uc.cfg.TempDir, "ingestion-*")
	if err != nil {
		return nil, fmt.Errorf("ingestion: crear directorio: %w", err)
	}
	art, err := WriteArtifact(dir, rows, uc.now())
	if err != nil {
		os.RemoveAll(dir)
		return nil, err
	}
	if art.Mixed > 0 {
		uc.log.Warn().Int("filas", art.Mixed).Str("unidade", rows[0].Unidade.String()).
			Msg("lote con unidades o fechas distintas; se usa la primera fila para el nombre")
	}

	res = &Result{Artifact: *art, Dir: dir, Encoding: table.Encoding, Rejected: rejected}
	res.ArchiveKey = uc.store(ctx, art)

	uc.log.Info().
		Str("artefacto", art.Filename).
		Int("aceptadas", art.Count).
		Int("rechazadas", res.TotalRejected()).
		Msg("ingestión completada")
	return res, nil
}

func (uc *UseCase) evaluate(table *tabular.Table) ([]geo.Row, map[geo.RejectReason]int, error) {
	unitIdx, ok := table.Column(ColumnUnit)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrMissingColumn, ColumnUnit)
	}
	clientIdx, ok := table.Column(ColumnClient)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrMissingColumn, ColumnClient)
	}
	coordIdx, ok := table.Column(ColumnCoordinates)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrMissingColumn, ColumnCoordinates)
	}
	dateIdx, _ := table.ColumnContaining(dateColumnHints...)

	rows := make([]geo.Row, 0, len(table.Rows))
	rejected := make(map[geo.RejectReason]int)
	for _, rec := range table.Rows {
		row, reason := geo.Evaluate(geo.RawRow{
			UnitCode:    tabular.Value(rec, unitIdx),
			ClientCode:  tabular.Value(rec, clientIdx),
			Coordinates: tabular.Value(rec, coordIdx),
			Date:        tabular.Value(rec, dateIdx),
		})
		if reason != "" {
			rejected[reason]++
			continue
		}
		rows = append(rows, row)
	}
	return rows, rejected, nil
}

// store copia el artefacto al archivo externo. Un fallo no invalida la ingestión.
func (uc *UseCase) store(ctx context.Context, art *Artifact) string {
	if uc.archive == nil {
		return ""
	}
	now := uc.now()
	key := fmt.Sprintf("ingestions/%04d/%02d/%s-%s", now.Year(), int(now.Month()), uuid.NewString(), art.Filename)
	if err := uc.archive.Put(ctx, key, art.Path); err != nil {
		uc.log.Error().Err(err).Str("key", key).Msg("no se pudo archivar el artefacto")
		return ""
	}
	return key
}

func batchResult(err error) string {
	switch {
	case err == nil:
		return BatchOK
	case errors.Is(err, domain.ErrUnreadableFile):
		return BatchUnreadable
	case errors.Is(err, domain.ErrNoValidRecords):
		return BatchNoRecords
	case errors.Is(err, domain.ErrMissingColumn):
		return BatchBadColumns
	default:
		return BatchError
	}
}
