package ingestion

import "context"

// ArtifactArchive guarda una copia del artefacto generado (p. ej. bucket S3/MinIO).
// Put recibe la ruta local del archivo y la clave de destino.
type ArtifactArchive interface {
	Put(ctx context.Context, key, path string) error
}

// Recorder recibe los contadores del pipeline (Prometheus en producción).
type Recorder interface {
	IngestionBatch(result string)
	IngestionRows(outcome string, n int)
}

// Resultados de lote reportados a Recorder.
const (
	BatchOK         = "ok"
	BatchUnreadable = "unreadable"
	BatchNoRecords  = "no_records"
	BatchBadColumns = "missing_column"
	BatchError      = "error"
)

// OutcomeAccepted es la etiqueta de filas aceptadas; las rechazadas usan su motivo.
const OutcomeAccepted = "accepted"

type nopRecorder struct{}

func (nopRecorder) IngestionBatch(string)     {}
func (nopRecorder) IngestionRows(string, int) {}
