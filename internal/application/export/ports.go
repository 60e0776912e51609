package export

import (
	"context"
	"time"

	"github.com/jhoicas/geocadastro-api/internal/domain/entity"
)

// Formatos de exportación soportados.
const (
	FormatExcel = "excel"
	FormatCSV   = "csv"
	FormatPDF   = "pdf"
	FormatTXT   = "txt"
)

// Formats devuelve los formatos conocidos, estén o no habilitados.
func Formats() []string {
	return []string{FormatExcel, FormatCSV, FormatPDF, FormatTXT}
}

// Report datos de entrada de un formateador.
type Report struct {
	Records     []*entity.Cliente
	Unidade     entity.Unidade // vacío = todas las unidades
	GeneratedAt time.Time
}

// Formatter serializa registros a un formato descargable.
// Render debe ser determinista salvo por GeneratedAt.
type Formatter interface {
	Format() string
	Extension() string
	ContentType() string
	Render(ctx context.Context, r Report) ([]byte, error)
}

// Recorder contador de exportaciones por formato.
type Recorder interface {
	ExportRendered(format string)
}

type nopRecorder struct{}

func (nopRecorder) ExportRendered(string) {}
