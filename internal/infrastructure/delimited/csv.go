// Package delimited implementa las exportaciones de texto plano (csv y txt).
package delimited

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jhoicas/geocadastro-api/internal/application/export"
	"github.com/jhoicas/geocadastro-api/internal/domain/entity"
)

// csvHeader columnas del csv de exportación.
var csvHeader = []string{"ID", "Unidade", "Código Cliente", "Latitude", "Longitude", "Data Cadastro"}

// CSVFormatter exporta con cabecera, separador ',' y fin de línea LF.
type CSVFormatter struct{}

var _ export.Formatter = CSVFormatter{}

// NewCSVFormatter construye el formateador csv.
func NewCSVFormatter() CSVFormatter { return CSVFormatter{} }

func (CSVFormatter) Format() string      { return export.FormatCSV }
func (CSVFormatter) Extension() string   { return "csv" }
func (CSVFormatter) ContentType() string { return "text/csv; charset=utf-8" }

// Render escribe la cabecera y una fila por registro. Sin registros: solo cabecera.
func (CSVFormatter) Render(_ context.Context, r export.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("csv: cabecera: %w", err)
	}
	for _, c := range r.Records {
		if err := w.Write([]string{
			strconv.FormatInt(c.ID, 10),
			c.Unidade.String(),
			c.CodigoCliente,
			c.Latitude.StringFixed(entity.CoordinateScale),
			c.Longitude.StringFixed(entity.CoordinateScale),
			c.DataCadastro.Format("02/01/2006"),
		}); err != nil {
			return nil, fmt.Errorf("csv: fila %d: %w", c.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	return buf.Bytes(), nil
}
