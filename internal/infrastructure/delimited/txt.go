package delimited

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/geocadastro-api/internal/application/export"
	"github.com/jhoicas/geocadastro-api/internal/domain/entity"
)

// TXTFormatter exporta "cliente;latitud;longitud" por línea, sin cabecera.
type TXTFormatter struct{}

var _ export.Formatter = TXTFormatter{}

// NewTXTFormatter construye el formateador txt.
func NewTXTFormatter() TXTFormatter { return TXTFormatter{} }

func (TXTFormatter) Format() string      { return export.FormatTXT }
func (TXTFormatter) Extension() string   { return "txt" }
func (TXTFormatter) ContentType() string { return "text/plain; charset=utf-8" }

// Render sin registros devuelve cero bytes.
func (TXTFormatter) Render(_ context.Context, r export.Report) ([]byte, error) {
	var buf bytes.Buffer
	for _, c := range r.Records {
		if _, err := fmt.Fprintf(&buf, "%s;%s;%s\n", c.CodigoCliente, CompactCoordinate(c.Latitude), CompactCoordinate(c.Longitude)); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// CompactCoordinate formatea con 15 decimales y quita ceros y punto finales.
// -23.123450000000000 → "-23.12345"; 0 → "0".
func CompactCoordinate(d decimal.Decimal) string {
	s := d.StringFixed(entity.CoordinateScale)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "" || s == "-0" {
		return "0"
	}
	return s
}
