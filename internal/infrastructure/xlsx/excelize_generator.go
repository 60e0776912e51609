// Package xlsx genera la exportación en planilla OOXML con excelize.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/geocadastro-api/internal/application/export"
	"github.com/jhoicas/geocadastro-api/internal/domain/entity"
)

// SheetName nombre de la hoja de datos.
const SheetName = "Clientes Geolocalização"

var (
	header      = []any{"ID", "Unidade", "Código Cliente", "Latitude", "Longitude", "Data Cadastro"}
	columnWidth = map[string]float64{"A": 8, "B": 15, "C": 18, "D": 20, "E": 20, "F": 12}
)

// ExcelizeGenerator implementa export.Formatter para el formato "excel".
type ExcelizeGenerator struct{}

var _ export.Formatter = (*ExcelizeGenerator)(nil)

// NewExcelizeGenerator construye el generador.
func NewExcelizeGenerator() *ExcelizeGenerator { return &ExcelizeGenerator{} }

func (g *ExcelizeGenerator) Format() string    { return export.FormatExcel }
func (g *ExcelizeGenerator) Extension() string { return "xlsx" }
func (g *ExcelizeGenerator) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render arma la hoja: cabecera con estilo, una fila por registro,
// anchos fijos, cabecera congelada y autofiltro cuando hay datos.
// Las coordenadas van como texto con la escala almacenada; un float64 las truncaría.
func (g *ExcelizeGenerator) Render(_ context.Context, r export.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: nombrar hoja: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: cabecera: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"366092"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "F1", style); err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}

	for i, c := range r.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{
			c.ID,
			c.Unidade.String(),
			c.CodigoCliente,
			c.Latitude.StringFixed(entity.CoordinateScale),
			c.Longitude.StringFixed(entity.CoordinateScale),
			c.DataCadastro.Format("02/01/2006"),
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", c.ID, err)
		}
	}

	for col, w := range columnWidth {
		if err := f.SetColWidth(SheetName, col, col, w); err != nil {
			return nil, fmt.Errorf("xlsx: ancho %s: %w", col, err)
		}
	}

	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("xlsx: congelar cabecera: %w", err)
	}

	if n := len(r.Records); n > 0 {
		if err := f.AutoFilter(SheetName, fmt.Sprintf("A1:F%d", n+1), nil); err != nil {
			return nil, fmt.Errorf("xlsx: autofiltro: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}
