// Package pdf implementa el reporte de geolocalización en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Relatório de Geolocalização - {unidade}             │
//	│  Emitido em: dd/mm/aaaa às hh:mm                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Latitude | Longitude | Unidade | Data       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Total de registros: N                      Página x de y    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/geocadastro-api/internal/application/export"
	"github.com/jhoicas/geocadastro-api/internal/domain/entity"
)

// pdfCoordinateScale decimales de latitud/longitud en el reporte.
const pdfCoordinateScale = 10

const allUnitsTitle = "Todas as Unidades"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 54, Green: 96, Blue: 146}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 242, Green: 242, Blue: 242}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa export.Formatter para "pdf".
type MarotoReportGenerator struct{}

var _ export.Formatter = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

func (g *MarotoReportGenerator) Format() string      { return export.FormatPDF }
func (g *MarotoReportGenerator) Extension() string   { return "pdf" }
func (g *MarotoReportGenerator) ContentType() string { return "application/pdf" }

// Render genera el reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) Render(_ context.Context, r export.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(reportTitle(r.Unidade), true).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    8,
			Color:   colorGray,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRows(r)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.4}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(r.Records)...)

	m.AddRows(row.New(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(r.Records)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func reportTitle(u entity.Unidade) string {
	label := allUnitsTitle
	if u != "" {
		label = u.String()
	}
	return "Relatório de Geolocalização - " + label
}

func titleRows(r export.Report) []core.Row {
	emitted := r.GeneratedAt.Format("02/01/2006") + " às " + r.GeneratedAt.Format("15:04")
	return []core.Row{
		row.New(12).Add(col.New(12).Add(
			text.New(reportTitle(r.Unidade), props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center, Color: colorPrimary, Top: 2,
			}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New("Emitido em: "+emitted, props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 1,
			}),
		)),
	}
}

// tableHeaderRow cabecera con fondo azul y texto blanco.
func tableHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center,
			Color: colorWhite, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Código Cliente", 3),
		h("Latitude", 2),
		h("Longitude", 2),
		h("Unidade", 3),
		h("Data Cadastro", 2),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRows una fila por registro, con fondo alternado.
func tableRows(records []*entity.Cliente) []core.Row {
	result := make([]core.Row, 0, len(records))
	for i, c := range records {
		cell := func(s string, size int) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: align.Center, Top: 1.5}))
		}
		r := row.New(7).Add(
			cell(c.CodigoCliente, 3),
			cell(Coordinate(c.Latitude), 2),
			cell(Coordinate(c.Longitude), 2),
			cell(c.Unidade.String(), 3),
			cell(c.DataCadastro.Format("02/01/2006"), 2),
		)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, r)
	}
	return result
}

func footerRow(total int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de registros: %d", total), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 2,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// Coordinate formatea con 10 decimales redondeando al par; cero se muestra como "N/A".
func Coordinate(d decimal.Decimal) string {
	if d.IsZero() {
		return "N/A"
	}
	return d.StringFixedBank(pdfCoordinateScale)
}
