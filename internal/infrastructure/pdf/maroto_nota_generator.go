// Package pdf implementa la generación del documento de cobro de una nota
// de venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + RFC  │  Folio + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre comercial / Correo / Teléfono              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | Precio Unitario | Importe         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/tu-usuario/notas-venta-api/internal/application/notas"
	"github.com/tu-usuario/notas-venta-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ notas.GeneradorNotaPDF = (*MarotoNotaGenerator)(nil)

// MarotoNotaGenerator implementa notas.GeneradorNotaPDF usando Maroto v2.
type MarotoNotaGenerator struct{}

// NewMarotoNotaGenerator construye el generador.
func NewMarotoNotaGenerator() *MarotoNotaGenerator { return &MarotoNotaGenerator{} }

// GenerarNotaPDF genera el PDF de la nota y devuelve sus bytes.
func (g *MarotoNotaGenerator) GenerarNotaPDF(
	_ context.Context,
	cliente *entity.Cliente,
	folio string,
	lineas []notas.LineaNotaPDF,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Nota de Venta "+folio, true).
		WithAuthor(cliente.RazonSocial, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(cliente, folio))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(cliente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de partidas
	m.AddRows(tableHeaderRow())
	for _, r := range tableLineaRows(lineas) {
		m.AddRows(r)
	}

	// Total
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(sumarImportes(lineas)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social + RFC (izq) y folio + fecha (der).
func headerRow(cliente *entity.Cliente, folio string) core.Row {
	fecha := time.Now().Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(cliente.RazonSocial, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("RFC: "+cliente.RFC, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("NOTA DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(folio, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clienteRow: identidad completa del cliente.
func clienteRow(cliente *entity.Cliente) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("DATOS DEL CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(cliente.NombreComercial, cliente.RazonSocial), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Correo: %s   |   Tel: %s",
				nonEmpty(cliente.CorreoElectronico, "—"),
				nonEmpty(cliente.Telefono, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de partidas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Precio Unitario", 2, align.Right),
		h("Importe", 3, align.Right),
	)
}

// tableLineaRows: una fila por partida.
func tableLineaRows(lineas []notas.LineaNotaPDF) []core.Row {
	result := make([]core.Row, 0, len(lineas))
	for _, l := range lineas {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Cantidad),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				l.Producto,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+l.PrecioUnitario.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+l.Importe.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total de la nota alineado a la derecha.
func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 1,
			}),
		),
		col.New(3).Add(
			text.New("$"+total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 1,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func sumarImportes(lineas []notas.LineaNotaPDF) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lineas {
		total = total.Add(l.Importe)
	}
	return total
}
