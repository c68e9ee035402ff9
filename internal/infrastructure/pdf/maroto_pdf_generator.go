// Package pdf genera la constancia de confirmación de un evento de bienestar aprobado.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa              │  CONSTANCIA + Fecha emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EVENTO: Nombre / Tipo / Ubicación                          │
//	│  PROVEEDOR: Nombre comercial                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FECHAS: Propuestas, con la confirmada resaltada            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: ID del evento + QR + leyenda                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/Bienestar-api/internal/domain/entity"
	"github.com/jhoicas/Bienestar-api/internal/domain/scheduling"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 20, Green: 110, Blue: 90}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const dateLayout = "02/01/2006"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa events.ConfirmationPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateConfirmationPDF genera el PDF y devuelve sus bytes. Solo acepta eventos aprobados.
func (g *MarotoPDFGenerator) GenerateConfirmationPDF(ctx context.Context, event *entity.Event) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if event == nil || event.Status != entity.StatusApproved || event.ConfirmedDate == nil {
		return nil, fmt.Errorf("pdf: el evento no está confirmado")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Constancia de evento de bienestar", true).
		WithAuthor(event.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(event))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(eventRow(event))
	m.AddRows(vendorRow(event))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(datesRows(event)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(event))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y título + fecha de la última actualización (der).
func headerRow(e *entity.Event) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(e.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Programa de bienestar corporativo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CONSTANCIA DE CONFIRMACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitida: "+e.UpdatedAt.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func eventRow(e *entity.Event) core.Row {
	return row.New(20).Add(
		col.New(12).Add(
			text.New("EVENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(e.EventName, props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 6,
			}),
			text.New(fmt.Sprintf("Tipo: %s   |   Ubicación: %s", e.EventType, e.Location),
				props.Text{Size: 8, Top: 14, Color: colorGray}),
		),
	)
}

func vendorRow(e *entity.Event) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(e.VendorName, "—"), props.Text{Size: 10, Top: 6}),
		),
	)
}

// datesRows: las tres fechas propuestas; la confirmada va en negrita y marcada.
func datesRows(e *entity.Event) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("FECHAS PROPUESTAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for i, d := range e.ProposedDates {
		style := props.Text{Size: 9, Top: 1, Left: 2}
		label := fmt.Sprintf("%d. %s", i+1, d.Format(dateLayout))
		if scheduling.SameDay(d, *e.ConfirmedDate) {
			style.Style = fontstyle.Bold
			style.Color = colorPrimary
			label += "   (confirmada)"
		}
		rows = append(rows, row.New(6).Add(col.New(12).Add(text.New(label, style))))
	}
	return rows
}

// footerRow: QR con el ID del evento y leyenda.
func footerRow(e *entity.Event) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(e.ID, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(9).Add(
			text.New("ID del evento: "+e.ID, props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Fecha confirmada: "+e.ConfirmedDate.Format(dateLayout), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 14, Left: 3, Color: colorPrimary,
			}),
			text.New("Documento generado automáticamente. Conserve esta constancia como soporte de la reserva.",
				props.Text{Size: 7, Top: 26, Left: 3, Color: colorGray}),
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
