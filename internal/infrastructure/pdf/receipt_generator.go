// Package pdf implementa la generación del recibo de pago de una sesión.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del estudio  │  RECIBO DE PAGO + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SESIÓN: título, tipo, fecha y lugar                         │
//	│  CLIENTE: nombre + contacto                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Concepto | Monto (historial de abonos)       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Precio total / Abonado / SALDO PENDIENTE           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/tu-usuario/studio-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 35, Green: 31, Blue: 82}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReceiptGenerator implementa scheduling.ReceiptGenerator usando Maroto v2.
type ReceiptGenerator struct {
	studioName string
}

// NewReceiptGenerator construye el generador con el nombre del estudio del header.
func NewReceiptGenerator(studioName string) *ReceiptGenerator {
	return &ReceiptGenerator{studioName: studioName}
}

// GenerateReceipt genera el recibo de pago de la sesión y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateReceipt(
	_ context.Context,
	shoot *entity.Shoot,
	customer *entity.Customer,
	payments []*entity.Transaction,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de pago", true).
		WithAuthor(g.studioName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.studioName, shoot))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(shootRow(shoot))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range paymentRows(payments) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(shoot))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del estudio (izq) y título del recibo + fecha de emisión (der).
func headerRow(studioName string, shoot *entity.Shoot) core.Row {
	fecha := shoot.UpdatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(studioName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Estudio fotográfico", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// shootRow: datos de la sesión.
func shootRow(shoot *entity.Shoot) core.Row {
	detalle := shoot.StartDateTime.Format("02/01/2006 15:04")
	if shoot.Location != "" {
		detalle += "   |   " + shoot.Location
	}
	if shoot.Type != "" {
		detalle += "   |   " + shoot.Type
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("SESIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(shoot.Title, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(detalle, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// customerRow: datos del cliente. Si el cliente fue eliminado se omite el contacto.
func customerRow(customer *entity.Customer) core.Row {
	name := "Cliente no registrado"
	contacto := ""
	if customer != nil {
		name = customer.Name
		contacto = fmt.Sprintf("Tel: %s   |   Email: %s",
			nonEmpty(customer.Phone, "-"),
			nonEmpty(customer.Email, "-"),
		)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(contacto, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de abonos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 3, align.Left),
		h("Concepto", 6, align.Left),
		h("Monto", 3, align.Right),
	)
}

// paymentRows: una fila por abono registrado, en orden cronológico.
func paymentRows(payments []*entity.Transaction) []core.Row {
	if len(payments) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin abonos registrados", props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: colorGray,
			}),
		))}
	}
	result := make([]core.Row, 0, len(payments))
	for _, p := range payments {
		concepto := p.Description
		if concepto == "" {
			concepto = p.Category
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				p.Date.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(6).Add(text.New(
				concepto,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(p.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(shoot *entity.Shoot) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Precio total:"),
			label("Abonado:"),
			grandLabel("SALDO PENDIENTE:"),
		),
		col.New(4).Add(
			value("$"+formatMoney(shoot.TotalPrice)),
			value("$"+formatMoney(shoot.Deposit)),
			grandValue("$"+formatMoney(shoot.Remaining())),
		),
		col.New(1),
	)
}

// footerRow: leyenda de cierre.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Este recibo refleja los abonos registrados a la fecha de emisión. "+
				"Conserve este documento como soporte de pago.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea un monto con puntos de miles y coma decimal.
// Ej: 25000 → "25.000,00", 1234.5 → "1.234,50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	entero, dec, _ := strings.Cut(s, ".")

	n := len(entero)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(entero) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := string(buf) + "," + dec
	if neg {
		out = "-" + out
	}
	return out
}
