// Package pdf genera el reporte de estadísticas de pago en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + archivo fuente  │  fecha + run id          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: promedio / mayor Wages / menor Salaried            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DISTRIBUCIÓN: categoría | registros | %                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  REGISTRO: ID | Nombre | Depto | Categoría | Pago            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: líneas leídas / cargadas / descartadas              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"os"
	"strconv"

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

	"github.com/jhoicas/paystats/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa payroll.ReportExporter usando Maroto v2.
type MarotoPDFGenerator struct {
	path string
}

// NewMarotoPDFGenerator construye el generador que escribe en path.
func NewMarotoPDFGenerator(path string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{path: path}
}

// Name identifica al exportador en errores y logs.
func (g *MarotoPDFGenerator) Name() string { return "pdf" }

// Export genera el PDF y lo escribe en disco.
func (g *MarotoPDFGenerator) Export(ctx context.Context, report *dto.PayReportDTO) error {
	doc, err := g.Generate(ctx, report)
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.path, doc, 0o644); err != nil {
		return fmt.Errorf("pdf: escribir %s: %w", g.path, err)
	}
	return nil
}

// Generate genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) Generate(_ context.Context, report *dto.PayReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Employee Pay Statistics", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(report)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("DISTRIBUCIÓN POR CATEGORÍA"))
	m.AddRows(categoryRows(report.Categories)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("REGISTRO DE PAGOS"))
	m.AddRows(registerHeaderRow())
	m.AddRows(registerRows(report.Register)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(report.Load))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + archivo (izq) y fecha + run id (der).
func headerRow(report *dto.PayReportDTO) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ESTADÍSTICAS DE PAGO SEMANAL", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Archivo: "+nonEmpty(report.Load.Source, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Run: "+nonEmpty(report.RunID, "—"), props.Text{
				Size: 7, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func summaryRows(report *dto.PayReportDTO) []core.Row {
	kv := func(label, value string) core.Row {
		return row.New(6).Add(
			col.New(5).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
			col.New(7).Add(text.New(value, props.Text{Size: 9, Top: 1})),
		)
	}
	return []core.Row{
		kv("Pago semanal promedio:", report.AveragePay.String()),
		kv("Mayor pago Wages:", describeResult(report.HighestWage)),
		kv("Menor salario Salaried:", describeResult(report.LowestSalaried)),
	}
}

func sectionTitle(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
	))
}

func categoryRows(shares dto.CategoryShares) []core.Row {
	rows := make([]core.Row, 0, len(shares))
	for _, s := range shares {
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(string(s.Category), props.Text{Size: 9, Top: 1})),
			col.New(4).Add(text.New(strconv.Itoa(s.Count)+" registros", props.Text{
				Size: 9, Align: align.Right, Top: 1,
			})),
			col.New(4).Add(text.New(strconv.FormatFloat(s.Percent, 'f', 2, 64)+"%", props.Text{
				Size: 9, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return rows
}

// registerHeaderRow: cabecera de la tabla de empleados.
func registerHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("ID", 2, align.Left),
		h("Nombre", 4, align.Left),
		h("Depto.", 2, align.Left),
		h("Categoría", 2, align.Left),
		h("Pago", 2, align.Right),
	)
}

// registerRows: una fila por empleado, en el orden del archivo.
func registerRows(lines []dto.PayLineDTO) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{
				Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
			}))
		}
		result = append(result, row.New(6).Add(
			cell(l.ID, 2, align.Left),
			cell(l.Name, 4, align.Left),
			cell(l.Department, 2, align.Left),
			cell(string(l.Category), 2, align.Left),
			cell(l.Pay.StringFixed(2), 2, align.Right),
		))
	}
	return result
}

func footerRow(load dto.LoadSummaryDTO) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Líneas leídas: %d   |   Registros cargados: %d   |   Líneas descartadas: %d",
			load.Lines, load.Loaded, load.Skipped,
		), props.Text{Size: 7, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func describeResult(r dto.PayResultDTO) string {
	if !r.Found {
		return "sin empleados en la categoría"
	}
	return r.Pay.String() + " (" + r.Name + ")"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
