// Package csvexport escribe el registro de pagos por empleado en CSV.
package csvexport

import (
	"context"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/jhoicas/paystats/internal/application/dto"
)

// Entry una fila del CSV.
type Entry struct {
	ID         string `csv:"id"`
	Name       string `csv:"name"`
	Department string `csv:"department"`
	Category   string `csv:"category"`
	Pay        string `csv:"pay"`
}

// Entries filas en el orden del archivo de entrada.
type Entries []Entry

// ToCSV serializa las filas con encabezado.
func (entries Entries) ToCSV(file *os.File) error {
	return gocsv.MarshalFile(entries, file)
}

// FromRegister convierte el registro del reporte; el pago se escribe con 2 decimales.
func FromRegister(lines []dto.PayLineDTO) Entries {
	entries := make(Entries, 0, len(lines))
	for _, l := range lines {
		entries = append(entries, Entry{
			ID:         l.ID,
			Name:       l.Name,
			Department: l.Department,
			Category:   string(l.Category),
			Pay:        l.Pay.StringFixed(2),
		})
	}
	return entries
}

// RegisterExporter implementa payroll.ReportExporter.
type RegisterExporter struct {
	path string
}

// NewRegisterExporter construye el exportador que escribe en path.
func NewRegisterExporter(path string) *RegisterExporter {
	return &RegisterExporter{path: path}
}

// Name identifica al exportador en errores y logs.
func (e *RegisterExporter) Name() string { return "csv" }

// Export crea (o trunca) el archivo y escribe el registro completo.
func (e *RegisterExporter) Export(_ context.Context, report *dto.PayReportDTO) error {
	f, err := os.Create(e.path)
	if err != nil {
		return fmt.Errorf("csv: crear %s: %w", e.path, err)
	}
	defer f.Close()

	if err := FromRegister(report.Register).ToCSV(f); err != nil {
		return fmt.Errorf("csv: escribir %s: %w", e.path, err)
	}
	return f.Close()
}
