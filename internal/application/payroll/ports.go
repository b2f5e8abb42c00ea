package payroll

import (
	"context"

	"github.com/jhoicas/paystats/internal/application/dto"
	"github.com/jhoicas/paystats/internal/domain/entity"
)

// LoadResult empleados en orden de archivo más el resumen de la lectura.
type LoadResult struct {
	Employees []entity.Employee
	Summary   dto.LoadSummaryDTO
}

// EmployeeSource origen de la colección (implementado por infrastructure/flatfile).
// Debe leer todo el origen antes de devolver; no hay procesamiento parcial.
type EmployeeSource interface {
	Load(ctx context.Context) (*LoadResult, error)
}

// ReportExporter destino adicional del reporte (PDF, CSV).
type ReportExporter interface {
	Name() string
	Export(ctx context.Context, report *dto.PayReportDTO) error
}
