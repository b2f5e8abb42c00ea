package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/paystats/internal/application/dto"
)

// ReportUseCase carga la colección completa y arma el reporte de estadísticas.
//
// Flujo: EmployeeSource.Load → Stats → PayReportDTO → exportadores opcionales.
// Cualquier agregado sobre una colección vacía devuelve domain.ErrEmptyCollection.
type ReportUseCase struct {
	source    EmployeeSource
	exporters []ReportExporter
	runID     string
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(source EmployeeSource, runID string, exporters ...ReportExporter) *ReportUseCase {
	return &ReportUseCase{
		source:    source,
		exporters: exporters,
		runID:     runID,
		now:       time.Now,
	}
}

// Generate lee el origen y calcula todos los agregados.
func (uc *ReportUseCase) Generate(ctx context.Context) (*dto.PayReportDTO, error) {
	loaded, err := uc.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar empleados: %w", err)
	}

	stats := NewStats(loaded.Employees)

	avg, err := stats.AveragePay()
	if err != nil {
		return nil, fmt.Errorf("pago promedio: %w", err)
	}
	shares, err := stats.CategoryPercentages()
	if err != nil {
		return nil, fmt.Errorf("porcentajes por categoría: %w", err)
	}

	return &dto.PayReportDTO{
		RunID:          uc.runID,
		GeneratedAt:    uc.now(),
		Load:           loaded.Summary,
		AveragePay:     avg,
		HighestWage:    stats.HighestWagePay(),
		LowestSalaried: stats.LowestSalariedPay(),
		Categories:     shares,
		Register:       stats.Register(),
	}, nil
}

// Export envía el reporte a cada exportador configurado, en orden.
// Se detiene en el primer error.
func (uc *ReportUseCase) Export(ctx context.Context, report *dto.PayReportDTO) error {
	for _, exp := range uc.exporters {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := exp.Export(ctx, report); err != nil {
			return fmt.Errorf("exportar %s: %w", exp.Name(), err)
		}
	}
	return nil
}
