package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/paystats/internal/domain/entity"
)

// PayResultDTO empleado con el pago extremo de una categoría.
// Found=false cuando la colección no tiene empleados de esa categoría.
type PayResultDTO struct {
	Name  string          `json:"name"`
	Pay   decimal.Decimal `json:"pay"`
	Found bool            `json:"found"`
}

// CategoryShareDTO participación de una categoría sobre el total de registros.
type CategoryShareDTO struct {
	Category entity.Category `json:"category"`
	Count    int             `json:"count"`
	Percent  float64         `json:"percent"` // 0–100
}

// CategoryShares participaciones en el orden de entity.Categories.
type CategoryShares []CategoryShareDTO

// Get devuelve la participación de la categoría indicada.
func (s CategoryShares) Get(c entity.Category) (CategoryShareDTO, bool) {
	for _, share := range s {
		if share.Category == c {
			return share, true
		}
	}
	return CategoryShareDTO{}, false
}

// PayLineDTO una fila del registro de pagos (orden del archivo).
type PayLineDTO struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Department string          `json:"department"`
	Category   entity.Category `json:"category"`
	Pay        decimal.Decimal `json:"pay"`
}

// LoadSummaryDTO resultado de la lectura del archivo.
type LoadSummaryDTO struct {
	Source  string `json:"source"`
	Lines   int    `json:"lines"`   // líneas no vacías leídas
	Loaded  int    `json:"loaded"`  // registros válidos
	Skipped int    `json:"skipped"` // líneas descartadas en modo lenient
}

// PayReportDTO reporte completo de estadísticas de pago.
type PayReportDTO struct {
	RunID          string          `json:"run_id"`
	GeneratedAt    time.Time       `json:"generated_at"`
	Load           LoadSummaryDTO  `json:"load"`
	AveragePay     decimal.Decimal `json:"average_pay"`
	HighestWage    PayResultDTO    `json:"highest_wage"`
	LowestSalaried PayResultDTO    `json:"lowest_salaried"`
	Categories     CategoryShares  `json:"categories"`
	Register       []PayLineDTO    `json:"register"`
}
