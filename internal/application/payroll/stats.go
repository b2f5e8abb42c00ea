// Package payroll contiene los casos de uso de estadísticas de pago sobre la
// colección de empleados cargada.
package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/paystats/internal/application/dto"
	"github.com/jhoicas/paystats/internal/domain"
	"github.com/jhoicas/paystats/internal/domain/entity"
)

// Stats vista de solo lectura sobre la colección completa.
// Cada consulta es un recorrido filtrar-y-reducir; no guarda estado intermedio.
type Stats struct {
	employees []entity.Employee
}

// NewStats construye la vista. La colección no se copia ni se modifica.
func NewStats(employees []entity.Employee) *Stats {
	return &Stats{employees: employees}
}

// Len número de registros.
func (s *Stats) Len() int { return len(s.employees) }

// AveragePay promedio de Pay() sobre todos los registros.
func (s *Stats) AveragePay() (decimal.Decimal, error) {
	if len(s.employees) == 0 {
		return decimal.Zero, domain.ErrEmptyCollection
	}
	total := decimal.Zero
	for _, e := range s.employees {
		total = total.Add(e.Pay())
	}
	return total.Div(decimal.NewFromInt(int64(len(s.employees)))), nil
}

// HighestWagePay empleado Wages con mayor pago; en empate gana el primero.
func (s *Stats) HighestWagePay() dto.PayResultDTO {
	return s.extreme(entity.CategoryWages, func(candidate, best decimal.Decimal) bool {
		return candidate.GreaterThan(best)
	})
}

// LowestSalariedPay empleado Salaried con menor pago; en empate gana el primero.
func (s *Stats) LowestSalariedPay() dto.PayResultDTO {
	return s.extreme(entity.CategorySalaried, func(candidate, best decimal.Decimal) bool {
		return candidate.LessThan(best)
	})
}

// extreme recorre en orden y reemplaza sólo con desigualdad estricta,
// por lo que el primer empleado encontrado gana los empates.
func (s *Stats) extreme(c entity.Category, better func(candidate, best decimal.Decimal) bool) dto.PayResultDTO {
	var res dto.PayResultDTO
	for _, e := range s.employees {
		if e.Category() != c {
			continue
		}
		pay := e.Pay()
		if !res.Found || better(pay, res.Pay) {
			res = dto.PayResultDTO{Name: e.Info().Name, Pay: pay, Found: true}
		}
	}
	return res
}

// Counts número de registros por categoría.
func (s *Stats) Counts() map[entity.Category]int {
	counts := make(map[entity.Category]int, len(entity.Categories))
	for _, c := range entity.Categories {
		counts[c] = 0
	}
	for _, e := range s.employees {
		counts[e.Category()]++
	}
	return counts
}

// CategoryPercentages porcentaje (0–100) de registros por categoría,
// en el orden Salaried, Wages, PartTime.
func (s *Stats) CategoryPercentages() (dto.CategoryShares, error) {
	total := len(s.employees)
	if total == 0 {
		return nil, domain.ErrEmptyCollection
	}
	counts := s.Counts()
	shares := make(dto.CategoryShares, 0, len(entity.Categories))
	for _, c := range entity.Categories {
		shares = append(shares, dto.CategoryShareDTO{
			Category: c,
			Count:    counts[c],
			Percent:  float64(counts[c]) * 100.0 / float64(total),
		})
	}
	return shares, nil
}

// Register una fila por empleado en el orden de carga.
func (s *Stats) Register() []dto.PayLineDTO {
	lines := make([]dto.PayLineDTO, 0, len(s.employees))
	for _, e := range s.employees {
		info := e.Info()
		lines = append(lines, dto.PayLineDTO{
			ID:         info.ID,
			Name:       info.Name,
			Department: info.Department,
			Category:   e.Category(),
			Pay:        e.Pay(),
		})
	}
	return lines
}
