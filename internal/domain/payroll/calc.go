// Package payroll contiene las fórmulas de pago semanal (servicio de dominio).
package payroll

import "github.com/shopspring/decimal"

// Jornada semanal regular y recargo por horas extra.
var (
	RegularHours       = decimal.NewFromInt(40)
	OvertimeMultiplier = decimal.NewFromFloat(1.5)
)

// FlatPay pago fijo de un asalariado.
func FlatPay(salary decimal.Decimal) decimal.Decimal {
	return salary
}

// HourlyPay tarifa × horas, sin recargo.
func HourlyPay(rate, hours decimal.Decimal) decimal.Decimal {
	return rate.Mul(hours)
}

// OvertimePay aplica el recargo a las horas por encima de la jornada regular.
// Pago = Tarifa × 40 + (Horas − 40) × Tarifa × 1.5
func OvertimePay(rate, hours decimal.Decimal) decimal.Decimal {
	if hours.LessThanOrEqual(RegularHours) {
		return HourlyPay(rate, hours)
	}
	regular := rate.Mul(RegularHours)
	overtime := hours.Sub(RegularHours).Mul(rate.Mul(OvertimeMultiplier))
	return regular.Add(overtime)
}
