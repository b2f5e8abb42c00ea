package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jhoicas/paystats/internal/application/dto"
)

// noneLabel nombre que se imprime cuando no hay empleados de la categoría.
const noneLabel = "none"

// WriteReport imprime el reporte en el formato de consola:
//
//	Average Weekly Pay: <valor>
//	Highest Wage Pay: <valor>, Employee Name: <nombre>
//	Lowest Salary: <valor>, Employee Name: <nombre>
//	<Categoría> Employees: <porcentaje>%   (Salaried, Wages, PartTime)
func WriteReport(w io.Writer, report *dto.PayReportDTO) error {
	highPay, highName := payAndName(report.HighestWage)
	lowPay, lowName := payAndName(report.LowestSalaried)

	lines := []string{
		fmt.Sprintf("Average Weekly Pay: %s", report.AveragePay.String()),
		fmt.Sprintf("Highest Wage Pay: %s, Employee Name: %s", highPay, highName),
		fmt.Sprintf("Lowest Salary: %s, Employee Name: %s", lowPay, lowName),
	}
	for _, share := range report.Categories {
		lines = append(lines, fmt.Sprintf("%s Employees: %s%%",
			share.Category, strconv.FormatFloat(share.Percent, 'f', -1, 64)))
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func payAndName(r dto.PayResultDTO) (string, string) {
	if !r.Found {
		return "0", noneLabel
	}
	return r.Pay.String(), r.Name
}
