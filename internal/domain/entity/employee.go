package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/paystats/internal/domain/payroll"
)

// Employee contrato común de las tres variantes de empleado.
// Pay es una función pura de los campos de la variante.
type Employee interface {
	Info() Person
	Category() Category
	Pay() decimal.Decimal
	String() string
}

// Person datos comunes leídos del archivo.
type Person struct {
	ID          string
	Name        string
	Address     string
	Phone       string
	SIN         int64 // número de seguro social
	DateOfBirth string
	Department  string
}

func (p Person) describe() string {
	return fmt.Sprintf("ID: %s, Name: %s, Address: %s, Phone: %s, SIN: %d, DOB: %s, Dept: %s",
		p.ID, p.Name, p.Address, p.Phone, p.SIN, p.DateOfBirth, p.Department)
}

// Salaried empleado con salario fijo semanal.
type Salaried struct {
	Person
	salary decimal.Decimal
}

// NewSalaried construye un asalariado.
func NewSalaried(p Person, salary decimal.Decimal) *Salaried {
	return &Salaried{Person: p, salary: salary}
}

func (e *Salaried) Info() Person                { return e.Person }
func (e *Salaried) Category() Category          { return CategorySalaried }
func (e *Salaried) Pay() decimal.Decimal        { return payroll.FlatPay(e.salary) }
func (e *Salaried) Salary() decimal.Decimal     { return e.salary }
func (e *Salaried) SetSalary(v decimal.Decimal) { e.salary = v }

func (e *Salaried) String() string {
	return fmt.Sprintf("%s, Salary: %s", e.describe(), e.salary)
}

// hourly campos compartidos por Wages y PartTime.
type hourly struct {
	rate  decimal.Decimal
	hours decimal.Decimal
}

func (h *hourly) Rate() decimal.Decimal      { return h.rate }
func (h *hourly) Hours() decimal.Decimal     { return h.hours }
func (h *hourly) SetRate(v decimal.Decimal)  { h.rate = v }
func (h *hourly) SetHours(v decimal.Decimal) { h.hours = v }

// Wages empleado por horas con recargo sobre las 40 horas.
type Wages struct {
	Person
	hourly
}

// NewWages construye un empleado por horas.
func NewWages(p Person, rate, hours decimal.Decimal) *Wages {
	return &Wages{Person: p, hourly: hourly{rate: rate, hours: hours}}
}

func (e *Wages) Info() Person         { return e.Person }
func (e *Wages) Category() Category   { return CategoryWages }
func (e *Wages) Pay() decimal.Decimal { return payroll.OvertimePay(e.rate, e.hours) }

func (e *Wages) String() string {
	return fmt.Sprintf("%s, Hourly Rate: %s, Hours Worked: %s", e.describe(), e.rate, e.hours)
}

// PartTime empleado de medio tiempo; nunca recibe recargo.
type PartTime struct {
	Person
	hourly
}

// NewPartTime construye un empleado de medio tiempo.
func NewPartTime(p Person, rate, hours decimal.Decimal) *PartTime {
	return &PartTime{Person: p, hourly: hourly{rate: rate, hours: hours}}
}

func (e *PartTime) Info() Person         { return e.Person }
func (e *PartTime) Category() Category   { return CategoryPartTime }
func (e *PartTime) Pay() decimal.Decimal { return payroll.HourlyPay(e.rate, e.hours) }

func (e *PartTime) String() string {
	return fmt.Sprintf("%s, Hourly Rate: %s, Hours Worked: %s", e.describe(), e.rate, e.hours)
}

// New construye la variante que corresponde a Classify(p.ID).
// Para Salaried, rateOrSalary es el salario y hours se ignora.
func New(p Person, rateOrSalary, hours decimal.Decimal) Employee {
	switch Classify(p.ID) {
	case CategorySalaried:
		return NewSalaried(p, rateOrSalary)
	case CategoryPartTime:
		return NewPartTime(p, rateOrSalary, hours)
	default:
		return NewWages(p, rateOrSalary, hours)
	}
}
