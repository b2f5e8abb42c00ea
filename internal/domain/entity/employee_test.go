package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/paystats/internal/domain/entity"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestClassify_RangosDePrefijo(t *testing.T) {
	cases := map[string]entity.Category{
		"0":      entity.CategorySalaried,
		"1001":   entity.CategorySalaried,
		"2xx":    entity.CategorySalaried,
		"3":      entity.CategorySalaried,
		"49":     entity.CategorySalaried,
		"5":      entity.CategoryWages,
		"6123":   entity.CategoryWages,
		"7":      entity.CategoryWages,
		"8":      entity.CategoryPartTime,
		"91":     entity.CategoryPartTime,
		"A12":    entity.CategoryWages,
		"-1":     entity.CategoryWages,
		"":       entity.CategoryWages,
		"  12  ": entity.CategorySalaried,
		" 9":     entity.CategoryPartTime,
	}
	for id, want := range cases {
		assert.Equal(t, want, entity.Classify(id), "id %q", id)
	}
}

func TestCategories_OrdenFijo(t *testing.T) {
	assert.Equal(t, []entity.Category{
		entity.CategorySalaried, entity.CategoryWages, entity.CategoryPartTime,
	}, entity.Categories)
}

func TestNew_CreaLaVarianteCorrecta(t *testing.T) {
	s := entity.New(entity.Person{ID: "1"}, dec(1000), dec(0))
	_, ok := s.(*entity.Salaried)
	require.True(t, ok, "ID 1 debe ser Salaried")

	w := entity.New(entity.Person{ID: "5"}, dec(20), dec(50))
	_, ok = w.(*entity.Wages)
	require.True(t, ok, "ID 5 debe ser Wages")

	p := entity.New(entity.Person{ID: "9"}, dec(15), dec(10))
	_, ok = p.(*entity.PartTime)
	require.True(t, ok, "ID 9 debe ser PartTime")
}

func TestWages_Pay(t *testing.T) {
	w := entity.NewWages(entity.Person{ID: "5"}, dec(10), dec(40))
	assert.True(t, w.Pay().Equal(dec(400)), "obtuvo %s", w.Pay())

	w = entity.NewWages(entity.Person{ID: "5"}, dec(10), dec(45))
	assert.True(t, w.Pay().Equal(dec(475)), "obtuvo %s", w.Pay())
}

func TestPartTime_PaySinHorasExtra(t *testing.T) {
	p := entity.NewPartTime(entity.Person{ID: "8"}, dec(10), dec(45))
	assert.True(t, p.Pay().Equal(dec(450)), "obtuvo %s", p.Pay())
}

func TestSalaried_Pay(t *testing.T) {
	s := entity.NewSalaried(entity.Person{ID: "2"}, dec(1234.5))
	assert.True(t, s.Pay().Equal(dec(1234.5)))
}

func TestPay_EsDeterminista(t *testing.T) {
	w := entity.NewWages(entity.Person{ID: "6"}, dec(18), dec(52))
	first := w.Pay()
	for i := 0; i < 3; i++ {
		assert.True(t, first.Equal(w.Pay()))
	}
}

func TestSetters_ActualizanElPago(t *testing.T) {
	w := entity.NewWages(entity.Person{ID: "5"}, dec(10), dec(10))
	w.SetHours(dec(20))
	w.SetRate(dec(5))
	assert.True(t, w.Pay().Equal(dec(100)))
	assert.True(t, w.Hours().Equal(dec(20)))
	assert.True(t, w.Rate().Equal(dec(5)))

	s := entity.NewSalaried(entity.Person{ID: "1"}, dec(10))
	s.SetSalary(dec(99))
	assert.True(t, s.Pay().Equal(dec(99)))
	assert.True(t, s.Salary().Equal(dec(99)))
}

func TestString_IncluyeCamposDeLaVariante(t *testing.T) {
	p := entity.Person{
		ID: "5001", Name: "Ana Gómez", Address: "Calle 1", Phone: "555-0101",
		SIN: 123456789, DateOfBirth: "1990-01-01", Department: "Ops",
	}
	w := entity.NewWages(p, dec(20), dec(50))
	assert.Equal(t,
		"ID: 5001, Name: Ana Gómez, Address: Calle 1, Phone: 555-0101, SIN: 123456789, "+
			"DOB: 1990-01-01, Dept: Ops, Hourly Rate: 20, Hours Worked: 50",
		w.String())

	s := entity.NewSalaried(p, dec(1000))
	assert.Contains(t, s.String(), "Salary: 1000")
	assert.Equal(t, "Ana Gómez", s.Info().Name)
	assert.Equal(t, entity.CategorySalaried, s.Category())
}
