package csvexport_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/paystats/internal/application/dto"
	"github.com/jhoicas/paystats/internal/domain/entity"
	"github.com/jhoicas/paystats/internal/infrastructure/csvexport"
)

func TestFromRegister(t *testing.T) {
	entries := csvexport.FromRegister([]dto.PayLineDTO{
		{ID: "1", Name: "Sara", Department: "Finanzas", Category: entity.CategorySalaried, Pay: decimal.NewFromInt(1000)},
	})
	require.Len(t, entries, 1)
	assert.Equal(t, csvexport.Entry{
		ID: "1", Name: "Sara", Department: "Finanzas", Category: "Salaried", Pay: "1000.00",
	}, entries[0])
}

func TestExport_EscribeEncabezadoYFilas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "register.csv")
	exp := csvexport.NewRegisterExporter(path)
	assert.Equal(t, "csv", exp.Name())

	report := &dto.PayReportDTO{Register: []dto.PayLineDTO{
		{ID: "5", Name: "Walter, Jr.", Department: "Planta", Category: entity.CategoryWages, Pay: decimal.RequireFromString("1100.5")},
		{ID: "9", Name: "Pedro", Department: "Tienda", Category: entity.CategoryPartTime, Pay: decimal.NewFromInt(150)},
	}}
	require.NoError(t, exp.Export(context.Background(), report))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,name,department,category,pay", lines[0])
	assert.Equal(t, `5,"Walter, Jr.",Planta,Wages,1100.50`, lines[1])
	assert.Equal(t, "9,Pedro,Tienda,PartTime,150.00", lines[2])
}
