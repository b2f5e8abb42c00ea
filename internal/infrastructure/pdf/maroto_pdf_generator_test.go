package pdf_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/paystats/internal/application/dto"
	"github.com/jhoicas/paystats/internal/domain/entity"
	"github.com/jhoicas/paystats/internal/infrastructure/pdf"
)

func sampleReport() *dto.PayReportDTO {
	return &dto.PayReportDTO{
		RunID:       "run-pdf",
		GeneratedAt: time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC),
		Load:        dto.LoadSummaryDTO{Source: "employees.txt", Lines: 2, Loaded: 2},
		AveragePay:  decimal.NewFromInt(750),
		HighestWage: dto.PayResultDTO{Name: "Walter", Pay: decimal.NewFromInt(1100), Found: true},
		Categories: dto.CategoryShares{
			{Category: entity.CategorySalaried, Count: 0, Percent: 0},
			{Category: entity.CategoryWages, Count: 1, Percent: 50},
			{Category: entity.CategoryPartTime, Count: 1, Percent: 50},
		},
		Register: []dto.PayLineDTO{
			{ID: "5", Name: "Walter", Department: "Planta", Category: entity.CategoryWages, Pay: decimal.NewFromInt(1100)},
			{ID: "9", Name: "Pedro", Department: "Tienda", Category: entity.CategoryPartTime, Pay: decimal.NewFromInt(400)},
		},
	}
}

func TestGenerate_ProducePDF(t *testing.T) {
	doc, err := pdf.NewMarotoPDFGenerator("").Generate(context.Background(), sampleReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "el documento debe iniciar con la firma PDF")
}

func TestExport_EscribeArchivo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reporte.pdf")
	gen := pdf.NewMarotoPDFGenerator(path)
	assert.Equal(t, "pdf", gen.Name())

	require.NoError(t, gen.Export(context.Background(), sampleReport()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
