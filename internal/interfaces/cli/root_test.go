package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/paystats/internal/domain"
	"github.com/jhoicas/paystats/internal/interfaces/cli"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const employeesTxt = `1:Sara:Calle 1:555-0100:111111111:1985-01-01:Finanzas:1000
5:Walter:Calle 2:555-0101:222222222:1990-02-02:Planta:20:50
9:Pedro:Calle 3:555-0102:333333333:2000-03-03:Tienda:15:10
`

const expectedReport = "Average Weekly Pay: 750\n" +
	"Highest Wage Pay: 1100, Employee Name: Walter\n" +
	"Lowest Salary: 1000, Employee Name: Sara\n" +
	"Salaried Employees: 33.333333333333336%\n" +
	"Wages Employees: 33.333333333333336%\n" +
	"PartTime Employees: 33.333333333333336%\n"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCommand(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeEmployees(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "employees.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRoot_SinArgumentosLeeEmployeesTxt(t *testing.T) {
	dir := t.TempDir()
	writeEmployees(t, dir, employeesTxt)
	t.Chdir(dir)

	out, _, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, expectedReport, out)
}

func TestRoot_ArchivoInexistente(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := execute(t)
	require.ErrorIs(t, err, domain.ErrFileNotFound)
	assert.Empty(t, out, "no se imprime reporte parcial")
}

func TestRoot_EstrictoFallaConLineaCorta(t *testing.T) {
	path := writeEmployees(t, t.TempDir(), employeesTxt+"6:Corta:Calle:555:1\n")

	_, _, err := execute(t, "--file", path)
	require.ErrorIs(t, err, domain.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "línea 4")
}

func TestRoot_LenientDescartaLaLinea(t *testing.T) {
	path := writeEmployees(t, t.TempDir(), employeesTxt+"6:Corta:Calle:555:1\n")

	out, logs, err := execute(t, "--file", path, "--mode", "lenient", "--env", "production")
	require.NoError(t, err)
	assert.Equal(t, expectedReport, out)
	assert.Contains(t, logs, "línea descartada")
	assert.Contains(t, logs, `"skipped":1`)
}

func TestRoot_ArchivoVacio(t *testing.T) {
	path := writeEmployees(t, t.TempDir(), "")

	_, _, err := execute(t, "--file", path)
	assert.ErrorIs(t, err, domain.ErrEmptyCollection)
}

func TestRoot_RechazaArgumentos(t *testing.T) {
	_, _, err := execute(t, "otro.txt")
	assert.Error(t, err)
}

func TestRoot_ExportaPDFyCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeEmployees(t, dir, employeesTxt)
	pdfPath := filepath.Join(dir, "report.pdf")
	csvPath := filepath.Join(dir, "register.csv")

	out, _, err := execute(t, "--file", path, "--pdf", pdfPath, "--csv", csvPath)
	require.NoError(t, err)
	assert.Equal(t, expectedReport, out)

	doc, err := os.ReadFile(pdfPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(doc), "%PDF"))

	csv, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(csv), "5,Walter,Planta,Wages,1100.00")
}
