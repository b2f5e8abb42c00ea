// Package cli expone el caso de uso de estadísticas como comando de consola.
package cli

import (
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jhoicas/paystats/internal/application/payroll"
	"github.com/jhoicas/paystats/internal/infrastructure/csvexport"
	"github.com/jhoicas/paystats/internal/infrastructure/flatfile"
	"github.com/jhoicas/paystats/internal/infrastructure/pdf"
	"github.com/jhoicas/paystats/pkg/config"
	"github.com/jhoicas/paystats/pkg/logger"
)

// NewRootCommand construye el comando paystats.
// Sin argumentos lee employees.txt del directorio de trabajo; el reporte va a
// stdout y los logs a stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "paystats",
		Short:         "Estadísticas de pago semanal a partir de un archivo de empleados",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd, cfg, stdout, stderr)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config, stdout, stderr io.Writer) error {
	ctx := cmd.Context()
	runID := uuid.NewString()
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		Out:   stderr,
	}).WithRun(runID)

	log.Debug().
		Str("file", cfg.Input.File).
		Str("mode", cfg.Input.Mode).
		Str("encoding", cfg.Input.Encoding).
		Msg("iniciando paystats")

	source := flatfile.NewReader(cfg.Input, log)
	uc := payroll.NewReportUseCase(source, runID, exporters(cfg.Export)...)

	report, err := uc.Generate(ctx)
	if err != nil {
		log.Error().Err(err).Msg("generar reporte")
		return err
	}
	if err := WriteReport(stdout, report); err != nil {
		return err
	}
	if err := uc.Export(ctx, report); err != nil {
		log.Error().Err(err).Msg("exportar reporte")
		return err
	}

	log.Info().
		Int("employees", report.Load.Loaded).
		Int("skipped", report.Load.Skipped).
		Msg("reporte generado")
	return nil
}

func exporters(cfg config.ExportConfig) []payroll.ReportExporter {
	var out []payroll.ReportExporter
	if cfg.PDFPath != "" {
		out = append(out, pdf.NewMarotoPDFGenerator(cfg.PDFPath))
	}
	if cfg.CSVPath != "" {
		out = append(out, csvexport.NewRegisterExporter(cfg.CSVPath))
	}
	return out
}
