package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vcscsvcscs/guttracker/internal/pdf"
	"github.com/vcscsvcscs/guttracker/internal/report"
	"github.com/vcscsvcscs/guttracker/pkg/model"
)

func (a *app) reportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a period report as text or PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := model.ReportFormat(a.v.GetString("format"))
			if !format.Valid() {
				return fmt.Errorf("unsupported format %q, want text or pdf", format)
			}

			data, err := a.render(format, a.v.GetInt("days"))
			if err != nil {
				return err
			}

			out := a.v.GetString("output")
			if out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			a.logger.Info("report written", zap.String("path", out), zap.Int("size_bytes", len(data)))
			return nil
		},
	}
	cmd.Flags().IntP("days", "d", 30, "Period length in days (7, 30 or 90)")
	cmd.Flags().String("format", string(model.ReportFormatText), "Report format: text or pdf")
	cmd.Flags().StringP("output", "o", "-", "Output file (- for stdout)")
	return cmd
}

func (a *app) render(format model.ReportFormat, days int) ([]byte, error) {
	result := a.stats(days)

	if format == model.ReportFormatText {
		tr := a.catalog.Translator(a.v.GetString("lang"))
		return []byte(report.Text(tr, result.Analysis, result.Start, result.End)), nil
	}

	return pdf.NewPDFGenerator(a.logger).Generate(&pdf.ReportData{
		Start:       result.Start,
		End:         result.End,
		Analysis:    result.Analysis,
		Medications: a.export.ActiveMedications(),
		GeneratedAt: a.now(),
	})
}
