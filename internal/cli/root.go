// Package cli implements gutstats, an offline command line front end to the
// analytics engine that reads a JSON data export.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/vcscsvcscs/guttracker/internal/analytics"
	"github.com/vcscsvcscs/guttracker/internal/locale"
	"github.com/vcscsvcscs/guttracker/internal/logging"
)

const dateLayout = "2006-01-02"

// app carries the state shared by the subcommands
type app struct {
	v       *viper.Viper
	now     func() time.Time
	logger  *zap.Logger
	engine  *analytics.Engine
	catalog *locale.Catalog
	export  *Export
}

// NewRootCommand builds the gutstats command tree. Every flag can also be
// set through a GUTSTATS_ environment variable, e.g. GUTSTATS_TZ.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), now: time.Now}
	return a.rootCommand()
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "gutstats",
		Short: "Offline gut health statistics",
		Long: `gutstats reads a GutTracker JSON export and prints period statistics,
daily health scores or a full report, computed the same way as the server.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringP("file", "f", "-", "Export file to read (- for stdin)")
	root.PersistentFlags().String("tz", "UTC", "IANA time zone that defines calendar days")
	root.PersistentFlags().String("today", "", "Treat this date (YYYY-MM-DD) as today")
	root.PersistentFlags().String("lang", "en", "Language of localized output")
	root.PersistentFlags().String("log-level", "warn", "Log level")

	a.v.SetEnvPrefix("GUTSTATS")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	_ = a.v.BindPFlags(root.PersistentFlags())

	root.AddCommand(a.statsCommand(), a.scoreCommand(), a.reportCommand())
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	logger, err := logging.New("development", a.v.GetString("log-level"), "console")
	if err != nil {
		return err
	}
	a.logger = logger

	loc, err := time.LoadLocation(a.v.GetString("tz"))
	if err != nil {
		return fmt.Errorf("invalid time zone %q: %w", a.v.GetString("tz"), err)
	}
	a.engine = analytics.NewEngine(loc)

	if today := a.v.GetString("today"); today != "" {
		day, err := time.ParseInLocation(dateLayout, today, loc)
		if err != nil {
			return fmt.Errorf("invalid --today: %w", err)
		}
		a.now = func() time.Time { return day }
	}

	a.catalog, err = locale.NewCatalog()
	if err != nil {
		return err
	}

	a.export, err = ReadExport(a.v.GetString("file"), cmd.InOrStdin())
	if err != nil {
		return err
	}

	a.logger.Debug("export loaded",
		zap.Int("bowel_movements", len(a.export.BowelMovements)),
		zap.Int("symptoms", len(a.export.Symptoms)),
		zap.Int("medication_logs", len(a.export.MedicationLogs)),
		zap.String("timezone", loc.String()),
	)
	return nil
}

func (a *app) today() time.Time {
	return a.engine.StartOfDay(a.now())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
