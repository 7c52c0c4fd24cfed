package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vcscsvcscs/guttracker/internal/notify"
	"github.com/vcscsvcscs/guttracker/internal/service"
)

// scoreOutput is a scored day plus its rendered notification text
type scoreOutput struct {
	service.ScoreResult
	Message string `json:"message"`
}

func (a *app) statsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print period statistics as JSON",
		Long: `Print daily summaries, period statistics and weekday patterns for the
last 7, 30 or 90 days, today included. Other periods fall back to 7.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := a.stats(a.v.GetInt("days"))
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}
	cmd.Flags().IntP("days", "d", service.DefaultPeriod, "Period length in days (7, 30 or 90)")
	return cmd
}

func (a *app) stats(days int) *service.StatsResult {
	period := service.NormalizePeriod(days)
	if period != days {
		a.logger.Warn("invalid days parameter, defaulting to 7", zap.Int("days", days))
	}

	end := a.today()
	start := a.engine.AddDays(end, -(period - 1))

	return &service.StatsResult{
		Period:   period,
		Start:    start,
		End:      end,
		Analysis: a.engine.Analyze(a.export.Records(), start, end),
	}
}

func (a *app) scoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Print the health score of one day as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := a.today()
			if date := a.v.GetString("date"); date != "" {
				parsed, err := time.ParseInLocation(dateLayout, date, a.engine.Location())
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
				day = parsed
			}
			if day.After(a.today()) {
				return fmt.Errorf("date %s is in the future", day.Format(dateLayout))
			}

			snapshot := a.engine.DaySnapshot(a.export.Records(), day)
			msg := notify.NewComposer(a.catalog).DailyScore(snapshot.Score, notify.DefaultDailyScoreHour, 0, a.v.GetString("lang"))

			return writeJSON(cmd.OutOrStdout(), scoreOutput{
				ScoreResult: service.ScoreResult{Date: day, Snapshot: snapshot},
				Message:     msg.Body,
			})
		},
	}
	cmd.Flags().String("date", "", "Day to score (YYYY-MM-DD, default today)")
	return cmd
}
