package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/desertthunder/infosys/internal/formatter"
	"github.com/desertthunder/infosys/internal/metrics"
	"github.com/desertthunder/infosys/internal/repositories"
)

type outcomeRow struct {
	Sequence   int64  `json:"sequence"`
	RequestID  string `json:"request_id"`
	Kind       string `json:"kind"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
	CreatedAt  string `json:"created_at"`
}

// Outcomes lists recent entries of the outcome log.
func (r *Runner) Outcomes(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := repositories.NewOutcomeRepository(db).List(map[string]any{
		"status": cmd.String("status"),
		"kind":   cmd.String("kind"),
		"limit":  int(cmd.Int("limit")),
	})
	if err != nil {
		return err
	}

	if !cmd.Bool("json") {
		return r.writePlain("%s", formatter.OutcomesText(records))
	}

	rows := make([]outcomeRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, outcomeRow{
			Sequence:   rec.Sequence(),
			RequestID:  rec.RequestID(),
			Kind:       rec.Kind(),
			Status:     rec.Status(),
			Error:      rec.Error(),
			DurationMS: rec.Duration().Milliseconds(),
			CreatedAt:  rec.CreatedAt().Format(time.RFC3339),
		})
	}
	return r.writeJSON(rows, true)
}

// Stats prints outcome counts from the log and the metrics gathered by this process.
func (r *Runner) Stats(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	counts, err := repositories.NewOutcomeRepository(db).CountByStatus()
	if err != nil {
		return err
	}
	samples, err := metrics.Snapshot(prometheus.DefaultGatherer)
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(map[string]any{"outcomes": counts, "metrics": samples}, true)
	}

	r.writePlain("Outcomes by status\n")
	for status, n := range counts {
		r.writePlain("  %-22s %d\n", status, n)
	}
	if len(samples) == 0 {
		return nil
	}
	return r.writePlain("\n%s", formatter.SamplesText(samples))
}
