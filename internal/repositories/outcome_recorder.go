package repositories

import (
	"github.com/charmbracelet/log"

	"github.com/desertthunder/infosys/internal/infosystem"
	"github.com/desertthunder/infosys/internal/models"
	"github.com/desertthunder/infosys/internal/shared"
)

// OutcomeRecorderAdapter implements infosystem.OutcomeRecorder using [OutcomeRepository].
//
// Persistence failures are logged and swallowed so they never affect request handling.
type OutcomeRecorderAdapter struct {
	repo   *OutcomeRepository
	logger *log.Logger
}

// NewOutcomeRecorderAdapter creates a new OutcomeRecorderAdapter with the given repository
func NewOutcomeRecorderAdapter(repo *OutcomeRepository, logger *log.Logger) *OutcomeRecorderAdapter {
	if logger == nil {
		logger = shared.DiscardLogger()
	}
	return &OutcomeRecorderAdapter{repo: repo, logger: logger}
}

// RecordOutcome persists o.
func (a *OutcomeRecorderAdapter) RecordOutcome(o infosystem.Outcome) {
	record := models.NewOutcomeRecord("", o.RequestID, o.Kind.String(), string(o.Status))
	record.SetDuration(o.Duration)
	if o.Err != nil {
		record.SetError(o.Err.Error())
	}

	if err := a.repo.Create(record); err != nil {
		a.logger.Warn("failed to record outcome", "request_id", o.RequestID, "error", err)
	}
}

var (
	_ infosystem.OutcomeRecorder               = (*OutcomeRecorderAdapter)(nil)
	_ infosystem.AccountStore                  = (*AccountRepository)(nil)
	_ models.Repository[*models.OutcomeRecord] = (*OutcomeRepository)(nil)
)
