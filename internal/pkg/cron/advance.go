package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/staffbook/staffbook-backend-go/internal/domain/advance"
)

// AdvanceJobs wires the repayment reminder into the scheduler.
type AdvanceJobs struct {
	advanceService advance.AdvanceService
}

func NewAdvanceJobs(advanceService advance.AdvanceService) *AdvanceJobs {
	return &AdvanceJobs{advanceService: advanceService}
}

func (j *AdvanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("repayment_reminders", 24*time.Hour, j.RemindDueRepayments)
}

// RemindDueRepayments nudges staff about installments due today or
// earlier. Delivery failures are handled inside the service, so a run
// only errors when the pending list itself cannot be loaded.
func (j *AdvanceJobs) RemindDueRepayments(ctx context.Context) error {
	sent, err := j.advanceService.NotifyDueRepayments(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	if sent > 0 {
		slog.Info("Cron: sent repayment reminders", "reminders_sent", sent)
	}

	return nil
}
