package moderation

import (
	"context"
	"fmt"
	"time"

	"github.com/AegisWorks/AegisBotGo/pkg/errors"
	"github.com/AegisWorks/AegisBotGo/pkg/logger"
)

// Escalator runs the warning state machine: every violation increments the
// persisted counter, and every increment that lands at or past the
// threshold triggers an automatic mute. The counter is not reset when a
// mute expires; only an explicit reset zeroes it, so a user who keeps
// violating is muted again on each further warning.
type Escalator struct {
	store        *Store
	scheduler    *Scheduler
	notify       Notifier
	threshold    int
	muteDuration time.Duration
}

// NewEscalator wires the store and scheduler together. Threshold and mute
// duration come from configuration.
func NewEscalator(store *Store, scheduler *Scheduler, notify Notifier, threshold int, muteDuration time.Duration) *Escalator {
	return &Escalator{
		store:        store,
		scheduler:    scheduler,
		notify:       notify,
		threshold:    threshold,
		muteDuration: muteDuration,
	}
}

// OnViolation records one warning against the subject and escalates to a
// mute when the new count reaches the threshold. It returns the new count
// and whether a mute was applied. A persistence failure is surfaced to the
// operator but does not stop the escalation; a role failure does.
func (e *Escalator) OnViolation(ctx context.Context, subject Subject, reason string) (int, bool, error) {
	count, persistErr := e.store.Increment(ctx, subject.UserID)
	if persistErr != nil {
		logger.Warn(fmt.Sprintf("Warning count for %s not yet durable: %v", subject.UserID, persistErr), "Escalation")
		if h := errors.Get(); h != nil {
			h.Report(errors.ReportErrorOptions{
				Error:   "PersistenceFailure",
				Message: fmt.Sprintf("Warning count for user %s (now %d) could not be written: %v", subject.UserID, count, persistErr),
			})
		}
	}

	e.notify.WarningRecorded(subject, reason, count)

	if count < e.threshold {
		return count, false, nil
	}

	if _, err := e.scheduler.Apply(subject, e.muteDuration); err != nil {
		return count, false, err
	}
	e.notify.AutoMuteApplied(subject)
	return count, true, nil
}

// Threshold returns the configured escalation threshold
func (e *Escalator) Threshold() int {
	return e.threshold
}
