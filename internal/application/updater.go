// internal/application/updater.go
package application

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"hr-voice-tools/internal/common/logger"
	"hr-voice-tools/internal/common/metrics"
	"hr-voice-tools/internal/store"
)

// Updater imitates a downstream applicant tracking system for demos: on a
// fixed interval it rewrites every application with a random status and the
// derived fields that status implies. It runs as a single task on one
// goroutine, so a slow sweep delays the next tick instead of overlapping it.
// Production deployments keep it disabled via simulation.enabled.
type Updater struct {
	store    *store.Store
	interval time.Duration
	logger   logger.Logger
	rng      *rand.Rand
}

var (
	timeframeOptions = []string{"1 week", "2 weeks", "3 days", "Immediate"}
	rejectionReasons = []string{
		"Skills did not match requirements",
		"Insufficient experience",
		"Position filled",
		"Better suited candidates available",
	}
)

func NewUpdater(st *store.Store, interval time.Duration, log logger.Logger) *Updater {
	return &Updater{
		store:    st,
		interval: interval,
		logger:   log.WithFields(map[string]interface{}{"task": "status-simulation"}),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run sweeps on every tick until the context is canceled.
func (u *Updater) Run(ctx context.Context) {
	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	u.logger.Info("status simulation started", map[string]interface{}{
		"interval": u.interval.String(),
	})

	for {
		select {
		case <-ctx.Done():
			u.logger.Info("status simulation stopped", nil)
			return
		case <-ticker.C:
			updated, err := u.Sweep()
			if err != nil {
				u.logger.Warn("status sweep failed", map[string]interface{}{"error": err.Error()})
				continue
			}
			u.logger.Debug("status sweep finished", map[string]interface{}{"updated": updated})
		}
	}
}

// Sweep rewrites every application record once and reports how many changed.
func (u *Updater) Sweep() (int, error) {
	entries, err := u.store.Find("*")
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, e := range entries {
		var rec Record
		if err := json.Unmarshal(e.Raw, &rec); err != nil {
			continue
		}

		u.assign(&rec)
		rec.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

		if err := u.store.Write(e.Key, &rec); err != nil {
			u.logger.Warn("status write failed", map[string]interface{}{
				"key":   e.Key,
				"error": err.Error(),
			})
			continue
		}
		metrics.SimulationRecordsUpdated.Inc()
		updated++
	}
	return updated, nil
}

// assign picks a uniform random status and sets the derived fields that are
// consistent with it; rejection details exist only on rejected records.
func (u *Updater) assign(rec *Record) {
	status := Statuses[u.rng.Intn(len(Statuses))]
	rec.Status = status
	rec.RejectionReason = ""
	rec.ReapplyPossible = ""

	switch status {
	case StatusSubmitted:
		rec.ResumeReviewed = "Not yet"
		rec.ResponseTimeframe = "2 weeks"
	case StatusInReview:
		rec.ResumeReviewed = []string{"In Progress", "Completed"}[u.rng.Intn(2)]
		rec.ResponseTimeframe = timeframeOptions[u.rng.Intn(len(timeframeOptions))]
	case StatusInterviewScheduled:
		rec.ResumeReviewed = "Completed"
		rec.ResponseTimeframe = "1 week"
	case StatusSelected:
		rec.ResumeReviewed = "Completed"
		rec.ResponseTimeframe = "Immediate"
	case StatusRejected:
		rec.ResumeReviewed = "Completed"
		rec.ResponseTimeframe = "Closed"
		rec.RejectionReason = rejectionReasons[u.rng.Intn(len(rejectionReasons))]
		rec.ReapplyPossible = []string{"Yes", "No"}[u.rng.Intn(2)]
	}
}
