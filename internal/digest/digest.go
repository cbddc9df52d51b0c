// Package digest periodically publishes the outstanding settlement plan of
// every group.
package digest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/events"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/storage"
)

// DefaultSchedule runs the digest every Monday at 09:00.
const DefaultSchedule = "0 9 * * 1"

const runTimeout = 2 * time.Minute

// Store is the storage the digest reads from.
type Store interface {
	storage.GroupStore
	storage.LedgerStore
}

// Scheduler runs the digest job on a cron schedule.
type Scheduler struct {
	cron      *cron.Cron
	store     Store
	publisher events.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewScheduler creates a scheduler that runs the digest on the given
// five-field cron schedule.
func NewScheduler(schedule string, store Store, publisher events.Publisher, logger *slog.Logger) (*Scheduler, error) {
	cl := cronLogger{logger: logger}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		store:     store,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}

	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("register digest job %q: %w", schedule, err)
	}
	return s, nil
}

// Start starts the cron scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Digest scheduler started")
}

// Stop stops the scheduler and waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
	s.logger.Info("Digest scheduler stopped")
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	published, err := s.RunOnce(ctx)
	if err != nil {
		s.logger.Error("Digest run failed", "error", err, "published", published)
		return
	}
	s.logger.Info("Digest run complete", "published", published)
}

// RunOnce publishes a settlement.digest event for every group that has
// outstanding settlements and returns how many were published.
// A group whose ledger cannot be computed is logged and skipped.
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		return 0, fmt.Errorf("list groups: %w", err)
	}

	published := 0
	for _, group := range groups {
		snap, err := ledger.Compute(ctx, s.store, group.ID)
		if err != nil {
			s.logger.Warn("Skipping group in digest", "group_id", group.ID, "error", err)
			continue
		}
		if len(snap.Settlements) == 0 {
			continue
		}

		err = s.publisher.Publish(ctx, events.Event{
			Type:       events.TypeSettlementDigest,
			GroupID:    group.ID,
			OccurredAt: s.now(),
			Payload:    digestPayload(group.Name, snap.Settlements),
		})
		if err != nil {
			return published, fmt.Errorf("publish digest for group %s: %w", group.ID, err)
		}
		published++
	}
	return published, nil
}

func digestPayload(groupName string, plan []calculator.Settlement) events.DigestPayload {
	payload := events.DigestPayload{
		GroupName:   groupName,
		Settlements: make([]events.DigestSettlement, len(plan)),
	}
	for i, st := range plan {
		payload.Settlements[i] = events.DigestSettlement{
			From:   st.From,
			To:     st.To,
			Amount: calculator.FormatAmount(st.Amount),
		}
	}
	return payload
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
