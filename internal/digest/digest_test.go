package digest

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/events"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage/sqlite"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewScheduler_RejectsBadSchedule(t *testing.T) {
	_, err := NewScheduler("every tuesday", nil, events.Nop{}, discardLogger())
	assert.Error(t, err)
}

func TestRunOnce(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "digest.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	ctx := context.Background()

	trip := &models.Group{Name: "Trip", CreatedBy: "A", Members: []string{"A", "B", "C"}}
	require.NoError(t, store.CreateGroup(ctx, trip))
	settled := &models.Group{Name: "Settled", CreatedBy: "A", Members: []string{"A", "B"}}
	require.NoError(t, store.CreateGroup(ctx, settled))

	for _, e := range []*models.Expense{
		{GroupID: trip.ID, Description: "Dinner", Amount: decimal.NewFromInt(90), PayerID: "A", Participants: []string{"A", "B", "C"}},
		{GroupID: trip.ID, Description: "Taxi", Amount: decimal.NewFromInt(30), PayerID: "B", Participants: []string{"B", "C"}},
		{GroupID: settled.ID, Description: "Coffee", Amount: decimal.NewFromInt(10), PayerID: "A", Participants: []string{"A"}},
	} {
		require.NoError(t, store.CreateExpense(ctx, e))
	}

	recorder := &events.Recorder{}
	scheduler, err := NewScheduler(DefaultSchedule, store, recorder, discardLogger())
	require.NoError(t, err)

	published, err := scheduler.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, published)

	digests := recorder.OfType(events.TypeSettlementDigest)
	require.Len(t, digests, 1)
	assert.Equal(t, trip.ID, digests[0].GroupID)

	payload, ok := digests[0].Payload.(events.DigestPayload)
	require.True(t, ok)
	assert.Equal(t, "Trip", payload.GroupName)
	assert.Equal(t, []events.DigestSettlement{
		{From: "C", To: "A", Amount: "45.00"},
		{From: "B", To: "A", Amount: "15.00"},
	}, payload.Settlements)
}

func TestStartStop(t *testing.T) {
	scheduler, err := NewScheduler(DefaultSchedule, nil, events.Nop{}, discardLogger())
	require.NoError(t, err)

	scheduler.Start()
	scheduler.Stop(context.Background())
}
