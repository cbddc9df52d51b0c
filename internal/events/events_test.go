package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	msg, err := encode(Event{
		Type:       TypePaymentRecorded,
		GroupID:    "g1",
		ActorID:    "u2",
		OccurredAt: at,
		Payload:    PaymentPayload{PaymentID: "p1", FromUserID: "u2", ToUserID: "u1", Amount: "15.00"},
	})
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp091.Persistent, msg.DeliveryMode)
	assert.Equal(t, TypePaymentRecorded, msg.Type)
	assert.Equal(t, at, msg.Timestamp)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, "g1", decoded["group_id"])
	payload := decoded["payload"].(map[string]any)
	assert.Equal(t, "15.00", payload["amount"])
	assert.Equal(t, "u1", payload["to_user_id"])
}

func TestRecorder(t *testing.T) {
	var r Recorder
	ctx := context.Background()

	require.NoError(t, r.Publish(ctx, Event{Type: TypeExpenseCreated, GroupID: "g1"}))
	require.NoError(t, r.Publish(ctx, Event{Type: TypeExpenseDeleted, GroupID: "g1"}))
	require.NoError(t, r.Publish(ctx, Event{Type: TypeExpenseCreated, GroupID: "g2"}))

	assert.Len(t, r.Events(), 3)
	created := r.OfType(TypeExpenseCreated)
	require.Len(t, created, 2)
	assert.Equal(t, "g2", created[1].GroupID)
}

func TestNop(t *testing.T) {
	var p Publisher = Nop{}
	assert.NoError(t, p.Publish(context.Background(), Event{Type: TypeExpenseCreated}))
	assert.NoError(t, p.Close())
}
