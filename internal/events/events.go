// Package events publishes ledger changes to interested consumers.
package events

import (
	"context"
	"sync"
	"time"
)

// Event types. They double as AMQP routing keys.
const (
	TypeExpenseCreated   = "expense.created"
	TypeExpenseDeleted   = "expense.deleted"
	TypePaymentRecorded  = "payment.recorded"
	TypeSettlementDigest = "settlement.digest"
)

// Event is one ledger change. Payload is one of the payload types below.
type Event struct {
	Type       string    `json:"type"`
	GroupID    string    `json:"group_id"`
	ActorID    string    `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

// ExpensePayload describes a created or deleted expense.
type ExpensePayload struct {
	ExpenseID    string   `json:"expense_id"`
	Description  string   `json:"description"`
	Amount       string   `json:"amount"`
	PayerID      string   `json:"payer_id"`
	Participants []string `json:"participants"`
}

// PaymentPayload describes a recorded payment.
type PaymentPayload struct {
	PaymentID  string `json:"payment_id"`
	FromUserID string `json:"from_user_id"`
	ToUserID   string `json:"to_user_id"`
	Amount     string `json:"amount"`
}

// DigestPayload is the outstanding settlement plan of a group.
type DigestPayload struct {
	GroupName   string             `json:"group_name"`
	Settlements []DigestSettlement `json:"settlements"`
}

type DigestSettlement struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Nop discards every event. Used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *Recorder) Close() error { return nil }

// Events returns a copy of everything published so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// OfType returns the recorded events with the given type.
func (r *Recorder) OfType(eventType string) []Event {
	var out []Event
	for _, e := range r.Events() {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}
