package service

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/splitledger/internal/events"
	pb "github.com/mmynk/splitledger/pkg/proto"
)

func TestAddExpense(t *testing.T) {
	env := setupTestServer(t)

	group, alice, bob, carol := env.roommates(t)

	expense := env.addExpense(t, alice, group.Id, "Groceries", "100", alice, bob, carol)
	assert.NotEmpty(t, expense.Id)
	assert.Equal(t, "100.00", expense.Amount)
	assert.Equal(t, "33.33", expense.ShareAmount)
	assert.Equal(t, alice.Id, expense.PaidBy.Id)
	assert.Equal(t, []string{alice.Id, bob.Id, carol.Id}, memberIDs(expense.Participants))
	assert.NotNil(t, expense.Date)

	created := env.events.OfType(events.TypeExpenseCreated)
	require.Len(t, created, 1)
	assert.Equal(t, group.Id, created[0].GroupID)
	assert.Equal(t, alice.Id, created[0].ActorID)
	payload, ok := created[0].Payload.(events.ExpensePayload)
	require.True(t, ok)
	assert.Equal(t, expense.Id, payload.ExpenseID)
	assert.Equal(t, "100.00", payload.Amount)
}

func TestAddExpense_Validation(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	group, alice, bob, _ := env.roommates(t)
	dave := env.register(t, "dave@example.com", "Dave")

	valid := func() *pb.AddExpenseRequest {
		return &pb.AddExpenseRequest{
			GroupId:        group.Id,
			Description:    "Lunch",
			Amount:         "20",
			ParticipantIds: []string{alice.Id, bob.Id},
		}
	}

	tests := []struct {
		name   string
		caller member
		mutate func(*pb.AddExpenseRequest)
		code   connect.Code
	}{
		{"zero amount", alice, func(r *pb.AddExpenseRequest) { r.Amount = "0" }, connect.CodeInvalidArgument},
		{"amount not a number", alice, func(r *pb.AddExpenseRequest) { r.Amount = "12,50" }, connect.CodeInvalidArgument},
		{"missing amount", alice, func(r *pb.AddExpenseRequest) { r.Amount = "" }, connect.CodeInvalidArgument},
		{"negative amount", alice, func(r *pb.AddExpenseRequest) { r.Amount = "-5" }, connect.CodeInvalidArgument},
		{"no participants", alice, func(r *pb.AddExpenseRequest) { r.ParticipantIds = nil }, connect.CodeInvalidArgument},
		{"duplicate participant", alice, func(r *pb.AddExpenseRequest) { r.ParticipantIds = []string{alice.Id, bob.Id, bob.Id} }, connect.CodeInvalidArgument},
		{"participant outside group", alice, func(r *pb.AddExpenseRequest) { r.ParticipantIds = []string{alice.Id, dave.Id} }, connect.CodeInvalidArgument},
		{"blank description", alice, func(r *pb.AddExpenseRequest) { r.Description = "  " }, connect.CodeInvalidArgument},
		{"caller outside group", dave, func(r *pb.AddExpenseRequest) {}, connect.CodePermissionDenied},
		{"unknown group", alice, func(r *pb.AddExpenseRequest) { r.GroupId = "missing" }, connect.CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			_, err := env.expenses.AddExpense(ctx, as(tt.caller, req))
			requireCode(t, tt.code, err)
		})
	}

	assert.Empty(t, env.events.Events(), "rejected expenses must not publish events")
}

func TestListExpenses(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	group, alice, bob, carol := env.roommates(t)

	for _, e := range []struct {
		description string
		date        int64
	}{
		{"Older", 1_700_000_000},
		{"Newest", 1_700_200_000},
		{"Middle", 1_700_100_000},
	} {
		_, err := env.expenses.AddExpense(ctx, as(bob, &pb.AddExpenseRequest{
			GroupId:        group.Id,
			Description:    e.description,
			Amount:         "10.00",
			ParticipantIds: []string{bob.Id, carol.Id},
			Date:           timestamppb.New(time.Unix(e.date, 0)),
		}))
		require.NoError(t, err)
	}

	resp, err := env.expenses.ListExpenses(ctx, as(alice, &pb.ListExpensesRequest{GroupId: group.Id}))
	require.NoError(t, err)
	require.Len(t, resp.Msg.Expenses, 3)

	var got []string
	for _, e := range resp.Msg.Expenses {
		got = append(got, e.Description)
		assert.Equal(t, "Bob", e.PaidBy.Name)
		assert.Equal(t, "5.00", e.ShareAmount)
	}
	assert.Equal(t, []string{"Newest", "Middle", "Older"}, got)
	assert.Equal(t, int64(1_700_200_000), resp.Msg.Expenses[0].GetDate().GetSeconds())

	dave := env.register(t, "dave@example.com", "Dave")
	_, err = env.expenses.ListExpenses(ctx, as(dave, &pb.ListExpensesRequest{GroupId: group.Id}))
	requireCode(t, connect.CodePermissionDenied, err)
}

func TestDeleteExpense(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	group, alice, bob, carol := env.roommates(t)
	expense := env.addExpense(t, alice, group.Id, "Dinner", "90", alice, bob, carol)

	_, err := env.expenses.DeleteExpense(ctx, as(bob, &pb.DeleteExpenseRequest{ExpenseId: expense.Id}))
	requireCode(t, connect.CodePermissionDenied, err)

	_, err = env.expenses.DeleteExpense(ctx, as(alice, &pb.DeleteExpenseRequest{ExpenseId: expense.Id}))
	require.NoError(t, err)

	_, err = env.expenses.DeleteExpense(ctx, as(alice, &pb.DeleteExpenseRequest{ExpenseId: expense.Id}))
	requireCode(t, connect.CodeNotFound, err)

	deleted := env.events.OfType(events.TypeExpenseDeleted)
	require.Len(t, deleted, 1)
	assert.Equal(t, group.Id, deleted[0].GroupID)

	balances, err := env.groups.GetGroupBalances(ctx, as(alice, &pb.GetGroupBalancesRequest{GroupId: group.Id}))
	require.NoError(t, err)
	for _, b := range balances.Msg.Balances {
		assert.Equal(t, "0.00", b.Balance)
	}
}

func TestRecordPayment(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	group, alice, bob, carol := env.roommates(t)
	env.addExpense(t, alice, group.Id, "Dinner", "90", alice, bob, carol)
	env.addExpense(t, bob, group.Id, "Taxi", "30", bob, carol)

	resp, err := env.expenses.RecordPayment(ctx, as(carol, &pb.RecordPaymentRequest{
		GroupId:  group.Id,
		ToUserId: alice.Id,
		Amount:   "45",
		Note:     "dinner + taxi",
	}))
	require.NoError(t, err)
	assert.Equal(t, carol.Id, resp.Msg.Payment.From.Id)
	assert.Equal(t, alice.Id, resp.Msg.Payment.To.Id)
	assert.Equal(t, "45.00", resp.Msg.Payment.Amount)
	assert.Equal(t, "dinner + taxi", resp.Msg.Payment.Note)

	t.Run("payment is folded into balances and plan", func(t *testing.T) {
		balances, err := env.groups.GetGroupBalances(ctx, as(alice, &pb.GetGroupBalancesRequest{GroupId: group.Id}))
		require.NoError(t, err)
		var got []string
		for _, b := range balances.Msg.Balances {
			got = append(got, b.Balance)
		}
		assert.Equal(t, []string{"15.00", "-15.00", "0.00"}, got)

		plan, err := env.groups.GetSettlementPlan(ctx, as(alice, &pb.GetSettlementPlanRequest{GroupId: group.Id}))
		require.NoError(t, err)
		require.Len(t, plan.Msg.Settlements, 1)
		assert.Equal(t, bob.Id, plan.Msg.Settlements[0].From.Id)
		assert.Equal(t, alice.Id, plan.Msg.Settlements[0].To.Id)
		assert.Equal(t, "15.00", plan.Msg.Settlements[0].Amount)
	})

	t.Run("ListPayments", func(t *testing.T) {
		list, err := env.expenses.ListPayments(ctx, as(bob, &pb.ListPaymentsRequest{GroupId: group.Id}))
		require.NoError(t, err)
		require.Len(t, list.Msg.Payments, 1)
		assert.Equal(t, resp.Msg.Payment.Id, list.Msg.Payments[0].Id)
		assert.Equal(t, "Carol", list.Msg.Payments[0].From.Name)
	})

	t.Run("event published", func(t *testing.T) {
		recorded := env.events.OfType(events.TypePaymentRecorded)
		require.Len(t, recorded, 1)
		payload, ok := recorded[0].Payload.(events.PaymentPayload)
		require.True(t, ok)
		assert.Equal(t, "45.00", payload.Amount)
	})

	dave := env.register(t, "dave@example.com", "Dave")
	tests := []struct {
		name   string
		caller member
		req    *pb.RecordPaymentRequest
		code   connect.Code
	}{
		{"to self", bob, &pb.RecordPaymentRequest{GroupId: group.Id, ToUserId: bob.Id, Amount: "1"}, connect.CodeInvalidArgument},
		{"recipient outside group", bob, &pb.RecordPaymentRequest{GroupId: group.Id, ToUserId: dave.Id, Amount: "1"}, connect.CodeInvalidArgument},
		{"zero amount", bob, &pb.RecordPaymentRequest{GroupId: group.Id, ToUserId: alice.Id, Amount: "0.00"}, connect.CodeInvalidArgument},
		{"amount not a number", bob, &pb.RecordPaymentRequest{GroupId: group.Id, ToUserId: alice.Id, Amount: "ten"}, connect.CodeInvalidArgument},
		{"caller outside group", dave, &pb.RecordPaymentRequest{GroupId: group.Id, ToUserId: alice.Id, Amount: "1"}, connect.CodePermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.expenses.RecordPayment(ctx, as(tt.caller, tt.req))
			requireCode(t, tt.code, err)
		})
	}
}
