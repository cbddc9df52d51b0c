package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/events"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

var _ protoconnect.ExpenseServiceHandler = (*ExpenseService)(nil)

// ExpenseService implements the Connect ExpenseService: the ledger of
// expenses and recorded payments of each group.
type ExpenseService struct {
	protoconnect.UnimplementedExpenseServiceHandler

	store     storage.Store
	publisher events.Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store storage.Store, publisher events.Publisher, m *metrics.Metrics, logger *slog.Logger) *ExpenseService {
	return &ExpenseService{
		store:     store,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

// AddExpense records an expense paid by the caller and split equally among
// the participants. Every participant must be a group member.
func (s *ExpenseService) AddExpense(ctx context.Context, req *connect.Request[pb.AddExpenseRequest]) (*connect.Response[pb.AddExpenseResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "AddExpense request received",
		"group_id", req.Msg.GetGroupId(),
		"amount", req.Msg.GetAmount(),
		"participants", len(req.Msg.GetParticipantIds()),
	)

	amount, err := parseAmount(req.Msg.GetAmount())
	if err != nil {
		return nil, err
	}
	group, err := memberGroup(ctx, s.store, req.Msg.GetGroupId(), userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if missing := group.NonMembers(req.Msg.GetParticipantIds()); len(missing) > 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("participants not in group: %s", strings.Join(missing, ", ")))
	}

	expense := &models.Expense{
		GroupID:      group.ID,
		Description:  strings.TrimSpace(req.Msg.GetDescription()),
		Amount:       amount,
		PayerID:      userID,
		Participants: req.Msg.GetParticipantIds(),
		Date:         s.now().Unix(),
	}
	if req.Msg.GetDate() != nil {
		expense.Date = req.Msg.GetDate().AsTime().Unix()
	}
	if err := expense.Validate(); err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		s.logger.ErrorContext(ctx, "AddExpense failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.ExpenseRecorded()
	s.logger.InfoContext(ctx, "Expense added", "expense_id", expense.ID, "group_id", group.ID)

	publish(ctx, s.publisher, s.logger, events.Event{
		Type:       events.TypeExpenseCreated,
		GroupID:    group.ID,
		ActorID:    userID,
		OccurredAt: s.now(),
		Payload:    expensePayload(expense),
	})

	dir, err := loadUsers(ctx, s.store, expense.Participants, []string{expense.PayerID})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.AddExpenseResponse{Expense: toProtoExpense(expense, dir)}), nil
}

// ListExpenses returns a group's expenses, most recent date first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[pb.ListExpensesRequest]) (*connect.Response[pb.ListExpensesResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	group, err := memberGroup(ctx, s.store, req.Msg.GetGroupId(), userID)
	if err != nil {
		return nil, toConnectError(err)
	}

	expenses, err := s.store.ListExpensesByGroup(ctx, group.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "ListExpenses failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	ids := [][]string{group.Members}
	for _, e := range expenses {
		ids = append(ids, e.Participants, []string{e.PayerID})
	}
	dir, err := loadUsers(ctx, s.store, ids...)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*pb.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toProtoExpense(e, dir)
	}
	return connect.NewResponse(&pb.ListExpensesResponse{Expenses: out}), nil
}

// DeleteExpense removes an expense. Only its payer may delete it.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[pb.DeleteExpenseRequest]) (*connect.Response[pb.DeleteExpenseResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "DeleteExpense request received", "expense_id", req.Msg.GetExpenseId())

	expense, err := s.store.GetExpense(ctx, req.Msg.GetExpenseId())
	if err != nil {
		return nil, toConnectError(err)
	}
	if expense.PayerID != userID {
		return nil, toConnectError(errNotPayer)
	}

	if err := s.store.DeleteExpense(ctx, expense.ID); err != nil {
		s.logger.ErrorContext(ctx, "DeleteExpense failed", "expense_id", expense.ID, "error", err)
		return nil, toConnectError(err)
	}
	s.logger.InfoContext(ctx, "Expense deleted", "expense_id", expense.ID, "group_id", expense.GroupID)

	publish(ctx, s.publisher, s.logger, events.Event{
		Type:       events.TypeExpenseDeleted,
		GroupID:    expense.GroupID,
		ActorID:    userID,
		OccurredAt: s.now(),
		Payload:    expensePayload(expense),
	})

	return connect.NewResponse(&pb.DeleteExpenseResponse{}), nil
}

// RecordPayment records a real payment from the caller to another member.
func (s *ExpenseService) RecordPayment(ctx context.Context, req *connect.Request[pb.RecordPaymentRequest]) (*connect.Response[pb.RecordPaymentResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "RecordPayment request received",
		"group_id", req.Msg.GetGroupId(),
		"to_user_id", req.Msg.GetToUserId(),
		"amount", req.Msg.GetAmount(),
	)

	amount, err := parseAmount(req.Msg.GetAmount())
	if err != nil {
		return nil, err
	}
	group, err := memberGroup(ctx, s.store, req.Msg.GetGroupId(), userID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if req.Msg.GetToUserId() == userID {
		return nil, connect.NewError(connect.CodeInvalidArgument, errSelfPayment)
	}
	if !group.HasMember(req.Msg.GetToUserId()) {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("recipient %q is not in the group", req.Msg.GetToUserId()))
	}
	if !amount.IsPositive() {
		return nil, toConnectError(fmt.Errorf("%w: amount must be positive", calculator.ErrInvalidPayment))
	}

	payment := &models.Payment{
		GroupID:    group.ID,
		FromUserID: userID,
		ToUserID:   req.Msg.GetToUserId(),
		Amount:     amount,
		CreatedBy:  userID,
		Note:       strings.TrimSpace(req.Msg.GetNote()),
	}
	if err := s.store.CreatePayment(ctx, payment); err != nil {
		s.logger.ErrorContext(ctx, "RecordPayment failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.PaymentRecorded()
	s.logger.InfoContext(ctx, "Payment recorded", "payment_id", payment.ID, "group_id", group.ID)

	publish(ctx, s.publisher, s.logger, events.Event{
		Type:       events.TypePaymentRecorded,
		GroupID:    group.ID,
		ActorID:    userID,
		OccurredAt: s.now(),
		Payload: events.PaymentPayload{
			PaymentID:  payment.ID,
			FromUserID: payment.FromUserID,
			ToUserID:   payment.ToUserID,
			Amount:     calculator.FormatAmount(payment.Amount),
		},
	})

	dir, err := loadUsers(ctx, s.store, []string{payment.FromUserID, payment.ToUserID})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.RecordPaymentResponse{Payment: toProtoPayment(payment, dir)}), nil
}

// ListPayments returns a group's recorded payments, newest first.
func (s *ExpenseService) ListPayments(ctx context.Context, req *connect.Request[pb.ListPaymentsRequest]) (*connect.Response[pb.ListPaymentsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	group, err := memberGroup(ctx, s.store, req.Msg.GetGroupId(), userID)
	if err != nil {
		return nil, toConnectError(err)
	}

	payments, err := s.store.ListPaymentsByGroup(ctx, group.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "ListPayments failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	ids := [][]string{group.Members}
	for _, p := range payments {
		ids = append(ids, []string{p.FromUserID, p.ToUserID})
	}
	dir, err := loadUsers(ctx, s.store, ids...)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*pb.Payment, len(payments))
	for i, p := range payments {
		out[i] = toProtoPayment(p, dir)
	}
	return connect.NewResponse(&pb.ListPaymentsResponse{Payments: out}), nil
}

func expensePayload(e *models.Expense) events.ExpensePayload {
	return events.ExpensePayload{
		ExpenseID:    e.ID,
		Description:  e.Description,
		Amount:       calculator.FormatAmount(e.Amount),
		PayerID:      e.PayerID,
		Participants: e.Participants,
	}
}
