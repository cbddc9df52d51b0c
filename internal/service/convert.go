package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/events"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	pb "github.com/mmynk/splitledger/pkg/proto"
)

var (
	errNotMember   = errors.New("not a member of this group")
	errNotPayer    = errors.New("only the payer can delete an expense")
	errGroupName   = errors.New("group name is required")
	errSelfPayment = errors.New("cannot record a payment to yourself")
)

// toConnectError maps domain and storage errors to Connect codes.
func toConnectError(err error) *connect.Error {
	var connectErr *connect.Error
	switch {
	case errors.As(err, &connectErr):
		return connectErr
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, calculator.ErrInvalidExpense), errors.Is(err, calculator.ErrInvalidPayment):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, errNotMember), errors.Is(err, errNotPayer):
		return connect.NewError(connect.CodePermissionDenied, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// callerID returns the authenticated user, or Unauthenticated.
func callerID(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}

// memberGroup loads a group and checks that userID belongs to it.
func memberGroup(ctx context.Context, groups storage.GroupStore, groupID, userID string) (*models.Group, error) {
	if groupID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("group_id is required"))
	}
	group, err := groups.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(userID) {
		return nil, errNotMember
	}
	return group, nil
}

// parseAmount reads a decimal money string from a request.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, connect.NewError(connect.CodeInvalidArgument, errors.New("amount is required"))
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("amount %q is not a decimal number", s))
	}
	return amount, nil
}

// timestamp converts stored Unix seconds. Zero means unknown.
func timestamp(unix int64) *timestamppb.Timestamp {
	if unix == 0 {
		return nil
	}
	return timestamppb.New(time.Unix(unix, 0))
}

// publish sends an event and logs delivery failures without returning them.
func publish(ctx context.Context, publisher events.Publisher, logger *slog.Logger, event events.Event) {
	if err := publisher.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish event", "type", event.Type, "group_id", event.GroupID, "error", err)
	}
}

func toProtoUser(user *models.User) *pb.User {
	return &pb.User{
		Id:        user.ID,
		Name:      user.DisplayName,
		Email:     user.Email,
		CreatedAt: timestamp(user.CreatedAt),
	}
}

// userDirectory resolves member IDs to display identities.
type userDirectory map[string]*models.User

func loadUsers(ctx context.Context, users storage.UserStore, ids ...[]string) (userDirectory, error) {
	seen := make(map[string]bool)
	var all []string
	for _, list := range ids {
		for _, id := range list {
			if !seen[id] {
				seen[id] = true
				all = append(all, id)
			}
		}
	}
	found, err := users.GetUsersByIDs(ctx, all)
	if err != nil {
		return nil, err
	}
	return userDirectory(found), nil
}

// user returns the identity for id. IDs with no account keep the ID as name.
func (d userDirectory) user(id string) *pb.User {
	if u, ok := d[id]; ok {
		return &pb.User{Id: u.ID, Name: u.DisplayName, Email: u.Email}
	}
	return &pb.User{Id: id, Name: id}
}

func (d userDirectory) users(ids []string) []*pb.User {
	out := make([]*pb.User, len(ids))
	for i, id := range ids {
		out[i] = d.user(id)
	}
	return out
}

func toProtoGroup(group *models.Group, dir userDirectory) *pb.Group {
	return &pb.Group{
		Id:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		CreatedBy:   dir.user(group.CreatedBy),
		Members:     dir.users(group.Members),
		CreatedAt:   timestamp(group.CreatedAt),
	}
}

func toProtoExpense(expense *models.Expense, dir userDirectory) *pb.Expense {
	share, err := calculator.EqualShare(expense.ForBalance())
	if err != nil {
		share = decimal.Zero
	}
	return &pb.Expense{
		Id:           expense.ID,
		GroupId:      expense.GroupID,
		Description:  expense.Description,
		Amount:       calculator.FormatAmount(expense.Amount),
		PaidBy:       dir.user(expense.PayerID),
		Participants: dir.users(expense.Participants),
		ShareAmount:  calculator.FormatAmount(calculator.RoundAmount(share)),
		Date:         timestamp(expense.Date),
		CreatedAt:    timestamp(expense.CreatedAt),
	}
}

func toProtoPayment(payment *models.Payment, dir userDirectory) *pb.Payment {
	return &pb.Payment{
		Id:        payment.ID,
		GroupId:   payment.GroupID,
		From:      dir.user(payment.FromUserID),
		To:        dir.user(payment.ToUserID),
		Amount:    calculator.FormatAmount(payment.Amount),
		Note:      payment.Note,
		CreatedAt: timestamp(payment.CreatedAt),
	}
}
