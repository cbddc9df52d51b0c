package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

var _ protoconnect.GroupServiceHandler = (*GroupService)(nil)

// GroupService implements the Connect GroupService.
// Every method requires an authenticated caller.
type GroupService struct {
	protoconnect.UnimplementedGroupServiceHandler

	store   storage.Store
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store, m *metrics.Metrics, logger *slog.Logger) *GroupService {
	return &GroupService{store: store, metrics: m, logger: logger}
}

// CreateGroup creates a group with the caller as first member.
// Member emails without an account are ignored.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.CreateGroupResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "CreateGroup request received",
		"name", req.Msg.GetName(),
		"emails_count", len(req.Msg.GetMemberEmails()),
	)

	name := strings.TrimSpace(req.Msg.GetName())
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errGroupName)
	}

	found, err := s.store.GetUsersByEmails(ctx, req.Msg.GetMemberEmails())
	if err != nil {
		s.logger.ErrorContext(ctx, "CreateGroup failed", "error", err)
		return nil, toConnectError(err)
	}
	byEmail := make(map[string]*models.User, len(found))
	for _, u := range found {
		byEmail[u.Email] = u
	}

	group := &models.Group{
		Name:        name,
		Description: strings.TrimSpace(req.Msg.GetDescription()),
		CreatedBy:   userID,
		Members:     []string{userID},
	}
	for _, email := range req.Msg.GetMemberEmails() {
		u, ok := byEmail[strings.ToLower(strings.TrimSpace(email))]
		if ok && !group.HasMember(u.ID) {
			group.Members = append(group.Members, u.ID)
		}
	}

	if err := s.store.CreateGroup(ctx, group); err != nil {
		s.logger.ErrorContext(ctx, "CreateGroup failed", "error", err)
		return nil, toConnectError(err)
	}
	s.logger.InfoContext(ctx, "Group created", "group_id", group.ID, "members", len(group.Members))

	resp, err := s.groupResponse(ctx, group)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.CreateGroupResponse{Group: resp}), nil
}

// ListGroups returns the groups the caller belongs to, newest first.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[pb.ListGroupsRequest]) (*connect.Response[pb.ListGroupsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	groups, err := s.store.ListGroupsForUser(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "ListGroups failed", "error", err)
		return nil, toConnectError(err)
	}

	var ids [][]string
	for _, g := range groups {
		ids = append(ids, g.Members)
	}
	dir, err := loadUsers(ctx, s.store, ids...)
	if err != nil {
		return nil, toConnectError(err)
	}

	out := make([]*pb.Group, len(groups))
	for i, g := range groups {
		out[i] = toProtoGroup(g, dir)
	}
	return connect.NewResponse(&pb.ListGroupsResponse{Groups: out}), nil
}

// GetGroup retrieves a group the caller belongs to.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	group, err := memberGroup(ctx, s.store, req.Msg.GetGroupId(), userID)
	if err != nil {
		return nil, toConnectError(err)
	}

	resp, err := s.groupResponse(ctx, group)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.GetGroupResponse{Group: resp}), nil
}

// AddMember adds a registered user to a group by email.
func (s *GroupService) AddMember(ctx context.Context, req *connect.Request[pb.AddMemberRequest]) (*connect.Response[pb.AddMemberResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "AddMember request received", "group_id", req.Msg.GetGroupId(), "email", req.Msg.GetEmail())

	group, err := memberGroup(ctx, s.store, req.Msg.GetGroupId(), userID)
	if err != nil {
		return nil, toConnectError(err)
	}

	user, err := s.store.GetUserByEmail(ctx, req.Msg.GetEmail())
	if err != nil {
		return nil, toConnectError(err)
	}
	if group.HasMember(user.ID) {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%s is already a member", user.Email))
	}

	if err := s.store.AddGroupMembers(ctx, group.ID, []string{user.ID}); err != nil {
		s.logger.ErrorContext(ctx, "AddMember failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}
	group.Members = append(group.Members, user.ID)

	resp, err := s.groupResponse(ctx, group)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&pb.AddMemberResponse{Group: resp}), nil
}

// GetGroupBalances returns every member's net balance in membership order.
// Members with no activity report "0.00".
func (s *GroupService) GetGroupBalances(ctx context.Context, req *connect.Request[pb.GetGroupBalancesRequest]) (*connect.Response[pb.GetGroupBalancesResponse], error) {
	group, snap, dir, err := s.loadLedger(ctx, req.Msg.GetGroupId())
	if err != nil {
		return nil, err
	}

	balances := make([]*pb.MemberBalance, len(group.Members))
	for i, memberID := range group.Members {
		balances[i] = &pb.MemberBalance{
			User:    dir.user(memberID),
			Balance: calculator.FormatAmount(calculator.RoundAmount(snap.Balances.Get(memberID))),
		}
	}
	return connect.NewResponse(&pb.GetGroupBalancesResponse{Balances: balances}), nil
}

// GetSettlementPlan returns the suggested payments that settle the group.
func (s *GroupService) GetSettlementPlan(ctx context.Context, req *connect.Request[pb.GetSettlementPlanRequest]) (*connect.Response[pb.GetSettlementPlanResponse], error) {
	_, snap, dir, err := s.loadLedger(ctx, req.Msg.GetGroupId())
	if err != nil {
		return nil, err
	}
	s.metrics.PlanComputed(len(snap.Settlements))

	settlements := make([]*pb.Settlement, len(snap.Settlements))
	for i, st := range snap.Settlements {
		settlements[i] = &pb.Settlement{
			From:   dir.user(st.From),
			To:     dir.user(st.To),
			Amount: calculator.FormatAmount(st.Amount),
		}
	}

	s.logger.InfoContext(ctx, "Settlement plan computed", "group_id", req.Msg.GetGroupId(), "settlements", len(settlements))
	return connect.NewResponse(&pb.GetSettlementPlanResponse{Settlements: settlements}), nil
}

// loadLedger checks membership, computes the group's ledger and resolves
// every member and balance holder.
func (s *GroupService) loadLedger(ctx context.Context, groupID string) (*models.Group, *ledger.Snapshot, userDirectory, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	group, err := memberGroup(ctx, s.store, groupID, userID)
	if err != nil {
		return nil, nil, nil, toConnectError(err)
	}

	snap, err := ledger.Compute(ctx, s.store, group.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Ledger computation failed", "group_id", group.ID, "error", err)
		// Stored expenses were validated on write, so a failure here is ours.
		if errors.Is(err, calculator.ErrInvalidExpense) || errors.Is(err, calculator.ErrInvalidPayment) {
			return nil, nil, nil, connect.NewError(connect.CodeInternal, err)
		}
		return nil, nil, nil, toConnectError(err)
	}

	holders := make([]string, 0, len(snap.Balances))
	for id := range snap.Balances {
		holders = append(holders, id)
	}
	dir, err := loadUsers(ctx, s.store, group.Members, holders)
	if err != nil {
		return nil, nil, nil, toConnectError(err)
	}
	return group, snap, dir, nil
}

func (s *GroupService) groupResponse(ctx context.Context, group *models.Group) (*pb.Group, error) {
	dir, err := loadUsers(ctx, s.store, group.Members, []string{group.CreatedBy})
	if err != nil {
		return nil, err
	}
	return toProtoGroup(group, dir), nil
}
