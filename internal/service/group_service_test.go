package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/mmynk/splitledger/pkg/proto"
)

func memberIDs(users []*pb.User) []string {
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.Id
	}
	return ids
}

func TestCreateGroup(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	alice := env.register(t, "alice@example.com", "Alice")
	bob := env.register(t, "bob@example.com", "Bob")
	carol := env.register(t, "carol@example.com", "Carol")

	resp, err := env.groups.CreateGroup(ctx, as(alice, &pb.CreateGroupRequest{
		Name:        "  Ski Trip ",
		Description: "February",
		// Unknown, duplicate and creator emails are dropped.
		MemberEmails: []string{"CAROL@example.com", "ghost@example.com", bob.Email, carol.Email, alice.Email},
	}))
	require.NoError(t, err)

	group := resp.Msg.Group
	assert.NotEmpty(t, group.Id)
	assert.Equal(t, "Ski Trip", group.Name)
	assert.Equal(t, "February", group.Description)
	assert.Equal(t, alice.Id, group.CreatedBy.Id)
	assert.NotNil(t, group.CreatedAt)
	assert.Equal(t, []string{alice.Id, carol.Id, bob.Id}, memberIDs(group.Members))
	assert.Equal(t, "Carol", group.Members[1].Name)

	t.Run("name required", func(t *testing.T) {
		_, err := env.groups.CreateGroup(ctx, as(alice, &pb.CreateGroupRequest{Name: "   "}))
		requireCode(t, connect.CodeInvalidArgument, err)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		_, err := env.groups.CreateGroup(ctx, connect.NewRequest(&pb.CreateGroupRequest{Name: "x"}))
		requireCode(t, connect.CodeUnauthenticated, err)
	})
}

func TestListAndGetGroup(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	group, alice, bob, _ := env.roommates(t)
	dave := env.register(t, "dave@example.com", "Dave")

	_, err := env.groups.CreateGroup(ctx, as(alice, &pb.CreateGroupRequest{Name: "Solo"}))
	require.NoError(t, err)

	t.Run("ListGroups returns only the caller's groups", func(t *testing.T) {
		resp, err := env.groups.ListGroups(ctx, as(alice, &pb.ListGroupsRequest{}))
		require.NoError(t, err)
		assert.Len(t, resp.Msg.Groups, 2)

		resp, err = env.groups.ListGroups(ctx, as(bob, &pb.ListGroupsRequest{}))
		require.NoError(t, err)
		require.Len(t, resp.Msg.Groups, 1)
		assert.Equal(t, group.Id, resp.Msg.Groups[0].Id)

		resp, err = env.groups.ListGroups(ctx, as(dave, &pb.ListGroupsRequest{}))
		require.NoError(t, err)
		assert.Empty(t, resp.Msg.Groups)
	})

	t.Run("GetGroup as member", func(t *testing.T) {
		resp, err := env.groups.GetGroup(ctx, as(bob, &pb.GetGroupRequest{GroupId: group.Id}))
		require.NoError(t, err)
		assert.Equal(t, "Roommates", resp.Msg.Group.Name)
		assert.Len(t, resp.Msg.Group.Members, 3)
	})

	t.Run("GetGroup as outsider", func(t *testing.T) {
		_, err := env.groups.GetGroup(ctx, as(dave, &pb.GetGroupRequest{GroupId: group.Id}))
		requireCode(t, connect.CodePermissionDenied, err)
	})

	t.Run("GetGroup unknown", func(t *testing.T) {
		_, err := env.groups.GetGroup(ctx, as(alice, &pb.GetGroupRequest{GroupId: "missing"}))
		requireCode(t, connect.CodeNotFound, err)
	})

	t.Run("GetGroup without id", func(t *testing.T) {
		_, err := env.groups.GetGroup(ctx, as(alice, &pb.GetGroupRequest{}))
		requireCode(t, connect.CodeInvalidArgument, err)
	})
}

func TestAddMember(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	group, alice, bob, carol := env.roommates(t)
	dave := env.register(t, "dave@example.com", "Dave")

	resp, err := env.groups.AddMember(ctx, as(bob, &pb.AddMemberRequest{GroupId: group.Id, Email: dave.Email}))
	require.NoError(t, err)
	assert.Equal(t, []string{alice.Id, bob.Id, carol.Id, dave.Id}, memberIDs(resp.Msg.Group.Members))

	_, err = env.groups.AddMember(ctx, as(alice, &pb.AddMemberRequest{GroupId: group.Id, Email: dave.Email}))
	requireCode(t, connect.CodeInvalidArgument, err)

	_, err = env.groups.AddMember(ctx, as(alice, &pb.AddMemberRequest{GroupId: group.Id, Email: "ghost@example.com"}))
	requireCode(t, connect.CodeNotFound, err)

	eve := env.register(t, "eve@example.com", "Eve")
	_, err = env.groups.AddMember(ctx, as(eve, &pb.AddMemberRequest{GroupId: group.Id, Email: eve.Email}))
	requireCode(t, connect.CodePermissionDenied, err)
}

func TestGroupBalancesAndPlan_WorkedScenario(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	group, alice, bob, carol := env.roommates(t)
	env.addExpense(t, alice, group.Id, "Dinner", "90", alice, bob, carol)
	env.addExpense(t, bob, group.Id, "Taxi", "30", bob, carol)

	balances, err := env.groups.GetGroupBalances(ctx, as(carol, &pb.GetGroupBalancesRequest{GroupId: group.Id}))
	require.NoError(t, err)
	require.Len(t, balances.Msg.Balances, 3)

	want := []struct {
		id, name, balance string
	}{
		{alice.Id, "Alice", "60.00"},
		{bob.Id, "Bob", "-15.00"},
		{carol.Id, "Carol", "-45.00"},
	}
	for i, w := range want {
		got := balances.Msg.Balances[i]
		assert.Equal(t, w.id, got.User.Id)
		assert.Equal(t, w.name, got.User.Name)
		assert.Equal(t, w.balance, got.Balance)
	}

	plan, err := env.groups.GetSettlementPlan(ctx, as(alice, &pb.GetSettlementPlanRequest{GroupId: group.Id}))
	require.NoError(t, err)
	require.Len(t, plan.Msg.Settlements, 2)

	first, second := plan.Msg.Settlements[0], plan.Msg.Settlements[1]
	assert.Equal(t, carol.Id, first.From.Id)
	assert.Equal(t, alice.Id, first.To.Id)
	assert.Equal(t, "carol@example.com", first.From.Email)
	assert.Equal(t, "45.00", first.Amount)
	assert.Equal(t, bob.Id, second.From.Id)
	assert.Equal(t, alice.Id, second.To.Id)
	assert.Equal(t, "15.00", second.Amount)
}

func TestGroupBalances_EmptyGroup(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	group, alice, _, _ := env.roommates(t)

	balances, err := env.groups.GetGroupBalances(ctx, as(alice, &pb.GetGroupBalancesRequest{GroupId: group.Id}))
	require.NoError(t, err)
	require.Len(t, balances.Msg.Balances, 3)
	for _, b := range balances.Msg.Balances {
		assert.Equal(t, "0.00", b.Balance)
	}

	plan, err := env.groups.GetSettlementPlan(ctx, as(alice, &pb.GetSettlementPlanRequest{GroupId: group.Id}))
	require.NoError(t, err)
	assert.Empty(t, plan.Msg.Settlements)
}

func TestGroupBalances_Outsider(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	group, _, _, _ := env.roommates(t)
	dave := env.register(t, "dave@example.com", "Dave")

	_, err := env.groups.GetGroupBalances(ctx, as(dave, &pb.GetGroupBalancesRequest{GroupId: group.Id}))
	requireCode(t, connect.CodePermissionDenied, err)

	_, err = env.groups.GetSettlementPlan(ctx, as(dave, &pb.GetSettlementPlanRequest{GroupId: group.Id}))
	requireCode(t, connect.CodePermissionDenied, err)
}
