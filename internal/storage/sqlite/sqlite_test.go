package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "create store")
	t.Cleanup(func() { store.Close() })
	return store
}

func createUser(t *testing.T, store *SQLiteStore, email, name string) *models.User {
	t.Helper()
	user := models.NewUser(email, name, "hash")
	require.NoError(t, store.CreateUser(context.Background(), user))
	return user
}

func TestNew_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	first, err := New(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(path)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := createUser(t, store, "Alice@Example.com", "Alice")
	bob := createUser(t, store, "bob@example.com", "Bob")

	t.Run("GetUserByEmail is case-insensitive", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "alice@example.COM")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, got.ID)
		assert.Equal(t, "alice@example.com", got.Email)
	})

	t.Run("GetUserByID not found", func(t *testing.T) {
		_, err := store.GetUserByID(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		err := store.CreateUser(ctx, models.NewUser("bob@example.com", "Bobby", "hash"))
		assert.Error(t, err)
	})

	t.Run("GetUsersByIDs omits unknown", func(t *testing.T) {
		users, err := store.GetUsersByIDs(ctx, []string{alice.ID, "missing", bob.ID})
		require.NoError(t, err)
		assert.Len(t, users, 2)
		assert.Equal(t, "Bob", users[bob.ID].DisplayName)
	})

	t.Run("GetUsersByEmails", func(t *testing.T) {
		users, err := store.GetUsersByEmails(ctx, []string{"BOB@example.com", "nobody@example.com"})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, bob.ID, users[0].ID)
	})
}

func TestGroups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateGroup generates ID and keeps member order", func(t *testing.T) {
		group := &models.Group{Name: "Roommates", CreatedBy: "u1", Members: []string{"u1", "u3", "u2"}}
		require.NoError(t, store.CreateGroup(ctx, group))
		assert.NotEmpty(t, group.ID)
		assert.NotZero(t, group.CreatedAt)

		got, err := store.GetGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.Equal(t, "Roommates", got.Name)
		assert.Equal(t, []string{"u1", "u3", "u2"}, got.Members)
	})

	t.Run("AddGroupMembers appends and ignores existing", func(t *testing.T) {
		group := &models.Group{Name: "Trip", CreatedBy: "u1", Members: []string{"u1"}}
		require.NoError(t, store.CreateGroup(ctx, group))

		require.NoError(t, store.AddGroupMembers(ctx, group.ID, []string{"u2", "u1", "u4"}))

		got, err := store.GetGroup(ctx, group.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"u1", "u2", "u4"}, got.Members)
	})

	t.Run("AddGroupMembers unknown group", func(t *testing.T) {
		err := store.AddGroupMembers(ctx, "missing", []string{"u1"})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("ListGroupsForUser", func(t *testing.T) {
		groups, err := store.ListGroupsForUser(ctx, "u2")
		require.NoError(t, err)
		require.Len(t, groups, 2)

		groups, err = store.ListGroupsForUser(ctx, "u4")
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, "Trip", groups[0].Name)
	})

	t.Run("GetGroup not found", func(t *testing.T) {
		_, err := store.GetGroup(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestExpenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group := &models.Group{Name: "Flat", CreatedBy: "a", Members: []string{"a", "b", "c"}}
	require.NoError(t, store.CreateGroup(ctx, group))

	older := &models.Expense{
		GroupID:      group.ID,
		Description:  "Dinner",
		Amount:       decimal.RequireFromString("90.10"),
		PayerID:      "a",
		Participants: []string{"a", "c", "b"},
		Date:         1_700_000_000,
	}
	newer := &models.Expense{
		GroupID:      group.ID,
		Description:  "Taxi",
		Amount:       decimal.RequireFromString("30"),
		PayerID:      "b",
		Participants: []string{"b", "c"},
		Date:         1_700_100_000,
	}
	require.NoError(t, store.CreateExpense(ctx, older))
	require.NoError(t, store.CreateExpense(ctx, newer))

	t.Run("GetExpense round-trips amount and participant order", func(t *testing.T) {
		got, err := store.GetExpense(ctx, older.ID)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("90.1").Equal(got.Amount), "amount %s", got.Amount)
		assert.Equal(t, []string{"a", "c", "b"}, got.Participants)
		assert.Equal(t, int64(1_700_000_000), got.Date)
	})

	t.Run("ListExpensesByGroup newest date first", func(t *testing.T) {
		expenses, err := store.ListExpensesByGroup(ctx, group.ID)
		require.NoError(t, err)
		require.Len(t, expenses, 2)
		assert.Equal(t, "Taxi", expenses[0].Description)
		assert.Equal(t, []string{"b", "c"}, expenses[0].Participants)
		assert.Equal(t, "Dinner", expenses[1].Description)
	})

	t.Run("duplicate participant rejected by schema", func(t *testing.T) {
		err := store.CreateExpense(ctx, &models.Expense{
			GroupID:      group.ID,
			Description:  "Dup",
			Amount:       decimal.NewFromInt(1),
			PayerID:      "a",
			Participants: []string{"a", "a"},
		})
		assert.Error(t, err)
	})

	t.Run("DeleteExpense", func(t *testing.T) {
		require.NoError(t, store.DeleteExpense(ctx, older.ID))
		_, err := store.GetExpense(ctx, older.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.ErrorIs(t, store.DeleteExpense(ctx, older.ID), storage.ErrNotFound)
	})
}

func TestPayments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group := &models.Group{Name: "Flat", CreatedBy: "a", Members: []string{"a", "b"}}
	require.NoError(t, store.CreateGroup(ctx, group))

	payment := &models.Payment{
		GroupID:    group.ID,
		FromUserID: "b",
		ToUserID:   "a",
		Amount:     decimal.RequireFromString("12.50"),
		CreatedBy:  "b",
		Note:       "rent share",
		CreatedAt:  100,
	}
	require.NoError(t, store.CreatePayment(ctx, payment))
	require.NoError(t, store.CreatePayment(ctx, &models.Payment{
		GroupID: group.ID, FromUserID: "a", ToUserID: "b",
		Amount: decimal.NewFromInt(1), CreatedBy: "a", CreatedAt: 200,
	}))

	payments, err := store.ListPaymentsByGroup(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Empty(t, payments[0].Note)
	assert.Equal(t, payment.ID, payments[1].ID)
	assert.Equal(t, "rent share", payments[1].Note)
	assert.True(t, decimal.RequireFromString("12.5").Equal(payments[1].Amount))
}
