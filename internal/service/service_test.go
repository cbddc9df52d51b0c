package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/events"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/storage/sqlite"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

// testEnv is a running server with clients for every service.
type testEnv struct {
	auth     protoconnect.AuthServiceClient
	groups   protoconnect.GroupServiceClient
	expenses protoconnect.ExpenseServiceClient
	events   *events.Recorder
}

func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "create store")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jwtManager := auth.NewJWTManager(testSecret, time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
	recorder := &events.Recorder{}
	m := metrics.New()

	public := connect.WithInterceptors(middleware.OptionalAuth(jwtManager), middleware.LoggingInterceptor(logger))
	private := connect.WithInterceptors(middleware.RequireAuth(jwtManager), middleware.LoggingInterceptor(logger))

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewAuthServiceHandler(NewAuthService(authenticator, jwtManager, store, logger), public))
	mux.Handle(protoconnect.NewGroupServiceHandler(NewGroupService(store, m, logger), private))
	mux.Handle(protoconnect.NewExpenseServiceHandler(NewExpenseService(store, recorder, m, logger), private))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testEnv{
		auth:     protoconnect.NewAuthServiceClient(server.Client(), server.URL),
		groups:   protoconnect.NewGroupServiceClient(server.Client(), server.URL),
		expenses: protoconnect.NewExpenseServiceClient(server.Client(), server.URL),
		events:   recorder,
	}
}

// member is a registered user with a session token.
type member struct {
	*pb.User
	token string
}

func (e *testEnv) register(t *testing.T, email, name string) member {
	t.Helper()
	resp, err := e.auth.Register(context.Background(), connect.NewRequest(&pb.RegisterRequest{
		Email:       email,
		DisplayName: name,
		Password:    "correct-horse",
	}))
	require.NoError(t, err, "register %s", email)
	return member{User: resp.Msg.User, token: resp.Msg.Token}
}

// as builds a request authenticated as m.
func as[T any](m member, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+m.token)
	return req
}

func requireCode(t *testing.T, want connect.Code, err error) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, want, connect.CodeOf(err), "error: %v", err)
}

// roommates registers alice, bob and carol and puts them in one group,
// in that membership order.
func (e *testEnv) roommates(t *testing.T) (group *pb.Group, alice, bob, carol member) {
	t.Helper()
	alice = e.register(t, "alice@example.com", "Alice")
	bob = e.register(t, "bob@example.com", "Bob")
	carol = e.register(t, "carol@example.com", "Carol")

	resp, err := e.groups.CreateGroup(context.Background(), as(alice, &pb.CreateGroupRequest{
		Name:         "Roommates",
		MemberEmails: []string{bob.Email, carol.Email},
	}))
	require.NoError(t, err)
	return resp.Msg.Group, alice, bob, carol
}

func (e *testEnv) addExpense(t *testing.T, payer member, groupID, description, amount string, participants ...member) *pb.Expense {
	t.Helper()
	ids := make([]string, len(participants))
	for i, p := range participants {
		ids[i] = p.Id
	}
	resp, err := e.expenses.AddExpense(context.Background(), as(payer, &pb.AddExpenseRequest{
		GroupId:        groupID,
		Description:    description,
		Amount:         amount,
		ParticipantIds: ids,
	}))
	require.NoError(t, err)
	return resp.Msg.Expense
}
