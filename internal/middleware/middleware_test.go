package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/models"
)

type ping struct{}

// captured records the identity seen by the wrapped handler.
type captured struct {
	userID, email string
}

func (c *captured) handler(ctx context.Context, _ connect.AnyRequest) (connect.AnyResponse, error) {
	c.userID = GetUserID(ctx)
	c.email = GetEmail(ctx)
	return connect.NewResponse(&ping{}), nil
}

func newToken(t *testing.T, jwtManager *auth.JWTManager) (*models.User, string) {
	t.Helper()
	user := models.NewUser("alice@example.com", "Alice", "hash")
	token, err := jwtManager.Generate(user)
	require.NoError(t, err)
	return user, token
}

func request(authorization string) *connect.Request[ping] {
	req := connect.NewRequest(&ping{})
	if authorization != "" {
		req.Header().Set("Authorization", authorization)
	}
	return req
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("middleware-test-secret", time.Hour)
	user, token := newToken(t, jwtManager)

	t.Run("valid token", func(t *testing.T) {
		var c captured
		_, err := RequireAuth(jwtManager)(c.handler)(context.Background(), request("Bearer "+token))
		require.NoError(t, err)
		assert.Equal(t, user.ID, c.userID)
		assert.Equal(t, "alice@example.com", c.email)
	})

	rejected := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic " + token,
		"no token":       "Bearer ",
		"garbage token":  "Bearer abc.def.ghi",
		"foreign secret": "Bearer " + func() string {
			_, tok := newToken(t, auth.NewJWTManager("another-secret", time.Hour))
			return tok
		}(),
	}
	for name, header := range rejected {
		t.Run(name, func(t *testing.T) {
			var c captured
			_, err := RequireAuth(jwtManager)(c.handler)(context.Background(), request(header))
			require.Error(t, err)
			assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
			assert.Empty(t, c.userID)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("middleware-test-secret", time.Hour)
	user, token := newToken(t, jwtManager)

	var c captured
	_, err := OptionalAuth(jwtManager)(c.handler)(context.Background(), request("bearer "+token))
	require.NoError(t, err)
	assert.Equal(t, user.ID, c.userID)

	c = captured{}
	_, err = OptionalAuth(jwtManager)(c.handler)(context.Background(), request("Bearer nope"))
	require.NoError(t, err)
	assert.Empty(t, c.userID)

	c = captured{}
	_, err = OptionalAuth(jwtManager)(c.handler)(context.Background(), request(""))
	require.NoError(t, err)
	assert.Empty(t, c.userID)
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := WithUser(context.Background(), "u1", "u1@example.com")

	ok := func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return connect.NewResponse(&ping{}), nil
	}
	_, err := LoggingInterceptor(logger)(ok)(ctx, request(""))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"RPC ok"`)
	assert.Contains(t, buf.String(), `"user_id":"u1"`)

	buf.Reset()
	denied := func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodePermissionDenied, errors.New("not a member"))
	}
	_, err = LoggingInterceptor(logger)(denied)(ctx, request(""))
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), "not a member")
}

func TestMetricsInterceptor(t *testing.T) {
	m := metrics.New()
	failing := func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("missing"))
	}

	_, err := MetricsInterceptor(m)(failing)(context.Background(), request(""))
	require.Error(t, err)

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	var found bool
	for _, f := range families {
		if f.GetName() != "splitledger_rpc_requests_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "code" && label.GetValue() == "not_found" {
					found = true
					assert.Equal(t, 1.0, metric.GetCounter().GetValue())
				}
			}
		}
	}
	assert.True(t, found, "expected a not_found sample")
}
