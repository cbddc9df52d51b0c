// Package server assembles the HTTP handler: router, middleware and the
// Connect services.
package server

import (
	"log/slog"
	"net/http"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/events"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/service"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

// Deps are the collaborators the handler is built from.
type Deps struct {
	Store         storage.Store
	Authenticator auth.Authenticator
	JWT           *auth.JWTManager
	Publisher     events.Publisher
	Metrics       *metrics.Metrics
	Logger        *slog.Logger
	CORSOrigins   []string
}

// NewHandler returns the root handler with every route mounted.
//
// Routes:
//
//	GET  /healthz                      liveness
//	GET  /metrics                      Prometheus
//	POST /splitledger.v1.AuthService/*     public (GetCurrentUser needs a token)
//	POST /splitledger.v1.GroupService/*    authenticated
//	POST /splitledger.v1.ExpenseService/*  authenticated
func NewHandler(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{
			"Accept", "Authorization", "Content-Type",
			"Connect-Protocol-Version", "Connect-Timeout-Ms",
		},
		ExposedHeaders: []string{"Connect-Protocol-Version", "Connect-Timeout-Ms"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())

	// Interceptors run outermost first: metrics, then auth, then logging so
	// that log lines carry the user ID.
	metricsInterceptor := middleware.MetricsInterceptor(d.Metrics)
	logging := middleware.LoggingInterceptor(d.Logger)
	public := connect.WithInterceptors(metricsInterceptor, middleware.OptionalAuth(d.JWT), logging)
	private := connect.WithInterceptors(metricsInterceptor, middleware.RequireAuth(d.JWT), logging)

	authSvc := service.NewAuthService(d.Authenticator, d.JWT, d.Store, d.Logger)
	groupSvc := service.NewGroupService(d.Store, d.Metrics, d.Logger)
	expenseSvc := service.NewExpenseService(d.Store, d.Publisher, d.Metrics, d.Logger)

	authPath, authHandler := protoconnect.NewAuthServiceHandler(authSvc, public)
	r.Mount(authPath, authHandler)
	groupPath, groupHandler := protoconnect.NewGroupServiceHandler(groupSvc, private)
	r.Mount(groupPath, groupHandler)
	expensePath, expenseHandler := protoconnect.NewExpenseServiceHandler(expenseSvc, private)
	r.Mount(expensePath, expenseHandler)

	return r
}
