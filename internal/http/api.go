package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Flarenzy/rdap-registry/internal/bootstrap"
	"github.com/Flarenzy/rdap-registry/internal/domain"
)

const requestIDHeader = "X-Request-ID"

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	Logger    *slog.Logger
	DB        HealthChecker
	Service   domain.NetworkService
	Redirects *bootstrap.Table
}

func NewAPI(logger *slog.Logger, db HealthChecker, service domain.NetworkService, redirects *bootstrap.Table) *API {
	if redirects == nil {
		redirects = bootstrap.NewTable()
	}
	return &API{
		Logger:    logger,
		DB:        db,
		Service:   service,
		Redirects: redirects,
	}
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", a.handleHealthz)
	mux.HandleFunc("/readyz", a.handleReadyz)
	mux.HandleFunc("POST /api/v1/networks", a.handleCreateNetwork)
	mux.HandleFunc("PUT /api/v1/networks/{handle}", a.handleUpdateNetwork)
	mux.HandleFunc("GET /api/v1/ip/{address}", a.handleGetNetworkByAddress)
	mux.HandleFunc("GET /api/v1/redirects/networks", a.handleListNetworkRedirects)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return a.requestIDMiddleware(mux)
}

type requestIDKey struct{}

// RequestID returns the id assigned to the request carried by ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (a *API) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(ctx))

		a.Logger.InfoContext(ctx, "request handled",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
