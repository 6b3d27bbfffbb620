package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Flarenzy/rdap-registry/internal/bootstrap"
	"github.com/Flarenzy/rdap-registry/internal/domain"
	"github.com/Flarenzy/rdap-registry/internal/ipaddr"
	"github.com/Flarenzy/rdap-registry/internal/update"
	"github.com/Flarenzy/rdap-registry/internal/validation"
)

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) Ping(context.Context) error {
	return s.err
}

type stubService struct {
	createNetworkFn       func(context.Context, domain.NetworkInput) (update.Response, error)
	updateNetworkFn       func(context.Context, domain.NetworkInput) (update.Response, error)
	getNetworkByAddressFn func(context.Context, string) (domain.Network, error)
}

func (s stubService) CreateNetwork(ctx context.Context, input domain.NetworkInput) (update.Response, error) {
	if s.createNetworkFn == nil {
		return update.SuccessResponse(input.Handle), nil
	}
	return s.createNetworkFn(ctx, input)
}

func (s stubService) UpdateNetwork(ctx context.Context, input domain.NetworkInput) (update.Response, error) {
	if s.updateNetworkFn == nil {
		return update.SuccessResponse(input.Handle), nil
	}
	return s.updateNetworkFn(ctx, input)
}

func (s stubService) GetNetworkByAddress(ctx context.Context, address string) (domain.Network, error) {
	if s.getNetworkByAddressFn == nil {
		return domain.Network{}, domain.ErrNotFound
	}
	return s.getNetworkByAddressFn(ctx, address)
}

func newHandlerTestAPI(service domain.NetworkService, healthErr error) *API {
	return NewAPI(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		stubHealthChecker{err: healthErr},
		service,
		nil,
	)
}

func TestReadyzReturnsServiceUnavailableWhenHealthCheckFails(t *testing.T) {
	api := newHandlerTestAPI(stubService{}, context.Canceled)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
}

func TestRouterAssignsRequestID(t *testing.T) {
	api := newHandlerTestAPI(stubService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatal("expected generated request id")
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if got := rec.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("expected propagated request id, got %q", got)
	}
}

func TestCreateNetworkReturnsCreated(t *testing.T) {
	var got domain.NetworkInput
	api := newHandlerTestAPI(stubService{
		createNetworkFn: func(_ context.Context, in domain.NetworkInput) (update.Response, error) {
			got = in
			return update.SuccessResponse(in.Handle), nil
		},
	}, nil)

	body := `{"handle":"NET-1","startAddress":"10.0.0.0","endAddress":"10.0.0.255","ipVersion":"v4",
		"events":[{"eventAction":"registration","eventDate":"2024-05-10T15:04:05Z"}],
		"links":[{"rel":"self","href":"https://rdap.example/ip/10.0.0.0"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/networks", strings.NewReader(body))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d", http.StatusCreated, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"handle":"NET-1"`) {
		t.Fatalf("expected handle in body, got %q", rec.Body.String())
	}
	if len(got.Events) != 1 || !got.Events[0].Date.Equal(time.Date(2024, 5, 10, 15, 4, 5, 0, time.UTC)) {
		t.Fatalf("unexpected events: %+v", got.Events)
	}
	if len(got.Links) != 1 || got.Links[0].Rel != "self" {
		t.Fatalf("unexpected links: %+v", got.Links)
	}
}

func TestCreateNetworkReturnsValidationError(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		createNetworkFn: func(_ context.Context, in domain.NetworkInput) (update.Response, error) {
			return update.ErrorResponse(in.Handle, validation.HandleConflict(in.Handle)), nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/networks", strings.NewReader(`{"handle":"NET-1"}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected %d, got %d", http.StatusConflict, rec.Code)
	}
	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.ErrorCode != http.StatusConflict || resp.SubErrorCode != validation.CodeConflict || resp.Handle != "NET-1" {
		t.Fatalf("unexpected error body: %+v", resp)
	}
}

func TestCreateNetworkReturnsBadRequestOnMalformedBody(t *testing.T) {
	api := newHandlerTestAPI(stubService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/networks", strings.NewReader(`{"handle":`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestCreateNetworkReturnsInternalErrorOnFatalFailure(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		createNetworkFn: func(context.Context, domain.NetworkInput) (update.Response, error) {
			return update.Response{}, domain.ErrPersistence
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/networks", strings.NewReader(`{"handle":"NET-1"}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d, got %d", http.StatusInternalServerError, rec.Code)
	}
}

func TestUpdateNetworkTakesHandleFromPath(t *testing.T) {
	var gotHandle string
	api := newHandlerTestAPI(stubService{
		updateNetworkFn: func(_ context.Context, in domain.NetworkInput) (update.Response, error) {
			gotHandle = in.Handle
			return update.SuccessResponse(in.Handle), nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/networks/NET-7", strings.NewReader(`{"startAddress":"10.0.0.0"}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	if gotHandle != "NET-7" {
		t.Fatalf("expected path handle, got %q", gotHandle)
	}
}

func TestUpdateNetworkRejectsMismatchedHandle(t *testing.T) {
	api := newHandlerTestAPI(stubService{}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/networks/NET-7", strings.NewReader(`{"handle":"NET-8"}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestUpdateNetworkReturnsNotFound(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		updateNetworkFn: func(_ context.Context, in domain.NetworkInput) (update.Response, error) {
			return update.ErrorResponse(in.Handle, validation.HandleNotFound(in.Handle)), nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/networks/NET-7", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestGetNetworkByAddressReturnsDecodedNetwork(t *testing.T) {
	start, _ := ipaddr.EncodeString("10.0.0.0", ipaddr.V4)
	end, _ := ipaddr.EncodeString("10.0.0.255", ipaddr.V4)
	api := newHandlerTestAPI(stubService{
		getNetworkByAddressFn: func(_ context.Context, address string) (domain.Network, error) {
			if address != "10.0.0.7" {
				t.Fatalf("unexpected address %q", address)
			}
			return domain.Network{
				Handle:       "NET-1",
				StartAddress: start,
				EndAddress:   end,
				IPVersion:    ipaddr.V4,
				Status:       []string{"active"},
			}, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ip/10.0.0.7", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	var resp NetworkResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.StartAddress != "10.0.0.0" || resp.EndAddress != "10.0.0.255" || resp.IPVersion != "v4" {
		t.Fatalf("unexpected network: %+v", resp)
	}
}

func TestGetNetworkByAddressRejectsInvalidAddress(t *testing.T) {
	api := newHandlerTestAPI(stubService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ip/not-an-ip", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestGetNetworkByAddressMapsErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: domain.ErrNotFound, want: http.StatusNotFound},
		{name: "invalid", err: domain.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "other", err: errors.New("db down"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newHandlerTestAPI(stubService{
				getNetworkByAddressFn: func(context.Context, string) (domain.Network, error) {
					return domain.Network{}, tt.err
				},
			}, nil)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/ip/2001:db8::1", nil)
			rec := httptest.NewRecorder()
			api.Router().ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestListNetworkRedirects(t *testing.T) {
	table := bootstrap.NewTable()
	table.Add(bootstrap.NewBuilder(nil, nil).Build("41.0.0.0/8", []string{"https://rdap.afrinic.example/"})...)
	api := NewAPI(slog.New(slog.NewTextHandler(io.Discard, nil)), stubHealthChecker{}, stubService{}, table)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/redirects/networks", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	var resp []RedirectResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(resp) != 1 || resp[0].EndAddress != "41.255.255.255" || resp[0].IPVersion != "v4" {
		t.Fatalf("unexpected redirects: %+v", resp)
	}
}
