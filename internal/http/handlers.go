package http

import (
	"errors"
	"net/http"

	"github.com/Flarenzy/rdap-registry/internal/domain"
)

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Readiness check
// @Tags health
// @Success 200 {string} string "ready"
// @Failure 503 {string} string "db unavailable"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := a.DB.Ping(ctx); err != nil {
		a.Logger.ErrorContext(ctx, "db ping failed", "err", err.Error())
		http.Error(w, "db unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary Create network
// @Tags networks
// @Accept json
// @Produce json
// @Param network body NetworkRequest true "Network payload"
// @Success 201 {object} UpdateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/networks [post]
func (a *API) handleCreateNetwork(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[NetworkRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling network from request", "err", err.Error())
		a.respond(w, r, http.StatusBadRequest, errorResponse(http.StatusBadRequest, "bad request"))
		return
	}

	resp, err := a.Service.CreateNetwork(ctx, req.toInput())
	if err != nil {
		a.Logger.ErrorContext(ctx, "creating network", "handle", req.Handle, "err", err.Error())
		a.respond(w, r, http.StatusInternalServerError, internalError())
		return
	}

	status, body := updateToResponse(resp, http.StatusCreated)
	a.respond(w, r, status, body)
}

// @Summary Update network
// @Tags networks
// @Accept json
// @Produce json
// @Param handle path string true "Network handle"
// @Param network body NetworkRequest true "Network payload"
// @Success 200 {object} UpdateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/networks/{handle} [put]
func (a *API) handleUpdateNetwork(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := decode[NetworkRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling network from request", "err", err.Error())
		a.respond(w, r, http.StatusBadRequest, errorResponse(http.StatusBadRequest, "bad request"))
		return
	}

	if err := resolveHandle(r.PathValue("handle"), &req); err != nil {
		a.Logger.DebugContext(ctx, "handle mismatch", "err", err.Error())
		a.respond(w, r, http.StatusBadRequest, errorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	resp, err := a.Service.UpdateNetwork(ctx, req.toInput())
	if err != nil {
		a.Logger.ErrorContext(ctx, "updating network", "handle", req.Handle, "err", err.Error())
		a.respond(w, r, http.StatusInternalServerError, internalError())
		return
	}

	status, body := updateToResponse(resp, http.StatusOK)
	a.respond(w, r, status, body)
}

// @Summary Find the most specific network containing an address
// @Tags networks
// @Produce json
// @Param address path string true "IPv4 or IPv6 address"
// @Success 200 {object} NetworkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/ip/{address} [get]
func (a *API) handleGetNetworkByAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	address, err := parseAddressPath(r)
	if err != nil {
		a.Logger.DebugContext(ctx, "invalid address in path", "err", err.Error())
		a.respond(w, r, http.StatusBadRequest, errorResponse(http.StatusBadRequest, "invalid ip address"))
		return
	}

	network, err := a.Service.GetNetworkByAddress(ctx, address)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			a.respond(w, r, http.StatusNotFound, errorResponse(http.StatusNotFound, "network not found"))
		case errors.Is(err, domain.ErrInvalidInput):
			a.respond(w, r, http.StatusBadRequest, errorResponse(http.StatusBadRequest, "invalid ip address"))
		default:
			a.Logger.ErrorContext(ctx, "looking up network by address", "address", address, "err", err.Error())
			a.respond(w, r, http.StatusInternalServerError, internalError())
		}
		return
	}

	resp, err := networkToResponse(network)
	if err != nil {
		a.Logger.ErrorContext(ctx, "decoding stored network", "handle", network.Handle, "err", err.Error())
		a.respond(w, r, http.StatusInternalServerError, internalError())
		return
	}
	a.respond(w, r, http.StatusOK, resp)
}

// @Summary List network redirects
// @Tags redirects
// @Produce json
// @Success 200 {array} RedirectResponse
// @Router /api/v1/redirects/networks [get]
func (a *API) handleListNetworkRedirects(w http.ResponseWriter, r *http.Request) {
	a.respond(w, r, http.StatusOK, redirectsToResponse(a.Redirects.Entries()))
}

func (a *API) respond(w http.ResponseWriter, r *http.Request, status int, body any) {
	if err := encode(w, r, status, body); err != nil {
		a.Logger.ErrorContext(r.Context(), "cant respond to client", "err", err.Error())
	}
}
