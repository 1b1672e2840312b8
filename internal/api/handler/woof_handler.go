package handler

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"woofer/internal/app/ratelimit"
	"woofer/internal/app/service"
	"woofer/internal/common"

	"github.com/go-chi/chi/v5"
)

type WoofHandler struct {
	woofService *service.WoofService
}

func NewWoofHandler(woofService *service.WoofService) *WoofHandler {
	return &WoofHandler{woofService: woofService}
}

func (h *WoofHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listWoofs)
	r.Post("/", h.createWoof)
}

func (h *WoofHandler) listWoofs(w http.ResponseWriter, r *http.Request) {
	woofs, err := h.woofService.List(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, woofs)
}

func (h *WoofHandler) createWoof(w http.ResponseWriter, r *http.Request) {
	var req service.CreateWoofRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	woof, err := h.woofService.Create(r.Context(), clientKey(r), req)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			common.RespondWithMessage(w, http.StatusUnprocessableEntity, "Name and Content are required!")
			return
		}
		var lerr *ratelimit.LimitExceededError
		if errors.As(err, &lerr) {
			if secs := int(lerr.RetryAfter / time.Second); secs > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(secs))
			}
			common.RespondWithMessage(w, http.StatusTooManyRequests, "Too many requests, please try again later.")
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, woof)
}

// clientKey resolves the throttling identity for a request: the peer host
// after chi's RealIP middleware has applied X-Forwarded-For / X-Real-IP.
// Behind a proxy that strips those headers this collapses to the proxy's
// address for every caller.
func clientKey(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
