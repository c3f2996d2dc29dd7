package handlers

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/c4flow/studio-service/internal/models"
	"github.com/c4flow/studio-service/internal/service"
)

const idempotencyHeader = "Idempotency-Key"

type ContactService interface {
	Submit(ctx context.Context, in service.ContactInput) (service.ContactResult, error)
}

type ContactHandler struct {
	svc ContactService
}

func NewContactHandler(svc ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

type contactResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// Submit handles POST /contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	res, err := h.svc.Submit(r.Context(), service.ContactInput{
		ContactRequest: req,
		ClientIP:       clientIP(r),
		IdempotencyKey: r.Header.Get(idempotencyHeader),
		TraceID:        middleware.GetReqID(r.Context()),
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contactResponse{Success: true, ID: res.ID})
}

// clientIP expects RealIP to have run; RemoteAddr may still carry a port.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
