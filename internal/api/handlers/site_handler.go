package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/c4flow/studio-service/internal/pricing"
	"github.com/c4flow/studio-service/internal/service"
)

type SiteService interface {
	ListClasses(ctx context.Context) ([]pricing.PricedItem, error)
	GetClass(ctx context.Context, slug string) (pricing.PricedItem, error)
	ListBundles(ctx context.Context) ([]service.BundleGroup, error)
	GetSchedule(ctx context.Context, today time.Time) (*service.ScheduleView, error)
	GetBanner(ctx context.Context) (*service.BannerView, error)
	Today() time.Time
	ParseDate(v string) (time.Time, error)
}

type SiteHandler struct {
	svc SiteService
}

func NewSiteHandler(svc SiteService) *SiteHandler {
	return &SiteHandler{svc: svc}
}

// ListClasses handles GET /classes
func (h *SiteHandler) ListClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.svc.ListClasses(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	if classes == nil {
		classes = []pricing.PricedItem{}
	}
	writeJSON(w, http.StatusOK, classes)
}

// GetClass handles GET /classes/{slug}
func (h *SiteHandler) GetClass(w http.ResponseWriter, r *http.Request) {
	class, err := h.svc.GetClass(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, class)
}

// ListBundles handles GET /bundles
func (h *SiteHandler) ListBundles(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.ListBundles(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

// GetSchedule handles GET /schedule. ?date=YYYY-MM-DD previews notices as
// they will appear on that day. 204 means the section is hidden.
func (h *SiteHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	today := h.svc.Today()
	if v := r.URL.Query().Get("date"); v != "" {
		d, err := h.svc.ParseDate(v)
		if err != nil {
			writeAppError(w, r, err)
			return
		}
		today = d
	}

	view, err := h.svc.GetSchedule(r.Context(), today)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	if view == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// GetBanner handles GET /banner
func (h *SiteHandler) GetBanner(w http.ResponseWriter, r *http.Request) {
	banner, err := h.svc.GetBanner(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	if banner == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, banner)
}

func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
