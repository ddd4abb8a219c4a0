// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/disaster-verify/cliparse"
	"github.com/danielhkuo/disaster-verify/dashboard"
	"github.com/danielhkuo/disaster-verify/mapview"
	"github.com/danielhkuo/disaster-verify/media"
	"github.com/danielhkuo/disaster-verify/middleware"
	"github.com/danielhkuo/disaster-verify/models"
	"github.com/danielhkuo/disaster-verify/reportform"
	"github.com/danielhkuo/disaster-verify/views"
)

type IncidentHandler struct {
	ctrl     *dashboard.Controller
	store    media.Store
	renderer *mapview.Renderer
	cfg      cliparse.Config
}

func NewIncidentHandler(ctrl *dashboard.Controller, store media.Store, renderer *mapview.Renderer, cfg cliparse.Config) *IncidentHandler {
	return &IncidentHandler{ctrl: ctrl, store: store, renderer: renderer, cfg: cfg}
}

// OpenReport handles POST /api/reports/open
func (h *IncidentHandler) OpenReport(w http.ResponseWriter, r *http.Request) {
	h.ctrl.OpenReport()
	middleware.Respond(w, r, http.StatusOK, views.Build(h.ctrl.Snapshot(), h.renderer))
}

// MapClick handles POST /api/map/clicks
func (h *IncidentHandler) MapClick(w http.ResponseWriter, r *http.Request) {
	var req models.MapClickRequest
	if middleware.IsFormPost(r) {
		lat, err1 := strconv.ParseFloat(r.FormValue("lat"), 64)
		lng, err2 := strconv.ParseFloat(r.FormValue("lng"), 64)
		if err1 != nil || err2 != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "lat and lng must be numbers")
			return
		}
		req.Lat, req.Lng = lat, lng
	} else if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !(models.LatLng{Lat: req.Lat, Lng: req.Lng}).Valid() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Location is outside the valid range.")
		return
	}

	h.ctrl.ReportIncidentAt(req.Lat, req.Lng)
	middleware.Respond(w, r, http.StatusOK, views.Build(h.ctrl.Snapshot(), h.renderer))
}

// CancelReport handles POST /api/reports/cancel
func (h *IncidentHandler) CancelReport(w http.ResponseWriter, r *http.Request) {
	reportform.Cancel(h.ctrl)
	middleware.Respond(w, r, http.StatusOK, views.Build(h.ctrl.Snapshot(), h.renderer))
}

// SubmitIncident handles POST /api/incidents
// Accepts JSON, multipart/form-data (with an optional "media" file) or a
// urlencoded form. A rejected submission leaves the dashboard unchanged.
func (h *IncidentHandler) SubmitIncident(w http.ResponseWriter, r *http.Request) {
	form, err := reportform.Parse(w, r, h.cfg.MaxUploadBytes())
	if err != nil {
		writeFormError(w, err)
		return
	}

	incident, err := reportform.Submit(r.Context(), form, h.ctrl, h.store)
	if err != nil {
		writeFormError(w, err)
		return
	}

	if incident.Media != nil {
		slog.Info("incident media stored", "incident", incident.ID, "media", incident.Media.ID, "size", incident.Media.Size)
	}
	middleware.Respond(w, r, http.StatusCreated, models.SubmitIncidentResponse{Incident: incident})
}

func writeFormError(w http.ResponseWriter, err error) {
	var verr *reportform.ValidationError
	switch {
	case errors.As(err, &verr):
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Message)
	case errors.Is(err, reportform.ErrTooLarge):
		middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "Attachment is too large.")
	case errors.Is(err, dashboard.ErrInvalidIncident):
		middleware.ErrorResponse(w, http.StatusBadRequest, reportform.MissingFieldsMessage)
	case errors.Is(err, reportform.ErrUnsupportedBody):
		middleware.ErrorResponse(w, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, reportform.ErrMalformedBody):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("failed to submit incident", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit incident")
	}
}

// GetMarkers handles GET /api/incidents/markers
func (h *IncidentHandler) GetMarkers(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.renderer.Render(h.ctrl.Snapshot().Incidents))
}

// MapReady handles POST /api/map/ready
func (h *IncidentHandler) MapReady(w http.ResponseWriter, r *http.Request) {
	h.renderer.MarkReady()
	middleware.JSONResponse(w, http.StatusOK, h.renderer.Render(h.ctrl.Snapshot().Incidents))
}
