// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/disaster-verify/chatwidget"
	"github.com/danielhkuo/disaster-verify/dashboard"
	"github.com/danielhkuo/disaster-verify/mapview"
	"github.com/danielhkuo/disaster-verify/middleware"
	"github.com/danielhkuo/disaster-verify/models"
	"github.com/danielhkuo/disaster-verify/views"
)

type DashboardHandler struct {
	ctrl     *dashboard.Controller
	renderer *mapview.Renderer
	chat     *chatwidget.Loader
}

func NewDashboardHandler(ctrl *dashboard.Controller, renderer *mapview.Renderer, chat *chatwidget.Loader) *DashboardHandler {
	return &DashboardHandler{ctrl: ctrl, renderer: renderer, chat: chat}
}

func (h *DashboardHandler) view() views.Dashboard {
	return views.Build(h.ctrl.Snapshot(), h.renderer)
}

// GetPage handles GET /
func (h *DashboardHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	var widget *chatwidget.Widget
	if wgt, ok := h.chat.Mount(); ok {
		defer h.chat.Unmount()
		widget = &wgt
	}

	var buf bytes.Buffer
	if err := views.RenderPage(&buf, h.view(), widget); err != nil {
		slog.Error("failed to render dashboard", "error", err)
		http.Error(w, "Failed to render dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// GetState handles GET /api/state
func (h *DashboardHandler) GetState(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.view())
}

// GetCategories handles GET /api/categories
func (h *DashboardHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, views.CategoryOptions())
}

// Search handles POST /api/search
func (h *DashboardHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if middleware.IsFormPost(r) {
		req.Term = r.FormValue("term")
	} else if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.ctrl.Search(req.Term)
	middleware.Respond(w, r, http.StatusOK, h.view())
}

// AddFilter handles POST /api/filters
func (h *DashboardHandler) AddFilter(w http.ResponseWriter, r *http.Request) {
	var req models.AddFilterRequest
	if middleware.IsFormPost(r) {
		req.Token = r.FormValue("token")
	} else if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// a dismissed prompt on the page submits nothing
	if strings.TrimSpace(req.Token) == "" {
		if middleware.IsFormPost(r) {
			middleware.Respond(w, r, http.StatusOK, nil)
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "token is required")
		return
	}

	h.ctrl.AddFilter(req.Token)
	middleware.Respond(w, r, http.StatusCreated, models.FiltersResponse{Filters: h.ctrl.Snapshot().Filters})
}

// RemoveFilter handles DELETE /api/filters/{token} and the page's
// POST /api/filters/remove form
func (h *DashboardHandler) RemoveFilter(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	if token == "" && middleware.IsFormPost(r) {
		token = r.FormValue("token")
	}
	if token == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "token is required")
		return
	}

	h.ctrl.RemoveFilter(token)
	middleware.Respond(w, r, http.StatusOK, models.FiltersResponse{Filters: h.ctrl.Snapshot().Filters})
}

// GetIcon handles GET /icons/{file}, where file is "<category>.png"
func (h *DashboardHandler) GetIcon(w http.ResponseWriter, r *http.Request) {
	name, ok := strings.CutSuffix(r.PathValue("file"), ".png")
	if !ok {
		http.NotFound(w, r)
		return
	}
	category, err := models.ParseCategory(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	data, err := mapview.IconPNG(category)
	if err != nil {
		slog.Error("failed to draw icon", "category", category, "error", err)
		http.Error(w, "Failed to draw icon", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(data)
}
