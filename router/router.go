// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/disaster-verify/chatwidget"
	"github.com/danielhkuo/disaster-verify/cliparse"
	"github.com/danielhkuo/disaster-verify/dashboard"
	"github.com/danielhkuo/disaster-verify/handlers"
	"github.com/danielhkuo/disaster-verify/hub"
	"github.com/danielhkuo/disaster-verify/mapview"
	"github.com/danielhkuo/disaster-verify/media"
	"github.com/danielhkuo/disaster-verify/middleware"
)

func NewRouter(ctrl *dashboard.Controller, store media.Store, renderer *mapview.Renderer, live *hub.Hub, chat *chatwidget.Loader, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(ctrl, renderer, chat)
	verificationHandler := handlers.NewVerificationHandler(ctrl, renderer)
	incidentHandler := handlers.NewIncidentHandler(ctrl, store, renderer, cfg)
	mediaHandler := handlers.NewMediaHandler(store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Dashboard page and static marker icons
	mux.HandleFunc("GET /{$}", middleware.WithLogging(dashboardHandler.GetPage))
	mux.HandleFunc("GET /icons/{file}", dashboardHandler.GetIcon)

	// State, search and filters
	mux.HandleFunc("GET /api/state", middleware.WithLogging(dashboardHandler.GetState))
	mux.HandleFunc("GET /api/categories", middleware.WithLogging(dashboardHandler.GetCategories))
	mux.HandleFunc("POST /api/search", middleware.WithLogging(dashboardHandler.Search))
	mux.HandleFunc("POST /api/filters", middleware.WithLogging(dashboardHandler.AddFilter))
	mux.HandleFunc("POST /api/filters/remove", middleware.WithLogging(dashboardHandler.RemoveFilter))
	mux.HandleFunc("DELETE /api/filters/{token}", middleware.WithLogging(dashboardHandler.RemoveFilter))

	// Verification
	mux.HandleFunc("POST /api/items/{id}/votes", middleware.WithLogging(verificationHandler.Vote))
	mux.HandleFunc("POST /api/items/{id}/verify", middleware.WithLogging(verificationHandler.Verify))

	// Incident reporting and the map
	mux.HandleFunc("POST /api/reports/open", middleware.WithLogging(incidentHandler.OpenReport))
	mux.HandleFunc("POST /api/reports/cancel", middleware.WithLogging(incidentHandler.CancelReport))
	mux.HandleFunc("POST /api/map/clicks", middleware.WithLogging(incidentHandler.MapClick))
	mux.HandleFunc("POST /api/map/ready", middleware.WithLogging(incidentHandler.MapReady))
	mux.HandleFunc("POST /api/incidents", middleware.WithLogging(incidentHandler.SubmitIncident))
	mux.HandleFunc("GET /api/incidents/markers", middleware.WithLogging(incidentHandler.GetMarkers))

	// Attachments
	mux.HandleFunc("GET /api/media/{id}", middleware.WithLogging(mediaHandler.GetMedia))

	// Live updates
	if live != nil {
		mux.HandleFunc("GET /ws", middleware.WithLogging(live.ServeWS))
	}

	return mux
}
