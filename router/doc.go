// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the disaster verification dashboard.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(ctrl, store, renderer, live, chat, cfg)

# Endpoints

Health and page:

	GET /health
	GET /                  - Dashboard HTML
	GET /icons/{file}      - Marker icon, file is "<category>.png"

State, search and filters:

	GET    /api/state
	GET    /api/categories
	POST   /api/search
	POST   /api/filters
	POST   /api/filters/remove - HTML form variant of the DELETE below
	DELETE /api/filters/{token}

Verification:

	POST /api/items/{id}/votes
	POST /api/items/{id}/verify

Incidents and map:

	POST /api/reports/open
	POST /api/reports/cancel
	POST /api/map/clicks
	POST /api/map/ready
	POST /api/incidents
	GET  /api/incidents/markers

Attachments and live updates:

	GET /api/media/{id}
	GET /ws - Websocket stream of dashboard snapshots

All routes except health and icons are wrapped with middleware.WithLogging.
*/
package router
