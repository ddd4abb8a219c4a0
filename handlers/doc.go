// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the disaster verification dashboard.

# Handler Types

Each handler is a struct holding the collaborators it needs:

  - DashboardHandler: page, state snapshot, search, filters, marker icons
  - VerificationHandler: votes and verification of pending items
  - IncidentHandler: report form lifecycle, incident submission, map markers
  - MediaHandler: serving stored attachments

All of them share one *dashboard.Controller:

	ctrl := dashboard.NewController()
	incidentHandler := handlers.NewIncidentHandler(ctrl, store, renderer, cfg)

# Request Bodies

Mutating endpoints accept JSON from API clients and plain HTML form posts from
the dashboard page. JSON callers get the resulting state back; form posts are
redirected to "/" with 303 See Other.

# Verification Flow

	POST /api/items/{id}/votes  → Vote ({"direction":"up"|"down","pending":true})
	POST /api/items/{id}/verify → Verify

Unknown ids are not errors: the unchanged state is returned. An invalid
direction is rejected with 400.

# Incident Reports

	POST /api/reports/open   → OpenReport (form with no location)
	POST /api/map/clicks     → MapClick (form anchored at the click)
	POST /api/reports/cancel → CancelReport
	POST /api/incidents      → SubmitIncident (JSON, urlencoded or multipart with "media")

A submission without coordinates lands at the form anchor, or the map center
when the form was opened from the header. Validation failures return 400 with
a message meant for the reporter and leave the dashboard untouched.
*/
package handlers
