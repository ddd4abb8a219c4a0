// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/disaster-verify/dashboard"
	"github.com/danielhkuo/disaster-verify/mapview"
	"github.com/danielhkuo/disaster-verify/models"
)

// Alert is a fixed notice in the critical alerts panel
type Alert struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// CriticalAlerts are shown above the lists on every dashboard
var CriticalAlerts = []Alert{
	{Title: "Evacuation Order", Body: "Immediate evacuation required for Jasper and surrounding areas."},
}

type IncidentView struct {
	models.Incident
	CategoryLabel string `json:"category_label"`
	MediaLabel    string `json:"media_label,omitempty"`
	MediaURL      string `json:"media_url,omitempty"`
}

type FormView struct {
	Visible  bool           `json:"visible"`
	Location *models.LatLng `json:"location,omitempty"`
	// Anchor is where the incident lands if the form sends no coordinates
	Anchor models.LatLng `json:"anchor"`
}

// Dashboard is the rendered form of a controller snapshot
type Dashboard struct {
	SearchTerm string                  `json:"search_term"`
	Filters    []string                `json:"filters"`
	Alerts     []Alert                 `json:"alerts"`
	Verified   ListView                `json:"verified"`
	Pending    ListView                `json:"pending"`
	Incidents  []IncidentView          `json:"incidents"`
	Map        mapview.View            `json:"map"`
	Form       FormView                `json:"form"`
	Categories []models.CategoryOption `json:"categories"`
}

// CategoryOptions lists the report form choices in display order
func CategoryOptions() []models.CategoryOption {
	cats := models.Categories()
	opts := make([]models.CategoryOption, len(cats))
	for i, c := range cats {
		opts[i] = models.CategoryOption{Value: c, Label: c.Label()}
	}
	return opts
}

// MediaLabel is the "name (size)" text shown for an attachment
func MediaLabel(ref *models.MediaRef) string {
	if ref == nil {
		return ""
	}
	return fmt.Sprintf("%s (%s)", ref.Name, humanize.Bytes(uint64(ref.Size)))
}

// Build renders a snapshot. A nil map renderer shows the map as not ready.
func Build(s dashboard.State, r *mapview.Renderer) Dashboard {
	d := Dashboard{
		SearchTerm: s.SearchTerm,
		Filters:    s.Filters,
		Alerts:     CriticalAlerts,
		Verified:   RenderList(s.Verified, false),
		Pending:    RenderList(s.Pending, true),
		Incidents:  make([]IncidentView, 0, len(s.Incidents)),
		Map:        r.Render(s.Incidents),
		Form:       FormView{Visible: s.Form.Visible, Location: s.Form.Location, Anchor: mapview.DefaultCenter},
		Categories: CategoryOptions(),
	}
	if d.Filters == nil {
		d.Filters = []string{}
	}
	if s.Form.Location != nil {
		d.Form.Anchor = *s.Form.Location
	}

	for _, inc := range s.Incidents {
		iv := IncidentView{Incident: inc, CategoryLabel: inc.Category.Label()}
		if inc.Media != nil {
			iv.MediaLabel = MediaLabel(inc.Media)
			iv.MediaURL = "/api/media/" + inc.Media.ID
		}
		d.Incidents = append(d.Incidents, iv)
	}
	return d
}
