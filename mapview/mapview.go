// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mapview

import (
	"sync/atomic"

	"github.com/danielhkuo/disaster-verify/models"
)

const (
	DefaultZoom     = 13
	IconSize        = 25
	TileAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
)

// DefaultCenter is where the map opens
var DefaultCenter = models.LatLng{Lat: 52.1332, Lng: -106.6700}

type Icon struct {
	URL  string `json:"url"`
	Size [2]int `json:"size"`
}

type Popup struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type Marker struct {
	IncidentID int           `json:"incident_id"`
	Position   models.LatLng `json:"position"`
	Icon       Icon          `json:"icon"`
	Popup      Popup         `json:"popup"`
}

// View is everything the browser map needs
type View struct {
	Ready       bool          `json:"ready"`
	Center      models.LatLng `json:"center"`
	Zoom        int           `json:"zoom"`
	TileURL     string        `json:"tile_url"`
	Attribution string        `json:"attribution"`
	Markers     []Marker      `json:"markers"`
}

// IconURL returns the marker icon path for a category.
// Unknown categories still get a path; a missing file is the browser's problem.
func IconURL(c models.Category) string {
	return "/icons/" + string(c) + ".png"
}

// Renderer turns incidents into map markers. It stays unavailable until
// MarkReady is called, and renders an empty, not-ready view until then.
type Renderer struct {
	tileURL string
	ready   atomic.Bool
}

func NewRenderer(tileURL string) *Renderer {
	return &Renderer{tileURL: tileURL}
}

// MarkReady signals that the browser environment can host the map
func (r *Renderer) MarkReady() {
	r.ready.Store(true)
}

func (r *Renderer) Ready() bool {
	return r != nil && r.ready.Load()
}

// Markers returns one marker per incident, in incident order
func Markers(incidents []models.Incident) []Marker {
	markers := make([]Marker, 0, len(incidents))
	for _, inc := range incidents {
		markers = append(markers, Marker{
			IncidentID: inc.ID,
			Position:   inc.Location(),
			Icon:       Icon{URL: IconURL(inc.Category), Size: [2]int{IconSize, IconSize}},
			Popup:      Popup{Title: string(inc.Category), Body: inc.Description},
		})
	}
	return markers
}

// Render builds the map view. A nil or not-ready renderer yields no markers.
func (r *Renderer) Render(incidents []models.Incident) View {
	v := View{
		Center:      DefaultCenter,
		Zoom:        DefaultZoom,
		Attribution: TileAttribution,
		Markers:     []Marker{},
	}
	if r == nil {
		return v
	}
	v.TileURL = r.tileURL
	if !r.Ready() {
		return v
	}
	v.Ready = true
	v.Markers = Markers(incidents)
	return v
}
