// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/danielhkuo/disaster-verify/mapview"
	"github.com/danielhkuo/disaster-verify/models"
	"github.com/danielhkuo/disaster-verify/reportform"
	"github.com/danielhkuo/disaster-verify/testutil"
	"github.com/danielhkuo/disaster-verify/views"
)

func floatPtr(f float64) *float64 { return &f }

func TestSubmitIncident_JSON(t *testing.T) {
	tests := []struct {
		name            string
		requestBody     interface{}
		expectedStatus  int
		expectedMessage string
	}{
		{
			name: "valid report",
			requestBody: models.SubmitIncidentRequest{
				Description: "Bridge collapse",
				Category:    "infrastructure",
				Lat:         floatPtr(52.0),
				Lng:         floatPtr(-106.5),
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:            "empty description",
			requestBody:     models.SubmitIncidentRequest{Description: "", Category: "fire"},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: reportform.MissingFieldsMessage,
		},
		{
			name:            "whitespace description",
			requestBody:     models.SubmitIncidentRequest{Description: "   ", Category: "fire"},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: reportform.MissingFieldsMessage,
		},
		{
			name:            "missing category",
			requestBody:     models.SubmitIncidentRequest{Description: "Smoke"},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: reportform.MissingFieldsMessage,
		},
		{
			name:            "unknown category",
			requestBody:     models.SubmitIncidentRequest{Description: "Lava", Category: "volcano"},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: reportform.MissingFieldsMessage,
		},
		{
			name: "latitude out of range",
			requestBody: models.SubmitIncidentRequest{
				Description: "Storm",
				Category:    "storm",
				Lat:         floatPtr(120),
				Lng:         floatPtr(0),
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Location is outside the valid range.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			handler := NewIncidentHandler(env.ctrl, env.store, env.renderer, env.cfg)

			w := httptest.NewRecorder()
			handler.SubmitIncident(w, testutil.MakeRequest("POST", "/api/incidents", tt.requestBody, nil))

			testutil.AssertStatus(t, w, tt.expectedStatus)

			incidents := env.ctrl.Snapshot().Incidents
			if tt.expectedStatus != http.StatusCreated {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Message != tt.expectedMessage {
					t.Errorf("Expected message '%s', got '%s'", tt.expectedMessage, resp.Message)
				}
				if len(incidents) != 2 {
					t.Errorf("Expected incidents unchanged, got %d", len(incidents))
				}
				return
			}

			var resp models.SubmitIncidentResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Incident.ID != 3 {
				t.Errorf("Expected new id 3, got %d", resp.Incident.ID)
			}
			if resp.Incident.Category != models.CategoryInfrastructure || resp.Incident.Description != "Bridge collapse" {
				t.Errorf("Unexpected incident %+v", resp.Incident)
			}
			if resp.Incident.Lat != 52.0 || resp.Incident.Lng != -106.5 {
				t.Errorf("Unexpected location %v,%v", resp.Incident.Lat, resp.Incident.Lng)
			}
			if len(incidents) != 3 {
				t.Errorf("Expected 3 incidents, got %d", len(incidents))
			}
		})
	}
}

func TestSubmitIncident_BadBodies(t *testing.T) {
	tests := []struct {
		name           string
		contentType    string
		body           string
		expectedStatus int
	}{
		{"malformed JSON", "application/json", `{"description":`, http.StatusBadRequest},
		{"plain text", "text/plain", "Bridge collapse", http.StatusUnsupportedMediaType},
		{"no content type", "", "", http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			handler := NewIncidentHandler(env.ctrl, env.store, env.renderer, env.cfg)

			req := httptest.NewRequest("POST", "/api/incidents", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			handler.SubmitIncident(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if n := len(env.ctrl.Snapshot().Incidents); n != 2 {
				t.Errorf("Expected incidents unchanged, got %d", n)
			}
		})
	}
}

func TestSubmitIncident_Multipart(t *testing.T) {
	fields := map[string]string{
		"description": "Flooded underpass",
		"category":    "flooding",
		"lat":         "52.12",
		"lng":         "-106.66",
	}

	t.Run("image attachment is stored", func(t *testing.T) {
		env := newTestEnv(t)
		handler := NewIncidentHandler(env.ctrl, env.store, env.renderer, env.cfg)

		w := httptest.NewRecorder()
		handler.SubmitIncident(w, testutil.MakeMultipartRequest(t, "/api/incidents", fields, "underpass.png", pngBytes))

		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.SubmitIncidentResponse
		testutil.AssertJSON(t, w, &resp)
		ref := resp.Incident.Media
		if ref == nil {
			t.Fatal("Expected media reference on incident")
		}
		if ref.Name != "underpass.png" || ref.ContentType != "image/png" || ref.Size != int64(len(pngBytes)) {
			t.Errorf("Unexpected media reference %+v", ref)
		}

		_, data, err := env.store.Load(context.Background(), ref.ID)
		if err != nil {
			t.Fatalf("Failed to load stored media: %v", err)
		}
		if len(data) != len(pngBytes) {
			t.Errorf("Expected %d stored bytes, got %d", len(pngBytes), len(data))
		}
	})

	t.Run("no attachment", func(t *testing.T) {
		env := newTestEnv(t)
		handler := NewIncidentHandler(env.ctrl, env.store, env.renderer, env.cfg)

		w := httptest.NewRecorder()
		handler.SubmitIncident(w, testutil.MakeMultipartRequest(t, "/api/incidents", fields, "", nil))

		testutil.AssertStatus(t, w, http.StatusCreated)
		var resp models.SubmitIncidentResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Incident.Media != nil {
			t.Error("Expected no media reference")
		}
	})

	t.Run("non-media attachment rejected", func(t *testing.T) {
		env := newTestEnv(t)
		handler := NewIncidentHandler(env.ctrl, env.store, env.renderer, env.cfg)

		w := httptest.NewRecorder()
		handler.SubmitIncident(w, testutil.MakeMultipartRequest(t, "/api/incidents", fields, "notes.txt", []byte("just some text")))

		testutil.AssertStatus(t, w, http.StatusBadRequest)
		if n := len(env.ctrl.Snapshot().Incidents); n != 2 {
			t.Errorf("Expected incidents unchanged, got %d", n)
		}
	})

	t.Run("attachment too large", func(t *testing.T) {
		env := newTestEnv(t)
		handler := NewIncidentHandler(env.ctrl, env.store, env.renderer, env.cfg)

		big := append([]byte{}, pngBytes...)
		big = append(big, make([]byte, env.cfg.MaxUploadBytes())...)

		w := httptest.NewRecorder()
		handler.SubmitIncident(w, testutil.MakeMultipartRequest(t, "/api/incidents", fields, "huge.png", big))

		testutil.AssertStatus(t, w, http.StatusRequestEntityTooLarge)
		if n := len(env.ctrl.Snapshot().Incidents); n != 2 {
			t.Errorf("Expected incidents unchanged, got %d", n)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		env := newTestEnv(t)
		handler := NewIncidentHandler(env.ctrl, env.store, env.renderer, env.cfg)

		w := httptest.NewRecorder()
		handler.SubmitIncident(w, testutil.MakeMultipartRequest(t, "/api/incidents",
			map[string]string{"category": "fire"}, "fire.png", pngBytes))

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestSubmitIncident_FormPostRedirects(t *testing.T) {
	env := newTestEnv(t)
	handler := NewIncidentHandler(env.ctrl, env.store, env.renderer, env.cfg)

	values := url.Values{"description": {"Tree down on 8th Street"}, "category": {"storm"}}
	w := httptest.NewRecorder()
	handler.SubmitIncident(w, formRequest("POST", "/api/incidents", values))

	testutil.AssertStatus(t, w, http.StatusSeeOther)
	if n := len(env.ctrl.Snapshot().Incidents); n != 3 {
		t.Errorf("Expected 3 incidents, got %d", n)
	}
}

func TestMapClickThenSubmit(t *testing.T) {
	env := newTestEnv(t)
	handler := NewIncidentHandler(env.ctrl, env.store, env.renderer, env.cfg)

	w := httptest.NewRecorder()
	handler.MapClick(w, testutil.MakeRequest("POST", "/api/map/clicks", models.MapClickRequest{Lat: 52.0, Lng: -106.5}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var state views.Dashboard
	testutil.AssertJSON(t, w, &state)
	if !state.Form.Visible || state.Form.Location == nil {
		t.Fatal("Expected form visible with a location after map click")
	}

	// no coordinates in the body: the click location is used
	w = httptest.NewRecorder()
	handler.SubmitIncident(w, testutil.MakeRequest("POST", "/api/incidents",
		models.SubmitIncidentRequest{Description: "Bridge collapse", Category: "infrastructure"}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.SubmitIncidentResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Incident.Lat != 52.0 || resp.Incident.Lng != -106.5 {
		t.Errorf("Expected incident at click location, got %v,%v", resp.Incident.Lat, resp.Incident.Lng)
	}

	form := env.ctrl.Snapshot().Form
	if form.Visible || form.Location != nil {
		t.Errorf("Expected form cleared after submit, got %+v", form)
	}
}

func TestMapClick_Invalid(t *testing.T) {
	env := newTestEnv(t)
	handler := NewIncidentHandler(env.ctrl, env.store, env.renderer, env.cfg)

	tests := []struct {
		name string
		req  *http.Request
	}{
		{"out of range", testutil.MakeRequest("POST", "/api/map/clicks", models.MapClickRequest{Lat: 91, Lng: 0}, nil)},
		{"non-numeric form", formRequest("POST", "/api/map/clicks", url.Values{"lat": {"north"}, "lng": {"1"}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.MapClick(w, tt.req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)
			if env.ctrl.Snapshot().Form.Visible {
				t.Error("Expected form to stay hidden")
			}
		})
	}
}

func TestOpenReportWithoutLocation(t *testing.T) {
	env := newTestEnv(t)
	handler := NewIncidentHandler(env.ctrl, env.store, env.renderer, env.cfg)

	w := httptest.NewRecorder()
	handler.OpenReport(w, httptest.NewRequest("POST", "/api/reports/open", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	if form := env.ctrl.Snapshot().Form; !form.Visible || form.Location != nil {
		t.Fatalf("Expected visible form with no anchor, got %+v", form)
	}

	w = httptest.NewRecorder()
	handler.SubmitIncident(w, testutil.MakeRequest("POST", "/api/incidents",
		models.SubmitIncidentRequest{Description: "Gas leak", Category: "other"}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.SubmitIncidentResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Incident.Location() != mapview.DefaultCenter {
		t.Errorf("Expected incident at map center, got %+v", resp.Incident.Location())
	}
}

func TestCancelReport(t *testing.T) {
	env := newTestEnv(t)
	handler := NewIncidentHandler(env.ctrl, env.store, env.renderer, env.cfg)

	env.ctrl.ReportIncidentAt(52.0, -106.5)

	w := httptest.NewRecorder()
	handler.CancelReport(w, httptest.NewRequest("POST", "/api/reports/cancel", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	s := env.ctrl.Snapshot()
	if s.Form.Visible || s.Form.Location != nil {
		t.Errorf("Expected form cleared, got %+v", s.Form)
	}
	if len(s.Incidents) != 2 {
		t.Errorf("Expected no new incident, got %d", len(s.Incidents))
	}
}

func TestMarkersAndMapReady(t *testing.T) {
	env := newTestEnv(t)
	handler := NewIncidentHandler(env.ctrl, env.store, env.renderer, env.cfg)

	w := httptest.NewRecorder()
	handler.GetMarkers(w, httptest.NewRequest("GET", "/api/incidents/markers", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var view mapview.View
	testutil.AssertJSON(t, w, &view)
	if view.Ready || len(view.Markers) != 0 {
		t.Errorf("Expected not-ready map with no markers, got ready=%v markers=%d", view.Ready, len(view.Markers))
	}

	w = httptest.NewRecorder()
	handler.MapReady(w, httptest.NewRequest("POST", "/api/map/ready", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	view = mapview.View{}
	testutil.AssertJSON(t, w, &view)
	if !view.Ready || len(view.Markers) != 2 {
		t.Fatalf("Expected ready map with 2 markers, got ready=%v markers=%d", view.Ready, len(view.Markers))
	}
	m := view.Markers[0]
	if m.Icon.URL != "/icons/flooding.png" || m.Icon.Size != [2]int{25, 25} {
		t.Errorf("Unexpected icon %+v", m.Icon)
	}
	if m.Popup.Title != "flooding" || m.Popup.Body != "Flooding near Athabasca River" {
		t.Errorf("Unexpected popup %+v", m.Popup)
	}
}
