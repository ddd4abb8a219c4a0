// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reportform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/disaster-verify/dashboard"
	"github.com/danielhkuo/disaster-verify/mapview"
	"github.com/danielhkuo/disaster-verify/media"
	"github.com/danielhkuo/disaster-verify/models"
)

// MissingFieldsMessage is shown when description or category is absent
const MissingFieldsMessage = "Please provide a description and select a category."

var (
	ErrTooLarge        = errors.New("attachment too large")
	ErrUnsupportedBody = errors.New("unsupported content type")
	ErrMalformedBody   = errors.New("malformed request body")
)

// ValidationError carries a message meant for the person filling in the form
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Form is one submission of the incident report form
type Form struct {
	Description string
	Category    string
	Lat         float64
	Lng         float64
	HasLocation bool
	Media       *media.Upload
}

// Parse reads a JSON, multipart or urlencoded submission.
// Media is only accepted in multipart bodies, under the "media" field.
func Parse(w http.ResponseWriter, r *http.Request, maxBytes int64) (Form, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch ct {
	case "application/json":
		return parseJSON(r)
	case "multipart/form-data":
		return parseMultipart(w, r, maxBytes)
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return Form{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
		}
		return fromValues(r.PostFormValue)
	}
	return Form{}, fmt.Errorf("%w %q", ErrUnsupportedBody, ct)
}

func parseJSON(r *http.Request) (Form, error) {
	defer r.Body.Close()

	var req models.SubmitIncidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return Form{}, fmt.Errorf("%w: invalid JSON: %w", ErrMalformedBody, err)
	}

	f := Form{Description: req.Description, Category: req.Category}
	if req.Lat != nil && req.Lng != nil {
		f.Lat, f.Lng, f.HasLocation = *req.Lat, *req.Lng, true
	}
	return f, nil
}

func parseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64) (Form, error) {
	// leave room for the text fields around the file
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+1<<20)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return Form{}, ErrTooLarge
		}
		return Form{}, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}

	f, err := fromValues(r.FormValue)
	if err != nil {
		return Form{}, err
	}

	file, header, err := r.FormFile("media")
	if errors.Is(err, http.ErrMissingFile) {
		return f, nil
	}
	if err != nil {
		return Form{}, fmt.Errorf("%w: media part: %w", ErrMalformedBody, err)
	}
	defer file.Close()

	if header.Size > maxBytes {
		return Form{}, ErrTooLarge
	}
	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return Form{}, fmt.Errorf("failed to read media: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return Form{}, ErrTooLarge
	}
	if len(data) > 0 {
		f.Media = &media.Upload{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		}
	}
	return f, nil
}

func fromValues(get func(string) string) (Form, error) {
	f := Form{
		Description: get("description"),
		Category:    get("category"),
	}

	latStr, lngStr := strings.TrimSpace(get("lat")), strings.TrimSpace(get("lng"))
	if latStr == "" || lngStr == "" {
		return f, nil
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return Form{}, &ValidationError{Message: "Latitude must be a number."}
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return Form{}, &ValidationError{Message: "Longitude must be a number."}
	}
	f.Lat, f.Lng, f.HasLocation = lat, lng, true
	return f, nil
}

// Validate checks the form before anything is stored
func (f Form) Validate() error {
	if strings.TrimSpace(f.Description) == "" {
		return &ValidationError{Message: MissingFieldsMessage}
	}
	if _, err := models.ParseCategory(f.Category); err != nil {
		return &ValidationError{Message: MissingFieldsMessage}
	}
	if f.HasLocation && !(models.LatLng{Lat: f.Lat, Lng: f.Lng}).Valid() {
		return &ValidationError{Message: "Location is outside the valid range."}
	}
	return nil
}

// Draft builds the incident draft. A submitted point wins; otherwise the
// controller places the incident at the form anchor, or the map center without one.
func (f Form) Draft(ref *models.MediaRef) dashboard.IncidentDraft {
	category, _ := models.ParseCategory(f.Category)
	d := dashboard.IncidentDraft{
		Description: strings.TrimSpace(f.Description),
		Category:    category,
		Media:       ref,
	}
	if f.HasLocation {
		d.Lat, d.Lng = f.Lat, f.Lng
		return d
	}
	d.Lat, d.Lng = mapview.DefaultCenter.Lat, mapview.DefaultCenter.Lng
	d.AtFormAnchor = true
	return d
}

// Submit validates the form, stores any attachment and creates the incident.
// A validation failure leaves the dashboard untouched.
func Submit(ctx context.Context, f Form, ctrl *dashboard.Controller, store media.Store) (models.Incident, error) {
	if err := f.Validate(); err != nil {
		return models.Incident{}, err
	}

	var ref *models.MediaRef
	if f.Media != nil {
		if store == nil {
			return models.Incident{}, &ValidationError{Message: "Media uploads are not available."}
		}
		if !media.Accepted(media.DetectContentType(*f.Media)) {
			return models.Incident{}, &ValidationError{Message: "Only image or video files can be attached."}
		}
		saved, err := store.Save(ctx, *f.Media)
		if err != nil {
			return models.Incident{}, fmt.Errorf("failed to store media: %w", err)
		}
		ref = &saved
	}

	return ctrl.SubmitIncident(f.Draft(ref))
}

// Cancel discards the form
func Cancel(ctrl *dashboard.Controller) {
	ctrl.CancelReport()
}
