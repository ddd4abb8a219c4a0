// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dashboard

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/danielhkuo/disaster-verify/models"
)

var ErrInvalidIncident = errors.New("invalid incident")

// IncidentDraft carries the fields of a new incident before an id is assigned.
// With AtFormAnchor set, the incident lands at the report form's anchor when
// one is set at submit time, and at Lat/Lng otherwise.
type IncidentDraft struct {
	Description  string
	Category     models.Category
	Media        *models.MediaRef
	Lat          float64
	Lng          float64
	AtFormAnchor bool
}

// State is a read-only copy of everything the controller owns
type State struct {
	Verified   []models.InformationItem `json:"verified"`
	Pending    []models.InformationItem `json:"pending"`
	Incidents  []models.Incident        `json:"incidents"`
	Filters    []string                 `json:"filters"`
	SearchTerm string                   `json:"search_term"`
	Form       models.ReportForm        `json:"form"`
}

// Controller owns the verified, pending and incident collections.
// Every operation takes the same lock, so operations are atomic with respect to each other.
type Controller struct {
	mu sync.Mutex

	verified  []models.InformationItem
	pending   []models.InformationItem
	incidents []models.Incident
	filters   []string

	searchTerm  string
	formVisible bool
	formAnchor  *models.LatLng

	lastIncidentID int
	version        uint64
	listeners      []func(State)
	now            func() time.Time

	// notifyMu orders listener calls; delivered is the newest version sent
	notifyMu  sync.Mutex
	delivered uint64
}

func NewController() *Controller {
	return &Controller{now: time.Now}
}

// Subscribe registers fn to receive a snapshot after every mutation.
// Listeners run on the mutating goroutine after the state lock is released,
// one at a time and never with a snapshot older than one already delivered.
// A listener must not call mutating methods.
func (c *Controller) Subscribe(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Snapshot returns deep copies of the current state
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() State {
	s := State{
		Verified:   append([]models.InformationItem{}, c.verified...),
		Pending:    append([]models.InformationItem{}, c.pending...),
		Incidents:  make([]models.Incident, len(c.incidents)),
		Filters:    append([]string{}, c.filters...),
		SearchTerm: c.searchTerm,
		Form:       models.ReportForm{Visible: c.formVisible},
	}
	for i, inc := range c.incidents {
		if inc.Media != nil {
			m := *inc.Media
			inc.Media = &m
		}
		s.Incidents[i] = inc
	}
	if c.formAnchor != nil {
		loc := *c.formAnchor
		s.Form.Location = &loc
	}
	return s
}

// mutate runs fn under the lock and notifies listeners when fn reports a change
func (c *Controller) mutate(fn func() bool) {
	c.mu.Lock()
	if !fn() {
		c.mu.Unlock()
		return
	}
	c.version++
	version := c.version
	listeners := c.listeners
	var snap State
	if len(listeners) > 0 {
		snap = c.snapshotLocked()
	}
	c.mu.Unlock()

	if len(listeners) == 0 {
		return
	}

	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	if version <= c.delivered {
		// a later mutation already delivered newer state
		return
	}
	c.delivered = version
	for _, l := range listeners {
		l(snap)
	}
}

// Search records the term. There is no search backend; the term is only logged.
func (c *Controller) Search(term string) {
	slog.Info("search requested", "term", term)
	c.mutate(func() bool {
		c.searchTerm = term
		return true
	})
}

// AddFilter appends token to the active filters. Duplicates are kept.
func (c *Controller) AddFilter(token string) {
	c.mutate(func() bool {
		c.filters = append(c.filters, token)
		return true
	})
}

// RemoveFilter removes every occurrence of token
func (c *Controller) RemoveFilter(token string) {
	c.mutate(func() bool {
		kept := c.filters[:0]
		for _, f := range c.filters {
			if f != token {
				kept = append(kept, f)
			}
		}
		changed := len(kept) != len(c.filters)
		c.filters = kept
		return changed
	})
}

// Verify moves the pending item with id to the end of the verified list.
// Unknown ids are ignored.
func (c *Controller) Verify(id int) {
	c.mutate(func() bool {
		idx := indexOf(c.pending, id)
		if idx < 0 {
			return false
		}
		item := c.pending[idx]
		c.pending = append(c.pending[:idx], c.pending[idx+1:]...)
		c.verified = append(c.verified, item)
		slog.Info("information verified", "id", id, "upvotes", item.Upvotes, "downvotes", item.Downvotes)
		return true
	})
}

// Vote increments one counter of the item with id in the pending list when
// fromPending is set, otherwise in the verified list. Unknown ids are ignored.
func (c *Controller) Vote(id int, dir models.Direction, fromPending bool) error {
	if dir != models.DirectionUp && dir != models.DirectionDown {
		return fmt.Errorf("vote on %d: %w", id, models.ErrInvalidDirection)
	}

	c.mutate(func() bool {
		items := c.verified
		if fromPending {
			items = c.pending
		}
		idx := indexOf(items, id)
		if idx < 0 {
			return false
		}
		if dir == models.DirectionUp {
			items[idx].Upvotes++
		} else {
			items[idx].Downvotes++
		}
		return true
	})
	return nil
}

// OpenReport shows the report form without a location
func (c *Controller) OpenReport() {
	c.mutate(func() bool {
		c.formVisible = true
		c.formAnchor = nil
		return true
	})
}

// ReportIncidentAt shows the report form anchored at the given point
func (c *Controller) ReportIncidentAt(lat, lng float64) {
	c.mutate(func() bool {
		c.formVisible = true
		c.formAnchor = &models.LatLng{Lat: lat, Lng: lng}
		return true
	})
}

// CancelReport hides the report form without creating an incident
func (c *Controller) CancelReport() {
	c.mutate(func() bool {
		changed := c.formVisible || c.formAnchor != nil
		c.formVisible = false
		c.formAnchor = nil
		return changed
	})
}

// SubmitIncident appends a new incident and hides the report form.
// Ids come from a counter and are never reused.
func (c *Controller) SubmitIncident(d IncidentDraft) (models.Incident, error) {
	if err := validateDraft(d); err != nil {
		return models.Incident{}, err
	}

	var created models.Incident
	var err error
	c.mutate(func() bool {
		loc := models.LatLng{Lat: d.Lat, Lng: d.Lng}
		if d.AtFormAnchor && c.formAnchor != nil {
			loc = *c.formAnchor
		}
		if !loc.Valid() {
			err = fmt.Errorf("%w: location %.4f,%.4f out of range", ErrInvalidIncident, loc.Lat, loc.Lng)
			return false
		}

		c.lastIncidentID++
		created = models.Incident{
			ID:          c.lastIncidentID,
			Lat:         loc.Lat,
			Lng:         loc.Lng,
			Category:    d.Category,
			Description: d.Description,
			Media:       d.Media,
			ReportedAt:  c.now(),
		}
		c.incidents = append(c.incidents, created)
		c.formVisible = false
		c.formAnchor = nil
		return true
	})
	if err != nil {
		return models.Incident{}, err
	}

	slog.Info("incident reported", "id", created.ID, "category", created.Category,
		"lat", created.Lat, "lng", created.Lng)
	return created, nil
}

func validateDraft(d IncidentDraft) error {
	if strings.TrimSpace(d.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidIncident)
	}
	if !d.Category.Valid() {
		return fmt.Errorf("%w: category %q", ErrInvalidIncident, d.Category)
	}
	return nil
}

func indexOf(items []models.InformationItem, id int) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
