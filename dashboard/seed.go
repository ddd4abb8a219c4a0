// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dashboard

import (
	"fmt"
	"time"

	"github.com/danielhkuo/disaster-verify/models"
)

// Load replaces the collections with the given records.
// Item ids must be unique across verified and pending, incident ids across incidents.
func (c *Controller) Load(verified, pending []models.InformationItem, incidents []models.Incident) error {
	seen := make(map[int]bool, len(verified)+len(pending))
	for _, list := range [][]models.InformationItem{verified, pending} {
		for _, it := range list {
			if seen[it.ID] {
				return fmt.Errorf("duplicate information item id %d", it.ID)
			}
			if it.Upvotes < 0 || it.Downvotes < 0 {
				return fmt.Errorf("information item %d has negative votes", it.ID)
			}
			seen[it.ID] = true
		}
	}

	maxID := 0
	seenIncidents := make(map[int]bool, len(incidents))
	for _, inc := range incidents {
		if seenIncidents[inc.ID] {
			return fmt.Errorf("duplicate incident id %d", inc.ID)
		}
		seenIncidents[inc.ID] = true
		maxID = max(maxID, inc.ID)
	}

	c.mutate(func() bool {
		c.verified = append([]models.InformationItem{}, verified...)
		c.pending = append([]models.InformationItem{}, pending...)
		c.incidents = append([]models.Incident{}, incidents...)
		// never hand out an id at or below one already used
		c.lastIncidentID = max(c.lastIncidentID, maxID)
		return true
	})
	return nil
}

// Seed loads the starting data shown on a fresh dashboard
func (c *Controller) Seed() error {
	now := time.Now()
	return c.Load(
		[]models.InformationItem{
			{ID: 1, Text: "Emergency shelters open at City Hall"},
			{ID: 2, Text: "Highway 16 closed due to flooding"},
		},
		[]models.InformationItem{
			{ID: 3, Text: "Reports of power outages in downtown area"},
			{ID: 4, Text: "Unconfirmed sightings of structural damage"},
		},
		[]models.Incident{
			{ID: 1, Lat: 52.1332, Lng: -106.6700, Description: "Flooding near Athabasca River", Category: models.CategoryFlooding, ReportedAt: now},
			{ID: 2, Lat: 52.1432, Lng: -106.6800, Description: "Wildfire spotted in Jasper National Park", Category: models.CategoryFire, ReportedAt: now},
		},
	)
}
