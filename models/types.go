// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"time"
)

var (
	ErrUnknownCategory  = errors.New("unknown incident category")
	ErrInvalidDirection = errors.New("vote direction must be up or down")
)

// Category is one of the fixed incident categories.
type Category string

const (
	CategoryFlooding       Category = "flooding"
	CategoryFire           Category = "fire"
	CategoryEarthquake     Category = "earthquake"
	CategoryStorm          Category = "storm"
	CategoryLandslide      Category = "landslide"
	CategoryInfrastructure Category = "infrastructure"
	CategoryMedical        Category = "medical"
	CategoryOther          Category = "other"
)

var categoryLabels = map[Category]string{
	CategoryFlooding:       "Flooding",
	CategoryFire:           "Fire",
	CategoryEarthquake:     "Earthquake",
	CategoryStorm:          "Severe Storm",
	CategoryLandslide:      "Landslide",
	CategoryInfrastructure: "Infrastructure Damage",
	CategoryMedical:        "Medical Emergency",
	CategoryOther:          "Other",
}

// Categories returns every category in display order
func Categories() []Category {
	return []Category{
		CategoryFlooding,
		CategoryFire,
		CategoryEarthquake,
		CategoryStorm,
		CategoryLandslide,
		CategoryInfrastructure,
		CategoryMedical,
		CategoryOther,
	}
}

// ParseCategory accepts only the exact lowercase values
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := categoryLabels[c]; !ok {
		return "", ErrUnknownCategory
	}
	return c, nil
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the human readable name, or the raw value for unknown categories
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Direction of a vote
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionUp, DirectionDown:
		return Direction(s), nil
	}
	return "", ErrInvalidDirection
}

// Domain types

type InformationItem struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the point is inside the geographic range
func (p LatLng) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// MediaRef points at an attachment held by the media store.
// The dashboard never looks inside it.
type MediaRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type Incident struct {
	ID          int       `json:"id"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	Media       *MediaRef `json:"media,omitempty"`
	ReportedAt  time.Time `json:"reported_at"`
}

func (i Incident) Location() LatLng {
	return LatLng{Lat: i.Lat, Lng: i.Lng}
}

// ReportForm is the visibility state of the incident report form
type ReportForm struct {
	Visible  bool    `json:"visible"`
	Location *LatLng `json:"location,omitempty"`
}

// Request types

type SearchRequest struct {
	Term string `json:"term"`
}

type AddFilterRequest struct {
	Token string `json:"token"`
}

type VoteRequest struct {
	Direction string `json:"direction"`
	Pending   *bool  `json:"pending,omitempty"`
}

type MapClickRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type SubmitIncidentRequest struct {
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

// Response types

type CategoryOption struct {
	Value Category `json:"value"`
	Label string   `json:"label"`
}

type FiltersResponse struct {
	Filters []string `json:"filters"`
}

type SubmitIncidentResponse struct {
	Incident Incident `json:"incident"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
