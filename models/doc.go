// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the dashboard.

# Domain Types

  - InformationItem: a piece of disaster information with vote counts
  - Incident: a geolocated report with a category and description
  - LatLng: a map coordinate
  - MediaRef: an opaque pointer to a stored attachment
  - ReportForm: visibility and anchor of the incident report form

# Request Types

Types for parsing incoming JSON:

  - SearchRequest: term
  - AddFilterRequest: token
  - VoteRequest: direction, pending (defaults to true)
  - MapClickRequest: lat, lng
  - SubmitIncidentRequest: description, category, lat, lng

# Response Types

  - CategoryOption: value, label
  - FiltersResponse: filters
  - SubmitIncidentResponse: incident
  - ErrorResponse: error, message

# Constants

Categories, in the order the report form lists them:

	CategoryFlooding       = "flooding"
	CategoryFire           = "fire"
	CategoryEarthquake     = "earthquake"
	CategoryStorm          = "storm"
	CategoryLandslide      = "landslide"
	CategoryInfrastructure = "infrastructure"
	CategoryMedical        = "medical"
	CategoryOther          = "other"

Vote directions:

	DirectionUp   = "up"
	DirectionDown = "down"
*/
package models
