// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the disaster information verification server.

The server hosts a dashboard where people report geolocated incidents, browse
pending and verified information, and crowd-verify pending items by voting.
Dashboard state lives in memory; attachments go to a SQL media store.

# Starting the Server

With defaults (in-memory SQLite, seeded dashboard, port 3318):

	go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..." -chatbot "https://chat.example.com/"

A .env file in the working directory is loaded before flags are parsed.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): Media store connection string (default: in-memory SQLite)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - MAP_TILE_URL (-tiles): Tile URL template for the incident map
  - CHATBOT_BASE_URL (-chatbot): Chat assistant loader location; empty disables it
  - MAX_UPLOAD_MB (-max-upload): Attachment size limit (default: 10)
  - SEED (-seed): Load the starting dashboard data (default: true)

# Architecture

  - dashboard: Verification state controller (the single owner of state)
  - reportform: Incident report form parsing and validation
  - views: List rendering, dashboard view model and HTML page
  - mapview: Map markers, readiness gate and marker icons
  - chatwidget: Chat assistant loader lifecycle
  - media: Attachment store on database/sql
  - hub: Websocket broadcast of dashboard snapshots
  - handlers, router, middleware: HTTP surface
  - models: Shared data and request/response types
  - ident: Random ids and content digests
  - db: Connection and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
