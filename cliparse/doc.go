// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Media store connection string (default: in-memory sqlite)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - MapTileURL: Tile template for the incident map (default: OpenStreetMap)
  - ChatbotBaseURL: Chat assistant loader location (empty disables the widget)
  - MaxUploadMB: Media upload limit (default: 10)
  - Seed: Load the starting dashboard records (default: true)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-tiles       Map tile URL
	-chatbot     Chat assistant base URL
	-max-upload  Upload limit in MB
	-seed        true or false

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	MAP_TILE_URL     → -tiles
	CHATBOT_BASE_URL → -chatbot
	MAX_UPLOAD_MB    → -max-upload
	SEED             → -seed

CLI flags take precedence over environment variables. main loads a .env file
into the environment before parsing.

# Validation

ParseFlags returns an error when:

  - PORT or MAX_UPLOAD_MB is not a number
  - the database type is neither sqlite nor postgres
  - postgres is selected without a DATABASE_URL
*/
package cliparse
