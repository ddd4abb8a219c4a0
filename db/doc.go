// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the media store database and creates its schema.

Dashboard state is never written here; only uploaded attachments are.

	conn, err := db.Open(cfg)
	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

SQLite (modernc.org/sqlite, in-memory by default) and PostgreSQL (lib/pq) are
supported. CreateSchema is safe to call multiple times.

# Tables

  - media: attachment name, content type, size, SHA-256 digest and bytes
*/
package db
