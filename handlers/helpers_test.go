// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"testing"

	"github.com/danielhkuo/disaster-verify/cliparse"
	"github.com/danielhkuo/disaster-verify/dashboard"
	"github.com/danielhkuo/disaster-verify/mapview"
	"github.com/danielhkuo/disaster-verify/media"
	"github.com/danielhkuo/disaster-verify/testutil"
)

// pngBytes is enough of a PNG for content sniffing
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

type testEnv struct {
	ctrl     *dashboard.Controller
	store    *media.SQLStore
	renderer *mapview.Renderer
	cfg      cliparse.Config
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { db.Close() })

	cfg := testutil.GetTestConfig()
	return testEnv{
		ctrl:     testutil.NewSeededController(t),
		store:    media.NewSQLStore(db),
		renderer: mapview.NewRenderer(cfg.MapTileURL),
		cfg:      cfg,
	}
}
