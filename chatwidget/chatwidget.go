// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package chatwidget manages the third-party chat assistant loader.
// It never sees dashboard state; pages only mount and unmount it.
package chatwidget

import (
	"log/slog"
	"net/url"
	"strings"
	"sync"
)

const loaderScript = "lex-web-ui-loader.min.js"

// Options are passed to the loader's IframeLoader constructor
type Options struct {
	BaseURL           string `json:"baseUrl"`
	ShouldLoadMinDeps bool   `json:"shouldLoadMinDeps"`
}

// Widget is what a page needs to embed the loader
type Widget struct {
	ScriptURL string
	Options   Options
}

// Loader is a process-wide lifecycle for the chat widget.
// Mount and Unmount are reference counted.
type Loader struct {
	mu      sync.Mutex
	baseURL string
	mounts  int
}

var (
	global     *Loader
	globalOnce sync.Once
)

// Init configures the process-wide loader. Only the first call has effect.
func Init(baseURL string) *Loader {
	globalOnce.Do(func() {
		global = New(baseURL)
	})
	return global
}

// New returns a standalone loader; most callers want Init
func New(baseURL string) *Loader {
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Loader{baseURL: baseURL}
}

// Enabled reports whether a loader location is configured
func (l *Loader) Enabled() bool {
	return l != nil && l.baseURL != ""
}

// Origin returns the scheme and host the loader script is served from,
// or "" when the widget is disabled or the base URL has no host
func (l *Loader) Origin() string {
	if !l.Enabled() {
		return ""
	}
	u, err := url.Parse(l.baseURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// Mount returns the widget to embed. ok is false when the widget is disabled.
func (l *Loader) Mount() (w Widget, ok bool) {
	if !l.Enabled() {
		return Widget{}, false
	}

	l.mu.Lock()
	l.mounts++
	n := l.mounts
	l.mu.Unlock()

	if n == 1 {
		slog.Info("chat widget mounted", "base_url", l.baseURL)
	}
	return Widget{
		ScriptURL: l.baseURL + loaderScript,
		Options:   Options{BaseURL: l.baseURL, ShouldLoadMinDeps: true},
	}, true
}

// Unmount releases one Mount. Extra calls are ignored.
func (l *Loader) Unmount() {
	if !l.Enabled() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.mounts == 0 {
		return
	}
	l.mounts--
	if l.mounts == 0 {
		slog.Info("chat widget unmounted")
	}
}

// Mounted returns the number of outstanding mounts
func (l *Loader) Mounted() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mounts
}
