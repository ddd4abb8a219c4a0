// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package hub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Filters []string `json:"filters"`
}

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	h := New()
	go h.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(h.ServeWS))
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return h, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) snapshot {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var s snapshot
	require.NoError(t, conn.ReadJSON(&s))
	return s
}

func TestPublishReachesClient(t *testing.T) {
	h, srv := startHub(t)

	h.Publish(snapshot{Filters: []string{"initial"}})
	conn := dial(t, srv)

	// the first frame proves the client is registered
	assert.Equal(t, []string{"initial"}, readSnapshot(t, conn).Filters)

	h.Publish(snapshot{Filters: []string{"fire"}})
	assert.Equal(t, []string{"fire"}, readSnapshot(t, conn).Filters)
}

func TestPublishReachesEveryClient(t *testing.T) {
	h, srv := startHub(t)

	h.Publish(snapshot{})
	a := dial(t, srv)
	b := dial(t, srv)
	readSnapshot(t, a)
	readSnapshot(t, b)

	h.Publish(snapshot{Filters: []string{"north"}})
	assert.Equal(t, []string{"north"}, readSnapshot(t, a).Filters)
	assert.Equal(t, []string{"north"}, readSnapshot(t, b).Filters)
}

func TestLateClientGetsLatest(t *testing.T) {
	h, srv := startHub(t)

	h.Publish(snapshot{Filters: []string{"old"}})
	h.Publish(snapshot{Filters: []string{"new"}})
	// let Run drain the queue
	time.Sleep(100 * time.Millisecond)

	conn := dial(t, srv)
	s := readSnapshot(t, conn)
	assert.Equal(t, []string{"new"}, s.Filters)
}

func TestLateClientGetsNewestAfterBurst(t *testing.T) {
	h, srv := startHub(t)

	const total = 500
	for i := 0; i < total; i++ {
		h.Publish(snapshot{Filters: []string{strconv.Itoa(i)}})
	}

	conn := dial(t, srv)
	want := strconv.Itoa(total - 1)
	// earlier snapshots may still arrive first; the newest must follow
	for {
		s := readSnapshot(t, conn)
		require.Len(t, s.Filters, 1)
		if s.Filters[0] == want {
			break
		}
	}
}

func TestPublishKeepsOnlyNewestPending(t *testing.T) {
	h := New()
	for i := 0; i < 3; i++ {
		h.Publish(snapshot{Filters: []string{strconv.Itoa(i)}})
	}

	assert.Len(t, h.notify, 1)
	h.mu.Lock()
	defer h.mu.Unlock()
	assert.JSONEq(t, `{"filters":["2"]}`, string(h.pending))
}

func TestPublishDoesNotBlockWithoutRun(t *testing.T) {
	h := New()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			h.Publish(snapshot{})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked")
	}
}
