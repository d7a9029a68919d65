package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ayusman/vyayam/internal/exercise"
)

func TestLiveHandler_CloseStopsBroadcast(t *testing.T) {
	source := &stubSnapshots{snap: exercise.Snapshot{Exercise: exercise.KindPullup}}

	h := NewLiveHandler(source)
	ts := httptest.NewServer(h)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial error = %v", err)
	}
	defer conn.Close()

	// Broadcasting while open
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err != nil {
		t.Fatalf("expected a snapshot before close, got %v", err)
	}

	h.Close()

	// Drain anything already in flight, then expect silence
	deadline := time.Now().Add(300 * time.Millisecond)
	conn.SetReadDeadline(deadline)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("broadcaster still sending after Close")
		}
	}
}

func TestLiveHandler_CloseIsIdempotent(t *testing.T) {
	h := NewLiveHandler(&stubSnapshots{})

	h.Close()
	h.Close() // must not panic
}

func TestServer_CloseWithoutLiveHandler(t *testing.T) {
	s := New(Config{})

	// No snapshot source configured; Close is a no-op
	s.Close()
}
