package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/krishanu7/sea-battle/internal/auth"
	"github.com/krishanu7/sea-battle/internal/game"
	"github.com/krishanu7/sea-battle/internal/match"
	wsPkg "github.com/krishanu7/sea-battle/pkg/websocket"
)

func newServer(t *testing.T, hub *wsPkg.Hub, tokens *auth.Service) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.Handle("GET /ws/spectate", auth.RequireToken(tokens, http.HandlerFunc(NewHandler(hub).ServeWS)))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/spectate?" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForSpectators(t *testing.T, hub *wsPkg.Hub, matchID string, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.GetRoom(matchID).Len() < n {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d spectators in %s", n, matchID)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestSpectatorReceivesEvents(t *testing.T) {
	hub := wsPkg.NewHub()
	srv := newServer(t, hub, auth.NewService("", time.Hour))
	conn := dial(t, srv, "matchId=m1")
	waitForSpectators(t, hub, "m1", 1)

	target := game.NewCoordinate(1, 2)
	err := NewBroadcaster(hub).Notify(context.Background(), match.Event{
		Type: match.EventShot, MatchID: "m1", Player: "A", Target: &target, Outcome: "HIT",
	})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got match.Event
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Type != match.EventShot || got.Outcome != "HIT" || got.Target == nil || *got.Target != target {
		t.Fatalf("unexpected event %+v", got)
	}
}

func TestSpectatorNeedsToken(t *testing.T) {
	hub := wsPkg.NewHub()
	tokens := auth.NewService("secret", time.Hour)
	srv := newServer(t, hub, tokens)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/spectate?matchId=m1"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("expected dial without token to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", resp)
	}

	token, err := tokens.IssueToken("m1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	dial(t, srv, "token="+token)
	waitForSpectators(t, hub, "m1", 1)
}

func TestServeWSMissingMatch(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(wsPkg.NewHub()).ServeWS(rec, httptest.NewRequest(http.MethodGet, "/ws/spectate", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDispatch(t *testing.T) {
	hub := wsPkg.NewHub()
	client := wsPkg.NewClient("c1", nil)
	hub.GetRoom("m1").AddClient(client)
	w := NewNotificationWorker(nil, hub, "notifications")

	if err := w.Dispatch(`{"type":"turn","matchId":"m1","player":"A"}`); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	select {
	case msg := <-client.Send:
		if !strings.Contains(string(msg), `"player":"A"`) {
			t.Fatalf("unexpected payload %s", msg)
		}
	default:
		t.Fatal("expected the payload to reach the room")
	}

	for _, bad := range []string{"not json", `{"type":"turn"}`} {
		if err := w.Dispatch(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestSpectatorDisconnectClosesRoom(t *testing.T) {
	hub := wsPkg.NewHub()
	srv := newServer(t, hub, auth.NewService("", time.Hour))

	for i := 0; i < 5; i++ {
		conn := dial(t, srv, "matchId=made-up-"+strconv.Itoa(i))
		waitForSpectators(t, hub, "made-up-"+strconv.Itoa(i), 1)
		conn.Close()
	}

	deadline := time.Now().Add(2 * time.Second)
	for hub.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("expected rooms to close after spectators left, %d open", hub.Len())
		}
		time.Sleep(10 * time.Millisecond)
	}
}
