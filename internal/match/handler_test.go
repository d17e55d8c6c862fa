package match

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/krishanu7/sea-battle/internal/player"
)

func TestStateHidesShips(t *testing.T) {
	boardA, boardB := randomBoard(9), randomBoard(10)
	s := NewService(
		player.New("A", boardA, boardB, &scripted{}),
		player.New("B", boardB, boardA, &scripted{}),
	)

	rec := httptest.NewRecorder()
	NewHandler(s).State(rec, httptest.NewRequest(http.MethodGet, "/api/v1/match/state", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var snap Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.MatchID != s.ID || snap.Turn != "A" || len(snap.Boards) != 2 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	for _, b := range snap.Boards {
		for _, row := range b.Rows {
			for _, cell := range row {
				if cell == "ship" {
					t.Fatalf("expected ships of %s to be hidden", b.Owner)
				}
			}
		}
	}
}

func TestStateUnknownMatch(t *testing.T) {
	boardA, boardB := randomBoard(11), randomBoard(12)
	s := NewService(
		player.New("A", boardA, boardB, &scripted{}),
		player.New("B", boardB, boardA, &scripted{}),
	)

	rec := httptest.NewRecorder()
	NewHandler(s).State(rec, httptest.NewRequest(http.MethodGet, "/api/v1/match/state?matchId=nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}
