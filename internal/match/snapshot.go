package match

import "github.com/krishanu7/sea-battle/internal/game"

// BoardView is a board as spectators see it: ship cells that were not hit are hidden.
type BoardView struct {
	Owner string     `json:"owner"`
	Sunk  int        `json:"sunk"`
	Fleet int        `json:"fleet"`
	Phase string     `json:"phase"`
	Rows  [][]string `json:"rows"`
}

type Snapshot struct {
	MatchID string      `json:"matchId"`
	Turn    string      `json:"turn"`
	Shots   int         `json:"shots"`
	Winner  string      `json:"winner,omitempty"`
	Boards  []BoardView `json:"boards"`
}

// Snapshot returns the state as of the last completed shot. It is safe to
// call while the match is running.
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *Service) storeSnapshot() {
	snap := Snapshot{
		MatchID: s.ID,
		Turn:    s.Active().Name,
		Shots:   s.shots,
	}
	if s.result != nil {
		snap.Turn = ""
		snap.Winner = s.result.Winner.Name
	}
	for _, p := range s.players {
		snap.Boards = append(snap.Boards, viewBoard(p.Name, p.Own))
	}

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
}

func viewBoard(owner string, b *game.Board) BoardView {
	grid := b.Grid()
	rows := make([][]string, len(grid))
	for i, row := range grid {
		rows[i] = make([]string, len(row))
		for j, c := range row {
			if c == game.CellShip {
				c = game.CellEmpty
			}
			rows[i][j] = c.String()
		}
	}
	return BoardView{
		Owner: owner,
		Sunk:  b.SunkCount(),
		Fleet: b.FleetSize(),
		Phase: b.Phase().String(),
		Rows:  rows,
	}
}
