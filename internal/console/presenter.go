package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/krishanu7/sea-battle/internal/game"
	"github.com/krishanu7/sea-battle/internal/match"
	"github.com/krishanu7/sea-battle/internal/player"
)

var outcomeText = map[string]string{
	game.Miss.String(): "Miss!",
	game.Hit.String():  "Ship hit!",
	game.Sunk.String(): "Ship sunk!",
}

var reasonText = map[string]string{
	game.TagOutOfBounds:     "That shot was off the board!",
	game.TagAlreadyTargeted: "That cell was already used!",
}

var separator = strings.Repeat("-", 20)

// Presenter renders match events for the people at the terminal.
type Presenter struct {
	w       io.Writer
	players []*player.Player
	// announce lists players whose targets are printed, since nobody typed them.
	announce map[string]bool
}

func NewPresenter(w io.Writer, players ...*player.Player) *Presenter {
	return &Presenter{
		w:        w,
		players:  players,
		announce: make(map[string]bool),
	}
}

// Announce makes the presenter print the targets chosen by name.
func (p *Presenter) Announce(name string) *Presenter {
	p.announce[name] = true
	return p
}

func (p *Presenter) Notify(_ context.Context, e match.Event) error {
	var err error
	switch e.Type {
	case match.EventTurn:
		err = p.turn(e.Player)
	case match.EventShot:
		err = p.shot(e)
	case match.EventShotRejected:
		err = p.rejected(e)
	case match.EventMatchOver:
		_, err = fmt.Fprintf(p.w, "%s\n%s won!\n", separator, e.Winner)
	}
	return err
}

func (p *Presenter) turn(name string) error {
	for _, pl := range p.players {
		if _, err := fmt.Fprintf(p.w, "%s\n%s board:\n%s\n", separator, pl.Name, RenderBoard(pl.Own)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(p.w, "%s moves!\n", name)
	return err
}

func (p *Presenter) shot(e match.Event) error {
	if p.announce[e.Player] && e.Target != nil {
		if _, err := fmt.Fprintf(p.w, "%s fires: %s\n", e.Player, e.Target.Label()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(p.w, outcomeText[e.Outcome])
	return err
}

func (p *Presenter) rejected(e match.Event) error {
	text, ok := reasonText[e.Reason]
	if !ok {
		text = "That shot was not accepted!"
	}
	_, err := fmt.Fprintln(p.w, text)
	return err
}
