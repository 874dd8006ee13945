package game

import (
	"github.com/minaorangina/agricola/errdefs"
	"github.com/minaorangina/agricola/internal/board"
	"github.com/minaorangina/agricola/internal/goods"
	"github.com/minaorangina/agricola/internal/state"
	"go.uber.org/zap"
)

// StartGame moves a new game into running_game. StartNextRound begins round 1.
func (g *Game) StartGame() error {
	if err := g.machine.Guard("start_game", validStartGame); err != nil {
		return err
	}
	if err := g.machine.Start(); err != nil {
		return err
	}
	g.log.Info("game started")
	return nil
}

// PlayNextPlayerWorkActions hands the turn to the next player with workers
// left to place, player 1 when the round has just been prepared.
// Once nobody has workers left the round ends.
func (g *Game) PlayNextPlayerWorkActions() error {
	if err := g.machine.Guard("play_next_player_actions", validPlayNext); err != nil {
		return err
	}
	return g.advance()
}

// PlacePersonOnActionSpace sends the active player's worker standing in
// room src to the action space at dest and carries out its action.
func (g *Game) PlacePersonOnActionSpace(seat int, dest, src goods.Coordinate) error {
	const op = "place_person_on_action_space"

	if err := g.machine.Guard(op, validPlace); err != nil {
		return err
	}
	p, err := g.activePlayer(op, seat)
	if err != nil {
		return err
	}
	if g.machine.WorkersLeft(seat) == 0 {
		return errdefs.Illegal(op, "%s: player %d", state.ErrNoWorkersLeft, seat)
	}
	action, err := g.actions.Action(dest)
	if err != nil {
		return err
	}

	req := goods.NewMoveRequest(goods.Worker, 1, goods.ActionSpace, dest, goods.Farmyard, src)
	if err := board.Transfer(req, p.supply, p.farmyard, g.actions); err != nil {
		return err
	}
	next, err := g.actionEffects[action](g, p, Source{Action: action, Coord: dest})
	if err != nil {
		back := goods.NewMoveRequest(goods.Worker, 1, goods.Farmyard, src, goods.ActionSpace, dest)
		if undo := board.Transfer(back, p.supply, p.farmyard, g.actions); undo != nil {
			g.log.Error("could not return worker", zap.Error(undo))
		}
		return err
	}
	if err := g.machine.UseWorker(); err != nil {
		return err
	}

	g.log.Info("worker placed",
		zap.Int("round", g.machine.Round()),
		zap.Int("player", seat),
		zap.String("action", action),
		zap.Stringer("space", dest),
	)

	if next != nil {
		g.pending = next
		return g.machine.EnterDecision()
	}
	return g.advance()
}

// advance moves the turn on and closes the round when every worker is out
func (g *Game) advance() error {
	done, err := g.machine.Advance()
	if err != nil || !done {
		return err
	}
	return g.endRound()
}

// QuitGameEarly abandons the game from any active state
func (g *Game) QuitGameEarly() error {
	if err := g.machine.Guard("quit_game_early", validQuit); err != nil {
		return err
	}
	if err := g.machine.Stop(); err != nil {
		return err
	}
	g.pending = nil
	g.log.Info("game stopped early")
	return nil
}

// ScoreGame returns each seat's score once the game is finished
func (g *Game) ScoreGame() (map[int]int, error) {
	if err := g.machine.Guard("score_game", validScore); err != nil {
		return nil, err
	}
	scores := map[int]int{}
	for _, p := range g.players {
		scores[p.seat] = p.Score()
	}
	return scores, nil
}
