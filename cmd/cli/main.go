package main

import (
	"fmt"
	"log"

	"github.com/minaorangina/agricola/config"
	"github.com/minaorangina/agricola/errdefs"
	"github.com/minaorangina/agricola/game"
	"github.com/minaorangina/agricola/internal/goods"
	"github.com/minaorangina/agricola/internal/state"
	"github.com/minaorangina/agricola/store"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err.Error())
	}
	logger, err := cfg.Logger()
	if err != nil {
		log.Fatal(err.Error())
	}
	defer logger.Sync()

	tables, err := cfg.Tables()
	if err != nil {
		logger.Fatal("could not load tables", zap.Error(err))
	}

	g, err := game.New(game.Options{
		NumPlayers: cfg.Players,
		Tables:     tables,
		Rand:       cfg.Rand(),
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("could not create game", zap.Error(err))
	}

	games := store.NewInMemoryGameStore()
	if err := games.AddGame(g); err != nil {
		logger.Fatal("could not store game", zap.Error(err))
	}

	if err := play(g); err != nil {
		logger.Fatal("game aborted", zap.String("game_id", g.ID()), zap.Error(err))
	}

	scores, err := games.FindFinishedGame(g.ID()).ScoreGame()
	if err != nil {
		logger.Fatal("could not score game", zap.Error(err))
	}
	for _, p := range g.Players() {
		fmt.Printf("%s: %d points\n", p.Summary(), scores[p.Seat()])
	}
}

// play runs every round, each player taking the first action space that
// will have them and declining every follow-up choice
func play(g *game.Game) error {
	if err := g.StartGame(); err != nil {
		return err
	}

	for g.State() != state.Finished {
		if err := g.StartNextRound(); err != nil {
			return err
		}
		if err := g.PlayNextPlayerWorkActions(); err != nil {
			return err
		}
		if err := playRound(g); err != nil {
			return err
		}

		fmt.Printf("After round %d:\n", g.Round())
		for _, p := range g.Players() {
			fmt.Println("  " + p.Summary())
		}
	}
	fmt.Println(g.Prompt())
	return nil
}

func playRound(g *game.Game) error {
	for {
		seat := g.ActivePlayer()
		switch st := g.State(); {
		case st == state.CurrentPlayerDecision:
			fmt.Println(g.Prompt())
			if err := g.Decide(seat, "skip"); err != nil {
				return err
			}
		case state.WorkStates.Contains(st):
			fmt.Println(g.Prompt())
			if err := placeWorker(g, seat); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func placeWorker(g *game.Game, seat int) error {
	p, err := g.Player(seat)
	if err != nil {
		return err
	}

	home := goods.InventoryCoord
	for _, w := range p.Supply().Workers() {
		if w.Location == goods.Farmyard {
			home = w.Coord
			break
		}
	}

	for _, c := range g.ActionBoard().OpenSpaces() {
		err := g.PlacePersonOnActionSpace(seat, c, home)
		if err == nil {
			return nil
		}
		if !errdefs.IsIllegal(err) {
			return err
		}
	}
	return fmt.Errorf("player %d has nowhere to go", seat)
}
