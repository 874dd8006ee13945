package game

import (
	"fmt"
	"strings"

	"github.com/minaorangina/agricola/internal/goods"
	"github.com/minaorangina/agricola/internal/state"
)

// Prompt describes what the game is waiting for
func (g *Game) Prompt() string {
	st := g.machine.State()

	switch {
	case st == state.CurrentPlayerDecision && g.pending != nil:
		return fmt.Sprintf("Player %d must decide %s: %s",
			g.machine.ActivePlayer(), g.pending.Name(), strings.Join(g.pending.Expects(), " "))
	case validPlace.Contains(st):
		seat := g.machine.ActivePlayer()
		return fmt.Sprintf("Round %d: player %d to place a worker (%d left)",
			g.machine.Round(), seat, g.machine.WorkersLeft(seat))
	case st == state.NotStarted:
		return "Waiting for the game to start"
	case st == state.Finished:
		return "Game over"
	case st == state.StoppedEarly:
		return "Game stopped early"
	}
	return fmt.Sprintf("Round %d: %s", g.machine.Round(), st)
}

// summaryGoods are listed in this order
var summaryGoods = []goods.Type{
	goods.Food, goods.Grain, goods.Vegetable,
	goods.Wood, goods.Clay, goods.Reed, goods.Stone,
	goods.Sheep, goods.Boar, goods.Cattle,
}

// Summary lists a player's family, inventory and animals on one line
func (p *Player) Summary() string {
	parts := []string{
		fmt.Sprintf("player %d", p.seat),
		fmt.Sprintf("family %d", p.FamilySize()),
		fmt.Sprintf("%s house x%d", p.farmyard.HouseType(), len(p.farmyard.Rooms())),
	}
	for _, t := range summaryGoods {
		if n := p.supply.Count(t); n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", t, n))
		}
	}
	if p.begging > 0 {
		parts = append(parts, fmt.Sprintf("begging %d", p.begging))
	}
	return strings.Join(parts, ", ")
}
