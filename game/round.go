package game

import (
	"sort"

	"github.com/minaorangina/agricola/internal/board"
	"github.com/minaorangina/agricola/internal/goods"
	"github.com/minaorangina/agricola/internal/state"
	"go.uber.org/zap"
)

// StartNextRound prepares the next round: a new action space is revealed,
// accumulating spaces fill up, goods promised for this round are paid out
// and every worker at home is ready to be placed.
func (g *Game) StartNextRound() error {
	if err := g.machine.Guard("start_round", validNextRound); err != nil {
		return err
	}
	round := g.machine.Round() + 1
	stage := state.Stage(round)
	if round <= state.FinalRound {
		if err := g.actions.CheckReveal(round, stage); err != nil {
			return err
		}
	}
	if err := g.machine.BeginRound(); err != nil {
		return err
	}
	phase := g.machine.Phase()

	action, at, err := g.actions.AddActionSpace(round, stage)
	if err != nil {
		return err
	}
	g.actions.AccumulateAll()

	for _, p := range g.players {
		p.newborns = 0
		for _, item := range p.future[round] {
			if err := p.supply.Add(item.Type, item.Qty); err != nil {
				return err
			}
		}
		delete(p.future, round)
	}
	if err := g.machine.ResetWorkers(workerCounts(g.players)); err != nil {
		return err
	}

	g.log.Info("round started",
		zap.Int("round", round),
		zap.Int("phase", phase),
		zap.Int("stage", stage),
		zap.String("revealed", action),
		zap.Stringer("space", at),
	)
	return nil
}

// endRound brings everyone home and runs the harvest on harvest rounds
func (g *Game) endRound() error {
	for _, p := range g.players {
		if err := g.returnHome(p); err != nil {
			return err
		}
	}
	round := g.machine.Round()
	if !state.IsHarvestRound(round) {
		return nil
	}

	if err := g.machine.EnterHarvest(); err != nil {
		return err
	}
	for _, p := range g.players {
		if err := g.harvest(p); err != nil {
			return err
		}
	}
	if round < finalRound {
		return nil
	}
	if err := g.machine.Finish(); err != nil {
		return err
	}
	g.log.Info("game finished")
	return nil
}

// returnHome moves every worker on the action board back into a room
func (g *Game) returnHome(p *Player) error {
	for _, w := range p.supply.Workers() {
		if w.Location != goods.ActionSpace {
			continue
		}
		room, err := p.farmyard.OpenRoom()
		if err != nil {
			return err
		}
		req := goods.NewMoveRequest(goods.Worker, 1, goods.Farmyard, room, goods.ActionSpace, w.Coord)
		if err := board.Transfer(req, p.supply, p.farmyard, g.actions); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) harvest(p *Player) error {
	if err := p.reapFields(); err != nil {
		return err
	}
	need, begging, err := g.feed(p)
	if err != nil {
		return err
	}
	born, err := p.breed()
	if err != nil {
		return err
	}

	g.log.Info("harvest",
		zap.Int("round", g.machine.Round()),
		zap.Int("player", p.seat),
		zap.Int("food_needed", need),
		zap.Int("begging_markers", begging),
		zap.Int("animals_born", born),
	)
	return nil
}

// reapFields takes one crop from every planted field
func (p *Player) reapFields() error {
	for _, c := range p.farmyard.Fields() {
		s, err := p.farmyard.Space(c)
		if err != nil {
			return err
		}
		if s.NumPresent == 0 {
			continue
		}
		req := goods.NewMoveRequest(s.Goods, 1, goods.Inventory, goods.InventoryCoord, goods.Farmyard, c)
		if err := board.Transfer(req, p.supply, p.farmyard); err != nil {
			return err
		}
	}
	return nil
}

// foodNeeded is what the family eats at a harvest. Children born this
// round eat less.
func (g *Game) foodNeeded(p *Player) int {
	rate := foodPerPerson
	if len(g.players) == 1 {
		rate = soloFoodPerPerson
	}
	return (p.FamilySize()-p.newborns)*rate + p.newborns*newbornFood
}

// feed pays the harvest food. Any shortfall is first made up from crops and
// workshop exchanges; what is still missing becomes begging markers.
func (g *Game) feed(p *Player) (int, int, error) {
	need := g.foodNeeded(p)

	short := func() int {
		return need - p.supply.CountAt(goods.Food, goods.Inventory, goods.InventoryCoord)
	}
	convert := func(t goods.Type, n, rate int) error {
		if err := p.supply.Remove(t, n); err != nil {
			return err
		}
		return p.supply.Add(goods.Food, n*rate)
	}
	inventory := func(t goods.Type) int {
		return p.supply.CountAt(t, goods.Inventory, goods.InventoryCoord)
	}

	if n := min(short(), inventory(goods.Grain)); n > 0 {
		if err := convert(goods.Grain, n, 1); err != nil {
			return need, 0, err
		}
	}
	vegRate := max(1, p.cookRate(goods.Vegetable))
	for short() > 0 && inventory(goods.Vegetable) > 0 {
		if err := convert(goods.Vegetable, 1, vegRate); err != nil {
			return need, 0, err
		}
	}
	for _, ex := range p.exchanges() {
		if short() <= 0 {
			break
		}
		if inventory(ex.t) > 0 {
			if err := convert(ex.t, 1, ex.rate); err != nil {
				return need, 0, err
			}
		}
	}

	eat := min(need, inventory(goods.Food))
	if err := p.supply.Remove(goods.Food, eat); err != nil {
		return need, 0, err
	}
	begging := need - eat
	p.begging += begging
	return need, begging, nil
}

type exchange struct {
	t    goods.Type
	rate int
}

// exchanges lists what the player's workshops turn into food once per harvest
func (p *Player) exchanges() []exchange {
	out := []exchange{}
	for _, c := range p.playedCards() {
		for t, rate := range c.Def().Exchange {
			out = append(out, exchange{t: t, rate: rate})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].rate > out[j].rate })
	return out
}

// breed adds one animal to every pasture holding a pair with room to spare
func (p *Player) breed() (int, error) {
	born := 0
	for _, region := range p.farmyard.Pastures() {
		c := region[0]
		held, t, err := p.farmyard.PastureAnimals(c)
		if err != nil {
			return born, err
		}
		capacity, err := p.farmyard.PastureCapacity(c)
		if err != nil {
			return born, err
		}
		if held < 2 || held >= capacity {
			continue
		}
		if err := p.farmyard.Breed(c, t); err != nil {
			return born, err
		}
		if err := p.supply.AddAt(t, 1, goods.Farmyard, c); err != nil {
			return born, err
		}
		born++
	}
	return born, nil
}
