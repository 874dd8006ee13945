package game

import (
	"github.com/minaorangina/agricola/errdefs"
	"github.com/minaorangina/agricola/internal/board"
	"github.com/minaorangina/agricola/internal/goods"
	"go.uber.org/zap"
)

// Decide answers the pending decision for the active player. A rejected
// answer leaves the decision pending and the game unchanged. Once the chain
// closes, play moves on to the next player with workers left.
func (g *Game) Decide(seat int, args ...string) error {
	const op = "decide"

	if err := g.machine.Guard(op, validDecide); err != nil {
		return err
	}
	p, err := g.activePlayer(op, seat)
	if err != nil {
		return err
	}
	if g.pending == nil {
		return errdefs.Illegal(op, "no decision pending")
	}
	if len(args) == 0 {
		return errdefs.Illegal(op, "%s expects %v", g.pending.Name(), g.pending.Expects())
	}

	next, err := g.resolve(p, g.pending, args)
	if err != nil {
		return err
	}
	g.log.Debug("decision resolved",
		zap.Int("player", seat),
		zap.String("decision", g.pending.Name()),
		zap.Strings("args", args),
	)

	if next != nil {
		g.pending = next
		return nil
	}
	g.pending = nil
	if err := g.machine.ResumeWork(); err != nil {
		return err
	}
	return g.advance()
}

func (g *Game) resolve(p *Player, d Decision, args []string) (Decision, error) {
	switch d := d.(type) {
	case ChooseRoomOrStable:
		return g.chooseRoomOrStable(p, args)
	case ChooseSpace:
		return g.chooseSpace(p, d, args)
	case PlayMinorImprovement:
		if ends(args) {
			return nil, nil
		}
		return g.playMinor(p, args[0])
	case PlayMajorImprovement:
		if ends(args) {
			return nil, nil
		}
		return g.playMajor(p, args[0])
	case PlayOccupation:
		if ends(args) {
			return nil, nil
		}
		return g.playOccupationCard(p, args[0], d.Payment)
	case ChooseImprovement:
		return g.chooseImprovement(p, args)
	case ReturnFireplaceOrBuyHearth:
		return g.returnFireplaceOrBuyHearth(p, d, args)
	case Sow:
		return g.sow(p, d, args)
	case BakeBread:
		return g.bake(p, args)
	case BuildPasture:
		return g.buildPasture(p, d, args)
	case PlaceAnimals:
		return g.placeAnimals(p, d, args)
	}
	return nil, errdefs.Illegal("decide", "unknown decision %s", d.Name())
}

func (g *Game) chooseRoomOrStable(p *Player, args []string) (Decision, error) {
	const op = "choose_room_or_stable"

	if ends(args) {
		return nil, nil
	}
	costs := g.tables.Actions[farmExpansion].Costs

	switch args[0] {
	case BuildRoom.String():
		kind := p.farmyard.HouseType()
		cost := costs[string(kind)]
		if !p.supply.CanAfford(cost) {
			return nil, errdefs.Illegal(op, "a %s costs %s", kind, cost)
		}
		if err := g.tiles.Check(kind, 1); err != nil {
			return nil, err
		}
		return ChooseSpace{Build: BuildRoom, Payment: cost, Then: ChooseRoomOrStable{}}, nil
	case BuildStable.String():
		cost := costs["stable"]
		if !p.supply.CanAfford(cost) {
			return nil, errdefs.Illegal(op, "a stable costs %s", cost)
		}
		if p.supply.CountIn(goods.Stable, goods.Inventory) == 0 {
			return nil, errdefs.Illegal(op, "player %d has no stables left", p.seat)
		}
		return ChooseSpace{Build: BuildStable, Payment: cost, Then: ChooseRoomOrStable{}}, nil
	}
	return nil, errdefs.Illegal(op, "expected room, stable or done, got %q", args[0])
}

// chooseSpace builds on the chosen space. Skipping moves straight on to Then.
func (g *Game) chooseSpace(p *Player, d ChooseSpace, args []string) (Decision, error) {
	const op = "choose_space"

	if ends(args) {
		return d.Then, nil
	}
	c, err := parseCoordinate(op, args[0])
	if err != nil {
		return nil, err
	}
	if !p.supply.CanAfford(d.Payment) {
		return nil, errdefs.Illegal(op, "player %d cannot pay %s", p.seat, d.Payment)
	}

	switch d.Build {
	case BuildStable:
		req := goods.NewMoveRequest(goods.Stable, 1, goods.Farmyard, c, goods.Inventory, goods.InventoryCoord)
		if err := p.supply.CheckMove(req); err != nil {
			return nil, err
		}
		if err := p.farmyard.CheckMove(req); err != nil {
			return nil, err
		}
		if err := p.supply.Pay(d.Payment); err != nil {
			return nil, err
		}
		if err := board.Transfer(req, p.supply, p.farmyard); err != nil {
			return nil, err
		}
	default:
		kind := board.Field
		if d.Build == BuildRoom {
			kind = p.farmyard.HouseType()
		}
		if err := p.farmyard.CheckSpaceChangeValidity(kind, c); err != nil {
			return nil, err
		}
		if err := g.tiles.Check(kind, 1); err != nil {
			return nil, err
		}
		if err := p.supply.Pay(d.Payment); err != nil {
			return nil, err
		}
		if err := g.tiles.Take(kind, 1); err != nil {
			return nil, err
		}
		if err := p.farmyard.ChangeSpaceType(kind, c); err != nil {
			return nil, err
		}
	}
	return d.Then, nil
}

func (g *Game) chooseImprovement(p *Player, args []string) (Decision, error) {
	const op = "choose_improvement"

	if ends(args) {
		return nil, nil
	}
	switch args[0] {
	case "major":
		if g.majors.Len() == 0 {
			return nil, errdefs.Illegal(op, "no major improvements left")
		}
		return PlayMajorImprovement{}, nil
	case "minor":
		if len(p.minors.Unplayed()) == 0 {
			return nil, errdefs.Illegal(op, "player %d has no minor improvements in hand", p.seat)
		}
		return PlayMinorImprovement{}, nil
	}
	return nil, errdefs.Illegal(op, "expected major, minor or skip, got %q", args[0])
}

func (g *Game) returnFireplaceOrBuyHearth(p *Player, d ReturnFireplaceOrBuyHearth, args []string) (Decision, error) {
	const op = "return_fireplace_or_buy_hearth"

	if ends(args) {
		return nil, nil
	}
	switch args[0] {
	case "buy":
		c, err := g.majors.Card(d.Card)
		if err != nil {
			return nil, err
		}
		cost, err := cardCost(op, p, c)
		if err != nil {
			return nil, err
		}
		return g.buyMajor(p, c, cost)
	case "return":
		return g.upgradeFireplace(p, d.Card)
	}
	return nil, errdefs.Illegal(op, "expected buy, return or skip, got %q", args[0])
}

// sow plants one crop per answer: the crop type then the field
func (g *Game) sow(p *Player, d Sow, args []string) (Decision, error) {
	const op = "sow"

	if ends(args) {
		if d.ThenBake && p.canBake() {
			return BakeBread{}, nil
		}
		return nil, nil
	}
	if len(args) != 2 {
		return nil, errdefs.Illegal(op, "expected a crop and a field, got %v", args)
	}
	t, err := goods.ParseType(args[0])
	if err != nil {
		return nil, err
	}
	if !t.IsCrop() {
		return nil, errdefs.Illegal(op, "%s cannot be sown", t)
	}
	c, err := parseCoordinate(op, args[1])
	if err != nil {
		return nil, err
	}
	req := goods.NewMoveRequest(t, 1, goods.Farmyard, c, goods.Inventory, goods.InventoryCoord)
	if err := board.Transfer(req, p.supply, p.farmyard); err != nil {
		return nil, err
	}
	return d, nil
}

func (g *Game) bake(p *Player, args []string) (Decision, error) {
	const op = "bake_bread"

	if ends(args) {
		return nil, nil
	}
	n, err := parseCount(op, args[0])
	if err != nil {
		return nil, err
	}
	if have := p.supply.CountAt(goods.Grain, goods.Inventory, goods.InventoryCoord); have < n {
		return nil, errdefs.Illegal(op, "player %d has %d grain, cannot bake %d", p.seat, have, n)
	}
	food, ok := p.bakeFood(n)
	if !ok {
		return nil, errdefs.Illegal(op, "player %d cannot bake %d grain at once", p.seat, n)
	}
	if err := p.supply.Remove(goods.Grain, n); err != nil {
		return nil, err
	}
	return nil, p.supply.Add(goods.Food, food)
}

// buildPasture fences one pasture per answer until the player is done
func (g *Game) buildPasture(p *Player, d BuildPasture, args []string) (Decision, error) {
	const op = "build_pasture"

	if ends(args) {
		return nil, nil
	}
	coords, err := parseCoordinates(op, args)
	if err != nil {
		return nil, err
	}
	keys, err := p.farmyard.RequiredFences(coords)
	if err != nil {
		return nil, err
	}
	if have := p.supply.CountIn(goods.Fence, goods.Inventory); have < len(keys) {
		return nil, errdefs.Illegal(op, "pasture needs %d fences, player %d has %d", len(keys), p.seat, have)
	}
	cost := d.FenceCost.Times(len(keys))
	if !p.supply.CanAfford(cost) {
		return nil, errdefs.Illegal(op, "player %d cannot pay %s", p.seat, cost)
	}

	if err := p.supply.Pay(cost); err != nil {
		return nil, err
	}
	for _, key := range keys {
		if err := p.supply.PlaceFence(key.Coord, key.Axis); err != nil {
			return nil, err
		}
	}
	if err := p.farmyard.BuildPasture(coords, keys); err != nil {
		return nil, err
	}
	return d, nil
}

// placeAnimals settles, cooks or releases everything taken from a market
func (g *Game) placeAnimals(p *Player, d PlaceAnimals, args []string) (Decision, error) {
	const op = "place_animals"

	switch args[0] {
	case "place":
		if len(args) != 2 {
			return nil, errdefs.Illegal(op, "place needs a coordinate")
		}
		c, err := parseCoordinate(op, args[1])
		if err != nil {
			return nil, err
		}
		req := goods.NewMoveRequest(d.Type, d.Qty, goods.Farmyard, c, goods.ActionSpace, d.From)
		return nil, board.Transfer(req, p.supply, p.farmyard, g.actions)
	case "cook":
		rate := p.cookRate(d.Type)
		if rate == 0 {
			return nil, errdefs.Illegal(op, "player %d cannot cook %s", p.seat, d.Type)
		}
		if _, _, err := g.actions.Clear(d.From); err != nil {
			return nil, err
		}
		return nil, p.supply.Add(goods.Food, d.Qty*rate)
	case "release", argSkip:
		_, _, err := g.actions.Clear(d.From)
		return nil, err
	}
	return nil, errdefs.Illegal(op, "expected place, cook or release, got %q", args[0])
}
