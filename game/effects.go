package game

import (
	"github.com/minaorangina/agricola/deck"
	"github.com/minaorangina/agricola/errdefs"
	"github.com/minaorangina/agricola/internal/board"
	"github.com/minaorangina/agricola/internal/goods"
)

// EffectFunc carries out what an action space or card does for p and
// returns the decision p owes next, nil if there is none. An effect that
// returns an error has changed nothing.
type EffectFunc func(g *Game, p *Player, src Source) (Decision, error)

// Source is what triggered an effect: the action space a worker was placed
// on, or a card that was just played
type Source struct {
	Action string
	Coord  goods.Coordinate
	Card   *deck.Card
}

const farmExpansion = "farm_expansion"

// fences bought through a card cost this much each
var cardFenceCost = goods.Cost{{Qty: 1, Type: goods.Wood}}

var effects = map[string]EffectFunc{
	"get_goods":                  getGoods,
	"get_animals":                getAnimals,
	"build_rooms_and_or_stables": buildRoomsAndOrStables,
	"take_start_player_token":    takeStartPlayerToken,
	"plow":                       plow,
	"play_occupation":            playOccupation,
	"play_major_or_minor":        playMajorOrMinor,
	"build_fences":               buildFences,
	"grain_utilization":          grainUtilization,
	"family_growth":              familyGrowth,
	"urgent_family_growth":       urgentFamilyGrowth,
	"house_redevelopment":        houseRedevelopment,
	"farm_redevelopment":         farmRedevelopment,
	"cultivation":                cultivation,
	"future_goods":               futureGoods,
	"bake_bread":                 bakeBread,
	"cooking":                    noEffect,
	"hearth":                     noEffect,
	"harvest_exchange":           noEffect,
	"none":                       noEffect,
}

// KnownEffect reports whether id names a registered effect
func KnownEffect(id string) bool {
	_, ok := effects[id]
	return ok
}

func noEffect(*Game, *Player, Source) (Decision, error) { return nil, nil }

func getGoods(g *Game, p *Player, src Source) (Decision, error) {
	if src.Card != nil {
		return nil, gain(p.supply, src.Card.Def().Output)
	}

	a := g.tables.Actions[src.Action]
	if !a.Accumulate {
		return nil, gain(p.supply, a.Output)
	}

	n, err := g.actions.NumGoodsPresent(src.Coord)
	if err != nil || n == 0 {
		return nil, err
	}
	t, _ := g.actions.GoodsType(src.Coord)
	req := goods.NewMoveRequest(t, n, goods.Inventory, goods.InventoryCoord, goods.ActionSpace, src.Coord)
	return nil, board.Transfer(req, p.supply, g.actions)
}

// gain adds every line item of output to the inventory
func gain(s *goods.Supply, output goods.Cost) error {
	for _, item := range output {
		if item.Type.IsLimited() || item.Type == goods.None {
			return errdefs.Illegal("get_goods", "%s cannot be gained", item.Type)
		}
	}
	for _, item := range output {
		if err := s.Add(item.Type, item.Qty); err != nil {
			return err
		}
	}
	return nil
}

func getAnimals(g *Game, p *Player, src Source) (Decision, error) {
	n, err := g.actions.NumGoodsPresent(src.Coord)
	if err != nil || n == 0 {
		return nil, err
	}
	t, _ := g.actions.GoodsType(src.Coord)
	return PlaceAnimals{Type: t, Qty: n, From: src.Coord}, nil
}

func buildRoomsAndOrStables(*Game, *Player, Source) (Decision, error) {
	return ChooseRoomOrStable{}, nil
}

func takeStartPlayerToken(g *Game, p *Player, _ Source) (Decision, error) {
	if err := g.machine.SetStartingPlayer(p.seat); err != nil {
		return nil, err
	}
	for _, other := range g.players {
		other.starting = other == p
	}
	return PlayMinorImprovement{}, nil
}

func plow(*Game, *Player, Source) (Decision, error) {
	return ChooseSpace{Build: BuildField}, nil
}

func cultivation(*Game, *Player, Source) (Decision, error) {
	return ChooseSpace{Build: BuildField, Then: Sow{}}, nil
}

func playOccupation(g *Game, p *Player, src Source) (Decision, error) {
	const op = "play_occupation"

	if len(p.occupations.Unplayed()) == 0 {
		return nil, errdefs.Illegal(op, "player %d has no occupations left to play", p.seat)
	}
	cost := lessonsCost(g.tables.Actions[src.Action].Costs, p.occupations.CountPlayed())
	if !p.supply.CanAfford(cost) {
		return nil, errdefs.Illegal(op, "player %d cannot pay %s", p.seat, cost)
	}
	return PlayOccupation{Payment: cost}, nil
}

// lessonsCost picks the cost schedule entry for a player who has already
// played n occupations
func lessonsCost(costs map[string]goods.Cost, n int) goods.Cost {
	switch {
	case costs["all"] != nil:
		return costs["all"]
	case costs["one_and_two"] != nil:
		if n < 2 {
			return costs["one_and_two"]
		}
		return costs["three_plus"]
	case n == 0:
		return costs["first"]
	}
	return costs["second"]
}

func playMajorOrMinor(*Game, *Player, Source) (Decision, error) {
	return ChooseImprovement{}, nil
}

func buildFences(g *Game, p *Player, src Source) (Decision, error) {
	if p.supply.CountIn(goods.Fence, goods.Inventory) == 0 {
		return nil, errdefs.Illegal("build_fences", "player %d has no fences left", p.seat)
	}
	if src.Card != nil {
		return BuildPasture{FenceCost: cardFenceCost}, nil
	}
	return BuildPasture{FenceCost: g.tables.Actions[src.Action].Costs["fence"]}, nil
}

func grainUtilization(*Game, *Player, Source) (Decision, error) {
	return Sow{ThenBake: true}, nil
}

func familyGrowth(g *Game, p *Player, src Source) (Decision, error) {
	if len(p.farmyard.Rooms()) <= p.FamilySize() {
		return nil, errdefs.Illegal("family_growth", "player %d has no free room", p.seat)
	}
	if err := g.haveChild(p, src.Coord); err != nil {
		return nil, err
	}
	return PlayMinorImprovement{}, nil
}

func urgentFamilyGrowth(g *Game, p *Player, src Source) (Decision, error) {
	return nil, g.haveChild(p, src.Coord)
}

// haveChild brings a new worker from the inventory onto the action space
// its parent is standing on
func (g *Game) haveChild(p *Player, c goods.Coordinate) error {
	req := goods.NewMoveRequest(goods.Worker, 1, goods.ActionSpace, c, goods.Inventory, goods.InventoryCoord)
	if err := board.Transfer(req, p.supply, g.actions); err != nil {
		return err
	}
	p.newborns++
	return nil
}

func houseRedevelopment(g *Game, p *Player, src Source) (Decision, error) {
	if err := g.renovate(p, src.Action); err != nil {
		return nil, err
	}
	return ChooseImprovement{}, nil
}

func farmRedevelopment(g *Game, p *Player, src Source) (Decision, error) {
	if err := g.renovate(p, src.Action); err != nil {
		return nil, err
	}
	return BuildPasture{FenceCost: g.tables.Actions[src.Action].Costs["fence"]}, nil
}

// renovate rebuilds the house in the next material, paying per room plus the roof
func (g *Game) renovate(p *Player, action string) error {
	const op = "renovate"

	current := p.farmyard.HouseType()
	next, ok := board.NextHouseType(current)
	if !ok {
		return errdefs.Illegal(op, "player %d already lives in a %s house", p.seat, current)
	}

	costs := g.tables.Actions[action].Costs
	rooms := len(p.farmyard.Rooms())
	cost := costs[string(next)].Times(rooms).Plus(costs["roof"])
	if !p.supply.CanAfford(cost) {
		return errdefs.Illegal(op, "player %d cannot pay %s", p.seat, cost)
	}
	if err := g.tiles.Swap(current, next, rooms); err != nil {
		return err
	}
	if err := p.supply.Pay(cost); err != nil {
		return err
	}
	_, err := p.farmyard.Renovate()
	return err
}

func futureGoods(g *Game, p *Player, src Source) (Decision, error) {
	f := src.Card.Def().Future
	if f == nil {
		return nil, errdefs.Illegal("future_goods", "%s has nothing to schedule", src.Card.Name())
	}
	p.scheduleFuture(g.machine.Round()+1, f.Rounds, goods.Item{Qty: f.Qty, Type: f.Goods})
	return nil, nil
}

func bakeBread(_ *Game, p *Player, _ Source) (Decision, error) {
	if !p.canBake() {
		return nil, nil
	}
	return BakeBread{}, nil
}
