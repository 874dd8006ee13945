package game

import (
	"sort"

	"github.com/minaorangina/agricola/deck"
	"github.com/minaorangina/agricola/internal/board"
	"github.com/minaorangina/agricola/internal/goods"
)

// Player is one seat's farm, goods and cards
type Player struct {
	seat        int
	starting    bool
	supply      *goods.Supply
	farmyard    *board.Farmyard
	majors      *deck.Deck
	minors      *deck.Deck
	occupations *deck.Deck
	begging     int
	newborns    int
	future      map[int]goods.Cost
}

func newPlayer(seat, numPlayers int, starting bool) *Player {
	return &Player{
		seat:        seat,
		starting:    starting,
		supply:      goods.NewSupply(goods.StartingFood(numPlayers, starting)),
		farmyard:    board.NewFarmyard(),
		majors:      deck.Empty(deck.MajorImprovement),
		minors:      deck.Empty(deck.MinorImprovement),
		occupations: deck.Empty(deck.Occupation),
		future:      map[int]goods.Cost{},
	}
}

func (p *Player) moveIntoStartingRooms() error {
	for _, room := range p.farmyard.Rooms()[:startingWorkers] {
		req := goods.NewMoveRequest(goods.Worker, 1, goods.Farmyard, room, goods.Inventory, goods.InventoryCoord)
		if err := board.Transfer(req, p.supply, p.farmyard); err != nil {
			return err
		}
	}
	return nil
}

func (p *Player) Seat() int                    { return p.seat }
func (p *Player) IsStartingPlayer() bool       { return p.starting }
func (p *Player) Supply() SupplyView           { return supplyView{p.supply} }
func (p *Player) Farmyard() FarmyardView       { return farmyardView{p.farmyard} }
func (p *Player) BeggingMarkers() int          { return p.begging }
func (p *Player) Newborns() int                { return p.newborns }
func (p *Player) MajorImprovements() CardsView { return cardsView{p.majors} }
func (p *Player) MinorImprovements() CardsView { return cardsView{p.minors} }
func (p *Player) Occupations() CardsView       { return cardsView{p.occupations} }

// FamilySize counts the workers that have joined the family
func (p *Player) FamilySize() int {
	return len(p.supply.Workers()) - p.supply.CountIn(goods.Worker, goods.Inventory)
}

// WorkersHome counts the workers in the farmyard's rooms
func (p *Player) WorkersHome() int {
	return p.supply.CountIn(goods.Worker, goods.Farmyard)
}

// FutureGoods returns what the player collects at the start of round
func (p *Player) FutureGoods(round int) goods.Cost {
	return append(goods.Cost{}, p.future[round]...)
}

func (p *Player) scheduleFuture(from, rounds int, item goods.Item) {
	for r := from; r < from+rounds && r <= finalRound; r++ {
		p.future[r] = append(p.future[r], item)
	}
}

// playedCards lists every card in front of the player
func (p *Player) playedCards() []*deck.Card {
	played := p.majors.Played()
	played = append(played, p.minors.Played()...)
	return append(played, p.occupations.Played()...)
}

// cookRate is the best food per unit of t any of the player's cards gives, 0 if none cooks it
func (p *Player) cookRate(t goods.Type) int {
	best := 0
	for _, c := range p.playedCards() {
		if rate := c.Def().Cook[t]; rate > best {
			best = rate
		}
	}
	return best
}

func (p *Player) canCook() bool {
	for _, c := range p.playedCards() {
		if c.CanCook() {
			return true
		}
	}
	return false
}

type bakeOption struct {
	rate  int
	limit int // 0 is unlimited
}

// bakeOptions lists the player's baking improvements, best rate first
func (p *Player) bakeOptions() []bakeOption {
	options := []bakeOption{}
	for _, c := range p.playedCards() {
		if rate := c.Def().Bake[goods.Grain]; rate > 0 {
			options = append(options, bakeOption{rate: rate, limit: c.Def().BakeLimit})
		}
	}
	sort.SliceStable(options, func(i, j int) bool { return options[i].rate > options[j].rate })
	return options
}

func (p *Player) canBake() bool {
	return len(p.bakeOptions()) > 0 && p.supply.CountAt(goods.Grain, goods.Inventory, goods.InventoryCoord) > 0
}

// bakeFood works out the food n grain bakes into
func (p *Player) bakeFood(n int) (int, bool) {
	food := 0
	for _, o := range p.bakeOptions() {
		use := n
		if o.limit > 0 && use > o.limit {
			use = o.limit
		}
		food += use * o.rate
		n -= use
		if n == 0 {
			return food, true
		}
	}
	return food, n == 0
}

// Score adds up the points on the player's cards less the begging markers
func (p *Player) Score() int {
	score := p.begging * beggingMarkerScore
	for _, c := range p.playedCards() {
		score += c.Points()
	}
	return score
}
