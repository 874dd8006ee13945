package game

import (
	"github.com/minaorangina/agricola/deck"
	"github.com/minaorangina/agricola/internal/board"
	"github.com/minaorangina/agricola/internal/goods"
)

// SupplyView reads a player's goods. Goods only change through the
// game's operations.
type SupplyView interface {
	Count(t goods.Type) int
	CountAt(t goods.Type, loc goods.Location, c goods.Coordinate) int
	CountIn(t goods.Type, loc goods.Location) int
	Find(t goods.Type) []goods.Good
	Workers() []goods.Good
	Fences() []goods.Good
	WorkersAt(loc goods.Location, c goods.Coordinate) int
	CanAfford(cost goods.Cost) bool
}

// BoardView reads the spaces shared by both kinds of board
type BoardView interface {
	Location() goods.Location
	Coordinates() []goods.Coordinate
	IsValid(c goods.Coordinate) bool
	Space(c goods.Coordinate) (board.Space, error)
	IsOccupied(c goods.Coordinate) (bool, error)
	SpaceType(c goods.Coordinate) (board.SpaceType, error)
	GoodsType(c goods.Coordinate) (goods.Type, error)
	NumGoodsPresent(c goods.Coordinate) (int, error)
	IsAccumulate(c goods.Coordinate) (bool, error)
	Action(c goods.Coordinate) (string, error)
	IsStabled(c goods.Coordinate) (bool, error)
	ChildPresent(c goods.Coordinate) (bool, error)
}

type ActionBoardView interface {
	BoardView
	OpenSpaces() []goods.Coordinate
	Find(action string) (goods.Coordinate, error)
	ActionCost(action string) (map[string]goods.Cost, error)
	ActionOutput(action string) (goods.Cost, error)
	ActionEffect(action string) (string, error)
}

type FarmyardView interface {
	BoardView
	Rooms() []goods.Coordinate
	Fields() []goods.Coordinate
	CountSpaces(kind board.SpaceType) int
	HouseType() board.SpaceType
	OpenRoom() (goods.Coordinate, error)
	IsFenced(key board.FenceKey) (bool, error)
	NumFences() int
	PastureRegion(c goods.Coordinate) []goods.Coordinate
	Pastures() [][]goods.Coordinate
	PastureCapacity(c goods.Coordinate) (int, error)
	PastureAnimals(c goods.Coordinate) (int, goods.Type, error)
}

type TilesView interface {
	Available(kind board.SpaceType) int
}

// CardsView reads a deck. Cards come back as copies, so marking one
// played changes nothing in the game.
type CardsView interface {
	Family() deck.Family
	Len() int
	Names() []string
	Has(name string) bool
	Card(name string) (deck.Card, error)
	Played() []deck.Card
	Unplayed() []deck.Card
	CountPlayed() int
}

// The wrappers keep callers from asserting a view back to the mutable
// value behind it.
type (
	supplyView      struct{ SupplyView }
	actionBoardView struct{ ActionBoardView }
	farmyardView    struct{ FarmyardView }
	tilesView       struct{ TilesView }
)

type cardsView struct {
	d *deck.Deck
}

func (v cardsView) Family() deck.Family  { return v.d.Family() }
func (v cardsView) Len() int             { return v.d.Len() }
func (v cardsView) Names() []string      { return v.d.Names() }
func (v cardsView) Has(name string) bool { return v.d.Has(name) }
func (v cardsView) CountPlayed() int     { return v.d.CountPlayed() }

func (v cardsView) Card(name string) (deck.Card, error) {
	c, err := v.d.Card(name)
	if err != nil {
		return deck.Card{}, err
	}
	return *c, nil
}

func (v cardsView) Played() []deck.Card   { return copyCards(v.d.Played()) }
func (v cardsView) Unplayed() []deck.Card { return copyCards(v.d.Unplayed()) }

func copyCards(cards []*deck.Card) []deck.Card {
	out := make([]deck.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, *c)
	}
	return out
}
