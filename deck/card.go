package deck

import (
	"github.com/minaorangina/agricola/data"
	"github.com/minaorangina/agricola/internal/goods"
)

// Card is one improvement or occupation. Cards are moved between decks,
// never copied, so a played flag set in one place is seen everywhere.
type Card struct {
	family Family
	def    data.Card
	played bool
}

// NewCard wraps a card definition from the data tables
func NewCard(family Family, def data.Card) *Card {
	return &Card{family: family, def: def}
}

func (c *Card) Name() string    { return c.def.Key }
func (c *Card) Family() Family  { return c.family }
func (c *Card) Effect() string  { return c.def.Effect }
func (c *Card) PassLeft() bool  { return c.def.PassLeft }
func (c *Card) Points() int     { return c.def.Points }
func (c *Card) Played() bool    { return c.played }
func (c *Card) Def() data.Card  { return c.def }
func (c *Card) String() string  { return c.family.String() + ":" + c.def.Key }
func (c *Card) MinPlayers() int { return c.def.MinPlayers }
func (c *Card) Costs() []goods.Cost {
	return append([]goods.Cost{}, c.def.Costs...)
}

// MarkPlayed flags the card as played. Passed-on minor improvements are
// reset so the next owner can play them.
func (c *Card) MarkPlayed() { c.played = true }

// Reset puts the card back in hand, unplayed
func (c *Card) Reset() { c.played = false }

// CanCook reports whether the card turns animals or vegetables into food
func (c *Card) CanCook() bool { return len(c.def.Cook) > 0 }

// CanBake reports whether the card turns grain into food
func (c *Card) CanBake() bool { return len(c.def.Bake) > 0 }
