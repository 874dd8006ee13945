package game

import (
	"github.com/minaorangina/agricola/errdefs"
	"github.com/minaorangina/agricola/internal/board"
	"github.com/minaorangina/agricola/internal/goods"
	"go.uber.org/zap"
)

// The actions below may be taken by any player whenever the game is running,
// whoever's turn it is.

// MoveItems rearranges goods on the player's own farmyard, e.g. an animal
// from a room into a pasture
func (g *Game) MoveItems(seat int, req goods.MoveRequest) error {
	const op = "move_items"

	if err := g.machine.Guard(op, validAnyTime); err != nil {
		return err
	}
	p, err := g.player(op, seat)
	if err != nil {
		return err
	}
	if req.Src != goods.Farmyard || req.Dest != goods.Farmyard {
		return errdefs.Illegal(op, "only moves within the farmyard, got %s to %s", req.Src, req.Dest)
	}
	return board.Transfer(req, p.supply, p.farmyard)
}

// ConvertToFood turns n crops from the inventory into food. Grain is worth
// one food raw; vegetables are worth more with a cooking improvement.
func (g *Game) ConvertToFood(seat int, t goods.Type, n int) error {
	const op = "convert_to_food"

	if err := g.machine.Guard(op, validAnyTime); err != nil {
		return err
	}
	p, err := g.player(op, seat)
	if err != nil {
		return err
	}
	if !t.IsCrop() {
		return errdefs.Illegal(op, "%s is not a crop, cook animals from the farmyard instead", t)
	}
	if n < 1 {
		return errdefs.Illegal(op, "expected a positive quantity, got %d", n)
	}
	rate := 1
	if t == goods.Vegetable {
		rate = max(rate, p.cookRate(t))
	}

	if err := p.supply.Remove(t, n); err != nil {
		return err
	}
	g.log.Debug("converted to food", zap.Int("player", seat), zap.String("goods", string(t)), zap.Int("qty", n))
	return p.supply.Add(goods.Food, n*rate)
}

// CookAnimals cooks n animals kept at c with the player's cooking improvement
func (g *Game) CookAnimals(seat int, c goods.Coordinate, n int) error {
	const op = "cook_animals"

	if err := g.machine.Guard(op, validAnyTime); err != nil {
		return err
	}
	p, err := g.player(op, seat)
	if err != nil {
		return err
	}
	if n < 1 {
		return errdefs.Illegal(op, "expected a positive quantity, got %d", n)
	}
	t, err := p.farmyard.GoodsType(c)
	if err != nil {
		return err
	}
	if !t.IsAnimal() {
		return errdefs.Illegal(op, "no animals at %s", c)
	}
	rate := p.cookRate(t)
	if rate == 0 {
		return errdefs.Illegal(op, "player %d cannot cook %s", seat, t)
	}
	if have := p.supply.CountAt(t, goods.Farmyard, c); have < n {
		return errdefs.Illegal(op, "%s holds %d %s, cannot cook %d", c, have, t, n)
	}

	if err := p.farmyard.Cull(c, t, n); err != nil {
		return err
	}
	if err := p.supply.RemoveAt(t, n, goods.Farmyard, c); err != nil {
		return err
	}
	return p.supply.Add(goods.Food, n*rate)
}

// DiscardGoods throws away n general goods from the inventory
func (g *Game) DiscardGoods(seat int, t goods.Type, n int) error {
	const op = "discard_goods"

	if err := g.machine.Guard(op, validAnyTime); err != nil {
		return err
	}
	p, err := g.player(op, seat)
	if err != nil {
		return err
	}
	if t.IsLimited() {
		return errdefs.Illegal(op, "%s cannot be discarded", t)
	}
	if n < 1 {
		return errdefs.Illegal(op, "expected a positive quantity, got %d", n)
	}
	return p.supply.Remove(t, n)
}
