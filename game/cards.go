package game

import (
	"errors"
	"fmt"

	"github.com/minaorangina/agricola/deck"
	"github.com/minaorangina/agricola/errdefs"
	"github.com/minaorangina/agricola/internal/goods"
	"go.uber.org/zap"
)

const (
	effectCooking = "cooking"
	effectHearth  = "hearth"
)

// cardCost is the first cost alternative p can pay. A card without costs is free.
func cardCost(op string, p *Player, c *deck.Card) (goods.Cost, error) {
	costs := c.Costs()
	if len(costs) == 0 {
		return nil, nil
	}
	for _, cost := range costs {
		if p.supply.CanAfford(cost) {
			return cost, nil
		}
	}
	return nil, errdefs.Illegal(op, "player %d cannot afford %s", p.seat, c.Name())
}

// refund gives back a payment after a card effect failed
func refund(s *goods.Supply, cost goods.Cost) error {
	for _, item := range cost {
		if err := s.Add(item.Type, item.Qty); err != nil {
			return fmt.Errorf("refunding %s: %w", cost, err)
		}
	}
	return nil
}

// rollback returns err, joined with whatever went wrong undoing it
func rollback(err error, undo ...error) error {
	if u := errors.Join(undo...); u != nil {
		return errors.Join(err, u)
	}
	return err
}

// playMinor plays a minor improvement from p's hand
func (g *Game) playMinor(p *Player, name string) (Decision, error) {
	const op = "play_minor_improvement"

	c, err := p.minors.Card(name)
	if err != nil {
		return nil, err
	}
	if c.Played() {
		return nil, errdefs.Illegal(op, "%s has already been played", name)
	}
	cost, err := cardCost(op, p, c)
	if err != nil {
		return nil, err
	}
	if err := p.supply.Pay(cost); err != nil {
		return nil, err
	}
	c.MarkPlayed()

	next, err := g.runCard(p, c)
	if err != nil {
		c.Reset()
		return nil, rollback(err, refund(p.supply, cost))
	}
	if c.PassLeft() {
		if err := g.passLeft(p, name); err != nil {
			return nil, err
		}
	}
	return next, nil
}

// passLeft hands a played minor improvement to the next player. Solo
// games have nobody to pass to, so the card leaves the game.
func (g *Game) passLeft(p *Player, name string) error {
	if len(g.players) == 1 {
		_, err := p.minors.Remove(name)
		return err
	}
	to := g.next(p)
	g.log.Debug("card passed left",
		zap.String("card", name),
		zap.Int("from", p.seat),
		zap.Int("to", to.seat),
	)
	return p.minors.PassOn(name, to.minors)
}

// playMajor buys one of the major improvements left on the board
func (g *Game) playMajor(p *Player, name string) (Decision, error) {
	const op = "play_major_improvement"

	c, err := g.majors.Card(name)
	if err != nil {
		return nil, err
	}
	if c.Effect() == effectHearth && p.fireplace() != nil {
		return ReturnFireplaceOrBuyHearth{Card: name}, nil
	}
	cost, err := cardCost(op, p, c)
	if err != nil {
		return nil, err
	}
	return g.buyMajor(p, c, cost)
}

func (g *Game) buyMajor(p *Player, c *deck.Card, cost goods.Cost) (Decision, error) {
	if err := p.supply.Pay(cost); err != nil {
		return nil, err
	}
	if err := g.majors.Transfer(c.Name(), p.majors); err != nil {
		return nil, rollback(err, refund(p.supply, cost))
	}
	c.MarkPlayed()

	next, err := g.runCard(p, c)
	if err != nil {
		return nil, rollback(err, p.majors.PassOn(c.Name(), g.majors), refund(p.supply, cost))
	}
	return next, nil
}

// upgradeFireplace swaps p's fireplace for the hearth without paying for it
func (g *Game) upgradeFireplace(p *Player, hearth string) (Decision, error) {
	c, err := g.majors.Card(hearth)
	if err != nil {
		return nil, err
	}
	fireplace := p.fireplace()
	if fireplace == nil {
		return nil, errdefs.Illegal("return_fireplace", "player %d has no fireplace to return", p.seat)
	}

	next, err := g.buyMajor(p, c, nil)
	if err != nil {
		return nil, err
	}
	if err := p.majors.PassOn(fireplace.Name(), g.majors); err != nil {
		return nil, rollback(err, p.majors.PassOn(c.Name(), g.majors))
	}
	return next, nil
}

// fireplace returns a fireplace p owns, nil if there is none
func (p *Player) fireplace() *deck.Card {
	for _, c := range p.majors.Played() {
		if c.Effect() == effectCooking {
			return c
		}
	}
	return nil
}

// playOccupationCard plays an occupation for the fee the lessons space asked
func (g *Game) playOccupationCard(p *Player, name string, fee goods.Cost) (Decision, error) {
	const op = "play_occupation"

	c, err := p.occupations.Card(name)
	if err != nil {
		return nil, err
	}
	if c.Played() {
		return nil, errdefs.Illegal(op, "%s has already been played", name)
	}
	if err := p.supply.Pay(fee); err != nil {
		return nil, err
	}
	c.MarkPlayed()

	next, err := g.runCard(p, c)
	if err != nil {
		c.Reset()
		return nil, rollback(err, refund(p.supply, fee))
	}
	return next, nil
}

func (g *Game) runCard(p *Player, c *deck.Card) (Decision, error) {
	next, err := g.cardEffects[c.Name()](g, p, Source{Card: c})
	if err != nil {
		return nil, err
	}
	g.log.Info("card played",
		zap.Int("player", p.seat),
		zap.String("card", c.String()),
	)
	return next, nil
}
