package deck

import (
	"math/rand/v2"
	"sort"

	"github.com/minaorangina/agricola/data"
	"github.com/minaorangina/agricola/errdefs"
)

// Deck holds cards of a single family by name
type Deck struct {
	family Family
	cards  map[string]*Card
}

// New creates a deck holding one card for every definition
func New(family Family, defs []data.Card) *Deck {
	d := Empty(family)
	for _, def := range defs {
		d.cards[def.Key] = NewCard(family, def)
	}
	return d
}

// Empty creates a deck with no cards in it
func Empty(family Family) *Deck {
	return &Deck{family: family, cards: map[string]*Card{}}
}

func (d *Deck) Family() Family { return d.family }
func (d *Deck) Len() int       { return len(d.cards) }

// Names lists the cards in the deck, sorted
func (d *Deck) Names() []string {
	names := make([]string, 0, len(d.cards))
	for name := range d.cards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d *Deck) Has(name string) bool {
	_, ok := d.cards[name]
	return ok
}

// Card returns the named card
func (d *Deck) Card(name string) (*Card, error) {
	c, ok := d.cards[name]
	if !ok {
		return nil, errdefs.Illegal("get_card", "no %s %q in deck", d.family, name)
	}
	return c, nil
}

// Deal moves n cards chosen at random into a fresh deck. Only cards
// accepted by keep are dealt; a nil keep accepts every card.
func (d *Deck) Deal(n int, rng *rand.Rand, keep func(*Card) bool) (*Deck, error) {
	eligible := []string{}
	for _, name := range d.Names() {
		if keep == nil || keep(d.cards[name]) {
			eligible = append(eligible, name)
		}
	}
	if n < 0 || n > len(eligible) {
		return nil, errdefs.Illegal("deal", "cannot deal %d of %d %s cards", n, len(eligible), d.family)
	}

	rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})

	hand := Empty(d.family)
	for _, name := range eligible[:n] {
		hand.cards[name] = d.cards[name]
		delete(d.cards, name)
	}
	return hand, nil
}

// Transfer moves the named card into another deck of the same family
func (d *Deck) Transfer(name string, to *Deck) error {
	const op = "transfer_card"

	c, ok := d.cards[name]
	if !ok {
		return errdefs.Illegal(op, "no %s %q in deck", d.family, name)
	}
	if to.family != d.family {
		return errdefs.Illegal(op, "cannot move a %s into a %s deck", d.family, to.family)
	}
	if to.Has(name) {
		return errdefs.Illegal(op, "%q is already in the destination deck", name)
	}
	delete(d.cards, name)
	to.cards[name] = c
	return nil
}

// PassOn moves a played card to another deck unplayed, ready for its new owner
func (d *Deck) PassOn(name string, to *Deck) error {
	if err := d.Transfer(name, to); err != nil {
		return err
	}
	to.cards[name].Reset()
	return nil
}

// Remove takes a card out of play entirely
func (d *Deck) Remove(name string) (*Card, error) {
	c, ok := d.cards[name]
	if !ok {
		return nil, errdefs.Illegal("remove_card", "no %s %q in deck", d.family, name)
	}
	delete(d.cards, name)
	return c, nil
}

// Played lists the played cards, sorted by name
func (d *Deck) Played() []*Card {
	played := []*Card{}
	for _, name := range d.Names() {
		if c := d.cards[name]; c.played {
			played = append(played, c)
		}
	}
	return played
}

// Unplayed lists the cards still in hand, sorted by name
func (d *Deck) Unplayed() []*Card {
	unplayed := []*Card{}
	for _, name := range d.Names() {
		if c := d.cards[name]; !c.played {
			unplayed = append(unplayed, c)
		}
	}
	return unplayed
}

func (d *Deck) CountPlayed() int { return len(d.Played()) }
