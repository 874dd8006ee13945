package game

import (
	"testing"

	"github.com/minaorangina/agricola/data"
	"github.com/minaorangina/agricola/deck"
	"github.com/minaorangina/agricola/errdefs"
	utils "github.com/minaorangina/agricola/internal"
	"github.com/minaorangina/agricola/internal/goods"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// handWith replaces p's minor improvements with a single test card
func handWith(g *Game, p *Player, def data.Card) {
	p.minors = deck.New(deck.MinorImprovement, []data.Card{def})
	g.cardEffects[def.Key] = effects[def.Effect]
}

var passedCard = data.Card{
	Key:      "test_clay_card",
	Costs:    []goods.Cost{goods.MustParseCost("1 food")},
	Effect:   "get_goods",
	PassLeft: true,
	Output:   goods.MustParseCost("2 clay"),
}

func TestPlayMinorImprovement(t *testing.T) {
	t.Run("a pass left card goes to the next player", func(t *testing.T) {
		g := startedGame(t, 3)
		p1, p2 := mustPlayer(t, g, 1), mustPlayer(t, g, 2)
		handWith(g, p1, passedCard)

		next, err := g.playMinor(p1, passedCard.Key)
		utils.AssertNoError(t, err)
		assert.Nil(t, next)

		utils.AssertEqual(t, p1.Supply().Count(goods.Food), 2-1)
		utils.AssertEqual(t, p1.Supply().Count(goods.Clay), 2)
		assert.False(t, p1.MinorImprovements().Has(passedCard.Key))

		c, err := p2.MinorImprovements().Card(passedCard.Key)
		require.NoError(t, err)
		assert.False(t, c.Played())
	})

	t.Run("the last seat passes to the first", func(t *testing.T) {
		g := startedGame(t, 2)
		p1, p2 := mustPlayer(t, g, 1), mustPlayer(t, g, 2)
		handWith(g, p2, passedCard)

		_, err := g.playMinor(p2, passedCard.Key)
		utils.AssertNoError(t, err)
		utils.AssertTrue(t, p1.MinorImprovements().Has(passedCard.Key))
	})

	t.Run("solo games discard passed cards", func(t *testing.T) {
		g := startedGame(t, 1)
		p1 := mustPlayer(t, g, 1)
		require.NoError(t, p1.supply.Add(goods.Food, 1))
		handWith(g, p1, passedCard)

		_, err := g.playMinor(p1, passedCard.Key)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, p1.MinorImprovements().Len(), 0)
	})

	t.Run("unaffordable cards stay in hand", func(t *testing.T) {
		g := startedGame(t, 2)
		p1 := mustPlayer(t, g, 1)
		require.NoError(t, p1.supply.Remove(goods.Food, 2))
		handWith(g, p1, passedCard)

		_, err := g.playMinor(p1, passedCard.Key)
		utils.AssertIllegal(t, err)
		c, err := p1.MinorImprovements().Card(passedCard.Key)
		require.NoError(t, err)
		assert.False(t, c.Played())
	})

	t.Run("a failed effect refunds the card", func(t *testing.T) {
		g := startedGame(t, 2)
		p1 := mustPlayer(t, g, 1)
		fences := data.Card{
			Key:    "test_fence_card",
			Costs:  []goods.Cost{goods.MustParseCost("1 food")},
			Effect: "build_fences",
		}
		handWith(g, p1, fences)
		for _, key := range []goods.Coordinate{at(0, 4), at(0, 3), at(0, 2)} {
			for _, side := range []goods.Axis{goods.Vertical, goods.Horizontal} {
				for range [5]struct{}{} {
					if p1.supply.CountIn(goods.Fence, goods.Inventory) > 0 {
						require.NoError(t, p1.supply.PlaceFence(key, side))
					}
				}
			}
		}
		require.Equal(t, 0, p1.supply.CountIn(goods.Fence, goods.Inventory))

		_, err := g.playMinor(p1, fences.Key)
		utils.AssertIllegal(t, err)
		utils.AssertEqual(t, p1.Supply().Count(goods.Food), 2)
		c, err := p1.MinorImprovements().Card(fences.Key)
		require.NoError(t, err)
		assert.False(t, c.Played())
	})

	t.Run("already played cards are refused", func(t *testing.T) {
		g := startedGame(t, 2)
		p1 := mustPlayer(t, g, 1)
		rammed := playedCard(t, g, p1, deck.MinorImprovement, "rammed_clay")

		_, err := g.playMinor(p1, rammed.Name())
		utils.AssertIllegal(t, err)
	})
}

func TestPlayMajorImprovement(t *testing.T) {
	t.Run("buying a fireplace", func(t *testing.T) {
		g := startedGame(t, 2)
		p1 := mustPlayer(t, g, 1)
		require.NoError(t, p1.supply.Add(goods.Clay, 2))

		next, err := g.playMajor(p1, "2_fireplace")
		utils.AssertNoError(t, err)
		assert.Nil(t, next)

		utils.AssertEqual(t, p1.Supply().Count(goods.Clay), 0)
		utils.AssertTrue(t, p1.MajorImprovements().Has("2_fireplace"))
		assert.False(t, g.MajorImprovements().Has("2_fireplace"))
		utils.AssertTrue(t, p1.canCook())

		_, err = g.playMajor(p1, "2_fireplace")
		utils.AssertIllegal(t, err)
	})

	t.Run("a fireplace can be traded for a hearth", func(t *testing.T) {
		g := startedGame(t, 2)
		p1 := mustPlayer(t, g, 1)
		playedCard(t, g, p1, deck.MajorImprovement, "2_fireplace")

		g.pending = ChooseImprovement{}
		require.NoError(t, g.machine.EnterDecision())

		require.NoError(t, g.Decide(1, "major"))
		require.NoError(t, g.Decide(1, "4_cooking_hearth"))
		assert.Equal(t, ReturnFireplaceOrBuyHearth{Card: "4_cooking_hearth"}, g.PendingDecision())

		t.Log("Buying it outright needs the clay")
		utils.AssertIllegal(t, g.Decide(1, "buy"))

		t.Log("Returning the fireplace gets it for free")
		require.NoError(t, g.Decide(1, "return"))
		assert.Nil(t, g.PendingDecision())

		utils.AssertTrue(t, p1.MajorImprovements().Has("4_cooking_hearth"))
		assert.False(t, p1.MajorImprovements().Has("2_fireplace"))
		c, err := g.MajorImprovements().Card("2_fireplace")
		require.NoError(t, err)
		assert.False(t, c.Played())
		utils.AssertEqual(t, p1.cookRate(goods.Cattle), 4)
	})

	t.Run("the fireplace is kept when the hearth cannot be taken", func(t *testing.T) {
		g := startedGame(t, 2)
		p1 := mustPlayer(t, g, 1)
		playedCard(t, g, p1, deck.MajorImprovement, "2_fireplace")
		g.cardEffects["4_cooking_hearth"] = func(*Game, *Player, Source) (Decision, error) {
			return nil, errdefs.Illegal("hearth", "out of order")
		}
		before := takeSnapshot(g)

		t.Log("When the hearth's effect fails during the swap")
		_, err := g.upgradeFireplace(p1, "4_cooking_hearth")
		utils.AssertIllegal(t, err)

		t.Log("Then the fireplace is still in front of the player")
		utils.AssertTrue(t, p1.MajorImprovements().Has("2_fireplace"))
		utils.AssertNotNil(t, p1.fireplace())
		assert.False(t, p1.MajorImprovements().Has("4_cooking_hearth"))
		c, err := g.MajorImprovements().Card("4_cooking_hearth")
		require.NoError(t, err)
		assert.False(t, c.Played())
		assert.Equal(t, before, takeSnapshot(g))
	})

	t.Run("refunds report a supply that cannot take the goods back", func(t *testing.T) {
		s := goods.NewSupply(0)
		err := refund(s, goods.Cost{{Qty: 99, Type: goods.Fence}})
		utils.AssertIllegal(t, err)

		failed := errdefs.Illegal("play", "effect failed")
		joined := rollback(failed, err)
		assert.ErrorIs(t, joined, failed)
		assert.Equal(t, failed, rollback(failed, nil))
	})

	t.Run("without a fireplace the hearth is bought", func(t *testing.T) {
		g := startedGame(t, 2)
		p1 := mustPlayer(t, g, 1)
		require.NoError(t, p1.supply.Add(goods.Clay, 5))

		next, err := g.playMajor(p1, "5_cooking_hearth")
		utils.AssertNoError(t, err)
		assert.Nil(t, next)
		utils.AssertEqual(t, p1.Supply().Count(goods.Clay), 0)
	})

	t.Run("the well pays food in later rounds", func(t *testing.T) {
		g := startedGame(t, 2)
		p1 := mustPlayer(t, g, 1)
		require.NoError(t, p1.supply.Add(goods.Wood, 1))
		require.NoError(t, p1.supply.Add(goods.Stone, 3))

		_, err := g.playMajor(p1, "well")
		utils.AssertNoError(t, err)

		assert.Empty(t, p1.FutureGoods(1))
		for round := 2; round <= 6; round++ {
			assert.Equal(t, goods.Cost{{Qty: 1, Type: goods.Food}}, p1.FutureGoods(round), "round %d", round)
		}
		assert.Empty(t, p1.FutureGoods(7))
		utils.AssertEqual(t, p1.Score(), 4)
	})

	t.Run("future goods stop after the last round", func(t *testing.T) {
		p := newPlayer(1, 2, true)
		p.scheduleFuture(13, 5, goods.Item{Qty: 1, Type: goods.Food})
		assert.Len(t, p.future, 2)
	})

	t.Run("ovens bake on purchase", func(t *testing.T) {
		g := startedGame(t, 2)
		p1 := mustPlayer(t, g, 1)
		require.NoError(t, p1.supply.Add(goods.Clay, 1))
		require.NoError(t, p1.supply.Add(goods.Stone, 3))
		require.NoError(t, p1.supply.Add(goods.Grain, 2))

		next, err := g.playMajor(p1, "stone_oven")
		utils.AssertNoError(t, err)
		assert.Equal(t, BakeBread{}, next)

		food, ok := p1.bakeFood(2)
		utils.AssertTrue(t, ok)
		utils.AssertEqual(t, food, 8)
		_, ok = p1.bakeFood(3)
		assert.False(t, ok)
	})
}

func TestChooseImprovement(t *testing.T) {
	g := startedGame(t, 2)
	p1 := mustPlayer(t, g, 1)

	next, err := g.chooseImprovement(p1, []string{"minor"})
	utils.AssertNoError(t, err)
	assert.Equal(t, PlayMinorImprovement{}, next)

	next, err = g.chooseImprovement(p1, []string{"major"})
	utils.AssertNoError(t, err)
	assert.Equal(t, PlayMajorImprovement{}, next)

	next, err = g.chooseImprovement(p1, []string{argSkip})
	utils.AssertNoError(t, err)
	assert.Nil(t, next)

	_, err = g.chooseImprovement(p1, []string{"occupation"})
	utils.AssertIllegal(t, err)

	for _, c := range p1.minors.Unplayed() {
		c.MarkPlayed()
	}
	_, err = g.chooseImprovement(p1, []string{"minor"})
	utils.AssertIllegal(t, err)
}
