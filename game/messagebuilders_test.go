package game

import (
	"testing"

	utils "github.com/minaorangina/agricola/internal"
	"github.com/minaorangina/agricola/internal/goods"
	"github.com/stretchr/testify/require"
)

func TestPrompt(t *testing.T) {
	t.Run("before and between rounds", func(t *testing.T) {
		g := newTestGame(t, 2)
		utils.AssertEqual(t, g.Prompt(), "Waiting for the game to start")

		require.NoError(t, g.StartGame())
		utils.AssertEqual(t, g.Prompt(), "Round 0: running_game")
	})

	t.Run("placing workers", func(t *testing.T) {
		g := startedGame(t, 2)
		utils.AssertEqual(t, g.Prompt(), "Round 1: player 1 to place a worker (2 left)")

		require.NoError(t, g.PlacePersonOnActionSpace(1, forestSpace, room1))
		utils.AssertEqual(t, g.Prompt(), "Round 1: player 2 to place a worker (2 left)")
	})

	t.Run("a pending decision", func(t *testing.T) {
		g := startedGame(t, 2)
		require.NoError(t, g.PlacePersonOnActionSpace(1, farmExpansionSpace, room1))
		utils.AssertEqual(t, g.Prompt(), "Player 1 must decide choose_room_or_stable: room | stable | done")
	})

	t.Run("stopped early", func(t *testing.T) {
		g := startedGame(t, 2)
		require.NoError(t, g.QuitGameEarly())
		utils.AssertEqual(t, g.Prompt(), "Game stopped early")
	})
}

func TestPlayerSummary(t *testing.T) {
	g := newTestGame(t, 2)
	p1 := mustPlayer(t, g, 1)
	utils.AssertEqual(t, p1.Summary(), "player 1, family 2, wood_room house x2, food 2")

	require.NoError(t, p1.supply.Add(goods.Wood, 3))
	require.NoError(t, p1.supply.Add(goods.Grain, 1))
	p1.begging = 2
	utils.AssertEqual(t, p1.Summary(), "player 1, family 2, wood_room house x2, food 2, grain 1, wood 3, begging 2")
}
