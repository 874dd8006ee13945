package state

import (
	"testing"

	"github.com/minaorangina/agricola/errdefs"
	utils "github.com/minaorangina/agricola/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetForPlayers(t *testing.T) {
	all := WorkStates.Union(NewSet(CurrentPlayerDecision))

	tt := []struct {
		players int
		want    []State
	}{
		{1, []State{RunningWorkPlayer1, CurrentPlayerDecision}},
		{2, []State{RunningWorkPlayer1, RunningWorkPlayer2, CurrentPlayerDecision}},
		{3, []State{RunningWorkPlayer1, RunningWorkPlayer2, RunningWorkPlayer3, CurrentPlayerDecision}},
		{4, []State{RunningWorkPlayer1, RunningWorkPlayer2, RunningWorkPlayer3, RunningWorkPlayer4, CurrentPlayerDecision}},
	}

	for _, tc := range tt {
		utils.AssertDeepEqual(t, all.ForPlayers(tc.players).States(), tc.want)
	}

	t.Run("filtering leaves the original set alone", func(t *testing.T) {
		_ = all.ForPlayers(1)
		assert.True(t, all.Contains(RunningWorkPlayer4))
	})
}

func TestStateNames(t *testing.T) {
	utils.AssertEqual(t, RunningWorkPlayer3.String(), "running_work_player_3")
	utils.AssertEqual(t, StoppedEarly.String(), "stopped_early")

	seat, ok := RunningWorkPlayer2.WorkPlayer()
	assert.True(t, ok)
	assert.Equal(t, 2, seat)

	_, ok = RunningRoundHarvest.WorkPlayer()
	assert.False(t, ok)
}

func TestMachineGuard(t *testing.T) {
	t.Run("work state of a missing seat is rejected", func(t *testing.T) {
		t.Log("Given a two player machine forced into player 3's work state")
		m, err := NewMachine(2)
		require.NoError(t, err)
		m.state = RunningWorkPlayer3

		t.Log("Then a guard naming that state still fails")
		err = m.Guard("place_person", WorkStates)
		assert.True(t, errdefs.IsState(err))
	})

	t.Run("player counts outside 1-4 are refused", func(t *testing.T) {
		_, err := NewMachine(0)
		assert.ErrorIs(t, err, ErrTooFewPlayers)
		_, err = NewMachine(5)
		assert.ErrorIs(t, err, ErrTooManyPlayers)
	})
}

func TestMachineRounds(t *testing.T) {
	t.Run("rounds and phases advance monotonically", func(t *testing.T) {
		m, err := NewMachine(2)
		require.NoError(t, err)
		require.NoError(t, m.Start())
		utils.AssertEqual(t, m.Phase(), 1)

		phases := map[int]int{}
		for round := 1; round <= FinalRound; round++ {
			require.NoError(t, m.BeginRound())
			phases[m.Round()] = m.Phase()
			m.state = RunningRoundReturnHome
			if IsHarvestRound(round) {
				require.NoError(t, m.EnterHarvest())
			}
		}

		want := map[int]int{1: 1, 2: 1, 3: 1, 4: 2, 5: 2, 6: 2, 7: 3, 8: 3, 9: 4, 10: 4, 11: 5, 12: 5, 13: 6, 14: 6}
		utils.AssertDeepEqual(t, phases, want)

		require.NoError(t, m.Finish())
		assert.Equal(t, Finished, m.State())
		assert.True(t, errdefs.IsState(m.BeginRound()))
	})

	t.Run("stages trail the phase by one round", func(t *testing.T) {
		want := map[int]int{1: 1, 4: 1, 5: 2, 7: 2, 8: 3, 9: 3, 10: 4, 11: 4, 12: 5, 13: 5, 14: 6}
		for round, stage := range want {
			assert.Equal(t, stage, Stage(round), "round %d", round)
		}
	})

	t.Run("start is only legal once", func(t *testing.T) {
		m, _ := NewMachine(1)
		require.NoError(t, m.Start())
		assert.True(t, errdefs.IsState(m.Start()))
	})

	t.Run("stopping early resets counters", func(t *testing.T) {
		m, _ := NewMachine(3)
		require.NoError(t, m.Start())
		require.NoError(t, m.BeginRound())
		require.NoError(t, m.Stop())

		assert.Equal(t, StoppedEarly, m.State())
		assert.Equal(t, 0, m.Round())
		assert.Equal(t, 0, m.Phase())
		assert.True(t, errdefs.IsState(m.Stop()))
	})
}

func TestMachineAdvance(t *testing.T) {
	newRound := func(t *testing.T, players int, workers []int) *Machine {
		t.Helper()
		m, err := NewMachine(players)
		require.NoError(t, err)
		require.NoError(t, m.Start())
		require.NoError(t, m.BeginRound())
		require.NoError(t, m.ResetWorkers(workers))
		return m
	}

	t.Run("turns loop back through all players", func(t *testing.T) {
		m := newRound(t, 3, []int{2, 2, 2})

		order := []int{}
		for i := 0; i < 6; i++ {
			done, err := m.Advance()
			require.NoError(t, err)
			require.False(t, done)
			order = append(order, m.ActivePlayer())
			require.NoError(t, m.UseWorker())
		}

		utils.AssertDeepEqual(t, order, []int{1, 2, 3, 1, 2, 3})

		done, err := m.Advance()
		require.NoError(t, err)
		assert.True(t, done)
		assert.Equal(t, RunningRoundReturnHome, m.State())
	})

	t.Run("players without workers are skipped", func(t *testing.T) {
		m := newRound(t, 3, []int{1, 0, 2})

		_, err := m.Advance()
		require.NoError(t, err)
		require.NoError(t, m.UseWorker())

		_, err = m.Advance()
		require.NoError(t, err)
		assert.Equal(t, RunningWorkPlayer3, m.State())
	})

	t.Run("player 1 opens the round whoever holds the token", func(t *testing.T) {
		m, _ := NewMachine(2)
		require.NoError(t, m.Start())
		require.NoError(t, m.SetStartingPlayer(2))
		require.NoError(t, m.BeginRound())
		require.NoError(t, m.ResetWorkers([]int{2, 2}))

		_, err := m.Advance()
		require.NoError(t, err)
		assert.Equal(t, RunningWorkPlayer1, m.State())
		assert.Equal(t, 1, m.ActivePlayer())
		assert.Equal(t, 2, m.StartingPlayer())
	})

	t.Run("decisions return to the active player's work state", func(t *testing.T) {
		m := newRound(t, 2, []int{2, 2})
		_, err := m.Advance()
		require.NoError(t, err)

		require.NoError(t, m.EnterDecision())
		assert.Equal(t, CurrentPlayerDecision, m.State())
		assert.True(t, errdefs.IsState(m.BeginRound()))

		require.NoError(t, m.ResumeWork())
		assert.Equal(t, RunningWorkPlayer1, m.State())
	})

	t.Run("a worker cannot be used twice", func(t *testing.T) {
		m := newRound(t, 1, []int{1})
		_, err := m.Advance()
		require.NoError(t, err)
		require.NoError(t, m.UseWorker())
		assert.ErrorIs(t, m.UseWorker(), ErrNoWorkersLeft)
	})
}
