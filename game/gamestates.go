package game

import "github.com/minaorangina/agricola/internal/state"

// valid states for each game operation, before filtering by player count
var (
	validStartGame = state.NewSet(state.NotStarted)
	validNextRound = state.RoundEndStates
	validPlayNext  = state.WorkStates.Union(state.NewSet(state.RunningRoundPrep))
	validPlace     = state.WorkStates
	validDecide    = state.NewSet(state.CurrentPlayerDecision)
	validAnyTime   = state.Active
	validQuit      = state.Active
	validScore     = state.NewSet(state.Finished)
)
