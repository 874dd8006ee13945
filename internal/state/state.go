package state

import "fmt"

// State is the closed set of machine states a game moves through
type State int

const (
	NotStarted State = iota
	RunningGame
	RunningRoundPrep
	RunningWorkPlayer1
	RunningWorkPlayer2
	RunningWorkPlayer3
	RunningWorkPlayer4
	CurrentPlayerDecision
	RunningRoundReturnHome
	RunningRoundHarvest
	Finished
	StoppedEarly
)

const MaxPlayers = 4

var stateNames = map[State]string{
	NotStarted:             "not_started",
	RunningGame:            "running_game",
	RunningRoundPrep:       "running_round_prep",
	RunningWorkPlayer1:     "running_work_player_1",
	RunningWorkPlayer2:     "running_work_player_2",
	RunningWorkPlayer3:     "running_work_player_3",
	RunningWorkPlayer4:     "running_work_player_4",
	CurrentPlayerDecision:  "current_player_decision",
	RunningRoundReturnHome: "running_round_return_home",
	RunningRoundHarvest:    "running_round_harvest",
	Finished:               "finished",
	StoppedEarly:           "stopped_early",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// WorkState returns the work state for a 1-based player seat
func WorkState(player int) State {
	return RunningWorkPlayer1 + State(player-1)
}

// WorkPlayer reports which seat a work state belongs to
func (s State) WorkPlayer() (int, bool) {
	if s < RunningWorkPlayer1 || s > RunningWorkPlayer4 {
		return 0, false
	}
	return int(s-RunningWorkPlayer1) + 1, true
}

// Set is a set of states
type Set uint32

func NewSet(states ...State) Set {
	var s Set
	for _, st := range states {
		s |= 1 << uint(st)
	}
	return s
}

func (s Set) Contains(st State) bool {
	return s&(1<<uint(st)) != 0
}

func (s Set) Union(other Set) Set {
	return s | other
}

// ForPlayers drops the work states of seats that don't exist at numPlayers
func (s Set) ForPlayers(numPlayers int) Set {
	filtered := s
	for seat := numPlayers + 1; seat <= MaxPlayers; seat++ {
		filtered &^= NewSet(WorkState(seat))
	}
	return filtered
}

// States lists the members in declaration order
func (s Set) States() []State {
	states := []State{}
	for st := NotStarted; st <= StoppedEarly; st++ {
		if s.Contains(st) {
			states = append(states, st)
		}
	}
	return states
}

var (
	WorkStates = NewSet(RunningWorkPlayer1, RunningWorkPlayer2, RunningWorkPlayer3, RunningWorkPlayer4)

	// RoundEndStates may be followed by the next round's preparation
	RoundEndStates = NewSet(RunningGame, RunningRoundReturnHome, RunningRoundHarvest)

	// InRound covers every state between a round's preparation and its end
	InRound = WorkStates.Union(NewSet(RunningRoundPrep, CurrentPlayerDecision, RunningRoundReturnHome, RunningRoundHarvest))

	// Active covers every state a game can be stopped early from
	Active = InRound.Union(NewSet(RunningGame))
)
