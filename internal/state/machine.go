package state

import (
	"errors"

	"github.com/minaorangina/agricola/errdefs"
)

var (
	ErrNoWorkersLeft  = errors.New("no workers left to place")
	ErrUnknownSeat    = errors.New("unknown player seat")
	ErrInvalidCounts  = errors.New("worker counts do not match player count")
	ErrTooFewPlayers  = errors.New("minimum of 1 player required")
	ErrTooManyPlayers = errors.New("maximum of 4 players allowed")
)

const (
	FinalRound = 14
	FinalPhase = 6
)

var harvestRounds = map[int]bool{4: true, 7: true, 9: true, 11: true, 13: true, 14: true}

// IsHarvestRound reports whether round ends with a harvest
func IsHarvestRound(round int) bool {
	return harvestRounds[round]
}

// Stage returns which stage of action spaces round reveals from. Each
// harvest closes a stage, so rounds 1-4 are stage 1 and round 14 is stage 6.
func Stage(round int) int {
	stage := 1
	for r := 1; r < round; r++ {
		if IsHarvestRound(r) {
			stage++
		}
	}
	return min(stage, FinalPhase)
}

// Machine holds the round, phase and turn bookkeeping for one game.
// It is not safe for concurrent use.
type Machine struct {
	state          State
	round          int
	phase          int
	numPlayers     int
	activePlayer   int
	startingPlayer int
	workersLeft    []int
}

func NewMachine(numPlayers int) (*Machine, error) {
	if numPlayers < 1 {
		return nil, ErrTooFewPlayers
	}
	if numPlayers > MaxPlayers {
		return nil, ErrTooManyPlayers
	}

	workers := make([]int, numPlayers)
	for i := range workers {
		workers[i] = 2
	}

	return &Machine{
		state:          NotStarted,
		numPlayers:     numPlayers,
		activePlayer:   1,
		startingPlayer: 1,
		workersLeft:    workers,
	}, nil
}

func (m *Machine) State() State        { return m.state }
func (m *Machine) Round() int          { return m.round }
func (m *Machine) Phase() int          { return m.phase }
func (m *Machine) NumPlayers() int     { return m.numPlayers }
func (m *Machine) ActivePlayer() int   { return m.activePlayer }
func (m *Machine) StartingPlayer() int { return m.startingPlayer }

// WorkersLeft returns how many workers seat still has to place this round
func (m *Machine) WorkersLeft(seat int) int {
	if seat < 1 || seat > m.numPlayers {
		return 0
	}
	return m.workersLeft[seat-1]
}

// Guard returns a StateError unless the current state is in valid,
// after dropping work states for seats this game doesn't have
func (m *Machine) Guard(op string, valid Set) error {
	if valid.ForPlayers(m.numPlayers).Contains(m.state) {
		return nil
	}
	return &errdefs.StateError{Op: op, State: m.state.String()}
}

// Start moves a fresh game into running_game
func (m *Machine) Start() error {
	if err := m.Guard("start_game", NewSet(NotStarted)); err != nil {
		return err
	}
	m.state = RunningGame
	m.phase = 1
	return nil
}

// BeginRound advances the round counter and enters preparation. The phase
// moves on when the new round is a harvest round, up to FinalPhase.
func (m *Machine) BeginRound() error {
	if err := m.Guard("start_round", RoundEndStates); err != nil {
		return err
	}
	if m.round >= FinalRound {
		return &errdefs.StateError{Op: "start_round", State: m.state.String()}
	}
	m.round++
	if IsHarvestRound(m.round) && m.phase < FinalPhase {
		m.phase++
	}
	m.state = RunningRoundPrep
	m.activePlayer = 1
	return nil
}

// ResetWorkers sets each seat's workers to place for the new round
func (m *Machine) ResetWorkers(counts []int) error {
	if len(counts) != m.numPlayers {
		return ErrInvalidCounts
	}
	copy(m.workersLeft, counts)
	return nil
}

// SetStartingPlayer records who holds the starting player token
func (m *Machine) SetStartingPlayer(seat int) error {
	if seat < 1 || seat > m.numPlayers {
		return ErrUnknownSeat
	}
	m.startingPlayer = seat
	return nil
}

// UseWorker spends one of the active player's workers
func (m *Machine) UseWorker() error {
	if m.workersLeft[m.activePlayer-1] == 0 {
		return ErrNoWorkersLeft
	}
	m.workersLeft[m.activePlayer-1]--
	return nil
}

// Advance hands the turn to the next seat that still has workers. From
// preparation seat 1 goes first. When nobody has workers left the machine
// enters running_round_return_home and Advance returns true.
func (m *Machine) Advance() (bool, error) {
	if err := m.Guard("play_next_player_actions", WorkStates.Union(NewSet(RunningRoundPrep, CurrentPlayerDecision))); err != nil {
		return false, err
	}

	first := 1
	if m.state != RunningRoundPrep {
		first = m.activePlayer%m.numPlayers + 1
	}

	for i := 0; i < m.numPlayers; i++ {
		seat := (first-1+i)%m.numPlayers + 1
		if m.workersLeft[seat-1] > 0 {
			m.activePlayer = seat
			m.state = WorkState(seat)
			return false, nil
		}
	}

	m.state = RunningRoundReturnHome
	return true, nil
}

// EnterDecision parks the active player's turn until a decision resolves
func (m *Machine) EnterDecision() error {
	if err := m.Guard("set_current_player_decision", WorkStates.Union(NewSet(CurrentPlayerDecision))); err != nil {
		return err
	}
	m.state = CurrentPlayerDecision
	return nil
}

// ResumeWork returns from a resolved decision to the active player's work state
func (m *Machine) ResumeWork() error {
	if err := m.Guard("resume_work", NewSet(CurrentPlayerDecision)); err != nil {
		return err
	}
	m.state = WorkState(m.activePlayer)
	return nil
}

// EnterHarvest switches from returning home to the harvest on harvest rounds
func (m *Machine) EnterHarvest() error {
	if err := m.Guard("harvest", NewSet(RunningRoundReturnHome)); err != nil {
		return err
	}
	if !IsHarvestRound(m.round) {
		return &errdefs.StateError{Op: "harvest", State: m.state.String()}
	}
	m.state = RunningRoundHarvest
	return nil
}

// Finish ends the game after the final harvest
func (m *Machine) Finish() error {
	if err := m.Guard("finish", NewSet(RunningRoundHarvest)); err != nil {
		return err
	}
	if m.round != FinalRound {
		return &errdefs.StateError{Op: "finish", State: m.state.String()}
	}
	m.state = Finished
	return nil
}

// Stop ends the game early from any active state
func (m *Machine) Stop() error {
	if err := m.Guard("quit_game_early", Active); err != nil {
		return err
	}
	m.state = StoppedEarly
	m.round = 0
	m.phase = 0
	return nil
}
