package board

import (
	"math/rand/v2"

	"github.com/minaorangina/agricola/data"
	"github.com/minaorangina/agricola/errdefs"
	"github.com/minaorangina/agricola/internal/goods"
)

// ActionBoard is the single shared board of action spaces. Permanent
// spaces are valid from the start; stage spaces become valid as rounds
// reveal them.
type ActionBoard struct {
	Board
	actions     map[string]data.Action
	hidden      map[int][]string
	stageCoords map[int][]goods.Coordinate
	revealed    map[int]int
	placed      map[string]goods.Coordinate
	rng         *rand.Rand
}

// NewActionBoard lays out the permanent actions for numPlayers and queues up the stage actions
func NewActionBoard(numPlayers int, tables *data.Tables, rng *rand.Rand) (*ActionBoard, error) {
	b := &ActionBoard{
		Board:       newBoard(goods.ActionSpace),
		actions:     tables.Actions,
		hidden:      map[int][]string{},
		stageCoords: tables.Layout.Stages,
		revealed:    map[int]int{},
		placed:      map[string]goods.Coordinate{},
		rng:         rng,
	}

	placements := append([]data.Placement{}, tables.Layout.Base...)
	switch numPlayers {
	case 3:
		placements = append(placements, tables.Layout.ThreePlayer...)
	case 4:
		placements = append(placements, tables.Layout.FourPlayer...)
	}

	for _, p := range placements {
		a, ok := b.actions[p.Action]
		if !ok {
			return nil, errdefs.Illegal("new_action_board", "unknown action %q", p.Action)
		}
		b.addSpace(actionSpace(p.Coord, a), true)
		b.placed[a.Key] = p.Coord
	}

	for stage := 1; stage <= 6; stage++ {
		b.hidden[stage] = tables.StageActions(stage)
		for _, c := range b.stageCoords[stage] {
			b.addSpace(&Space{Coord: c, Type: Action}, false)
		}
	}
	return b, nil
}

func actionSpace(c goods.Coordinate, a data.Action) *Space {
	return &Space{
		Coord:      c,
		Type:       Action,
		Accumulate: a.Accumulate,
		Rate:       a.Rate,
		Action:     a.Key,
	}
}

// CheckReveal reports whether AddActionSpace can reveal a space of stage
// in round, without changing the board
func (b *ActionBoard) CheckReveal(round, stage int) error {
	const op = "add_action_space"

	if round < 1 || round > 14 {
		return errdefs.Illegal(op, "round %d out of range", round)
	}
	if len(b.hidden[stage]) == 0 || b.revealed[stage] >= len(b.stageCoords[stage]) {
		return errdefs.Illegal(op, "no action spaces left in stage %d", stage)
	}
	return nil
}

// AddActionSpace reveals a random unrevealed action of stage at the
// stage's next coordinate
func (b *ActionBoard) AddActionSpace(round, stage int) (string, goods.Coordinate, error) {
	if err := b.CheckReveal(round, stage); err != nil {
		return "", goods.InventoryCoord, err
	}

	hidden := b.hidden[stage]
	i := b.rng.IntN(len(hidden))
	key := hidden[i]
	c := b.stageCoords[stage][b.revealed[stage]]

	b.hidden[stage] = append(hidden[:i:i], hidden[i+1:]...)
	b.revealed[stage]++
	b.addSpace(actionSpace(c, b.actions[key]), true)
	b.placed[key] = c
	return key, c, nil
}

// AccumulateAll adds each accumulating space's rate to its goods
func (b *ActionBoard) AccumulateAll() {
	for _, c := range b.Coordinates() {
		s := b.spaces[c]
		if !s.Accumulate {
			continue
		}
		s.addGoods(b.actions[s.Action].Goods, s.Rate)
	}
}

// OpenSpaces lists revealed spaces nobody has placed a worker on
func (b *ActionBoard) OpenSpaces() []goods.Coordinate {
	open := []goods.Coordinate{}
	for _, c := range b.Coordinates() {
		if !b.spaces[c].IsOccupied() {
			open = append(open, c)
		}
	}
	return open
}

// Find returns where a revealed action sits
func (b *ActionBoard) Find(action string) (goods.Coordinate, error) {
	c, ok := b.placed[action]
	if !ok {
		return goods.InventoryCoord, errdefs.Illegal("find_action", "action %q is not on the board", action)
	}
	return c, nil
}

func (b *ActionBoard) definition(op, action string) (data.Action, error) {
	a, ok := b.actions[action]
	if !ok {
		return data.Action{}, errdefs.Illegal(op, "unknown action %q", action)
	}
	return a, nil
}

// ActionCost returns the named costs of an action
func (b *ActionBoard) ActionCost(action string) (map[string]goods.Cost, error) {
	a, err := b.definition("get_action_func_cost", action)
	if err != nil {
		return nil, err
	}
	costs := make(map[string]goods.Cost, len(a.Costs))
	for name, cost := range a.Costs {
		costs[name] = append(goods.Cost{}, cost...)
	}
	return costs, nil
}

func (b *ActionBoard) ActionOutput(action string) (goods.Cost, error) {
	a, err := b.definition("get_action_func_output", action)
	if err != nil {
		return nil, err
	}
	return append(goods.Cost{}, a.Output...), nil
}

func (b *ActionBoard) ActionEffect(action string) (string, error) {
	a, err := b.definition("get_action_function", action)
	if err != nil {
		return "", err
	}
	return a.Effect, nil
}

// CheckMove validates the action board side of req
func (b *ActionBoard) CheckMove(req goods.MoveRequest) error {
	const op = "action_space_move"

	if err := goods.CheckPath(req); err != nil {
		return err
	}

	if req.Dest == goods.ActionSpace {
		s, err := b.space(op, req.DestCoord)
		if err != nil {
			return err
		}
		// CheckPath only lets workers onto action spaces
		if req.Src == goods.Inventory {
			if s.Child {
				return errdefs.Illegal(op, "a child is already at %s", req.DestCoord)
			}
		} else if s.IsOccupied() {
			return errdefs.Illegal(op, "space %s is occupied", req.DestCoord)
		}
	}

	if req.Src == goods.ActionSpace {
		s, err := b.space(op, req.SrcCoord)
		if err != nil {
			return err
		}
		if req.Type == goods.Worker {
			if !s.IsOccupied() && !s.Child {
				return errdefs.Illegal(op, "no worker at %s", req.SrcCoord)
			}
			return nil
		}
		if s.Goods != req.Type || s.NumPresent != req.Qty {
			return errdefs.Illegal(op, "must take all %d %s at %s, asked for %d %s", s.NumPresent, s.Goods, req.SrcCoord, req.Qty, req.Type)
		}
	}
	return nil
}

// Move applies the action board side of req after checking it
func (b *ActionBoard) Move(req goods.MoveRequest) error {
	if err := b.CheckMove(req); err != nil {
		return err
	}

	if req.Dest == goods.ActionSpace {
		s := b.spaces[req.DestCoord]
		if req.Src == goods.Inventory {
			s.Child = true
		} else {
			s.Occupants = 1
		}
	}

	if req.Src == goods.ActionSpace {
		s := b.spaces[req.SrcCoord]
		switch {
		case req.Type != goods.Worker:
			s.removeGoods(req.Qty)
		case s.IsOccupied():
			s.Occupants = 0
		default:
			s.Child = false
		}
	}
	return nil
}

// Clear empties an action space without handing the goods to anyone
func (b *ActionBoard) Clear(c goods.Coordinate) (goods.Type, int, error) {
	s, err := b.space("clear", c)
	if err != nil {
		return goods.None, 0, err
	}
	t, n := s.Goods, s.NumPresent
	s.removeGoods(n)
	return t, n, nil
}
