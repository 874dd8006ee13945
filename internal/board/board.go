package board

import (
	"github.com/minaorangina/agricola/errdefs"
	"github.com/minaorangina/agricola/internal/goods"
)

// SpaceType is what a space is currently used for
type SpaceType string

const (
	WoodRoom  SpaceType = "wood_room"
	ClayRoom  SpaceType = "clay_room"
	StoneRoom SpaceType = "stone_room"
	Field     SpaceType = "field"
	Pasture   SpaceType = "pasture"
	Unused    SpaceType = "unused"
	Blocked   SpaceType = "blocked"
	Action    SpaceType = "action"
)

func (t SpaceType) IsRoom() bool {
	return t == WoodRoom || t == ClayRoom || t == StoneRoom
}

func ParseSpaceType(s string) (SpaceType, error) {
	switch t := SpaceType(s); t {
	case WoodRoom, ClayRoom, StoneRoom, Field, Pasture, Unused, Blocked, Action:
		return t, nil
	}
	return "", errdefs.Illegal("parse_space_type", "unknown space type %q", s)
}

// Space is one cell of a board. Goods is empty exactly when NumPresent is 0.
type Space struct {
	Coord      goods.Coordinate
	Type       SpaceType
	Occupants  int
	Child      bool
	Stabled    bool
	Accumulate bool
	Rate       int
	Goods      goods.Type
	NumPresent int
	Action     string
}

func (s Space) IsOccupied() bool { return s.Occupants > 0 }

func (s *Space) addGoods(t goods.Type, n int) {
	s.Goods = t
	s.NumPresent += n
}

func (s *Space) removeGoods(n int) {
	s.NumPresent -= n
	if s.NumPresent <= 0 {
		s.NumPresent = 0
		s.Goods = goods.None
	}
}

// Board is the grid shared by the action board and every farmyard
type Board struct {
	location goods.Location
	spaces   map[goods.Coordinate]*Space
	order    []goods.Coordinate
	valid    map[goods.Coordinate]bool
}

func newBoard(location goods.Location) Board {
	return Board{
		location: location,
		spaces:   map[goods.Coordinate]*Space{},
		order:    []goods.Coordinate{},
		valid:    map[goods.Coordinate]bool{},
	}
}

func (b *Board) addSpace(s *Space, valid bool) {
	if _, exists := b.spaces[s.Coord]; !exists {
		b.order = append(b.order, s.Coord)
	}
	b.spaces[s.Coord] = s
	b.valid[s.Coord] = valid
}

func (b *Board) space(op string, c goods.Coordinate) (*Space, error) {
	if !b.valid[c] {
		return nil, errdefs.OutOfRange(op, c)
	}
	return b.spaces[c], nil
}

// Location says which side of a move request this board handles
func (b *Board) Location() goods.Location { return b.location }

// Coordinates lists the valid spaces in board order
func (b *Board) Coordinates() []goods.Coordinate {
	coords := make([]goods.Coordinate, 0, len(b.order))
	for _, c := range b.order {
		if b.valid[c] {
			coords = append(coords, c)
		}
	}
	return coords
}

func (b *Board) IsValid(c goods.Coordinate) bool { return b.valid[c] }

// Space returns a copy of the space at c
func (b *Board) Space(c goods.Coordinate) (Space, error) {
	s, err := b.space("get_space", c)
	if err != nil {
		return Space{}, err
	}
	return *s, nil
}

func (b *Board) IsOccupied(c goods.Coordinate) (bool, error) {
	s, err := b.space("is_occupied", c)
	if err != nil {
		return false, err
	}
	return s.IsOccupied(), nil
}

func (b *Board) SpaceType(c goods.Coordinate) (SpaceType, error) {
	s, err := b.space("get_space_type", c)
	if err != nil {
		return "", err
	}
	return s.Type, nil
}

func (b *Board) GoodsType(c goods.Coordinate) (goods.Type, error) {
	s, err := b.space("get_goods_type", c)
	if err != nil {
		return goods.None, err
	}
	return s.Goods, nil
}

func (b *Board) NumGoodsPresent(c goods.Coordinate) (int, error) {
	s, err := b.space("get_num_goods_present", c)
	if err != nil {
		return 0, err
	}
	return s.NumPresent, nil
}

func (b *Board) IsAccumulate(c goods.Coordinate) (bool, error) {
	s, err := b.space("is_accumulate", c)
	if err != nil {
		return false, err
	}
	return s.Accumulate, nil
}

// Action returns the action identifier at c, empty for non-action spaces
func (b *Board) Action(c goods.Coordinate) (string, error) {
	s, err := b.space("get_action", c)
	if err != nil {
		return "", err
	}
	return s.Action, nil
}

func (b *Board) IsStabled(c goods.Coordinate) (bool, error) {
	s, err := b.space("is_stabled", c)
	if err != nil {
		return false, err
	}
	return s.Stabled, nil
}

func (b *Board) ChildPresent(c goods.Coordinate) (bool, error) {
	s, err := b.space("child_present", c)
	if err != nil {
		return false, err
	}
	return s.Child, nil
}

// Mover is implemented by every component that takes part in a transfer
type Mover interface {
	CheckMove(req goods.MoveRequest) error
	Move(req goods.MoveRequest) error
}

// Transfer validates req against every mover before applying it to any of them
func Transfer(req goods.MoveRequest, movers ...Mover) error {
	for _, m := range movers {
		if err := m.CheckMove(req); err != nil {
			return err
		}
	}
	for _, m := range movers {
		if err := m.Move(req); err != nil {
			return err
		}
	}
	return nil
}
