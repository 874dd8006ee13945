package goods

import (
	"github.com/minaorangina/agricola/errdefs"
)

const (
	NumFences  = 15
	NumStables = 4
	NumWorkers = 5
)

// Supply is one player's complete ledger of goods. Limited goods (fences,
// stables, workers) are created once and only ever relocated. General goods
// are created and removed as the game hands them out and takes them back.
type Supply struct {
	limited []Good
	general []Good
}

// NewSupply builds a ledger with every limited good in inventory and the given starting food
func NewSupply(food int) *Supply {
	s := &Supply{
		limited: make([]Good, 0, NumFences+NumStables+NumWorkers),
		general: []Good{},
	}
	for i := 0; i < NumFences; i++ {
		s.limited = append(s.limited, inventoryGood(Fence))
	}
	for i := 0; i < NumStables; i++ {
		s.limited = append(s.limited, inventoryGood(Stable))
	}
	for i := 0; i < NumWorkers; i++ {
		s.limited = append(s.limited, inventoryGood(Worker))
	}
	for i := 0; i < food; i++ {
		s.general = append(s.general, inventoryGood(Food))
	}
	return s
}

// StartingFood is 0 in solo games, 2 for the starting player and 3 for everyone else
func StartingFood(numPlayers int, starting bool) int {
	switch {
	case numPlayers == 1:
		return 0
	case starting:
		return 2
	default:
		return 3
	}
}

func (s *Supply) store(t Type) []Good {
	if t.IsLimited() {
		return s.limited
	}
	return s.general
}

// Count returns the units of t across every location
func (s *Supply) Count(t Type) int {
	n := 0
	for _, g := range s.store(t) {
		if g.Type == t {
			n++
		}
	}
	return n
}

// CountAt returns the units of t at one location and coordinate
func (s *Supply) CountAt(t Type, loc Location, c Coordinate) int {
	n := 0
	for _, g := range s.store(t) {
		if g.Type == t && g.Location == loc && g.Coord == c {
			n++
		}
	}
	return n
}

// CountIn returns the units of t at a location, any coordinate
func (s *Supply) CountIn(t Type, loc Location) int {
	n := 0
	for _, g := range s.store(t) {
		if g.Type == t && g.Location == loc {
			n++
		}
	}
	return n
}

// Find returns a copy of every good of type t
func (s *Supply) Find(t Type) []Good {
	found := []Good{}
	for _, g := range s.store(t) {
		if g.Type == t {
			found = append(found, g)
		}
	}
	return found
}

func (s *Supply) Workers() []Good { return s.Find(Worker) }
func (s *Supply) Fences() []Good  { return s.Find(Fence) }

// WorkersAt counts the workers standing at one location and coordinate
func (s *Supply) WorkersAt(loc Location, c Coordinate) int {
	return s.CountAt(Worker, loc, c)
}

// Limited returns a copy of the fences, stables and workers
func (s *Supply) Limited() []Good {
	return append([]Good{}, s.limited...)
}

// General returns a copy of every general good
func (s *Supply) General() []Good {
	return append([]Good{}, s.general...)
}

func (s *Supply) indexAt(t Type, loc Location, c Coordinate) int {
	store := s.store(t)
	for i := range store {
		if store[i].Type == t && store[i].Location == loc && store[i].Coord == c {
			return i
		}
	}
	return -1
}

// CheckMove validates req against the ledger without changing it
func (s *Supply) CheckMove(req MoveRequest) error {
	const op = "supply_move"

	if err := CheckPath(req); err != nil {
		return err
	}

	if req.Type.IsLimited() {
		if s.indexAt(req.Type, req.Src, req.SrcCoord) < 0 {
			return errdefs.Illegal(op, "no %s at %s %s", req.Type, req.Src, req.SrcCoord)
		}
		return nil
	}

	switch {
	case req.Dest == Inventory:
		// units are created, the board decrements its own count
		return nil
	case req.Src == Inventory:
		if have := s.CountAt(req.Type, Inventory, InventoryCoord); have < req.Qty {
			return errdefs.Illegal(op, "need %d %s in inventory, have %d", req.Qty, req.Type, have)
		}
	case req.Src == Farmyard:
		if have := s.CountAt(req.Type, Farmyard, req.SrcCoord); have < req.Qty {
			return errdefs.Illegal(op, "need %d %s at %s, have %d", req.Qty, req.Type, req.SrcCoord, have)
		}
	}
	return nil
}

// Move applies req to the ledger after checking it
func (s *Supply) Move(req MoveRequest) error {
	if err := s.CheckMove(req); err != nil {
		return err
	}

	if req.Type.IsLimited() {
		i := s.indexAt(req.Type, req.Src, req.SrcCoord)
		s.limited[i].Location = req.Dest
		s.limited[i].Coord = req.DestCoord
		return nil
	}

	for n := 0; n < req.Qty; n++ {
		switch req.Src {
		case ActionSpace:
			s.general = append(s.general, Good{Type: req.Type, Location: req.Dest, Coord: req.DestCoord})
		case Farmyard, Inventory:
			if req.Dest == Inventory {
				s.general = append(s.general, inventoryGood(req.Type))
				continue
			}
			i := s.indexAt(req.Type, req.Src, req.SrcCoord)
			if req.Src == Inventory {
				// crops planted in a field belong to the farmyard's count
				s.removeGeneral(i)
				continue
			}
			s.general[i].Location = req.Dest
			s.general[i].Coord = req.DestCoord
		}
	}
	return nil
}

// PlaceFence moves one inventory fence onto a farmyard segment
func (s *Supply) PlaceFence(c Coordinate, axis Axis) error {
	if axis != Vertical && axis != Horizontal {
		return errdefs.Illegal("place_fence", "fence needs an axis")
	}
	i := s.indexAt(Fence, Inventory, InventoryCoord)
	if i < 0 {
		return errdefs.Illegal("place_fence", "no fences left")
	}
	s.limited[i].Location = Farmyard
	s.limited[i].Coord = c
	s.limited[i].Axis = axis
	return nil
}

// CanAfford reports whether every line item of cost is covered by inventory
func (s *Supply) CanAfford(cost Cost) bool {
	for t, qty := range cost.Totals() {
		if s.CountAt(t, Inventory, InventoryCoord) < qty {
			return false
		}
	}
	return true
}

// Pay removes cost from inventory. Nothing is removed unless all of it can be.
func (s *Supply) Pay(cost Cost) error {
	for t, qty := range cost.Totals() {
		if t.IsLimited() {
			return errdefs.Illegal("pay", "%s cannot be spent", t)
		}
		if have := s.CountAt(t, Inventory, InventoryCoord); have < qty {
			return errdefs.Illegal("pay", "need %d %s, have %d", qty, t, have)
		}
	}
	for _, item := range cost {
		s.remove(item.Type, item.Qty, Inventory, InventoryCoord)
	}
	return nil
}

// Add creates n inventory units of a general good
func (s *Supply) Add(t Type, n int) error {
	return s.AddAt(t, n, Inventory, InventoryCoord)
}

// AddAt creates n units of a general good at a location, e.g. a newborn animal in a pasture
func (s *Supply) AddAt(t Type, n int, loc Location, c Coordinate) error {
	if t.IsLimited() || t == None {
		return errdefs.Illegal("add", "%q cannot be created", t)
	}
	if n < 0 {
		return errdefs.Illegal("add", "negative quantity %d", n)
	}
	for i := 0; i < n; i++ {
		s.general = append(s.general, Good{Type: t, Location: loc, Coord: c})
	}
	return nil
}

// Remove destroys n inventory units of a general good
func (s *Supply) Remove(t Type, n int) error {
	return s.RemoveAt(t, n, Inventory, InventoryCoord)
}

// RemoveAt destroys n units of a general good at a location
func (s *Supply) RemoveAt(t Type, n int, loc Location, c Coordinate) error {
	if t.IsLimited() {
		return errdefs.Illegal("remove", "%s cannot be destroyed", t)
	}
	if have := s.CountAt(t, loc, c); have < n {
		return errdefs.Illegal("remove", "need %d %s at %s, have %d", n, t, loc, have)
	}
	s.remove(t, n, loc, c)
	return nil
}

func (s *Supply) remove(t Type, n int, loc Location, c Coordinate) {
	for ; n > 0; n-- {
		s.removeGeneral(s.indexAt(t, loc, c))
	}
}

func (s *Supply) removeGeneral(i int) {
	s.general = append(s.general[:i], s.general[i+1:]...)
}
