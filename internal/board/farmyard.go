package board

import (
	"github.com/minaorangina/agricola/errdefs"
	"github.com/minaorangina/agricola/internal/goods"
)

const (
	Rows = 3
	Cols = 5
)

// a planted crop grows into this many units
var cropYield = map[goods.Type]int{
	goods.Grain:     3,
	goods.Vegetable: 2,
}

var startingRooms = []goods.Coordinate{{Row: 1, Col: 0}, {Row: 2, Col: 0}}

// Farmyard is a player's 3x5 board plus its fence segments
type Farmyard struct {
	Board
	fences map[FenceKey]*segment
}

func NewFarmyard() *Farmyard {
	f := &Farmyard{
		Board:  newBoard(goods.Farmyard),
		fences: map[FenceKey]*segment{},
	}

	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			c := goods.Coordinate{Row: row, Col: col}
			f.addSpace(&Space{Coord: c, Type: Unused}, true)
		}
	}
	for _, c := range startingRooms {
		f.spaces[c].Type = WoodRoom
	}

	f.initFences()
	return f
}

// CropYield is the number of units one planted crop of t grows into
func CropYield(t goods.Type) int {
	return cropYield[t]
}

// Rooms lists the coordinates of every room in board order
func (f *Farmyard) Rooms() []goods.Coordinate {
	return f.spacesOfKind(func(s *Space) bool { return s.Type.IsRoom() })
}

func (f *Farmyard) Fields() []goods.Coordinate {
	return f.spacesOfKind(func(s *Space) bool { return s.Type == Field })
}

func (f *Farmyard) spacesOfKind(match func(*Space) bool) []goods.Coordinate {
	coords := []goods.Coordinate{}
	for _, c := range f.order {
		if match(f.spaces[c]) {
			coords = append(coords, c)
		}
	}
	return coords
}

// CountSpaces counts spaces of the given kind
func (f *Farmyard) CountSpaces(kind SpaceType) int {
	return len(f.spacesOfKind(func(s *Space) bool { return s.Type == kind }))
}

// HouseType is the room material the house is currently built from
func (f *Farmyard) HouseType() SpaceType {
	for _, c := range f.order {
		if t := f.spaces[c].Type; t.IsRoom() {
			return t
		}
	}
	return WoodRoom
}

// OpenRoom picks a room for a returning worker: an empty one if there is
// one, otherwise the least crowded
func (f *Farmyard) OpenRoom() (goods.Coordinate, error) {
	best := goods.InventoryCoord
	for _, c := range f.Rooms() {
		if best.IsInventory() || f.spaces[c].Occupants < f.spaces[best].Occupants {
			best = c
		}
	}
	if best.IsInventory() {
		return best, errdefs.Illegal("get_open_room", "farmyard has no rooms")
	}
	return best, nil
}

// CheckSpaceChangeValidity says whether c may be turned into kind.
// Rooms grow out of an orthogonally adjacent room of the same material;
// fields must be unused and, once the first field exists, touch another field.
func (f *Farmyard) CheckSpaceChangeValidity(kind SpaceType, c goods.Coordinate) error {
	const op = "change_space_type"

	s, err := f.space(op, c)
	if err != nil {
		return err
	}
	if s.Type != Unused {
		return errdefs.Illegal(op, "space %s is %s, not unused", c, s.Type)
	}

	switch {
	case kind.IsRoom():
		if s.Stabled {
			return errdefs.Illegal(op, "space %s holds a stable", c)
		}
		if !f.hasNeighbour(c, kind) {
			return errdefs.Illegal(op, "space %s is not adjacent to a %s", c, kind)
		}
	case kind == Field:
		if s.Stabled || s.NumPresent > 0 {
			return errdefs.Illegal(op, "space %s is in use", c)
		}
		if f.CountSpaces(Field) > 0 && !f.hasNeighbour(c, Field) {
			return errdefs.Illegal(op, "space %s is not adjacent to a field", c)
		}
	default:
		return errdefs.Illegal(op, "cannot change a space into %s", kind)
	}
	return nil
}

// ChangeSpaceType turns c into kind once the change is known to be valid
func (f *Farmyard) ChangeSpaceType(kind SpaceType, c goods.Coordinate) error {
	if err := f.CheckSpaceChangeValidity(kind, c); err != nil {
		return err
	}
	f.spaces[c].Type = kind
	return nil
}

func (f *Farmyard) hasNeighbour(c goods.Coordinate, kind SpaceType) bool {
	for _, n := range c.Neighbours() {
		if s, ok := f.spaces[n]; ok && f.valid[n] && s.Type == kind {
			return true
		}
	}
	return false
}

// NextHouseType is the material a renovation moves the house to
func NextHouseType(current SpaceType) (SpaceType, bool) {
	switch current {
	case WoodRoom:
		return ClayRoom, true
	case ClayRoom:
		return StoneRoom, true
	}
	return "", false
}

// Renovate rebuilds every room in the next material
func (f *Farmyard) Renovate() (SpaceType, error) {
	next, ok := NextHouseType(f.HouseType())
	if !ok {
		return "", errdefs.Illegal("renovate", "a %s house cannot be renovated", f.HouseType())
	}
	for _, c := range f.Rooms() {
		f.spaces[c].Type = next
	}
	return next, nil
}

// CheckMove validates the farmyard side of req
func (f *Farmyard) CheckMove(req goods.MoveRequest) error {
	if err := goods.CheckPath(req); err != nil {
		return err
	}
	if req.Src != goods.Farmyard && req.Dest != goods.Farmyard {
		return nil
	}

	switch {
	case req.Type == goods.Worker:
		return f.checkWorker(req)
	case req.Type == goods.Stable:
		return f.checkStable(req)
	case req.Type.IsAnimal():
		return f.checkAnimals(req)
	case req.Type.IsCrop():
		return f.checkCrop(req)
	}
	return nil
}

// Move applies the farmyard side of req after checking it
func (f *Farmyard) Move(req goods.MoveRequest) error {
	if err := f.CheckMove(req); err != nil {
		return err
	}

	var src, dest *Space
	if req.Src == goods.Farmyard {
		src = f.spaces[req.SrcCoord]
	}
	if req.Dest == goods.Farmyard {
		dest = f.spaces[req.DestCoord]
	}

	switch {
	case req.Type == goods.Worker:
		if src != nil {
			src.Occupants--
		}
		if dest != nil {
			dest.Occupants++
		}
	case req.Type == goods.Stable:
		dest.Stabled = true
	case req.Type.IsAnimal():
		if src != nil {
			src.removeGoods(req.Qty)
		}
		dest.addGoods(req.Type, req.Qty)
	case req.Type.IsCrop():
		if src != nil {
			src.removeGoods(req.Qty)
		}
		if dest != nil {
			dest.addGoods(req.Type, CropYield(req.Type))
		}
	}
	return nil
}

func (f *Farmyard) checkWorker(req goods.MoveRequest) error {
	const op = "farmyard_move"

	if req.Src == goods.Farmyard {
		s, err := f.space(op, req.SrcCoord)
		if err != nil {
			return err
		}
		if !s.Type.IsRoom() || s.Occupants == 0 {
			return errdefs.Illegal(op, "no worker at %s", req.SrcCoord)
		}
	}
	if req.Dest == goods.Farmyard {
		s, err := f.space(op, req.DestCoord)
		if err != nil {
			return err
		}
		if !s.Type.IsRoom() {
			return errdefs.Illegal(op, "workers live in rooms, %s is %s", req.DestCoord, s.Type)
		}
	}
	return nil
}

func (f *Farmyard) checkStable(req goods.MoveRequest) error {
	const op = "farmyard_move"

	s, err := f.space(op, req.DestCoord)
	if err != nil {
		return err
	}
	if s.Type != Unused && s.Type != Pasture {
		return errdefs.Illegal(op, "stables need an unused space or pasture, %s is %s", req.DestCoord, s.Type)
	}
	if s.Stabled {
		return errdefs.Illegal(op, "space %s already has a stable", req.DestCoord)
	}
	return nil
}

func (f *Farmyard) checkCrop(req goods.MoveRequest) error {
	const op = "farmyard_move"

	if req.Qty != 1 {
		return errdefs.Illegal(op, "crops move one at a time")
	}
	if req.Dest == goods.Farmyard {
		s, err := f.space(op, req.DestCoord)
		if err != nil {
			return err
		}
		if s.Type != Field || s.NumPresent > 0 {
			return errdefs.Illegal(op, "%s is not an empty field", req.DestCoord)
		}
	}
	if req.Src == goods.Farmyard {
		s, err := f.space(op, req.SrcCoord)
		if err != nil {
			return err
		}
		if s.Type != Field || s.Goods != req.Type || s.NumPresent < 1 {
			return errdefs.Illegal(op, "no %s growing at %s", req.Type, req.SrcCoord)
		}
	}
	return nil
}

type animalHome int

const (
	homeNone animalHome = iota
	homeRoom
	homeStable
	homePasture
)

func homeOf(s *Space) animalHome {
	switch {
	case s.Type.IsRoom():
		return homeRoom
	case s.Type == Unused && s.Stabled:
		return homeStable
	case s.Type == Pasture:
		return homePasture
	}
	return homeNone
}

// farmyard to farmyard animal moves allowed by where they come from and go to
var animalShuffles = map[[2]animalHome]bool{
	{homeRoom, homePasture}:   true,
	{homeStable, homePasture}: true,
	{homeRoom, homeStable}:    true,
	{homePasture, homeStable}: true,
	{homeStable, homeRoom}:    true,
	{homePasture, homeRoom}:   true,
}

func (f *Farmyard) checkAnimals(req goods.MoveRequest) error {
	const op = "farmyard_move"

	dest, err := f.space(op, req.DestCoord)
	if err != nil {
		return err
	}
	destHome := homeOf(dest)

	if req.Src == goods.Farmyard {
		src, err := f.space(op, req.SrcCoord)
		if err != nil {
			return err
		}
		if src.Goods != req.Type || src.NumPresent < req.Qty {
			return errdefs.Illegal(op, "%s holds %d %s, cannot take %d", req.SrcCoord, src.NumPresent, req.Type, req.Qty)
		}
		if !animalShuffles[[2]animalHome{homeOf(src), destHome}] {
			return errdefs.Illegal(op, "animals cannot move from %s to %s", src.Type, dest.Type)
		}
		if req.Qty > 1 {
			return errdefs.Illegal(op, "animals move between spaces one at a time")
		}
	}

	switch destHome {
	case homeRoom, homeStable:
		if req.Qty != 1 || dest.NumPresent > 0 {
			return errdefs.Illegal(op, "%s holds exactly one animal", req.DestCoord)
		}
	case homePasture:
		region := f.PastureRegion(req.DestCoord)
		held, kind := f.regionAnimals(region)
		if held > 0 && kind != req.Type {
			return errdefs.Illegal(op, "pasture at %s holds %s", req.DestCoord, kind)
		}
		if capacity := f.regionCapacity(region); held+req.Qty > capacity {
			return errdefs.Illegal(op, "pasture at %s holds %d of %d, cannot add %d", req.DestCoord, held, capacity, req.Qty)
		}
	default:
		return errdefs.Illegal(op, "animals cannot live on %s at %s", dest.Type, req.DestCoord)
	}
	return nil
}
