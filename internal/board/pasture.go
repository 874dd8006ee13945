package board

import (
	"github.com/minaorangina/agricola/errdefs"
	"github.com/minaorangina/agricola/internal/goods"
)

// FenceKey names one perimeter segment. Vertical segment (r,c) is the left
// edge of space (r,c); horizontal segment (r,c) is its top edge.
type FenceKey struct {
	Axis  goods.Axis
	Coord goods.Coordinate
}

type segment struct {
	blocked bool
	fenced  bool
}

var blockedSegments = []FenceKey{
	{goods.Vertical, goods.Coordinate{Row: 1, Col: 0}},
	{goods.Vertical, goods.Coordinate{Row: 2, Col: 0}},
	{goods.Horizontal, goods.Coordinate{Row: 2, Col: 0}},
	{goods.Horizontal, goods.Coordinate{Row: 3, Col: 0}},
}

func (f *Farmyard) initFences() {
	for row := 0; row < Rows; row++ {
		for col := 0; col <= Cols; col++ {
			f.fences[FenceKey{goods.Vertical, goods.Coordinate{Row: row, Col: col}}] = &segment{}
		}
	}
	for row := 0; row <= Rows; row++ {
		for col := 0; col < Cols; col++ {
			f.fences[FenceKey{goods.Horizontal, goods.Coordinate{Row: row, Col: col}}] = &segment{}
		}
	}
	for _, key := range blockedSegments {
		f.fences[key].blocked = true
	}
}

// edges returns the four segments around space c: top, bottom, left, right
func edges(c goods.Coordinate) [4]FenceKey {
	return [4]FenceKey{
		{goods.Horizontal, c},
		{goods.Horizontal, goods.Coordinate{Row: c.Row + 1, Col: c.Col}},
		{goods.Vertical, c},
		{goods.Vertical, goods.Coordinate{Row: c.Row, Col: c.Col + 1}},
	}
}

// IsFenced reports whether a fence stands on the segment
func (f *Farmyard) IsFenced(key FenceKey) (bool, error) {
	s, ok := f.fences[key]
	if !ok {
		return false, errdefs.Illegal("is_fenced", "no %s segment at %s", key.Axis, key.Coord)
	}
	return s.fenced, nil
}

// IsBlocked reports whether the segment is taken up by the starting house
func (f *Farmyard) IsBlocked(key FenceKey) (bool, error) {
	s, ok := f.fences[key]
	if !ok {
		return false, errdefs.Illegal("is_blocked", "no %s segment at %s", key.Axis, key.Coord)
	}
	return s.blocked, nil
}

// NumFences counts the fences standing on the farmyard
func (f *Farmyard) NumFences() int {
	n := 0
	for _, s := range f.fences {
		if s.fenced {
			n++
		}
	}
	return n
}

// RequiredFences works out the fences needed to enclose coords as a new
// pasture. The spaces must be unused and orthogonally connected; segments
// already fenced are reused.
func (f *Farmyard) RequiredFences(coords []goods.Coordinate) ([]FenceKey, error) {
	const op = "build_pasture"

	if len(coords) == 0 {
		return nil, errdefs.Illegal(op, "a pasture needs at least one space")
	}

	inside := map[goods.Coordinate]bool{}
	for _, c := range coords {
		s, err := f.space(op, c)
		if err != nil {
			return nil, err
		}
		if s.Type != Unused {
			return nil, errdefs.Illegal(op, "space %s is %s, not unused", c, s.Type)
		}
		if inside[c] {
			return nil, errdefs.Illegal(op, "space %s listed twice", c)
		}
		inside[c] = true
	}

	if len(connected(coords[0], func(c goods.Coordinate) bool { return inside[c] })) != len(coords) {
		return nil, errdefs.Illegal(op, "pasture spaces must be connected")
	}

	required := []FenceKey{}
	seen := map[FenceKey]bool{}
	for _, c := range coords {
		neighbours := c.Neighbours()
		// neighbours and edges share the order up, down, left, right
		for i, key := range edges(c) {
			if inside[neighbours[i]] || seen[key] {
				continue
			}
			seen[key] = true
			seg := f.fences[key]
			if seg.blocked {
				return nil, errdefs.Illegal(op, "%s segment %s is blocked", key.Axis, key.Coord)
			}
			if !seg.fenced {
				required = append(required, key)
			}
		}
	}
	return required, nil
}

// BuildPasture fences in coords and turns them into pasture. The caller
// has already taken the fences in keys out of the player's inventory.
func (f *Farmyard) BuildPasture(coords []goods.Coordinate, keys []FenceKey) error {
	required, err := f.RequiredFences(coords)
	if err != nil {
		return err
	}
	if len(required) != len(keys) {
		return errdefs.Illegal("build_pasture", "pasture needs %d fences, got %d", len(required), len(keys))
	}
	for _, key := range required {
		f.fences[key].fenced = true
	}
	for _, c := range coords {
		f.spaces[c].Type = Pasture
	}
	return nil
}

// connected flood fills from start across orthogonal neighbours accepted by in
func connected(start goods.Coordinate, in func(goods.Coordinate) bool) []goods.Coordinate {
	seen := map[goods.Coordinate]bool{start: true}
	queue := []goods.Coordinate{start}
	region := []goods.Coordinate{}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		region = append(region, c)
		for _, n := range c.Neighbours() {
			if !seen[n] && in(n) {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return region
}

// fencedBetween reports whether a fence separates two adjacent spaces
func (f *Farmyard) fencedBetween(a, b goods.Coordinate) bool {
	neighbours := a.Neighbours()
	for i, key := range edges(a) {
		if neighbours[i] == b {
			return f.fences[key].fenced
		}
	}
	return false
}

// PastureRegion returns the pasture containing c: every pasture space
// reachable from c without crossing a fence
func (f *Farmyard) PastureRegion(c goods.Coordinate) []goods.Coordinate {
	s, ok := f.spaces[c]
	if !ok || s.Type != Pasture {
		return nil
	}

	seen := map[goods.Coordinate]bool{c: true}
	queue := []goods.Coordinate{c}
	region := []goods.Coordinate{}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		region = append(region, cur)
		for _, n := range cur.Neighbours() {
			ns, ok := f.spaces[n]
			if !ok || seen[n] || ns.Type != Pasture || f.fencedBetween(cur, n) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return region
}

// Pastures lists every distinct pasture
func (f *Farmyard) Pastures() [][]goods.Coordinate {
	seen := map[goods.Coordinate]bool{}
	pastures := [][]goods.Coordinate{}
	for _, c := range f.order {
		if seen[c] || f.spaces[c].Type != Pasture {
			continue
		}
		region := f.PastureRegion(c)
		for _, rc := range region {
			seen[rc] = true
		}
		pastures = append(pastures, region)
	}
	return pastures
}

// PastureCapacity is 2 animals per space, doubled for every stable in the pasture
func (f *Farmyard) PastureCapacity(c goods.Coordinate) (int, error) {
	region := f.PastureRegion(c)
	if region == nil {
		return 0, errdefs.Illegal("pasture_capacity", "%s is not a pasture", c)
	}
	return f.regionCapacity(region), nil
}

// PastureAnimals returns how many animals of which type the pasture holds
func (f *Farmyard) PastureAnimals(c goods.Coordinate) (int, goods.Type, error) {
	region := f.PastureRegion(c)
	if region == nil {
		return 0, goods.None, errdefs.Illegal("pasture_animals", "%s is not a pasture", c)
	}
	n, t := f.regionAnimals(region)
	return n, t, nil
}

func (f *Farmyard) regionCapacity(region []goods.Coordinate) int {
	capacity := 2 * len(region)
	for _, c := range region {
		if f.spaces[c].Stabled {
			capacity *= 2
		}
	}
	return capacity
}

func (f *Farmyard) regionAnimals(region []goods.Coordinate) (int, goods.Type) {
	n := 0
	kind := goods.None
	for _, c := range region {
		s := f.spaces[c]
		if s.NumPresent > 0 {
			n += s.NumPresent
			kind = s.Goods
		}
	}
	return n, kind
}

// Breed adds one animal of t to the pasture at c. It is the only way
// animals appear on a farmyard without coming from an action space.
func (f *Farmyard) Breed(c goods.Coordinate, t goods.Type) error {
	const op = "breed"

	region := f.PastureRegion(c)
	if region == nil {
		return errdefs.Illegal(op, "%s is not a pasture", c)
	}
	held, kind := f.regionAnimals(region)
	if held > 0 && kind != t {
		return errdefs.Illegal(op, "pasture at %s holds %s", c, kind)
	}
	if held+1 > f.regionCapacity(region) {
		return errdefs.Illegal(op, "pasture at %s is full", c)
	}
	f.spaces[c].addGoods(t, 1)
	return nil
}

// Cull removes n animals from space c
func (f *Farmyard) Cull(c goods.Coordinate, t goods.Type, n int) error {
	s, err := f.space("cull", c)
	if err != nil {
		return err
	}
	if s.Goods != t || s.NumPresent < n {
		return errdefs.Illegal("cull", "%s holds %d %s, cannot remove %d", c, s.NumPresent, s.Goods, n)
	}
	s.removeGoods(n)
	return nil
}
