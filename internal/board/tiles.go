package board

import "github.com/minaorangina/agricola/errdefs"

const (
	WoodFieldTiles = 23
	ClayStoneTiles = 16
)

// Tiles is the shared stock of double sided room/field tiles. Taking a
// wood room also uses up a field and the other way round; clay and stone
// rooms share the second stack.
type Tiles struct {
	woodField int
	clayStone int
}

func NewTiles() *Tiles {
	return &Tiles{woodField: WoodFieldTiles, clayStone: ClayStoneTiles}
}

func (t *Tiles) pile(kind SpaceType) (*int, error) {
	switch kind {
	case WoodRoom, Field:
		return &t.woodField, nil
	case ClayRoom, StoneRoom:
		return &t.clayStone, nil
	}
	return nil, errdefs.Illegal("tiles", "no tiles for %s", kind)
}

// Available returns how many tiles of kind are left
func (t *Tiles) Available(kind SpaceType) int {
	p, err := t.pile(kind)
	if err != nil {
		return 0
	}
	return *p
}

// Check reports whether n tiles of kind can be taken
func (t *Tiles) Check(kind SpaceType, n int) error {
	p, err := t.pile(kind)
	if err != nil {
		return err
	}
	if *p < n {
		return errdefs.Illegal("take_tiles", "only %d %s tiles left", *p, kind)
	}
	return nil
}

func (t *Tiles) Take(kind SpaceType, n int) error {
	if err := t.Check(kind, n); err != nil {
		return err
	}
	p, _ := t.pile(kind)
	*p -= n
	return nil
}

// Return puts n tiles of kind back, e.g. the wood rooms replaced by a renovation
func (t *Tiles) Return(kind SpaceType, n int) error {
	p, err := t.pile(kind)
	if err != nil {
		return err
	}
	*p += n
	return nil
}

// Swap returns n tiles of from and takes n of to, as a renovation does.
// Kinds sharing a stack leave it unchanged.
func (t *Tiles) Swap(from, to SpaceType, n int) error {
	src, err := t.pile(from)
	if err != nil {
		return err
	}
	dest, err := t.pile(to)
	if err != nil {
		return err
	}
	if src == dest {
		return nil
	}
	if *dest < n {
		return errdefs.Illegal("swap_tiles", "only %d %s tiles left", *dest, to)
	}
	*dest -= n
	*src += n
	return nil
}
