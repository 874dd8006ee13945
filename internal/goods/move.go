package goods

import "github.com/minaorangina/agricola/errdefs"

// MoveRequest bundles one transfer between boards and inventory
type MoveRequest struct {
	Type      Type
	Qty       int
	Dest      Location
	DestCoord Coordinate
	Src       Location
	SrcCoord  Coordinate
}

func NewMoveRequest(t Type, qty int, dest Location, destCoord Coordinate, src Location, srcCoord Coordinate) MoveRequest {
	return MoveRequest{
		Type:      t,
		Qty:       qty,
		Dest:      dest,
		DestCoord: destCoord,
		Src:       src,
		SrcCoord:  srcCoord,
	}
}

type path struct {
	src  Location
	dest Location
}

var (
	workerPaths = map[path]bool{
		{Inventory, Farmyard}:    true,
		{Inventory, ActionSpace}: true,
		{Farmyard, ActionSpace}:  true,
		{ActionSpace, Farmyard}:  true,
	}
	stablePaths   = map[path]bool{{Inventory, Farmyard}: true}
	animalPaths   = map[path]bool{{ActionSpace, Farmyard}: true, {Farmyard, Farmyard}: true}
	materialPaths = map[path]bool{{ActionSpace, Inventory}: true}
	cropPaths     = map[path]bool{{Inventory, Farmyard}: true, {Farmyard, Inventory}: true}
	foodPaths     = map[path]bool{{ActionSpace, Inventory}: true}
)

// CheckPath validates the shape of a request: goods type against the
// source/destination pair, quantities and coordinate sentinels.
// Every ledger and board runs it before looking at its own side.
func CheckPath(req MoveRequest) error {
	const op = "move"

	if req.Type == Fence {
		return errdefs.Illegal(op, "fences are placed with an axis, not moved")
	}
	if req.Qty < 1 {
		return errdefs.Illegal(op, "quantity must be positive, got %d", req.Qty)
	}
	if req.Type.IsLimited() && req.Qty != 1 {
		return errdefs.Illegal(op, "%s moves one at a time", req.Type)
	}
	if (req.Src == Inventory) != req.SrcCoord.IsInventory() {
		return errdefs.Illegal(op, "source %s does not match coordinate %s", req.Src, req.SrcCoord)
	}
	if (req.Dest == Inventory) != req.DestCoord.IsInventory() {
		return errdefs.Illegal(op, "destination %s does not match coordinate %s", req.Dest, req.DestCoord)
	}

	var allowed map[path]bool
	switch {
	case req.Type == Worker:
		allowed = workerPaths
	case req.Type == Stable:
		allowed = stablePaths
	case req.Type.IsAnimal():
		allowed = animalPaths
	case req.Type.IsMaterial():
		allowed = materialPaths
	case req.Type.IsCrop():
		allowed = cropPaths
	case req.Type == Food:
		allowed = foodPaths
	default:
		return errdefs.Illegal(op, "unknown goods type %q", req.Type)
	}

	if !allowed[path{req.Src, req.Dest}] {
		return errdefs.Illegal(op, "%s cannot move from %s to %s", req.Type, req.Src, req.Dest)
	}
	return nil
}
