package goods

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minaorangina/agricola/errdefs"
)

// Type tags a unit of resource
type Type string

const (
	None      Type = ""
	Sheep     Type = "sheep"
	Boar      Type = "boar"
	Cattle    Type = "cattle"
	Wood      Type = "wood"
	Clay      Type = "clay"
	Reed      Type = "reed"
	Stone     Type = "stone"
	Grain     Type = "grain"
	Vegetable Type = "vegetable"
	Food      Type = "food"
	Fence     Type = "fence"
	Stable    Type = "stable"
	Worker    Type = "person"
)

var Types = []Type{Sheep, Boar, Cattle, Wood, Clay, Reed, Stone, Grain, Vegetable, Food, Fence, Stable, Worker}

func ParseType(s string) (Type, error) {
	for _, t := range Types {
		if string(t) == s {
			return t, nil
		}
	}
	return None, errdefs.Illegal("parse_goods_type", "unknown goods type %q", s)
}

func (t Type) IsAnimal() bool   { return t == Sheep || t == Boar || t == Cattle }
func (t Type) IsMaterial() bool { return t == Wood || t == Clay || t == Reed || t == Stone }
func (t Type) IsCrop() bool     { return t == Grain || t == Vegetable }

// IsLimited reports whether the type has a fixed per-player total
func (t Type) IsLimited() bool { return t == Fence || t == Stable || t == Worker }

// Location tags where a good currently is
type Location string

const (
	Farmyard    Location = "farmyard"
	ActionSpace Location = "action_space"
	Inventory   Location = "inventory"
)

func ParseLocation(s string) (Location, error) {
	switch l := Location(s); l {
	case Farmyard, ActionSpace, Inventory:
		return l, nil
	}
	return "", errdefs.Illegal("parse_location", "unknown location %q", s)
}

// Axis tags a fence segment as vertical or horizontal
type Axis string

const (
	NoAxis     Axis = ""
	Vertical   Axis = "v"
	Horizontal Axis = "h"
)

// Coordinate is a (row, col) pair. InventoryCoord stands for "no board location".
type Coordinate struct {
	Row int
	Col int
}

var InventoryCoord = Coordinate{Row: -1, Col: -1}

func (c Coordinate) IsInventory() bool { return c == InventoryCoord }

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Neighbours returns the four orthogonal neighbours, up, down, left, right
func (c Coordinate) Neighbours() [4]Coordinate {
	return [4]Coordinate{
		{c.Row - 1, c.Col},
		{c.Row + 1, c.Col},
		{c.Row, c.Col - 1},
		{c.Row, c.Col + 1},
	}
}

// ParseCoordinate accepts "(r,c)", "r,c" and the same with spaces
func ParseCoordinate(s string) (Coordinate, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")

	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return Coordinate{}, errdefs.Illegal("parse_coordinate", "malformed coordinate %q", s)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Coordinate{}, errdefs.Illegal("parse_coordinate", "malformed row in %q", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Coordinate{}, errdefs.Illegal("parse_coordinate", "malformed column in %q", s)
	}

	c := Coordinate{Row: row, Col: col}
	if (row < 0 || col < 0) && !c.IsInventory() {
		return Coordinate{}, errdefs.Illegal("parse_coordinate", "negative coordinate %q", s)
	}
	return c, nil
}

// Good is a single unit owned by a player
type Good struct {
	Type     Type
	Location Location
	Coord    Coordinate
	Axis     Axis
}

func inventoryGood(t Type) Good {
	return Good{Type: t, Location: Inventory, Coord: InventoryCoord}
}
