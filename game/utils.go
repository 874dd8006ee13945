package game

import (
	"strconv"

	"github.com/minaorangina/agricola/errdefs"
	"github.com/minaorangina/agricola/internal/goods"
)

func parseCoordinate(op, s string) (goods.Coordinate, error) {
	c, err := goods.ParseCoordinate(s)
	if err != nil {
		return goods.InventoryCoord, errdefs.Illegal(op, "bad coordinate %q", s)
	}
	return c, nil
}

func parseCoordinates(op string, args []string) ([]goods.Coordinate, error) {
	coords := make([]goods.Coordinate, 0, len(args))
	for _, arg := range args {
		c, err := parseCoordinate(op, arg)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	return coords, nil
}

// parseCount reads a positive quantity
func parseCount(op, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, errdefs.Illegal(op, "expected a positive count, got %q", s)
	}
	return n, nil
}

// workerCounts lists the workers each seat has at home, in seat order
func workerCounts(players []*Player) []int {
	counts := make([]int, 0, len(players))
	for _, p := range players {
		counts = append(counts, p.WorkersHome())
	}
	return counts
}
