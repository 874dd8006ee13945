package goods

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minaorangina/agricola/errdefs"
)

// Item is one line of a cost or output schedule
type Item struct {
	Qty  int
	Type Type
}

// Cost is an ordered list of line items
type Cost []Item

// ParseCost reads "5 wood, 2 reed". The empty string is the empty cost.
func ParseCost(s string) (Cost, error) {
	cost := Cost{}
	if strings.TrimSpace(s) == "" {
		return cost, nil
	}

	for _, part := range strings.Split(s, ",") {
		fields := strings.Fields(part)
		if len(fields) != 2 {
			return nil, errdefs.Illegal("parse_cost", "malformed line item %q", part)
		}
		qty, err := strconv.Atoi(fields[0])
		if err != nil || qty < 0 {
			return nil, errdefs.Illegal("parse_cost", "malformed quantity in %q", part)
		}
		t, err := ParseType(fields[1])
		if err != nil {
			return nil, err
		}
		cost = append(cost, Item{Qty: qty, Type: t})
	}

	return cost, nil
}

func MustParseCost(s string) Cost {
	c, err := ParseCost(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Cost) String() string {
	parts := make([]string, 0, len(c))
	for _, item := range c {
		parts = append(parts, fmt.Sprintf("%d %s", item.Qty, item.Type))
	}
	return strings.Join(parts, ", ")
}

// Totals sums quantities per type
func (c Cost) Totals() map[Type]int {
	totals := map[Type]int{}
	for _, item := range c {
		totals[item.Type] += item.Qty
	}
	return totals
}

// Times repeats every line item n times over
func (c Cost) Times(n int) Cost {
	scaled := make(Cost, 0, len(c))
	for _, item := range c {
		scaled = append(scaled, Item{Qty: item.Qty * n, Type: item.Type})
	}
	return scaled
}

func (c Cost) Plus(other Cost) Cost {
	sum := make(Cost, 0, len(c)+len(other))
	sum = append(sum, c...)
	return append(sum, other...)
}

func (c Cost) IsZero() bool {
	for _, item := range c {
		if item.Qty > 0 {
			return false
		}
	}
	return true
}
