// Package data loads the action and card tables the engine reads its costs,
// outputs and effect identifiers from. The tables ship embedded in the
// binary and are checked against a JSON schema before they are decoded.
package data

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/minaorangina/agricola/internal/goods"
	"gopkg.in/yaml.v3"
)

const (
	ActionsFile           = "actions.yaml"
	MajorImprovementsFile = "major_improvements.yaml"
	MinorImprovementsFile = "minor_improvements.yaml"
	OccupationsFile       = "occupations.yaml"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownCard   = errors.New("unknown card")
	ErrUnknownEffect = errors.New("unknown effect")
)

//go:embed tables/*.yaml
var tables embed.FS

// Action is one row of the action table
type Action struct {
	Key        string
	Stage      int
	Effect     string
	Accumulate bool
	Goods      goods.Type
	Rate       int
	Output     goods.Cost
	Costs      map[string]goods.Cost
}

// Placement fixes a permanent action to an action board coordinate
type Placement struct {
	Action string
	Coord  goods.Coordinate
}

// Layout says where actions sit on the action board
type Layout struct {
	Base        []Placement
	ThreePlayer []Placement
	FourPlayer  []Placement
	Stages      map[int][]goods.Coordinate
}

// Future schedules goods for the rounds after a card is played
type Future struct {
	Goods  goods.Type
	Qty    int
	Rounds int
}

// Card is one row of a card table
type Card struct {
	Key        string
	Costs      []goods.Cost
	Effect     string
	Points     int
	PassLeft   bool
	MinPlayers int
	Output     goods.Cost
	Cook       map[goods.Type]int
	Bake       map[goods.Type]int
	BakeLimit  int
	Exchange   map[goods.Type]int
	Future     *Future
}

// Tables is everything the engine consumes from the data layer
type Tables struct {
	Actions           map[string]Action
	Layout            Layout
	MajorImprovements []Card
	MinorImprovements []Card
	Occupations       []Card
}

type actionRow struct {
	Key        string            `yaml:"key"`
	Stage      int               `yaml:"stage"`
	Effect     string            `yaml:"effect"`
	Accumulate bool              `yaml:"accumulate"`
	Goods      string            `yaml:"goods"`
	Rate       int               `yaml:"rate"`
	Output     string            `yaml:"output"`
	Costs      map[string]string `yaml:"costs"`
}

type placementRow struct {
	Action string `yaml:"action"`
	At     []int  `yaml:"at"`
}

type stageRow struct {
	Stage int     `yaml:"stage"`
	At    [][]int `yaml:"at"`
}

type actionsFile struct {
	Actions []actionRow `yaml:"actions"`
	Layout  struct {
		Base         []placementRow `yaml:"base"`
		ThreePlayers []placementRow `yaml:"three_players"`
		FourPlayers  []placementRow `yaml:"four_players"`
		Stages       []stageRow     `yaml:"stages"`
	} `yaml:"layout"`
}

type futureRow struct {
	Goods  string `yaml:"goods"`
	Qty    int    `yaml:"qty"`
	Rounds int    `yaml:"rounds"`
}

type cardRow struct {
	Key        string         `yaml:"key"`
	Cost       []string       `yaml:"cost"`
	Effect     string         `yaml:"effect"`
	Points     int            `yaml:"points"`
	PassLeft   bool           `yaml:"pass_left"`
	MinPlayers int            `yaml:"min_players"`
	Output     string         `yaml:"output"`
	Cook       map[string]int `yaml:"cook"`
	Bake       map[string]int `yaml:"bake"`
	BakeLimit  int            `yaml:"bake_limit"`
	Exchange   map[string]int `yaml:"exchange"`
	Future     *futureRow     `yaml:"future"`
}

type cardsFile struct {
	Cards []cardRow `yaml:"cards"`
}

// Default loads the embedded tables
func Default() (*Tables, error) {
	sub, err := fs.Sub(tables, "tables")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// Load reads and validates the four table files from the root of fsys
func Load(fsys fs.FS) (*Tables, error) {
	var af actionsFile
	if err := decodeFile(fsys, ActionsFile, actionsSchemaURL, &af); err != nil {
		return nil, err
	}

	t := &Tables{
		Actions: map[string]Action{},
		Layout:  Layout{Stages: map[int][]goods.Coordinate{}},
	}

	for _, row := range af.Actions {
		a, err := row.toAction()
		if err != nil {
			return nil, fmt.Errorf("%s: action %q: %w", ActionsFile, row.Key, err)
		}
		if _, dup := t.Actions[a.Key]; dup {
			return nil, fmt.Errorf("%s: duplicate action %q", ActionsFile, a.Key)
		}
		t.Actions[a.Key] = a
	}

	t.Layout.Base = toPlacements(af.Layout.Base)
	t.Layout.ThreePlayer = toPlacements(af.Layout.ThreePlayers)
	t.Layout.FourPlayer = toPlacements(af.Layout.FourPlayers)
	for _, row := range af.Layout.Stages {
		coords := make([]goods.Coordinate, 0, len(row.At))
		for _, at := range row.At {
			coords = append(coords, goods.Coordinate{Row: at[0], Col: at[1]})
		}
		t.Layout.Stages[row.Stage] = coords
	}

	var err error
	if t.MajorImprovements, err = loadCards(fsys, MajorImprovementsFile); err != nil {
		return nil, err
	}
	if t.MinorImprovements, err = loadCards(fsys, MinorImprovementsFile); err != nil {
		return nil, err
	}
	if t.Occupations, err = loadCards(fsys, OccupationsFile); err != nil {
		return nil, err
	}

	return t, nil
}

func decodeFile(fsys fs.FS, name, schemaURL string, out interface{}) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}
	if err := validate(schemaURL, raw); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func loadCards(fsys fs.FS, name string) ([]Card, error) {
	var cf cardsFile
	if err := decodeFile(fsys, name, cardsSchemaURL, &cf); err != nil {
		return nil, err
	}

	cards := make([]Card, 0, len(cf.Cards))
	seen := map[string]bool{}
	for _, row := range cf.Cards {
		c, err := row.toCard()
		if err != nil {
			return nil, fmt.Errorf("%s: card %q: %w", name, row.Key, err)
		}
		if seen[c.Key] {
			return nil, fmt.Errorf("%s: duplicate card %q", name, c.Key)
		}
		seen[c.Key] = true
		cards = append(cards, c)
	}
	return cards, nil
}

func (r actionRow) toAction() (Action, error) {
	a := Action{
		Key:        r.Key,
		Stage:      r.Stage,
		Effect:     r.Effect,
		Accumulate: r.Accumulate,
		Rate:       r.Rate,
		Costs:      map[string]goods.Cost{},
	}

	if r.Goods != "" {
		t, err := goods.ParseType(r.Goods)
		if err != nil {
			return Action{}, err
		}
		a.Goods = t
	}
	if a.Accumulate && (a.Goods == goods.None || a.Rate < 1) {
		return Action{}, errors.New("accumulating action needs goods and a positive rate")
	}

	output, err := goods.ParseCost(r.Output)
	if err != nil {
		return Action{}, err
	}
	a.Output = output

	for name, s := range r.Costs {
		cost, err := goods.ParseCost(s)
		if err != nil {
			return Action{}, err
		}
		a.Costs[name] = cost
	}
	return a, nil
}

func (r cardRow) toCard() (Card, error) {
	c := Card{
		Key:        r.Key,
		Effect:     r.Effect,
		Points:     r.Points,
		PassLeft:   r.PassLeft,
		MinPlayers: r.MinPlayers,
		BakeLimit:  r.BakeLimit,
	}
	if c.MinPlayers == 0 {
		c.MinPlayers = 1
	}

	for _, s := range r.Cost {
		cost, err := goods.ParseCost(s)
		if err != nil {
			return Card{}, err
		}
		c.Costs = append(c.Costs, cost)
	}

	output, err := goods.ParseCost(r.Output)
	if err != nil {
		return Card{}, err
	}
	c.Output = output

	if c.Cook, err = toRates(r.Cook); err != nil {
		return Card{}, err
	}
	if c.Bake, err = toRates(r.Bake); err != nil {
		return Card{}, err
	}
	if c.Exchange, err = toRates(r.Exchange); err != nil {
		return Card{}, err
	}

	if r.Future != nil {
		t, err := goods.ParseType(r.Future.Goods)
		if err != nil {
			return Card{}, err
		}
		c.Future = &Future{Goods: t, Qty: r.Future.Qty, Rounds: r.Future.Rounds}
	}
	return c, nil
}

func toRates(raw map[string]int) (map[goods.Type]int, error) {
	rates := map[goods.Type]int{}
	for name, rate := range raw {
		t, err := goods.ParseType(name)
		if err != nil {
			return nil, err
		}
		rates[t] = rate
	}
	return rates, nil
}

func toPlacements(rows []placementRow) []Placement {
	placements := make([]Placement, 0, len(rows))
	for _, row := range rows {
		placements = append(placements, Placement{
			Action: row.Action,
			Coord:  goods.Coordinate{Row: row.At[0], Col: row.At[1]},
		})
	}
	return placements
}

// Validate checks the tables only name known actions, cards and effects.
// knownEffect reports whether an effect identifier can be dispatched.
func (t *Tables) Validate(knownEffect func(string) bool) error {
	keys := make([]string, 0, len(t.Actions))
	for key := range t.Actions {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		a := t.Actions[key]
		if !contains(ActionNames, key) {
			return fmt.Errorf("%w: %q", ErrUnknownAction, key)
		}
		if !knownEffect(a.Effect) {
			return fmt.Errorf("%w: %q on action %q", ErrUnknownEffect, a.Effect, key)
		}
	}

	placed := append(append(append([]Placement{}, t.Layout.Base...), t.Layout.ThreePlayer...), t.Layout.FourPlayer...)
	for _, p := range placed {
		if _, ok := t.Actions[p.Action]; !ok {
			return fmt.Errorf("%w: %q in layout", ErrUnknownAction, p.Action)
		}
	}

	families := []struct {
		cards []Card
		names []string
	}{
		{t.MajorImprovements, MajorImprovementNames},
		{t.MinorImprovements, MinorImprovementNames},
		{t.Occupations, OccupationNames},
	}
	for _, f := range families {
		for _, c := range f.cards {
			if !contains(f.names, c.Key) {
				return fmt.Errorf("%w: %q", ErrUnknownCard, c.Key)
			}
			if !knownEffect(c.Effect) {
				return fmt.Errorf("%w: %q on card %q", ErrUnknownEffect, c.Effect, c.Key)
			}
		}
	}
	return nil
}

// StageActions lists the keys of the actions revealed during stage, sorted
func (t *Tables) StageActions(stage int) []string {
	keys := []string{}
	for key, a := range t.Actions {
		if a.Stage == stage && stage > 0 {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
