package game

import (
	"errors"
	"math/rand/v2"

	"github.com/minaorangina/agricola/data"
	"github.com/minaorangina/agricola/deck"
	"github.com/minaorangina/agricola/errdefs"
	"github.com/minaorangina/agricola/internal/board"
	"github.com/minaorangina/agricola/internal/goods"
	"github.com/minaorangina/agricola/internal/state"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
)

var (
	ErrTooFewPlayers  = state.ErrTooFewPlayers
	ErrTooManyPlayers = state.ErrTooManyPlayers
	ErrUnknownPlayer  = errors.New("unknown player")
	ErrNotYourTurn    = errors.New("not this player's turn")
)

const (
	handSize           = 7
	startingWorkers    = 2
	foodPerPerson      = 2
	soloFoodPerPerson  = 3
	newbornFood        = 1
	beggingMarkerScore = -3
	finalRound         = state.FinalRound
)

// Options configures a new game. Only NumPlayers is required.
type Options struct {
	ID             string
	NumPlayers     int
	Tables         *data.Tables
	Rand           *rand.Rand
	Logger         *zap.Logger
	StartingPlayer int // 0 picks one at random
}

// Game is one game of Agricola. It is not safe for concurrent use.
type Game struct {
	id      string
	log     *zap.Logger
	rng     *rand.Rand
	tables  *data.Tables
	machine *state.Machine
	actions *board.ActionBoard
	tiles   *board.Tiles
	majors  *deck.Deck
	players []*Player
	pending Decision

	actionEffects map[string]EffectFunc
	cardEffects   map[string]EffectFunc
}

// NewID returns a fresh game identifier
func NewID() string {
	return uuid.NewV4().String()
}

// New sets up a game ready for StartGame: boards laid out, cards dealt,
// two workers in each player's starting rooms
func New(opts Options) (*Game, error) {
	machine, err := state.NewMachine(opts.NumPlayers)
	if err != nil {
		return nil, err
	}

	g := &Game{
		id:            opts.ID,
		log:           opts.Logger,
		rng:           opts.Rand,
		tables:        opts.Tables,
		machine:       machine,
		tiles:         board.NewTiles(),
		players:       make([]*Player, 0, opts.NumPlayers),
		actionEffects: map[string]EffectFunc{},
		cardEffects:   map[string]EffectFunc{},
	}
	if g.id == "" {
		g.id = NewID()
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	g.log = g.log.With(zap.String("game_id", g.id))
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if g.tables == nil {
		if g.tables, err = data.Default(); err != nil {
			return nil, err
		}
	}

	if err := g.resolveEffects(); err != nil {
		return nil, err
	}

	if g.actions, err = board.NewActionBoard(opts.NumPlayers, g.tables, g.rng); err != nil {
		return nil, err
	}
	g.majors = deck.New(deck.MajorImprovement, g.tables.MajorImprovements)

	starting := opts.StartingPlayer
	if starting == 0 {
		starting = g.rng.IntN(opts.NumPlayers) + 1
	}
	if err := machine.SetStartingPlayer(starting); err != nil {
		return nil, err
	}

	minors := deck.New(deck.MinorImprovement, g.tables.MinorImprovements)
	occupations := deck.New(deck.Occupation, g.tables.Occupations)
	allowed := func(c *deck.Card) bool { return c.MinPlayers() <= opts.NumPlayers }

	for seat := 1; seat <= opts.NumPlayers; seat++ {
		p := newPlayer(seat, opts.NumPlayers, seat == starting)

		if p.minors, err = minors.Deal(handSize, g.rng, nil); err != nil {
			return nil, err
		}
		if p.occupations, err = occupations.Deal(handSize, g.rng, allowed); err != nil {
			return nil, err
		}
		if err := p.moveIntoStartingRooms(); err != nil {
			return nil, err
		}
		g.players = append(g.players, p)
	}

	g.log.Info("game created",
		zap.Int("players", opts.NumPlayers),
		zap.Int("starting_player", starting),
	)
	return g, nil
}

func (g *Game) resolveEffects() error {
	if err := g.tables.Validate(KnownEffect); err != nil {
		return err
	}
	for key, a := range g.tables.Actions {
		g.actionEffects[key] = effects[a.Effect]
	}
	for _, family := range [][]data.Card{g.tables.MajorImprovements, g.tables.MinorImprovements, g.tables.Occupations} {
		for _, c := range family {
			g.cardEffects[c.Key] = effects[c.Effect]
		}
	}
	return nil
}

func (g *Game) ID() string               { return g.id }
func (g *Game) State() state.State       { return g.machine.State() }
func (g *Game) Round() int               { return g.machine.Round() }
func (g *Game) Phase() int               { return g.machine.Phase() }
func (g *Game) NumPlayers() int          { return g.machine.NumPlayers() }
func (g *Game) ActivePlayer() int        { return g.machine.ActivePlayer() }
func (g *Game) StartingPlayer() int      { return g.machine.StartingPlayer() }
func (g *Game) WorkersLeft(seat int) int { return g.machine.WorkersLeft(seat) }

// ActionBoard is the shared board of action spaces
func (g *Game) ActionBoard() ActionBoardView { return actionBoardView{g.actions} }

// Tiles is the shared supply of room and field tiles
func (g *Game) Tiles() TilesView { return tilesView{g.tiles} }

// MajorImprovements holds the major improvements nobody has bought yet
func (g *Game) MajorImprovements() CardsView { return cardsView{g.majors} }

// PendingDecision is the decision the active player owes, nil when there is none
func (g *Game) PendingDecision() Decision { return g.pending }

// Player returns the player in seat, counting from 1
func (g *Game) Player(seat int) (*Player, error) {
	if seat < 1 || seat > len(g.players) {
		return nil, ErrUnknownPlayer
	}
	return g.players[seat-1], nil
}

// Players returns every player in seat order
func (g *Game) Players() []*Player {
	return append([]*Player{}, g.players...)
}

// next returns the player to p's left
func (g *Game) next(p *Player) *Player {
	return g.players[p.seat%len(g.players)]
}

// activePlayer checks seat is the player whose turn it is
func (g *Game) activePlayer(op string, seat int) (*Player, error) {
	p, err := g.Player(seat)
	if err != nil {
		return nil, errdefs.Illegal(op, "%s %d", err, seat)
	}
	if seat != g.machine.ActivePlayer() {
		return nil, errdefs.Illegal(op, "%s: player %d, active player %d", ErrNotYourTurn, seat, g.machine.ActivePlayer())
	}
	return p, nil
}

// player looks up any seat for the any-time actions
func (g *Game) player(op string, seat int) (*Player, error) {
	p, err := g.Player(seat)
	if err != nil {
		return nil, errdefs.Illegal(op, "%s %d", err, seat)
	}
	return p, nil
}

// BundleMoveRequest builds a move request for MoveItems
func BundleMoveRequest(t goods.Type, qty int, dest goods.Location, destCoord goods.Coordinate, src goods.Location, srcCoord goods.Coordinate) goods.MoveRequest {
	return goods.NewMoveRequest(t, qty, dest, destCoord, src, srcCoord)
}
