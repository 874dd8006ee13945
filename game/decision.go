package game

import (
	"github.com/minaorangina/agricola/internal/goods"
)

// Decision is a follow-up choice the active player owes before the turn
// can move on. Each variant names the arguments Decide expects for it.
type Decision interface {
	Name() string
	Expects() []string
	isDecision()
}

// Build is what a ChooseSpace decision will put on the chosen space
type Build int

const (
	BuildRoom Build = iota
	BuildStable
	BuildField
)

var buildNames = []string{"room", "stable", "field"}

func (b Build) String() string { return buildNames[b] }

const (
	argSkip = "skip"
	argDone = "done"
)

// ChooseRoomOrStable follows farm expansion. It repeats until the player is done.
type ChooseRoomOrStable struct{}

// ChooseSpace asks where to build. Payment is charged once a valid space
// is chosen; Then is the decision that follows, nil to end the chain.
type ChooseSpace struct {
	Build   Build
	Payment goods.Cost
	Then    Decision
}

// PlayMinorImprovement offers a minor improvement from the player's hand
type PlayMinorImprovement struct{}

// PlayMajorImprovement offers one of the major improvements still available
type PlayMajorImprovement struct{}

// PlayOccupation offers an occupation from the player's hand for Payment
type PlayOccupation struct {
	Payment goods.Cost
}

// ChooseImprovement lets the player pick which kind of improvement to play
type ChooseImprovement struct{}

// ReturnFireplaceOrBuyHearth follows picking a cooking hearth: pay for it
// or hand back a fireplace instead
type ReturnFireplaceOrBuyHearth struct {
	Card string
}

// Sow plants one crop per answer until the player is done. With ThenBake
// the player may bake bread afterwards.
type Sow struct {
	ThenBake bool
}

// BakeBread turns grain into food with the player's baking improvements
type BakeBread struct{}

// BuildPasture fences one pasture per answer, FenceCost per fence
type BuildPasture struct {
	FenceCost goods.Cost
}

// PlaceAnimals settles the animals taken from a market space at From
type PlaceAnimals struct {
	Type goods.Type
	Qty  int
	From goods.Coordinate
}

func (ChooseRoomOrStable) Name() string         { return "choose_room_or_stable" }
func (ChooseSpace) Name() string                { return "choose_space" }
func (PlayMinorImprovement) Name() string       { return "play_minor_improvement" }
func (PlayMajorImprovement) Name() string       { return "play_major_improvement" }
func (PlayOccupation) Name() string             { return "play_occupation" }
func (ChooseImprovement) Name() string          { return "choose_improvement" }
func (ReturnFireplaceOrBuyHearth) Name() string { return "return_fireplace_or_buy_hearth" }
func (Sow) Name() string                        { return "sow" }
func (BakeBread) Name() string                  { return "bake_bread" }
func (BuildPasture) Name() string               { return "build_pasture" }
func (PlaceAnimals) Name() string               { return "place_animals" }

func (ChooseRoomOrStable) Expects() []string { return []string{"room | stable | done"} }
func (d ChooseSpace) Expects() []string {
	return []string{"coordinate for a " + d.Build.String() + " | skip"}
}
func (PlayMinorImprovement) Expects() []string { return []string{"minor improvement | skip"} }
func (PlayMajorImprovement) Expects() []string { return []string{"major improvement | skip"} }
func (PlayOccupation) Expects() []string       { return []string{"occupation | skip"} }
func (ChooseImprovement) Expects() []string    { return []string{"major | minor | skip"} }
func (ReturnFireplaceOrBuyHearth) Expects() []string {
	return []string{"buy | return | skip"}
}
func (Sow) Expects() []string          { return []string{"grain | vegetable | done", "coordinate"} }
func (BakeBread) Expects() []string    { return []string{"grain to bake | skip"} }
func (BuildPasture) Expects() []string { return []string{"coordinate...", "| done"} }
func (PlaceAnimals) Expects() []string { return []string{"place | cook | release", "coordinate"} }

func (ChooseRoomOrStable) isDecision()         {}
func (ChooseSpace) isDecision()                {}
func (PlayMinorImprovement) isDecision()       {}
func (PlayMajorImprovement) isDecision()       {}
func (PlayOccupation) isDecision()             {}
func (ChooseImprovement) isDecision()          {}
func (ReturnFireplaceOrBuyHearth) isDecision() {}
func (Sow) isDecision()                        {}
func (BakeBread) isDecision()                  {}
func (BuildPasture) isDecision()               {}
func (PlaceAnimals) isDecision()               {}

// ends reports whether the answer closes the decision chain
func ends(args []string) bool {
	return len(args) == 1 && (args[0] == argSkip || args[0] == argDone)
}
