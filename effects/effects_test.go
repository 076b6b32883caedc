package effects

import (
	"testing"

	"battlecore/battle"
	"battlecore/repo"
)

type testFormatInfo struct{}

func (testFormatInfo) ActivePerSide() int    { return 1 }
func (testFormatInfo) GenerationNumber() int { return 9 }

func testMon() battle.Pokemon {
	return battle.Pokemon{
		Species: "pikachu", Level: 50,
		Types: [2]battle.PokemonType{battle.TypeElectric, battle.TypeNone},
		Base:  battle.BaseStats{HP: 35, Atk: 55, Def: 40, SpA: 50, SpD: 50, Spe: 90},
		IVs:   battle.BaseStats{HP: 31, Atk: 31, Def: 31, SpA: 31, SpD: 31, Spe: 31},
		MaxHP: 100, CurrentHP: 100,
		Volatiles: battle.NewVolatiles(),
	}
}

func testState() *battle.State {
	sideA := battle.NewSide(battle.SideA, 1, []battle.Pokemon{testMon()})
	sideB := battle.NewSide(battle.SideB, 1, []battle.Pokemon{testMon()})
	return battle.NewState(testFormatInfo{}, sideA, sideB)
}

func TestTackleIsRegistered(t *testing.T) {
	if MoveEffect("tackle") == nil {
		t.Fatal("expected tackle to have a registered effect function")
	}
}

func TestUnregisteredMoveReturnsNil(t *testing.T) {
	if MoveEffect("not-a-real-move") != nil {
		t.Error("expected no effect function for an unregistered move")
	}
}

func TestSimpleDamageTackleBranches(t *testing.T) {
	st := testState()
	repos := repo.NewStaticRepositories()
	move, ok := repos.Move("tackle")
	if !ok {
		t.Fatal("tackle not seeded")
	}

	ctx := EffectContext{
		State:      st,
		Repos:      repos,
		User:       battle.Position{Side: battle.SideA, Slot: 0},
		Targets:    []battle.Position{{Side: battle.SideB, Slot: 0}},
		Move:       move,
		Generation: 9,
	}

	branches := simpleDamage(ctx)
	if len(branches) == 0 {
		t.Fatal("expected at least one branch")
	}
	if sum, ok := battle.SumProbabilities(branches); !ok {
		t.Errorf("expected branch probabilities to sum to 100, got %v", sum)
	}
}

func TestStatBoostSingleDeterministicBranch(t *testing.T) {
	st := testState()
	fn := statBoost(battle.Boosts{battle.StatAtk: 2})
	ctx := EffectContext{
		State:   st,
		User:    battle.Position{Side: battle.SideA, Slot: 0},
		Targets: []battle.Position{{Side: battle.SideA, Slot: 0}},
	}
	branches := fn(ctx)
	if len(branches) != 1 || branches[0].Probability != 100 {
		t.Fatalf("expected a single 100%% branch, got %+v", branches)
	}
}

func TestHealingRestoresFractionOfMaxHP(t *testing.T) {
	st := testState()
	pos := battle.Position{Side: battle.SideA, Slot: 0}
	st.At(pos).CurrentHP = 50

	fn := healing(repo.Fraction{Num: 1, Den: 2})
	ctx := EffectContext{State: st, User: pos, Targets: []battle.Position{pos}}
	branches := fn(ctx)
	if len(branches) != 1 {
		t.Fatalf("expected one branch, got %d", len(branches))
	}
	next := branches[0].Apply(st)
	if got := next.At(pos).CurrentHP; got != 100 {
		t.Errorf("expected heal to restore to 100, got %d", got)
	}
}

// TestIceFangBranchesOnBothIndependentSecondaries reproduces spec
// §8.5's Ice Fang case: two independent 10% secondaries (freeze,
// flinch) fold together into four sub-branches per crit/non-crit hit,
// none of them pre-empting the other.
func TestIceFangBranchesOnBothIndependentSecondaries(t *testing.T) {
	st := testState()
	repos := repo.NewStaticRepositories()
	move, ok := repos.Move("icefang")
	if !ok {
		t.Fatal("icefang not seeded")
	}
	if move.Secondary == nil || move.Secondary2 == nil {
		t.Fatal("expected icefang to carry two independent secondaries")
	}

	ctx := EffectContext{
		State:      st,
		Repos:      repos,
		User:       battle.Position{Side: battle.SideA, Slot: 0},
		Targets:    []battle.Position{{Side: battle.SideB, Slot: 0}},
		Move:       move,
		Generation: 9,
	}

	branches := simpleDamage(ctx)
	if sum, ok := battle.SumProbabilities(branches); !ok {
		t.Errorf("expected branch probabilities to sum to 100, got %v", sum)
	}

	var sawFreeze, sawFlinch, sawBoth bool
	for _, b := range branches {
		froze, flinched := false, false
		for _, ins := range b.Instructions {
			if s, ok := ins.(battle.ApplyStatus); ok && s.NewStatus == battle.StatusFreeze {
				froze = true
			}
			if v, ok := ins.(battle.ApplyVolatile); ok && v.Flag == battle.VolFlinch {
				flinched = true
			}
		}
		sawFreeze = sawFreeze || (froze && !flinched)
		sawFlinch = sawFlinch || (flinched && !froze)
		sawBoth = sawBoth || (froze && flinched)
	}
	if !sawFreeze || !sawFlinch || !sawBoth {
		t.Errorf("expected independent freeze-only, flinch-only, and both-at-once branches; got freeze=%v flinch=%v both=%v", sawFreeze, sawFlinch, sawBoth)
	}
}

// TestWillOWispFailsOutrightOnFireType reproduces spec §8.4: a
// Fire-type target is immune to burn, so Will-O-Wisp must collapse to
// a single 100% branch carrying no ApplyStatus instruction.
func TestWillOWispFailsOutrightOnFireType(t *testing.T) {
	st := testState()
	repos := repo.NewStaticRepositories()
	move, ok := repos.Move("willowisp")
	if !ok {
		t.Fatal("willowisp not seeded")
	}

	fireTarget := battle.Position{Side: battle.SideB, Slot: 0}
	st.At(fireTarget).Types = [2]battle.PokemonType{battle.TypeFire, battle.TypeNone}

	fn := MoveEffect("willowisp")
	if fn == nil {
		t.Fatal("willowisp has no registered effect function")
	}
	ctx := EffectContext{
		State:      st,
		Repos:      repos,
		User:       battle.Position{Side: battle.SideA, Slot: 0},
		Targets:    []battle.Position{fireTarget},
		Move:       move,
		Generation: 9,
	}

	branches := fn(ctx)
	if len(branches) != 1 || branches[0].Probability != 100 {
		t.Fatalf("expected a single 100%% failed branch, got %+v", branches)
	}
	if len(branches[0].Instructions) != 0 {
		t.Errorf("expected no instructions on the failed branch, got %+v", branches[0].Instructions)
	}
}

func TestHazardSetStopsAtMaxLayers(t *testing.T) {
	st := testState()
	pos := battle.Position{Side: battle.SideB, Slot: 0}
	st.Side(battle.SideB).Conditions[battle.CondSpikes] = 3

	fn := hazardSet(battle.CondSpikes, 3)
	ctx := EffectContext{State: st, Targets: []battle.Position{pos}}
	branches := fn(ctx)
	if len(branches) != 1 || len(branches[0].Instructions) != 0 {
		t.Errorf("expected a no-op branch once hazard is at max layers, got %+v", branches)
	}
}
