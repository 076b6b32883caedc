package pipeline

import (
	"testing"

	"battlecore/battle"
	"battlecore/repo"
)

type singlesFormat struct{}

func (singlesFormat) ActivePerSide() int    { return 1 }
func (singlesFormat) GenerationNumber() int { return 9 }

func newTestState(repos *repo.Repositories) *battle.State {
	attacker := battle.Pokemon{
		Species: "pikachu", Level: 50,
		Types: [2]battle.PokemonType{battle.TypeElectric, battle.TypeNone},
		Base:  battle.BaseStats{HP: 35, Atk: 55, Def: 40, SpA: 50, SpD: 50, Spe: 90},
		IVs:   battle.BaseStats{HP: 31, Atk: 31, Def: 31, SpA: 31, SpD: 31, Spe: 31},
		MaxHP: 100, CurrentHP: 100,
		Moves:     [4]battle.MoveSlot{{Move: "tackle", PP: 35, MaxPP: 35}},
		Volatiles: battle.NewVolatiles(),
	}
	defender := battle.Pokemon{
		Species: "charmander", Level: 50,
		Types: [2]battle.PokemonType{battle.TypeFire, battle.TypeNone},
		Base:  battle.BaseStats{HP: 39, Atk: 52, Def: 43, SpA: 60, SpD: 50, Spe: 65},
		IVs:   battle.BaseStats{HP: 31, Atk: 31, Def: 31, SpA: 31, SpD: 31, Spe: 31},
		MaxHP: 100, CurrentHP: 100,
		Moves:     [4]battle.MoveSlot{{Move: "tackle", PP: 35, MaxPP: 35}},
		Volatiles: battle.NewVolatiles(),
	}
	sideA := battle.NewSide(battle.SideA, 1, []battle.Pokemon{attacker})
	sideB := battle.NewSide(battle.SideB, 1, []battle.Pokemon{defender})
	return battle.NewState(singlesFormat{}, sideA, sideB)
}

// TestRunTurnProbabilitiesConserveMass verifies spec §8's Probability
// conservation property: every RunTurn call, regardless of how many
// branches the move resolution fans out into, sums to 100%.
func TestRunTurnProbabilitiesConserveMass(t *testing.T) {
	repos := repo.NewStaticRepositories()
	st := newTestState(repos)

	a := MoveChoice{Kind: ChoiceMove, Slot: 0, Position: battle.Position{Side: battle.SideA, Slot: 0}}
	b := MoveChoice{Kind: ChoiceMove, Slot: 0, Position: battle.Position{Side: battle.SideB, Slot: 0}}

	branches, err := RunTurn(st, a, b, repos, Options{TieBreak: TieBreakBranch})
	if err != nil {
		t.Fatalf("RunTurn failed: %v", err)
	}
	if len(branches) == 0 {
		t.Fatalf("expected at least one branch")
	}
	if sum, ok := battle.SumProbabilities(branches); !ok {
		t.Errorf("branch probabilities should sum to 100, got %v", sum)
	}
}

// TestRunTurnAppliesDamage confirms applying the highest-probability
// branch actually reduces the target's HP.
func TestRunTurnAppliesDamage(t *testing.T) {
	repos := repo.NewStaticRepositories()
	st := newTestState(repos)

	a := MoveChoice{Kind: ChoiceMove, Slot: 0, Position: battle.Position{Side: battle.SideA, Slot: 0}}
	b := MoveChoice{Kind: ChoiceMove, Slot: 0, Position: battle.Position{Side: battle.SideB, Slot: 0}}

	branches, err := RunTurn(st, a, b, repos, Options{TieBreak: TieBreakBranch})
	if err != nil {
		t.Fatalf("RunTurn failed: %v", err)
	}

	best := branches[0]
	for _, br := range branches {
		if br.Probability > best.Probability {
			best = br
		}
	}
	next := best.Apply(st)

	atkHP := next.At(battle.Position{Side: battle.SideA, Slot: 0}).CurrentHP
	defHP := next.At(battle.Position{Side: battle.SideB, Slot: 0}).CurrentHP
	if atkHP == 100 && defHP == 100 {
		t.Errorf("expected at least one Pokemon to take damage from a mutual Tackle exchange")
	}
}

// TestAfterMoveTriggersStaticParalysis reproduces spec §4.4 Phase 3
// step 7: a contact move landed on a Static holder must branch 70/30
// into an untouched outcome and one where the attacker (not the
// holder) ends up paralyzed.
func TestAfterMoveTriggersStaticParalysis(t *testing.T) {
	repos := repo.NewStaticRepositories()
	st := newTestState(repos)
	defenderPos := battle.Position{Side: battle.SideB, Slot: 0}
	st.At(defenderPos).Ability = "static"

	if _, ok := repos.Move("tackle"); !ok {
		t.Fatal("tackle not seeded")
	}
	attackerPos := battle.Position{Side: battle.SideA, Slot: 0}
	// Electric types cannot be paralyzed, so the attacker is made Normal-type.
	st.At(attackerPos).Types = [2]battle.PokemonType{battle.TypeNormal, battle.TypeNone}

	branches, err := resolveMove(st, action{Choice: MoveChoice{Kind: ChoiceMove, Slot: 0, Position: attackerPos}}, st.At(attackerPos), repos)
	if err != nil {
		t.Fatalf("resolveMove failed: %v", err)
	}
	if sum, ok := battle.SumProbabilities(branches); !ok {
		t.Errorf("expected branch probabilities to sum to 100, got %v", sum)
	}

	var sawParalysis bool
	for _, b := range branches {
		for _, ins := range b.Instructions {
			if s, ok := ins.(battle.ApplyStatus); ok && s.NewStatus == battle.StatusParalysis && s.Pos == attackerPos {
				sawParalysis = true
			}
		}
	}
	if !sawParalysis {
		t.Errorf("expected at least one branch paralyzing the attacker via Static, got %+v", branches)
	}
}

func TestValidateChoiceRejectsFaintedMover(t *testing.T) {
	repos := repo.NewStaticRepositories()
	st := newTestState(repos)
	st.Sides[0].Team[0].Fainted = true

	c := MoveChoice{Kind: ChoiceMove, Slot: 0, Position: battle.Position{Side: battle.SideA, Slot: 0}}
	if err := ValidateChoice(st, c, repos); err == nil {
		t.Error("expected an error validating a move from a fainted Pokemon")
	}
}
