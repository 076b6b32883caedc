package policy

import (
	"math/rand"
	"testing"

	"battlecore/battle"
	"battlecore/pipeline"
)

type testFormatInfo struct{}

func (testFormatInfo) ActivePerSide() int    { return 1 }
func (testFormatInfo) GenerationNumber() int { return 9 }

func testMonWithMoves() battle.Pokemon {
	return battle.Pokemon{
		MaxHP: 100, CurrentHP: 100,
		Moves: [4]battle.MoveSlot{
			{Move: "tackle", PP: 35, MaxPP: 35},
			{Move: "thunder", PP: 0, MaxPP: 10},
		},
		Volatiles: battle.NewVolatiles(),
	}
}

func testState() *battle.State {
	sideA := battle.NewSide(battle.SideA, 1, []battle.Pokemon{testMonWithMoves()})
	sideB := battle.NewSide(battle.SideB, 1, []battle.Pokemon{testMonWithMoves()})
	return battle.NewState(testFormatInfo{}, sideA, sideB)
}

func TestFirstLegalPolicyPicksLowestLegalSlot(t *testing.T) {
	st := testState()
	c := FirstLegalPolicy{}.ChooseMove(st, battle.SideA, nil)
	if c.Kind != pipeline.ChoiceMove || c.Slot != 0 {
		t.Errorf("expected slot 0 (tackle has PP), got %+v", c)
	}
}

func TestFirstLegalPolicySkipsDepletedPP(t *testing.T) {
	st := testState()
	st.At(battle.Position{Side: battle.SideA, Slot: 0}).Moves[0].PP = 0
	c := FirstLegalPolicy{}.ChooseMove(st, battle.SideA, nil)
	if c.Slot != -1 {
		t.Errorf("expected Struggle fallback when all moves are out of PP, got slot %d", c.Slot)
	}
}

func TestFirstLegalPolicyFaintedMoverReturnsNone(t *testing.T) {
	st := testState()
	st.At(battle.Position{Side: battle.SideA, Slot: 0}).Fainted = true
	c := FirstLegalPolicy{}.ChooseMove(st, battle.SideA, nil)
	if c.Kind != pipeline.ChoiceNone {
		t.Errorf("expected ChoiceNone for a fainted mover, got %+v", c)
	}
}

func TestRandomPolicyOnlyPicksLegalSlots(t *testing.T) {
	st := testState()
	rng := rand.New(rand.NewSource(42))
	p := NewRandomPolicy(rng)
	for i := 0; i < 20; i++ {
		c := p.ChooseMove(st, battle.SideA, nil)
		if c.Slot != 0 {
			t.Fatalf("expected only slot 0 to ever be chosen (thunder has no PP), got %d", c.Slot)
		}
	}
}
