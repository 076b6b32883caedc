package targeting

import (
	"testing"

	"battlecore/battle"
	"battlecore/repo"
)

type singlesFormat struct{}

func (singlesFormat) ActivePerSide() int    { return 1 }
func (singlesFormat) GenerationNumber() int { return 9 }

type doublesFormat struct{}

func (doublesFormat) ActivePerSide() int    { return 2 }
func (doublesFormat) GenerationNumber() int { return 9 }

func mon() battle.Pokemon {
	return battle.Pokemon{MaxHP: 100, CurrentHP: 100, Volatiles: battle.NewVolatiles()}
}

func TestResolveNormalSingles(t *testing.T) {
	sideA := battle.NewSide(battle.SideA, 1, []battle.Pokemon{mon()})
	sideB := battle.NewSide(battle.SideB, 1, []battle.Pokemon{mon()})
	st := battle.NewState(singlesFormat{}, sideA, sideB)

	got := Resolve(repo.TargetNormal, battle.Position{Side: battle.SideA, Slot: 0}, st)
	if len(got) != 1 || got[0] != (battle.Position{Side: battle.SideB, Slot: 0}) {
		t.Fatalf("expected single foe target, got %v", got)
	}
}

func TestResolveAllAdjacentFoesDoubles(t *testing.T) {
	sideA := battle.NewSide(battle.SideA, 2, []battle.Pokemon{mon(), mon()})
	sideB := battle.NewSide(battle.SideB, 2, []battle.Pokemon{mon(), mon()})
	st := battle.NewState(doublesFormat{}, sideA, sideB)

	got := Resolve(repo.TargetAllAdjacentFoes, battle.Position{Side: battle.SideA, Slot: 0}, st)
	if len(got) != 2 {
		t.Fatalf("expected spread move to hit both foe slots, got %d", len(got))
	}
}

func TestResolveSkipsFaintedTargets(t *testing.T) {
	defender := mon()
	defender.Fainted = true
	sideA := battle.NewSide(battle.SideA, 1, []battle.Pokemon{mon()})
	sideB := battle.NewSide(battle.SideB, 1, []battle.Pokemon{defender})
	st := battle.NewState(singlesFormat{}, sideA, sideB)

	got := Resolve(repo.TargetNormal, battle.Position{Side: battle.SideA, Slot: 0}, st)
	if len(got) != 0 {
		t.Errorf("fainted target should be excluded, got %v", got)
	}
}

func TestFallbackRetargetToAdjacentSlot(t *testing.T) {
	fainted := mon()
	fainted.Fainted = true
	sideA := battle.NewSide(battle.SideA, 2, []battle.Pokemon{mon(), mon()})
	sideB := battle.NewSide(battle.SideB, 2, []battle.Pokemon{fainted, mon()})
	st := battle.NewState(doublesFormat{}, sideA, sideB)

	got, ok := FallbackRetarget(battle.Position{Side: battle.SideB, Slot: 0}, st)
	if !ok {
		t.Fatalf("expected a fallback target")
	}
	if got.Side != battle.SideB || got.Slot != 1 {
		t.Errorf("expected retarget to slot 1, got %v", got)
	}
}
