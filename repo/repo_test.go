package repo

import (
	"testing"

	"battlecore/battle"
	"battlecore/format"
)

func TestStaticRepositoriesHasSeedFixtures(t *testing.T) {
	repos := NewStaticRepositories()

	if _, ok := repos.Species("pikachu"); !ok {
		t.Error("expected pikachu to be seeded")
	}
	if _, ok := repos.Move("tackle"); !ok {
		t.Error("expected tackle to be seeded")
	}
	if _, ok := repos.Ability("static"); !ok {
		t.Error("expected static to be seeded")
	}
	if _, ok := repos.Item("leftovers"); !ok {
		t.Error("expected leftovers to be seeded")
	}
}

func TestMoveUnknownIDNotFound(t *testing.T) {
	repos := NewStaticRepositories()
	if _, ok := repos.Move("nonexistent-move"); ok {
		t.Error("expected lookup of an unseeded move to fail")
	}
}

func TestAllMovesIncludesSeeded(t *testing.T) {
	repos := NewStaticRepositories()
	all := repos.AllMoves()
	found := false
	for _, m := range all {
		if m.ID == "tackle" {
			found = true
		}
	}
	if !found {
		t.Error("expected AllMoves to include tackle")
	}
}

func TestApplyOverridesGatesOnGeneration(t *testing.T) {
	newType := battle.TypeNormal
	newPower := 30
	overrides := []MoveOverride{
		{Gen: format.Gen6, Type: &newType, BasePower: &newPower},
	}
	base := MoveData{ID: "gust", Type: battle.TypeFlying, BasePower: 40}

	pre6 := ApplyOverrides(base, overrides, format.Gen5)
	if pre6.Type != battle.TypeNormal || pre6.BasePower != 30 {
		t.Errorf("expected pre-Gen6 override to apply, got %+v", pre6)
	}

	post6 := ApplyOverrides(base, overrides, format.Gen6)
	if post6.Type != battle.TypeFlying || post6.BasePower != 40 {
		t.Errorf("expected Gen6+ to use base values, got %+v", post6)
	}
}

func TestEffectivenessSuperEffective(t *testing.T) {
	if got := Effectiveness(9, battle.TypeWater, battle.TypeFire); got != 2 {
		t.Errorf("Water vs Fire: got %v, want 2", got)
	}
}

func TestEffectivenessImmune(t *testing.T) {
	if got := Effectiveness(9, battle.TypeNormal, battle.TypeGhost); got != 0 {
		t.Errorf("Normal vs Ghost: got %v, want 0", got)
	}
}

func TestEffectivenessFairyNeutralBeforeGen6(t *testing.T) {
	if got := Effectiveness(5, battle.TypeDark, battle.TypeFairy); got != 1 {
		t.Errorf("Dark vs Fairy pre-Gen6 should be neutral (Fairy didn't exist), got %v", got)
	}
}

func TestCombinedEffectivenessDualType(t *testing.T) {
	def := [2]battle.PokemonType{battle.TypeGrass, battle.TypePoison}
	got := CombinedEffectiveness(9, battle.TypePsychic, def)
	want := Effectiveness(9, battle.TypePsychic, battle.TypeGrass) * Effectiveness(9, battle.TypePsychic, battle.TypePoison)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
