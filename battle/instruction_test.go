package battle

import "testing"

func testFormat() FormatInfo { return testFormatInfo{} }

type testFormatInfo struct{}

func (testFormatInfo) ActivePerSide() int    { return 1 }
func (testFormatInfo) GenerationNumber() int { return 9 }

func testPokemon() Pokemon {
	return Pokemon{
		Species:   "pikachu",
		Level:     50,
		Types:     [2]PokemonType{TypeElectric, TypeNone},
		Base:      BaseStats{HP: 35, Atk: 55, Def: 40, SpA: 50, SpD: 50, Spe: 90},
		IVs:       BaseStats{HP: 31, Atk: 31, Def: 31, SpA: 31, SpD: 31, Spe: 31},
		MaxHP:     100,
		CurrentHP: 100,
		Volatiles: NewVolatiles(),
	}
}

func testState() *State {
	sideA := NewSide(SideA, 1, []Pokemon{testPokemon()})
	sideB := NewSide(SideB, 1, []Pokemon{testPokemon()})
	return NewState(testFormat(), sideA, sideB)
}

// TestDamageInvertRoundTrip verifies spec §8's Invertibility property:
// applying an instruction then its inverse restores the exact prior
// state, even across a chain of mutations.
func TestDamageInvertRoundTrip(t *testing.T) {
	st := testState()
	pos := Position{Side: SideA, Slot: 0}

	instrs := []Instruction{
		NewDamage(st, pos, 30),
		NewApplyStatus(st, pos, StatusBurn, 0),
		NewBoostStats(st, pos, Boosts{StatAtk: 2}),
	}

	before := st.Clone()

	ApplyAll(st, instrs)
	if st.At(pos).CurrentHP != 70 {
		t.Fatalf("expected 70 HP after damage, got %d", st.At(pos).CurrentHP)
	}

	undone := InvertAll(instrs)
	ApplyAll(st, undone)

	after := st.At(pos)
	want := before.At(pos)
	if after.CurrentHP != want.CurrentHP {
		t.Errorf("CurrentHP: got %d, want %d", after.CurrentHP, want.CurrentHP)
	}
	if after.Status != want.Status {
		t.Errorf("Status: got %v, want %v", after.Status, want.Status)
	}
	if after.Boosts != want.Boosts {
		t.Errorf("Boosts: got %v, want %v", after.Boosts, want.Boosts)
	}
}

// TestCombineMultipliesProbabilities checks the Cartesian-product rule
// from spec §4.4 Phase 4: two independent 50/50 branch sets combine
// into four 25% branches.
func TestCombineMultipliesProbabilities(t *testing.T) {
	a := []BattleInstructions{{Probability: 50}, {Probability: 50}}
	b := []BattleInstructions{{Probability: 50}, {Probability: 50}}

	combined := Combine(a, b)
	if len(combined) != 4 {
		t.Fatalf("expected 4 branches, got %d", len(combined))
	}
	for _, br := range combined {
		if br.Probability != 25 {
			t.Errorf("expected 25%% per branch, got %v", br.Probability)
		}
	}
	if sum, ok := SumProbabilities(combined); !ok {
		t.Errorf("probabilities should sum to 100, got %v", sum)
	}
}

func TestPruneRenormalizes(t *testing.T) {
	branches := []BattleInstructions{
		{Probability: 0.05},
		{Probability: 49.95},
		{Probability: 50},
	}
	pruned := Prune(branches, 0.1)
	if len(pruned) != 2 {
		t.Fatalf("expected 2 branches after pruning, got %d", len(pruned))
	}
	if sum, ok := SumProbabilities(pruned); !ok {
		t.Errorf("pruned probabilities should renormalize to 100, got %v", sum)
	}
}

func TestPruneDisabledAtZeroThreshold(t *testing.T) {
	branches := []BattleInstructions{{Probability: 0.001}, {Probability: 99.999}}
	if got := Prune(branches, 0); len(got) != len(branches) {
		t.Errorf("threshold <= 0 should disable pruning")
	}
}
