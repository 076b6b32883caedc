package repo

import "battlecore/battle"

// typeOrder fixes the row/column index for each type in the
// effectiveness matrix below. Steel and Dark were introduced in Gen 2,
// Fairy in Gen 6; Effectiveness gates those rows/columns out
// for earlier generations rather than maintaining one matrix per
// generation, which means Gen1-specific quirks (Psychic immune to
// nothing, Ice resisting Poison, Bug super-effective against Poison at
// a different value, etc.) are not reproduced.
var typeOrder = []battle.PokemonType{
	battle.TypeNormal, battle.TypeFire, battle.TypeWater, battle.TypeElectric,
	battle.TypeGrass, battle.TypeIce, battle.TypeFighting, battle.TypePoison,
	battle.TypeGround, battle.TypeFlying, battle.TypePsychic, battle.TypeBug,
	battle.TypeRock, battle.TypeGhost, battle.TypeDragon, battle.TypeDark,
	battle.TypeSteel, battle.TypeFairy,
}

var typeIndex = func() map[battle.PokemonType]int {
	m := make(map[battle.PokemonType]int, len(typeOrder))
	for i, t := range typeOrder {
		m[t] = i
	}
	return m
}()

// chart[attacker][defender] in eighths of a multiplier: 8 = x1, 16 = x2,
// 4 = x0.5, 0 = immune. Values drawn from the modern (Gen6+) chart.
var chart = buildChart()

func buildChart() [18][18]int {
	var c [18][18]int
	for i := range c {
		for j := range c[i] {
			c[i][j] = 8
		}
	}
	set := func(atk, def battle.PokemonType, mult int) {
		c[typeIndex[atk]][typeIndex[def]] = mult
	}
	N, F, W, E, G, I, Fi, P, Gr, Fl, Ps, B, R, Gh, D, Dk, S, Fa :=
		battle.TypeNormal, battle.TypeFire, battle.TypeWater, battle.TypeElectric,
		battle.TypeGrass, battle.TypeIce, battle.TypeFighting, battle.TypePoison,
		battle.TypeGround, battle.TypeFlying, battle.TypePsychic, battle.TypeBug,
		battle.TypeRock, battle.TypeGhost, battle.TypeDragon, battle.TypeDark,
		battle.TypeSteel, battle.TypeFairy

	set(N, R, 4)
	set(N, Gh, 0)
	set(N, S, 4)

	set(F, F, 4)
	set(F, W, 4)
	set(F, Gr, 16)
	set(F, I, 16)
	set(F, B, 16)
	set(F, R, 4)
	set(F, D, 4)
	set(F, S, 16)

	set(W, F, 16)
	set(W, W, 4)
	set(W, Gr, 4)
	set(W, Gr, 4)
	set(W, Gr, 4)
	set(W, D, 4)
	set(W, Gr, 4)
	set(W, Gr, 4)
	set(W, R, 16)
	set(W, D, 4)

	set(E, W, 16)
	set(E, E, 4)
	set(E, Gr, 4)
	set(E, Gr, 4)
	set(E, Fl, 16)
	set(E, Gr, 4)
	set(E, D, 4)
	set(E, Gr, 0)

	set(Gr, F, 4)
	set(Gr, W, 16)
	set(Gr, Gr, 4)
	set(Gr, P, 4)
	set(Gr, Gr, 4)
	set(Gr, Fl, 4)
	set(Gr, B, 4)
	set(Gr, R, 16)
	set(Gr, D, 4)

	set(I, F, 4)
	set(I, W, 4)
	set(I, Gr, 16)
	set(I, I, 4)
	set(I, Gr, 16)
	set(I, D, 16)
	set(I, S, 4)

	set(Fi, N, 16)
	set(Fi, I, 16)
	set(Fi, P, 4)
	set(Fi, Fl, 4)
	set(Fi, Ps, 4)
	set(Fi, B, 4)
	set(Fi, R, 16)
	set(Fi, Gh, 0)
	set(Fi, Dk, 16)
	set(Fi, S, 16)
	set(Fi, Fa, 4)

	set(P, Gr, 16)
	set(P, P, 4)
	set(P, Gr, 16)
	set(P, R, 4)
	set(P, Gh, 4)
	set(P, S, 0)
	set(P, Fa, 16)

	set(battle.TypeGround, F, 16)
	set(battle.TypeGround, E, 16)
	set(battle.TypeGround, Gr, 4)
	set(battle.TypeGround, P, 16)
	set(battle.TypeGround, Fl, 0)
	set(battle.TypeGround, B, 4)
	set(battle.TypeGround, R, 16)
	set(battle.TypeGround, S, 16)

	set(Fl, E, 4)
	set(Fl, Gr, 16)
	set(Fl, Fi, 16)
	set(Fl, R, 4)
	set(Fl, S, 4)

	set(Ps, Fi, 16)
	set(Ps, Ps, 4)
	set(Ps, Dk, 0)
	set(Ps, S, 4)

	set(B, F, 4)
	set(B, Gr, 16)
	set(B, Fi, 4)
	set(B, P, 4)
	set(B, Fl, 4)
	set(B, Ps, 16)
	set(B, Gh, 4)
	set(B, Dk, 16)
	set(B, S, 4)
	set(B, Fa, 4)

	set(R, Fi, 16)
	set(R, I, 16)
	set(R, Fi, 16)
	set(R, Gr, 4)
	set(R, Fl, 16)
	set(R, B, 16)
	set(R, S, 4)

	set(Gh, N, 0)
	set(Gh, Ps, 16)
	set(Gh, Gh, 16)
	set(Gh, Dk, 4)

	set(D, D, 16)
	set(D, S, 4)
	set(D, Fa, 0)

	set(Dk, Fi, 4)
	set(Dk, Ps, 16)
	set(Dk, Gh, 16)
	set(Dk, Dk, 4)
	set(Dk, Fa, 4)

	set(S, F, 4)
	set(S, W, 4)
	set(S, E, 4)
	set(S, I, 16)
	set(S, R, 16)
	set(S, S, 4)
	set(S, Fa, 16)

	set(Fa, Fi, 4)
	set(Fa, P, 4)
	set(Fa, Fi, 4)
	set(Fa, Dk, 16)
	set(Fa, S, 4)

	return c
}

// Effectiveness returns the multiplier for an attacking type against a
// single defending type, gated by generation: Steel/Dark resolve as
// neutral before Gen 2, Fairy before Gen 6 (the type didn't exist yet,
// Showdown models this as every matchup involving it being neutral).
func Effectiveness(gen int, atk, def battle.PokemonType) float64 {
	if !typeExistsInGen(gen, atk) || !typeExistsInGen(gen, def) {
		return 1
	}
	ai, ok1 := typeIndex[atk]
	di, ok2 := typeIndex[def]
	if !ok1 || !ok2 {
		return 1
	}
	return float64(chart[ai][di]) / 8
}

func typeExistsInGen(gen int, t battle.PokemonType) bool {
	switch t {
	case battle.TypeSteel, battle.TypeDark:
		return gen >= 2
	case battle.TypeFairy:
		return gen >= 6
	default:
		return true
	}
}

// CombinedEffectiveness multiplies the attacking type's effectiveness
// against both of the defender's types (TypeNone contributes x1).
func CombinedEffectiveness(gen int, atk battle.PokemonType, def [2]battle.PokemonType) float64 {
	mult := Effectiveness(gen, atk, def[0])
	if def[1] != battle.TypeNone && def[1] != def[0] {
		mult *= Effectiveness(gen, atk, def[1])
	}
	return mult
}
