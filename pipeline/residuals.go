package pipeline

import (
	"battlecore/battle"
	"battlecore/effects"
	"battlecore/repo"
)

// residualStep runs one of the fixed twelve end-of-turn steps from spec
// §4.4 Phase 5, returning probability-weighted branches for that step
// alone. Steps are applied in sequence by runResiduals, each step's
// single-probability-mass output combined into the growing turn result
// via battle.Combine -- mirroring how Phase 3 actions combine.
type residualStep func(st *battle.State, repos *repo.Repositories) []battle.BattleInstructions

// runResiduals executes the twelve residual steps in the spec's fixed
// order: weather, terrain, future sight/doom desire, wish, side
// conditions, major status, volatile residuals, items, abilities, forme
// changes, room/gravity decrement, faint-check.
func runResiduals(st *battle.State, repos *repo.Repositories) []battle.BattleInstructions {
	steps := []residualStep{
		weatherResidual,
		terrainResidual,
		futureMoveResidual,
		wishResidual,
		sideConditionResidual,
		majorStatusResidual,
		volatileResidual,
		itemResidual,
		abilityResidual,
		formeChangeResidual,
		roomGravityResidual,
		faintResidual,
	}
	result := []battle.BattleInstructions{{Probability: 100}}
	for _, step := range steps {
		result = battle.Combine(result, step(st, repos))
	}
	return result
}

func certain(instrs ...battle.Instruction) []battle.BattleInstructions {
	return []battle.BattleInstructions{{Probability: 100, Instructions: instrs}}
}

func weatherResidual(st *battle.State, repos *repo.Repositories) []battle.BattleInstructions {
	w := st.Field.Weather
	if w.Kind == battle.WeatherNone {
		return certain()
	}
	var instrs []battle.Instruction
	for _, side := range st.Sides {
		for slot := range side.Active {
			pos := battle.Position{Side: side.ID, Slot: slot}
			p := st.At(pos)
			if p == nil || p.Fainted {
				continue
			}
			if (w.Kind == battle.WeatherSand && !isType(p, battle.TypeRock, battle.TypeGround, battle.TypeSteel)) ||
				(w.Kind == battle.WeatherHail && !isType(p, battle.TypeIce)) {
				dmg := p.MaxHP / 16
				if dmg < 1 {
					dmg = 1
				}
				instrs = append(instrs, battle.NewDamage(st, pos, dmg))
			}
		}
	}
	if w.TurnsRemaining != nil {
		instrs = append(instrs, battle.DecrementDuration{Field: battle.DurationWeather})
	}
	return certain(instrs...)
}

func terrainResidual(st *battle.State, repos *repo.Repositories) []battle.BattleInstructions {
	t := st.Field.TerrainSt
	if t.Kind == battle.TerrainNone {
		return certain()
	}
	var instrs []battle.Instruction
	if t.Kind == battle.TerrainGrassy {
		for _, side := range st.Sides {
			for slot := range side.Active {
				pos := battle.Position{Side: side.ID, Slot: slot}
				p := st.At(pos)
				if p == nil || p.Fainted || p.CurrentHP >= p.MaxHP {
					continue
				}
				heal := p.MaxHP / 16
				if heal < 1 {
					heal = 1
				}
				instrs = append(instrs, battle.NewHeal(st, pos, heal))
			}
		}
	}
	if t.TurnsRemaining != nil {
		instrs = append(instrs, battle.DecrementDuration{Field: battle.DurationTerrain})
	}
	return certain(instrs...)
}

// futureMoveResidual is a documented simplification: Future Sight/Doom
// Desire delayed hits are not in the seed move set, so this step is a
// structural no-op kept to preserve the spec's fixed step ordering for
// when those moves are added.
func futureMoveResidual(st *battle.State, repos *repo.Repositories) []battle.BattleInstructions {
	return certain()
}

// wishResidual is likewise a structural placeholder: Wish is not in the
// seed move set.
func wishResidual(st *battle.State, repos *repo.Repositories) []battle.BattleInstructions {
	return certain()
}

func sideConditionResidual(st *battle.State, repos *repo.Repositories) []battle.BattleInstructions {
	var instrs []battle.Instruction
	for _, side := range st.Sides {
		for cond := range side.Conditions {
			switch cond {
			case battle.CondTailwind, battle.CondReflect, battle.CondLightScreen, battle.CondAuroraVeil:
				instrs = append(instrs, battle.DecrementSideCondition{Side: side.ID, Cond: cond})
			}
		}
	}
	return certain(instrs...)
}

func majorStatusResidual(st *battle.State, repos *repo.Repositories) []battle.BattleInstructions {
	var instrs []battle.Instruction
	for _, side := range st.Sides {
		for slot := range side.Active {
			pos := battle.Position{Side: side.ID, Slot: slot}
			p := st.At(pos)
			if p == nil || p.Fainted {
				continue
			}
			switch p.Status {
			case battle.StatusBurn:
				instrs = append(instrs, battle.NewDamage(st, pos, fractionOfMax(p, 16)))
			case battle.StatusPoison:
				instrs = append(instrs, battle.NewDamage(st, pos, fractionOfMax(p, 8)))
			case battle.StatusBadlyPoisoned:
				counter := p.StatusDur + 1
				dmg := p.MaxHP * counter / 16
				if dmg < 1 {
					dmg = 1
				}
				instrs = append(instrs, battle.NewDamage(st, pos, dmg))
			}
		}
	}
	return certain(instrs...)
}

func fractionOfMax(p *battle.Pokemon, denom int) int {
	dmg := p.MaxHP / denom
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

func isType(p *battle.Pokemon, types ...battle.PokemonType) bool {
	for _, t := range types {
		if p.Types[0] == t || p.Types[1] == t {
			return true
		}
	}
	return false
}

// volatileResidual handles Leech Seed, the only volatile residual in
// the seed effect set; Curse/Nightmare/Perish Song/Uproar/Slow
// Start/Taunt/Encore/Disable/Yawn have no residual handling here.
func volatileResidual(st *battle.State, repos *repo.Repositories) []battle.BattleInstructions {
	var instrs []battle.Instruction
	for _, side := range st.Sides {
		for slot := range side.Active {
			pos := battle.Position{Side: side.ID, Slot: slot}
			p := st.At(pos)
			if p == nil || p.Fainted || !p.Volatiles.Has(battle.VolLeechSeed) {
				continue
			}
			dmg := fractionOfMax(p, 8)
			instrs = append(instrs, battle.NewDamage(st, pos, dmg))
			opp := st.Side(side.ID.Opponent())
			if opp != nil {
				for oslot := range opp.Active {
					opos := battle.Position{Side: opp.ID, Slot: oslot}
					if op := st.At(opos); op != nil && !op.Fainted {
						instrs = append(instrs, battle.NewHeal(st, opos, dmg))
						break
					}
				}
			}
		}
	}
	return certain(instrs...)
}

func itemResidual(st *battle.State, repos *repo.Repositories) []battle.BattleInstructions {
	result := []battle.BattleInstructions{{Probability: 100}}
	for _, side := range st.Sides {
		for slot := range side.Active {
			pos := battle.Position{Side: side.ID, Slot: slot}
			p := st.At(pos)
			if p == nil || p.Fainted || p.Item == "" {
				continue
			}
			hooks, ok := effects.ItemEffect(repo.ItemID(p.Item))
			if !ok || hooks.OnResidual == nil {
				continue
			}
			branches := hooks.OnResidual(effects.EffectContext{
				State:      st,
				Repos:      repos,
				User:       pos,
				Targets:    []battle.Position{pos},
				Generation: st.Format.GenerationNumber(),
			})
			if len(branches) > 0 {
				result = battle.Combine(result, branches)
			}
		}
	}
	return result
}

func abilityResidual(st *battle.State, repos *repo.Repositories) []battle.BattleInstructions {
	result := []battle.BattleInstructions{{Probability: 100}}
	for _, side := range st.Sides {
		for slot := range side.Active {
			pos := battle.Position{Side: side.ID, Slot: slot}
			p := st.At(pos)
			if p == nil || p.Fainted || p.Ability == "" {
				continue
			}
			hooks, ok := effects.AbilityEffect(repo.AbilityID(p.Ability))
			if !ok || hooks.OnResidual == nil {
				continue
			}
			branches := hooks.OnResidual(effects.EffectContext{
				State:      st,
				Repos:      repos,
				User:       pos,
				Targets:    []battle.Position{pos},
				Generation: st.Format.GenerationNumber(),
			})
			if len(branches) > 0 {
				result = battle.Combine(result, branches)
			}
		}
	}
	return result
}

// formeChangeResidual is a structural placeholder: no forme-changing
// species (Cherrim, Castform-family, Zygarde) are in the seed species
// set.
func formeChangeResidual(st *battle.State, repos *repo.Repositories) []battle.BattleInstructions {
	return certain()
}

func roomGravityResidual(st *battle.State, repos *repo.Repositories) []battle.BattleInstructions {
	var instrs []battle.Instruction
	for cond, turns := range st.Field.Pseudo {
		if turns > 0 {
			instrs = append(instrs, battle.DecrementDuration{Field: battle.DurationPseudo, Pseudo: cond})
		}
	}
	return certain(instrs...)
}

func faintResidual(st *battle.State, repos *repo.Repositories) []battle.BattleInstructions {
	return certain(faintCheck(st)...)
}
