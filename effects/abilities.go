package effects

import "battlecore/battle"

// registerAllAbilities wires the seed ability set's hooks. Static's
// paralysis-on-contact chance is a genuine OnContactMade hook, fired
// by the pipeline's after-move trigger pass (spec §4.4 Phase 3 step
// 7); Levitate's Ground immunity is a damage-formula check
// (damage.groundImmune), not a hook, so it stays a no-op marker here;
// Guts and Multiscale are damage modifiers already implemented
// directly in damage.abilityDamageMultiplier; Serene Grace and Shield
// Dust are read directly off the Pokemon's Ability field by
// effects.secondaryProcChance rather than through a hook slot, the
// same direct-ID-check style damage/formula.go uses for Technician/Iron
// Fist/Guts. All four of the latter keep an entry here only so
// AbilityEffect(id) resolves to a registered (if empty) entry instead
// of "unknown ability".
func registerAllAbilities() {
	RegisterAbility("static", AbilityHooks{OnContactMade: staticOnContact})
	RegisterAbility("levitate", AbilityHooks{})
	RegisterAbility("guts", AbilityHooks{})
	RegisterAbility("multiscale", AbilityHooks{})
	RegisterAbility("serenegrace", AbilityHooks{})
	RegisterAbility("shielddust", AbilityHooks{})
}

// staticOnContact implements Static's 30% paralysis-on-contact: a
// two-branch split, paralysis blocked by Electric immunity the same
// way any other paralysis application is (statusImmuneTypes).
func staticOnContact(ctx EffectContext, target, attacker battle.Position) []battle.BattleInstructions {
	if ctx.State.At(target) == nil {
		return nil
	}
	contacter := ctx.State.At(attacker)
	if contacter == nil {
		return nil
	}
	if hasType(contacter, statusImmuneTypes(battle.StatusParalysis)) {
		return []battle.BattleInstructions{{Probability: 100}}
	}
	if contacter.Status != battle.StatusNone {
		return []battle.BattleInstructions{{Probability: 100}}
	}
	return []battle.BattleInstructions{
		{Probability: 70},
		{
			Probability:       30,
			Instructions:      []battle.Instruction{battle.NewApplyStatus(ctx.State, attacker, battle.StatusParalysis, 0)},
			AffectedPositions: []battle.Position{attacker},
		},
	}
}
