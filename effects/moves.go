package effects

import (
	"battlecore/battle"
)

// registerAllMoves wires the representative move set named in
// SPEC_FULL.md to the composers above, covering each of spec §8's
// scenario categories: pure damage (Tackle), weather-boosted special
// damage (Thunder), spread damage (Earthquake), guaranteed status
// (Will-O-Wisp), secondary-flinch damage (Ice Fang), protect
// interaction (Protect), and the no-PP-moves-left fallback (Struggle),
// plus the field-setting/stat-boosting/hazard moves needed to exercise
// the remaining composers.
func registerAllMoves() {
	RegisterMove("tackle", simpleDamage)
	RegisterMove("thunder", simpleDamage)
	RegisterMove("earthquake", simpleDamage)
	RegisterMove("icefang", simpleDamage)
	RegisterMove("struggle", struggleEffect)
	RegisterMove("solarbeam", simpleDamage)

	RegisterMove("willowisp", statusInflict(battle.StatusBurn, 100, statusImmuneTypes(battle.StatusBurn)))
	RegisterMove("leechseed", leechSeedEffect)
	RegisterMove("protect", protectEffect)

	RegisterMove("swordsdance", statBoost(battle.Boosts{battle.StatAtk: 2}))
	RegisterMove("raindance", weatherSet(battle.WeatherRain, 5))
	RegisterMove("stealthrock", hazardSet(battle.CondStealthRock, 1))
}

// struggleEffect delegates to simpleDamage for the damage roll, then
// layers on recoil equal to the move's Recoil fraction (1/4 in the
// seed data) of the damage dealt in each branch that hit. No ability
// or item is consulted for the recoil.
func struggleEffect(ctx EffectContext) []battle.BattleInstructions {
	branches := simpleDamage(ctx)
	user := ctx.State.At(ctx.User)
	if user == nil {
		return branches
	}
	recoil := ctx.Move.Recoil
	if recoil == nil {
		return branches
	}
	for i, b := range branches {
		if len(b.Instructions) == 0 {
			continue // miss branch: no recoil
		}
		dmgDealt := struggleDamageDealt(b.Instructions)
		amt := recoil.Apply(dmgDealt)
		if amt <= 0 {
			continue
		}
		branches[i].Instructions = append(branches[i].Instructions, battle.NewDamage(ctx.State, ctx.User, amt))
		branches[i].AffectedPositions = append(branches[i].AffectedPositions, ctx.User)
	}
	return branches
}

func struggleDamageDealt(instrs []battle.Instruction) int {
	for _, ins := range instrs {
		if d, ok := ins.(battle.Damage); ok {
			return d.Amount
		}
	}
	return 0
}

// leechSeedEffect applies the Leech Seed volatile on hit; the
// end-of-turn HP transfer itself is a residual step owned by the
// pipeline, not the move's own effect function (spec §4.4 Phase 5).
func leechSeedEffect(ctx EffectContext) []battle.BattleInstructions {
	return statusVolatileOnHit(ctx, battle.VolLeechSeed)
}

func statusVolatileOnHit(ctx EffectContext, flag battle.VolatileFlag) []battle.BattleInstructions {
	var perTarget [][]battle.BattleInstructions
	for _, target := range ctx.Targets {
		attacker := ctx.State.At(ctx.User)
		defender := ctx.State.At(target)
		if attacker == nil || defender == nil {
			continue
		}
		accChance := accuracyChance(ctx.Move, attacker, defender)
		var branches []battle.BattleInstructions
		if accChance < 1 {
			branches = append(branches, battle.BattleInstructions{Probability: (1 - accChance) * 100, AffectedPositions: []battle.Position{target}})
		}
		if accChance > 0 {
			branches = append(branches, battle.BattleInstructions{
				Probability:       accChance * 100,
				Instructions:      []battle.Instruction{battle.NewApplyVolatile(ctx.State, target, flag, 0, false)},
				AffectedPositions: []battle.Position{target},
			})
		}
		perTarget = append(perTarget, branches)
	}
	if len(perTarget) == 0 {
		return nil
	}
	return battle.Combine(perTarget...)
}

// protectEffect sets the protect volatile on the user, with the
// consecutive-use attenuation of protectSuccessChance applied to the
// user's slot entry in Side.ProtectCounter. No instruction in this
// module updates ProtectCounter, so it stays at its initial value
// across turns.
func protectEffect(ctx EffectContext) []battle.BattleInstructions {
	user := ctx.State.At(ctx.User)
	if user == nil {
		return nil
	}
	side := ctx.State.Side(ctx.User.Side)
	successChance := protectSuccessChance(side.ProtectCounter[ctx.User.Slot])

	var branches []battle.BattleInstructions
	if successChance < 100 {
		branches = append(branches, battle.BattleInstructions{Probability: 100 - successChance, AffectedPositions: []battle.Position{ctx.User}})
	}
	branches = append(branches, battle.BattleInstructions{
		Probability:       successChance,
		Instructions:      []battle.Instruction{battle.NewApplyVolatile(ctx.State, ctx.User, battle.VolProtect, 1, true)},
		AffectedPositions: []battle.Position{ctx.User},
	})
	return branches
}

// protectSuccessChance implements the attenuation table the Open
// Questions section resolves: {100,33,11,4,1,0.33}% for 0..5 prior
// consecutive successes, then a third of the previous value for each
// further success (about 0.11% after six).
func protectSuccessChance(consecutiveSuccesses int) float64 {
	table := []float64{100, 33, 11, 4, 1, 0.33}
	if consecutiveSuccesses < len(table) {
		return table[consecutiveSuccesses]
	}
	chance := table[len(table)-1]
	for i := len(table) - 1; i < consecutiveSuccesses; i++ {
		chance /= 3
	}
	return chance
}
