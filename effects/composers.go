package effects

import (
	"battlecore/battle"
	"battlecore/damage"
	"battlecore/format"
	"battlecore/repo"
)

// critChanceByStage starts at the modern (Gen 6+) base critical-hit
// chance of 1/24; CritRatio.StageBonus raises the stage the way Focus
// Energy/Scope Lens/high-crit moves stack (spec §4.2 critical
// multiplier paragraph; the chance table itself, unlike the
// multiplier, is not generation-branched in the spec so one table
// serves every generation here).
var critChanceByStage = []float64{1.0 / 24, 1.0 / 8, 1.0 / 2, 1.0, 1.0}

func critChance(move repo.MoveData) float64 {
	if move.Crit.AlwaysCrit {
		return 1
	}
	stage := move.Crit.StageBonus
	if stage < 0 {
		stage = 0
	}
	if stage >= len(critChanceByStage) {
		stage = len(critChanceByStage) - 1
	}
	return critChanceByStage[stage]
}

// accuracyChance resolves a move's hit chance against one target,
// folding in accuracy/evasion boost stages. A zero Accuracy field means
// the move bypasses the accuracy check entirely (spec §6 "0..=100 or
// bypass").
func accuracyChance(move repo.MoveData, attacker, defender *battle.Pokemon) float64 {
	if move.Accuracy <= 0 {
		return 1
	}
	accStage := attacker.Boosts[battle.StatAccuracy]
	evaStage := defender.Boosts[battle.StatEvasion]
	mult := battle.BoostMultiplier(accStage, true) / battle.BoostMultiplier(evaStage, true)
	chance := float64(move.Accuracy) / 100 * mult
	if chance > 1 {
		chance = 1
	}
	if chance < 0 {
		chance = 0
	}
	return chance
}

// simpleDamage is the workhorse composer named in spec §4.3: it builds
// the miss/hit x crit/non-crit x secondary-effect branch tree for a
// single-target or pre-resolved multi-target damaging move.
func simpleDamage(ctx EffectContext) []battle.BattleInstructions {
	var perTarget [][]battle.BattleInstructions
	for _, target := range ctx.Targets {
		perTarget = append(perTarget, damageOneTarget(ctx, target))
	}
	if len(perTarget) == 0 {
		return nil
	}
	return battle.Combine(perTarget...)
}

func damageOneTarget(ctx EffectContext, target battle.Position) []battle.BattleInstructions {
	attacker := ctx.State.At(ctx.User)
	defender := ctx.State.At(target)
	if attacker == nil || defender == nil {
		return nil
	}

	accChance := accuracyChance(ctx.Move, attacker, defender)
	var branches []battle.BattleInstructions
	if accChance < 1 {
		branches = append(branches, battle.BattleInstructions{
			Probability:       (1 - accChance) * 100,
			Instructions:      nil,
			AffectedPositions: []battle.Position{target},
		})
	}
	if accChance <= 0 {
		return branches
	}

	critP := critChance(ctx.Move)
	dctx := buildDamageContext(ctx, attacker, defender, target)

	var hitBranches []battle.BattleInstructions
	if critP > 0 {
		hitBranches = append(hitBranches, damageBranch(ctx, dctx, target, attacker, defender, true, accChance*critP*100)...)
	}
	if critP < 1 {
		hitBranches = append(hitBranches, damageBranch(ctx, dctx, target, attacker, defender, false, accChance*(1-critP)*100)...)
	}
	return append(branches, hitBranches...)
}

// damageBranch computes one crit/non-crit hit's damage, then branches
// further over the move's secondary effects (spec §4.3 "Secondary
// effects: a probability p ... branches into applies vs. does not"):
// each of Secondary and Secondary2 rolls independently, so a move with
// two secondaries (Ice Fang's freeze and flinch) yields up to four
// sub-branches, combined via the same Cartesian-product machinery the
// pipeline uses for independent actions.
func damageBranch(ctx EffectContext, dctx damage.DamageContext, target battle.Position, attacker, defender *battle.Pokemon, crit bool, probability float64) []battle.BattleInstructions {
	dctx.IsCritical = crit
	results := damage.ComputeRolls(dctx, damage.RollAverage)
	dmg := results[0].Damage

	base := []battle.BattleInstructions{{
		Probability:       100,
		Instructions:      []battle.Instruction{battle.NewDamage(ctx.State, target, dmg)},
		AffectedPositions: []battle.Position{target},
	}}

	sets := [][]battle.BattleInstructions{base}
	if b := secondaryBranch(ctx, target, attacker, defender, ctx.Move.Secondary); b != nil {
		sets = append(sets, b)
	}
	if b := secondaryBranch(ctx, target, attacker, defender, ctx.Move.Secondary2); b != nil {
		sets = append(sets, b)
	}

	combined := battle.Combine(sets...)
	out := make([]battle.BattleInstructions, len(combined))
	for i, b := range combined {
		out[i] = battle.BattleInstructions{
			Probability:       probability * b.Probability / 100,
			Instructions:      b.Instructions,
			AffectedPositions: []battle.Position{target},
		}
	}
	return out
}

func buildDamageContext(ctx EffectContext, attacker, defender *battle.Pokemon, target battle.Position) damage.DamageContext {
	var abilityData repo.AbilityData
	var itemData repo.ItemData
	var defAbility repo.AbilityData
	var defItem repo.ItemData
	if ctx.Repos != nil {
		abilityData, _ = ctx.Repos.Ability(repo.AbilityID(attacker.Ability))
		itemData, _ = ctx.Repos.Item(repo.ItemID(attacker.Item))
		defAbility, _ = ctx.Repos.Ability(repo.AbilityID(defender.Ability))
		defItem, _ = ctx.Repos.Item(repo.ItemID(defender.Item))
	}

	side := ctx.State.Side(target.Side)
	var sideConds map[battle.SideCondition]int
	if side != nil {
		sideConds = side.Conditions
	}

	spread := ctx.Move.TargetTag.IsSpread()

	return damage.DamageContext{
		Attacker:                attacker,
		Defender:                defender,
		AttackerItem:            itemData,
		AttackerHas:             abilityData,
		DefenderItem:            defItem,
		DefenderHas:             defAbility,
		Move:                    ctx.Move,
		Field:                   ctx.State.Field,
		DefenderSideConditions:  sideConds,
		Generation:              format.Generation(ctx.Generation),
		TargetCount:             len(ctx.Targets),
		IsSpreadTag:             spread,
	}
}

// secondaryBranch builds the applies-vs-does-not branch pair for one
// SecondaryEffect, folding in Serene Grace (doubles the attacker's
// proc chance) and Shield Dust (zeroes the defender's incoming proc
// chance) the way damage.abilityDamageMultiplier folds ability IDs
// directly rather than routing through a hook flag, and gating a
// status secondary on the same type-immunity table statusInflict
// uses. Returns nil for a nil sec so callers can skip it entirely
// (distinct from a branch set, which always sums to 100).
func secondaryBranch(ctx EffectContext, target battle.Position, attacker, defender *battle.Pokemon, sec *repo.SecondaryEffect) []battle.BattleInstructions {
	if sec == nil {
		return nil
	}
	chance := secondaryProcChance(sec.Chance, attacker, defender)
	if sec.Status != battle.StatusNone && hasType(defender, statusImmuneTypes(sec.Status)) {
		chance = 0
	}

	var instrs []battle.Instruction
	if sec.Status != battle.StatusNone {
		instrs = append(instrs, battle.NewApplyStatus(ctx.State, target, sec.Status, defaultStatusDuration(sec.Status)))
	}
	if sec.HasVol {
		instrs = append(instrs, battle.NewApplyVolatile(ctx.State, target, sec.Volatile, 0, false))
	}

	if chance <= 0 {
		return []battle.BattleInstructions{{Probability: 100, AffectedPositions: []battle.Position{target}}}
	}
	if chance >= 100 {
		return []battle.BattleInstructions{{Probability: 100, Instructions: instrs, AffectedPositions: []battle.Position{target}}}
	}
	return []battle.BattleInstructions{
		{Probability: 100 - chance, AffectedPositions: []battle.Position{target}},
		{Probability: chance, Instructions: instrs, AffectedPositions: []battle.Position{target}},
	}
}

// secondaryProcChance applies Serene Grace/Shield Dust to a base
// secondary-effect percentage, clamped to 0..100.
func secondaryProcChance(chance int, attacker, defender *battle.Pokemon) float64 {
	c := float64(chance)
	if attacker != nil && attacker.Ability == "serenegrace" {
		c *= 2
	}
	if defender != nil && defender.Ability == "shielddust" {
		c = 0
	}
	if c > 100 {
		c = 100
	}
	if c < 0 {
		c = 0
	}
	return c
}

// statusImmuneTypes names the type(s) spec §4.3 calls out as blocking
// a given major status outright (Electric vs paralysis, Poison/Steel
// vs poison, Fire vs burn, Ice vs freeze).
func statusImmuneTypes(status battle.Status) []battle.PokemonType {
	switch status {
	case battle.StatusParalysis:
		return []battle.PokemonType{battle.TypeElectric}
	case battle.StatusPoison, battle.StatusBadlyPoisoned:
		return []battle.PokemonType{battle.TypePoison, battle.TypeSteel}
	case battle.StatusBurn:
		return []battle.PokemonType{battle.TypeFire}
	case battle.StatusFreeze:
		return []battle.PokemonType{battle.TypeIce}
	default:
		return nil
	}
}

func hasType(p *battle.Pokemon, types []battle.PokemonType) bool {
	if p == nil {
		return false
	}
	for _, t := range types {
		if t == battle.TypeNone {
			continue
		}
		if p.Types[0] == t || p.Types[1] == t {
			return true
		}
	}
	return false
}

func defaultStatusDuration(s battle.Status) int {
	switch s {
	case battle.StatusSleep:
		return 2
	case battle.StatusBadlyPoisoned:
		return 0
	default:
		return 0
	}
}

// statusInflict is the composer for pure status moves (Will-O-Wisp,
// Thunder Wave), per spec §6's status_inflict(status, chance,
// immunities) signature: accuracy branch, then a type-immunity gate
// that collapses straight to a single 100% "failed" branch with no
// ApplyStatus instruction (spec §8.4's Will-O-Wisp-vs-Charizard case),
// then the chance-gated ApplyStatus itself.
func statusInflict(status battle.Status, chance int, immunities []battle.PokemonType) EffectFunc {
	return func(ctx EffectContext) []battle.BattleInstructions {
		var perTarget [][]battle.BattleInstructions
		for _, target := range ctx.Targets {
			attacker := ctx.State.At(ctx.User)
			defender := ctx.State.At(target)
			if attacker == nil || defender == nil {
				continue
			}
			if hasType(defender, immunities) {
				perTarget = append(perTarget, []battle.BattleInstructions{{
					Probability:       100,
					AffectedPositions: []battle.Position{target},
				}})
				continue
			}

			accChance := accuracyChance(ctx.Move, attacker, defender)
			procChance := accChance * clamp01(float64(chance)/100)

			var branches []battle.BattleInstructions
			if procChance < 1 {
				branches = append(branches, battle.BattleInstructions{Probability: (1 - procChance) * 100, AffectedPositions: []battle.Position{target}})
			}
			if procChance > 0 {
				branches = append(branches, battle.BattleInstructions{
					Probability:       procChance * 100,
					Instructions:      []battle.Instruction{battle.NewApplyStatus(ctx.State, target, status, defaultStatusDuration(status))},
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
}

func clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

// statBoost is the composer for pure self/target stat-stage moves
// (Swords Dance, Growl): no accuracy check for any target, single
// deterministic branch.
func statBoost(deltas battle.Boosts) EffectFunc {
	return func(ctx EffectContext) []battle.BattleInstructions {
		var instrs []battle.Instruction
		for _, target := range ctx.Targets {
			instrs = append(instrs, battle.NewBoostStats(ctx.State, target, deltas))
		}
		if len(instrs) == 0 {
			return nil
		}
		return []battle.BattleInstructions{{Probability: 100, Instructions: instrs, AffectedPositions: ctx.Targets}}
	}
}

// healing is the composer for flat self-heal moves (Recover, Roost);
// fraction is of max HP.
func healing(fraction repo.Fraction) EffectFunc {
	return func(ctx EffectContext) []battle.BattleInstructions {
		var instrs []battle.Instruction
		for _, target := range ctx.Targets {
			p := ctx.State.At(target)
			if p == nil {
				continue
			}
			amt := fraction.Apply(p.MaxHP)
			instrs = append(instrs, battle.NewHeal(ctx.State, target, amt))
		}
		if len(instrs) == 0 {
			return nil
		}
		return []battle.BattleInstructions{{Probability: 100, Instructions: instrs, AffectedPositions: ctx.Targets}}
	}
}

// weatherSet is the composer for weather-setting moves (Rain Dance,
// Sunny Day); duration is 5 turns baseline, 8 with the matching
// weather rock held (left to the move implementation to pass in).
func weatherSet(kind battle.WeatherKind, duration int) EffectFunc {
	return func(ctx EffectContext) []battle.BattleInstructions {
		turns := duration
		instr := battle.NewSetWeather(ctx.State, kind, &turns, nil)
		return []battle.BattleInstructions{{Probability: 100, Instructions: []battle.Instruction{instr}}}
	}
}

// terrainSet mirrors weatherSet for terrain-setting moves.
func terrainSet(kind battle.TerrainKind, duration int) EffectFunc {
	return func(ctx EffectContext) []battle.BattleInstructions {
		turns := duration
		instr := battle.NewSetTerrain(ctx.State, kind, &turns, nil)
		return []battle.BattleInstructions{{Probability: 100, Instructions: []battle.Instruction{instr}}}
	}
}

// hazardSet is the composer for entry hazard moves (Stealth Rock,
// Spikes, Toxic Spikes); each use adds one layer, up to maxLayers
// (Spikes/Toxic Spikes accumulate, Stealth Rock/Sticky Web are single-layer).
func hazardSet(cond battle.SideCondition, maxLayers int) EffectFunc {
	return func(ctx EffectContext) []battle.BattleInstructions {
		var instrs []battle.Instruction
		for _, target := range ctx.Targets {
			side := ctx.State.Side(target.Side)
			if side == nil {
				continue
			}
			current := side.Conditions[cond]
			if current >= maxLayers {
				continue
			}
			instrs = append(instrs, battle.NewSetSideCondition(ctx.State, target.Side, cond, current+1))
		}
		if len(instrs) == 0 {
			return []battle.BattleInstructions{{Probability: 100}} // already at max layers: no-op success
		}
		return []battle.BattleInstructions{{Probability: 100, Instructions: instrs, AffectedPositions: ctx.Targets}}
	}
}

// hazardClear is the composer for hazard-removal moves (Rapid Spin,
// Defog).
func hazardClear(conds ...battle.SideCondition) EffectFunc {
	return func(ctx EffectContext) []battle.BattleInstructions {
		var instrs []battle.Instruction
		for _, target := range ctx.Targets {
			side := ctx.State.Side(target.Side)
			if side == nil {
				continue
			}
			for _, c := range conds {
				if side.Conditions[c] > 0 {
					instrs = append(instrs, battle.NewSetSideCondition(ctx.State, target.Side, c, 0))
				}
			}
		}
		return []battle.BattleInstructions{{Probability: 100, Instructions: instrs, AffectedPositions: ctx.Targets}}
	}
}

// fieldDependentPower is the composer for moves whose base power
// changes with weather/terrain (Solar Beam's charge skip in sun,
// Weather Ball's type+power change): it builds a patched MoveData via
// patch and delegates to simpleDamage.
func fieldDependentPower(patch func(ctx EffectContext, move repo.MoveData) repo.MoveData) EffectFunc {
	return func(ctx EffectContext) []battle.BattleInstructions {
		patched := ctx
		patched.Move = patch(ctx, ctx.Move)
		return simpleDamage(patched)
	}
}
