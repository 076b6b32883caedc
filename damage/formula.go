package damage

import (
	"math"

	"battlecore/battle"
	"battlecore/format"
	"battlecore/repo"
)

// pokeRound implements Pokemon Showdown's half-to-even rounding used at
// each step of the modifier chain, per spec §4.2.
func pokeRound(v float64) int {
	floor := math.Floor(v)
	frac := v - floor
	switch {
	case frac < 0.5:
		return int(floor)
	case frac > 0.5:
		return int(floor) + 1
	default:
		if int(floor)%2 == 0 {
			return int(floor)
		}
		return int(floor) + 1
	}
}

// Compute is the single entry point the effect registry calls (spec
// §4.2 contract): generation dispatch, then the fixed 11-step modifier
// pipeline.
func Compute(ctx DamageContext) Result {
	switch {
	case ctx.Generation == format.Gen1:
		return computeGen1(ctx)
	case ctx.Generation <= format.Gen5:
		return computeGenModern(ctx, gen2to5Rules{})
	case ctx.Generation == format.Gen6:
		return computeGenModern(ctx, gen6Rules{})
	default:
		return computeGenModern(ctx, gen7PlusRules{gen: ctx.Generation})
	}
}

// genRules captures the handful of per-generation constants the core
// formula branches on (spec §4.2 dispatcher paragraph), so the bulk of
// the pipeline is written once against the Gen2+ reference formula.
type genRules interface {
	critMultiplier() float64
	terrainMultiplier() float64
}

type gen2to5Rules struct{}

func (gen2to5Rules) critMultiplier() float64 { return 2.0 }
func (gen2to5Rules) terrainMultiplier() float64 { return 1.0 } // terrain didn't exist yet

type gen6Rules struct{}

func (gen6Rules) critMultiplier() float64    { return 1.5 }
func (gen6Rules) terrainMultiplier() float64 { return 1.0 }

type gen7PlusRules struct{ gen format.Generation }

func (gen7PlusRules) critMultiplier() float64 { return 1.5 }
func (r gen7PlusRules) terrainMultiplier() float64 {
	if r.gen == format.Gen7 {
		return 1.5
	}
	return 1.3
}

// computeGen1 implements the Gen 1 formula: raw stats (no boosts
// applied on a crit -- Gen 1 crits instead use the unboosted base
// stat), a single "Special" stat shared by SpA/SpD, and the x2 crit
// multiplier. Spec §4.2 calls these out explicitly as the Gen 1
// deviation from the Gen2+ reference formula.
func computeGen1(ctx DamageContext) Result {
	level := ctx.Attacker.Level
	power := effectivePower(ctx)
	if power == 0 {
		return Result{Damage: 0}
	}

	atkStat, defStat := atkStatFor(ctx.Move.Category), defStatFor(ctx.Move.Category)
	a := float64(ctx.Attacker.Base.Atk)
	d := float64(ctx.Defender.Base.Def)
	if ctx.Move.Category == repo.Special {
		// The single Special stat is carried in the SpA field on both sides.
		defStat = battle.StatSpA
		a = float64(ctx.Attacker.Base.SpA)
		d = float64(ctx.Defender.Base.SpA)
	}
	if !ctx.IsCritical {
		a = float64(ctx.Attacker.BoostedStat(atkStat))
		d = float64(ctx.Defender.BoostedStat(defStat))
	}

	base := (((2*float64(level)/5 + 2) * float64(power) * a / d) / 50) + 2

	eff := repo.CombinedEffectiveness(1, ctx.Move.Type, ctx.Defender.Types)
	mods := []string{}

	if ctx.IsCritical {
		base *= 2.0
		mods = append(mods, "critical x2")
	}

	roll := float64(85+ctx.RollIndex) / 100
	base *= roll

	if stab(ctx) {
		base *= 1.5
		mods = append(mods, "STAB x1.5")
	}

	base *= eff

	dmg := pokeRound(base)
	if dmg < 1 && eff > 0 {
		dmg = 1
	}
	if eff == 0 {
		dmg = 0
	}
	return Result{Damage: dmg, Effectiveness: eff, HadNoEffect: eff == 0, Modifiers: mods}
}

func atkStatFor(cat repo.Category) battle.Stat {
	if cat == repo.Special {
		return battle.StatSpA
	}
	return battle.StatAtk
}

func defStatFor(cat repo.Category) battle.Stat {
	if cat == repo.Special {
		return battle.StatSpD
	}
	return battle.StatDef
}

// computeGenModern implements the Gen2+ reference formula from spec
// §4.2 with the fixed 11-step modifier chain, parameterized by the
// generation-specific constants in rules.
func computeGenModern(ctx DamageContext, rules genRules) Result {
	power := effectivePower(ctx)
	if power == 0 {
		return Result{Damage: 0}
	}

	a, d := attackDefenseStats(ctx)
	level := float64(ctx.Attacker.Level)

	base := (((2*level/5 + 2) * float64(power) * a / d) / 50) + 2
	var mods []string

	// 1. Spread
	if ctx.IsSpreadTag && ctx.TargetCount >= 2 {
		base = float64(pokeRound(base * 0.75))
		mods = append(mods, "spread x0.75")
	}

	// 2. Weather
	if wm := weatherMultiplier(ctx); wm != 1 {
		base = float64(pokeRound(base * wm))
		mods = append(mods, "weather")
	}

	// 3. Critical
	if ctx.IsCritical {
		base = float64(pokeRound(base * rules.critMultiplier()))
		mods = append(mods, "critical")
	}

	// 4. Random roll
	roll := float64(85+ctx.RollIndex) / 100
	base = float64(pokeRound(base * roll))

	// 5. STAB
	if stabMult := stabMultiplier(ctx); stabMult != 1 {
		base = float64(pokeRound(base * stabMult))
		mods = append(mods, "STAB")
	}

	// 6. Type effectiveness
	eff := effectiveness(ctx)
	base *= eff

	// 7. Burn
	if burnPenaltyApplies(ctx) {
		base = float64(pokeRound(base * 0.5))
		mods = append(mods, "burn x0.5")
	}

	// 8. Screens
	if screenMult := screenMultiplier(ctx); screenMult != 1 {
		base = float64(pokeRound(base * screenMult))
		mods = append(mods, "screen")
	}

	// 9. Item modifiers
	if itemMult := itemDamageMultiplier(ctx, eff); itemMult != 1 {
		base = float64(pokeRound(base * itemMult))
		mods = append(mods, "item")
	}

	// 10. Ability modifiers
	if abilityMult := abilityDamageMultiplier(ctx, eff); abilityMult != 1 {
		base = float64(pokeRound(base * abilityMult))
		mods = append(mods, "ability")
	}

	// 11. Floor
	dmg := int(base)
	if eff == 0 {
		dmg = 0
	} else if dmg < 1 {
		dmg = 1
	}

	return Result{Damage: dmg, Effectiveness: eff, HadNoEffect: eff == 0, Modifiers: mods}
}

func effectivePower(ctx DamageContext) int {
	return ctx.Move.BasePower
}

func attackDefenseStats(ctx DamageContext) (a, d float64) {
	atkStat := atkStatFor(ctx.Move.Category)
	defStat := defStatFor(ctx.Move.Category)
	if ctx.Override.UseAttackStat != battle.StatHP {
		atkStat = ctx.Override.UseAttackStat
	}
	if ctx.Override.UseDefenseStat != battle.StatHP {
		defStat = ctx.Override.UseDefenseStat
	}

	attacker := ctx.Attacker
	if ctx.Override.AttackOwner != nil {
		attacker = ctx.Override.AttackOwner
	}

	aBoost := attacker.Boosts[atkStat]
	dBoost := ctx.Defender.Boosts[defStat]
	if ctx.IsCritical {
		// Gen 2+: ignore a negative attacker boost, ignore a positive
		// defender boost, on a crit.
		if aBoost < 0 {
			aBoost = 0
		}
		if dBoost > 0 {
			dBoost = 0
		}
	}

	a = float64(attacker.RawStat(atkStat)) * battle.BoostMultiplier(aBoost, false)
	d = float64(ctx.Defender.RawStat(defStat)) * battle.BoostMultiplier(dBoost, false)
	return a, d
}

func stab(ctx DamageContext) bool {
	return stabMultiplier(ctx) != 1
}

// stabMultiplier implements spec §4.2 step 5, including the
// Terastallize interaction: x2 if the move type matches both the tera
// type and an original type, x1.5 if it matches only one, and
// Adaptability bumping x1.5->x2 or x2->x2.25.
func stabMultiplier(ctx DamageContext) float64 {
	p := ctx.Attacker
	matchesOriginal := p.OriginalTypes[0] == ctx.Move.Type || p.OriginalTypes[1] == ctx.Move.Type
	matchesTera := p.Terastallized && p.TeraType == ctx.Move.Type

	var mult float64
	switch {
	case matchesTera && matchesOriginal:
		mult = 2.0
	case matchesTera || matchesOriginal:
		mult = 1.5
	default:
		return 1
	}

	if ctx.AttackerHas.ID == "adaptability" {
		if mult == 2.0 {
			mult = 2.25
		} else {
			mult = 2.0
		}
	}
	return mult
}

func effectiveness(ctx DamageContext) float64 {
	eff := repo.CombinedEffectiveness(int(ctx.Generation), ctx.Move.Type, ctx.Defender.Types)
	if ctx.Move.ID == "freezedry" {
		eff = 2 * repo.CombinedEffectiveness(int(ctx.Generation), battle.TypeIce, [2]battle.PokemonType{battle.TypeWater, battle.TypeNone})
	}
	if ctx.Move.Type == battle.TypeGround && groundImmune(ctx) {
		eff = 0
	}
	if ctx.Field != nil && ctx.Field.Inverse && eff != 0 {
		eff = invertEffectiveness(eff)
	}
	return eff
}

// groundImmune reports whether the defender is immune to Ground
// damage through Levitate or a held Air Balloon, on top of the type
// chart's own Flying immunity -- neither is a type, so CombinedEffectiveness
// never sees them (spec §8.3 Air Balloon: damage 0, balloon remains
// held). Nothing in this module pops the balloon when its holder is
// hit; it stays held for the rest of the battle.
func groundImmune(ctx DamageContext) bool {
	if ctx.Move.Flags.Has(repo.FlagIgnoreImmunity) {
		return false
	}
	if ctx.DefenderHas.ID == "levitate" {
		return true
	}
	if ctx.DefenderItem.ID == "airballoon" {
		return true
	}
	return false
}

func invertEffectiveness(eff float64) float64 {
	switch {
	case eff > 1:
		return 1 / eff
	case eff < 1:
		return 1 / eff
	default:
		return 1
	}
}

func weatherMultiplier(ctx DamageContext) float64 {
	if ctx.Field == nil {
		return 1
	}
	switch ctx.Field.Weather.Kind {
	case battle.WeatherSun:
		if ctx.Move.Type == battle.TypeFire {
			return 1.5
		}
		if ctx.Move.Type == battle.TypeWater {
			return 0.5
		}
	case battle.WeatherRain:
		if ctx.Move.Type == battle.TypeWater {
			return 1.5
		}
		if ctx.Move.Type == battle.TypeFire {
			return 0.5
		}
	case battle.WeatherHarshSun:
		if ctx.Move.Type == battle.TypeFire {
			return 1.5
		}
		if ctx.Move.Type == battle.TypeWater {
			return 0
		}
	case battle.WeatherHeavyRain:
		if ctx.Move.Type == battle.TypeWater {
			return 1.5
		}
		if ctx.Move.Type == battle.TypeFire {
			return 0
		}
	}
	return 1
}

func burnPenaltyApplies(ctx DamageContext) bool {
	if ctx.Generation < format.Gen3 {
		return false
	}
	if ctx.Move.Category != repo.Physical {
		return false
	}
	if ctx.Attacker.Status != battle.StatusBurn {
		return false
	}
	if ctx.AttackerHas.ID == "guts" {
		return false
	}
	if ctx.Move.ID == "facade" {
		return false
	}
	return true
}

func screenMultiplier(ctx DamageContext) float64 {
	if ctx.IsCritical || ctx.Infiltrator {
		return 1
	}
	var cond battle.SideCondition
	if ctx.Move.Category == repo.Physical {
		cond = battle.CondReflect
	} else {
		cond = battle.CondLightScreen
	}
	if ctx.DefenderSideConditions[cond] <= 0 && ctx.DefenderSideConditions[battle.CondAuroraVeil] <= 0 {
		return 1
	}
	if ctx.IsSpreadTag && ctx.TargetCount >= 2 {
		return 2732.0 / 4096.0
	}
	return 0.5
}

func itemDamageMultiplier(ctx DamageContext, eff float64) float64 {
	mult := 1.0
	switch ctx.AttackerItem.ID {
	case "lifeorb":
		mult *= 1.3
	case "expertbelt":
		if eff > 1 {
			mult *= 1.2
		}
	}
	switch ctx.DefenderItem.ID {
	case "chilanberry":
		if ctx.Move.Type == battle.TypeNormal {
			mult *= 0.5
		}
	}
	if eff > 1 && isTypeResistBerry(ctx.DefenderItem, ctx.Move.Type) {
		mult *= 0.5
	}
	return mult
}

func isTypeResistBerry(item repo.ItemData, t battle.PokemonType) bool {
	return false // seed fixture set carries no resist berries yet; extend the table when one is added
}

func abilityDamageMultiplier(ctx DamageContext, eff float64) float64 {
	mult := 1.0
	switch ctx.AttackerHas.ID {
	case "technician":
		if ctx.Move.BasePower <= 60 {
			mult *= 1.5
		}
	case "ironfist":
		if ctx.Move.Flags.Has(repo.FlagPunch) {
			mult *= 1.2
		}
	case "guts":
		if ctx.Attacker.Status != battle.StatusNone {
			mult *= 1.5
		}
	case "punkrock":
		if ctx.Move.Flags.Has(repo.FlagSound) {
			mult *= 1.3
		}
	}
	switch ctx.DefenderHas.ID {
	case "filter", "solidrock", "prismarmor":
		if eff > 1 {
			mult *= 0.75
		}
	case "multiscale", "shadowshield":
		if ctx.Defender.CurrentHP == ctx.Defender.MaxHP {
			mult *= 0.5
		}
	case "thickfat":
		if ctx.Move.Type == battle.TypeFire || ctx.Move.Type == battle.TypeIce {
			mult *= 0.5
		}
	case "punkrock":
		if ctx.Move.Flags.Has(repo.FlagSound) {
			mult *= 0.5
		}
	}
	return mult
}
