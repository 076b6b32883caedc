// Package damage implements the generation-branched damage formula and
// its fixed modifier pipeline (spec §4.2), grounded on the teacher's
// tactical/combat damage resolution (tactical/combatresolution/resolution.go)
// for the "context struct in, integer out, pure function" shape, and
// reusing its injected-*rand.Rand convention for any randomness needed
// outside of explicit roll_index selection.
package damage

import (
	"battlecore/battle"
	"battlecore/format"
	"battlecore/repo"
)

// RollMode selects which damage roll(s) compute should return.
type RollMode int

const (
	RollAverage RollMode = iota
	RollMin
	RollMax
	RollAllSixteen
)

// StatOverride lets a caller substitute the stat actually read for A or
// D before the formula runs, for moves whose effect function swaps the
// normal Attack/Defense selection (Body Press, Foul Play, the
// Psyshock family).
type StatOverride struct {
	UseAttackStat  battle.Stat // zero value battle.StatHP means "no override"
	UseDefenseStat battle.Stat
	AttackOwner    *battle.Pokemon // Foul Play reads the *target's* Attack
}

// DamageContext carries every input the formula and modifier pipeline
// need, per spec §4.2.
type DamageContext struct {
	Attacker     *battle.Pokemon
	Defender     *battle.Pokemon
	AttackerItem repo.ItemData
	AttackerHas  repo.AbilityData
	DefenderItem repo.ItemData
	DefenderHas  repo.AbilityData

	Move repo.MoveData

	Field      *battle.Field
	DefenderSideConditions map[battle.SideCondition]int

	Generation format.Generation
	TargetCount int // number of positions this action is hitting this resolution pass
	IsSpreadTag bool

	IsCritical bool
	RollIndex  int // 0..16, meaningful only when roll mode asks for a specific roll

	Override StatOverride

	// Infiltrator lets screens/substitute be bypassed; set by the
	// caller after consulting AttackerHas.
	Infiltrator bool
}

// Result is the pipeline's full accounting for one computed hit,
// including which modifiers fired. battlelog does not record it.
type Result struct {
	Damage        int
	Effectiveness float64
	HadNoEffect   bool
	Modifiers     []string
}
