// Package effects implements the move/ability/item effect registry
// (spec §4.3): a map from ID to a pure function producing
// BattleInstructions, plus composers for common patterns. Grounded on
// the teacher's perk hook registry (tactical/perks/hook_registry.go),
// generalized from one registry of optional hook slots per perk ID to
// three registries of single effect functions per move/ability/item
// ID.
package effects

import (
	"battlecore/battle"
	"battlecore/repo"
)

// EffectContext bundles everything an effect function needs beyond the
// state itself: the resolved move data, the acting position, the
// resolved target positions, the repositories for secondary lookups,
// and the generation. It carries no RNG: effect functions express
// probability rolls as probability branches.
type EffectContext struct {
	State      *battle.State
	Repos      *repo.Repositories
	User       battle.Position
	Targets    []battle.Position
	Move       repo.MoveData
	Generation int
}

// EffectFunc is the move/ability/item effect function signature from
// spec §4.3: state in, a set of probability-weighted instruction
// branches out. Pure: it never mutates State directly, only returns
// instructions for the caller to apply.
type EffectFunc func(ctx EffectContext) []battle.BattleInstructions

var moveRegistry = map[repo.MoveID]EffectFunc{}
var abilityRegistry = map[repo.AbilityID]AbilityHooks{}
var itemRegistry = map[repo.ItemID]ItemHooks{}

// RegisterMove registers an effect function for a move ID.
func RegisterMove(id repo.MoveID, fn EffectFunc) {
	moveRegistry[id] = fn
}

// MoveEffect returns the registered effect function for a move, or nil
// if none is registered. The pipeline surfaces a nil result as
// battleerr.Unimplemented rather than guessing at behavior.
func MoveEffect(id repo.MoveID) EffectFunc {
	return moveRegistry[id]
}

// AbilityHooks collects the hook points one ability can participate in,
// mirroring PerkHooks: an ability only populates the hooks it needs,
// nil slots are skipped by callers.
type AbilityHooks struct {
	OnSwitchIn          func(ctx EffectContext) []battle.BattleInstructions
	OnModifyDamageDealt  func(ctx EffectContext, dmg int) int
	OnModifyDamageTaken  func(ctx EffectContext, dmg int) int
	OnResidual           func(ctx EffectContext) []battle.BattleInstructions
	OnFaint              func(ctx EffectContext) []battle.BattleInstructions
	// OnContactMade fires once per contact-move hit landed on the
	// ability's holder (Static, Flame Body, Rough Skin; ItemHooks has
	// no counterpart), per spec §4.4 Phase 3 step 7. target is the
	// holder's position, attacker the position that made contact.
	OnContactMade func(ctx EffectContext, target, attacker battle.Position) []battle.BattleInstructions
}

func RegisterAbility(id repo.AbilityID, hooks AbilityHooks) {
	abilityRegistry[id] = hooks
}

func AbilityEffect(id repo.AbilityID) (AbilityHooks, bool) {
	h, ok := abilityRegistry[id]
	return h, ok
}

// ItemHooks mirrors AbilityHooks for held items.
type ItemHooks struct {
	OnModifyDamageDealt func(ctx EffectContext, dmg int) int
	OnModifyDamageTaken func(ctx EffectContext, dmg int) int
	OnResidual          func(ctx EffectContext) []battle.BattleInstructions
	OnAfterMove         func(ctx EffectContext) []battle.BattleInstructions
}

func RegisterItem(id repo.ItemID, hooks ItemHooks) {
	itemRegistry[id] = hooks
}

func ItemEffect(id repo.ItemID) (ItemHooks, bool) {
	h, ok := itemRegistry[id]
	return h, ok
}

func init() {
	registerAllMoves()
	registerAllAbilities()
	registerAllItems()
}
