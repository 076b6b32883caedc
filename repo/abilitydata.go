package repo

// AbilityHookSet names the engine hook points an ability's effect
// function can register for, mirroring the teacher's per-perk hook
// struct in tactical/perks/hook_registry.go but keyed by battle-event
// name instead of squad-combat phase.
type AbilityHookSet int

const (
	HookOnSwitchIn AbilityHookSet = 1 << iota
	HookOnModifyDamageDealt
	HookOnModifyDamageTaken
	HookOnModifyAccuracy
	HookOnModifyBoostAttempt
	HookOnBeforeMove
	HookOnAfterMove
	HookOnStatusAttempt
	HookOnWeatherImmune
	HookOnResidual
	HookOnFaint
	HookOnFlinchAttempt
)

// AbilityData is the static record for one ability: its identity plus
// which hooks it participates in. The actual hook logic lives in the
// effects package registry; this struct only advertises participation
// so the pipeline can skip calling abilities that can't affect a given
// event.
type AbilityData struct {
	ID     AbilityID
	Number int
	Name   string
	Hooks  AbilityHookSet
}

func (a AbilityData) Has(h AbilityHookSet) bool { return a.Hooks&h != 0 }
