package effects

import "battlecore/battle"

// registerAllItems wires the seed item set. Life Orb's damage
// multiplier is applied in damage.itemDamageMultiplier; Choice Band is
// not read there or anywhere else, so it has no effect. Leftovers'
// residual is a real implementation here. Focus Sash's entry is empty:
// no survive-a-KO behavior exists. Air Balloon's Ground immunity is a
// damage-formula check (damage.groundImmune), not a hook, so its entry
// here is a no-op marker.
func registerAllItems() {
	RegisterItem("leftovers", ItemHooks{OnResidual: leftoversResidual})
	RegisterItem("lifeorb", ItemHooks{})
	RegisterItem("choiceband", ItemHooks{})
	RegisterItem("focussash", ItemHooks{})
	RegisterItem("airballoon", ItemHooks{})
}

func leftoversResidual(ctx EffectContext) []battle.BattleInstructions {
	if len(ctx.Targets) == 0 {
		return nil
	}
	pos := ctx.Targets[0]
	p := ctx.State.At(pos)
	if p == nil || p.CurrentHP >= p.MaxHP || p.Fainted {
		return nil
	}
	amt := p.MaxHP / 16
	if amt < 1 {
		amt = 1
	}
	return []battle.BattleInstructions{{
		Probability:       100,
		Instructions:      []battle.Instruction{battle.NewHeal(ctx.State, pos, amt)},
		AffectedPositions: []battle.Position{pos},
	}}
}
