package pipeline

import (
	"battlecore/battle"
	"battlecore/battleerr"
	"battlecore/repo"
)

// ChoiceKind distinguishes the three MoveChoice variants from spec §4.4
// Phase 1.
type ChoiceKind int

const (
	ChoiceNone ChoiceKind = iota
	ChoiceMove
	ChoiceSwitch
)

// MoveChoice is one side's action for the turn.
type MoveChoice struct {
	Kind        ChoiceKind
	Slot        int // which of the mover's move slots, for ChoiceMove
	Targets     []battle.Position
	Terastallize bool
	SwitchIndex int // team_index to bring in, for ChoiceSwitch
	Position    battle.Position // the acting slot
}

// ValidateChoice implements spec §4.4 Phase 1: fainted movers,
// disabled/no-PP moves, and choice-lock violations surface as
// battleerr.InvalidChoice.
func ValidateChoice(st *battle.State, c MoveChoice, repos *repo.Repositories) error {
	mover := st.At(c.Position)
	switch c.Kind {
	case ChoiceNone:
		return nil
	case ChoiceSwitch:
		side := st.Side(c.Position.Side)
		if c.SwitchIndex < 0 || c.SwitchIndex >= len(side.Team) {
			return battleerr.New(battleerr.InvalidChoice, "switch target out of range")
		}
		if side.Team[c.SwitchIndex].Fainted {
			return battleerr.New(battleerr.InvalidChoice, "cannot switch to a fainted Pokemon")
		}
		return nil
	case ChoiceMove:
		if mover == nil {
			return battleerr.New(battleerr.InvalidChoice, "no Pokemon at acting position")
		}
		if mover.Fainted {
			return battleerr.New(battleerr.InvalidChoice, "fainted Pokemon cannot act")
		}
		if c.Slot == -1 && !hasAnyPP(mover) {
			// Slot -1 is the Struggle encoding SubstituteStruggle produces.
			return nil
		}
		if c.Slot < 0 || c.Slot >= len(mover.Moves) {
			return battleerr.New(battleerr.InvalidChoice, "move slot out of range")
		}
		slot := mover.Moves[c.Slot]
		if slot.PP <= 0 && !hasAnyPP(mover) {
			// Struggle is force-substituted by the pipeline, not chosen
			// directly; a zero-PP choice is only valid as part of that
			// substitution.
			return nil
		}
		if slot.PP <= 0 {
			return battleerr.New(battleerr.InvalidChoice, "move has no PP remaining")
		}
		if slot.Disabled {
			return battleerr.New(battleerr.InvalidChoice, "move is disabled")
		}
		if mover.Volatiles.Has(battle.VolTaunt) && repos != nil {
			if mv, ok := repos.Move(repo.MoveID(slot.Move)); ok && mv.Category == repo.Status {
				return battleerr.New(battleerr.InvalidChoice, "Taunt prevents status moves")
			}
		}
		if mover.Volatiles.Has(battle.VolChoiceLocked) && mover.LastMove != "" && mover.LastMove != slot.Move {
			return battleerr.New(battleerr.InvalidChoice, "locked into the last move used")
		}
		return nil
	default:
		return battleerr.New(battleerr.InvalidChoice, "unknown choice kind")
	}
}

func hasAnyPP(p *battle.Pokemon) bool {
	for _, m := range p.Moves {
		if m.PP > 0 {
			return true
		}
	}
	return false
}

// SubstituteStruggle replaces a move choice with Struggle when every
// move slot is out of PP, per spec §3's PP invariant.
func SubstituteStruggle(mover *battle.Pokemon, c MoveChoice) MoveChoice {
	if c.Kind != ChoiceMove || hasAnyPP(mover) {
		return c
	}
	return MoveChoice{Kind: ChoiceMove, Slot: -1, Targets: c.Targets, Position: c.Position}
}
