// Package policy supplies reference move-choice strategies for driving
// the turn pipeline without a human or a full AI stack, grounded on
// tactical/ai/ai_controller.go's AIController (the same decide-then-
// return-an-action shape, minus the squad/threat-evaluator/animation
// bookkeeping that has no analogue in a single-Pokemon-per-slot core).
package policy

import (
	"math/rand"

	"battlecore/battle"
	"battlecore/pipeline"
	"battlecore/repo"
)

// Policy decides one side's MoveChoice for the upcoming turn.
type Policy interface {
	ChooseMove(st *battle.State, side battle.SideID, repos *repo.Repositories) pipeline.MoveChoice
	Name() string
}

// legalMoveSlots returns the move slot indices the active Pokemon at
// pos can currently choose: has PP, not Disabled.
func legalMoveSlots(p *battle.Pokemon) []int {
	var out []int
	for i, m := range p.Moves {
		if m.PP > 0 && !m.Disabled {
			out = append(out, i)
		}
	}
	return out
}

func activePosition(st *battle.State, side battle.SideID) battle.Position {
	return battle.Position{Side: side, Slot: 0}
}

func defaultTargets(st *battle.State, pos battle.Position) []battle.Position {
	opp := st.Side(pos.Side.Opponent())
	if opp == nil || len(opp.Active) == 0 {
		return nil
	}
	return []battle.Position{{Side: pos.Side.Opponent(), Slot: 0}}
}

// RandomPolicy picks uniformly among the active Pokemon's legal move
// slots, falling back to Struggle (Slot: -1) when none remain --
// mirroring AIController.SelectBestAction's "any valid action, picked
// by a scoring rule" shape with the scoring rule replaced by a uniform
// random draw.
type RandomPolicy struct {
	Rand *rand.Rand
}

func NewRandomPolicy(rng *rand.Rand) *RandomPolicy {
	return &RandomPolicy{Rand: rng}
}

func (p *RandomPolicy) Name() string { return "random" }

func (p *RandomPolicy) ChooseMove(st *battle.State, side battle.SideID, repos *repo.Repositories) pipeline.MoveChoice {
	pos := activePosition(st, side)
	mover := st.At(pos)
	if mover == nil || mover.Fainted {
		return pipeline.MoveChoice{Kind: pipeline.ChoiceNone, Position: pos}
	}
	legal := legalMoveSlots(mover)
	if len(legal) == 0 {
		return pipeline.MoveChoice{Kind: pipeline.ChoiceMove, Slot: -1, Position: pos, Targets: defaultTargets(st, pos)}
	}
	slot := legal[p.Rand.Intn(len(legal))]
	return pipeline.MoveChoice{Kind: pipeline.ChoiceMove, Slot: slot, Position: pos, Targets: defaultTargets(st, pos)}
}

// FirstLegalPolicy always picks the lowest-indexed legal move slot, a
// deterministic baseline useful for reproducible tests and the §8
// scenario fixtures.
type FirstLegalPolicy struct{}

func (FirstLegalPolicy) Name() string { return "first-legal" }

func (FirstLegalPolicy) ChooseMove(st *battle.State, side battle.SideID, repos *repo.Repositories) pipeline.MoveChoice {
	pos := activePosition(st, side)
	mover := st.At(pos)
	if mover == nil || mover.Fainted {
		return pipeline.MoveChoice{Kind: pipeline.ChoiceNone, Position: pos}
	}
	legal := legalMoveSlots(mover)
	if len(legal) == 0 {
		return pipeline.MoveChoice{Kind: pipeline.ChoiceMove, Slot: -1, Position: pos, Targets: defaultTargets(st, pos)}
	}
	return pipeline.MoveChoice{Kind: pipeline.ChoiceMove, Slot: legal[0], Position: pos, Targets: defaultTargets(st, pos)}
}
