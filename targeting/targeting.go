// Package targeting resolves a move's TargetTag against the live
// battle.State into the concrete positions it hits (spec §4.1), the
// way the teacher's tactical/squads/squadcombat.go resolves a squad
// ability's target cells against the grid before any damage math
// runs.
package targeting

import (
	"battlecore/battle"
	"battlecore/repo"
)

// Resolve returns every position a move targets, in a stable order
// (lower slot before higher slot within a side; allAdjacent lists
// foes before allies, all lists side A before side B). Fainted
// positions are never returned; callers that find zero targets should
// treat the move as failing (spec §4.1 edge case).
func Resolve(tag repo.TargetTag, user battle.Position, st *battle.State) []battle.Position {
	switch tag {
	case repo.TargetSelf:
		return aliveOnly(st, []battle.Position{user})

	case repo.TargetAdjacentAlly:
		return aliveOnly(st, adjacentAllies(user, st, false))

	case repo.TargetAdjacentAllyOrSelf:
		return aliveOnly(st, append(adjacentAllies(user, st, true), user))

	case repo.TargetAdjacentFoe, repo.TargetAny, repo.TargetRandomNormal, repo.TargetNormal:
		return aliveOnly(st, adjacentFoes(user, st))

	case repo.TargetAllAdjacentFoes:
		return aliveOnly(st, allPositionsOnSide(st, user.Side.Opponent()))

	case repo.TargetAllAdjacent:
		out := allPositionsOnSide(st, user.Side.Opponent())
		out = append(out, adjacentAllies(user, st, false)...)
		return aliveOnly(st, out)

	case repo.TargetAll:
		out := allPositionsOnSide(st, battle.SideA)
		out = append(out, allPositionsOnSide(st, battle.SideB)...)
		return aliveOnly(st, out)

	case repo.TargetAllyTeam, repo.TargetAllySide:
		return allPositionsOnSide(st, user.Side) // side-wide effects (hazard clear, Tailwind) don't require a live body

	case repo.TargetFoeSide:
		return allPositionsOnSide(st, user.Side.Opponent())

	case repo.TargetAllies:
		return aliveOnly(st, append(adjacentAllies(user, st, false), user))

	case repo.TargetScripted:
		// Resolved by the move's effect function (e.g. Counter targets
		// whoever last hit the user); targeting has nothing to add.
		return nil

	default:
		return aliveOnly(st, adjacentFoes(user, st))
	}
}

func aliveOnly(st *battle.State, positions []battle.Position) []battle.Position {
	out := positions[:0:0]
	for _, p := range positions {
		if mon := st.At(p); mon != nil && !mon.Fainted {
			out = append(out, p)
		}
	}
	return out
}

func allPositionsOnSide(st *battle.State, side battle.SideID) []battle.Position {
	s := st.Side(side)
	if s == nil {
		return nil
	}
	var out []battle.Position
	for _, slot := range s.ActivePositions() {
		out = append(out, battle.Pos(side, slot))
	}
	return out
}

// adjacentFoes returns the slots on the opposing side adjacent to the
// user's slot under standard doubles/triples geometry (same slot plus
// one neighbor on each side); singles collapses to the single slot.
func adjacentFoes(user battle.Position, st *battle.State) []battle.Position {
	foeSide := st.Side(user.Side.Opponent())
	if foeSide == nil {
		return nil
	}
	n := len(foeSide.ActivePositions())
	if n <= 1 {
		return allPositionsOnSide(st, user.Side.Opponent())
	}
	var out []battle.Position
	for _, slot := range foeSide.ActivePositions() {
		if abs(slot-user.Slot) <= 1 {
			out = append(out, battle.Pos(user.Side.Opponent(), slot))
		}
	}
	return out
}

// adjacentAllies returns ally slots adjacent to the user (never the
// user itself unless includeSelfSlotRange is requested by the caller
// appending it separately).
func adjacentAllies(user battle.Position, st *battle.State, _ bool) []battle.Position {
	side := st.Side(user.Side)
	if side == nil {
		return nil
	}
	var out []battle.Position
	for _, slot := range side.ActivePositions() {
		if slot == user.Slot {
			continue
		}
		if abs(slot-user.Slot) <= 1 {
			out = append(out, battle.Pos(user.Side, slot))
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// FallbackRetarget re-resolves a single-target move's original target
// when that target has since fainted, redirecting to the ally/foe at
// the same slot or, failing that, the nearest remaining slot -- the
// same "closest row/column" fallback idea as the teacher's
// selectLowestArmorTarget, simplified to slot distance since battle
// positions have no armor stat to break ties on.
func FallbackRetarget(original battle.Position, st *battle.State) (battle.Position, bool) {
	if mon := st.At(original); mon != nil && !mon.Fainted {
		return original, true
	}
	candidates := allPositionsOnSide(st, original.Side)
	if len(candidates) == 0 {
		return battle.Position{}, false
	}
	best := candidates[0]
	bestDist := abs(best.Slot - original.Slot)
	for _, c := range candidates[1:] {
		if d := abs(c.Slot - original.Slot); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, true
}
