package pipeline

import (
	"battlecore/battle"
	"battlecore/battleerr"
	"battlecore/repo"
)

// RunTurn executes one full turn for the given state and per-side
// choices, returning the complete set of probability-weighted outcome
// branches (spec §4.4 Phases 1-6). st is never mutated; callers apply a
// chosen branch via BattleInstructions.Apply to get the successor
// state.
func RunTurn(st *battle.State, choiceA, choiceB MoveChoice, repos *repo.Repositories, opts Options) ([]battle.BattleInstructions, error) {
	choices := map[battle.Position]MoveChoice{
		choiceA.Position: choiceA,
		choiceB.Position: choiceB,
	}

	for _, c := range choices {
		if err := ValidateChoice(st, c, repos); err != nil {
			return nil, err
		}
	}

	groups := buildActions(st, choices, repos, opts)

	result := []battle.BattleInstructions{{Probability: 100}}
	for _, group := range groups {
		groupBranches, err := resolveGroup(st, group, repos, opts)
		if err != nil {
			return nil, err
		}
		result = battle.Combine(result, groupBranches)
	}

	residualBranches := runResiduals(st, repos)
	result = battle.Combine(result, residualBranches)

	result = battle.Prune(result, opts.PruneThreshold)

	if _, ok := battle.SumProbabilities(result); !ok {
		return nil, battleerr.New(battleerr.IllegalState, "turn branch probabilities did not sum to 100%")
	}
	return result, nil
}

// resolveGroup handles one slot in the ordering from buildActions: a
// single action, or (on a speed tie resolved with TieBreakBranch) two
// or more equally-likely sub-orderings each fully combined before
// weighting.
func resolveGroup(st *battle.State, group []action, repos *repo.Repositories, opts Options) ([]battle.BattleInstructions, error) {
	if len(group) == 1 {
		return execAction(st, group[0], repos)
	}

	orderings := permutations(group)
	if opts.TieBreak == TieBreakSideAFirst {
		// groupTies already put SideA's action first; run that one order.
		orderings = [][]action{group}
	}
	share := 100.0 / float64(len(orderings))
	var out []battle.BattleInstructions
	for _, ordering := range orderings {
		combined := []battle.BattleInstructions{{Probability: 100}}
		for _, a := range ordering {
			branches, err := execAction(st, a, repos)
			if err != nil {
				return nil, err
			}
			combined = battle.Combine(combined, branches)
		}
		for i := range combined {
			combined[i].Probability = combined[i].Probability * share / 100.0
			out = append(out, combined[i])
		}
	}
	return out, nil
}

// permutations returns every ordering of a tied group. Tied groups in
// practice never exceed two simultaneous actions (the core formats cap
// at two sides), so this is never asked to handle more than 2! = 2
// orderings.
func permutations(group []action) [][]action {
	if len(group) <= 1 {
		return [][]action{group}
	}
	var out [][]action
	for i := range group {
		rest := make([]action, 0, len(group)-1)
		rest = append(rest, group[:i]...)
		rest = append(rest, group[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]action{group[i]}, p...))
		}
	}
	return out
}
