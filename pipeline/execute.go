package pipeline

import (
	"battlecore/battle"
	"battlecore/battleerr"
	"battlecore/effects"
	"battlecore/repo"
	"battlecore/targeting"
)

// preventionBranch is one outcome of the Phase 3 move-prevention check
// chain: either the move attempt is blocked outright (Flinch, Sleep,
// Freeze -- always 100%) or a probability roll decides whether the
// attempt proceeds (Paralysis 25%, Confusion 33%, Attract 50%), per
// spec §4.4. The Confusion-prevented branch carries no self-hit
// damage instruction; the move simply does not happen. Checks run
// in the fixed order the spec names; the first one that can roll a
// failure short-circuits the rest, matching how Showdown itself
// resolves the chain.
type preventionBranch struct {
	Probability float64
	Prevented   bool
	Extra       []battle.Instruction
}

func moveAttemptPrevention(mover *battle.Pokemon) []preventionBranch {
	certain := func(extra ...battle.Instruction) []preventionBranch {
		return []preventionBranch{{Probability: 100, Prevented: true, Extra: extra}}
	}
	if mover.Volatiles.Has(battle.VolFlinch) {
		return certain()
	}
	if mover.Status == battle.StatusSleep {
		return certain()
	}
	if mover.Status == battle.StatusFreeze {
		return certain()
	}
	if mover.Status == battle.StatusParalysis {
		return []preventionBranch{
			{Probability: 25, Prevented: true},
			{Probability: 75, Prevented: false},
		}
	}
	if mover.Volatiles.Has(battle.VolConfusion) {
		return []preventionBranch{
			{Probability: 33, Prevented: true},
			{Probability: 67, Prevented: false},
		}
	}
	if mover.Volatiles.Has(battle.VolAttract) {
		return []preventionBranch{
			{Probability: 50, Prevented: true},
			{Probability: 50, Prevented: false},
		}
	}
	return []preventionBranch{{Probability: 100, Prevented: false}}
}

// execAction runs one already-validated, already-ordered action and
// returns its probability-weighted branches, composing the Phase 3
// move-prevention roll with the move's own effect branches rather than
// resolving them separately. A move with no registered effect function
// surfaces battleerr.Unimplemented rather than guessing at behavior.
func execAction(st *battle.State, a action, repos *repo.Repositories) ([]battle.BattleInstructions, error) {
	mover := st.At(a.Choice.Position)
	if mover == nil || mover.Fainted {
		return []battle.BattleInstructions{{Probability: 100}}, nil
	}

	if a.IsSwitch {
		return execSwitch(st, a.Choice), nil
	}

	preventions := moveAttemptPrevention(mover)
	var out []battle.BattleInstructions
	for _, pb := range preventions {
		if pb.Prevented {
			out = append(out, battle.BattleInstructions{
				Probability:       pb.Probability,
				Instructions:      pb.Extra,
				AffectedPositions: []battle.Position{a.Choice.Position},
			})
			continue
		}
		moveBranches, err := resolveMove(st, a, mover, repos)
		if err != nil {
			return nil, err
		}
		for _, mb := range moveBranches {
			mb.Probability = mb.Probability * pb.Probability / 100.0
			out = append(out, mb)
		}
	}
	return out, nil
}

// resolveMove runs the actual move resolution (PP deduction, target
// resolution, effect dispatch) once the Phase 3 prevention chain has
// already decided the attempt goes through.
func resolveMove(st *battle.State, a action, mover *battle.Pokemon, repos *repo.Repositories) ([]battle.BattleInstructions, error) {
	c := SubstituteStruggle(mover, a.Choice)
	var moveID string
	if c.Slot < 0 {
		moveID = "struggle"
	} else {
		moveID = mover.Moves[c.Slot].Move
	}

	move, ok := repos.Move(repo.MoveID(moveID))
	if !ok {
		return nil, battleerr.New(battleerr.DataMissing, "unknown move id "+moveID)
	}

	targets := c.Targets
	if len(targets) == 0 {
		targets = targeting.Resolve(move.TargetTag, a.Choice.Position, st)
	}

	ctx := effects.EffectContext{
		State:      st,
		Repos:      repos,
		User:       a.Choice.Position,
		Targets:    targets,
		Move:       move,
		Generation: st.Format.GenerationNumber(),
	}

	fn := effects.MoveEffect(repo.MoveID(moveID))
	if fn == nil {
		return nil, battleerr.New(battleerr.Unimplemented, "no effect function registered for "+moveID)
	}

	branches := fn(ctx)
	branches = afterMoveTriggers(a.Choice.Position, move, branches, st, repos)

	var ppInstr battle.Instruction
	if c.Slot >= 0 && mover.Moves[c.Slot].PP > 0 {
		ppInstr = battle.NewDecrementPP(st, a.Choice.Position, c.Slot, 1)
	}
	nameInstr := battle.NewSetLastUsedMove(st, a.Choice.Position, moveID)

	for i := range branches {
		if ppInstr != nil {
			branches[i].Instructions = append([]battle.Instruction{ppInstr}, branches[i].Instructions...)
		}
		branches[i].Instructions = append(branches[i].Instructions, nameInstr)
	}
	return branches, nil
}

// afterMoveTriggers implements spec §4.4 Phase 3 step 7: on-hit
// ability triggers (OnContactMade hooks such as Static; held items are
// not consulted) that fire once per contact-move branch that actually landed on a
// target, each trigger's own probability folded in via the same
// Cartesian-product Combine the rest of the pipeline uses for
// independent rolls. Non-contact moves pass through untouched.
func afterMoveTriggers(attacker battle.Position, move repo.MoveData, branches []battle.BattleInstructions, st *battle.State, repos *repo.Repositories) []battle.BattleInstructions {
	if !move.Flags.Has(repo.FlagContact) {
		return branches
	}
	out := make([]battle.BattleInstructions, 0, len(branches))
	for _, b := range branches {
		targets := hitTargets(b, attacker)
		if len(targets) == 0 {
			out = append(out, b)
			continue
		}
		triggers := contactTriggerBranches(attacker, targets, st, repos)
		if len(triggers) == 0 {
			out = append(out, b)
			continue
		}
		out = append(out, battle.Combine([]battle.BattleInstructions{b}, triggers)...)
	}
	return out
}

// hitTargets reports the positions a branch actually dealt damage to,
// excluding the attacker itself (recoil/Struggle self-damage isn't a
// contact hit received by a foe).
func hitTargets(b battle.BattleInstructions, attacker battle.Position) []battle.Position {
	var out []battle.Position
	seen := map[battle.Position]bool{}
	for _, ins := range b.Instructions {
		d, ok := ins.(battle.Damage)
		if !ok || d.Pos == attacker || seen[d.Pos] {
			continue
		}
		seen[d.Pos] = true
		out = append(out, d.Pos)
	}
	return out
}

// contactTriggerBranches consults each hit target's ability for an
// OnContactMade hook and folds its branches together across targets
// (independent per spec's contact-trigger model).
func contactTriggerBranches(attacker battle.Position, targets []battle.Position, st *battle.State, repos *repo.Repositories) []battle.BattleInstructions {
	var perTarget [][]battle.BattleInstructions
	for _, target := range targets {
		defender := st.At(target)
		if defender == nil || repos == nil {
			continue
		}
		ability, ok := repos.Ability(repo.AbilityID(defender.Ability))
		if !ok {
			continue
		}
		hooks, ok := effects.AbilityEffect(ability.ID)
		if !ok || hooks.OnContactMade == nil {
			continue
		}
		ctx := effects.EffectContext{State: st, Repos: repos, User: attacker, Targets: []battle.Position{target}, Generation: st.Format.GenerationNumber()}
		if b := hooks.OnContactMade(ctx, target, attacker); len(b) > 0 {
			perTarget = append(perTarget, b)
		}
	}
	return battle.Combine(perTarget...)
}

func execSwitch(st *battle.State, c MoveChoice) []battle.BattleInstructions {
	side := c.Position.Side
	instr := battle.NewSwitch(st, side, c.Position.Slot, c.SwitchIndex)
	return []battle.BattleInstructions{{
		Probability:       100,
		Instructions:      []battle.Instruction{instr},
		AffectedPositions: []battle.Position{c.Position},
	}}
}

// faintCheck appends a Faint instruction for any non-fainted active
// Pokemon whose HP in st is zero or below. runResiduals calls it once,
// as the last end-of-turn step.
func faintCheck(st *battle.State) []battle.Instruction {
	var out []battle.Instruction
	for _, side := range st.Sides {
		for slot := 0; slot < st.Format.ActivePerSide(); slot++ {
			pos := battle.Position{Side: side.ID, Slot: slot}
			p := st.At(pos)
			if p != nil && !p.Fainted && p.CurrentHP <= 0 {
				out = append(out, battle.NewFaint(st, pos))
			}
		}
	}
	return out
}
