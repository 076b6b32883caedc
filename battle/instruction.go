package battle

// Instruction is an atomic, position-addressed state delta that carries
// enough previous-value payload to be inverted deterministically (spec
// §3). Applying an instruction is the only way State mutates; there is
// no other path, per spec §4.4 Phase 6.
type Instruction interface {
	// Apply mutates st in place.
	Apply(st *State)
	// Invert returns the instruction that undoes Apply, constructed from
	// the previous-value fields captured when this instruction was built
	// -- never recomputed from current state, so inversion is exact even
	// after other instructions have since changed st.
	Invert() Instruction
}

// ApplyAll applies instructions to st in emission order.
func ApplyAll(st *State, instrs []Instruction) {
	for _, ins := range instrs {
		ins.Apply(st)
	}
}

// InvertAll returns the instruction list that undoes instrs: each
// instruction inverted, in reverse order, so that applying instrs then
// InvertAll(instrs) is a byte-identical round trip (spec §8
// Invertibility).
func InvertAll(instrs []Instruction) []Instruction {
	out := make([]Instruction, len(instrs))
	for i, ins := range instrs {
		out[len(instrs)-1-i] = ins.Invert()
	}
	return out
}

// BattleInstructions is one outcome branch: a probability (as a percent,
// 0..=100) and the instructions that realize it, plus the positions the
// branch's effect touched (for callers that want to highlight affected
// Pokemon without re-deriving it from the instruction list).
type BattleInstructions struct {
	Probability       float64
	Instructions      []Instruction
	AffectedPositions []Position
}

// Apply is a convenience wrapper that clones st, applies the branch, and
// returns the successor state -- the only sanctioned way to realize a
// branch per spec §4.4 Phase 6.
func (b BattleInstructions) Apply(st *State) *State {
	next := st.Clone()
	ApplyAll(next, b.Instructions)
	return next
}

// SumProbabilities reports whether a set of branches sums to 100% within
// the tolerance required by spec §8's Probability conservation property.
func SumProbabilities(branches []BattleInstructions) (sum float64, ok bool) {
	for _, b := range branches {
		sum += b.Probability
	}
	const tolerance = 1e-3
	diff := sum - 100.0
	if diff < 0 {
		diff = -diff
	}
	return sum, diff <= tolerance
}

// Combine computes the Cartesian product of branch sets from independent
// actions, multiplying probabilities and concatenating instruction lists,
// per spec §4.4 Phase 4. An empty input slice yields a single branch with
// probability 100 and no instructions (the identity element), so callers
// can fold actions one at a time.
func Combine(actionBranches ...[]BattleInstructions) []BattleInstructions {
	result := []BattleInstructions{{Probability: 100}}
	for _, branches := range actionBranches {
		if len(branches) == 0 {
			continue
		}
		var next []BattleInstructions
		for _, acc := range result {
			for _, b := range branches {
				p := acc.Probability * b.Probability / 100.0
				if p <= 0 {
					continue
				}
				merged := BattleInstructions{
					Probability:       p,
					Instructions:      append(append([]Instruction{}, acc.Instructions...), b.Instructions...),
					AffectedPositions: append(append([]Position{}, acc.AffectedPositions...), b.AffectedPositions...),
				}
				next = append(next, merged)
			}
		}
		result = next
	}
	return result
}

// Prune drops branches below threshold percent and renormalizes the
// remainder back to 100%, per spec §4.4 Phase 4 and §9. threshold <= 0
// disables pruning and returns branches unchanged -- "the exact mode".
func Prune(branches []BattleInstructions, threshold float64) []BattleInstructions {
	if threshold <= 0 {
		return branches
	}
	var kept []BattleInstructions
	var keptSum float64
	for _, b := range branches {
		if b.Probability >= threshold {
			kept = append(kept, b)
			keptSum += b.Probability
		}
	}
	if keptSum == 0 || len(kept) == len(branches) {
		return branches
	}
	for i := range kept {
		kept[i].Probability = kept[i].Probability / keptSum * 100.0
	}
	return kept
}
