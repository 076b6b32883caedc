package battle

// BoostStats applies a delta to each of the seven boostable stats,
// clamping to [-6, +6]. PrevBoosts captures the full array before the
// change so Invert is an exact restore rather than a re-clamped
// subtraction (which could differ when the apply was itself clamped).
type BoostStats struct {
	Pos        Position
	Deltas     Boosts
	PrevBoosts Boosts
}

func NewBoostStats(st *State, pos Position, deltas Boosts) BoostStats {
	b := BoostStats{Pos: pos, Deltas: deltas}
	if p := st.At(pos); p != nil {
		b.PrevBoosts = p.Boosts
	}
	return b
}

// Clamped returns the actual deltas that will be applied once clamping
// is taken into account, and per-stat flags indicating a delta was
// truncated ("stat won't go higher/lower"). No effect function in this
// module calls it; it is available to callers that report the fail reason.
func (b BoostStats) Clamped(current Boosts) (applied Boosts, truncated [8]bool) {
	for s := StatAtk; s <= StatEvasion; s++ {
		want := int(current[s]) + int(b.Deltas[s])
		clamped, trunc := ClampBoost(want)
		applied[s] = clamped - current[s]
		truncated[s] = trunc && b.Deltas[s] != 0
	}
	return applied, truncated
}

func (b BoostStats) Apply(st *State) {
	p := st.At(b.Pos)
	if p == nil {
		return
	}
	for s := StatAtk; s <= StatEvasion; s++ {
		v, _ := ClampBoost(int(p.Boosts[s]) + int(b.Deltas[s]))
		p.Boosts[s] = v
	}
}

func (b BoostStats) Invert() Instruction {
	return setBoosts{Pos: b.Pos, Boosts: b.PrevBoosts}
}

type setBoosts struct {
	Pos    Position
	Boosts Boosts
}

func (s setBoosts) Apply(st *State) {
	if p := st.At(s.Pos); p != nil {
		p.Boosts = s.Boosts
	}
}
func (s setBoosts) Invert() Instruction { return s }

// ClearBoosts resets all boosts to zero (Haze, fainting).
type ClearBoosts struct {
	Pos  Position
	Prev Boosts
}

func NewClearBoosts(st *State, pos Position) ClearBoosts {
	c := ClearBoosts{Pos: pos}
	if p := st.At(pos); p != nil {
		c.Prev = p.Boosts
	}
	return c
}

func (c ClearBoosts) Apply(st *State) {
	if p := st.At(c.Pos); p != nil {
		p.Boosts = Boosts{}
	}
}
func (c ClearBoosts) Invert() Instruction {
	return setBoosts{Pos: c.Pos, Boosts: c.Prev}
}

// SwapStats exchanges two positions' entire boost arrays (Guard Swap
// variants operate on a subset; full Heart Swap uses this as-is).
type SwapStats struct {
	A, B Position
}

func (s SwapStats) Apply(st *State) {
	pa, pb := st.At(s.A), st.At(s.B)
	if pa == nil || pb == nil {
		return
	}
	pa.Boosts, pb.Boosts = pb.Boosts, pa.Boosts
}
func (s SwapStats) Invert() Instruction { return s }

// CopyBoosts overwrites Pos's boosts with From's boosts (Psych Up).
type CopyBoosts struct {
	Pos, From Position
	Prev      Boosts
}

func NewCopyBoosts(st *State, pos, from Position) CopyBoosts {
	c := CopyBoosts{Pos: pos, From: from}
	if p := st.At(pos); p != nil {
		c.Prev = p.Boosts
	}
	return c
}

func (c CopyBoosts) Apply(st *State) {
	p, from := st.At(c.Pos), st.At(c.From)
	if p == nil || from == nil {
		return
	}
	p.Boosts = from.Boosts
}
func (c CopyBoosts) Invert() Instruction {
	return setBoosts{Pos: c.Pos, Boosts: c.Prev}
}

// InvertBoosts negates every boost stage (Topsy-Turvy).
type InvertBoosts struct {
	Pos  Position
	Prev Boosts
}

func NewInvertBoosts(st *State, pos Position) InvertBoosts {
	i := InvertBoosts{Pos: pos}
	if p := st.At(pos); p != nil {
		i.Prev = p.Boosts
	}
	return i
}

func (i InvertBoosts) Apply(st *State) {
	p := st.At(i.Pos)
	if p == nil {
		return
	}
	for s := StatAtk; s <= StatEvasion; s++ {
		p.Boosts[s] = -p.Boosts[s]
	}
}
func (i InvertBoosts) Invert() Instruction {
	return setBoosts{Pos: i.Pos, Boosts: i.Prev}
}

// RawStatChange overwrites a raw base stat (Power Trick swaps Atk/Def
// base stats; this is rare enough that the spec calls it out
// explicitly in §3).
type RawStatChange struct {
	Pos      Position
	NewBase  BaseStats
	PrevBase BaseStats
}

func NewRawStatChange(st *State, pos Position, newBase BaseStats) RawStatChange {
	r := RawStatChange{Pos: pos, NewBase: newBase}
	if p := st.At(pos); p != nil {
		r.PrevBase = p.Base
	}
	return r
}

func (r RawStatChange) Apply(st *State) {
	if p := st.At(r.Pos); p != nil {
		p.Base = r.NewBase
	}
}
func (r RawStatChange) Invert() Instruction {
	return RawStatChange{Pos: r.Pos, NewBase: r.PrevBase, PrevBase: r.NewBase}
}
