package battle

// ApplyStatus sets a Pokemon's major status, capturing the previous
// status and counter so Invert restores both exactly. Spec §3 invariant:
// exactly one major status at a time, enforced here by overwriting
// rather than accumulating.
type ApplyStatus struct {
	Pos         Position
	NewStatus   Status
	NewDuration int
	PrevStatus  Status
	PrevDur     int
}

func NewApplyStatus(st *State, pos Position, status Status, duration int) ApplyStatus {
	a := ApplyStatus{Pos: pos, NewStatus: status, NewDuration: duration}
	if p := st.At(pos); p != nil {
		a.PrevStatus, a.PrevDur = p.Status, p.StatusDur
	}
	return a
}

func (a ApplyStatus) Apply(st *State) {
	if p := st.At(a.Pos); p != nil {
		p.Status, p.StatusDur = a.NewStatus, a.NewDuration
	}
}
func (a ApplyStatus) Invert() Instruction {
	return ApplyStatus{Pos: a.Pos, NewStatus: a.PrevStatus, NewDuration: a.PrevDur, PrevStatus: a.NewStatus, PrevDur: a.NewDuration}
}

// RemoveStatus clears a major status (cure, switch-out for non-persisting
// statuses where applicable, Natural Cure).
type RemoveStatus struct {
	Pos        Position
	PrevStatus Status
	PrevDur    int
}

func NewRemoveStatus(st *State, pos Position) RemoveStatus {
	r := RemoveStatus{Pos: pos}
	if p := st.At(pos); p != nil {
		r.PrevStatus, r.PrevDur = p.Status, p.StatusDur
	}
	return r
}

func (r RemoveStatus) Apply(st *State) {
	if p := st.At(r.Pos); p != nil {
		p.Status, p.StatusDur = StatusNone, 0
	}
}
func (r RemoveStatus) Invert() Instruction {
	return ApplyStatus{Pos: r.Pos, NewStatus: r.PrevStatus, NewDuration: r.PrevDur, PrevStatus: StatusNone}
}

// ApplyVolatile sets a volatile flag, optionally with a duration.
type ApplyVolatile struct {
	Pos         Position
	Flag        VolatileFlag
	Duration    int
	HasDuration bool
	WasSet      bool
	PrevHasDur  bool
	PrevDur     int
}

func NewApplyVolatile(st *State, pos Position, flag VolatileFlag, duration int, hasDuration bool) ApplyVolatile {
	a := ApplyVolatile{Pos: pos, Flag: flag, Duration: duration, HasDuration: hasDuration}
	if p := st.At(pos); p != nil {
		a.WasSet = p.Volatiles.Has(flag)
		if d, ok := p.Volatiles.Duration(flag); ok {
			a.PrevHasDur, a.PrevDur = true, d
		}
	}
	return a
}

func (a ApplyVolatile) Apply(st *State) {
	p := st.At(a.Pos)
	if p == nil {
		return
	}
	p.Volatiles.set(a.Flag, a.Duration, a.HasDuration)
}

func (a ApplyVolatile) Invert() Instruction {
	return restoreVolatile{Pos: a.Pos, Flag: a.Flag, WasSet: a.WasSet, HadDur: a.PrevHasDur, PrevDur: a.PrevDur}
}

type restoreVolatile struct {
	Pos    Position
	Flag   VolatileFlag
	WasSet bool
	HadDur bool
	PrevDur int
}

func (r restoreVolatile) Apply(st *State) {
	p := st.At(r.Pos)
	if p == nil {
		return
	}
	if r.WasSet {
		p.Volatiles.set(r.Flag, r.PrevDur, r.HadDur)
	} else {
		p.Volatiles.clear(r.Flag)
	}
}
func (r restoreVolatile) Invert() Instruction {
	return ApplyVolatile{Pos: r.Pos, Flag: r.Flag, HasDuration: r.HadDur, Duration: r.PrevDur, WasSet: !r.WasSet}
}

// RemoveVolatile clears a volatile flag and its duration entry.
type RemoveVolatile struct {
	Pos     Position
	Flag    VolatileFlag
	WasSet  bool
	HadDur  bool
	PrevDur int
}

func NewRemoveVolatile(st *State, pos Position, flag VolatileFlag) RemoveVolatile {
	r := RemoveVolatile{Pos: pos, Flag: flag}
	if p := st.At(pos); p != nil {
		r.WasSet = p.Volatiles.Has(flag)
		if d, ok := p.Volatiles.Duration(flag); ok {
			r.HadDur, r.PrevDur = true, d
		}
	}
	return r
}

func (r RemoveVolatile) Apply(st *State) {
	if p := st.At(r.Pos); p != nil {
		p.Volatiles.clear(r.Flag)
	}
}
func (r RemoveVolatile) Invert() Instruction {
	return restoreVolatile{Pos: r.Pos, Flag: r.Flag, WasSet: r.WasSet, HadDur: r.HadDur, PrevDur: r.PrevDur}
}

// ChangeVolatileDuration overwrites the duration of an already-set
// volatile (used by Encore/Taunt/Disable re-triggers and by the
// end-of-turn decrement step).
type ChangeVolatileDuration struct {
	Pos     Position
	Flag    VolatileFlag
	NewDur  int
	PrevDur int
}

func NewChangeVolatileDuration(st *State, pos Position, flag VolatileFlag, newDur int) ChangeVolatileDuration {
	c := ChangeVolatileDuration{Pos: pos, Flag: flag, NewDur: newDur}
	if p := st.At(pos); p != nil {
		c.PrevDur, _ = p.Volatiles.Duration(flag)
	}
	return c
}

func (c ChangeVolatileDuration) Apply(st *State) {
	if p := st.At(c.Pos); p != nil && p.Volatiles.Durations != nil {
		p.Volatiles.Durations[c.Flag] = c.NewDur
	}
}
func (c ChangeVolatileDuration) Invert() Instruction {
	return ChangeVolatileDuration{Pos: c.Pos, Flag: c.Flag, NewDur: c.PrevDur, PrevDur: c.NewDur}
}

// DecrementPP reduces a move slot's remaining PP by Amount (usually 1,
// 2 for Pressure-affected targets).
type DecrementPP struct {
	Pos     Position
	Slot    int
	Amount  int
	PrevPP  int
}

func NewDecrementPP(st *State, pos Position, slot, amount int) DecrementPP {
	d := DecrementPP{Pos: pos, Slot: slot, Amount: amount}
	if p := st.At(pos); p != nil && slot >= 0 && slot < len(p.Moves) {
		d.PrevPP = p.Moves[slot].PP
	}
	return d
}

func (d DecrementPP) Apply(st *State) {
	p := st.At(d.Pos)
	if p == nil || d.Slot < 0 || d.Slot >= len(p.Moves) {
		return
	}
	p.Moves[d.Slot].PP -= d.Amount
	if p.Moves[d.Slot].PP < 0 {
		p.Moves[d.Slot].PP = 0
	}
}
func (d DecrementPP) Invert() Instruction {
	return setPP{Pos: d.Pos, Slot: d.Slot, PP: d.PrevPP}
}

type setPP struct {
	Pos  Position
	Slot int
	PP   int
}

func (s setPP) Apply(st *State) {
	if p := st.At(s.Pos); p != nil && s.Slot >= 0 && s.Slot < len(p.Moves) {
		p.Moves[s.Slot].PP = s.PP
	}
}
func (s setPP) Invert() Instruction { return s }

// DisableMove marks a move slot disabled for Duration turns (the
// Disable move itself; Choice-lock and Taunt/Torment are modeled as
// Volatiles instead since they don't pin a specific slot).
type DisableMove struct {
	Pos        Position
	Slot       int
	Duration   int
	WasDisabled bool
	PrevDur    int
}

func NewDisableMove(st *State, pos Position, slot, duration int) DisableMove {
	d := DisableMove{Pos: pos, Slot: slot, Duration: duration}
	if p := st.At(pos); p != nil && slot >= 0 && slot < len(p.Moves) {
		d.WasDisabled, d.PrevDur = p.Moves[slot].Disabled, p.Moves[slot].DisableDur
	}
	return d
}

func (d DisableMove) Apply(st *State) {
	p := st.At(d.Pos)
	if p == nil || d.Slot < 0 || d.Slot >= len(p.Moves) {
		return
	}
	p.Moves[d.Slot].Disabled = true
	p.Moves[d.Slot].DisableDur = d.Duration
}
func (d DisableMove) Invert() Instruction {
	return setDisable{Pos: d.Pos, Slot: d.Slot, Disabled: d.WasDisabled, Dur: d.PrevDur}
}

type setDisable struct {
	Pos      Position
	Slot     int
	Disabled bool
	Dur      int
}

func (s setDisable) Apply(st *State) {
	if p := st.At(s.Pos); p != nil && s.Slot >= 0 && s.Slot < len(p.Moves) {
		p.Moves[s.Slot].Disabled = s.Disabled
		p.Moves[s.Slot].DisableDur = s.Dur
	}
}
func (s setDisable) Invert() Instruction { return s }
