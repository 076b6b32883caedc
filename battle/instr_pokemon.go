package battle

// Damage reduces HP at Pos by Amount, clamped to [0, MaxHP]. PrevHP
// captures the exact HP before this instruction so Invert restores it
// regardless of the clamp.
type Damage struct {
	Pos    Position
	Amount int
	PrevHP int
}

// NewDamage builds a Damage instruction reading PrevHP from the current
// state, the standard construction path composers use.
func NewDamage(st *State, pos Position, amount int) Damage {
	p := st.At(pos)
	prev := 0
	if p != nil {
		prev = p.CurrentHP
	}
	return Damage{Pos: pos, Amount: amount, PrevHP: prev}
}

func (d Damage) Apply(st *State) {
	p := st.At(d.Pos)
	if p == nil {
		return
	}
	p.CurrentHP -= d.Amount
	if p.CurrentHP < 0 {
		p.CurrentHP = 0
	}
	if p.CurrentHP > p.MaxHP {
		p.CurrentHP = p.MaxHP
	}
}

func (d Damage) Invert() Instruction {
	return restoreHP{Pos: d.Pos, HP: d.PrevHP}
}

// restoreHP is Damage/Heal's shared inverse: snap HP back to an exact
// recorded value rather than re-deriving a delta.
type restoreHP struct {
	Pos Position
	HP  int
}

func (r restoreHP) Apply(st *State) {
	if p := st.At(r.Pos); p != nil {
		p.CurrentHP = r.HP
	}
}

func (r restoreHP) Invert() Instruction { return r }

// Heal increases HP at Pos by Amount, capped at MaxHP.
type Heal struct {
	Pos    Position
	Amount int
	PrevHP int
}

func NewHeal(st *State, pos Position, amount int) Heal {
	p := st.At(pos)
	prev := 0
	if p != nil {
		prev = p.CurrentHP
	}
	return Heal{Pos: pos, Amount: amount, PrevHP: prev}
}

func (h Heal) Apply(st *State) {
	p := st.At(h.Pos)
	if p == nil {
		return
	}
	p.CurrentHP += h.Amount
	if p.CurrentHP > p.MaxHP {
		p.CurrentHP = p.MaxHP
	}
	if p.CurrentHP < 0 {
		p.CurrentHP = 0
	}
}

func (h Heal) Invert() Instruction {
	return restoreHP{Pos: h.Pos, HP: h.PrevHP}
}

// MultiTargetDamage applies damage to several positions atomically --
// used when a single effect (e.g. Explosion-family moves) must be
// represented as one instruction rather than one Damage per target.
// Spread moves that enumerate per-target modifiers (Earthquake in
// Doubles, spec §8 scenario 3) instead emit one Damage per target so the
// per-target amount is individually visible.
type MultiTargetDamage struct {
	Targets []Position
	Amounts []int
	PrevHPs []int
}

func NewMultiTargetDamage(st *State, targets []Position, amounts []int) MultiTargetDamage {
	prev := make([]int, len(targets))
	for i, t := range targets {
		if p := st.At(t); p != nil {
			prev[i] = p.CurrentHP
		}
	}
	return MultiTargetDamage{Targets: targets, Amounts: amounts, PrevHPs: prev}
}

func (m MultiTargetDamage) Apply(st *State) {
	for i, t := range m.Targets {
		p := st.At(t)
		if p == nil {
			continue
		}
		p.CurrentHP -= m.Amounts[i]
		if p.CurrentHP < 0 {
			p.CurrentHP = 0
		}
		if p.CurrentHP > p.MaxHP {
			p.CurrentHP = p.MaxHP
		}
	}
}

func (m MultiTargetDamage) Invert() Instruction {
	restores := make([]Instruction, len(m.Targets))
	for i, t := range m.Targets {
		restores[i] = restoreHP{Pos: t, HP: m.PrevHPs[i]}
	}
	return multiRestore{restores: restores}
}

type multiRestore struct{ restores []Instruction }

func (m multiRestore) Apply(st *State) { ApplyAll(st, m.restores) }
func (m multiRestore) Invert() Instruction {
	out := make([]Instruction, len(m.restores))
	copy(out, m.restores)
	return multiRestore{restores: out}
}

// Faint marks a Pokemon as fainted (HP is assumed already 0 via a prior
// Damage instruction). PrevFainted lets Invert restore a Pokemon that
// was already fainted before this instruction (e.g. re-applying a
// branch twice in a test harness).
type Faint struct {
	Pos         Position
	PrevFainted bool
}

func NewFaint(st *State, pos Position) Faint {
	prev := false
	if p := st.At(pos); p != nil {
		prev = p.Fainted
	}
	return Faint{Pos: pos, PrevFainted: prev}
}

func (f Faint) Apply(st *State) {
	if p := st.At(f.Pos); p != nil {
		p.Fainted = true
	}
}

func (f Faint) Invert() Instruction {
	return faintRestore{Pos: f.Pos, Fainted: f.PrevFainted}
}

type faintRestore struct {
	Pos     Position
	Fainted bool
}

func (r faintRestore) Apply(st *State) {
	if p := st.At(r.Pos); p != nil {
		p.Fainted = r.Fainted
	}
}
func (r faintRestore) Invert() Instruction { return r }

// Switch changes which team member occupies a slot.
type Switch struct {
	Side            SideID
	OutSlot         int
	InTeamIndex     int
	PrevTeamIndex   int
}

func NewSwitch(st *State, side SideID, outSlot, inTeamIndex int) Switch {
	prev := -1
	if s := st.Side(side); outSlot < len(s.Active) {
		prev = s.Active[outSlot]
	}
	return Switch{Side: side, OutSlot: outSlot, InTeamIndex: inTeamIndex, PrevTeamIndex: prev}
}

func (s Switch) Apply(st *State) {
	side := st.Side(s.Side)
	if s.OutSlot < len(side.Active) {
		side.Active[s.OutSlot] = s.InTeamIndex
	}
}

func (s Switch) Invert() Instruction {
	return Switch{Side: s.Side, OutSlot: s.OutSlot, InTeamIndex: s.PrevTeamIndex, PrevTeamIndex: s.InTeamIndex}
}

// ChangeAbility overwrites a Pokemon's current ability (Skill Swap,
// Worry Seed, Trace, ability-suppression effects).
type ChangeAbility struct {
	Pos  Position
	New  string
	Prev string
}

func NewChangeAbility(st *State, pos Position, newAbility string) ChangeAbility {
	prev := ""
	if p := st.At(pos); p != nil {
		prev = p.Ability
	}
	return ChangeAbility{Pos: pos, New: newAbility, Prev: prev}
}

func (c ChangeAbility) Apply(st *State) {
	if p := st.At(c.Pos); p != nil {
		p.Ability = c.New
	}
}
func (c ChangeAbility) Invert() Instruction {
	return ChangeAbility{Pos: c.Pos, New: c.Prev, Prev: c.New}
}

// ChangeItem overwrites a Pokemon's held item (Trick, Knock Off,
// Symbiosis, Fling).
type ChangeItem struct {
	Pos  Position
	New  string
	Prev string
}

func NewChangeItem(st *State, pos Position, newItem string) ChangeItem {
	prev := ""
	if p := st.At(pos); p != nil {
		prev = p.Item
	}
	return ChangeItem{Pos: pos, New: newItem, Prev: prev}
}

func (c ChangeItem) Apply(st *State) {
	if p := st.At(c.Pos); p != nil {
		p.Item = c.New
	}
}
func (c ChangeItem) Invert() Instruction {
	return ChangeItem{Pos: c.Pos, New: c.Prev, Prev: c.New}
}

// ChangeType overwrites a Pokemon's current types (Soak, Reflect Type,
// Burn Up, Roost's temporary Flying removal).
type ChangeType struct {
	Pos  Position
	New  [2]PokemonType
	Prev [2]PokemonType
}

func NewChangeType(st *State, pos Position, newTypes [2]PokemonType) ChangeType {
	var prev [2]PokemonType
	if p := st.At(pos); p != nil {
		prev = p.Types
	}
	return ChangeType{Pos: pos, New: newTypes, Prev: prev}
}

func (c ChangeType) Apply(st *State) {
	if p := st.At(c.Pos); p != nil {
		p.Types = c.New
	}
}
func (c ChangeType) Invert() Instruction {
	return ChangeType{Pos: c.Pos, New: c.Prev, Prev: c.New}
}

// Terastallize flips the Terastallized flag and sets TeraType. A
// Pokemon can only terastallize once per battle; the pipeline enforces
// that at choice-validation time (spec §7 InvalidChoice), not here.
type Terastallize struct {
	Pos      Position
	TeraType PokemonType
	Prev     bool
}

func NewTerastallize(st *State, pos Position, teraType PokemonType) Terastallize {
	prev := false
	if p := st.At(pos); p != nil {
		prev = p.Terastallized
	}
	return Terastallize{Pos: pos, TeraType: teraType, Prev: prev}
}

func (t Terastallize) Apply(st *State) {
	if p := st.At(t.Pos); p != nil {
		p.Terastallized = true
		p.TeraType = t.TeraType
	}
}
func (t Terastallize) Invert() Instruction {
	return untera{Pos: t.Pos, Prev: t.Prev}
}

type untera struct {
	Pos  Position
	Prev bool
}

func (u untera) Apply(st *State) {
	if p := st.At(u.Pos); p != nil {
		p.Terastallized = u.Prev
	}
}
func (u untera) Invert() Instruction { return u }

// FormeChange swaps a Pokemon's species/types/base stats in place
// (Aegislash Blade/Shield, Minior core, Palafin Hero, Ice Face, Zen
// Mode, Schooling, Power Construct).
type FormeChange struct {
	Pos         Position
	NewSpecies  string
	NewTypes    [2]PokemonType
	NewBase     BaseStats
	PrevSpecies string
	PrevTypes   [2]PokemonType
	PrevBase    BaseStats
}

func NewFormeChange(st *State, pos Position, species string, types [2]PokemonType, base BaseStats) FormeChange {
	fc := FormeChange{Pos: pos, NewSpecies: species, NewTypes: types, NewBase: base}
	if p := st.At(pos); p != nil {
		fc.PrevSpecies, fc.PrevTypes, fc.PrevBase = p.Species, p.Types, p.Base
	}
	return fc
}

func (f FormeChange) Apply(st *State) {
	p := st.At(f.Pos)
	if p == nil {
		return
	}
	p.Species, p.Types, p.Base = f.NewSpecies, f.NewTypes, f.NewBase
}
func (f FormeChange) Invert() Instruction {
	return FormeChange{
		Pos: f.Pos, NewSpecies: f.PrevSpecies, NewTypes: f.PrevTypes, NewBase: f.PrevBase,
		PrevSpecies: f.NewSpecies, PrevTypes: f.NewTypes, PrevBase: f.NewBase,
	}
}

// ChangeSubstituteHP sets the remaining HP of a Pokemon's substitute.
type ChangeSubstituteHP struct {
	Pos    Position
	NewHP  int
	PrevHP int
}

func NewChangeSubstituteHP(st *State, pos Position, newHP int) ChangeSubstituteHP {
	prev := 0
	if p := st.At(pos); p != nil {
		prev = p.SubHP
	}
	return ChangeSubstituteHP{Pos: pos, NewHP: newHP, PrevHP: prev}
}

func (c ChangeSubstituteHP) Apply(st *State) {
	if p := st.At(c.Pos); p != nil {
		p.SubHP = c.NewHP
		if p.SubHP <= 0 {
			p.Volatiles.clear(VolSubstitute)
		}
	}
}
func (c ChangeSubstituteHP) Invert() Instruction {
	return ChangeSubstituteHP{Pos: c.Pos, NewHP: c.PrevHP, PrevHP: c.NewHP}
}

// SetLastUsedMove records the move used this action, consumed by Mirror
// Move/Counter/Encore/Disable targeting.
type SetLastUsedMove struct {
	Pos  Position
	New  string
	Prev string
}

func NewSetLastUsedMove(st *State, pos Position, move string) SetLastUsedMove {
	prev := ""
	if p := st.At(pos); p != nil {
		prev = p.LastMove
	}
	return SetLastUsedMove{Pos: pos, New: move, Prev: prev}
}

func (s SetLastUsedMove) Apply(st *State) {
	if p := st.At(s.Pos); p != nil {
		p.LastMove = s.New
	}
}
func (s SetLastUsedMove) Invert() Instruction {
	return SetLastUsedMove{Pos: s.Pos, New: s.Prev, Prev: s.New}
}
