package battle

// SetWeather installs a new weather, capturing the previous weather in
// full so Invert restores it exactly (spec §3 Field).
type SetWeather struct {
	Kind           WeatherKind
	Turns          *int
	Source         *Position
	PrevKind       WeatherKind
	PrevTurns      *int
	PrevSource     *Position
}

func NewSetWeather(st *State, kind WeatherKind, turns *int, source *Position) SetWeather {
	w := st.Field.Weather
	return SetWeather{
		Kind: kind, Turns: turns, Source: source,
		PrevKind: w.Kind, PrevTurns: w.TurnsRemaining, PrevSource: w.Source,
	}
}

func (s SetWeather) Apply(st *State) {
	st.Field.Weather = Weather{Kind: s.Kind, TurnsRemaining: s.Turns, Source: s.Source}
}

func (s SetWeather) Invert() Instruction {
	return SetWeather{
		Kind: s.PrevKind, Turns: s.PrevTurns, Source: s.PrevSource,
		PrevKind: s.Kind, PrevTurns: s.Turns, PrevSource: s.Source,
	}
}

// ClearWeather resets weather to WeatherNone, e.g. on expiry or Air Lock.
type ClearWeather struct {
	Prev Weather
}

func NewClearWeather(st *State) ClearWeather {
	return ClearWeather{Prev: st.Field.Weather}
}

func (c ClearWeather) Apply(st *State) {
	st.Field.Weather = Weather{}
}
func (c ClearWeather) Invert() Instruction {
	return SetWeather{Kind: c.Prev.Kind, Turns: c.Prev.TurnsRemaining, Source: c.Prev.Source}
}

// SetTerrain installs a new terrain, mirroring SetWeather.
type SetTerrain struct {
	Kind       TerrainKind
	Turns      *int
	Source     *Position
	PrevKind   TerrainKind
	PrevTurns  *int
	PrevSource *Position
}

func NewSetTerrain(st *State, kind TerrainKind, turns *int, source *Position) SetTerrain {
	t := st.Field.TerrainSt
	return SetTerrain{
		Kind: kind, Turns: turns, Source: source,
		PrevKind: t.Kind, PrevTurns: t.TurnsRemaining, PrevSource: t.Source,
	}
}

func (s SetTerrain) Apply(st *State) {
	st.Field.TerrainSt = Terrain{Kind: s.Kind, TurnsRemaining: s.Turns, Source: s.Source}
}
func (s SetTerrain) Invert() Instruction {
	return SetTerrain{
		Kind: s.PrevKind, Turns: s.PrevTurns, Source: s.PrevSource,
		PrevKind: s.Kind, PrevTurns: s.Turns, PrevSource: s.Source,
	}
}

type ClearTerrain struct{ Prev Terrain }

func NewClearTerrain(st *State) ClearTerrain { return ClearTerrain{Prev: st.Field.TerrainSt} }
func (c ClearTerrain) Apply(st *State)       { st.Field.TerrainSt = Terrain{} }
func (c ClearTerrain) Invert() Instruction {
	return SetTerrain{Kind: c.Prev.Kind, Turns: c.Prev.TurnsRemaining, Source: c.Prev.Source}
}

// SetPseudoWeather installs/refreshes a global duration-only condition
// (Trick Room, Gravity, Magic Room, Wonder Room).
type SetPseudoWeather struct {
	Kind      DurationCondition
	Turns     int
	WasActive bool
	PrevTurns int
}

func NewSetPseudoWeather(st *State, kind DurationCondition, turns int) SetPseudoWeather {
	prev, active := st.Field.Pseudo[kind]
	return SetPseudoWeather{Kind: kind, Turns: turns, WasActive: active, PrevTurns: prev}
}

func (s SetPseudoWeather) Apply(st *State) {
	st.Field.Pseudo[s.Kind] = s.Turns
	if s.Kind == CondGravity {
		st.Field.Gravity = true
	}
}

func (s SetPseudoWeather) Invert() Instruction {
	return clearOrRestorePseudo{Kind: s.Kind, WasActive: s.WasActive, PrevTurns: s.PrevTurns}
}

type clearOrRestorePseudo struct {
	Kind      DurationCondition
	WasActive bool
	PrevTurns int
}

func (c clearOrRestorePseudo) Apply(st *State) {
	if c.WasActive {
		st.Field.Pseudo[c.Kind] = c.PrevTurns
	} else {
		delete(st.Field.Pseudo, c.Kind)
		if c.Kind == CondGravity {
			st.Field.Gravity = false
		}
	}
}
func (c clearOrRestorePseudo) Invert() Instruction {
	return SetPseudoWeather{Kind: c.Kind, Turns: 0, WasActive: !c.WasActive}
}

// DecrementDuration decrements one of the three duration families by one
// turn: weather, terrain, or a global pseudo-weather. Exactly one of the
// three target fields is set; the others are zero values. Expiry (the
// counter reaching zero) is the caller's responsibility via a follow-up
// ClearWeather/ClearTerrain/clearOrRestorePseudo instruction, matching
// spec §4.4 Phase 5's "tick then expire at 0" wording.
type DecrementDuration struct {
	Field    DurationField
	Pseudo   DurationCondition // only meaningful when Field == DurationPseudo
}

type DurationField int

const (
	DurationWeather DurationField = iota
	DurationTerrain
	DurationPseudo
	DurationSideCondition
)

func (d DecrementDuration) Apply(st *State) {
	switch d.Field {
	case DurationWeather:
		if n := st.Field.Weather.TurnsRemaining; n != nil {
			*n--
		}
	case DurationTerrain:
		if n := st.Field.TerrainSt.TurnsRemaining; n != nil {
			*n--
		}
	case DurationPseudo:
		if n, ok := st.Field.Pseudo[d.Pseudo]; ok {
			st.Field.Pseudo[d.Pseudo] = n - 1
		}
	}
}
func (d DecrementDuration) Invert() Instruction {
	return incrementDuration{Field: d.Field, Pseudo: d.Pseudo}
}

type incrementDuration struct {
	Field  DurationField
	Pseudo DurationCondition
}

func (i incrementDuration) Apply(st *State) {
	switch i.Field {
	case DurationWeather:
		if n := st.Field.Weather.TurnsRemaining; n != nil {
			*n++
		}
	case DurationTerrain:
		if n := st.Field.TerrainSt.TurnsRemaining; n != nil {
			*n++
		}
	case DurationPseudo:
		if n, ok := st.Field.Pseudo[i.Pseudo]; ok {
			st.Field.Pseudo[i.Pseudo] = n + 1
		}
	}
}
func (i incrementDuration) Invert() Instruction {
	return DecrementDuration{Field: i.Field, Pseudo: i.Pseudo}
}

// SetSideCondition installs or refreshes a side condition's
// duration/layer count (Stealth Rock, Spikes, screens, Tailwind, ...).
type SetSideCondition struct {
	Side      SideID
	Cond      SideCondition
	Value     int
	WasActive bool
	PrevValue int
}

func NewSetSideCondition(st *State, side SideID, cond SideCondition, value int) SetSideCondition {
	prev, active := st.Side(side).Conditions[cond]
	return SetSideCondition{Side: side, Cond: cond, Value: value, WasActive: active, PrevValue: prev}
}

func (s SetSideCondition) Apply(st *State) {
	st.Side(s.Side).Conditions[s.Cond] = s.Value
}
func (s SetSideCondition) Invert() Instruction {
	return clearOrRestoreSideCondition{Side: s.Side, Cond: s.Cond, WasActive: s.WasActive, PrevValue: s.PrevValue}
}

type clearOrRestoreSideCondition struct {
	Side      SideID
	Cond      SideCondition
	WasActive bool
	PrevValue int
}

func (c clearOrRestoreSideCondition) Apply(st *State) {
	side := st.Side(c.Side)
	if c.WasActive {
		side.Conditions[c.Cond] = c.PrevValue
	} else {
		delete(side.Conditions, c.Cond)
	}
}
func (c clearOrRestoreSideCondition) Invert() Instruction {
	return SetSideCondition{Side: c.Side, Cond: c.Cond, WasActive: !c.WasActive}
}

// DecrementSideCondition ticks one side condition's turn counter by one
// (layer counts such as Spikes are not decremented this way -- only
// time-based conditions are).
type DecrementSideCondition struct {
	Side SideID
	Cond SideCondition
}

func (d DecrementSideCondition) Apply(st *State) {
	side := st.Side(d.Side)
	if v, ok := side.Conditions[d.Cond]; ok {
		side.Conditions[d.Cond] = v - 1
	}
}
func (d DecrementSideCondition) Invert() Instruction {
	return incrementSideCondition{Side: d.Side, Cond: d.Cond}
}

type incrementSideCondition struct {
	Side SideID
	Cond SideCondition
}

func (i incrementSideCondition) Apply(st *State) {
	side := st.Side(i.Side)
	if v, ok := side.Conditions[i.Cond]; ok {
		side.Conditions[i.Cond] = v + 1
	}
}
func (i incrementSideCondition) Invert() Instruction {
	return DecrementSideCondition{Side: i.Side, Cond: i.Cond}
}
