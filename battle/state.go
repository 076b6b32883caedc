package battle

// TurnInfo carries cross-turn bookkeeping that isn't part of any single
// Pokemon or Side. It holds only the turn counter; the core keeps no
// RNG state.
type TurnInfo struct {
	Turn int
}

// Format abstraction the battle package needs without importing the
// format package (which itself has no need to import battle). Kept
// minimal; the real format.Format lives in package format and satisfies
// this interface trivially.
type FormatInfo interface {
	ActivePerSide() int
	GenerationNumber() int
}

// State owns both Sides, the Field, and turn info. It is treated as
// immutable within a single instruction-generation pass; the pipeline
// clones it before generating instructions for a turn and mutates the
// clone only by applying Instructions, per spec §3.
type State struct {
	Format   FormatInfo
	Sides    [2]*Side
	Field    *Field
	TurnInfo TurnInfo
}

func NewState(f FormatInfo, sideA, sideB *Side) *State {
	return &State{Format: f, Sides: [2]*Side{sideA, sideB}, Field: NewField()}
}

func (s *State) Side(id SideID) *Side { return s.Sides[id] }

func (s *State) At(p Position) *Pokemon {
	return s.Sides[p.Side].ActivePokemon(p.Slot)
}

// Clone deep-copies the entire state. Every instruction-generation pass
// starts from a Clone so the pipeline can always fall back to the
// original on error without partial mutation.
func (s *State) Clone() *State {
	return &State{
		Format:   s.Format,
		Sides:    [2]*Side{s.Sides[0].Clone(), s.Sides[1].Clone()},
		Field:    s.Field.Clone(),
		TurnInfo: s.TurnInfo,
	}
}

// AllActivePositions returns every position currently holding a
// non-fainted Pokemon, across both sides.
func (s *State) AllActivePositions() []Position {
	var out []Position
	for _, side := range s.Sides {
		for _, slot := range side.ActivePositions() {
			out = append(out, Position{Side: side.ID, Slot: slot})
		}
	}
	return out
}

// BattleOver reports whether one or both sides have no non-fainted team
// members left. winner is SideA or SideB when exactly one side lost;
// draw is true when both lost simultaneously.
func (s *State) BattleOver() (over bool, winner SideID, draw bool) {
	aLost := s.Sides[SideA].AllFainted()
	bLost := s.Sides[SideB].AllFainted()
	switch {
	case aLost && bLost:
		return true, 0, true
	case aLost:
		return true, SideB, false
	case bLost:
		return true, SideA, false
	default:
		return false, 0, false
	}
}
