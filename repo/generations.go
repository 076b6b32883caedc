package repo

import (
	"battlecore/battle"
	"battlecore/format"
)

// MoveOverride patches fields of a MoveData for generations before the
// move reached its modern values (e.g. Gust was Normal-type pre-Gen6,
// Knock Off's base power only doubled against an item-holder from
// Gen6 on). Only the fields that actually differ are set; zero-value
// fields mean "same as base".
type MoveOverride struct {
	Gen       format.Generation // applies at generations strictly below this one
	Type      *battle.PokemonType
	BasePower *int
	Accuracy  *int
	Crit      *CritRatio
}

// ApplyOverrides walks a move's override list and returns the
// effective MoveData for the given generation, applying every override
// whose Gen threshold is above the requested generation in slice order
// (when two apply, the later entry's set fields win).
func ApplyOverrides(base MoveData, overrides []MoveOverride, gen format.Generation) MoveData {
	result := base
	for _, o := range overrides {
		if gen >= o.Gen {
			continue
		}
		if o.Type != nil {
			result.Type = *o.Type
		}
		if o.BasePower != nil {
			result.BasePower = *o.BasePower
		}
		if o.Accuracy != nil {
			result.Accuracy = *o.Accuracy
		}
		if o.Crit != nil {
			result.Crit = *o.Crit
		}
	}
	return result
}
