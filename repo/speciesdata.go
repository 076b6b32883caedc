package repo

import "battlecore/battle"

// SpeciesData is the static species record: typing, base stats, and
// the ability slots a Pokemon of this species can roll (spec §6). Forme
// changes (battle.FormeChange) swap a live Pokemon's fields to a
// different SpeciesData's values without needing a second Pokemon.
type SpeciesData struct {
	ID          SpeciesID
	Number      int
	Name        string
	Types       [2]battle.PokemonType // second is battle.TypeNone for mono-type
	Base        battle.BaseStats
	Abilities   []AbilityID // index 0/1 normal slots, index 2 (if present) hidden ability
	WeightKg    float64
}
