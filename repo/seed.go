package repo

import "battlecore/battle"

// NewStaticRepositories builds the fixture data set exercised by the
// damage/effects/pipeline tests and by cmd/battlesim: a handful of
// species, moves, abilities, and items representative of each §8
// scenario category (pure physical, status infliction, drain/recoil,
// protect interaction, field-setting, stat-boosting), not a full
// Pokedex import.
func NewStaticRepositories() *Repositories {
	r := NewRepositories()
	seedSpecies(r)
	seedAbilities(r)
	seedItems(r)
	seedMoves(r)
	return r
}

func seedSpecies(r *Repositories) {
	r.AddSpecies(SpeciesData{
		ID: "pikachu", Number: 25, Name: "Pikachu",
		Types: [2]battle.PokemonType{battle.TypeElectric, battle.TypeNone},
		Base:  battle.BaseStats{HP: 35, Atk: 55, Def: 40, SpA: 50, SpD: 50, Spe: 90},
		Abilities: []AbilityID{"static"},
	})
	r.AddSpecies(SpeciesData{
		ID: "charmander", Number: 4, Name: "Charmander",
		Types: [2]battle.PokemonType{battle.TypeFire, battle.TypeNone},
		Base:  battle.BaseStats{HP: 39, Atk: 52, Def: 43, SpA: 60, SpD: 50, Spe: 65},
	})
	r.AddSpecies(SpeciesData{
		ID: "charizard", Number: 6, Name: "Charizard",
		Types: [2]battle.PokemonType{battle.TypeFire, battle.TypeFlying},
		Base:  battle.BaseStats{HP: 78, Atk: 84, Def: 78, SpA: 109, SpD: 85, Spe: 100},
	})
	r.AddSpecies(SpeciesData{
		ID: "garchomp", Number: 445, Name: "Garchomp",
		Types: [2]battle.PokemonType{battle.TypeDragon, battle.TypeGround},
		Base:  battle.BaseStats{HP: 108, Atk: 130, Def: 95, SpA: 80, SpD: 85, Spe: 102},
	})
	r.AddSpecies(SpeciesData{
		ID: "dragonite", Number: 149, Name: "Dragonite",
		Types:     [2]battle.PokemonType{battle.TypeDragon, battle.TypeFlying},
		Base:      battle.BaseStats{HP: 91, Atk: 134, Def: 95, SpA: 100, SpD: 100, Spe: 80},
		Abilities: []AbilityID{"multiscale"},
	})
	r.AddSpecies(SpeciesData{
		ID: "gengar", Number: 94, Name: "Gengar",
		Types: [2]battle.PokemonType{battle.TypeGhost, battle.TypePoison},
		Base:  battle.BaseStats{HP: 60, Atk: 65, Def: 60, SpA: 130, SpD: 75, Spe: 110},
		Abilities: []AbilityID{"levitate"},
	})
}

func seedAbilities(r *Repositories) {
	r.AddAbility(AbilityData{ID: "static", Number: 9, Name: "Static", Hooks: HookOnAfterMove})
	r.AddAbility(AbilityData{ID: "levitate", Number: 26, Name: "Levitate", Hooks: HookOnWeatherImmune})
	r.AddAbility(AbilityData{ID: "guts", Number: 62, Name: "Guts", Hooks: HookOnModifyDamageDealt})
	r.AddAbility(AbilityData{ID: "multiscale", Number: 92, Name: "Multiscale", Hooks: HookOnModifyDamageTaken})
	r.AddAbility(AbilityData{ID: "serenegrace", Number: 32, Name: "Serene Grace", Hooks: HookOnStatusAttempt})
	r.AddAbility(AbilityData{ID: "shielddust", Number: 19, Name: "Shield Dust", Hooks: HookOnStatusAttempt})
}

func seedItems(r *Repositories) {
	r.AddItem(ItemData{ID: "leftovers", Number: 234, Name: "Leftovers", Hooks: ItemHookOnResidual})
	r.AddItem(ItemData{ID: "lifeorb", Number: 270, Name: "Life Orb", Hooks: ItemHookOnModifyDamageDealt | ItemHookOnAfterMove})
	r.AddItem(ItemData{ID: "choiceband", Number: 220, Name: "Choice Band", Hooks: ItemHookOnModifyDamageDealt})
	r.AddItem(ItemData{ID: "focussash", Number: 275, Name: "Focus Sash", Hooks: ItemHookOnDamagedToSurvive, Consumable: true})
	r.AddItem(ItemData{ID: "airballoon", Number: 541, Name: "Air Balloon", Hooks: ItemHookOnGroundImmune, Consumable: true})
}

func seedMoves(r *Repositories) {
	r.AddMove(MoveData{
		ID: "tackle", Number: 33, Name: "Tackle", Type: battle.TypeNormal, Category: Physical,
		BasePower: 40, Accuracy: 100, PP: 35, TargetTag: TargetNormal, Flags: FlagContact,
	})
	r.AddMove(MoveData{
		ID: "thunder", Number: 87, Name: "Thunder", Type: battle.TypeElectric, Category: Special,
		BasePower: 110, Accuracy: 70, PP: 10, TargetTag: TargetNormal,
		Secondary: &SecondaryEffect{Chance: 30, Status: battle.StatusParalysis},
	})
	r.AddMove(MoveData{
		ID: "earthquake", Number: 89, Name: "Earthquake", Type: battle.TypeGround, Category: Physical,
		BasePower: 100, Accuracy: 100, PP: 10, TargetTag: TargetAllAdjacent,
	})
	r.AddMove(MoveData{
		ID: "willowisp", Number: 261, Name: "Will-O-Wisp", Type: battle.TypeFire, Category: Status,
		BasePower: 0, Accuracy: 85, PP: 15, TargetTag: TargetNormal,
		Secondary: &SecondaryEffect{Chance: 100, Status: battle.StatusBurn},
	})
	r.AddMove(MoveData{
		ID: "icefang", Number: 423, Name: "Ice Fang", Type: battle.TypeIce, Category: Physical,
		BasePower: 65, Accuracy: 95, PP: 15, TargetTag: TargetNormal,
		Flags:      FlagContact | FlagBite,
		Secondary:  &SecondaryEffect{Chance: 10, Status: battle.StatusFreeze},
		Secondary2: &SecondaryEffect{Chance: 10, Volatile: battle.VolFlinch, HasVol: true},
	})
	r.AddMove(MoveData{
		ID: "protect", Number: 182, Name: "Protect", Type: battle.TypeNormal, Category: Status,
		BasePower: 0, Accuracy: 0, PP: 10, Priority: 4, TargetTag: TargetSelf,
	})
	r.AddMove(MoveData{
		ID: "struggle", Number: 165, Name: "Struggle", Type: battle.TypeNormal, Category: Physical,
		BasePower: 50, Accuracy: 0, PP: 1, TargetTag: TargetRandomNormal,
		Recoil: &Fraction{Num: 1, Den: 4},
	})
	r.AddMove(MoveData{
		ID: "solarbeam", Number: 76, Name: "Solar Beam", Type: battle.TypeGrass, Category: Special,
		BasePower: 120, Accuracy: 100, PP: 10, TargetTag: TargetNormal,
	})
	r.AddMove(MoveData{
		ID: "leechseed", Number: 73, Name: "Leech Seed", Type: battle.TypeGrass, Category: Status,
		BasePower: 0, Accuracy: 90, PP: 10, TargetTag: TargetNormal,
		Secondary: &SecondaryEffect{Chance: 100, Volatile: battle.VolLeechSeed, HasVol: true},
	})
	r.AddMove(MoveData{
		ID: "stealthrock", Number: 446, Name: "Stealth Rock", Type: battle.TypeRock, Category: Status,
		BasePower: 0, Accuracy: 0, PP: 20, TargetTag: TargetFoeSide,
	})
	r.AddMove(MoveData{
		ID: "raindance", Number: 240, Name: "Rain Dance", Type: battle.TypeWater, Category: Status,
		BasePower: 0, Accuracy: 0, PP: 5, TargetTag: TargetAll,
	})
	r.AddMove(MoveData{
		ID: "swordsdance", Number: 14, Name: "Swords Dance", Type: battle.TypeNormal, Category: Status,
		BasePower: 0, Accuracy: 0, PP: 20, TargetTag: TargetSelf,
		SelfEffect: &SecondaryEffect{Boosts: battle.Boosts{battle.StatAtk: 2}},
	})
}
