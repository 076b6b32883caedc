package repo

import (
	"battlecore/format"

	"github.com/bytearena/ecs"
)

// Component and tag variables, following the teacher's package-level
// var block plus Init* function pattern (tactical/combat/combatcomponents.go).
var (
	MoveComponent    *ecs.Component
	AbilityComponent *ecs.Component
	ItemComponent    *ecs.Component
	SpeciesComponent *ecs.Component

	MoveTag    ecs.Tag
	AbilityTag ecs.Tag
	ItemTag    ecs.Tag
	SpeciesTag ecs.Tag
)

// Repositories is the ECS-backed substrate for all read-only battle
// data (spec §6). Each move/ability/item/species is one ecs.Entity
// carrying a single typed component; IDs are resolved to entities via
// a name index rather than ecs.EntityID, since callers address data by
// the stable string IDs the format/teams reference.
type Repositories struct {
	world *ecs.Manager

	moveIdx    map[MoveID]*ecs.Entity
	abilityIdx map[AbilityID]*ecs.Entity
	itemIdx    map[ItemID]*ecs.Entity
	speciesIdx map[SpeciesID]*ecs.Entity

	overrides map[MoveID][]MoveOverride
}

// NewRepositories builds an empty ECS world with components and tags
// registered, mirroring InitCombatComponents/InitCombatTags.
func NewRepositories() *Repositories {
	r := &Repositories{
		world:      ecs.NewManager(),
		moveIdx:    make(map[MoveID]*ecs.Entity),
		abilityIdx: make(map[AbilityID]*ecs.Entity),
		itemIdx:    make(map[ItemID]*ecs.Entity),
		speciesIdx: make(map[SpeciesID]*ecs.Entity),
		overrides:  make(map[MoveID][]MoveOverride),
	}
	r.initComponents()
	r.initTags()
	return r
}

func (r *Repositories) initComponents() {
	MoveComponent = r.world.NewComponent()
	AbilityComponent = r.world.NewComponent()
	ItemComponent = r.world.NewComponent()
	SpeciesComponent = r.world.NewComponent()
}

func (r *Repositories) initTags() {
	MoveTag = ecs.BuildTag(MoveComponent)
	AbilityTag = ecs.BuildTag(AbilityComponent)
	ItemTag = ecs.BuildTag(ItemComponent)
	SpeciesTag = ecs.BuildTag(SpeciesComponent)
}

func (r *Repositories) AddMove(m MoveData, overrides ...MoveOverride) {
	e := r.world.NewEntity()
	e.AddComponent(MoveComponent, m)
	r.moveIdx[m.ID] = e
	if len(overrides) > 0 {
		r.overrides[m.ID] = overrides
	}
}

func (r *Repositories) AddAbility(a AbilityData) {
	e := r.world.NewEntity()
	e.AddComponent(AbilityComponent, a)
	r.abilityIdx[a.ID] = e
}

func (r *Repositories) AddItem(i ItemData) {
	e := r.world.NewEntity()
	e.AddComponent(ItemComponent, i)
	r.itemIdx[i.ID] = e
}

func (r *Repositories) AddSpecies(s SpeciesData) {
	e := r.world.NewEntity()
	e.AddComponent(SpeciesComponent, s)
	r.speciesIdx[s.ID] = e
}

func (r *Repositories) Move(id MoveID) (MoveData, bool) {
	e, ok := r.moveIdx[id]
	if !ok {
		return MoveData{}, false
	}
	data, ok := e.GetComponentData(MoveComponent)
	if !ok {
		return MoveData{}, false
	}
	return data.(MoveData), true
}

// MoveForGen resolves a move's data as it behaves in the given
// generation, applying any registered MoveOverrides.
func (r *Repositories) MoveForGen(id MoveID, gen format.Generation) (MoveData, bool) {
	base, ok := r.Move(id)
	if !ok {
		return MoveData{}, false
	}
	return ApplyOverrides(base, r.overrides[id], gen), true
}

func (r *Repositories) Ability(id AbilityID) (AbilityData, bool) {
	e, ok := r.abilityIdx[id]
	if !ok {
		return AbilityData{}, false
	}
	data, ok := e.GetComponentData(AbilityComponent)
	if !ok {
		return AbilityData{}, false
	}
	return data.(AbilityData), true
}

func (r *Repositories) Item(id ItemID) (ItemData, bool) {
	e, ok := r.itemIdx[id]
	if !ok {
		return ItemData{}, false
	}
	data, ok := e.GetComponentData(ItemComponent)
	if !ok {
		return ItemData{}, false
	}
	return data.(ItemData), true
}

func (r *Repositories) Species(id SpeciesID) (SpeciesData, bool) {
	e, ok := r.speciesIdx[id]
	if !ok {
		return SpeciesData{}, false
	}
	data, ok := e.GetComponentData(SpeciesComponent)
	if !ok {
		return SpeciesData{}, false
	}
	return data.(SpeciesData), true
}

// AllMoves enumerates every registered move via the world query, the
// way the teacher enumerates all squads through squads.SquadTag.
func (r *Repositories) AllMoves() []MoveData {
	var out []MoveData
	for _, result := range r.world.Query(MoveTag) {
		data, ok := result.Entity.GetComponentData(MoveComponent)
		if !ok {
			continue
		}
		out = append(out, data.(MoveData))
	}
	return out
}
