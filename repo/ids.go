// Package repo implements the read-only data repositories the core
// consumes through lookup methods (spec §6): moves, species, abilities,
// items, the type chart, and per-generation move overrides.
//
// The storage substrate is the teacher's ECS library
// (github.com/bytearena/ecs) via the same EntityManager/component/tag
// pattern as common/ecsutil.go and tactical/combat/combatcomponents.go:
// each move/ability/item/species is one ecs.Entity carrying a single
// typed component with its full data struct, and a package-level Tag
// per data kind supports "list all moves" style enumeration the way the
// teacher enumerates all squads via squads.SquadTag.
package repo

type MoveID string
type AbilityID string
type ItemID string
type SpeciesID string
