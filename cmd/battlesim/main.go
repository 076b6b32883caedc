// cmd/battlesim is a thin integration smoke point, grounded on
// tactical/combatsim/cmd/combatsim_main.go (flag-driven, builds a
// scenario, runs it, prints a report). It is deliberately outside the
// core: it imports battle/repo/pipeline/policy/battlelog, none of them
// import it.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"battlecore/battle"
	"battlecore/battlelog"
	"battlecore/format"
	"battlecore/pipeline"
	"battlecore/policy"
	"battlecore/repo"
)

func main() {
	maxTurns := flag.Int("max-turns", 100, "maximum turns before declaring a draw")
	seed := flag.Int64("seed", 1, "RNG seed for the random policy")
	verbose := flag.Bool("verbose", false, "print each turn's chosen branch")
	flag.Parse()

	repos := repo.NewStaticRepositories()
	st := newDemoState(repos)

	logger, err := battlelog.NewLogger("info", true)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	rng := rand.New(rand.NewSource(*seed))
	sideAPolicy := policy.NewRandomPolicy(rng)
	sideBPolicy := policy.FirstLegalPolicy{}

	rec := battlelog.NewRecorder("battlesim_demo", time.Now())

	opts := pipeline.Options{TieBreak: pipeline.TieBreakBranch, PruneThreshold: 0.1}

	turn := 1
	for ; turn <= *maxTurns; turn++ {
		if sideFainted(st, battle.SideA) || sideFainted(st, battle.SideB) {
			break
		}

		choiceA := sideAPolicy.ChooseMove(st, battle.SideA, repos)
		choiceB := sideBPolicy.ChooseMove(st, battle.SideB, repos)

		branches, err := pipeline.RunTurn(st, choiceA, choiceB, repos, opts)
		if err != nil {
			logger.EngineError("turn_error", fmt.Sprintf("turn %d", turn), err)
			log.Fatalf("turn %d failed: %v", turn, err)
		}

		chosen := pickBranch(rng, branches)
		st = branches[chosen].Apply(st)
		rec.RecordTurn(turn, branches, chosen)

		if *verbose {
			fmt.Printf("turn %d: %d branches, chose #%d (p=%.4f%%)\n", turn, len(branches), chosen, branches[chosen].Probability)
		}
	}

	var victor *battle.SideID
	switch {
	case sideFainted(st, battle.SideA) && !sideFainted(st, battle.SideB):
		v := battle.SideB
		victor = &v
	case sideFainted(st, battle.SideB) && !sideFainted(st, battle.SideA):
		v := battle.SideA
		victor = &v
	}

	record := rec.Finalize(time.Now(), turn, victor)
	out, err := record.ToJSON()
	if err != nil {
		log.Fatalf("failed to marshal battle record: %v", err)
	}
	fmt.Println(string(out))
}

func sideFainted(st *battle.State, id battle.SideID) bool {
	return st.Side(id).AllFainted()
}

// pickBranch samples one branch according to its probability weight --
// the only place in this driver that resolves a probability-weighted
// outcome into a single concrete successor state, per spec §4.4 Phase 6.
func pickBranch(rng *rand.Rand, branches []battle.BattleInstructions) int {
	r := rng.Float64() * 100
	var acc float64
	for i, b := range branches {
		acc += b.Probability
		if r < acc {
			return i
		}
	}
	return len(branches) - 1
}

// newDemoState builds a fixed two-Pokemon-per-side Singles state from
// the seed repositories -- standing in for the external team-builder
// spec.md defers to plumbing (§6 "team legality is out of scope").
func newDemoState(repos *repo.Repositories) *battle.State {
	f := format.Standard(format.Gen9, format.Singles)

	sideATeam := []battle.Pokemon{
		newPokemon(repos, "pikachu", 50, "static", "", []string{"thunder", "tackle"}),
		newPokemon(repos, "charizard", 50, "", "lifeorb", []string{"solarbeam", "tackle"}),
	}
	sideBTeam := []battle.Pokemon{
		newPokemon(repos, "garchomp", 50, "", "leftovers", []string{"earthquake", "swordsdance"}),
		newPokemon(repos, "gengar", 50, "levitate", "", []string{"willowisp", "protect"}),
	}

	sideA := battle.NewSide(battle.SideA, f.ActivePerSide(), sideATeam)
	sideB := battle.NewSide(battle.SideB, f.ActivePerSide(), sideBTeam)
	return battle.NewState(f, sideA, sideB)
}

func newPokemon(repos *repo.Repositories, speciesID string, level int, ability, item string, moveIDs []string) battle.Pokemon {
	species, ok := repos.Species(repo.SpeciesID(speciesID))
	if !ok {
		log.Fatalf("unknown seed species %q", speciesID)
	}
	if ability == "" && len(species.Abilities) > 0 {
		ability = string(species.Abilities[0])
	}

	p := battle.Pokemon{
		Species:       speciesID,
		Level:         level,
		Types:         species.Types,
		OriginalTypes: species.Types,
		Base:          species.Base,
		IVs:           battle.BaseStats{HP: 31, Atk: 31, Def: 31, SpA: 31, SpD: 31, Spe: 31},
		EVs:           battle.BaseStats{},
		Ability:       ability,
		BaseAbility:   ability,
		Item:          item,
		Volatiles:     battle.NewVolatiles(),
	}
	for i, id := range moveIDs {
		if i >= len(p.Moves) {
			break
		}
		move, ok := repos.Move(repo.MoveID(id))
		if !ok {
			log.Fatalf("unknown seed move %q", id)
		}
		p.Moves[i] = battle.MoveSlot{Move: id, PP: move.PP, MaxPP: move.PP}
	}
	p.MaxHP = p.RawStat(battle.StatHP)
	p.CurrentHP = p.MaxHP
	return p
}
