package damage

import (
	"battlecore/format"
	"battlecore/repo"
)

// HitCountBranch is one possible number-of-hits outcome with its
// probability, for multi-hit moves (spec §4.3).
type HitCountBranch struct {
	Hits        int
	Probability float64
}

// HitCountDistribution returns the probability-weighted branches for a
// multi-hit move's hit count. 2-hit moves are always exactly 2 hits;
// 2-5 hit moves follow the modern 35/35/15/15 (2/3/4/5 hits)
// distribution from Gen 5 onward, and the classic 37.5/37.5/12.5/12.5
// split before that. Skill Link forces all 5; Loaded Dice reweights
// toward 4-5 by redistributing the 2/3-hit mass.
func HitCountDistribution(spec *repo.MultiHitSpec, gen format.Generation, hasSkillLink, hasLoadedDice bool) []HitCountBranch {
	if spec.Min == spec.Max {
		return []HitCountBranch{{Hits: spec.Min, Probability: 1}}
	}
	if hasSkillLink {
		return []HitCountBranch{{Hits: spec.Max, Probability: 1}}
	}
	if spec.Min == 2 && spec.Max == 5 {
		var weights [4]float64
		if gen >= format.Gen5 {
			weights = [4]float64{0.35, 0.35, 0.15, 0.15}
		} else {
			weights = [4]float64{0.375, 0.375, 0.125, 0.125}
		}
		if hasLoadedDice {
			weights = [4]float64{0, 0, 0.5, 0.5}
		}
		return []HitCountBranch{
			{Hits: 2, Probability: weights[0]},
			{Hits: 3, Probability: weights[1]},
			{Hits: 4, Probability: weights[2]},
			{Hits: 5, Probability: weights[3]},
		}
	}
	n := spec.Max - spec.Min + 1
	out := make([]HitCountBranch, n)
	for i := 0; i < n; i++ {
		out[i] = HitCountBranch{Hits: spec.Min + i, Probability: 1.0 / float64(n)}
	}
	return out
}
