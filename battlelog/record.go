package battlelog

import (
	"encoding/json"
	"time"

	"battlecore/battle"
)

// BattleRecord is the root JSON-exported structure for one full battle,
// mirroring BattleRecorder's shape: one record per battle, built up one
// EngagementRecord per turn as RunTurn resolves branches.
type BattleRecord struct {
	BattleID    string             `json:"battle_id"`
	StartTime   time.Time          `json:"start_time"`
	EndTime     time.Time          `json:"end_time"`
	FinalTurn   int                `json:"final_turn"`
	VictorSide  *battle.SideID     `json:"victor_side,omitempty"`
	Engagements []EngagementRecord `json:"engagements"`
}

// EngagementRecord captures one turn's full branch set plus which
// branch was actually realized, satisfying spec.md §6's "the JSON
// serialization of []BattleInstructions is the canonical external
// interface."
type EngagementRecord struct {
	Turn           int                        `json:"turn"`
	Branches       []battle.BattleInstructions `json:"branches"`
	ChosenBranch   int                        `json:"chosen_branch"`
}

// Recorder accumulates engagements during a battle for later export, a
// mutable companion object kept outside the pure battle/pipeline
// packages -- the core never imports this type.
type Recorder struct {
	battleID  string
	startTime time.Time
	engagements []EngagementRecord
}

// NewRecorder starts a new recording session. t is the caller-supplied
// start time (the core forbids time.Now() internally; battlelog, being
// outside the core's determinism boundary, is where wall-clock time is
// allowed in).
func NewRecorder(battleID string, t time.Time) *Recorder {
	return &Recorder{battleID: battleID, startTime: t}
}

// RecordTurn appends one turn's branch set and the index of the branch
// that was actually applied.
func (r *Recorder) RecordTurn(turn int, branches []battle.BattleInstructions, chosen int) {
	r.engagements = append(r.engagements, EngagementRecord{
		Turn:         turn,
		Branches:     branches,
		ChosenBranch: chosen,
	})
}

// Finalize completes the record with the battle's outcome.
func (r *Recorder) Finalize(endTime time.Time, finalTurn int, victor *battle.SideID) *BattleRecord {
	return &BattleRecord{
		BattleID:    r.battleID,
		StartTime:   r.startTime,
		EndTime:     endTime,
		FinalTurn:   finalTurn,
		VictorSide:  victor,
		Engagements: r.engagements,
	}
}

// ToJSON marshals via the standard encoding/json struct tags above
// (BattleRecord has no MarshalJSON of its own); this helper exists only
// for callers that want a one-line export without importing
// encoding/json themselves.
func (b *BattleRecord) ToJSON() ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}
