package battlelog

import (
	"encoding/json"
	"testing"
	"time"

	"battlecore/battle"
)

func TestRecorderAccumulatesEngagements(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := NewRecorder("test-battle", start)

	branches := []battle.BattleInstructions{{Probability: 100}}
	rec.RecordTurn(1, branches, 0)
	rec.RecordTurn(2, branches, 0)

	victor := battle.SideA
	record := rec.Finalize(start.Add(time.Minute), 2, &victor)

	if record.BattleID != "test-battle" {
		t.Errorf("BattleID: got %q", record.BattleID)
	}
	if len(record.Engagements) != 2 {
		t.Fatalf("expected 2 engagements, got %d", len(record.Engagements))
	}
	if record.VictorSide == nil || *record.VictorSide != battle.SideA {
		t.Errorf("expected victor SideA, got %v", record.VictorSide)
	}
}

func TestBattleRecordToJSONRoundTripsShape(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := NewRecorder("test-battle", start)
	rec.RecordTurn(1, []battle.BattleInstructions{{Probability: 100}}, 0)
	record := rec.Finalize(start, 1, nil)

	data, err := record.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decoding exported JSON failed: %v", err)
	}
	if decoded["battle_id"] != "test-battle" {
		t.Errorf("expected battle_id field in exported JSON, got %v", decoded["battle_id"])
	}
	if _, ok := decoded["victor_side"]; ok {
		t.Errorf("expected victor_side to be omitted when nil")
	}
}

func TestNewNopLoggerDoesNotPanic(t *testing.T) {
	logger := NewNop()
	logger.Trace("test message")
	logger.EngineError("test", "message", nil)
	if err := logger.Sync(); err != nil {
		t.Logf("Sync returned %v (expected on some platforms for stderr sinks)", err)
	}
}
