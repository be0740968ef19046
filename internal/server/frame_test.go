package server

import (
	"encoding/json"
	"testing"

	"wormlife/pkg/core"
	"wormlife/pkg/engine"
)

func TestNewFrame(t *testing.T) {
	g, err := engine.NewGeneration(core.Size{W: 4, H: 4}, []core.Coord{
		{Row: 0, Col: 1}, {Row: 3, Col: 2},
	})
	if err != nil {
		t.Fatalf("NewGeneration: %v", err)
	}

	frame := NewFrame(g, true)
	if frame.Step != 0 || frame.Population != 2 || !frame.Stable {
		t.Fatalf("frame = %+v", frame)
	}
	if len(frame.Alive) != 2 || frame.Alive[0] != [2]int{0, 1} || frame.Alive[1] != [2]int{3, 2} {
		t.Fatalf("alive = %v", frame.Alive)
	}

	payload, err := json.Marshal(frame)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Frame
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Population != 2 || len(decoded.Alive) != 2 {
		t.Fatalf("decoded = %+v", decoded)
	}
}
