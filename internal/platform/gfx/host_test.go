package gfx

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/stasis-arcade/internal/core"
)

func keySet(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestSampleInput(t *testing.T) {
	tests := []struct {
		name        string
		pressed     []ebiten.Key
		justPressed []ebiten.Key
		want        []core.Action
	}{
		{"nothing", nil, nil, nil},
		{"held arrows combine", []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyD}, nil, []core.Action{core.ActionUp, core.ActionRight}},
		{"held toggle key does not repeat", []ebiten.Key{ebiten.KeyT}, nil, nil},
		{"toggle press", nil, []ebiten.Key{ebiten.KeyZ}, []core.Action{core.ActionToggle}},
		{"start and restart", nil, []ebiten.Key{ebiten.KeySpace, ebiten.KeyR}, []core.Action{core.ActionConfirm, core.ActionRestart}},
		{"pause on escape", nil, []ebiten.Key{ebiten.KeyEscape}, []core.Action{core.ActionPause}},
		{"quit", nil, []ebiten.Key{ebiten.KeyQ}, []core.Action{core.ActionQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := sampleInput(keySet(tt.pressed...), keySet(tt.justPressed...))
			if len(in.Actions) != len(tt.want) {
				t.Fatalf("actions = %v, want %v", in.Actions, tt.want)
			}
			for _, a := range tt.want {
				if !in.Has(a) {
					t.Errorf("missing %v in %v", a, in.Actions)
				}
			}
		})
	}
}
