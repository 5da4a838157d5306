package term

import (
	"testing"

	"github.com/akarpov/notflappy/internal/core"
)

func TestKeyboardDecode(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		key   core.Key
	}{
		{"space flaps", []byte{' '}, core.KeyFlap},
		{"q quits", []byte{'q'}, core.KeyQuit},
		{"shift-q quits", []byte{'Q'}, core.KeyQuit},
		{"ctrl-c quits", []byte{0x03}, core.KeyQuit},
		{"right arrow", []byte{0x1b, '[', 'C'}, core.KeyRight},
		{"left arrow", []byte{0x1b, '[', 'D'}, core.KeyLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kb := NewKeyboard()
			kb.decode(tc.bytes)
			if !kb.KeyDown(tc.key) {
				t.Errorf("decode(%v) did not register %v", tc.bytes, tc.key)
			}
		})
	}
}

func TestKeyboardConsumesPress(t *testing.T) {
	kb := NewKeyboard()
	kb.decode([]byte{' '})

	if !kb.KeyDown(core.KeyFlap) {
		t.Fatal("first poll should see the press")
	}
	if kb.KeyDown(core.KeyFlap) {
		t.Error("second poll should not see the same press again")
	}
}

func TestKeyboardIgnoresUnknownBytes(t *testing.T) {
	kb := NewKeyboard()
	kb.decode([]byte{'x', 'z', 0x1b, '[', 'A'}) // up arrow is unbound

	for _, k := range []core.Key{core.KeyFlap, core.KeyLeft, core.KeyRight, core.KeyQuit} {
		if kb.KeyDown(k) {
			t.Errorf("unexpected press of %v", k)
		}
	}
}

func TestKeyboardDecodesMixedChunk(t *testing.T) {
	// One read can carry several events
	kb := NewKeyboard()
	kb.decode([]byte{' ', 0x1b, '[', 'C', 'q'})

	if !kb.KeyDown(core.KeyFlap) {
		t.Error("flap missing from mixed chunk")
	}
	if !kb.KeyDown(core.KeyRight) {
		t.Error("right missing from mixed chunk")
	}
	if !kb.KeyDown(core.KeyQuit) {
		t.Error("quit missing from mixed chunk")
	}
}
