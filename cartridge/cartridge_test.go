package cartridge

import "testing"

func TestNewNROMAcceptsValidSizes(t *testing.T) {
	for _, size := range []int{0x4000, 0x8000} {
		prg := make([]byte, size)
		if _, err := NewNROM(prg, nil, Horizontal); err != nil {
			t.Errorf("NewNROM(%d bytes): unexpected error: %v", size, err)
		}
	}
}

func TestNewNROMRejectsBadSize(t *testing.T) {
	prg := make([]byte, 0x1000)
	if _, err := NewNROM(prg, nil, Horizontal); err == nil {
		t.Errorf("NewNROM(0x1000 bytes): expected error, got nil")
	}
}
