package dungeon

import (
	"errors"
	"testing"
)

func TestByteSourceReads(t *testing.T) {
	src := NewByteSource([]byte{0x11, 0x22, 0x33, 0x44, 0x55})

	if src.Len() != 5 {
		t.Errorf("Len = %d, want 5", src.Len())
	}

	b, err := src.U8(0)
	if err != nil || b != 0x11 {
		t.Errorf("U8(0) = 0x%X, %v; want 0x11", b, err)
	}

	w, err := src.U16(1)
	if err != nil || w != 0x3322 {
		t.Errorf("U16(1) = 0x%X, %v; want 0x3322", w, err)
	}

	d, err := src.U32(1)
	if err != nil || d != 0x55443322 {
		t.Errorf("U32(1) = 0x%X, %v; want 0x55443322", d, err)
	}
}

func TestByteSourceBounds(t *testing.T) {
	src := NewByteSource([]byte{0x01, 0x02})

	tests := []struct {
		name string
		read func() error
	}{
		{"u8 past end", func() error { _, err := src.U8(2); return err }},
		{"u16 straddling end", func() error { _, err := src.U16(1); return err }},
		{"u32 past end", func() error { _, err := src.U32(0); return err }},
		{"negative offset", func() error { _, err := src.U8(-1); return err }},
	}

	for _, tc := range tests {
		err := tc.read()
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("%s: error %v is not ErrOutOfBounds", tc.name, err)
		}
	}
}

func TestByteSourceEmptyBuffer(t *testing.T) {
	src := NewByteSource(nil)
	if _, err := src.U8(0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("U8 on empty buffer: got %v, want ErrOutOfBounds", err)
	}
}
