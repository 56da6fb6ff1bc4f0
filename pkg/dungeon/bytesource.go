package dungeon

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Decoder errors.
var (
	ErrOutOfBounds     = errors.New("read past end of buffer")
	ErrMalformedHeader = errors.New("malformed header")
	ErrTruncatedGrid   = errors.New("truncated tile grid")
)

// ByteSource provides bounds-checked little-endian reads over an immutable
// byte buffer. All offsets are absolute file offsets.
type ByteSource struct {
	data []byte
}

// NewByteSource wraps raw file contents. The buffer is not copied; callers
// must not mutate it for the lifetime of the decode.
func NewByteSource(data []byte) *ByteSource {
	return &ByteSource{data: data}
}

// Len returns the buffer length in bytes.
func (s *ByteSource) Len() int {
	return len(s.data)
}

// U8 reads an unsigned byte at the given offset.
func (s *ByteSource) U8(off int) (uint8, error) {
	if off < 0 || off+1 > len(s.data) {
		return 0, fmt.Errorf("%w: u8 at 0x%X (len 0x%X)", ErrOutOfBounds, off, len(s.data))
	}
	return s.data[off], nil
}

// U16 reads a little-endian unsigned 16-bit value at the given offset.
func (s *ByteSource) U16(off int) (uint16, error) {
	if off < 0 || off+2 > len(s.data) {
		return 0, fmt.Errorf("%w: u16 at 0x%X (len 0x%X)", ErrOutOfBounds, off, len(s.data))
	}
	return binary.LittleEndian.Uint16(s.data[off:]), nil
}

// U32 reads a little-endian unsigned 32-bit value at the given offset.
func (s *ByteSource) U32(off int) (uint32, error) {
	if off < 0 || off+4 > len(s.data) {
		return 0, fmt.Errorf("%w: u32 at 0x%X (len 0x%X)", ErrOutOfBounds, off, len(s.data))
	}
	return binary.LittleEndian.Uint32(s.data[off:]), nil
}
