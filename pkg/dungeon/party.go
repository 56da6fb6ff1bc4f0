package dungeon

import "fmt"

// PartyStart is the initial player placement.
type PartyStart struct {
	MapIndex int
	X, Y     int
	Facing   Facing
}

// ReadPartyStart decodes the packed party-start word: x in bits 0-4, y in
// bits 5-9, facing in bits 10-11, map index in bits 12-15. The map index is
// validated against the offset table by the orchestrator, not here.
func ReadPartyStart(src *ByteSource, format *Format) (PartyStart, error) {
	word, err := src.U16(format.PartyStartOffset)
	if err != nil {
		return PartyStart{}, fmt.Errorf("party start: %w", err)
	}
	return PartyStart{
		X:        int(word & 0x1F),
		Y:        int((word >> 5) & 0x1F),
		Facing:   Facing((word >> 10) & 0x3),
		MapIndex: int((word >> 12) & 0xF),
	}, nil
}
