// Package dungeon decodes uncompressed Dungeon Master 1 (PC) world files
// into per-map tile grids, sensor lists, and the party starting position.
package dungeon

import "fmt"

// CellPacking selects how tile cells are packed in the map data.
type CellPacking int

// Cell packing modes.
const (
	// PackByte stores one cell per byte (DM1 PC v1).
	PackByte CellPacking = iota
	// PackNibble stores two cells per byte, high nibble first. Seen in
	// space-optimized sub-versions of the format.
	PackNibble
)

// Format describes the fixed binary layout of one world-file variant.
// Every offset, stride, and field width the decoder relies on lives here so
// that format sub-versions differ only in the value passed to Decode.
type Format struct {
	// Header field offsets.
	RandomSeedOffset  int // u16
	MapDataSizeOffset int // u16
	MapCountOffset    int // u8
	PartyStartOffset  int // u16 packed position word

	// Per-map offset table: count pairs of (tile-grid offset u32,
	// sensor-list offset u32) starting at TableBase, TableStride apart.
	TableBase   int
	TableStride int

	// Tile grid geometry. GridWidth*GridHeight cells, row-major.
	GridWidth  int
	GridHeight int
	Packing    CellPacking

	// Sensor list: u16 count followed by SensorRecordSize-byte records.
	SensorRecordSize int
	SensorTypeOffset int // u16 type word within the record
	SensorXOffset    int // u8
	SensorYOffset    int // u8

	// Actuator code sets for sensor classification.
	PressurePlateCodes map[uint8]bool
	WallButtonCodes    map[uint8]bool

	// Legend maps tile codes to human-readable names, shared by all maps.
	Legend map[uint8]string

	// MaxMaps is the sanity ceiling on the header map count.
	MaxMaps int
}

// Cells returns the number of cells in one map's grid.
func (f *Format) Cells() int {
	return f.GridWidth * f.GridHeight
}

// gridBytes returns the byte length of one packed tile grid.
func (f *Format) gridBytes() int {
	if f.Packing == PackNibble {
		return (f.Cells() + 1) / 2
	}
	return f.Cells()
}

// TileName resolves a tile code through the legend. Codes the legend does
// not know resolve to "unknown"; callers that need to distinguish should
// check Known.
func (f *Format) TileName(code uint8) string {
	if name, ok := f.Legend[code]; ok {
		return name
	}
	return "unknown"
}

// Known reports whether the legend has a name for the given tile code.
func (f *Format) Known(code uint8) bool {
	_, ok := f.Legend[code]
	return ok
}

// FormatDM1PC returns the layout of the standard DM1 PC world file.
func FormatDM1PC() *Format {
	return &Format{
		RandomSeedOffset:  0x00,
		MapDataSizeOffset: 0x02,
		MapCountOffset:    0x04,
		PartyStartOffset:  0x08,
		TableBase:         0x0C,
		TableStride:       8,
		GridWidth:         32,
		GridHeight:        32,
		Packing:           PackByte,
		SensorRecordSize:  8,
		SensorTypeOffset:  2,
		SensorXOffset:     4,
		SensorYOffset:     5,
		PressurePlateCodes: map[uint8]bool{
			1: true, 2: true, 3: true, 4: true, 7: true,
		},
		WallButtonCodes: map[uint8]bool{
			1: true, 2: true, 3: true, 4: true,
		},
		Legend: map[uint8]string{
			0: "wall",
			1: "floor",
			2: "pit",
			3: "stairs",
			4: "door",
			5: "teleporter",
			6: "trick_wall",
			7: "empty",
		},
		MaxMaps: 64,
	}
}

// FormatDM1PCNibble returns the nibble-packed sub-variant of the PC layout.
// Cell attribute bits beyond the object flag are not present in this packing.
func FormatDM1PCNibble() *Format {
	f := FormatDM1PC()
	f.Packing = PackNibble
	return f
}

// Facing is a cardinal direction as stored in position words.
type Facing uint8

// Facing values, in the order the format encodes them.
const (
	North Facing = iota
	East
	South
	West
)

// String returns the lowercase direction name.
func (d Facing) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("facing(%d)", uint8(d))
	}
}
