package dungeon

import "fmt"

// Orientation is the axis a door or staircase is aligned with.
type Orientation uint8

// Orientation values.
const (
	OrientNone Orientation = iota
	Horizontal             // west-east
	Vertical               // north-south
)

// String returns the lowercase orientation name, or "" for OrientNone.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return ""
	}
}

// StairsDirection tells whether a staircase leads up or down.
type StairsDirection uint8

// Stairs directions.
const (
	StairsNone StairsDirection = iota
	StairsDown
	StairsUp
)

// String returns the lowercase direction name, or "" for StairsNone.
func (d StairsDirection) String() string {
	switch d {
	case StairsDown:
		return "down"
	case StairsUp:
		return "up"
	default:
		return ""
	}
}

// Tile codes with attribute bits in the byte packing.
const (
	tileCodeStairs uint8 = 3
	tileCodeDoor   uint8 = 4
)

// Tile is one decoded grid cell.
type Tile struct {
	Code  uint8
	Name  string // legend name, "unknown" for codes outside the legend
	Known bool   // false when the legend has no entry for Code

	// Attribute bits carried by the packed cell.
	ObjectPresent bool
	Orientation   Orientation     // doors and stairs only
	StairsDir     StairsDirection // stairs only
}

// TileGrid is one map's decoded floor plan, row-major from the top-left.
type TileGrid struct {
	Width  int
	Height int
	Tiles  []Tile
}

// Tile returns the cell at (x, y), or nil if out of bounds.
func (g *TileGrid) Tile(x, y int) *Tile {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return nil
	}
	return &g.Tiles[y*g.Width+x]
}

// UnknownCount returns the number of cells whose code is not in the legend.
func (g *TileGrid) UnknownCount() int {
	n := 0
	for i := range g.Tiles {
		if !g.Tiles[i].Known {
			n++
		}
	}
	return n
}

// DecodeTileGrid decodes one map's packed tile grid starting at the given
// absolute offset. Unknown tile codes are retained with Name "unknown"
// rather than failing the map; the only error is ErrTruncatedGrid when the
// grid data runs past the buffer.
func DecodeTileGrid(src *ByteSource, format *Format, offset int) (*TileGrid, error) {
	cells := format.Cells()
	if offset < 0 || offset+format.gridBytes() > src.Len() {
		return nil, fmt.Errorf("%w: %d cells at 0x%X need 0x%X bytes (len 0x%X)",
			ErrTruncatedGrid, cells, offset, format.gridBytes(), src.Len())
	}

	grid := &TileGrid{
		Width:  format.GridWidth,
		Height: format.GridHeight,
		Tiles:  make([]Tile, cells),
	}
	for i := 0; i < cells; i++ {
		var tile Tile
		switch format.Packing {
		case PackNibble:
			b, err := src.U8(offset + i/2)
			if err != nil {
				return nil, fmt.Errorf("%w: cell %d: %v", ErrTruncatedGrid, i, err)
			}
			nibble := b >> 4
			if i%2 == 1 {
				nibble = b & 0x0F
			}
			tile = decodeNibbleCell(format, nibble)
		default:
			b, err := src.U8(offset + i)
			if err != nil {
				return nil, fmt.Errorf("%w: cell %d: %v", ErrTruncatedGrid, i, err)
			}
			tile = decodeByteCell(format, b)
		}
		grid.Tiles[i] = tile
	}
	return grid, nil
}

// decodeByteCell unpacks the one-byte cell layout: code in bits 5-7, object
// flag in bit 4, orientation in bit 3, stairs direction in bit 2.
func decodeByteCell(format *Format, b uint8) Tile {
	code := (b >> 5) & 0x7
	tile := Tile{
		Code:          code,
		Name:          format.TileName(code),
		Known:         format.Known(code),
		ObjectPresent: b&0x10 != 0,
	}
	if code == tileCodeDoor || code == tileCodeStairs {
		tile.Orientation = Horizontal
		if b&0x08 != 0 {
			tile.Orientation = Vertical
		}
	}
	if code == tileCodeStairs {
		tile.StairsDir = StairsDown
		if b&0x04 != 0 {
			tile.StairsDir = StairsUp
		}
	}
	return tile
}

// decodeNibbleCell unpacks the packed-nibble layout: code in bits 1-3,
// object flag in bit 0. The nibble packing has no room for orientation bits.
func decodeNibbleCell(format *Format, n uint8) Tile {
	code := (n >> 1) & 0x7
	return Tile{
		Code:          code,
		Name:          format.TileName(code),
		Known:         format.Known(code),
		ObjectPresent: n&0x01 != 0,
	}
}
