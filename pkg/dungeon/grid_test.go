package dungeon

import (
	"errors"
	"testing"
)

func TestDecodeTileGridByteCells(t *testing.T) {
	f := FormatDM1PC()
	tiles := filledGrid(f, 0x00) // all wall
	tiles[0] = 0x20              // floor
	tiles[1] = 0x30              // floor with object
	tiles[2] = 0x88              // door, vertical
	tiles[3] = 0x80              // door, horizontal
	tiles[4] = 0x6C              // stairs, vertical, up
	tiles[5] = 0x60              // stairs, horizontal, down
	tiles[33] = 0x40             // pit at (1, 1)

	grid, err := DecodeTileGrid(NewByteSource(tiles), f, 0)
	if err != nil {
		t.Fatalf("DecodeTileGrid failed: %v", err)
	}

	if len(grid.Tiles) != 1024 {
		t.Fatalf("%d cells, want 1024", len(grid.Tiles))
	}

	tests := []struct {
		x, y int
		want Tile
	}{
		{0, 0, Tile{Code: 1, Name: "floor", Known: true}},
		{1, 0, Tile{Code: 1, Name: "floor", Known: true, ObjectPresent: true}},
		{2, 0, Tile{Code: 4, Name: "door", Known: true, Orientation: Vertical}},
		{3, 0, Tile{Code: 4, Name: "door", Known: true, Orientation: Horizontal}},
		{4, 0, Tile{Code: 3, Name: "stairs", Known: true, Orientation: Vertical, StairsDir: StairsUp}},
		{5, 0, Tile{Code: 3, Name: "stairs", Known: true, Orientation: Horizontal, StairsDir: StairsDown}},
		{1, 1, Tile{Code: 2, Name: "pit", Known: true}},
		{31, 31, Tile{Code: 0, Name: "wall", Known: true}},
	}
	for _, tc := range tests {
		got := grid.Tile(tc.x, tc.y)
		if got == nil || *got != tc.want {
			t.Errorf("(%d,%d) = %+v, want %+v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestDecodeTileGridRowMajor(t *testing.T) {
	f := FormatDM1PC()
	tiles := filledGrid(f, 0x00)
	// Cell index 32 is the first cell of the second row.
	tiles[32] = 0xA0 // teleporter

	grid, err := DecodeTileGrid(NewByteSource(tiles), f, 0)
	if err != nil {
		t.Fatalf("DecodeTileGrid failed: %v", err)
	}
	if grid.Tile(0, 1).Name != "teleporter" {
		t.Errorf("(0,1) = %q, want teleporter", grid.Tile(0, 1).Name)
	}
	if grid.Tile(1, 0).Name != "wall" {
		t.Errorf("(1,0) = %q, want wall", grid.Tile(1, 0).Name)
	}
}

func TestDecodeTileGridNibblePacked(t *testing.T) {
	f := FormatDM1PCNibble()
	// 512 bytes hold 1024 nibble cells. First byte: high nibble 0x3
	// (code 1, object), low nibble 0x4 (code 2).
	data := make([]byte, 512)
	data[0] = 0x34

	grid, err := DecodeTileGrid(NewByteSource(data), f, 0)
	if err != nil {
		t.Fatalf("DecodeTileGrid failed: %v", err)
	}
	if len(grid.Tiles) != 1024 {
		t.Fatalf("%d cells, want 1024", len(grid.Tiles))
	}

	first := grid.Tile(0, 0)
	if first.Code != 1 || !first.ObjectPresent {
		t.Errorf("cell 0 = %+v, want code 1 with object", first)
	}
	second := grid.Tile(1, 0)
	if second.Code != 2 || second.ObjectPresent {
		t.Errorf("cell 1 = %+v, want code 2 without object", second)
	}
}

func TestDecodeTileGridUnknownCodeRetained(t *testing.T) {
	f := FormatDM1PC()
	f.Legend = map[uint8]string{0: "wall"}

	tiles := filledGrid(f, 0x00)
	tiles[10] = 0xC0 // code 6, not in the shrunken legend

	grid, err := DecodeTileGrid(NewByteSource(tiles), f, 0)
	if err != nil {
		t.Fatalf("unknown code must not fail the decode: %v", err)
	}

	tile := grid.Tile(10, 0)
	if tile.Known || tile.Name != "unknown" || tile.Code != 6 {
		t.Errorf("tile = %+v, want retained unknown code 6", tile)
	}
	if grid.UnknownCount() != 1 {
		t.Errorf("UnknownCount = %d, want 1", grid.UnknownCount())
	}
}

func TestDecodeTileGridTruncated(t *testing.T) {
	f := FormatDM1PC()

	tests := []struct {
		name string
		size int
	}{
		{"empty", 0},
		{"mid grid", 512},
		{"one cell short", 1023},
	}
	for _, tc := range tests {
		_, err := DecodeTileGrid(NewByteSource(make([]byte, tc.size)), f, 0)
		if !errors.Is(err, ErrTruncatedGrid) {
			t.Errorf("%s: got %v, want ErrTruncatedGrid", tc.name, err)
		}
	}
}

func TestTileGridOutOfBoundsAccess(t *testing.T) {
	f := FormatDM1PC()
	grid, err := DecodeTileGrid(NewByteSource(filledGrid(f, 0x00)), f, 0)
	if err != nil {
		t.Fatalf("DecodeTileGrid failed: %v", err)
	}
	if grid.Tile(32, 0) != nil || grid.Tile(0, -1) != nil {
		t.Error("out-of-bounds Tile access must return nil")
	}
}
