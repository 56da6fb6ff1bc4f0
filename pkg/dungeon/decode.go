package dungeon

import (
	"fmt"
	"os"
)

// DecodedWorld is the complete in-memory result of one decode pass.
// It is assembled fully before being returned and never mutated afterwards.
type DecodedWorld struct {
	RandomSeed uint16
	Grids      []*TileGrid // one per map, ascending map index
	Sensors    []Sensor    // all maps, in map then record order
	Party      PartyStart
	Legend     map[uint8]string
}

// MapCount returns the number of decoded maps.
func (w *DecodedWorld) MapCount() int {
	return len(w.Grids)
}

// SensorsForMap returns the sensors belonging to one map, in record order.
func (w *DecodedWorld) SensorsForMap(mapIndex int) []Sensor {
	var out []Sensor
	for _, s := range w.Sensors {
		if s.MapIndex == mapIndex {
			out = append(out, s)
		}
	}
	return out
}

// InvalidSensorCount returns the number of sensors whose position falls
// outside the grid.
func (w *DecodedWorld) InvalidSensorCount() int {
	n := 0
	for _, s := range w.Sensors {
		if !s.PositionValid {
			n++
		}
	}
	return n
}

// UnknownTileCount returns the number of cells across all maps whose code is
// not in the legend.
func (w *DecodedWorld) UnknownTileCount() int {
	n := 0
	for _, g := range w.Grids {
		n += g.UnknownCount()
	}
	return n
}

// Decode runs the full decode over raw file contents: offset table, then
// each map's tile grid and sensor list in ascending order, then the party
// start. Header-level failures abort with no partial world; unknown tile
// codes and out-of-range sensor positions are retained in the result as
// data, never raised.
func Decode(data []byte, format *Format) (*DecodedWorld, error) {
	src := NewByteSource(data)

	table, err := ReadOffsetTable(src, format)
	if err != nil {
		return nil, err
	}

	seed, err := src.U16(format.RandomSeedOffset)
	if err != nil {
		return nil, fmt.Errorf("random seed: %w", err)
	}

	world := &DecodedWorld{
		RandomSeed: seed,
		Grids:      make([]*TileGrid, 0, table.MapCount),
		Legend:     format.Legend,
	}
	for i, offsets := range table.Maps {
		grid, err := DecodeTileGrid(src, format, offsets.TileGrid)
		if err != nil {
			return nil, fmt.Errorf("map %d: %w", i, err)
		}
		world.Grids = append(world.Grids, grid)

		sensors, err := ScanSensors(src, format, offsets.SensorList, i)
		if err != nil {
			return nil, err
		}
		world.Sensors = append(world.Sensors, sensors...)
	}

	party, err := ReadPartyStart(src, format)
	if err != nil {
		return nil, err
	}
	if party.MapIndex >= table.MapCount {
		return nil, fmt.Errorf("%w: party start map %d >= map count %d at 0x%X",
			ErrMalformedHeader, party.MapIndex, table.MapCount, format.PartyStartOffset)
	}
	world.Party = party

	return world, nil
}

// DecodeFile reads a world file from disk and decodes it.
func DecodeFile(path string, format *Format) (*DecodedWorld, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading world file: %w", err)
	}
	return Decode(data, format)
}
