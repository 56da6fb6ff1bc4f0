package dungeon

import "fmt"

// MapOffsets locates one map's sub-blocks within the file.
type MapOffsets struct {
	TileGrid   int // absolute offset of the packed tile grid
	SensorList int // absolute offset of the count-prefixed sensor list
}

// OffsetTable holds the per-map block locations recovered from the header.
type OffsetTable struct {
	MapCount int
	Maps     []MapOffsets
}

// ReadOffsetTable reads the map count and the fixed-stride offset table from
// the header region. Counts or offsets that cannot fit the buffer fail with
// ErrMalformedHeader; the table itself running past the buffer fails with
// ErrOutOfBounds.
func ReadOffsetTable(src *ByteSource, format *Format) (*OffsetTable, error) {
	count, err := src.U8(format.MapCountOffset)
	if err != nil {
		return nil, fmt.Errorf("map count: %w", err)
	}
	if int(count) > format.MaxMaps {
		return nil, fmt.Errorf("%w: map count %d exceeds ceiling %d at 0x%X",
			ErrMalformedHeader, count, format.MaxMaps, format.MapCountOffset)
	}
	// Even an empty map needs one byte of tile data, so count can never
	// exceed the file size.
	if int(count) > src.Len() {
		return nil, fmt.Errorf("%w: map count %d exceeds file size %d at 0x%X",
			ErrMalformedHeader, count, src.Len(), format.MapCountOffset)
	}

	table := &OffsetTable{
		MapCount: int(count),
		Maps:     make([]MapOffsets, 0, count),
	}
	for i := 0; i < int(count); i++ {
		entry := format.TableBase + i*format.TableStride
		tileOff, err := src.U32(entry)
		if err != nil {
			return nil, fmt.Errorf("map %d tile offset: %w", i, err)
		}
		sensorOff, err := src.U32(entry + 4)
		if err != nil {
			return nil, fmt.Errorf("map %d sensor offset: %w", i, err)
		}
		if int(tileOff) >= src.Len() {
			return nil, fmt.Errorf("%w: map %d tile offset 0x%X outside file (len 0x%X)",
				ErrMalformedHeader, i, tileOff, src.Len())
		}
		if int(sensorOff) >= src.Len() {
			return nil, fmt.Errorf("%w: map %d sensor offset 0x%X outside file (len 0x%X)",
				ErrMalformedHeader, i, sensorOff, src.Len())
		}
		table.Maps = append(table.Maps, MapOffsets{
			TileGrid:   int(tileOff),
			SensorList: int(sensorOff),
		})
	}
	return table, nil
}
