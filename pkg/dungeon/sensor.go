package dungeon

import "fmt"

// SensorKind classifies an interactive object.
type SensorKind int

// Sensor kinds.
const (
	SensorOther SensorKind = iota
	PressurePlate
	WallButton
)

// String returns the kind name used in exports.
func (k SensorKind) String() string {
	switch k {
	case PressurePlate:
		return "pressure_plate"
	case WallButton:
		return "wall_button"
	default:
		return "other"
	}
}

// Sensor is one decoded sensor record. Records are retained verbatim even
// when unrecognized or out of bounds so downstream consumers see the raw
// file contents.
type Sensor struct {
	MapIndex int
	X, Y     int
	Kind     SensorKind
	Actuator uint8 // raw actuator code, bits 0-6 of the type word

	// WallMounted is bit 7 of the type word; wall-mounted sensors face the
	// direction in Facing.
	WallMounted bool
	Facing      Facing

	// PositionValid is false when (X, Y) falls outside the map grid.
	PositionValid bool
}

// ScanSensors decodes the count-prefixed sensor list at the given absolute
// offset for one map. Individual records never fail the scan: unrecognized
// actuator codes classify as SensorOther and out-of-range positions are
// flagged via PositionValid. The scan fails only when the list itself runs
// past the buffer.
func ScanSensors(src *ByteSource, format *Format, offset, mapIndex int) ([]Sensor, error) {
	count, err := src.U16(offset)
	if err != nil {
		return nil, fmt.Errorf("map %d sensor count: %w", mapIndex, err)
	}

	sensors := make([]Sensor, 0, count)
	for i := 0; i < int(count); i++ {
		rec := offset + 2 + i*format.SensorRecordSize
		typeWord, err := src.U16(rec + format.SensorTypeOffset)
		if err != nil {
			return nil, fmt.Errorf("map %d sensor %d type: %w", mapIndex, i, err)
		}
		x, err := src.U8(rec + format.SensorXOffset)
		if err != nil {
			return nil, fmt.Errorf("map %d sensor %d x: %w", mapIndex, i, err)
		}
		y, err := src.U8(rec + format.SensorYOffset)
		if err != nil {
			return nil, fmt.Errorf("map %d sensor %d y: %w", mapIndex, i, err)
		}

		s := Sensor{
			MapIndex:      mapIndex,
			X:             int(x),
			Y:             int(y),
			Actuator:      uint8(typeWord & 0x7F),
			WallMounted:   typeWord&0x80 != 0,
			Facing:        Facing((typeWord >> 8) & 0x3),
			PositionValid: int(x) < format.GridWidth && int(y) < format.GridHeight,
		}
		s.Kind = classify(format, s)
		sensors = append(sensors, s)
	}
	return sensors, nil
}

// classify applies the format's actuator code sets: wall-mounted sensors in
// the button set are wall buttons, floor sensors in the plate set are
// pressure plates, everything else is retained as SensorOther.
func classify(format *Format, s Sensor) SensorKind {
	if s.WallMounted {
		if format.WallButtonCodes[s.Actuator] {
			return WallButton
		}
		return SensorOther
	}
	if format.PressurePlateCodes[s.Actuator] {
		return PressurePlate
	}
	return SensorOther
}
