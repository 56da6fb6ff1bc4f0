// Package export serializes a decoded world to JSON files, one per map plus
// a shared legend file. It consumes the decoder's in-memory structures and
// contains no decoding logic of its own.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/grimdelve/dungeondat/pkg/dungeon"
)

// levelFile is the per-map JSON document.
type levelFile struct {
	Map               int          `json:"map"`
	Width             int          `json:"width"`
	Height            int          `json:"height"`
	Grid              [][]string   `json:"grid"`
	DoorOrientation   [][]string   `json:"door_orientation"`
	StairsOrientation [][]string   `json:"stairs_orientation"`
	StairsDirection   [][]string   `json:"stairs_direction"`
	Sensors           []sensorJSON `json:"sensors"`
}

// sensorJSON is one sensor record as exported.
type sensorJSON struct {
	Map      int    `json:"map"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Kind     string `json:"kind"`
	Actuator uint8  `json:"actuator"`
	Facing   string `json:"facing,omitempty"`
	Valid    bool   `json:"valid"`
}

// legendFile is the shared legend JSON document.
type legendFile struct {
	Legend           map[string]string `json:"legend"`
	RandomSeed       uint16            `json:"random_seed"`
	StartingPosition startJSON         `json:"starting_position"`
	PressurePlates   []sensorJSON      `json:"pressure_plates"`
	WallButtons      []sensorJSON      `json:"wall_buttons"`
}

type startJSON struct {
	Map    int    `json:"map"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Facing string `json:"facing"`
}

// LevelFileName returns the output file name for one map.
func LevelFileName(mapIndex int) string {
	return fmt.Sprintf("level_%02d.json", mapIndex)
}

// LegendFileName is the shared legend output file name.
const LegendFileName = "legend.json"

// Write serializes the world into dir: one level_NN.json per map and a
// legend.json. The directory is created if it does not exist.
func Write(world *dungeon.DecodedWorld, dir string, indent bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for i, grid := range world.Grids {
		doc := buildLevel(world, i, grid)
		if err := writeJSON(filepath.Join(dir, LevelFileName(i)), doc, indent); err != nil {
			return err
		}
	}

	return writeJSON(filepath.Join(dir, LegendFileName), buildLegend(world), indent)
}

// buildLevel assembles the per-map document: name grid plus the door and
// stairs attribute layers, empty strings where an attribute does not apply.
func buildLevel(world *dungeon.DecodedWorld, mapIndex int, grid *dungeon.TileGrid) levelFile {
	doc := levelFile{
		Map:     mapIndex,
		Width:   grid.Width,
		Height:  grid.Height,
		Sensors: []sensorJSON{},
	}
	doc.Grid = make([][]string, grid.Height)
	doc.DoorOrientation = make([][]string, grid.Height)
	doc.StairsOrientation = make([][]string, grid.Height)
	doc.StairsDirection = make([][]string, grid.Height)
	for y := 0; y < grid.Height; y++ {
		doc.Grid[y] = make([]string, grid.Width)
		doc.DoorOrientation[y] = make([]string, grid.Width)
		doc.StairsOrientation[y] = make([]string, grid.Width)
		doc.StairsDirection[y] = make([]string, grid.Width)
		for x := 0; x < grid.Width; x++ {
			tile := grid.Tile(x, y)
			doc.Grid[y][x] = tile.Name
			switch {
			case tile.StairsDir != dungeon.StairsNone:
				doc.StairsOrientation[y][x] = tile.Orientation.String()
				doc.StairsDirection[y][x] = tile.StairsDir.String()
			case tile.Orientation != dungeon.OrientNone:
				doc.DoorOrientation[y][x] = tile.Orientation.String()
			}
		}
	}

	for _, s := range world.SensorsForMap(mapIndex) {
		doc.Sensors = append(doc.Sensors, toSensorJSON(s))
	}
	return doc
}

// buildLegend assembles the shared legend document with the classified
// sensors collected across all maps.
func buildLegend(world *dungeon.DecodedWorld) legendFile {
	doc := legendFile{
		Legend:     make(map[string]string, len(world.Legend)),
		RandomSeed: world.RandomSeed,
		StartingPosition: startJSON{
			Map:    world.Party.MapIndex,
			X:      world.Party.X,
			Y:      world.Party.Y,
			Facing: world.Party.Facing.String(),
		},
		PressurePlates: []sensorJSON{},
		WallButtons:    []sensorJSON{},
	}
	for code, name := range world.Legend {
		doc.Legend[fmt.Sprintf("%d", code)] = name
	}
	for _, s := range world.Sensors {
		switch s.Kind {
		case dungeon.PressurePlate:
			doc.PressurePlates = append(doc.PressurePlates, toSensorJSON(s))
		case dungeon.WallButton:
			doc.WallButtons = append(doc.WallButtons, toSensorJSON(s))
		}
	}
	return doc
}

func toSensorJSON(s dungeon.Sensor) sensorJSON {
	out := sensorJSON{
		Map:      s.MapIndex,
		X:        s.X,
		Y:        s.Y,
		Kind:     s.Kind.String(),
		Actuator: s.Actuator,
		Valid:    s.PositionValid,
	}
	if s.WallMounted {
		out.Facing = s.Facing.String()
	}
	return out
}

func writeJSON(path string, doc any, indent bool) error {
	var (
		data []byte
		err  error
	)
	if indent {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
