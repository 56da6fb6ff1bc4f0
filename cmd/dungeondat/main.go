// dungeondat decodes legacy Dungeon Master world files into JSON map data.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grimdelve/dungeondat/internal/config"
	"github.com/grimdelve/dungeondat/internal/export"
	"github.com/grimdelve/dungeondat/internal/logger"
	"github.com/grimdelve/dungeondat/pkg/dungeon"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dungeondat",
	Short: "Decode Dungeon Master world files into JSON map data",
	Long: `dungeondat is a tool for inspecting uncompressed Dungeon Master 1 (PC)
world files.

It decodes each map's 32x32 tile grid, classifies sensor objects into
pressure plates and wall buttons, and resolves the party starting
position. The decoded data is written as JSON: one file per map plus a
shared legend file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to a rotated file")
	rootCmd.PersistentFlags().String("packing", "", "Tile cell packing: byte, nibble")

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the config, applies flag overrides, and initializes logging.
func setup(cmd *cobra.Command) (*config.Config, *dungeon.Format, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if logFile, _ := cmd.Flags().GetString("log-file"); logFile != "" {
		cfg.Logging.LogFile = logFile
	}
	if packing, _ := cmd.Flags().GetString("packing"); packing != "" {
		cfg.Format.Packing = packing
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)

	format, err := formatFor(cfg.Format.Packing)
	if err != nil {
		return nil, nil, err
	}
	return cfg, format, nil
}

// formatFor maps the config packing name to a format description.
func formatFor(packing string) (*dungeon.Format, error) {
	switch packing {
	case "", "byte":
		return dungeon.FormatDM1PC(), nil
	case "nibble":
		return dungeon.FormatDM1PCNibble(), nil
	default:
		return nil, fmt.Errorf("unknown packing %q (want byte or nibble)", packing)
	}
}

// dump command
var dumpCmd = &cobra.Command{
	Use:   "dump <world.dat>",
	Short: "Decode a world file and write JSON maps",
	Long: `Decode a world file and write one level_NN.json per map plus a
legend.json into the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringP("output-dir", "o", "", "Output directory (default from config)")
	dumpCmd.Flags().Bool("compact", false, "Write compact JSON without indentation")
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, format, err := setup(cmd)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output-dir")
	if outputDir == "" {
		outputDir = cfg.Output.Dir
	}
	indent := cfg.Output.Indent
	if compact, _ := cmd.Flags().GetBool("compact"); compact {
		indent = false
	}

	world, err := dungeon.DecodeFile(args[0], format)
	if err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}
	logSoftAnomalies(world)

	if err := export.Write(world, outputDir, indent); err != nil {
		return err
	}

	logger.Info("world decoded",
		zap.String("input", args[0]),
		zap.String("output", outputDir),
		zap.Int("maps", world.MapCount()),
		zap.Int("sensors", len(world.Sensors)))
	return nil
}

// info command
var infoCmd = &cobra.Command{
	Use:   "info <world.dat>",
	Short: "Show a decoded world summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	_, format, err := setup(cmd)
	if err != nil {
		return err
	}

	world, err := dungeon.DecodeFile(args[0], format)
	if err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}

	fmt.Printf("World:       %s\n", args[0])
	fmt.Printf("Maps:        %d\n", world.MapCount())
	fmt.Printf("Random seed: 0x%04X\n", world.RandomSeed)
	fmt.Printf("Party start: map %d at (%d, %d) facing %s\n",
		world.Party.MapIndex, world.Party.X, world.Party.Y, world.Party.Facing)
	fmt.Println()

	for i := range world.Grids {
		sensors := world.SensorsForMap(i)
		plates, buttons := 0, 0
		for _, s := range sensors {
			switch s.Kind {
			case dungeon.PressurePlate:
				plates++
			case dungeon.WallButton:
				buttons++
			}
		}
		fmt.Printf("  map %2d: %d sensors (%d plates, %d buttons)\n",
			i, len(sensors), plates, buttons)
	}
	return nil
}

// validate command
var validateCmd = &cobra.Command{
	Use:   "validate <world.dat>",
	Short: "Check a world file for structural problems",
	Long: `Decode a world file and report findings. Structural failures (bad
header, offsets outside the file, truncated grids) exit non-zero; soft
anomalies such as unknown tile codes are reported but accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	_, format, err := setup(cmd)
	if err != nil {
		return err
	}

	world, err := dungeon.DecodeFile(args[0], format)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	logSoftAnomalies(world)

	fmt.Printf("%s: OK (%d maps, %d sensors, %d unknown tiles, %d invalid sensor positions)\n",
		args[0], world.MapCount(), len(world.Sensors),
		world.UnknownTileCount(), world.InvalidSensorCount())
	return nil
}

// logSoftAnomalies reports retained-but-flagged data at warn level.
func logSoftAnomalies(world *dungeon.DecodedWorld) {
	if n := world.UnknownTileCount(); n > 0 {
		logger.Warn("tiles with codes outside the legend", zap.Int("count", n))
	}
	if n := world.InvalidSensorCount(); n > 0 {
		logger.Warn("sensors with out-of-range positions", zap.Int("count", n))
	}
}

// version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dungeondat %s (commit %s, built %s)\n", version, commit, date)
	},
}
