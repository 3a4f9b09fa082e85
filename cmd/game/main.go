// towerdefence is a real-time 2D tower defence game.
//
// Usage:
//
//	towerdefence [flags]
//
// Flags:
//
//	--config-dir <dir>  - Read config.cfg and enemies.yaml from dir (default: built-in)
//	--assets <dir>      - Sprite directory, searched recursively for *.png
//	--seed <value>      - RNG seed (0 = random based on time)
//	--log-level <level> - debug, info, warn or error
//	--record <file>     - Record input to file
//	--replay <file>     - Play back input recorded with --record
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/towerdefence/internal/application/replay"
	"github.com/younwookim/towerdefence/internal/application/system"
	"github.com/younwookim/towerdefence/internal/infrastructure/assets"
	"github.com/younwookim/towerdefence/internal/infrastructure/config"
	"github.com/younwookim/towerdefence/internal/infrastructure/logging"
)

const defaultTitle = "Tower Defence"

var (
	flagConfigDir string
	flagAssets    string
	flagSeed      int64
	flagLogLevel  string
	flagRecord    string
	flagReplay    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "towerdefence",
	Short: "Tower defence - hold the path against waves of enemies",
	Long: `Tower defence runs the game in a window.

Controls:
  Mouse      - Click buttons
  Esc        - Pause (rebind with BIND in config.cfg)
  Q          - Quit

Examples:
  towerdefence
  towerdefence --config-dir ./configs --assets ./assets/images
  towerdefence --seed 42 --record run.json
  towerdefence --replay run.json`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfigDir, "config-dir", "", "Directory with config.cfg and enemies.yaml (default: built-in)")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "assets/images", "Sprite directory")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g., --record replay.json)")
	rootCmd.Flags().StringVar(&flagReplay, "replay", "", "Play back a recorded input file")
	rootCmd.MarkFlagsMutuallyExclusive("record", "replay")
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := logging.New("towerdefence", flagLogLevel)
	if err != nil {
		return err
	}

	loader := config.DefaultLoader()
	if flagConfigDir != "" {
		loader = config.NewLoader(flagConfigDir)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Info("config loaded", "from", loader.BasePath(),
		"width", cfg.Engine.ScreenWidth, "height", cfg.Engine.ScreenHeight, "fps", cfg.Engine.FPS)

	var replayer *replay.Replayer
	seed := flagSeed
	if flagReplay != "" {
		data, err := replay.LoadReplay(flagReplay)
		if err != nil {
			return fmt.Errorf("failed to load replay: %w", err)
		}
		replayer = replay.NewReplayer(*data)
		seed = replayer.Seed()
		logger.Info("replaying", "file", flagReplay, "frames", replayer.TotalFrames(), "seed", seed)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("rng seeded", "seed", seed)

	input := system.NewInputSystem(cfg.Engine.Bindings)
	var recorder *replay.Recorder
	switch {
	case replayer != nil:
		input.SetReader(replayer.Read)
	case flagRecord != "":
		recorder = replay.NewRecorder(seed)
		input.SetReader(recorder.Wrap(input.GetInput))
	}

	g, err := newGame(cfg, loadSprites(flagAssets, logger), input, rand.New(rand.NewSource(seed)), logger)
	if err != nil {
		return err
	}

	title := cfg.Engine.Title
	if title == "" {
		title = defaultTitle
	}
	ebiten.SetWindowSize(cfg.Engine.ScreenWidth, cfg.Engine.ScreenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(cfg.Engine.FPS)

	runErr := ebiten.RunGame(g)

	if recorder != nil {
		if err := recorder.Save(flagRecord); err != nil {
			logger.Error("failed to save replay", "file", flagRecord, "error", err)
		} else {
			logger.Info("replay saved", "file", flagRecord, "frames", recorder.FrameCount())
		}
	}
	return runErr
}

// loadSprites loads dir if it exists. Without sprites every lookup falls
// back to the placeholder.
func loadSprites(dir string, logger *log.Logger) *assets.Provider {
	spriteLog := logger.WithPrefix("assets")
	if _, err := os.Stat(dir); err != nil {
		spriteLog.Warn("no sprite directory, using placeholders", "dir", dir)
		return assets.NewProvider(spriteLog)
	}
	sprites, err := assets.Load(os.DirFS(dir), ".", spriteLog)
	if err != nil {
		spriteLog.Warn("failed to load sprites, using placeholders", "error", err)
		return assets.NewProvider(spriteLog)
	}
	return sprites
}
