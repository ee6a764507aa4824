package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/platformer/internal/application/game"
	"github.com/younwookim/platformer/internal/application/scene/playing"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

var (
	flagRecord string
	flagWatch  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a stage",
	Long: `Open a window and play a stage.

Controls:
  A/D, Left/Right   - Run
  Space/W/Up        - Jump
  S/Down            - Crouch
  Esc               - Pause
  R                 - Restart
  Q                 - Quit

Examples:
  platformer play
  platformer play --stage demo --record run.json
  platformer play --config ./cmd/platformer/configs --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g. --record replay.json)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload physics.yaml/entities.yaml on change (needs --config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	loader, cfg, stageCfg, err := loadConfigs()
	if err != nil {
		return err
	}

	scene, err := playing.New(cfg, stageCfg, playing.Options{
		RecordPath: flagRecord,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if flagWatch {
		if flagConfigDir == "" {
			return errors.New("--watch requires --config")
		}
		stop, err := watchConfigs(loader, scene)
		if err != nil {
			return err
		}
		defer stop()
	}

	g := game.New(scene, cfg.Physics.Display.ScreenWidth, cfg.Physics.Display.ScreenHeight)
	g.SetLogger(logger)
	g.SetDT(cfg.Physics.Display.FrameTime())

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Physics.Display.ScreenWidth*cfg.Physics.Display.Scale,
		cfg.Physics.Display.ScreenHeight*cfg.Physics.Display.Scale)
	ebiten.SetWindowTitle("Platformer - " + stageCfg.Name)
	ebiten.SetTPS(cfg.Physics.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil && !playing.IsTermination(err) {
		return fmt.Errorf("game aborted: %w", err)
	}
	return nil
}

// watchConfigs reloads the base configs into the scene whenever a YAML file
// under the config directory changes. Stage files are not reloaded.
func watchConfigs(loader *config.Loader, scene *playing.Playing) (func(), error) {
	w, err := config.NewWatcher(loader.BasePath())
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", loader.BasePath(), err)
	}
	logger.Info("watching configs", "dir", loader.BasePath())

	go func() {
		for {
			select {
			case path, ok := <-w.Events:
				if !ok {
					return
				}
				cfg, err := loader.LoadAll()
				if err != nil {
					logger.Warn("config reload failed", "file", path, "err", err)
					continue
				}
				logger.Debug("config changed", "file", path)
				scene.Reload(cfg)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher", "err", err)
			}
		}
	}()

	return func() { _ = w.Close() }, nil
}
