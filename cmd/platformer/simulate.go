package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/scene/playing"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/ecs"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

var (
	flagFrames int
	flagReplay string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a stage headless and print a report",
	Long: `Step a stage without opening a window. Input comes from a replay
recorded with 'play --record'; without one the player stands idle.

Examples:
  platformer simulate --frames 600
  platformer simulate --replay run.json`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 0, "Frames to run (default: replay length, or 600)")
	simulateCmd.Flags().StringVar(&flagReplay, "replay", "", "Replay file to feed as input")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	_, cfg, stageCfg, err := loadConfigs()
	if err != nil {
		return err
	}

	var src system.ActionSource = replay.NewReplayer(replay.ReplayData{})
	frames := flagFrames
	if flagReplay != "" {
		data, err := replay.LoadReplay(flagReplay)
		if err != nil {
			return err
		}
		if data.Stage != "" && data.Stage != stageCfg.Name {
			logger.Warn("replay recorded on another stage", "replay", data.Stage, "stage", stageCfg.Name)
		}
		src = replay.NewReplayer(*data)
		if frames == 0 {
			frames = len(data.Frames)
		}
	}
	if frames == 0 {
		frames = 600
	}

	stats, err := simulate(cfg, stageCfg, src, frames)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderReport(stageCfg.Name, stats))
	return nil
}

// simulate runs the playing scene for up to frames updates. An exit action
// in the input ends the run early.
func simulate(cfg *config.GameConfig, stageCfg *config.StageConfig, src system.ActionSource, frames int) (playing.Stats, error) {
	p, err := playing.New(cfg, stageCfg, playing.Options{Input: src, Logger: logger})
	if err != nil {
		return playing.Stats{}, err
	}
	p.OnEnter()
	defer p.OnExit()

	dt := cfg.Physics.Display.FrameTime()
	for i := 0; i < frames; i++ {
		if _, err := p.Update(dt); err != nil {
			if playing.IsTermination(err) {
				break
			}
			return p.Stats(), err
		}
	}
	return p.Stats(), nil
}

var (
	reportTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	reportKey   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(16)
	reportBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	stateColors = map[string]lipgloss.Color{
		"Playing":    "4",
		"Paused":     "3",
		"StageClear": "2",
		"GameOver":   "1",
	}
)

// renderReport formats the final stats of a run
func renderReport(stage string, s playing.Stats) string {
	stateStyle := lipgloss.NewStyle().Bold(true).Foreground(stateColors[s.State.String()])

	row := func(k, v string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, reportKey.Render(k), v)
	}

	lines := []string{
		reportTitle.Render("stage " + stage),
		row("state", stateStyle.Render(s.State.String())),
		row("frames", fmt.Sprintf("%d", s.Frame)),
		row("time left", fmt.Sprintf("%.1f", s.TimeRemaining)),
		row("lives", fmt.Sprintf("%d", s.Lives)),
		row("coins", fmt.Sprintf("%d", s.Coins)),
		row("enemies left", fmt.Sprintf("%d", s.Enemies)),
		row("player", fmt.Sprintf("(%.1f, %.1f)", s.PlayerX, s.PlayerY)),
	}

	kinds := make([]ecs.EventKind, 0, len(s.Events))
	for k := range s.Events {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		lines = append(lines, row(k.String(), fmt.Sprintf("%d", s.Events[k])))
	}

	return reportBox.Render(strings.Join(lines, "\n"))
}
