package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/phanxgames/affordance"
)

type previewOptions struct {
	themePath string
	states    string
	ticks     int
	speed     float64
	fps       float64
}

func newPreviewCmd() *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the tweened colors of a color theme as terminal swatches",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.themePath, "theme", "", "Color theme YAML file (required)")
	cmd.Flags().StringVar(&opts.states, "states", "hovered,selected,idle", "Comma-separated state sequence, starting from idle")
	cmd.Flags().IntVar(&opts.ticks, "ticks", 8, "Frames to run per state")
	cmd.Flags().Float64Var(&opts.speed, "speed", affordance.DefaultTweenSpeed, "Tween speed (fraction of remaining distance per second)")
	cmd.Flags().Float64Var(&opts.fps, "fps", 60, "Simulated frame rate")
	_ = cmd.MarkFlagRequired("theme")

	return cmd
}

var (
	labelStyle = lipgloss.NewStyle().Width(18)
	hexStyle   = lipgloss.NewStyle().Faint(true)
)

func swatch(c affordance.Color) string {
	hex := c.Hex()[:7]
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

func runPreview(out io.Writer, opts *previewOptions) error {
	if opts.ticks <= 0 {
		return fmt.Errorf("--ticks must be positive")
	}
	if opts.fps <= 0 {
		return fmt.Errorf("--fps must be positive")
	}

	f, err := os.Open(opts.themePath)
	if err != nil {
		return fmt.Errorf("open theme: %w", err)
	}
	shared, err := affordance.LoadColorTheme(f)
	f.Close()
	if err != nil {
		return err
	}
	states, err := parseStates(opts.states)
	if err != nil {
		return err
	}

	provider := affordance.NewStateProvider(nil)
	var frame []affordance.Color
	sink := affordance.SinkFunc[affordance.Color](func(c affordance.Color) {
		frame = append(frame, c)
	})
	r := affordance.NewColorReceiver(shared.Name(), provider, affordance.NewThemeTable(affordance.SharedSource(shared)), sink)
	r.Tween = affordance.TweenConfig{Speed: opts.speed}

	stage := affordance.NewStage(affordance.StageConfig{})
	defer stage.Close()
	stage.AddProvider(provider)
	if err := stage.AddReceiver(r); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s%s %s\n", labelStyle.Render(provider.State().String()), swatch(r.Value()), hexStyle.Render(r.Value().Hex()))

	dt := 1 / opts.fps
	for _, s := range states {
		if _, err := provider.Set(s); err != nil {
			return err
		}
		frame = frame[:0]
		for i := 0; i < opts.ticks; i++ {
			stage.Update(dt)
		}
		stage.Flush()

		var b strings.Builder
		for _, c := range frame {
			b.WriteString(swatch(c))
		}
		final := r.Value()
		fmt.Fprintf(out, "%s%s %s\n", labelStyle.Render(s.String()), b.String(), hexStyle.Render(final.Hex()))
	}
	return nil
}
