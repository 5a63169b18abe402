package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/affordance"
)

type replayOptions struct {
	scriptPath string
	themePath  string
	maxFrames  int
}

func newReplayCmd() *cobra.Command {
	opts := &replayOptions{}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay a pointer script and print state changes and cues per frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.scriptPath, "script", "", "Pointer script YAML file with a shape (required)")
	cmd.Flags().StringVar(&opts.themePath, "theme", "", "Cue theme YAML file")
	cmd.Flags().IntVar(&opts.maxFrames, "max-frames", 1000, "Stop after this many frames")
	_ = cmd.MarkFlagRequired("script")

	return cmd
}

func runReplay(out io.Writer, opts *replayOptions) error {
	data, err := os.ReadFile(opts.scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	script, err := affordance.LoadPointerScript(data)
	if err != nil {
		return err
	}
	if script.Shape == nil {
		return fmt.Errorf("script %s declares no shape", opts.scriptPath)
	}

	pointer := affordance.NewScriptedPointer(*script.Shape)
	pointer.SetScript(script)
	provider := affordance.NewStateProvider(pointer)

	stage := affordance.NewStage(affordance.StageConfig{})
	defer stage.Close()
	stage.AddProvider(provider)

	var cues []string
	if opts.themePath != "" {
		themeData, err := os.ReadFile(opts.themePath)
		if err != nil {
			return fmt.Errorf("read theme: %w", err)
		}
		name, td, err := affordance.DecodeCueTheme(themeData)
		if err != nil {
			return err
		}
		sink := affordance.OneShotFunc[string](func(cue string) { cues = append(cues, cue) })
		if err := stage.AddReceiver(affordance.NewOneShotReceiver(name, provider, affordance.NewInlineTheme(td), sink)); err != nil {
			return err
		}
	}

	var changes []affordance.StateEvent
	provider.Subscribe(func(e affordance.StateEvent) { changes = append(changes, e) })

	for !script.Done() && stage.Frame() < uint64(opts.maxFrames) {
		changes, cues = changes[:0], cues[:0]
		stage.Update(1.0 / 60)
		for _, e := range changes {
			fmt.Fprintf(out, "frame %d: %s -> %s", stage.Frame(), e.Previous, e.Current)
			if len(cues) > 0 {
				fmt.Fprintf(out, " [%s]", strings.Join(cues, ", "))
			}
			fmt.Fprintln(out)
		}
		if pointer.Clicked() {
			fmt.Fprintf(out, "frame %d: click\n", stage.Frame())
		}
	}
	if !script.Done() {
		return fmt.Errorf("script still running after %d frames", opts.maxFrames)
	}
	return nil
}
