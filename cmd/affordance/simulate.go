package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/affordance"
)

type simulateOptions struct {
	themePath string
	states    string
}

func newSimulateCmd() *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Print the enter/exit cues a state sequence fires",
		Long: "Walks a provider from idle through --states and prints, per transition,\n" +
			"the cues a one-shot receiver fires and the ones modifier states suppress.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.themePath, "theme", "", "Cue theme YAML file (required)")
	cmd.Flags().StringVar(&opts.states, "states", "", "Comma-separated state sequence, starting from idle (required)")
	_ = cmd.MarkFlagRequired("theme")
	_ = cmd.MarkFlagRequired("states")

	return cmd
}

func runSimulate(out io.Writer, opts *simulateOptions) error {
	data, err := os.ReadFile(opts.themePath)
	if err != nil {
		return fmt.Errorf("read theme: %w", err)
	}
	name, td, err := affordance.DecodeCueTheme(data)
	if err != nil {
		return err
	}
	states, err := parseStates(opts.states)
	if err != nil {
		return err
	}

	theme := affordance.NewInlineTheme(td)
	provider := affordance.NewStateProvider(nil)

	var fired []string
	sink := affordance.OneShotFunc[string](func(cue string) {
		fired = append(fired, cue)
	})
	r := affordance.NewOneShotReceiver(name, provider, theme, sink)
	if err := r.Enable(); err != nil {
		return err
	}
	defer r.Disable()

	fmt.Fprintf(out, "theme: %s\n", name)
	for _, next := range states {
		prev := provider.State()
		fired = fired[:0]
		if _, err := provider.Set(next); err != nil {
			return err
		}
		if prev == next {
			fmt.Fprintf(out, "%s -> %s: no change\n", prev, next)
			continue
		}

		var suppressed []string
		if e, ok := theme.Lookup(prev); ok && e.HasExit && affordance.ExitSuppressed(prev, next) {
			suppressed = append(suppressed, "exit "+e.Exit)
		}
		if e, ok := theme.Lookup(next); ok && e.HasEnter && affordance.EnterSuppressed(prev, next) {
			suppressed = append(suppressed, "enter "+e.Enter)
		}

		fmt.Fprintf(out, "%s -> %s: fired [%s]", prev, next, strings.Join(fired, ", "))
		if len(suppressed) > 0 {
			fmt.Fprintf(out, " suppressed [%s]", strings.Join(suppressed, ", "))
		}
		fmt.Fprintln(out)
	}
	return nil
}
