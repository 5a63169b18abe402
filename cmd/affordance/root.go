package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/phanxgames/affordance"
)

type rootFlags struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "affordance",
		Short:         "Simulate and preview affordance themes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogging(cmd, flags.logLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newSimulateCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newReplayCmd())

	return cmd
}

func configureLogging(cmd *cobra.Command, level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	console := zerolog.NewConsoleWriter()
	console.Out = cmd.ErrOrStderr()
	console.TimeFormat = time.RFC3339
	affordance.SetLogger(zerolog.New(console).Level(lvl).With().Timestamp().Logger())
	return nil
}

// parseStates reads a comma-separated state list.
func parseStates(list string) ([]affordance.StateIndex, error) {
	var out []affordance.StateIndex
	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		s, err := affordance.ParseState(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no states given")
	}
	return out, nil
}
