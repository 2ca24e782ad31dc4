package main

import (
	"fmt"
	"os"

	"github.com/andareed/siftly-visitors/logging"
	"github.com/andareed/siftly-visitors/visitors"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

const defaultDataFile = "synthetic_visitor_data_with_formatted_times.csv"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:           "siftly-visitors [file.csv]",
		Short:         "Visitor management dashboard over a CSV of visits",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cleanup, err := logging.SetupLogging(logFile)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}
			cobra.OnFinalize(cleanup)
			logging.Infof("siftly-visitors %s: started", Version)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := dataPath(args)
			tbl, err := visitors.Load(path)
			if err != nil {
				return fmt.Errorf("failed to load %q: %w", path, err)
			}
			m := newModel(tbl, path)
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				logging.Errorf("Tea program error: %v", err)
				return err
			}
			return nil
		},
	}

	cmd.Version = Version
	cmd.SetVersionTemplate("siftly-visitors {{.Version}}\n")
	cmd.PersistentFlags().StringVar(&logFile, "debug", "", "Write debug logs to file")
	cmd.AddCommand(newReportCmd())
	return cmd
}

func dataPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return defaultDataFile
}
