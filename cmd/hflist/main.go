package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gravitrone/hflist/internal/cmd"
	"github.com/gravitrone/hflist/internal/config"
	"github.com/gravitrone/hflist/internal/logging"
	"github.com/gravitrone/hflist/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hflist",
		Short: "hflist - list with header and footer rows",
		Long:  "hflist: browse a list framed by header and footer rows, with an empty state row.",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			path, _ := c.Flags().GetString(cmd.ConfigFlag)
			return runTUI(path)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String(cmd.ConfigFlag, "", "config file (default ~/.hflist/config.yaml)")

	root.AddCommand(cmd.LayoutCmd())
	root.AddCommand(cmd.ConfigCmd())
	return root
}

func runTUI(configPath string) error {
	cfg, err := cmd.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		return errors.New("hflist needs a terminal; run 'hflist layout' for plain output")
	}

	logger, closer, err := logging.Init(config.LogDir(), cfg.Level())
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Info("starting", "headers", len(cfg.Headers), "footers", len(cfg.Footers), "items", len(cfg.Items))

	p := tea.NewProgram(ui.NewApp(cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
