package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/metalagman/stackadvisor/internal/llm"
	"github.com/metalagman/stackadvisor/internal/logging"
	"github.com/metalagman/stackadvisor/internal/session"
	"github.com/metalagman/stackadvisor/internal/tui"
)

func chatCmd() *cobra.Command {
	var flags detailFlags

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive advisory chat",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			details, err := flags.details()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			invoker, err := llm.New(ctx, llmConfig(cfg))
			if err != nil {
				log.Warn().Err(err).Msg("llm client not initialized, only rule verdicts will work")
				invoker = nil
			}

			sess := session.New(cfg.Memory.WindowSize)
			sess.Details = details

			// The TUI owns the terminal from here on.
			logging.Silence()

			model := tui.New(sess, session.NewOrchestrator(invoker))
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	flags.register(cmd)
	return cmd
}
