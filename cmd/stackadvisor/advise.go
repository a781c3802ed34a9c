package main

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/metalagman/stackadvisor/internal/llm"
	"github.com/metalagman/stackadvisor/internal/session"
)

func adviseCmd() *cobra.Command {
	var flags detailFlags
	var query string

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Run a single advisory turn and print the result as JSON",
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
				// The pipeline degrades to LLM_NOT_INITIALIZED; rule
				// verdicts still work without a client.
				log.Warn().Err(err).Msg("llm client not initialized")
				invoker = nil
			}

			sess := session.New(cfg.Memory.WindowSize)
			sess.Details = details

			orch := session.NewOrchestrator(invoker)
			result := orch.HandleTurn(ctx, sess, query)

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal result: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&query, "query", "", "question for this turn (defaults to initial recommendations)")
	return cmd
}
