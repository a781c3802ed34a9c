package main

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/metalagman/stackadvisor/internal/llm"
	"github.com/metalagman/stackadvisor/internal/session"
	"github.com/metalagman/stackadvisor/internal/web"
)

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web chat UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			invoker, err := llm.New(cmd.Context(), llmConfig(cfg))
			if err != nil {
				log.Warn().Err(err).Msg("llm client not initialized, only rule verdicts will work")
				invoker = nil
			}

			sessions := session.NewManager(cfg.Memory.WindowSize)
			server, err := web.NewServer(sessions, session.NewOrchestrator(invoker))
			if err != nil {
				return err
			}

			addr := fmt.Sprintf(":%d", port)
			fmt.Printf("Starting UI on http://localhost%s\n", addr)
			return http.ListenAndServe(addr, server.Routes())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to listen on")
	return cmd
}
