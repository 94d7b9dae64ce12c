package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/glint-ui/glint/pkg/server"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo counter application",
		Long: `Run the demo counter application.

Serves the rendered page on /, a websocket event stream on /ws, and
Prometheus metrics on /metrics. Send the text frames "increment" or
"decrement" over the websocket to drive the counter.

Examples:
  glint serve
  glint serve --addr=:8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":3000", "Address to listen on")

	return cmd
}

func runServe(addr string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	srv := server.New(server.Config{
		NewApp: func() server.App { return &counterApp{} },
		Logger: logger,
	})

	logger.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
