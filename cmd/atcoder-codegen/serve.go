package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/koba-e964/atcoder-tools/config"
	"github.com/koba-e964/atcoder-tools/mcpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve code generation as MCP tools",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := fx.New(
			appModule(cmd, writerOptions{}),
			fx.Provide(mcpserver.New),

			// Start the appropriate transport based on config
			fx.Invoke(
				func(cfg *config.Config, server *mcpserver.MCPServer, shutdowner fx.Shutdowner) {
					serve := server.ServeStdio
					if cfg.Server.Transport == "http" {
						serve = server.ServeHTTP
					}

					go func() {
						if err := serve(); err != nil {
							_ = shutdowner.Shutdown(fx.ExitCode(1))
							return
						}
						_ = shutdowner.Shutdown()
					}()
				},
			),
		)
		if err := app.Err(); err != nil {
			return err
		}

		app.Run()
		return nil
	},
}

func init() {
	serveCmd.Flags().String("transport", "", "Transport: stdio or http")
	serveCmd.Flags().Int("port", 8080, "HTTP port when --transport=http")
}
