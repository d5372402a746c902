package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/koba-e964/atcoder-tools/codegen"
	"github.com/koba-e964/atcoder-tools/config"
	"github.com/koba-e964/atcoder-tools/jsplugin"
	"github.com/koba-e964/atcoder-tools/logger"
	"github.com/koba-e964/atcoder-tools/scaffold"
	"github.com/koba-e964/atcoder-tools/workspace"
)

var rootCmd = &cobra.Command{
	Use:          "atcoder-codegen",
	Short:        "Generate starter code for competitive-programming problems",
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to the config file (default: search ./config.yaml, ./config/config.yaml, ~/.atcoder-tools/config.yaml)")
	flags.String("indent-type", "", "Indent type: 'space' or 'tab'")
	flags.Int("indent-width", 4, "Number of indent characters per level")
	flags.String("generator", "", "Path to a JavaScript code generator plugin")
	flags.String("template", "", "Path to a template file")
	flags.String("workspace", "", "Workspace directory for generated files")
	flags.String("lang", "", "Target language (cpp or java)")
	flags.String("log-mode", "", "Logging mode: cli, development or production")
	flags.String("log-level", "", "Logging level")

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(templatesCmd)
}

// writerOptions carries command specific workspace settings into the graph
type writerOptions struct {
	overwrite bool
}

// appModule provides config, logger, style config and scaffolder
func appModule(cmd *cobra.Command, wo writerOptions) fx.Option {
	return fx.Options(
		fx.Supply(wo),
		fx.Provide(
			func() (*config.Config, error) {
				path, _ := cmd.Flags().GetString("config")
				path, err := workspace.NormalizePath(path)
				if err != nil {
					return nil, err
				}
				return config.Load(path, cmd.Flags())
			},
			logger.NewFromConfig,
			jsplugin.NewLoader,
			newStyleConfig,
			newWriter,
			scaffold.New,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
	)
}

func newStyleConfig(log *zap.Logger, cfg *config.Config, loader *jsplugin.Loader) (*codegen.StyleConfig, error) {
	return codegen.NewFromConfig(log, cfg, codegen.WithPluginLoader(loader))
}

func newWriter(log *zap.Logger, style *codegen.StyleConfig, wo writerOptions) *workspace.Writer {
	return workspace.NewWriter(log, style.WorkspaceDir(), workspace.WithOverwrite(wo.overwrite))
}
