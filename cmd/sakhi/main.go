package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sakhi/internal/app"
	"sakhi/internal/i18n"
	"sakhi/internal/tui"
)

const version = "1.0.0"

var (
	flagLang    string
	flagConfig  string
	flagDelayMS int
	flagVerbose bool

	logger *zap.Logger
)

func main() {
	root := &cobra.Command{
		Use:     "sakhi",
		Short:   "Krishi Sakhi - your AI-powered farming companion",
		Long:    "Krishi Sakhi is a terminal demo of an agricultural-advisory assistant:\nfarm profiles, a simulated chat assistant, an advisory feed, and a\nsearchable knowledge base, in English or Malayalam.",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional; real env always wins.
			_ = godotenv.Load()

			logCfg := zap.NewProductionConfig()
			logCfg.OutputPaths = []string{"stderr"}
			if flagVerbose {
				logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = logCfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer func() { _ = logger.Sync() }()

			configPath := flagConfig
			if configPath == "" {
				configPath = app.DefaultConfigPath()
			}
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if flagLang != "" {
				if _, ok := i18n.Parse(flagLang); !ok {
					return fmt.Errorf("unsupported language %q (use en or ml)", flagLang)
				}
				cfg.Language = flagLang
			}
			if flagDelayMS > 0 {
				cfg.ReplyDelayMS = flagDelayMS
			}

			application := app.NewApplication(cfg, logger)
			logger.Info("starting",
				zap.String("language", cfg.Language),
				zap.Int("reply_delay_ms", cfg.ReplyDelayMS))

			p := tea.NewProgram(tui.New(application), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return err
			}
			return nil
		},
	}

	root.Flags().StringVar(&flagLang, "lang", "", "UI language: en|ml (overrides config)")
	root.Flags().IntVar(&flagDelayMS, "reply-delay-ms", 0, "simulated assistant reply delay in milliseconds")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	configCmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flagConfig
			if path == "" {
				path = app.DefaultConfigPath()
			}
			if path == "" {
				return fmt.Errorf("cannot determine config path")
			}
			if err := app.SaveConfig(app.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
	root.AddCommand(configCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
