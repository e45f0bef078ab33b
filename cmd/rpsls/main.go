package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/cli"
	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/config"
	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/game"
	"github.com/n00bminion/gh-copilot-rock-paper-scissors/internal/server"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagConfigPath string
	flagLogLevel   string
)

func main() {
	root := newRootCmd()
	root.SilenceUsage = true
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rpsls",
		Short: "Rock, Paper, Scissors, Lizard, Spock",
		Long:  "rpsls plays Rock, Paper, Scissors, Lizard, Spock against the computer, in the terminal or over HTTP.",
	}

	cmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&flagLogLevel, "loglevel", "", "set logging level (debug, info, warn, error)")

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(playCmd())
	cmd.AddCommand(rulesCmd())
	return cmd
}

// setup loads configuration and builds the logger and game shared by every command.
func setup(interactive bool) (config.Config, *logrus.Logger, *game.Game, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return cfg, nil, nil, err
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	log := newLogger(cfg, interactive)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := game.NewBuilder(log, rand.New(rand.NewSource(seed))).Build()
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("failed to build game: %w", err)
	}
	return cfg, log, g, nil
}

func newLogger(cfg config.Config, interactive bool) *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	switch {
	case cfg.LogFormat == "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case interactive:
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})
	default:
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and web front-end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, g, err := setup(false)
			if err != nil {
				return err
			}

			srv, err := server.New(cfg, g, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := srv.Run(ctx); err != nil {
				log.Errorf("Server exited with error: %v", err)
				return err
			}
			return nil
		},
	}
}

func playCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, g, err := setup(true)
			if err != nil {
				return err
			}

			ui := cli.NewCLI(log, color.Output)
			defer ui.Close()
			if err := ui.Play(g); err != nil {
				log.Errorf("Application exited with error: %v", err)
				return err
			}
			return nil
		},
	}
}

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show which throw beats which",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cli.RenderRules(cmd.OutOrStdout())
			return nil
		},
	}
}
