// Copyright
// SPDX-License-Identifier: MIT
// notepad: a minimal terminal text editor with open/save, clipboard and styling
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"notepad/internal/clipboard"
	"notepad/internal/config"
	"notepad/internal/docio"
	"notepad/internal/logging"
	"notepad/internal/tui"
	"notepad/internal/tui/state"
	"notepad/internal/tui/util"
)

const Version = "0.1.0"

func run(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	cfg, found, err := config.LoadOrDefault(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.IsSet("log-file") {
		cfg.Log.File = cmd.String("log-file")
	}

	logger, closeLog, err := logging.Open(cfg.Log.File, Version, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	defer func() { _ = closeLog() }()

	clip, backend := clipboard.New(cfg.Clipboard)
	logger.Info("starting",
		slog.String("version", Version),
		slog.String("config", configPath),
		slog.Bool("config_found", found),
		slog.String("clipboard", backend),
	)
	if backend != cfg.Clipboard {
		logger.Warn("system clipboard unavailable, using in-process clipboard")
	}

	err = tui.Run(tui.Options{
		Env: state.Env{
			Clipboard: clip,
			Store:     docio.FS{},
			Logger:    logger,
		},
		StartDir: cfg.Dialog.StartDir,
		NoColor:  util.NoColor(cmd.Bool("no-color") || cfg.NoColor),
	})
	if err != nil {
		logger.Error("editor failed", slog.String("error", err.Error()))
		return fmt.Errorf("editor error: %w", err)
	}
	logger.Info("stopped")
	return nil
}

func initConfig(_ context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	fmt.Println("Wrote", path)
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:    "notepad",
		Usage:   "Minimal terminal notepad: open, edit and save plain text files",
		Version: Version,
		Action:  run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: config.DefaultPath,
				Value:       config.DefaultPath,
				Sources:     cli.EnvVars("NOTEPAD_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "Append structured logs to this file",
				Sources: cli.EnvVars("NOTEPAD_LOG_FILE"),
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colours (NO_COLOR is honoured too)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(context.Context, *cli.Command) error {
					fmt.Println("notepad", Version)
					return nil
				},
			},
			{
				Name:  "init-config",
				Usage: "Write a config file with the default settings",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force", Usage: "Overwrite an existing file"},
				},
				Action: initConfig,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
