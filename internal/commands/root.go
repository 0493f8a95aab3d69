// Package commands defines the note command-line interface.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/starford/note/internal"
	"github.com/starford/note/internal/metadir"
	pkgconfig "github.com/starford/note/pkg/config"
)

type runFunc func(ctx context.Context, cmd *cli.Command, rt *internal.Runtime) error

// New returns the root command.
func New(version string) *cli.Command {
	return &cli.Command{
		Name:    "note",
		Usage:   "Notes Management System",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "home",
				Usage:       "Metadata directory holding the database",
				DefaultText: "~/" + metadir.DirName,
				Sources:     cli.EnvVars("NOTE_HOME"),
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "<home>/" + metadir.ConfigFile,
				Sources:     cli.EnvVars("NOTE_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("NOTE_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format for listings (table, json, yaml)",
				Value:   formatTable,
				Sources: cli.EnvVars("NOTE_OUTPUT"),
			},
		},
		Commands: []*cli.Command{
			installCommand(),
			newCommand(),
			collectionsCommand(),
			notesCommand(),
			statusCommand(),
			serveCommand(),
			mcpCommand(version),
		},
	}
}

// withRuntime opens the store for the duration of fn.
func withRuntime(fn runFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := rt.Close(); cerr != nil {
				rt.Logger.Warn("close store failed", slog.String("error", cerr.Error()))
			}
		}()
		return fn(ctx, cmd, rt)
	}
}

func openRuntime(cmd *cli.Command) (*internal.Runtime, error) {
	home, err := metadir.Resolve(cmd.String("home"))
	if err != nil {
		return nil, err
	}

	cfg := internal.NewDefaultConfig()
	path := cmd.String("config")
	if path != "" {
		err = pkgconfig.Load(path, cfg)
	} else {
		path = metadir.ConfigPath(home)
		err = pkgconfig.LoadOptional(path, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// A level given on the command line wins over later config reloads.
	if lvl := cmd.String("log-level"); lvl != "" {
		if err := cfg.App.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
			return nil, usageErrorf("invalid log level %q", lvl)
		}
		path = ""
	}

	return internal.Open(
		internal.WithConfig(cfg),
		internal.WithConfigPath(path),
		internal.WithHome(home),
		internal.WithLogOutput(errWriter(cmd)),
	)
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
