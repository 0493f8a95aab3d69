package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/starford/note/internal"
	"github.com/starford/note/internal/mcpserver"
)

func installCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Install Notes Management System",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Report whether the schema is installed without changing anything",
			},
		},
		Action: withRuntime(install),
	}
}

func install(ctx context.Context, cmd *cli.Command, rt *internal.Runtime) error {
	w := stdout(cmd)

	if cmd.Bool("check") {
		installed, err := rt.API.Installed(ctx)
		if err != nil {
			return err
		}
		if installed {
			_, err = fmt.Fprintf(w, "Installed at %s.\n", rt.DBPath)
		} else {
			_, err = fmt.Fprintf(w, "Not installed. Run `note install` to create %s.\n", rt.DBPath)
		}
		return err
	}

	if err := rt.API.Install(ctx); err != nil {
		return err
	}
	rt.Logger.Info("Schema installed", slog.String("sqlite_path", rt.DBPath))
	_, err := fmt.Fprintf(w, "Installed with success at %s.\n", rt.DBPath)
	return err
}

func statusCommand() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show metadata directory, database path and install state",
		Action: withRuntime(func(ctx context.Context, cmd *cli.Command, rt *internal.Runtime) error {
			installed, err := rt.API.Installed(ctx)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(stdout(cmd), "metadir\t%s\ndatabase\t%s\ninstalled\t%t\n",
				rt.Home, rt.DBPath, installed)
			return err
		}),
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the HTTP API",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Usage:   "Listen port (overrides app.http.port)",
				Sources: cli.EnvVars("NOTE_HTTP_PORT"),
			},
		},
		Action: withRuntime(func(ctx context.Context, cmd *cli.Command, rt *internal.Runtime) error {
			if cmd.IsSet("port") {
				rt.Config.App.HTTP.Port = int(cmd.Int("port"))
				if err := rt.Config.App.HTTP.Validate(); err != nil {
					return usageErrorf("invalid port: %v", err)
				}
			}
			return internal.Serve(ctx, rt)
		}),
	}
}

func mcpCommand(version string) *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Serve the note tools over MCP on stdio",
		Action: withRuntime(func(_ context.Context, _ *cli.Command, rt *internal.Runtime) error {
			rt.Logger.Info("Starting MCP server on stdio")
			return mcpserver.New(rt.API, version).ServeStdio()
		}),
	}
}
