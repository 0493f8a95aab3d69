package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/starford/note/internal"
)

func collectionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "collections",
		Usage: "Manage collections",
		Commands: []*cli.Command{
			{
				Name:      "new",
				Usage:     "Create a new Collection",
				ArgsUsage: "<name>",
				Action:    withRuntime(createCollection),
			},
			{
				Name:   "list",
				Usage:  "List Existing Collections",
				Action: withRuntime(listCollections),
			},
		},
	}
}

func createCollection(ctx context.Context, cmd *cli.Command, rt *internal.Runtime) error {
	if cmd.Args().Len() != 1 {
		return usageErrorf("collections new takes exactly one argument: <name>")
	}
	name := cmd.Args().First()

	if _, err := rt.API.Collections.CreateCollection(ctx, name); err != nil {
		return err
	}
	_, err := fmt.Fprintf(stdout(cmd), "Collection %q created with success.\n", name)
	return err
}

func listCollections(ctx context.Context, cmd *cli.Command, rt *internal.Runtime) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	colls, err := rt.API.Collections.ListCollections(ctx)
	if err != nil {
		return err
	}
	return printCollections(stdout(cmd), format, colls)
}
