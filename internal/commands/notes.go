package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/starford/note/internal"
)

func notesCommand() *cli.Command {
	return &cli.Command{
		Name:  "notes",
		Usage: "Manage notes",
		Commands: []*cli.Command{
			{
				Name:      "new",
				Usage:     "Create a new Note",
				ArgsUsage: "<collection_id> <body>",
				Action:    withRuntime(createNote),
			},
			{
				Name:      "list",
				Usage:     "List Notes in Collection",
				ArgsUsage: "<collection_id>",
				Action:    withRuntime(listNotes),
			},
		},
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "new",
		Usage:     "New note in the default collection",
		ArgsUsage: "<body>",
		Action:    withRuntime(createDefaultNote),
	}
}

func parseCollectionID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, usageErrorf("invalid collection id %q", s)
	}
	return id, nil
}

func createNote(ctx context.Context, cmd *cli.Command, rt *internal.Runtime) error {
	args := cmd.Args().Slice()
	if len(args) < 2 {
		return usageErrorf("notes new takes two arguments: <collection_id> <body>")
	}
	id, err := parseCollectionID(args[0])
	if err != nil {
		return err
	}
	return insertNote(ctx, cmd, rt, id, strings.Join(args[1:], " "))
}

func createDefaultNote(ctx context.Context, cmd *cli.Command, rt *internal.Runtime) error {
	if cmd.Args().Len() == 0 {
		return usageErrorf("new takes one argument: <body>")
	}
	id := rt.Config.Notes.DefaultCollection
	if id == 0 {
		return usageErrorf("no default collection configured; set notes.default_collection in %s", cmd.String("config"))
	}
	return insertNote(ctx, cmd, rt, id, strings.Join(cmd.Args().Slice(), " "))
}

func insertNote(ctx context.Context, cmd *cli.Command, rt *internal.Runtime, collectionID int64, body string) error {
	if _, err := rt.API.Notes.CreateNote(ctx, collectionID, body); err != nil {
		return err
	}
	_, err := fmt.Fprintln(stdout(cmd), "Note created with success.")
	return err
}

func listNotes(ctx context.Context, cmd *cli.Command, rt *internal.Runtime) error {
	if cmd.Args().Len() != 1 {
		return usageErrorf("notes list takes exactly one argument: <collection_id>")
	}
	id, err := parseCollectionID(cmd.Args().First())
	if err != nil {
		return err
	}
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	notes, err := rt.API.Notes.ListNotes(ctx, id)
	if err != nil {
		return err
	}
	return printNotes(stdout(cmd), format, notes)
}
