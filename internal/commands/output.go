package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/starford/note/internal/models"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func outputFormat(cmd *cli.Command) (string, error) {
	switch f := cmd.String("output"); f {
	case formatTable, formatJSON, formatYAML:
		return f, nil
	default:
		return "", usageErrorf("unknown output format %q (want table, json or yaml)", f)
	}
}

// encode writes v as JSON or YAML. It reports false for the table format.
func encode(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	}
	return false, nil
}

func printCollections(w io.Writer, format string, colls []models.Collection) error {
	if done, err := encode(w, format, colls); done {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, c := range colls {
		fmt.Fprintf(bw, "%d\t%s\n", c.ID, c.Name)
	}
	fmt.Fprintf(bw, "Found %d collection(s).\n", len(colls))
	return bw.Flush()
}

func printNotes(w io.Writer, format string, notes []models.Note) error {
	if done, err := encode(w, format, notes); done {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, n := range notes {
		fmt.Fprintf(bw, "%d\t%s\n", n.ID, n.Body)
	}
	fmt.Fprintf(bw, "Found %d note(s).\n", len(notes))
	return bw.Flush()
}
