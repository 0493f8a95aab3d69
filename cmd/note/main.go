package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/starford/note/internal/commands"
)

var version = "dev"

func main() {
	cmd := commands.New(version)

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(commands.ExitCode(err))
	}
}
