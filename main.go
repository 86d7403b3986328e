package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"stipple/inspect"
	"stipple/parallel"
	"stipple/preview"
	"stipple/render"
)

type CLI struct {
	LogLevel slog.Level `help:"Log level (debug, info, warn, error)" default:"info"`
	LogFile  string     `help:"Write logs to this file instead of stderr" type:"path"`
	Workers  int        `help:"Number of parallel workers, 0 uses one per CPU" default:"0"`

	Render  render.CLICmd   `cmd:"" help:"Render the reveal and hide of every picture in a folder to animated PNGs"`
	Title   render.TitleCmd `cmd:"" help:"Render the reveal and hide of a text to an animated PNG"`
	Preview preview.CLICmd  `cmd:"" help:"Play the transition of a picture in the terminal"`
	Field   inspect.CLICmd  `cmd:"" help:"Export the reveal field of a picture as a grayscale PNG"`
}

func setupLogging(cli *CLI, command string) (io.Closer, error) {
	opts := &slog.HandlerOptions{Level: cli.LogLevel}

	if cli.LogFile == "" {
		if strings.HasPrefix(command, "preview") {
			// The terminal belongs to the preview.
			slog.SetDefault(slog.New(slog.DiscardHandler))
			return io.NopCloser(nil), nil
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
		return io.NopCloser(nil), nil
	}

	logFile, err := os.OpenFile(cli.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("could not open log file %q: %w", cli.LogFile, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, opts)))
	return logFile, nil
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("stipple"),
		kong.Description("Dithered reveal and hide transitions for pictures and text."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, "~/.config/stipple.json", ".stipple.json"),
	)

	logs, err := setupLogging(&cli, kctx.Command())
	kctx.FatalIfErrorf(err)
	defer func() {
		if err := logs.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "could not close log file: %v\n", err)
		}
	}()

	pool := parallel.Start(cli.Workers)
	err = kctx.Run(pool)
	if err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
	}
	kctx.FatalIfErrorf(err)
}
