package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

func main() {
	// .env читается до разбора флагов, чтобы env-привязки kong его видели
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to load .env", "error", err)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("enumtoggles"),
		kong.Description("Генератор перечислений toggle и просмотр их состояния"),
		kong.UsageOnError(),
	)

	logLevel := slog.LevelInfo
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	if err := ctx.Run(&Globals{Logger: logger, Out: os.Stdout}); err != nil {
		slog.Error("Command failed", "command", ctx.Command(), "error", err)
		os.Exit(1)
	}
}
