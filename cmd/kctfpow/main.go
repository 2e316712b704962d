package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Aplet123/kctf-pow/internal/adapter/cli"
	"github.com/Aplet123/kctf-pow/internal/app"
	"github.com/Aplet123/kctf-pow/internal/service"
	"github.com/Aplet123/kctf-pow/pkg/config"
	"github.com/Aplet123/kctf-pow/pkg/logger"
)

func main() {
	cfg := config.Parse()

	log := logger.New(os.Stderr, logger.LevelFromEnv(cfg.LogLevel))

	pow := service.NewSloth()
	exec := cli.NewExecutor(log, pow, os.Stdin, os.Stdout, cfg.PoWDifficulty, cfg.SolveTimeout)

	if err := app.New(exec, os.Args[1:]).Run(); err != nil {
		switch {
		case errors.Is(err, cli.ErrVerificationFailed):
			// вердикт уже напечатан в stdout
		case errors.Is(err, cli.ErrUsage):
			fmt.Fprintln(os.Stderr, err)
		default:
			log.Error("command failed", slog.Any("err", err))
		}
		os.Exit(1)
	}
}
