package app

import (
	"context"
	"os/signal"
	"syscall"
)

type App struct {
	cmd  Runner
	args []string
}

func New(cmd Runner, args []string) *App {
	return &App{cmd: cmd, args: args}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.cmd.Run(ctx, a.args)
}
