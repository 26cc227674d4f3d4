package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/askdojo/askdojo/internal/app"
	"github.com/askdojo/askdojo/internal/cli"
	"github.com/askdojo/askdojo/internal/config"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var components *app.Components
	a := &cli.App{
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}
	a.Configure = func(cfg config.Config) error {
		c, err := app.New(cfg)
		if err != nil {
			return err
		}
		components = c
		a.Engine = c.Engine
		a.Chat = c.Chat
		a.Log = c.Log
		return nil
	}

	err := cli.NewRootCmd(a).ExecuteContext(ctx)
	if components != nil {
		if closeErr := components.Close(context.WithoutCancel(ctx)); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}
