package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gym_portal/internal/application"
	"gym_portal/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	if err := application.RunSpellbook(ctx); err != nil {
		slog.Error("application failed", logx.Error(err))
		os.Exit(1)
	}

	slog.Info("application stopped")
}
