package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"

	"github.com/tecpap/lineview/internal/version"
)

func main() {
	_ = godotenv.Load()

	root := tuiCmd()
	root.Version = version.Get()
	root.AddCommand(snapshotCmd(), exportCmd())

	if err := fang.Execute(context.Background(), root, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
