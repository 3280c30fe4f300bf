package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dimitarvdimitrov/planwatch/log"
)

func main() {
	defer log.Sync()

	if err := newRootCmd().Execute(); err != nil {
		log.Sync()
		os.Exit(1)
	}
}

func handleOsSignals(ctx context.Context, cancel context.CancelFunc) {
	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGTERM, os.Interrupt)
		defer signal.Stop(signals)

		select {
		case <-signals:
		case <-ctx.Done():
		}

		cancel()
	}()
}
