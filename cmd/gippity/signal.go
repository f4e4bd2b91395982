package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// commandContext is cancelled on SIGINT or SIGTERM.
func commandContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
