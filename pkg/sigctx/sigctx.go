package sigctx

import (
	"context"
	"os/signal"
	"syscall"
)

// NotifyContext binds a context to the process termination signals.
func NotifyContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
}
