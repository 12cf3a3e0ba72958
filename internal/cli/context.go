package cli

import (
	gocontext "context"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/morg/internal/ctxutil"
)

// NewContext creates a context marking writes as coming from the command line.
func NewContext() gocontext.Context {
	return ctxutil.WithActorID(gocontext.Background(), ctxutil.ActorCLI)
}

// newSignalContext is NewContext cancelled on SIGINT or SIGTERM, for
// long-running commands.
func newSignalContext() (gocontext.Context, gocontext.CancelFunc) {
	return signal.NotifyContext(NewContext(), os.Interrupt, syscall.SIGTERM)
}
