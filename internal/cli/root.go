// Package cli implements the passforge command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/logger"
)

// Exit codes beyond the usual 0/1.
const (
	ExitBreached = 2
	ExitUnknown  = 3
)

// exitError carries a process exit code without an error message.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, newRootCmd(), os.Stderr)
	stop()
	os.Exit(code)
}

// run executes cmd and maps the result to an exit code.
func run(ctx context.Context, cmd *cobra.Command, stderr io.Writer) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintln(stderr, "Error:", err)
	return 1
}

type rootOptions struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "passforge",
		Short:         "Generate passwords, check them against known breaches, export them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level for serve and check: debug|info|warn|error (overrides LOG_LEVEL)")

	cmd.AddCommand(
		serveCmd(opts),
		generateCmd(),
		checkCmd(opts),
		exportCmd(),
	)
	return cmd
}

// loadConfig reads the service configuration and applies root flag overrides.
func (o *rootOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	return cfg, nil
}

func (o *rootOptions) newLogger(w io.Writer, cfg config.Config) (*slog.Logger, error) {
	return logger.New(w, cfg.LogLevel, cfg.LogFormat)
}
