package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tinoosan/consolebank/internal/console"
	"github.com/tinoosan/consolebank/internal/service/account"
	"github.com/tinoosan/consolebank/internal/storage/memory"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// NewRootCmd builds the bank command. Logging is configured from LOG_LEVEL and
// LOG_FORMAT, overridable by flags.
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var level, format string

	cmd := &cobra.Command{
		Use:          "bank",
		Short:        "Interactive in-memory banking ledger",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			logger := buildLogger(errOut, level, format)
			slog.SetDefault(logger)
			return runSession(ctx, logger, in, out)
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().StringVar(&level, "log-level", os.Getenv("LOG_LEVEL"), "log level: debug, info, warn, error (default warn)")
	cmd.PersistentFlags().StringVar(&format, "log-format", os.Getenv("LOG_FORMAT"), "log format: json or text (default json)")
	return cmd
}

// runSession wires a fresh ledger to the menu and logs a summary once the menu
// exits. An interrupt ends the session like Exit does.
func runSession(ctx context.Context, logger *slog.Logger, in io.Reader, out io.Writer) error {
	logger = logger.With("session_id", uuid.NewString())
	store := memory.New()
	metrics := account.NewMetrics()
	svc := account.New(store, store, account.WithLogger(logger), account.WithMetrics(metrics))

	logger.Info("session started")
	err := console.New(svc, in, out, logger).Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		logger.Info("session interrupted")
		err = nil
	default:
		logger.Error("session aborted", "err", err)
	}
	// context may already be cancelled; the summary reads local state only
	accounts, lerr := svc.List(context.WithoutCancel(ctx))
	if lerr != nil {
		logger.Warn("list accounts failed", "err", lerr)
	}
	totals, gerr := metrics.Totals()
	if gerr != nil {
		logger.Warn("metrics gather failed", "err", gerr)
	}
	logger.Info("session complete", "accounts", len(accounts), "operations", totals)
	return err
}
