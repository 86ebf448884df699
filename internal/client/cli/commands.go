// Package cli implements the stockflow client commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/iudanet/stockflow/internal/client/data"
	"github.com/iudanet/stockflow/internal/observability"
	"github.com/iudanet/stockflow/pkg/api"
)

type root struct {
	open    Opener
	version string
	opts    Options
}

// NewRootCommand builds the stockflow command tree. open wires the handlers
// after flags are parsed; pass Open in production.
func NewRootCommand(version string, open Opener) *cobra.Command {
	r := &root{opts: DefaultOptions(), open: open, version: version}

	cmd := &cobra.Command{
		Use:           "stockflow",
		Short:         "StockFlow offline-first warehouse client",
		Long:          "Records material movements and approvals, queueing them while the server is unreachable.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&r.opts.ServerURL, "server", r.opts.ServerURL, "Server URL")
	flags.StringVar(&r.opts.DBPath, "db", r.opts.DBPath, "Path to local database")
	flags.StringVar(&r.opts.LogLevel, "log-level", r.opts.LogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&r.opts.LogFile, "log-file", "", "Write logs to a rotating file instead of stderr")
	flags.BoolVar(&r.opts.Offline, "offline", false, "Do not contact the server; mutations are queued")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "register",
			Short: "Register a new user",
			Args:  cobra.NoArgs,
			RunE:  r.run(func(ctx context.Context, c *Cli, _ []string) error { return c.runRegister(ctx) }),
		},
		&cobra.Command{
			Use:   "login",
			Short: "Login and save the session locally",
			Args:  cobra.NoArgs,
			RunE:  r.run(func(ctx context.Context, c *Cli, _ []string) error { return c.runLogin(ctx) }),
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Delete the local session (queued operations are kept)",
			Args:  cobra.NoArgs,
			RunE:  r.run(func(ctx context.Context, c *Cli, _ []string) error { return c.runLogout(ctx) }),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show session and pending operations",
			Args:  cobra.NoArgs,
			RunE:  r.run(func(ctx context.Context, c *Cli, _ []string) error { return c.runStatus(ctx) }),
		},
		r.movementCommand(),
		r.approvalCommand(),
		r.notificationCommand(),
		r.queueCommand(),
		&cobra.Command{
			Use:   "sync",
			Short: "Send pending operations to the server now",
			Args:  cobra.NoArgs,
			RunE:  r.run(func(ctx context.Context, c *Cli, _ []string) error { return c.runSync(ctx) }),
		},
		r.daemonCommand(),
	)

	return cmd
}

// run opens the client for one command and closes it afterwards
func (r *root) run(fn func(ctx context.Context, c *Cli, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		logger, closeLog := newLogger(r.opts.LogLevel, r.opts.LogFile)

		c, closeApp, err := r.open(cmd.Context(), &r.opts, logger)
		if err != nil {
			return multierr.Append(err, closeAll(closeLog))
		}

		err = fn(cmd.Context(), c, args)
		return multierr.Append(err, closeAll(closeApp, closeLog))
	}
}

func (r *root) movementCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movement",
		Short: "Material movements",
	}

	var in data.MovementInput
	create := &cobra.Command{
		Use:   "create",
		Short: "Record a material movement (queued when offline)",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runMovementCreate(ctx, in)
		}),
	}
	create.Flags().StringVar(&in.SKU, "sku", "", "Material SKU")
	create.Flags().Int64Var(&in.Quantity, "qty", 0, "Quantity to move")
	create.Flags().StringVar(&in.FromLocation, "from", "", "Source location")
	create.Flags().StringVar(&in.ToLocation, "to", "", "Destination location")
	create.Flags().StringVar(&in.Note, "note", "", "Optional note")
	for _, name := range []string{"sku", "qty", "from", "to"} {
		_ = create.MarkFlagRequired(name)
	}

	cmd.AddCommand(create, &cobra.Command{
		Use:   "list",
		Short: "List movements",
		Args:  cobra.NoArgs,
		RunE:  r.run(func(ctx context.Context, c *Cli, _ []string) error { return c.runMovementList(ctx) }),
	})
	return cmd
}

func (r *root) approvalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approval",
		Short: "Movement approval requests",
	}

	var status string
	list := &cobra.Command{
		Use:   "list",
		Short: "List approval requests",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runApprovalList(ctx, status)
		}),
	}
	list.Flags().StringVar(&status, "status", "pending", "Filter by status (pending, approved, rejected; empty for all)")
	cmd.AddCommand(list)

	for _, action := range []string{api.ApprovalActionApprove, api.ApprovalActionReject} {
		var comment string
		act := &cobra.Command{
			Use:   action + " <approval-id>",
			Short: action + " an approval request (queued when offline)",
			Args:  cobra.ExactArgs(1),
			RunE: r.run(func(ctx context.Context, c *Cli, args []string) error {
				return c.runApprovalAct(ctx, action, args[0], comment)
			}),
		}
		act.Flags().StringVar(&comment, "comment", "", "Optional comment")
		cmd.AddCommand(act)
	}
	return cmd
}

func (r *root) notificationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notification",
		Short: "Notifications",
	}

	var unread bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List notifications (* marks unread)",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runNotificationList(ctx, unread)
		}),
	}
	list.Flags().BoolVar(&unread, "unread", false, "Show only unread notifications")

	cmd.AddCommand(list, &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark a notification read (queued when offline)",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(ctx context.Context, c *Cli, args []string) error {
			return c.runNotificationRead(ctx, args[0])
		}),
	})
	return cmd
}

func (r *root) queueCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Inspect the offline operation queue",
	}

	var force bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Discard every pending operation",
		Args:  cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, c *Cli, _ []string) error {
			return c.runQueueClear(ctx, force)
		}),
	}
	clearCmd.Flags().BoolVar(&force, "force", false, "Do not ask for confirmation")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List pending operations in replay order",
		Args:  cobra.NoArgs,
		RunE:  r.run(func(ctx context.Context, c *Cli, _ []string) error { return c.runQueueList(ctx) }),
	}, clearCmd)
	return cmd
}

func (r *root) daemonCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run background sync until interrupted",
		Long: "Drains the operation queue on startup, when the server becomes reachable and on an interval.\n" +
			"SIGUSR1 marks the app as backgrounded, SIGUSR2 brings it to the foreground and triggers a drain.",
		Args: cobra.NoArgs,
		RunE: r.run(func(ctx context.Context, c *Cli, _ []string) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			otelShutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
				Service:  "stockflow-client",
				Version:  r.version,
				Endpoint: r.opts.OtelEndpoint,
				Enabled:  r.opts.OtelEnabled,
			}, c.logger)
			if err != nil {
				return fmt.Errorf("init otel: %w", err)
			}
			defer func() {
				if err := otelShutdown(context.WithoutCancel(ctx)); err != nil {
					c.logger.Warn("otel shutdown error", "error", err)
				}
			}()

			lifecycle := make(chan os.Signal, 1)
			if sigs := lifecycleSignals(); len(sigs) > 0 {
				signal.Notify(lifecycle, sigs...)
				defer signal.Stop(lifecycle)
			}

			return c.runDaemon(ctx, lifecycle)
		}),
	}

	flags := cmd.Flags()
	flags.DurationVar(&r.opts.Sync.Interval, "interval", r.opts.Sync.Interval, "Drain interval while connected")
	flags.IntVar(&r.opts.Sync.RetryAttempts, "retry-attempts", r.opts.Sync.RetryAttempts, "Drain attempts per trigger")
	flags.DurationVar(&r.opts.Sync.RetryBase, "retry-base", r.opts.Sync.RetryBase, "First retry delay (doubles each attempt)")
	flags.DurationVar(&r.opts.Sync.Debounce, "debounce", r.opts.Sync.Debounce, "Window in which drain triggers are merged (0 disables)")
	flags.DurationVar(&r.opts.ProbeInterval, "probe-interval", r.opts.ProbeInterval, "Server health check interval")
	flags.BoolVar(&r.opts.OtelEnabled, "otel-enabled", false, "Enable OpenTelemetry tracing of drains")
	flags.StringVar(&r.opts.OtelEndpoint, "otel-endpoint", "", "OTLP HTTP endpoint (host:port) for traces; if empty uses stdout exporter")
	return cmd
}
