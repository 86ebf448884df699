package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"text/template"
	"time"
)

var drainReportTmpl = template.Must(template.New("drain").Parse(drainReportTemplate))

func (c *Cli) runQueueList(ctx context.Context) error {
	ops, err := c.pending.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to read operation queue: %w", err)
	}

	if len(ops) == 0 {
		c.io.Println("Queue is empty.")
		return nil
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tTYPE\tENQUEUED")
	for i, op := range ops {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, op.ID, op.Type, op.EnqueuedAt.Format(time.DateTime))
	}
	return w.Flush()
}

func (c *Cli) runQueueClear(ctx context.Context, force bool) error {
	n, err := c.pending.Len(ctx)
	if err != nil {
		return fmt.Errorf("failed to read operation queue: %w", err)
	}
	if n == 0 {
		c.io.Println("Queue is already empty.")
		return nil
	}

	if !force {
		answer, err := c.io.ReadInput(fmt.Sprintf("Discard %d pending operation(s)? They will never reach the server. [y/N]: ", n))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if answer != "y" && answer != "Y" {
			c.io.Println("Aborted.")
			return nil
		}
	}

	if err := c.pending.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear operation queue: %w", err)
	}
	c.logger.WarnContext(ctx, "Operation queue cleared", "discarded", n)
	c.io.Printf("✓ Discarded %d operation(s).\n", n)
	return nil
}

func (c *Cli) runSync(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	c.io.Println("Sending pending operations...")

	res, err := c.syncer.DrainNow(ctx)
	if res == nil {
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		return nil
	}

	if err := drainReportTmpl.Execute(c.io, res); err != nil {
		return fmt.Errorf("failed to render sync report: %w", err)
	}

	if err != nil {
		c.io.Println()
		c.io.Println("⚠️  Some operations could not be sent. They stay queued and will be retried.")
	} else if len(res.Succeeded) == 0 && len(res.Failed) == 0 && len(res.Unknown) == 0 {
		c.io.Println("Nothing to send.")
	}
	return nil
}
