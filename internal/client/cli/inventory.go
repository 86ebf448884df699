package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
	"text/template"
	"time"

	"github.com/iudanet/stockflow/internal/client/data"
	"github.com/iudanet/stockflow/pkg/api"
)

var movementTmpl = template.Must(template.New("movement").Parse(movementTemplate))

func (c *Cli) runMovementCreate(ctx context.Context, in data.MovementInput) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	out, err := c.dataService.CreateMovement(ctx, in)
	if err != nil {
		return err
	}

	if err := movementTmpl.Execute(c.io, in); err != nil {
		return fmt.Errorf("failed to render movement: %w", err)
	}
	c.printOutcome("Movement", out)
	return nil
}

func (c *Cli) runMovementList(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	res, err := c.dataService.ListMovements(ctx)
	if err != nil {
		return fmt.Errorf("failed to list movements: %w", err)
	}

	c.printListing(res.Listing)
	if len(res.Movements) == 0 {
		c.io.Println("No movements found.")
		return nil
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSKU\tQTY\tFROM\tTO\tCREATED")
	for _, m := range res.Movements {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n",
			m.ID, m.SKU, m.Quantity, m.FromLocation, m.ToLocation, m.CreatedAt.Format(time.DateTime))
	}
	return w.Flush()
}

func (c *Cli) runApprovalList(ctx context.Context, status string) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	res, err := c.dataService.ListApprovals(ctx, status)
	if err != nil {
		return fmt.Errorf("failed to list approvals: %w", err)
	}

	c.printListing(res.Listing)
	if len(res.Approvals) == 0 {
		c.io.Println("No approval requests found.")
		return nil
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMOVEMENT\tSTATUS\tCOMMENT\tCREATED")
	for _, a := range res.Approvals {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.MovementID, a.Status, a.Comment, a.CreatedAt.Format(time.DateTime))
	}
	return w.Flush()
}

func (c *Cli) runApprovalAct(ctx context.Context, action, approvalID, comment string) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	var (
		out *data.Outcome
		err error
	)
	switch action {
	case api.ApprovalActionApprove:
		out, err = c.dataService.Approve(ctx, approvalID, comment)
	case api.ApprovalActionReject:
		out, err = c.dataService.Reject(ctx, approvalID, comment)
	default:
		return fmt.Errorf("unknown approval action: %s", action)
	}
	if err != nil {
		return err
	}

	c.printOutcome(fmt.Sprintf("Approval %s: %s", approvalID, action), out)
	return nil
}

func (c *Cli) runNotificationList(ctx context.Context, unreadOnly bool) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	res, err := c.dataService.ListNotifications(ctx)
	if err != nil {
		return fmt.Errorf("failed to list notifications: %w", err)
	}

	c.printListing(res.Listing)

	items := make([]api.Notification, 0, len(res.Notifications))
	for _, n := range res.Notifications {
		if unreadOnly && n.ReadAt != nil {
			continue
		}
		items = append(items, n)
	}
	if len(items) == 0 {
		c.io.Println("No notifications.")
		return nil
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\t\tTITLE\tCREATED")
	for _, n := range items {
		mark := "*"
		if n.ReadAt != nil {
			mark = " "
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", n.ID, mark, n.Title, n.CreatedAt.Format(time.DateTime))
	}
	return w.Flush()
}

func (c *Cli) runNotificationRead(ctx context.Context, notificationID string) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	out, err := c.dataService.MarkNotificationRead(ctx, notificationID)
	if err != nil {
		return err
	}

	c.printOutcome("Notification marked read", out)
	return nil
}
