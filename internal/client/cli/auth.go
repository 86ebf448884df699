package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/stockflow/internal/client/auth"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.getPassword("Password: ")
	if err != nil {
		return err
	}
	// подтверждение спрашиваем только в интерактивном режиме
	if !passwordFromEnv() {
		confirm, err := c.io.ReadPassword("Confirm password: ")
		if err != nil {
			return fmt.Errorf("failed to read password confirmation: %w", err)
		}
		if password != confirm {
			return errors.New("passwords do not match")
		}
	}

	result, err := c.authService.Register(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("User ID: %s\n", result.UserID)
	c.io.Println("Run 'stockflow login' to start a session.")
	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.getPassword("Password: ")
	if err != nil {
		return err
	}

	result, err := c.authService.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", result.Username)
	c.io.Printf("Session expires: %s\n", result.ExpiresAt.Format(time.RFC3339))
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.authService.Logout(ctx); err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			c.io.Println("Not logged in.")
			return nil
		}
		return err
	}

	c.io.Println("✓ Logged out.")

	n, err := c.pending.Len(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "Failed to count pending operations", "error", err)
		return nil
	}
	if n > 0 {
		c.io.Printf("%d queued operation(s) kept; they will be sent after the next login.\n", n)
	}
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	st, err := c.authService.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if !st.Authenticated {
		c.io.Println("Session: not authenticated")
		c.io.Println("Run 'stockflow login' to authenticate.")
	} else {
		c.io.Printf("Session:  %s (%s)\n", st.Username, st.UserID)
		c.io.Printf("Server:   %s\n", st.ServerURL)
		c.io.Printf("Expires:  %s\n", st.ExpiresAt.Format(time.RFC3339))
		if st.Expired {
			c.io.Println("⚠️  Session has expired. Please login again.")
		}
	}

	c.io.Println()
	n, err := c.pending.Len(ctx)
	if err != nil {
		// не прерываем вывод статуса
		c.io.Printf("Warning: failed to read operation queue: %v\n", err)
		return nil
	}
	if n == 0 {
		c.io.Println("✓ No pending operations")
		return nil
	}
	c.io.Printf("⚠️  Pending: %d operation(s) waiting to be sent\n", n)
	c.io.Println("Run 'stockflow sync' to send them now.")
	return nil
}
