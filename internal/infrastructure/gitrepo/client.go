package gitrepo

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"oliadmin/pkg/logger"
)

// Client wraps the git CLI for change detection and commits, scoped to the
// catalog data directory. The site repository is assumed to be a git working
// copy; every call degrades gracefully when it is not.
type Client struct {
	workDir string
	scope   string
	timeout time.Duration
}

// NewClient builds a client running git inside workDir and limiting status
// and add to scope (a path relative to workDir, e.g. "db").
func NewClient(workDir, scope string, timeout time.Duration) *Client {
	return &Client{
		workDir: workDir,
		scope:   scope,
		timeout: timeout,
	}
}

// HasPendingChanges reports whether the scoped directory has uncommitted
// modifications.
func (c *Client) HasPendingChanges(ctx context.Context) bool {
	out, err := c.run(ctx, "status", "--porcelain", c.scope)
	if err != nil {
		logger.Warn("gitrepo: status failed: %v", err)
		return false
	}
	return strings.TrimSpace(out) != ""
}

// ListPendingChanges returns the porcelain status lines for the scoped
// directory, one human-readable entry per changed file.
func (c *Client) ListPendingChanges(ctx context.Context) []string {
	out, err := c.run(ctx, "status", "--porcelain", c.scope)
	if err != nil {
		logger.Warn("gitrepo: status failed: %v", err)
		return []string{}
	}

	changes := []string{}
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			changes = append(changes, line)
		}
	}
	return changes
}

// Commit stages the scoped directory and commits it with the given message.
// Failure is reported through the return values, never an error: the message
// carries git's own stderr verbatim so the operator sees what git saw.
func (c *Client) Commit(ctx context.Context, message string) (bool, string) {
	if _, err := c.run(ctx, "add", c.scope); err != nil {
		return false, err.Error()
	}

	cmd, cancel := c.command(ctx, "commit", "-m", message)
	defer cancel()

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = "Error al guardar"
		}
		return false, msg
	}
	return true, "Cambios guardados correctamente"
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	cmd, cancel := c.command(ctx, args...)
	defer cancel()

	out, err := cmd.Output()
	return string(out), err
}

func (c *Client) command(ctx context.Context, args ...string) (*exec.Cmd, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = c.workDir
	return cmd, cancel
}
