package gitrepo

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*Client, string) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "admin@example.com")
	runGit(t, dir, "config", "user.name", "Admin")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "db"), 0o755))
	return NewClient(dir, "db", 30*time.Second), dir
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}

func writeDBFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db", name), []byte(content), 0o644))
}

func TestHasPendingChanges(t *testing.T) {
	client, dir := newTestRepo(t)
	ctx := context.Background()

	assert.False(t, client.HasPendingChanges(ctx))

	writeDBFile(t, dir, "products.json", `{"products": []}`)
	assert.True(t, client.HasPendingChanges(ctx))
}

func TestCommitFlow(t *testing.T) {
	client, dir := newTestRepo(t)
	ctx := context.Background()

	writeDBFile(t, dir, "products.json", `{"products": []}`)

	ok, msg := client.Commit(ctx, "Actualización de productos/categorías - 2026-08-29 12:00")
	assert.True(t, ok)
	assert.Equal(t, "Cambios guardados correctamente", msg)
	assert.False(t, client.HasPendingChanges(ctx), "working copy should be clean after the commit")
}

func TestListPendingChangesNamesModifiedFiles(t *testing.T) {
	client, dir := newTestRepo(t)
	ctx := context.Background()

	writeDBFile(t, dir, "products.json", `{"products": []}`)
	ok, _ := client.Commit(ctx, "estado inicial")
	require.True(t, ok)

	writeDBFile(t, dir, "products.json", `{"products": [{"id": "vase"}]}`)
	writeDBFile(t, dir, "categories.json", `{"categories": []}`)

	changes := client.ListPendingChanges(ctx)
	require.Len(t, changes, 2)
	joined := changes[0] + "\n" + changes[1]
	assert.Contains(t, joined, "db/products.json")
	assert.Contains(t, joined, "db/categories.json")
}

func TestStatusIgnoresChangesOutsideScope(t *testing.T) {
	client, dir := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html></html>"), 0o644))
	assert.False(t, client.HasPendingChanges(ctx))
	assert.Empty(t, client.ListPendingChanges(ctx))
}

func TestCommitOutsideRepositoryFails(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "db"), 0o755))
	client := NewClient(dir, "db", 30*time.Second)

	ok, msg := client.Commit(context.Background(), "mensaje")
	assert.False(t, ok)
	assert.NotEmpty(t, msg)
}
