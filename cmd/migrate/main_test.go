package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/catalog/backend/internal/infrastructure/migration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMigrator struct {
	status   migration.Status
	calls    []string
	forced   int
	upErr    error
	statErr  error
	closed   bool
	onUp     func(*fakeMigrator)
	onDown   func(*fakeMigrator)
	openErr  error
	openHits int
}

func (f *fakeMigrator) Up() error {
	f.calls = append(f.calls, "up")
	if f.upErr != nil {
		return f.upErr
	}
	if f.onUp != nil {
		f.onUp(f)
	}
	return nil
}

func (f *fakeMigrator) Down() error {
	f.calls = append(f.calls, "down")
	if f.onDown != nil {
		f.onDown(f)
	}
	return nil
}

func (f *fakeMigrator) Status() (migration.Status, error) {
	return f.status, f.statErr
}

func (f *fakeMigrator) Force(version int) error {
	f.calls = append(f.calls, "force")
	f.forced = version
	f.status = migration.Status{Version: uint(version)}
	return nil
}

func (f *fakeMigrator) Close() error {
	f.closed = true
	return nil
}

func repoMigrationsDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.Abs(filepath.Join("..", "..", "migrations"))
	require.NoError(t, err)
	return dir
}

func newTestCLI(dir string, m *fakeMigrator) (*cli, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &cli{
		dir: dir,
		out: out,
		log: zap.NewNop(),
		open: func() (schemaMigrator, error) {
			m.openHits++
			if m.openErr != nil {
				return nil, m.openErr
			}
			return m, nil
		},
	}, out
}

func TestCLI_ListCatalogMigrations(t *testing.T) {
	m := &fakeMigrator{}
	c, out := newTestCLI(repoMigrationsDir(t), m)

	require.NoError(t, c.run([]string{"list"}))

	assert.Contains(t, out.String(), "000001_create_catalog_tables\n")
	assert.Zero(t, m.openHits)
}

func TestCLI_ListEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	c, out := newTestCLI(dir, &fakeMigrator{})

	require.NoError(t, c.run([]string{"list"}))
	assert.Equal(t, "no migrations in "+dir+"\n", out.String())
}

func TestCLI_VersionReportsPending(t *testing.T) {
	m := &fakeMigrator{}
	c, out := newTestCLI(repoMigrationsDir(t), m)

	require.NoError(t, c.run([]string{"version"}))

	assert.Contains(t, out.String(), "applied: 0\n")
	assert.Contains(t, out.String(), "pending: 000001_create_catalog_tables")
	assert.True(t, m.closed)
}

func TestCLI_UpReportsUpToDate(t *testing.T) {
	dir := repoMigrationsDir(t)
	files, err := migration.ListMigrations(dir)
	require.NoError(t, err)
	latest := migration.NewPlan(migration.Status{}, files).Latest

	m := &fakeMigrator{onUp: func(f *fakeMigrator) { f.status = migration.Status{Version: latest} }}
	c, out := newTestCLI(dir, m)

	require.NoError(t, c.run([]string{"up"}))

	assert.Equal(t, []string{"up"}, m.calls)
	assert.Contains(t, out.String(), "schema is up to date")
}

func TestCLI_DownRollsBackOne(t *testing.T) {
	m := &fakeMigrator{
		status: migration.Status{Version: 1},
		onDown: func(f *fakeMigrator) { f.status = migration.Status{} },
	}
	c, out := newTestCLI(repoMigrationsDir(t), m)

	require.NoError(t, c.run([]string{"down"}))

	assert.Equal(t, []string{"down"}, m.calls)
	assert.Contains(t, out.String(), "applied: 0\n")
}

func TestCLI_DirtySchema(t *testing.T) {
	m := &fakeMigrator{status: migration.Status{Version: 1, Dirty: true}}
	c, out := newTestCLI(repoMigrationsDir(t), m)

	require.NoError(t, c.run([]string{"version"}))
	assert.Contains(t, out.String(), "schema is dirty at version 1")

	out.Reset()
	require.NoError(t, c.run([]string{"force", "1"}))
	assert.Equal(t, 1, m.forced)
	assert.NotContains(t, out.String(), "dirty")
}

func TestCLI_UpFailureIsReturned(t *testing.T) {
	m := &fakeMigrator{upErr: errors.New("relation products already exists")}
	c, _ := newTestCLI(repoMigrationsDir(t), m)

	err := c.run([]string{"up"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.True(t, m.closed)
}

func TestCLI_OpenFailureIsReturned(t *testing.T) {
	m := &fakeMigrator{openErr: errors.New("connection refused")}
	c, _ := newTestCLI(repoMigrationsDir(t), m)

	err := c.run([]string{"version"})
	assert.EqualError(t, err, "connection refused")
}

func TestCLI_Create(t *testing.T) {
	dir := t.TempDir()
	c, out := newTestCLI(dir, &fakeMigrator{})

	require.NoError(t, c.run([]string{"create", "add_product_sku", "Add", "sku", "column"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, filepath.Join(dir, "000001_add_product_sku.up.sql"), lines[0])
	content, err := os.ReadFile(lines[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "Add sku column")
}

func TestCLI_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"drop"}},
		{"create without name", []string{"create"}},
		{"force without version", []string{"force"}},
		{"force with bad version", []string{"force", "latest"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCLI(repoMigrationsDir(t), &fakeMigrator{})
			assert.ErrorIs(t, c.run(tt.args), errUsage)
		})
	}
}
