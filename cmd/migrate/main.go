package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/catalog/backend/internal/infrastructure/config"
	"github.com/catalog/backend/internal/infrastructure/logger"
	"github.com/catalog/backend/internal/infrastructure/migration"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const defaultMigrationsPath = "migrations"

const usage = `Product catalog schema migrations

Usage:
  migrate [flags] <command> [arguments]

Commands:
  up                    Apply every pending migration
  down                  Roll back the most recent migration
  version               Show the applied version and what is still pending
  force <version>       Mark a dirty schema as clean at <version>
  create <name> [desc]  Create the next numbered migration file pair
  list                  List the migration files

Flags:
  -path string          Path to migrations directory (default: ./migrations)
  -log-level string     Log level: debug, info, warn, error (default: info)

The database is configured through CATALOG_DATABASE_* variables or
config.toml. Only the postgres driver has SQL migrations; sqlite builds its
schema when the server starts.
`

var errUsage = errors.New("invalid usage")

// schemaMigrator is the part of migration.Migrator the commands drive
type schemaMigrator interface {
	Up() error
	Down() error
	Status() (migration.Status, error)
	Force(version int) error
	Close() error
}

type cli struct {
	dir  string
	out  io.Writer
	log  *zap.Logger
	open func() (schemaMigrator, error)
}

func main() {
	var migrationsPath, logLevel string
	flag.StringVar(&migrationsPath, "path", "", "Path to migrations directory (default: ./migrations)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stderr",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	if migrationsPath == "" {
		migrationsPath = findMigrationsDir()
	}
	dir, err := filepath.Abs(migrationsPath)
	if err != nil {
		log.Fatal("Failed to resolve migrations path", zap.Error(err))
	}

	c := &cli{
		dir:  dir,
		out:  os.Stdout,
		log:  log,
		open: func() (schemaMigrator, error) { return openPostgres(dir, log) },
	}
	if err := c.run(flag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		log.Fatal("Migration command failed", zap.Error(err))
	}
}

// run executes one command. create and list only touch the migration files;
// the others open the database.
func (c *cli) run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", errUsage)
	}
	command, rest := args[0], args[1:]
	c.log.Info("Migration CLI started",
		zap.String("command", command),
		zap.String("migrations_path", c.dir),
	)

	switch command {
	case "create":
		return c.create(rest)
	case "list":
		return c.list()
	case "up", "down", "version", "force":
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}

	m, err := c.open()
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			c.log.Warn("Failed to close migrator", zap.Error(err))
		}
	}()

	switch command {
	case "up":
		if err := m.Up(); err != nil {
			return err
		}
		return c.version(m)
	case "down":
		if err := m.Down(); err != nil {
			return err
		}
		return c.version(m)
	case "force":
		if len(rest) == 0 {
			return fmt.Errorf("%w: force needs a version", errUsage)
		}
		version, err := strconv.Atoi(rest[0])
		if err != nil || version < 0 {
			return fmt.Errorf("%w: invalid version %q", errUsage, rest[0])
		}
		if err := m.Force(version); err != nil {
			return err
		}
		return c.version(m)
	default:
		return c.version(m)
	}
}

func (c *cli) create(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: create needs a migration name", errUsage)
	}
	description := strings.Join(args[1:], " ")
	mf, err := migration.CreateMigration(c.dir, args[0], description)
	if err != nil {
		return err
	}
	c.log.Info("Migration created",
		zap.Int("version", mf.Version),
		zap.String("up_file", mf.UpPath),
		zap.String("down_file", mf.DownPath),
	)
	fmt.Fprintf(c.out, "%s\n%s\n", mf.UpPath, mf.DownPath)
	return nil
}

func (c *cli) list() error {
	files, err := migration.ListMigrations(c.dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(c.out, "no migrations in %s\n", c.dir)
		return nil
	}
	for _, name := range files {
		fmt.Fprintln(c.out, name)
	}
	return nil
}

// version prints the applied version against the newest file on disk
func (c *cli) version(m schemaMigrator) error {
	status, err := m.Status()
	if err != nil {
		return err
	}
	files, err := migration.ListMigrations(c.dir)
	if err != nil {
		return err
	}
	plan := migration.NewPlan(status, files)

	fmt.Fprintf(c.out, "applied: %d\nlatest:  %d\n", plan.Applied, plan.Latest)
	switch {
	case plan.Dirty:
		fmt.Fprintf(c.out, "schema is dirty at version %d, fix it and run: migrate force <version>\n", plan.Applied)
	case plan.UpToDate():
		fmt.Fprintln(c.out, "schema is up to date")
	default:
		fmt.Fprintf(c.out, "pending: %s\n", strings.Join(plan.Pending, ", "))
	}
	return nil
}

func openPostgres(dir string, log *zap.Logger) (schemaMigrator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Database.Driver == config.DriverSQLite {
		return nil, errors.New("SQL migrations target postgres; the sqlite driver builds its schema on server start")
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	m, err := migration.New(db, dir, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return m, nil
}

// findMigrationsDir looks for ./migrations first and then next to the binary
// (bin/ -> ../../migrations), falling back to ./migrations.
func findMigrationsDir() string {
	if _, err := os.Stat(defaultMigrationsPath); err == nil {
		return defaultMigrationsPath
	}
	if execPath, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(execPath), "..", "..", defaultMigrationsPath)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return defaultMigrationsPath
}
