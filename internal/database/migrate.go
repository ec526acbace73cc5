package database

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"regexp"
	"sort"
	"strconv"

	"storefront/internal/middleware"
)

// Migration is one versioned pair of PostgreSQL scripts.
type Migration struct {
	Version    int
	Name       string
	UpScript   string
	DownScript string
}

//go:embed migrations/*.sql
var migrationFS embed.FS

var migrations = mustLoadMigrations(migrationFS)

var upScriptName = regexp.MustCompile(`^(\d+)_(\w+)\.up\.sql$`)

func mustLoadMigrations(fsys fs.FS) []Migration {
	loaded, err := LoadMigrations(fsys)
	if err != nil {
		panic(fmt.Sprintf("load embedded migrations: %v", err))
	}
	return loaded
}

// LoadMigrations reads NNNNNN_name.up.sql files from the migrations
// directory of fsys, pairs each with its .down.sql script and sorts them
// by version. A missing down script is an error.
func LoadMigrations(fsys fs.FS) ([]Migration, error) {
	files, err := fs.Glob(fsys, "migrations/*.up.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	out := make([]Migration, 0, len(files))
	seen := make(map[int]string, len(files))
	for _, file := range files {
		match := upScriptName.FindStringSubmatch(path.Base(file))
		if match == nil {
			middleware.Logger.Warn("Skipping badly named migration", slog.String("file", file))
			continue
		}
		version, _ := strconv.Atoi(match[1])
		if prev, dup := seen[version]; dup {
			return nil, fmt.Errorf("migration version %d declared by both %s and %s", version, prev, file)
		}
		seen[version] = file

		up, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		downFile := path.Join("migrations", match[1]+"_"+match[2]+".down.sql")
		down, err := fs.ReadFile(fsys, downFile)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", downFile, err)
		}

		out = append(out, Migration{Version: version, Name: match[2], UpScript: string(up), DownScript: string(down)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

// GetMigrations returns the registered migrations in version order.
func GetMigrations() []Migration {
	return migrations
}

func GetMigrationByVersion(version int) *Migration {
	i := sort.Search(len(migrations), func(i int) bool { return migrations[i].Version >= version })
	if i < len(migrations) && migrations[i].Version == version {
		return &migrations[i]
	}
	return nil
}

// pendingMigrations returns the registered migrations missing from applied.
func pendingMigrations(applied []int) []Migration {
	done := make(map[int]struct{}, len(applied))
	for _, v := range applied {
		done[v] = struct{}{}
	}
	var pending []Migration
	for _, m := range migrations {
		if _, ok := done[m.Version]; !ok {
			pending = append(pending, m)
		}
	}
	return pending
}

func (m *Migration) String() string {
	return fmt.Sprintf("%06d_%s", m.Version, m.Name)
}
