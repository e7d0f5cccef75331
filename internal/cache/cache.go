// Package cache implements the build cache named in SPEC_FULL.md's domain
// stack: compiled assembly memoized by a hash of the raw source text
// plus compiler flags, backed by a pluggable SQL store selected from a DSN
// scheme, mirroring how modern toolchains (Bazel, Turborepo) expose a
// remote build cache.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"golang.org/x/mod/semver"
)

// Version is the compiler's own version, stamped on every cache entry.
// Entries written by an incompatible version are rejected on read and
// evicted, compared with semver.Compare.
const Version = "v1.0.0"

// Cache memoizes compiled assembly by content hash.
type Cache struct {
	db     *sql.DB
	driver string
}

// Open selects a backend from dsn's scheme (sqlite://, mysql://,
// postgres://, sqlserver://) and ensures its entries table exists. An
// empty dsn opens the default pure-Go sqlite file at path.
func Open(dsn, defaultPath string) (*Cache, error) {
	driverName, dataSource := parseDSN(dsn, defaultPath)
	db, err := sql.Open(driverName, dataSource)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", driverName, err)
	}
	c := &Cache{db: db, driver: driverName}
	if err := c.ensureSchema(); err != nil {
		return nil, err
	}
	return c, nil
}

func parseDSN(dsn, defaultPath string) (driverName, dataSource string) {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		return "sqlite", strings.TrimPrefix(dsn, "sqlite://")
	case strings.HasPrefix(dsn, "mysql://"):
		return "mysql", strings.TrimPrefix(dsn, "mysql://")
	case strings.HasPrefix(dsn, "postgres://"):
		return "postgres", dsn
	case strings.HasPrefix(dsn, "sqlserver://"):
		return "sqlserver", dsn
	default:
		return "sqlite", defaultPath
	}
}

// placeholder rewrites a ?-style query into the target driver's own
// positional-parameter syntax; sqlite and mysql already use ? natively.
func (c *Cache) placeholder(query string) string {
	switch c.driver {
	case "postgres":
		n := 0
		var b strings.Builder
		for _, r := range query {
			if r == '?' {
				n++
				fmt.Fprintf(&b, "$%d", n)
				continue
			}
			b.WriteRune(r)
		}
		return b.String()
	default:
		return query
	}
}

func (c *Cache) ensureSchema() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS entries (
		key TEXT PRIMARY KEY,
		asm TEXT NOT NULL,
		version TEXT NOT NULL,
		written_at INTEGER NOT NULL
	)`)
	return err
}

// Key hashes the given source text (the driver passes the raw concatenated
// input files) plus a stable rendering of the active flags into one cache key.
func Key(canonicalSource, flagSummary string) string {
	h := sha256.Sum256([]byte(canonicalSource + "\x00" + flagSummary))
	return hex.EncodeToString(h[:])
}

// Get returns the cached assembly for key, false if absent or if it was
// written by an incompatible compiler version.
func (c *Cache) Get(key string) (string, bool, error) {
	var asm, version string
	err := c.db.QueryRow(c.placeholder(`SELECT asm, version FROM entries WHERE key = ?`), key).Scan(&asm, &version)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if semver.Compare(version, Version) != 0 {
		c.evict(key)
		return "", false, nil
	}
	return asm, true, nil
}

// Put stores asm under key, stamped with the compiler's own version.
func (c *Cache) Put(key, asm string) error {
	_, err := c.db.Exec(
		c.placeholder(`INSERT INTO entries (key, asm, version, written_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET asm = excluded.asm, version = excluded.version, written_at = excluded.written_at`),
		key, asm, Version, time.Now().Unix(),
	)
	return err
}

func (c *Cache) evict(key string) {
	c.db.Exec(c.placeholder(`DELETE FROM entries WHERE key = ?`), key)
}

// Stat reports the number of entries and their total assembly size. No
// mcc sub-command calls it.
func (c *Cache) Stat() (count int, totalBytes int64, err error) {
	err = c.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(LENGTH(asm)), 0) FROM entries`).Scan(&count, &totalBytes)
	return count, totalBytes, err
}

func (c *Cache) Close() error {
	return c.db.Close()
}
