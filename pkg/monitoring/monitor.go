package monitoring

import (
	"context"
	"os"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Detail is the standard payload each checker returns.
type Detail map[string]any

// Database is the pool surface the checks need.
type Database interface {
	Ping(ctx context.Context) error
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// statser is implemented by *pgxpool.Pool.
type statser interface {
	Stat() *pgxpool.Stat
}

// -------------------------
// Server Information
// -------------------------

// ServerInfoOptions provides build/runtime context for ServerInformation.
type ServerInfoOptions struct {
	Name      string
	Version   string
	Revision  string
	BuiltAt   string
	StartTime time.Time
}

// ServerInformation returns basic server/build info and uptime.
func ServerInformation(ctx context.Context, opt ServerInfoOptions) (Detail, error) {
	hostname, _ := os.Hostname()
	return Detail{
		"name":      opt.Name,
		"version":   opt.Version,
		"revision":  opt.Revision,
		"builtAt":   opt.BuiltAt,
		"pid":       os.Getpid(),
		"hostname":  hostname,
		"goVersion": runtime.Version(),
		"uptime":    time.Since(opt.StartTime).Round(time.Second).String(),
		"nowUTC":    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// -------------------------
// System Metrics
// -------------------------

// Metrics returns runtime metrics, plus pool stats when db exposes them.
func Metrics(ctx context.Context, db Database) (Detail, error) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	detail := Detail{
		"goroutines": runtime.NumGoroutine(),
		"memAlloc":   m.Alloc,
		"heapInuse":  m.HeapInuse,
		"gcCount":    m.NumGC,
	}
	if s, ok := db.(statser); ok {
		st := s.Stat()
		detail["pool"] = Detail{
			"totalConns":    st.TotalConns(),
			"idleConns":     st.IdleConns(),
			"acquiredConns": st.AcquiredConns(),
			"maxConns":      st.MaxConns(),
		}
	}
	return detail, nil
}

// -------------------------
// Database Connection
// -------------------------

// DatabaseCheck pings the pool and reads the server clock and version.
func DatabaseCheck(ctx context.Context, db Database) (Detail, error) {
	if err := db.Ping(ctx); err != nil {
		return Detail{"mode": "pool"}, err
	}

	var now time.Time
	if err := db.QueryRow(ctx, "SELECT NOW()").Scan(&now); err != nil {
		return Detail{"mode": "pool"}, err
	}

	var ver string
	_ = db.QueryRow(ctx, "SHOW server_version").Scan(&ver)

	return Detail{
		"mode":    "pool",
		"nowUTC":  now.UTC().Format(time.RFC3339),
		"version": ver,
	}, nil
}
