// Package visits records privacy-conscious page-view statistics in sqlite.
//
// Client addresses are never stored: they are hashed with a per-process salt
// and truncated, so the same visitor hashes consistently while the process
// runs and cannot be recovered afterwards. Records older than the retention
// window are purged by Cleanup.
package visits

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// Retention is how long visit records are kept.
const Retention = 12 * 30 * 24 * time.Hour

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	ts INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS visitors_ts ON visitors (ts);`

// Visit is one recorded page view.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// PathStat counts views of one path.
type PathStat struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// Stats is the admin summary.
type Stats struct {
	TotalVisits    int64      `json:"total_visits"`
	UniqueVisitors int64      `json:"unique_visitors"`
	VisitsToday    int64      `json:"visits_today"`
	VisitsThisWeek int64      `json:"visits_this_week"`
	ThemeToggles   int64      `json:"theme_toggles"`
	MenuToggles    int64      `json:"menu_toggles"`
	TopPaths       []PathStat `json:"top_paths"`
	RecentVisits   []Visit    `json:"recent_visits"`
}

// Tracker writes and summarizes visits.
type Tracker struct {
	db   *sql.DB
	salt string
	wg   sync.WaitGroup
}

// Open opens (or creates) the sqlite database at path.
func Open(ctx context.Context, path string) (*Tracker, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening visits db: %w", err)
	}
	// one connection keeps ":memory:" databases shared and serializes writers
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating visitors table: %w", err)
	}
	salt, err := randomHex(32)
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Info().Str("db", path).Msg("Privacy: visitor tracking enabled with hashed IP addresses")
	return &Tracker{db: db, salt: salt}, nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// DB exposes the handle for health checks.
func (t *Tracker) DB() *sql.DB { return t.db }

// HashIP returns the salted, truncated hash stored instead of ip.
func (t *Tracker) HashIP(ip string) string {
	h := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(h[:])[:16]
}

// Record stores one visit.
func (t *Tracker) Record(ctx context.Context, ip, userAgent, path string, at time.Time) error {
	_, err := t.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, ts) VALUES (?, ?, ?, ?)`,
		t.HashIP(ip), userAgent, path, at.Unix())
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// RecordAsync stores a visit in the background; Wait joins pending writes.
func (t *Tracker) RecordAsync(ip, userAgent, path string) {
	at := time.Now()
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		if err := t.Record(context.Background(), ip, userAgent, path, at); err != nil {
			log.Error().Err(err).Str("path", path).Msg("Error recording visitor")
		}
	}()
}

// Wait blocks until background writes have finished.
func (t *Tracker) Wait() { t.wg.Wait() }

// Cleanup deletes records older than Retention relative to now.
func (t *Tracker) Cleanup(ctx context.Context, now time.Time) (int64, error) {
	res, err := t.db.ExecContext(ctx, `DELETE FROM visitors WHERE ts < ?`, now.Add(-Retention).Unix())
	if err != nil {
		return 0, fmt.Errorf("cleaning up visitors: %w", err)
	}
	n, _ := res.RowsAffected()
	if n > 0 {
		log.Info().Int64("removed", n).Msg("Privacy cleanup: removed expired visitor records")
	}
	return n, nil
}

// Stats summarizes visits as of now.
func (t *Tracker) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	now = now.UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.Add(-7 * 24 * time.Hour)

	s := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&s.TotalVisits, `SELECT COUNT(*) FROM visitors`, nil},
		{&s.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&s.VisitsToday, `SELECT COUNT(*) FROM visitors WHERE ts >= ?`, []any{startOfDay.Unix()}},
		{&s.VisitsThisWeek, `SELECT COUNT(*) FROM visitors WHERE ts >= ?`, []any{weekAgo.Unix()}},
		{&s.ThemeToggles, `SELECT COUNT(*) FROM visitors WHERE path = ?`, []any{"/ui/dark"}},
		{&s.MenuToggles, `SELECT COUNT(*) FROM visitors WHERE path = ?`, []any{"/ui/menu"}},
	}
	for _, c := range counts {
		if err := t.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("visit stats: %w", err)
		}
	}

	rows, err := t.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS views
		FROM visitors
		GROUP BY path
		ORDER BY views DESC, path ASC
		LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("top paths: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p PathStat
		if err := rows.Scan(&p.Path, &p.Views); err != nil {
			return nil, fmt.Errorf("top paths: %w", err)
		}
		s.TopPaths = append(s.TopPaths, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top paths: %w", err)
	}

	s.RecentVisits, err = t.Recent(ctx, 50)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Recent returns the latest visits, newest first.
func (t *Tracker) Recent(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := t.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), ts
		FROM visitors
		ORDER BY ts DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visits: %w", err)
	}
	defer rows.Close()
	var out []Visit
	for rows.Next() {
		var v Visit
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("recent visits: %w", err)
		}
		v.Timestamp = time.Unix(ts, 0).UTC()
		out = append(out, v)
	}
	return out, rows.Err()
}

// Close waits for pending writes and closes the database.
func (t *Tracker) Close() error {
	t.Wait()
	return t.db.Close()
}
