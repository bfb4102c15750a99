package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/toyoo1004/stock-scanner/internal/scanner"
)

// SQLiteRecorder persists scan history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the scanner writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scan_runs (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at   INTEGER NOT NULL,
			finished_at  INTEGER NOT NULL,
			source       TEXT,
			scanned      INTEGER,
			signal_count INTEGER,
			no_signal    INTEGER,
			skipped      INTEGER,
			failed       INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started ON scan_runs(started_at)`,

		`CREATE TABLE IF NOT EXISTS scan_signals (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id       INTEGER NOT NULL REFERENCES scan_runs(id),
			ticker       TEXT NOT NULL,
			readiness    REAL,
			price        REAL,
			volume_ratio REAL,
			obv_status   TEXT,
			narrative    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_run ON scan_signals(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_ticker ON scan_signals(ticker)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordScan inserts the run summary and one row per qualifying ticker.
func (r *SQLiteRecorder) RecordScan(rep *scanner.ScanReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO scan_runs
		(started_at, finished_at, source, scanned, signal_count, no_signal, skipped, failed)
		VALUES (?,?,?,?,?,?,?,?)`,
		rep.StartedAt.Unix(), rep.FinishedAt.Unix(), rep.Source,
		rep.Scanned, len(rep.Signals), rep.NoSignal, rep.Skipped, rep.Failed,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	for _, sig := range rep.Signals {
		if _, err := tx.Exec(`INSERT INTO scan_signals
			(run_id, ticker, readiness, price, volume_ratio, obv_status, narrative)
			VALUES (?,?,?,?,?,?,?)`,
			runID, sig.Ticker, sig.Readiness, sig.Price,
			sig.VolumeRatio, sig.OBVStatus, sig.Narrative,
		); err != nil {
			return fmt.Errorf("insert signal %s: %w", sig.Ticker, err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
