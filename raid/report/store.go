package report

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/raidsim/raidsim/raid"
)

const timeFormat = "2006-01-02 15:04:05"

// Store persists simulation runs to a sqlite database so runs accumulate
// across invocations.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the run database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening run database: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS simulation_runs (
			id              TEXT PRIMARY KEY,
			raid_level      TEXT NOT NULL,
			disk_count      INTEGER NOT NULL,
			total_items     INTEGER NOT NULL,
			total_bytes     INTEGER NOT NULL,
			read_time_ms    REAL NOT NULL,
			write_time_ms   REAL NOT NULL,
			read_iops       REAL NOT NULL,
			write_iops      REAL NOT NULL,
			disk_load_iops  REAL NOT NULL,
			usable_percent  REAL NOT NULL,
			efficiency      REAL NOT NULL,
			fault_tolerance INTEGER NOT NULL,
			created_at      TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating simulation_runs table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// SaveRun inserts one run record.
func (s *Store) SaveRun(run *raid.SimulationRun) error {
	_, err := s.db.Exec(`
		INSERT INTO simulation_runs (
			id, raid_level, disk_count, total_items, total_bytes,
			read_time_ms, write_time_ms, read_iops, write_iops,
			disk_load_iops, usable_percent, efficiency, fault_tolerance, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.ID, run.Config.Scheme.String(), run.Config.DiskCount,
		run.Placement.ItemCount, run.Placement.TotalBytes,
		run.Performance.ReadTimeMs, run.Performance.WriteTimeMs,
		run.Performance.ReadIOPS, run.Performance.WriteIOPS,
		run.Performance.DiskLoadIOPS,
		run.Capacity.UsablePercent, run.Capacity.EfficiencyRatio,
		run.Performance.FaultTolerance,
		run.Timestamp.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}
	return nil
}

// StoredRun is the persisted view of a simulation run.
type StoredRun struct {
	ID             string
	RAIDLevel      string
	DiskCount      int
	TotalItems     int
	TotalBytes     int64
	ReadTimeMs     float64
	WriteTimeMs    float64
	ReadIOPS       float64
	WriteIOPS      float64
	DiskLoadIOPS   float64
	UsablePercent  float64
	Efficiency     float64
	FaultTolerance int
	CreatedAt      time.Time
}

// ListRuns returns all persisted runs, oldest first.
func (s *Store) ListRuns() ([]StoredRun, error) {
	rows, err := s.db.Query(`
		SELECT id, raid_level, disk_count, total_items, total_bytes,
		       read_time_ms, write_time_ms, read_iops, write_iops,
		       disk_load_iops, usable_percent, efficiency, fault_tolerance, created_at
		FROM simulation_runs ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []StoredRun
	for rows.Next() {
		var r StoredRun
		var ts string
		if err := rows.Scan(
			&r.ID, &r.RAIDLevel, &r.DiskCount, &r.TotalItems, &r.TotalBytes,
			&r.ReadTimeMs, &r.WriteTimeMs, &r.ReadIOPS, &r.WriteIOPS,
			&r.DiskLoadIOPS, &r.UsablePercent, &r.Efficiency, &r.FaultTolerance, &ts,
		); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		r.CreatedAt, _ = time.Parse(timeFormat, ts)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
