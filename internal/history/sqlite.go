package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"parkjunwoo.com/snowreport/pkg/snow"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT NOT NULL UNIQUE,
	updated_at TEXT NOT NULL,
	source     TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS snapshots (
	run_id        TEXT NOT NULL REFERENCES runs(id),
	name          TEXT NOT NULL,
	region        TEXT NOT NULL,
	snow_24h_in   REAL,
	snow_72h_in   REAL,
	base_depth_in INTEGER,
	trails_open   INTEGER,
	trails_total  INTEGER,
	lifts_open    INTEGER,
	lifts_total   INTEGER
);
CREATE INDEX IF NOT EXISTS idx_snapshots_name ON snapshots(name);
`

// Run은 저장된 한 번의 갱신 기록입니다.
type Run struct {
	ID        string `json:"id"`
	UpdatedAt string `json:"updated_at"`
	Source    string `json:"source"`
	Resorts   int    `json:"resorts"`
}

// Snapshot은 특정 실행 시점의 리조트 상태입니다.
type Snapshot struct {
	RunID       string       `json:"run_id"`
	UpdatedAt   string       `json:"updated_at"`
	Name        string       `json:"name"`
	Region      string       `json:"region"`
	Snow24hIn   *snow.Inches `json:"snow_24h_in"`
	Snow72hIn   *snow.Inches `json:"snow_72h_in"`
	BaseDepthIn *int         `json:"base_depth_in"`
	TrailsOpen  *int         `json:"trails_open"`
	TrailsTotal *int         `json:"trails_total"`
	LiftsOpen   *int         `json:"lifts_open"`
	LiftsTotal  *int         `json:"lifts_total"`
}

// Store는 보고서 이력을 SQLite(modernc.org/sqlite, 순수 Go 드라이버)에 보관합니다.
type Store struct {
	db *sql.DB
}

// Open은 path의 데이터베이스를 열거나 만들고 스키마를 적용합니다.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// sqlite는 쓰기 연결 하나로 충분
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveReport는 보고서 전체를 한 트랜잭션으로 저장하고 실행 ID를 돌려줍니다.
func (s *Store) SaveReport(ctx context.Context, report *snow.Report) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	runID := uuid.NewString()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs(id, updated_at, source) VALUES(?,?,?)`,
		runID, report.UpdatedAt, report.Source); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO snapshots(
		run_id, name, region, snow_24h_in, snow_72h_in,
		base_depth_in, trails_open, trails_total, lifts_open, lifts_total
	) VALUES(?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for _, r := range report.Resorts {
		if _, err := stmt.ExecContext(ctx,
			runID, r.Name, r.Region,
			nullableInches(r.Snow24hIn), nullableInches(r.Snow72hIn),
			nullableInt(r.BaseDepthIn), nullableInt(r.TrailsOpen), nullableInt(r.TrailsTotal),
			nullableInt(r.LiftsOpen), nullableInt(r.LiftsTotal),
		); err != nil {
			return "", fmt.Errorf("insert snapshot %s: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

// Runs는 최근 실행 기록을 최신순으로 반환합니다.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.updated_at, r.source, COUNT(sn.name)
		FROM runs r LEFT JOIN snapshots sn ON sn.run_id = r.id
		GROUP BY r.seq
		ORDER BY r.seq DESC
		LIMIT ?`, limitOrAll(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Run, 0)
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.UpdatedAt, &run.Source, &run.Resorts); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// ResortHistory는 이름이 일치하는 리조트의 스냅샷을 최신순으로 반환합니다.
func (s *Store) ResortHistory(ctx context.Context, name string, limit int) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sn.run_id, r.updated_at, sn.name, sn.region,
		       sn.snow_24h_in, sn.snow_72h_in, sn.base_depth_in,
		       sn.trails_open, sn.trails_total, sn.lifts_open, sn.lifts_total
		FROM snapshots sn JOIN runs r ON r.id = sn.run_id
		WHERE sn.name = ? COLLATE NOCASE
		ORDER BY r.seq DESC
		LIMIT ?`, name, limitOrAll(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Snapshot, 0)
	for rows.Next() {
		var (
			sn                                 Snapshot
			snow24, snow72                     sql.NullFloat64
			base, trOpen, trTotal, lOpen, lTot sql.NullInt64
		)
		if err := rows.Scan(&sn.RunID, &sn.UpdatedAt, &sn.Name, &sn.Region,
			&snow24, &snow72, &base, &trOpen, &trTotal, &lOpen, &lTot); err != nil {
			return nil, err
		}
		sn.Snow24hIn = inchesPtr(snow24)
		sn.Snow72hIn = inchesPtr(snow72)
		sn.BaseDepthIn = intPtr(base)
		sn.TrailsOpen = intPtr(trOpen)
		sn.TrailsTotal = intPtr(trTotal)
		sn.LiftsOpen = intPtr(lOpen)
		sn.LiftsTotal = intPtr(lTot)
		out = append(out, sn)
	}
	return out, rows.Err()
}

// sqlite에서 LIMIT -1은 제한 없음
func limitOrAll(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}

func nullableInches(v *snow.Inches) any {
	if v == nil {
		return nil
	}
	return float64(*v)
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return int64(*v)
}

func inchesPtr(v sql.NullFloat64) *snow.Inches {
	if !v.Valid {
		return nil
	}
	in := snow.Inches(v.Float64)
	return &in
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
