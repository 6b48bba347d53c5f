// Package audit keeps a provenance log of every diagnosis the policy
// commits: which symptoms were on the table, what the model ranked first,
// and at what confidence. Rows are append-only.
package audit

// #region imports
import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/symptom-triage/internal/diagnose"
)

// #endregion

// #region entry

// Entry is a single row in the diagnosis_log table.
type Entry struct {
	EntryID     string
	Symptoms    []string
	TopLabel    string
	Probability float64
	Tier        string
	CreatedAt   time.Time
}

// #endregion entry

// #region log

// Log persists diagnosis provenance in SQLite.
type Log struct {
	db *sql.DB
}

// NewLog creates the diagnosis_log table if needed and returns a log.
func NewLog(db *sql.DB) (*Log, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS diagnosis_log (
		entry_id       TEXT PRIMARY KEY,
		symptoms_json  TEXT NOT NULL,
		top_label      TEXT NOT NULL,
		probability    REAL NOT NULL,
		tier           TEXT NOT NULL,
		created_at     TEXT NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("create diagnosis_log: %w", err)
	}
	return &Log{db: db}, nil
}

// #endregion log

// #region record

// Record appends one provenance row for a committed diagnosis.
func (l *Log) Record(symptoms []string, label string, probability float64) error {
	symJSON, err := json.Marshal(symptoms)
	if err != nil {
		return fmt.Errorf("marshal symptoms: %w", err)
	}
	_, err = l.db.Exec(
		`INSERT INTO diagnosis_log (entry_id, symptoms_json, top_label, probability, tier, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.New().String(),
		string(symJSON),
		label,
		probability,
		diagnose.ConfidenceTier(probability),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record diagnosis: %w", err)
	}
	return nil
}

// #endregion record

// #region query

// Recent returns up to n most recent entries, newest first.
func (l *Log) Recent(n int) ([]Entry, error) {
	rows, err := l.db.Query(
		`SELECT entry_id, symptoms_json, top_label, probability, tier, created_at
		 FROM diagnosis_log ORDER BY created_at DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("query diagnosis_log: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var symJSON, createdAt string
		if err := rows.Scan(&e.EntryID, &symJSON, &e.TopLabel, &e.Probability, &e.Tier, &createdAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if err := json.Unmarshal([]byte(symJSON), &e.Symptoms); err != nil {
			return nil, fmt.Errorf("unmarshal symptoms: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			e.CreatedAt = t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Count returns the total number of logged diagnoses.
func (l *Log) Count() (int, error) {
	var n int
	if err := l.db.QueryRow(`SELECT COUNT(*) FROM diagnosis_log`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count diagnosis_log: %w", err)
	}
	return n, nil
}

// #endregion query
