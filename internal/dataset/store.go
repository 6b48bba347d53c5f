// Package dataset manages the training data and feature space backing the
// classifier: an ordered list of symptom columns and a set of labelled cases,
// persisted in SQLite and seeded from a bundled default dataset.
package dataset

// #region imports
import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS feature_columns (
	position    INTEGER PRIMARY KEY,
	symptom_id  TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS training_cases (
	case_id        TEXT PRIMARY KEY,
	prognosis      TEXT NOT NULL,
	symptoms_json  TEXT NOT NULL,
	created_at     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_cases_prognosis ON training_cases(prognosis);
`

// #endregion schema

// #region store-struct

// Store manages the training dataset in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database, runs migrations, and seeds the default
// dataset when the database holds no training data yet.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	s := &Store{db: db}
	if err := s.seedIfEmpty(); err != nil {
		return nil, err
	}
	return s, nil
}

// #endregion constructor

// #region close

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages.
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion close

// #region seed

func (s *Store) seedIfEmpty() error {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM training_cases`).Scan(&n); err != nil {
		return fmt.Errorf("count cases: %w", err)
	}
	if n > 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer tx.Rollback()

	for i, col := range seedColumns {
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO feature_columns (position, symptom_id) VALUES (?, ?)`,
			i, col,
		); err != nil {
			return fmt.Errorf("seed column %q: %w", col, err)
		}
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, c := range seedCases {
		symJSON, err := json.Marshal(c.Symptoms)
		if err != nil {
			return fmt.Errorf("marshal seed case: %w", err)
		}
		if _, err := tx.Exec(
			`INSERT INTO training_cases (case_id, prognosis, symptoms_json, created_at) VALUES (?, ?, ?, ?)`,
			uuid.New().String(), c.Prognosis, string(symJSON), now,
		); err != nil {
			return fmt.Errorf("seed case %q: %w", c.Prognosis, err)
		}
	}

	return tx.Commit()
}

// #endregion seed

// #region feature-space

// FeatureSpace returns the ordered symptom columns of the feature space.
func (s *Store) FeatureSpace() ([]string, error) {
	rows, err := s.db.Query(`SELECT symptom_id FROM feature_columns ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query feature columns: %w", err)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		cols = append(cols, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate columns: %w", err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("feature space is empty")
	}
	return cols, nil
}

// Vectorize builds a symptom-presence vector over the feature space.
// Ids absent from the feature space are dropped, not rejected: the lexicon
// is allowed to know symptoms the trained model does not.
func (s *Store) Vectorize(symptoms []string) ([]float64, error) {
	cols, err := s.FeatureSpace()
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(cols))
	for i, c := range cols {
		index[c] = i
	}
	vec := make([]float64, len(cols))
	for _, sym := range symptoms {
		if i, ok := index[sym]; ok {
			vec[i] = 1
		}
	}
	return vec, nil
}

// #endregion feature-space

// #region training-data

// TrainingMatrix loads every case and returns the feature matrix with its
// label column, vectorized over the current feature space.
func (s *Store) TrainingMatrix() ([][]float64, []string, error) {
	cols, err := s.FeatureSpace()
	if err != nil {
		return nil, nil, err
	}
	index := make(map[string]int, len(cols))
	for i, c := range cols {
		index[c] = i
	}

	rows, err := s.db.Query(`SELECT prognosis, symptoms_json FROM training_cases ORDER BY case_id`)
	if err != nil {
		return nil, nil, fmt.Errorf("query cases: %w", err)
	}
	defer rows.Close()

	var X [][]float64
	var y []string
	for rows.Next() {
		var prognosis, symJSON string
		if err := rows.Scan(&prognosis, &symJSON); err != nil {
			return nil, nil, fmt.Errorf("scan case: %w", err)
		}
		var symptoms []string
		if err := json.Unmarshal([]byte(symJSON), &symptoms); err != nil {
			return nil, nil, fmt.Errorf("unmarshal case symptoms: %w", err)
		}
		vec := make([]float64, len(cols))
		for _, sym := range symptoms {
			if i, ok := index[sym]; ok {
				vec[i] = 1
			}
		}
		X = append(X, vec)
		y = append(y, prognosis)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate cases: %w", err)
	}
	if len(X) == 0 {
		return nil, nil, fmt.Errorf("no training cases")
	}
	return X, y, nil
}

// AddCase stores an additional labelled training case.
func (s *Store) AddCase(prognosis string, symptoms []string) error {
	symJSON, err := json.Marshal(symptoms)
	if err != nil {
		return fmt.Errorf("marshal symptoms: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO training_cases (case_id, prognosis, symptoms_json, created_at) VALUES (?, ?, ?, ?)`,
		uuid.New().String(), prognosis, string(symJSON), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert case: %w", err)
	}
	return nil
}

// CaseCounts returns the number of training cases per prognosis.
func (s *Store) CaseCounts() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT prognosis, COUNT(*) FROM training_cases GROUP BY prognosis`)
	if err != nil {
		return nil, fmt.Errorf("query counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var prognosis string
		var n int
		if err := rows.Scan(&prognosis, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[prognosis] = n
	}
	return counts, rows.Err()
}

// #endregion training-data
