// Package knowledge serves disease descriptions and health guidance: static
// curated text in SQLite, with a remote generative fallback for conditions
// the curated base does not cover.
package knowledge

// #region imports
import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/danielpatrickdp/symptom-triage/internal/llm"
)

// #endregion

// #region sections

// Section names one guidance category.
type Section string

const (
	SectionLifestyle  Section = "lifestyle"
	SectionDiet       Section = "diet"
	SectionMedical    Section = "medical"
	SectionPrevention Section = "prevention"
)

// Guidance bundles all advice for one disease. When the curated base has no
// entry, GeneratedText carries the fallback output instead of the sections.
type Guidance struct {
	Lifestyle     []string
	Diet          []string
	Medical       []string
	Prevention    []string
	GeneratedText string
}

// Empty reports whether no guidance of any kind is present.
func (g Guidance) Empty() bool {
	return len(g.Lifestyle) == 0 && len(g.Diet) == 0 &&
		len(g.Medical) == 0 && len(g.Prevention) == 0 && g.GeneratedText == ""
}

// AIUnavailable is the placeholder shown when the generative fallback fails.
const AIUnavailable = "AI guidance is unavailable right now. Please consult a healthcare professional for personalized advice."

// #endregion sections

// #region store

// Store persists the curated knowledge base in SQLite. gen may be nil, in
// which case uncovered diseases simply yield empty guidance.
type Store struct {
	db  *sql.DB
	gen llm.Client
}

// NewStore creates the knowledge tables if needed, seeds the curated
// defaults, and returns a store.
func NewStore(db *sql.DB, gen llm.Client) (*Store, error) {
	s := &Store{db: db, gen: gen}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS disease_info (
		disease   TEXT PRIMARY KEY,
		overview  TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create disease_info: %w", err)
	}
	_, err = s.db.Exec(`CREATE TABLE IF NOT EXISTS recommendations (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		disease   TEXT NOT NULL,
		section   TEXT NOT NULL,
		position  INTEGER NOT NULL,
		item      TEXT NOT NULL,
		UNIQUE(disease, section, position)
	)`)
	if err != nil {
		return fmt.Errorf("create recommendations: %w", err)
	}
	return s.seed()
}

func (s *Store) seed() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer tx.Rollback()

	for disease, overview := range seedInfo {
		if _, err := tx.Exec(
			`INSERT OR IGNORE INTO disease_info (disease, overview) VALUES (?, ?)`,
			disease, overview,
		); err != nil {
			return fmt.Errorf("seed info %q: %w", disease, err)
		}
	}
	for _, entry := range seedGuidance {
		for i, item := range entry.Items {
			if _, err := tx.Exec(
				`INSERT OR IGNORE INTO recommendations (disease, section, position, item) VALUES (?, ?, ?, ?)`,
				entry.Disease, string(entry.Section), i, item,
			); err != nil {
				return fmt.Errorf("seed guidance %q/%s: %w", entry.Disease, entry.Section, err)
			}
		}
	}
	return tx.Commit()
}

// #endregion store

// #region describe

// Describe returns the static description for a disease label. The second
// return is false when no entry exists; callers omit the section rather than
// fail.
func (s *Store) Describe(disease string) (string, bool) {
	var overview string
	err := s.db.QueryRow(
		`SELECT overview FROM disease_info WHERE disease = ?`, disease,
	).Scan(&overview)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("[KB] describe %q: %v", disease, err)
		}
		return "", false
	}
	return overview, true
}

// Coverage returns how many curated descriptions and guidance rows exist.
func (s *Store) Coverage() (infoCount, guidanceCount int, err error) {
	if err = s.db.QueryRow(`SELECT COUNT(*) FROM disease_info`).Scan(&infoCount); err != nil {
		return 0, 0, fmt.Errorf("count info: %w", err)
	}
	if err = s.db.QueryRow(`SELECT COUNT(*) FROM recommendations`).Scan(&guidanceCount); err != nil {
		return 0, 0, fmt.Errorf("count recommendations: %w", err)
	}
	return infoCount, guidanceCount, nil
}

// #endregion describe

// #region guidance

// Recommendations returns guidance for a disease. Stored sections win; when
// none exist and a generative client is configured, the client is asked once
// per call (generated text is never persisted). A generator failure degrades
// to the AIUnavailable placeholder and never returns an error to the caller.
func (s *Store) Recommendations(ctx context.Context, disease string) Guidance {
	g, err := s.stored(disease)
	if err != nil {
		log.Printf("[KB] load guidance %q: %v", disease, err)
	}
	if !g.Empty() || s.gen == nil {
		return g
	}

	prompt := fmt.Sprintf("Provide lifestyle, diet, medical, and prevention guidance for %s.", disease)
	text, err := s.gen.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		log.Printf("[KB] generative fallback for %q failed: %v", disease, err)
		return Guidance{GeneratedText: AIUnavailable}
	}
	return Guidance{GeneratedText: text}
}

func (s *Store) stored(disease string) (Guidance, error) {
	rows, err := s.db.Query(
		`SELECT section, item FROM recommendations WHERE disease = ? ORDER BY section, position`,
		disease,
	)
	if err != nil {
		return Guidance{}, fmt.Errorf("query recommendations: %w", err)
	}
	defer rows.Close()

	var g Guidance
	for rows.Next() {
		var section, item string
		if err := rows.Scan(&section, &item); err != nil {
			return Guidance{}, fmt.Errorf("scan recommendation: %w", err)
		}
		switch Section(section) {
		case SectionLifestyle:
			g.Lifestyle = append(g.Lifestyle, item)
		case SectionDiet:
			g.Diet = append(g.Diet, item)
		case SectionMedical:
			g.Medical = append(g.Medical, item)
		case SectionPrevention:
			g.Prevention = append(g.Prevention, item)
		}
	}
	return g, rows.Err()
}

// #endregion guidance
