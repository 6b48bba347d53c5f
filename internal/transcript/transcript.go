// Package transcript records and replays conversations: a JSON fixture of
// ordered user utterances plus a harness that feeds them through a fresh
// session deterministically.
package transcript

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/symptom-triage/internal/session"
	"github.com/danielpatrickdp/symptom-triage/internal/triage"
)

// #endregion

// #region fixture-types

// Transcript is the top-level JSON structure for a recorded conversation.
type Transcript struct {
	Name  string      `json:"name"`
	Turns []TurnInput `json:"turns"`
}

// TurnInput is one user utterance in order.
type TurnInput struct {
	TurnID    string `json:"turn_id"`
	Utterance string `json:"utterance"`
}

// New builds a transcript from raw utterances, assigning turn IDs.
func New(name string, utterances ...string) Transcript {
	t := Transcript{Name: name}
	for _, u := range utterances {
		t.Turns = append(t.Turns, TurnInput{TurnID: uuid.New().String(), Utterance: u})
	}
	return t
}

// #endregion fixture-types

// #region load-save

// Load reads a transcript from a JSON file.
func Load(path string) (Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Transcript{}, fmt.Errorf("read transcript: %w", err)
	}
	var t Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return Transcript{}, fmt.Errorf("parse transcript: %w", err)
	}
	if len(t.Turns) == 0 {
		return Transcript{}, fmt.Errorf("transcript %q has no turns", path)
	}
	return t, nil
}

// Save writes a transcript as indented JSON.
func Save(path string, t Transcript) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal transcript: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}

// #endregion load-save

// #region harness

// Result captures the observable outcome of one replayed turn.
type Result struct {
	TurnID       string
	Utterance    string
	Reply        string
	Stage        session.Stage
	SymptomCount int
}

// Harness replays transcripts through an assistant.
type Harness struct {
	assistant *triage.Assistant
}

// NewHarness creates a replay harness around the given assistant.
func NewHarness(a *triage.Assistant) *Harness {
	return &Harness{assistant: a}
}

// Run feeds every turn through a fresh session and returns per-turn results
// along with the final session state.
func (h *Harness) Run(t Transcript) ([]Result, *session.State) {
	st := session.New()
	results := make([]Result, 0, len(t.Turns))
	for _, turn := range t.Turns {
		h.assistant.ProcessUserInput(st, turn.Utterance)
		reply := ""
		if n := len(st.History); n > 0 && st.History[n-1].Role == session.RoleAssistant {
			reply = st.History[n-1].Text
		}
		results = append(results, Result{
			TurnID:       turn.TurnID,
			Utterance:    turn.Utterance,
			Reply:        reply,
			Stage:        st.Stage,
			SymptomCount: st.SymptomCount(),
		})
	}
	return results, st
}

// #endregion harness
