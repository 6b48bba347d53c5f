// Package triage is the top-level coordinator: one entry point per user turn
// and one for session reset, exactly the surface a hosting front end needs.
package triage

// #region imports
import (
	"log"
	"strings"

	"github.com/danielpatrickdp/symptom-triage/internal/dialogue"
	"github.com/danielpatrickdp/symptom-triage/internal/extract"
	"github.com/danielpatrickdp/symptom-triage/internal/session"
)

// #endregion

// #region assistant

// EmptyInputPrompt answers blank input without advancing the dialogue.
const EmptyInputPrompt = "I didn't catch that. Could you please provide more details about your symptoms?"

// Assistant runs the full triage flow for one turn at a time. It holds no
// per-session data; the same Assistant safely serves many sessions as long
// as each session's State is not used concurrently.
type Assistant struct {
	machine *dialogue.Machine
	policy  dialogue.Diagnoser
}

// NewAssistant wires the dialogue machine to the decision policy.
func NewAssistant(policy dialogue.Diagnoser) *Assistant {
	return &Assistant{
		machine: dialogue.NewMachine(policy),
		policy:  policy,
	}
}

// #endregion assistant

// #region process

// ProcessUserInput runs extraction, then either the dialogue machine or the
// decision policy, appending both the user turn and the assistant reply to
// the session history.
func (a *Assistant) ProcessUserInput(st *session.State, utterance string) {
	if strings.TrimSpace(utterance) == "" {
		st.AddAssistantTurn(EmptyInputPrompt)
		return
	}

	st.AddUserTurn(utterance)

	added, found := extract.Extract(utterance, st)
	if found {
		log.Printf("[CHAT] turn matched symptoms, new=%v total=%d", added, st.SymptomCount())
	}

	// An explicit "diagnosis" request jumps the queue at any stage, as does
	// arriving at the diagnosing stage without a diagnosis yet.
	if (st.Stage == session.StageDiagnosing && !st.DiagnosisMade) ||
		strings.Contains(strings.ToLower(utterance), "diagnosis") {
		st.AddAssistantTurn(a.policy.Decide(st))
		return
	}

	st.AddAssistantTurn(a.machine.Next(st, utterance))
}

// ResetSession clears all conversation state back to initial defaults.
func (a *Assistant) ResetSession(st *session.State) {
	st.Reset()
}

// #endregion process
