package session

import "sort"

// #region greeting

// Greeting opens every fresh session as the first assistant turn.
const Greeting = "Hello! I'm your AI medical assistant. I'll ask you some questions to help understand your symptoms. How can I help you today?"

const (
	speakerAssistant = "AI Doctor"
	speakerUser      = "You"

	RoleAssistant = "assistant"
	RoleUser      = "user"
)

// #endregion greeting

// #region state

// State holds all per-session conversation data. One instance per active
// session, owned by the caller and never shared between sessions.
type State struct {
	Stage                  Stage
	CurrentSlot            Slot
	DetectedSymptoms       map[string]bool
	FoundSymptomInLastTurn bool
	RepetitionCount        int
	DiagnosisMade          bool
	History                []Turn

	// LastReply is the most recent reply computed by the post-diagnosis
	// dispatch, tracked separately from History so that an emitted wrap-up
	// message does not clear the repetition condition.
	LastReply string
}

// New creates a session at its initial defaults with the greeting already
// in the history.
func New() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset returns every field to its initial default. The greeting is re-seeded
// so a reset session renders the same as a brand new one.
func (s *State) Reset() {
	s.Stage = StageGatheringInitial
	s.CurrentSlot = SlotNone
	s.DetectedSymptoms = make(map[string]bool)
	s.FoundSymptomInLastTurn = false
	s.RepetitionCount = 0
	s.DiagnosisMade = false
	s.LastReply = ""
	s.History = []Turn{{Speaker: speakerAssistant, Text: Greeting, Role: RoleAssistant}}
}

// #endregion state

// #region history

// AddUserTurn appends a user message to the history.
func (s *State) AddUserTurn(text string) {
	s.History = append(s.History, Turn{Speaker: speakerUser, Text: text, Role: RoleUser})
}

// AddAssistantTurn appends an assistant message to the history.
func (s *State) AddAssistantTurn(text string) {
	s.History = append(s.History, Turn{Speaker: speakerAssistant, Text: text, Role: RoleAssistant})
}

// LastAssistantTexts returns the text of up to n most recent assistant turns,
// newest first.
func (s *State) LastAssistantTexts(n int) []string {
	var out []string
	for i := len(s.History) - 1; i >= 0 && len(out) < n; i-- {
		if s.History[i].Role == RoleAssistant {
			out = append(out, s.History[i].Text)
		}
	}
	return out
}

// #endregion history

// #region symptoms

// AddSymptom records a detected symptom. Returns true if it was not already
// present. Symptoms are only ever added within a session.
func (s *State) AddSymptom(id string) bool {
	if s.DetectedSymptoms[id] {
		return false
	}
	s.DetectedSymptoms[id] = true
	return true
}

// SymptomCount returns the size of the accumulated symptom set.
func (s *State) SymptomCount() int {
	return len(s.DetectedSymptoms)
}

// Symptoms returns the accumulated symptom ids in sorted order.
func (s *State) Symptoms() []string {
	out := make([]string, 0, len(s.DetectedSymptoms))
	for id := range s.DetectedSymptoms {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// #endregion symptoms
