// Package extract turns a raw user utterance into canonical symptom ids.
// Detection is intentionally simple keyword matching against the lexicon,
// plus a few composite heuristics that need conjunction or disambiguation.
package extract

import (
	"strings"

	"github.com/danielpatrickdp/symptom-triage/internal/lexicon"
	"github.com/danielpatrickdp/symptom-triage/internal/session"
)

// #region extract

// Extract scans the utterance and folds detections into the session's
// accumulated symptom set. Returns the ids newly added by this utterance and
// whether anything fired at all this turn (a re-detection of an already known
// symptom still counts as a hit).
//
// An utterance with zero matches is a normal outcome, not an error.
func Extract(utterance string, st *session.State) ([]string, bool) {
	lower := strings.ToLower(utterance)
	found := false
	var added []string

	add := func(id string) {
		if st.AddSymptom(id) {
			added = append(added, id)
		}
		found = true
	}

	for _, entry := range lexicon.Entries() {
		if entry.Matches(lower) {
			add(entry.ID)
		}
	}

	// "back" alone is ambiguous ("I'll be back"); require a pain word.
	if strings.Contains(lower, "back") && containsAny(lower, "pain", "hurt", "ache") {
		add("back_pain")
	}

	// Fever severity: a bare mention is mild unless qualified.
	if strings.Contains(lower, "fever") || strings.Contains(lower, "temperature") {
		if containsAny(lower, "high", "severe") {
			add("high_fever")
		} else {
			add("mild_fever")
		}
	}

	if containsAny(lower, "tired", "fatigue", "no energy", "don't have energy") {
		add("fatigue")
	}

	st.FoundSymptomInLastTurn = found
	return added, found
}

// #endregion extract

// #region helpers

func containsAny(lower string, phrases ...string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// #endregion helpers
