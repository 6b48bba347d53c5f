package dialogue

// #region imports
import "strings"

// #endregion

// #region keywords

var diagnosisRequestKeywords = []string{
	"diagnosis", "what do i have", "what's wrong", "tell me what",
	"can you please", "say me",
}

var dangerKeywords = []string{"danger", "serious", "severe"}

var treatmentKeywords = []string{
	"treatment", "medicine", "medication", "what can", "what should",
}

var gratitudeKeywords = []string{"thank", "bye", "goodbye"}

var moreHelpKeywords = []string{"ask", "more", "help me"}

// #endregion keywords

// #region classify

// ClassifyIntent buckets a post-diagnosis utterance by substring presence.
// Order matters: an utterance containing both "diagnosis" and "thanks" is a
// diagnosis request.
func ClassifyIntent(utterance string) Intent {
	lower := strings.ToLower(utterance)

	if containsAny(lower, diagnosisRequestKeywords) {
		return IntentDiagnosisRequest
	}
	if containsAny(lower, dangerKeywords) {
		return IntentDangerQuery
	}
	if containsAny(lower, treatmentKeywords) {
		return IntentTreatmentQuery
	}
	if containsAny(lower, gratitudeKeywords) {
		return IntentGratitude
	}
	// "what should I do now" style questions; "what" must appear as a
	// whole word, not a prefix of a longer one.
	if strings.Contains(lower, "what ") &&
		(strings.Contains(lower, "do") || strings.Contains(lower, "now") || strings.Contains(lower, "next")) {
		return IntentWhatNow
	}
	if containsAny(lower, moreHelpKeywords) {
		return IntentMoreHelp
	}
	return IntentOther
}

// #endregion classify

// #region helpers

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// #endregion helpers
