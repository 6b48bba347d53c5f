package dialogue

import "testing"

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      Intent
	}{
		{"explicit diagnosis", "can you give me a diagnosis", IntentDiagnosisRequest},
		{"what do i have", "so what do I have, doctor?", IntentDiagnosisRequest},
		{"danger", "is this dangerous?", IntentDangerQuery},
		{"serious", "how serious is it", IntentDangerQuery},
		{"treatment", "what treatment do you recommend", IntentTreatmentQuery},
		{"medication", "should I take medication", IntentTreatmentQuery},
		{"gratitude", "thanks, bye", IntentGratitude},
		{"goodbye", "ok goodbye", IntentGratitude},
		{"what now", "what happens now", IntentWhatNow},
		{"what next", "what comes next for me", IntentWhatNow},
		{"more help", "please help me understand", IntentMoreHelp},
		{"vague", "hmm", IntentOther},
		{"vague ok", "ok", IntentOther},
		{"diagnosis beats gratitude", "thanks, but what's wrong with me", IntentDiagnosisRequest},
		{"danger beats gratitude", "thanks, is it serious", IntentDangerQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyIntent(tt.utterance); got != tt.want {
				t.Errorf("ClassifyIntent(%q) = %q, want %q", tt.utterance, got, tt.want)
			}
		})
	}
}
