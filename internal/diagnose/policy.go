// Package diagnose decides whether accumulated evidence supports a
// diagnosis, and when it does, runs the classifier and renders the ranked
// result with descriptions and a medical disclaimer.
package diagnose

// #region imports
import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/danielpatrickdp/symptom-triage/internal/lexicon"
	"github.com/danielpatrickdp/symptom-triage/internal/predict"
	"github.com/danielpatrickdp/symptom-triage/internal/session"
)

// #endregion

// #region collaborators

// DataSource provides the training data and feature space.
type DataSource interface {
	TrainingMatrix() ([][]float64, []string, error)
	Vectorize(symptoms []string) ([]float64, error)
}

// Describer looks up static descriptive text for a disease label.
type Describer interface {
	Describe(disease string) (string, bool)
}

// Recorder persists a provenance row for each committed diagnosis. A nil
// recorder disables provenance.
type Recorder interface {
	Record(symptoms []string, label string, probability float64) error
}

// #endregion collaborators

// #region fixed-responses

const (
	// NoSymptomsPrompt is returned when the accumulated set is empty.
	NoSymptomsPrompt = "I couldn't identify specific symptoms from our conversation. Could you please be more specific about what you're experiencing? For example, tell me about any pain, fever, or other changes you've noticed."

	// NeedMorePrompt is returned when evidence is thin and the latest turn
	// added nothing new.
	NeedMorePrompt = "I've identified some symptoms, but I need a bit more information to make a proper assessment. Could you tell me more about what you're experiencing? Any other symptoms besides what you've already mentioned?"

	// ApologyMessage replaces any collaborator failure.
	ApologyMessage = "I'm sorry, I encountered an error while analyzing your symptoms. Please consult with a healthcare professional."

	// Disclaimer closes every successful diagnosis.
	Disclaimer = "IMPORTANT: This is an AI-generated assessment and not a professional medical diagnosis. Please consult with a healthcare professional for proper evaluation and treatment."

	// FollowUpInvite keeps the conversation open after a diagnosis.
	FollowUpInvite = "Is there anything specific about these conditions you'd like to know more about?"
)

// maxCandidates caps the ranked list length.
const maxCandidates = 3

// #endregion fixed-responses

// #region confidence-tier

// ConfidenceTier buckets a probability into High/Medium/Low. Boundaries are
// strict: exactly 40% is Low and exactly 70% is Medium.
func ConfidenceTier(probability float64) string {
	pct := probability * 100
	switch {
	case pct > 70:
		return "High"
	case pct > 40:
		return "Medium"
	default:
		return "Low"
	}
}

// #endregion confidence-tier

// #region policy

// Result is a ranked list of up to three candidate conditions, highest
// probability first.
type Result struct {
	Candidates []predict.Prediction
}

// Policy owns the evidence guards and the diagnosis rendering. One Policy
// serves every session of a host, so the shared classifier is guarded: Train
// rewrites model internals and must not interleave with another session's
// Predict.
type Policy struct {
	data  DataSource
	model predict.Classifier
	kb    Describer
	rec   Recorder

	modelMu sync.Mutex
}

// NewPolicy wires a decision policy with its collaborators. rec may be nil.
func NewPolicy(data DataSource, model predict.Classifier, kb Describer, rec Recorder) *Policy {
	return &Policy{data: data, model: model, kb: kb, rec: rec}
}

// #endregion policy

// #region decide

// Decide checks the evidence guards in order and, when they pass, produces a
// diagnosis. Collaborator failures never propagate: they become the apology
// message and leave the session usable. DiagnosisMade and the stage move to
// PostDiagnosis only after the whole step succeeds.
func (p *Policy) Decide(st *session.State) string {
	if st.SymptomCount() == 0 {
		return NoSymptomsPrompt
	}
	if st.SymptomCount() < 2 && !st.FoundSymptomInLastTurn {
		return NeedMorePrompt
	}

	result, text, err := p.Evaluate(st)
	if err != nil {
		log.Printf("[DIAG] diagnosis failed: %v", err)
		return ApologyMessage
	}
	top := result.Candidates[0]
	log.Printf("[DIAG] %d symptoms, top candidate %q (%.1f%%)",
		st.SymptomCount(), top.Label, top.Probability*100)

	if p.rec != nil {
		if err := p.rec.Record(st.Symptoms(), top.Label, top.Probability); err != nil {
			log.Printf("[DIAG] provenance record failed: %v", err)
		}
	}

	st.DiagnosisMade = true
	st.Stage = session.StagePostDiagnosis
	return text
}

// Evaluate trains the classifier on the current dataset, predicts from the
// accumulated symptoms, and renders the ranked result. It does not mutate
// the session.
func (p *Policy) Evaluate(st *session.State) (Result, string, error) {
	X, y, err := p.data.TrainingMatrix()
	if err != nil {
		return Result{}, "", fmt.Errorf("load training data: %w", err)
	}

	symptoms := st.Symptoms()
	vec, err := p.data.Vectorize(symptoms)
	if err != nil {
		return Result{}, "", fmt.Errorf("vectorize: %w", err)
	}

	p.modelMu.Lock()
	trainErr := p.model.Train(X, y)
	var preds []predict.Prediction
	if trainErr == nil {
		preds, err = p.model.Predict(vec)
	}
	p.modelMu.Unlock()
	if trainErr != nil {
		return Result{}, "", fmt.Errorf("train: %w", trainErr)
	}
	if err != nil {
		return Result{}, "", fmt.Errorf("predict: %w", err)
	}
	if len(preds) == 0 {
		return Result{}, "", fmt.Errorf("predict: empty distribution")
	}

	n := maxCandidates
	if len(preds) < n {
		n = len(preds)
	}
	result := Result{Candidates: preds[:n]}
	return result, p.render(symptoms, result), nil
}

// #endregion decide

// #region render

func (p *Policy) render(symptoms []string, result Result) string {
	var b strings.Builder
	b.WriteString("Based on the symptoms you've described (")
	for i, s := range symptoms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(lexicon.Display(s))
	}
	b.WriteString("), here are the possible conditions:\n\n")

	for _, c := range result.Candidates {
		pct := c.Probability * 100
		fmt.Fprintf(&b, "• **%s** (Confidence: %s, %.1f%%)\n\n", c.Label, ConfidenceTier(c.Probability), pct)
		if info, ok := p.kb.Describe(c.Label); ok {
			fmt.Fprintf(&b, "*%s*\n\n", info)
		}
	}

	b.WriteString("\n")
	b.WriteString(Disclaimer)
	b.WriteString("\n\n")
	b.WriteString(FollowUpInvite)
	return b.String()
}

// #endregion render
