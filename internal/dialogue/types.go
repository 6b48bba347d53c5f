package dialogue

// #region imports
import (
	"github.com/danielpatrickdp/symptom-triage/internal/session"
)

// #endregion

// #region intent

// Intent classifies a post-diagnosis utterance by keyword heuristics.
type Intent string

const (
	IntentDiagnosisRequest Intent = "diagnosis_request"
	IntentDangerQuery      Intent = "danger_query"
	IntentTreatmentQuery   Intent = "treatment_query"
	IntentGratitude        Intent = "gratitude"
	IntentWhatNow          Intent = "what_now"
	IntentMoreHelp         Intent = "more_help"
	IntentOther            Intent = "other"
)

// #endregion intent

// #region diagnoser

// Diagnoser produces a diagnosis (or a clarifying prompt when the evidence is
// too thin) from the accumulated session state. Implemented by the decision
// policy in internal/diagnose.
type Diagnoser interface {
	Decide(st *session.State) string
}

// #endregion diagnoser

// #region questions

// Questions holds the detail question asked for each slot.
var Questions = map[session.Slot]string{
	session.SlotPain:        "Are you experiencing any pain? If so, where and how severe?",
	session.SlotDuration:    "How long have you been experiencing these symptoms?",
	session.SlotFever:       "Do you have a fever or elevated temperature?",
	session.SlotSkin:        "Have you noticed any changes in your skin like rashes or discoloration?",
	session.SlotRespiratory: "Are you having any trouble breathing or coughing?",
	session.SlotDigestive:   "Do you have any digestive issues like nausea, vomiting, or diarrhea?",
	session.SlotFatigue:     "How are your energy levels? Do you feel unusually tired?",
	session.SlotOther:       "Are there any other symptoms or concerns you'd like to mention?",
}

// #endregion questions

// #region fixed-responses

const (
	// FinalizingPrompt is the single confirmation turn before diagnosis.
	FinalizingPrompt = "Thank you for providing all this information. Let me analyze your symptoms and provide a possible diagnosis. Is there anything else you'd like to add before I proceed?"

	// DiagnosisReadyRemark announces the transition into the diagnosing stage.
	DiagnosisReadyRemark = "Based on the symptoms you've described, I can now provide a diagnosis."

	// WrapUpMessage ends a conversation that has stopped making progress.
	WrapUpMessage = "I think I've provided all the information I can based on what you've shared. If you have a specific question about your symptoms or would like to start over, please let me know. Otherwise, I recommend consulting with a healthcare professional for a proper diagnosis. Thank you for using our AI Doctor service."

	// DangerDisclaimer answers severity questions without asserting a judgment.
	DangerDisclaimer = "Based on the information you've provided, I can't determine with certainty how serious your condition is. However, if you're experiencing severe or worsening symptoms, please seek immediate medical attention. A healthcare professional can provide a proper evaluation of your condition."

	// TreatmentDisclaimer refuses prescription requests.
	TreatmentDisclaimer = "As an AI assistant, I cannot prescribe medications or treatments. For appropriate treatment, you should consult with a healthcare provider who can perform a thorough examination. They will consider your full medical history, may order tests if needed, and can prescribe appropriate treatment for your condition."

	// FarewellMessage closes the conversation on thanks or goodbye.
	FarewellMessage = "You're welcome! I'm glad I could help. Take care of yourself and remember to consult with a healthcare professional for proper medical advice. Feel free to come back if you have more questions in the future!"

	// GeneralAdvice answers vague "what now" questions.
	GeneralAdvice = "Based on the symptoms you've described, I recommend consulting with a healthcare professional for a proper diagnosis and treatment plan. In the meantime, make sure to rest, stay hydrated, and monitor your symptoms. If they worsen, seek medical attention promptly."

	// MoreDetailPrompt re-asks for specifics when too few symptoms are known.
	MoreDetailPrompt = "I'd like to understand your symptoms better. Could you tell me if you're experiencing any pain, fever, or unusual changes in your body? The more specific you can be about your symptoms, their duration, and severity, the better I can help analyze your condition."

	// StillTroublePrompt is the generic fallback when identification keeps failing.
	StillTroublePrompt = "I'm still having trouble identifying your symptoms clearly. Could you please describe in more detail what you're experiencing? For example, any specific pain, fever, or changes you've noticed recently?"
)

// #endregion fixed-responses
