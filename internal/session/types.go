package session

// #region stage

// Stage identifies where the conversation sits in the guided dialogue.
type Stage string

const (
	StageGatheringInitial Stage = "gathering_initial"
	StageGatheringDetails Stage = "gathering_details"
	StageFinalizing       Stage = "finalizing"
	StageDiagnosing       Stage = "diagnosing"
	StagePostDiagnosis    Stage = "post_diagnosis"
)

// #endregion stage

// #region slot

// Slot is one topical question category in the fixed guided-dialogue order.
type Slot string

const (
	SlotNone        Slot = ""
	SlotPain        Slot = "pain"
	SlotDuration    Slot = "duration"
	SlotFever       Slot = "fever"
	SlotSkin        Slot = "skin"
	SlotRespiratory Slot = "respiratory"
	SlotDigestive   Slot = "digestive"
	SlotFatigue     Slot = "fatigue"
	SlotOther       Slot = "other"
)

// SlotOrder is the fixed order in which detail questions are asked.
// It does not adapt to symptoms already volunteered; that is a documented
// simplicity trade-off, not a bug.
var SlotOrder = []Slot{
	SlotPain, SlotDuration, SlotFever, SlotSkin,
	SlotRespiratory, SlotDigestive, SlotFatigue, SlotOther,
}

// #endregion slot

// #region turn

// Turn is a single message in the conversation history.
type Turn struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
	Role    string `json:"role"` // "user" | "assistant"
}

// #endregion turn
