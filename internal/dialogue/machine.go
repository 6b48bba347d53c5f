// Package dialogue implements the staged state machine that drives the
// conversation: the fixed guided-question sequence, the finalizing and
// diagnosing transitions, and the post-diagnosis intent dispatch with its
// repetition guard.
package dialogue

// #region imports
import (
	"log"

	"github.com/danielpatrickdp/symptom-triage/internal/session"
)

// #endregion

// #region machine

// Machine advances a conversation one turn at a time. It is stateless itself;
// all per-session data lives on the session.State passed into each call.
type Machine struct {
	diagnoser Diagnoser
}

// NewMachine creates a dialogue machine that delegates forced diagnoses to
// the given policy.
func NewMachine(d Diagnoser) *Machine {
	return &Machine{diagnoser: d}
}

// #endregion machine

// #region next

// Next determines the assistant's reply for the current turn and advances the
// conversation stage. Each user turn advances exactly one slot during detail
// gathering, regardless of whether the turn's content was relevant.
func (m *Machine) Next(st *session.State, utterance string) string {
	switch st.Stage {
	case session.StageGatheringInitial:
		// The very first user turn enters detail gathering immediately.
		st.Stage = session.StageGatheringDetails
		st.CurrentSlot = session.SlotPain
		return Questions[session.SlotPain]

	case session.StageGatheringDetails:
		next := nextSlot(st.CurrentSlot)
		if next == session.SlotNone {
			st.Stage = session.StageFinalizing
			st.CurrentSlot = session.SlotNone
			return FinalizingPrompt
		}
		st.CurrentSlot = next
		return Questions[next]

	case session.StageFinalizing:
		st.Stage = session.StageDiagnosing
		return DiagnosisReadyRemark

	default:
		// Diagnosing with a diagnosis already made, or PostDiagnosis proper.
		return m.dispatch(st, utterance)
	}
}

// nextSlot returns the slot after cur in the fixed order, or SlotNone when
// cur is the last slot.
func nextSlot(cur session.Slot) session.Slot {
	for i, s := range session.SlotOrder {
		if s == cur && i+1 < len(session.SlotOrder) {
			return session.SlotOrder[i+1]
		}
	}
	return session.SlotNone
}

// #endregion next

// #region post-diagnosis-dispatch

// dispatch handles free-form follow-up queries once a diagnosis exists.
//
// Repetition guard: once the same reply has gone out twice in a row, every
// further turn gets the fixed wrap-up message. The guard is checked before
// the intent is classified, so a short-circuited turn performs no diagnosis
// work at all. Only a session reset leaves the wrapped-up state.
func (m *Machine) dispatch(st *session.State, utterance string) string {
	if st.RepetitionCount >= 2 {
		log.Printf("[CHAT] repetition guard fired after %d identical replies", st.RepetitionCount)
		return WrapUpMessage
	}

	reply := m.replyFor(ClassifyIntent(utterance), st)
	if reply == st.LastReply {
		st.RepetitionCount++
	} else {
		st.RepetitionCount = 1
	}
	st.LastReply = reply
	return reply
}

func (m *Machine) replyFor(intent Intent, st *session.State) string {
	switch intent {
	case IntentDiagnosisRequest:
		return m.diagnoser.Decide(st)
	case IntentDangerQuery:
		return DangerDisclaimer
	case IntentTreatmentQuery:
		return TreatmentDisclaimer
	case IntentGratitude:
		return FarewellMessage
	case IntentWhatNow:
		return GeneralAdvice
	case IntentMoreHelp:
		if st.SymptomCount() < 3 {
			return MoreDetailPrompt
		}
		return m.diagnoser.Decide(st)
	default:
		if st.SymptomCount() < 2 {
			return StillTroublePrompt
		}
		return m.diagnoser.Decide(st)
	}
}

// #endregion post-diagnosis-dispatch
